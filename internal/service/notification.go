package service

import (
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/repository"
)

type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Notifications(userID string, limit int) ([]*model.Notification, error) {
	return s.repo.ByUser(userID, limit)
}

func (s *NotificationService) MarkRead(userID, notificationID string) error {
	return s.repo.MarkRead(userID, notificationID)
}
