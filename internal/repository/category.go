package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/startbeyond/startbeyond/internal/model"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository stores user category overrides and the per-default
// active toggles. The fixed defaults live in code, not in the database.
type CategoryRepository interface {
	Overrides(userID string) ([]*model.Category, error)
	ByCode(userID, code string) (*model.Category, error)
	Upsert(category *model.Category) error
	Delete(userID, code string) error

	Settings(userID string) ([]*model.CategorySetting, error)
	SetDefaultActive(userID, code string, isActive bool) error
}

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Overrides(userID string) ([]*model.Category, error) {
	var categories []*model.Category
	query := `SELECT * FROM categories WHERE user_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&categories, query, userID)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) ByCode(userID, code string) (*model.Category, error) {
	category := &model.Category{}
	query := `SELECT * FROM categories WHERE user_id = $1 AND code = $2`

	err := r.db.Get(category, query, userID, code)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}

	return category, err
}

func (r *categoryRepository) Upsert(category *model.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	now := time.Now()
	if category.CreatedAt.IsZero() {
		category.CreatedAt = now
	}
	category.UpdatedAt = now

	query := `INSERT INTO categories (id, user_id, code, label, icon, color, has_duration, is_active, sort_order, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          ON CONFLICT (user_id, code) DO UPDATE SET
	            label = excluded.label,
	            icon = excluded.icon,
	            color = excluded.color,
	            has_duration = excluded.has_duration,
	            is_active = excluded.is_active,
	            sort_order = excluded.sort_order,
	            updated_at = excluded.updated_at`

	_, err := r.db.Exec(query,
		category.ID,
		category.UserID,
		category.Code,
		category.Label,
		category.Icon,
		category.Color,
		category.HasDuration,
		category.IsActive,
		category.SortOrder,
		category.CreatedAt,
		category.UpdatedAt,
	)

	return err
}

func (r *categoryRepository) Delete(userID, code string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE user_id = $1 AND code = $2`, userID, code)
	return err
}

func (r *categoryRepository) Settings(userID string) ([]*model.CategorySetting, error) {
	var settings []*model.CategorySetting
	query := `SELECT * FROM category_settings WHERE user_id = $1`

	err := r.db.Select(&settings, query, userID)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func (r *categoryRepository) SetDefaultActive(userID, code string, isActive bool) error {
	query := `INSERT INTO category_settings (user_id, code, is_active)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, code) DO UPDATE SET is_active = excluded.is_active`

	_, err := r.db.Exec(query, userID, code, isActive)
	return err
}
