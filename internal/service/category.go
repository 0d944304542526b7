package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/repository"
	"github.com/startbeyond/startbeyond/internal/validation"
)

// CategoryService merges the fixed default categories with a user's
// override rows and default-code toggles into the ordered list every other
// component consumes.
type CategoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// MergeCategories layers user overrides and default-code settings over the
// fixed defaults. The result keeps inactive entries; callers filter.
// Malformed override rows (empty code) are skipped, falling back to the
// default definition.
func MergeCategories(overrides []*model.Category, settings []*model.CategorySetting) []model.ResolvedCategory {
	resolved := make([]model.ResolvedCategory, 0, len(model.DefaultCategories)+len(overrides))
	index := make(map[string]int, len(model.DefaultCategories))

	for i, def := range model.DefaultCategories {
		resolved = append(resolved, model.ResolvedCategory{
			Code:        def.Code,
			Label:       def.Label,
			Icon:        def.Icon,
			HasDuration: def.HasDuration,
			IsActive:    true,
		})
		index[def.Code] = i
	}

	overridden := make(map[string]bool, len(overrides))
	for _, ov := range overrides {
		if ov.Code == "" {
			continue
		}
		overridden[ov.Code] = true

		i, isDefault := index[ov.Code]
		if isDefault {
			// Override replaces presentation and ordering of a default;
			// duration tracking stays with the default definition.
			resolved[i].Label = ov.Label
			resolved[i].Icon = ov.Icon
			resolved[i].Color = ov.Color
			resolved[i].IsActive = ov.IsActive
			resolved[i].SortOrder = ov.SortOrder
			resolved[i].IsCustom = true
			continue
		}

		resolved = append(resolved, model.ResolvedCategory{
			Code:        ov.Code,
			Label:       ov.Label,
			Icon:        ov.Icon,
			Color:       ov.Color,
			HasDuration: ov.HasDuration,
			IsActive:    ov.IsActive,
			SortOrder:   ov.SortOrder,
			IsCustom:    true,
		})
	}

	// Default-code toggles apply only to defaults the user has not overridden.
	for _, setting := range settings {
		i, isDefault := index[setting.Code]
		if !isDefault || overridden[setting.Code] {
			continue
		}
		resolved[i].IsActive = setting.IsActive
	}

	return resolved
}

// ActiveCategories filters to active entries and sorts ascending by sort
// order. Entries without an explicit order sort last; ties keep their
// original relative order.
func ActiveCategories(resolved []model.ResolvedCategory) []model.ResolvedCategory {
	var active []model.ResolvedCategory
	for _, cat := range resolved {
		if cat.IsActive {
			active = append(active, cat)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i].SortOrder, active[j].SortOrder
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	return active
}

// Resolved returns the full merged list, inactive entries included.
func (s *CategoryService) Resolved(userID string) ([]model.ResolvedCategory, error) {
	overrides, err := s.repo.Overrides(userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.Settings(userID)
	if err != nil {
		return nil, err
	}

	return MergeCategories(overrides, settings), nil
}

// Active returns the ordered active category list for a user.
func (s *CategoryService) Active(userID string) ([]model.ResolvedCategory, error) {
	resolved, err := s.Resolved(userID)
	if err != nil {
		return nil, err
	}
	return ActiveCategories(resolved), nil
}

// ActiveCode reports whether code is in the user's active list.
func (s *CategoryService) ActiveCode(userID, code string) (bool, error) {
	active, err := s.Active(userID)
	if err != nil {
		return false, err
	}
	for _, cat := range active {
		if cat.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// UpsertOverride creates or replaces the user's override for a code. For a
// default code this customizes it; for a new code it creates a custom
// category.
func (s *CategoryService) UpsertOverride(userID, code, label, icon string, color *string, hasDuration, isActive bool, sortOrder *int) (*model.Category, error) {
	err := validation.ValidateCategoryCode(code)
	if err != nil {
		return nil, err
	}
	if label == "" {
		return nil, validation.Error("label", "label is required")
	}

	category := &model.Category{
		ID:          uuid.New().String(),
		UserID:      userID,
		Code:        code,
		Label:       label,
		Icon:        icon,
		Color:       color,
		HasDuration: hasDuration,
		IsActive:    isActive,
		SortOrder:   sortOrder,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err = s.repo.Upsert(category)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert category: %w", err)
	}

	return category, nil
}

// SetActive toggles a category on or off. Overridden and custom codes flip
// their override row; untouched defaults get a settings row instead.
func (s *CategoryService) SetActive(userID, code string, isActive bool) error {
	existing, err := s.repo.ByCode(userID, code)
	if err == nil {
		existing.IsActive = isActive
		return s.repo.Upsert(existing)
	}
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		return fmt.Errorf("failed to load category override: %w", err)
	}

	for _, def := range model.DefaultCategories {
		if def.Code == code {
			return s.repo.SetDefaultActive(userID, code, isActive)
		}
	}

	return repository.ErrCategoryNotFound
}

// Reorder persists a new sort order from the given code sequence. Codes
// not mentioned keep no explicit order and therefore sort last.
func (s *CategoryService) Reorder(userID string, codes []string) error {
	resolved, err := s.Resolved(userID)
	if err != nil {
		return err
	}

	byCode := make(map[string]model.ResolvedCategory, len(resolved))
	for _, cat := range resolved {
		byCode[cat.Code] = cat
	}

	for i, code := range codes {
		cat, ok := byCode[code]
		if !ok {
			return repository.ErrCategoryNotFound
		}

		order := i + 1
		category := &model.Category{
			UserID:      userID,
			Code:        cat.Code,
			Label:       cat.Label,
			Icon:        cat.Icon,
			Color:       cat.Color,
			HasDuration: cat.HasDuration,
			IsActive:    cat.IsActive,
			SortOrder:   &order,
		}
		err = s.repo.Upsert(category)
		if err != nil {
			return fmt.Errorf("failed to reorder category %s: %w", code, err)
		}
	}

	return nil
}
