package model

import "time"

// DefaultCategory is one of the fixed activity categories every user starts with.
type DefaultCategory struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	HasDuration bool   `json:"has_duration"`
}

// DefaultCategories is the fixed set of built-in activity categories.
// Order here is the default sort order before user overrides apply.
var DefaultCategories = []DefaultCategory{
	{Code: "exercise", Label: "Exercise", Icon: "dumbbell", HasDuration: true},
	{Code: "reading", Label: "Reading", Icon: "book-open", HasDuration: true},
	{Code: "study", Label: "Study", Icon: "graduation-cap", HasDuration: true},
	{Code: "meditation", Label: "Meditation", Icon: "brain", HasDuration: true},
	{Code: "diary", Label: "Diary", Icon: "notebook-pen", HasDuration: false},
	{Code: "hobby", Label: "Hobby", Icon: "palette", HasDuration: true},
	{Code: "work", Label: "Work", Icon: "briefcase", HasDuration: true},
	{Code: "sleep", Label: "Sleep", Icon: "moon", HasDuration: true},
	{Code: "meal", Label: "Meal", Icon: "utensils", HasDuration: false},
}

// Category is a user-specific category row: either an override of a default
// code or a fully custom category the user created.
type Category struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Code        string    `db:"code" json:"code"`
	Label       string    `db:"label" json:"label"`
	Icon        string    `db:"icon" json:"icon"`
	Color       *string   `db:"color" json:"color,omitempty"`
	HasDuration bool      `db:"has_duration" json:"has_duration"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	SortOrder   *int      `db:"sort_order" json:"sort_order,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CategorySetting toggles a default code on or off for a user without
// otherwise overriding it.
type CategorySetting struct {
	UserID   string `db:"user_id"`
	Code     string `db:"code"`
	IsActive bool   `db:"is_active"`
}

// ResolvedCategory is the merged view of defaults, overrides and settings
// that every other component consumes.
type ResolvedCategory struct {
	Code        string  `json:"code"`
	Label       string  `json:"label"`
	Icon        string  `json:"icon"`
	Color       *string `json:"color,omitempty"`
	HasDuration bool    `json:"has_duration"`
	IsActive    bool    `json:"is_active"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	IsCustom    bool    `json:"is_custom"`
}
