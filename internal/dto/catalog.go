package dto

import "time"

// CatalogStatusResponse reports the activation state of the exercise catalog
// @Description Exercise catalog activation state
type CatalogStatusResponse struct {
	State         string     `json:"state"` // loading | ready | error
	Message       string     `json:"message,omitempty"`
	CategoryCount int        `json:"category_count"`
	ExerciseCount int        `json:"exercise_count"`
	LoadedAt      *time.Time `json:"loaded_at,omitempty"`
}

// CategoryOption is one entry of the category filter
type CategoryOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// DifficultyOption is one entry of the difficulty filter
type DifficultyOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FilterOptionsResponse lists the filter choices. It is returned even when the catalog failed.
// @Description Category and difficulty filter options
type FilterOptionsResponse struct {
	State        string             `json:"state"`
	Categories   []CategoryOption   `json:"categories"`
	Difficulties []DifficultyOption `json:"difficulties"`
}

// ExerciseSummary is an exercise card in the list
type ExerciseSummary struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Image       string `json:"image"`
}

// ExerciseListResponse is the filtered exercise list
// @Description Filtered exercises in display order
type ExerciseListResponse struct {
	State      string            `json:"state"`
	Message    string            `json:"message,omitempty"`
	Category   string            `json:"category"`
	Difficulty string            `json:"difficulty"`
	Query      string            `json:"query"`
	Count      int               `json:"count"`
	Exercises  []ExerciseSummary `json:"exercises"`
}

// ExerciseDetailResponse is the content of the detail overlay
// @Description Exercise detail
type ExerciseDetailResponse struct {
	ID           string   `json:"id"`
	CategoryID   string   `json:"category_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Difficulty   string   `json:"difficulty"`
	Image        string   `json:"image"`
	Instructions []string `json:"instructions"`
	Cautions     []string `json:"cautions"`
}
