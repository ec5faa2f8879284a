package catalog

import "neuro-site/internal/domain"

// DetailSlot holds at most one exercise shown in the detail overlay.
// Opening another exercise replaces the current one.
type DetailSlot struct {
	current *domain.Exercise
}

func (s *DetailSlot) Open(e domain.Exercise) {
	s.current = &e
}

func (s *DetailSlot) Close() {
	s.current = nil
}

func (s *DetailSlot) Current() (domain.Exercise, bool) {
	if s.current == nil {
		return domain.Exercise{}, false
	}
	return *s.current, true
}

func (s *DetailSlot) IsOpen() bool {
	return s.current != nil
}

// DetailView is what the overlay renders. It has no state of its own.
type DetailView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Difficulty   string   `json:"difficulty"`
	Image        string   `json:"image"`
	Instructions []string `json:"instructions"`
	Cautions     []string `json:"cautions"`
}

// NewDetailView projects an exercise, substituting the fallback image when needed.
func NewDetailView(e domain.Exercise, images ImageResolver) DetailView {
	return DetailView{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Difficulty:   string(e.Difficulty),
		Image:        images.Resolve(e.Image),
		Instructions: nonNil(e.Instructions),
		Cautions:     nonNil(e.Cautions),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
