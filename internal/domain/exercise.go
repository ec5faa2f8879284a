package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// idPattern is the format of category, exercise and location ids. Ids are
// used verbatim in URLs and stored in VARCHAR2(64) columns.
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,63}$`)

// ValidID reports whether id can identify a category, exercise or location.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Difficulty classifies an exercise. Only the three levels below are valid.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists the levels in display order.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// ParseDifficulty accepts any casing and surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", NewInvalidDifficultyError(s)
	}
	return d, nil
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

func (d Difficulty) String() string {
	return string(d)
}

// Exercise is one entry of the exercise library.
type Exercise struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Difficulty   Difficulty `json:"difficulty"`
	Image        string     `json:"image"`
	Instructions []string   `json:"instructions"`
	Cautions     []string   `json:"cautions"`
}

// Category owns an ordered list of exercises. The order is display order.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}

// Dataset is the whole exercise document. It is read-only once loaded.
type Dataset struct {
	Categories []Category `json:"categories"`
}

// Validate reports every structural problem in the document at once.
func (d Dataset) Validate() error {
	var errs ValidationErrors
	categoryIDs := make(map[string]struct{}, len(d.Categories))
	exerciseIDs := make(map[string]struct{})

	for ci, c := range d.Categories {
		prefix := fmt.Sprintf("categories[%d]", ci)
		if strings.TrimSpace(c.ID) == "" {
			errs = append(errs, NewMissingFieldError(prefix+".id"))
		} else if !ValidID(c.ID) {
			errs = append(errs, NewInvalidFormatError(prefix+".id", c.ID))
		} else if _, dup := categoryIDs[c.ID]; dup {
			errs = append(errs, NewDuplicateError(prefix+".id", c.ID))
		} else {
			categoryIDs[c.ID] = struct{}{}
		}
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, NewMissingFieldError(prefix+".name"))
		}

		for ei, e := range c.Exercises {
			eprefix := fmt.Sprintf("%s.exercises[%d]", prefix, ei)
			if strings.TrimSpace(e.ID) == "" {
				errs = append(errs, NewMissingFieldError(eprefix+".id"))
			} else if !ValidID(e.ID) {
				errs = append(errs, NewInvalidFormatError(eprefix+".id", e.ID))
			} else if _, dup := exerciseIDs[e.ID]; dup {
				errs = append(errs, NewDuplicateError(eprefix+".id", e.ID))
			} else {
				exerciseIDs[e.ID] = struct{}{}
			}
			if strings.TrimSpace(e.Name) == "" {
				errs = append(errs, NewMissingFieldError(eprefix+".name"))
			}
			if !e.Difficulty.Valid() {
				verr := NewInvalidDifficultyError(string(e.Difficulty))
				verr.Field = eprefix + ".difficulty"
				errs = append(errs, verr)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// All flattens the dataset: category order, then exercise order.
func (d Dataset) All() []Exercise {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Exercises)
	}
	out := make([]Exercise, 0, n)
	for _, c := range d.Categories {
		out = append(out, c.Exercises...)
	}
	return out
}

// Len is the total number of exercises.
func (d Dataset) Len() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Exercises)
	}
	return n
}

func (d Dataset) Category(id string) (Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func (d Dataset) Exercise(id string) (Exercise, bool) {
	for _, c := range d.Categories {
		for _, e := range c.Exercises {
			if e.ID == id {
				return e, true
			}
		}
	}
	return Exercise{}, false
}

// CategoryOf returns the category that owns the exercise.
func (d Dataset) CategoryOf(exerciseID string) (Category, bool) {
	for _, c := range d.Categories {
		for _, e := range c.Exercises {
			if e.ID == exerciseID {
				return c, true
			}
		}
	}
	return Category{}, false
}
