package catalog

import (
	"html"

	"github.com/microcosm-cc/bluemonday"

	"neuro-site/internal/domain"
)

var strict = bluemonday.StrictPolicy()

// Sanitize strips markup from every text field of the dataset and returns a copy.
// The document comes from outside the process and is rendered into pages.
func Sanitize(ds domain.Dataset) domain.Dataset {
	out := domain.Dataset{Categories: make([]domain.Category, len(ds.Categories))}
	for i, c := range ds.Categories {
		nc := domain.Category{
			ID:          c.ID,
			Name:        clean(c.Name),
			Description: clean(c.Description),
			Exercises:   make([]domain.Exercise, len(c.Exercises)),
		}
		for j, e := range c.Exercises {
			nc.Exercises[j] = domain.Exercise{
				ID:           e.ID,
				Name:         clean(e.Name),
				Description:  clean(e.Description),
				Difficulty:   e.Difficulty,
				Image:        e.Image,
				Instructions: cleanAll(e.Instructions),
				Cautions:     cleanAll(e.Cautions),
			}
		}
		out.Categories[i] = nc
	}
	return out
}

// clean unescapes what bluemonday escapes so templates do not double-escape.
func clean(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}

func cleanAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = clean(s)
	}
	return out
}
