// Package catalog holds the exercise library logic: filtering the dataset,
// the single detail slot, and the one-shot load of the dataset.
package catalog

import (
	"strings"

	"neuro-site/internal/domain"
)

// All selects every category or every difficulty. The empty string means the same.
const All = "all"

// Criteria are the three independent filter inputs.
type Criteria struct {
	Category   string
	Difficulty string
	Query      string
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, All)
}

// Normalized trims category and difficulty and lowercases the difficulty, so
// " Advanced" selects the same exercises as "advanced". The query is kept as
// typed.
func (c Criteria) Normalized() Criteria {
	c.Category = strings.TrimSpace(c.Category)
	c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))
	if isAll(c.Category) {
		c.Category = All
	}
	if isAll(c.Difficulty) {
		c.Difficulty = All
	}
	return c
}

// HasCategory reports whether a specific category is selected.
func (c Criteria) HasCategory() bool { return !isAll(c.Category) }

// HasDifficulty reports whether a specific difficulty is selected.
func (c Criteria) HasDifficulty() bool { return !isAll(c.Difficulty) }

// HasQuery reports whether the query filters anything. Whitespace-only queries do not.
func (c Criteria) HasQuery() bool { return strings.TrimSpace(c.Query) != "" }

// Result is a derived view over the dataset in source order.
type Result struct {
	Exercises []domain.Exercise
	Count     int
}

// Empty is true when nothing matched; callers render the "no exercises found" state.
func (r Result) Empty() bool { return r.Count == 0 }

// Filter applies category, then difficulty, then query.
//
// Selecting a category replaces the working set with that category's list
// instead of intersecting the flattened dataset. Difficulty and query are
// predicates ANDed onto the working set. The dataset is never modified.
func Filter(ds domain.Dataset, c Criteria) Result {
	c = c.Normalized()
	var working []domain.Exercise
	if c.HasCategory() {
		if cat, ok := ds.Category(c.Category); ok {
			working = cat.Exercises
		}
	} else {
		working = ds.All()
	}
	return refine(working, c)
}

// Refine applies the difficulty and query predicates of c to an existing result.
// The category of c is ignored: it only picks the initial pool.
func (r Result) Refine(c Criteria) Result {
	return refine(r.Exercises, c.Normalized())
}

func refine(in []domain.Exercise, c Criteria) Result {
	out := make([]domain.Exercise, 0, len(in))
	match := matcher(c.Query)
	for _, e := range in {
		if c.HasDifficulty() && !strings.EqualFold(string(e.Difficulty), c.Difficulty) {
			continue
		}
		if match != nil && !match(e) {
			continue
		}
		out = append(out, e)
	}
	return Result{Exercises: out, Count: len(out)}
}

// matcher returns nil when the query does not filter. A non-blank query is
// matched as typed, including any surrounding spaces.
func matcher(query string) func(domain.Exercise) bool {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	needle := strings.ToLower(query)
	return func(e domain.Exercise) bool {
		return strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle)
	}
}
