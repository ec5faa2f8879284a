package domain

import (
	"errors"
	"strings"
	"testing"
)

func sampleDataset() Dataset {
	return Dataset{Categories: []Category{
		{ID: "neck", Name: "Neck", Exercises: []Exercise{
			{ID: "chin-tucks", Name: "Chin Tucks", Difficulty: DifficultyBeginner},
			{ID: "neck-rotation", Name: "Neck Rotation", Difficulty: DifficultyBeginner},
		}},
		{ID: "core", Name: "Core", Exercises: []Exercise{
			{ID: "side-plank", Name: "Side Plank", Difficulty: DifficultyIntermediate},
		}},
	}}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"beginner", DifficultyBeginner, false},
		{"  Intermediate ", DifficultyIntermediate, false},
		{"ADVANCED", DifficultyAdvanced, false},
		{"expert", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDataset_All_PreservesSourceOrder(t *testing.T) {
	all := sampleDataset().All()
	want := []string{"chin-tucks", "neck-rotation", "side-plank"}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d exercises, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("All()[%d] = %s, want %s", i, all[i].ID, id)
		}
	}
	if n := sampleDataset().Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}
}

func TestDataset_All_Empty(t *testing.T) {
	if got := (Dataset{}).All(); len(got) != 0 {
		t.Errorf("All() on empty dataset = %v, want empty", got)
	}
}

func TestDataset_Lookups(t *testing.T) {
	ds := sampleDataset()
	if c, ok := ds.Category("core"); !ok || c.Name != "Core" {
		t.Errorf("Category(core) = %v, %v", c, ok)
	}
	if _, ok := ds.Category("legs"); ok {
		t.Error("Category(legs) should not be found")
	}
	if e, ok := ds.Exercise("side-plank"); !ok || e.Name != "Side Plank" {
		t.Errorf("Exercise(side-plank) = %v, %v", e, ok)
	}
	if c, ok := ds.CategoryOf("neck-rotation"); !ok || c.ID != "neck" {
		t.Errorf("CategoryOf(neck-rotation) = %v, %v", c, ok)
	}
}

func TestDataset_Validate(t *testing.T) {
	if err := sampleDataset().Validate(); err != nil {
		t.Fatalf("valid dataset returned error: %v", err)
	}

	ds := sampleDataset()
	ds.Categories[1].Exercises = append(ds.Categories[1].Exercises,
		Exercise{ID: "chin-tucks", Name: "Duplicate", Difficulty: DifficultyAdvanced},
		Exercise{ID: "bird-dog", Name: "Bird Dog", Difficulty: "expert"},
		Exercise{ID: "", Name: ""},
	)
	ds.Categories = append(ds.Categories, Category{ID: "neck", Name: ""})

	err := ds.Validate()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error = %T, want ValidationErrors", err)
	}

	codes := map[ErrorCode]int{}
	for _, v := range verrs {
		codes[v.Code]++
	}
	if codes[CodeDuplicate] != 2 {
		t.Errorf("duplicate errors = %d, want 2 (exercise and category)", codes[CodeDuplicate])
	}
	// the nameless, id-less exercise has an empty difficulty too
	if codes[CodeInvalidDifficulty] != 2 {
		t.Errorf("difficulty errors = %d, want 2", codes[CodeInvalidDifficulty])
	}
	if codes[CodeMissingField] != 3 {
		t.Errorf("missing field errors = %d, want 3", codes[CodeMissingField])
	}
	if !strings.Contains(err.Error(), "categories[1].exercises[3].difficulty") {
		t.Errorf("error message does not name the field path: %s", err.Error())
	}
}

func TestDataset_Validate_RejectsIDsUnusableInURLs(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Dataset)
		field string
	}{
		{"category with space", func(ds *Dataset) { ds.Categories[0].ID = "neck stretches" }, "categories[0].id"},
		{"exercise with dot", func(ds *Dataset) { ds.Categories[0].Exercises[0].ID = "chin.tucks" }, "categories[0].exercises[0].id"},
		{"leading dash", func(ds *Dataset) { ds.Categories[1].ID = "-core" }, "categories[1].id"},
		{"too long", func(ds *Dataset) { ds.Categories[1].Exercises[0].ID = strings.Repeat("a", 65) }, "categories[1].exercises[0].id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := sampleDataset()
			tt.mod(&ds)

			var verrs ValidationErrors
			if !errors.As(ds.Validate(), &verrs) {
				t.Fatal("Validate() accepted an id that requests cannot address")
			}
			if len(verrs) != 1 || verrs[0].Code != CodeInvalidFormat || verrs[0].Field != tt.field {
				t.Errorf("Validate() = %v, want one %s error on %s", verrs, CodeInvalidFormat, tt.field)
			}
		})
	}
}

func TestValidID(t *testing.T) {
	for _, id := range []string{"neck", "chin-tucks", "side_plank", "A1", strings.Repeat("a", 64)} {
		if !ValidID(id) {
			t.Errorf("ValidID(%q) = false, want true", id)
		}
	}
	for _, id := range []string{"", "neck stretches", "chin.tucks", "-neck", "_x", strings.Repeat("a", 65), "café"} {
		if ValidID(id) {
			t.Errorf("ValidID(%q) = true, want false", id)
		}
	}
}

func TestLocationSet_Validate(t *testing.T) {
	set := LocationSet{Locations: []Location{
		{ID: "downtown", Name: "Downtown Clinic", Amenities: []Amenity{{Label: "Parking", Description: "Free garage parking"}}},
		{ID: "downtown", Name: "Copy"},
		{ID: "north", Name: "North", Amenities: []Amenity{{Label: "", Description: "orphan"}}},
	}}
	err := set.Validate()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error = %T, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(verrs), verrs)
	}

	bad := LocationSet{Locations: []Location{{ID: "west side", Name: "West Side"}}}
	if !errors.As(bad.Validate(), &verrs) || verrs[0].Code != CodeInvalidFormat {
		t.Errorf("location id with a space was accepted: %v", bad.Validate())
	}
	if l, ok := set.Find("north"); !ok || l.Name != "North" {
		t.Errorf("Find(north) = %v, %v", l, ok)
	}
}

func TestDomainError(t *testing.T) {
	cause := errors.New("boom")
	err := NewCatalogUnavailableError(cause)
	if !errors.Is(err, cause) {
		t.Error("DomainError should unwrap to its cause")
	}
	if err.Error() != "Exercise catalog could not be loaded: boom" {
		t.Errorf("Error() = %q", err.Error())
	}

	nf := NewExerciseNotFoundError("x1")
	if nf.Context["exercise_id"] != "x1" {
		t.Errorf("context = %v", nf.Context)
	}
}
