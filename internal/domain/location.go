package domain

import (
	"fmt"
	"strings"
)

// Amenity keeps label and description apart; views never split a combined string.
type Amenity struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Location is a clinic site shown on the location pages.
type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Hours     []string  `json:"hours"`
	Image     string    `json:"image"`
	MapURL    string    `json:"map_url"`
	Amenities []Amenity `json:"amenities"`
}

// LocationSet is the location document.
type LocationSet struct {
	Locations []Location `json:"locations"`
}

func (s LocationSet) Validate() error {
	var errs ValidationErrors
	seen := make(map[string]struct{}, len(s.Locations))
	for i, l := range s.Locations {
		prefix := fmt.Sprintf("locations[%d]", i)
		if strings.TrimSpace(l.ID) == "" {
			errs = append(errs, NewMissingFieldError(prefix+".id"))
		} else if !ValidID(l.ID) {
			errs = append(errs, NewInvalidFormatError(prefix+".id", l.ID))
		} else if _, dup := seen[l.ID]; dup {
			errs = append(errs, NewDuplicateError(prefix+".id", l.ID))
		} else {
			seen[l.ID] = struct{}{}
		}
		if strings.TrimSpace(l.Name) == "" {
			errs = append(errs, NewMissingFieldError(prefix+".name"))
		}
		for ai, a := range l.Amenities {
			if strings.TrimSpace(a.Label) == "" {
				errs = append(errs, NewMissingFieldError(fmt.Sprintf("%s.amenities[%d].label", prefix, ai)))
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s LocationSet) Find(id string) (Location, bool) {
	for _, l := range s.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}
