// Package source implements the fetchers for the exercise and location documents.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"neuro-site/internal/domain"
)

// FetchErrorKind separates the ways a fetch can fail.
type FetchErrorKind string

const (
	KindNetwork   FetchErrorKind = "network"
	KindStatus    FetchErrorKind = "status"
	KindMalformed FetchErrorKind = "malformed"
	KindStorage   FetchErrorKind = "storage"
)

// FetchError is returned by every source when the document cannot be produced.
type FetchError struct {
	Kind   FetchErrorKind
	Source string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Source, e.Status)
	default:
		return fmt.Sprintf("fetch %s: %s: %v", e.Source, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err carries a FetchError of the given kind.
func IsFetchError(err error, kind FetchErrorKind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}

// DecodeDataset parses and validates the exercise document.
// A document without a "categories" array is malformed, not empty.
func DecodeDataset(r io.Reader, sourceName string) (domain.Dataset, error) {
	var doc struct {
		Categories *[]domain.Category `json:"categories"`
	}
	if err := decodeDocument(r, &doc); err != nil {
		return domain.Dataset{}, &FetchError{Kind: KindMalformed, Source: sourceName, Err: err}
	}
	if doc.Categories == nil {
		return domain.Dataset{}, &FetchError{Kind: KindMalformed, Source: sourceName, Err: errors.New(`missing "categories"`)}
	}
	ds := domain.Dataset{Categories: *doc.Categories}
	if err := ds.Validate(); err != nil {
		return domain.Dataset{}, &FetchError{Kind: KindMalformed, Source: sourceName, Err: err}
	}
	return ds, nil
}

// DecodeLocations parses the location document.
func DecodeLocations(r io.Reader, sourceName string) (domain.LocationSet, error) {
	var doc struct {
		Locations *[]domain.Location `json:"locations"`
	}
	if err := decodeDocument(r, &doc); err != nil {
		return domain.LocationSet{}, &FetchError{Kind: KindMalformed, Source: sourceName, Err: err}
	}
	if doc.Locations == nil {
		return domain.LocationSet{}, &FetchError{Kind: KindMalformed, Source: sourceName, Err: errors.New(`missing "locations"`)}
	}
	set := domain.LocationSet{Locations: *doc.Locations}
	if err := set.Validate(); err != nil {
		return domain.LocationSet{}, &FetchError{Kind: KindMalformed, Source: sourceName, Err: err}
	}
	return set, nil
}

func decodeDocument(r io.Reader, v interface{}) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return errors.New("empty document")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after document")
	}
	return nil
}
