package source

import (
	"context"
	"os"

	"neuro-site/internal/domain"
)

// FileSource reads the exercise document from disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return domain.Dataset{}, &FetchError{Kind: KindStorage, Source: s.path, Err: err}
	}
	defer f.Close()
	return DecodeDataset(f, s.path)
}

// FileLocationSource reads the location document from disk.
type FileLocationSource struct {
	path string
}

func NewFileLocationSource(path string) *FileLocationSource {
	return &FileLocationSource{path: path}
}

func (s *FileLocationSource) FetchLocations(ctx context.Context) (domain.LocationSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.LocationSet{}, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return domain.LocationSet{}, &FetchError{Kind: KindStorage, Source: s.path, Err: err}
	}
	defer f.Close()
	return DecodeLocations(f, s.path)
}
