package service

import (
	"neuro-site/internal/catalog"
	"neuro-site/internal/domain"
	"neuro-site/internal/dto"
)

// LocationService serves the clinic location pages.
type LocationService interface {
	ListLocations() *dto.LocationListResponse
	GetLocation(id string) (*dto.LocationResponse, error)
}

type locationService struct {
	locations domain.LocationSet
	images    catalog.ImageResolver
}

func NewLocationService(locations domain.LocationSet, images catalog.ImageResolver) LocationService {
	return &locationService{locations: locations, images: images}
}

func (s *locationService) ListLocations() *dto.LocationListResponse {
	out := make([]dto.LocationResponse, 0, len(s.locations.Locations))
	for _, l := range s.locations.Locations {
		out = append(out, s.toResponse(l))
	}
	return &dto.LocationListResponse{Locations: out}
}

func (s *locationService) GetLocation(id string) (*dto.LocationResponse, error) {
	l, ok := s.locations.Find(id)
	if !ok {
		return nil, domain.NewLocationNotFoundError(id)
	}
	resp := s.toResponse(l)
	return &resp, nil
}

func (s *locationService) toResponse(l domain.Location) dto.LocationResponse {
	amenities := make([]dto.AmenityResponse, 0, len(l.Amenities))
	for _, a := range l.Amenities {
		amenities = append(amenities, dto.AmenityResponse{Label: a.Label, Description: a.Description})
	}
	hours := l.Hours
	if hours == nil {
		hours = []string{}
	}
	return dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		City:      l.City,
		Phone:     l.Phone,
		Hours:     hours,
		Image:     s.images.Resolve(l.Image),
		MapURL:    l.MapURL,
		Amenities: amenities,
	}
}
