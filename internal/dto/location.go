package dto

// AmenityResponse keeps label and description apart
type AmenityResponse struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// LocationResponse represents a clinic location
// @Description Clinic location
type LocationResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Address   string            `json:"address"`
	City      string            `json:"city"`
	Phone     string            `json:"phone"`
	Hours     []string          `json:"hours"`
	Image     string            `json:"image"`
	MapURL    string            `json:"map_url,omitempty"`
	Amenities []AmenityResponse `json:"amenities"`
}

// LocationListResponse wraps the location list
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}
