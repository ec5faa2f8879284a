package dto

// TranslationsResponse is the resolved page copy for one locale
// @Description Resolved translations
type TranslationsResponse struct {
	Locale    string            `json:"locale"`
	Supported bool              `json:"supported"`
	Strings   map[string]string `json:"strings"`
}

// HealthResponse reports liveness and optional dependency state
type HealthResponse struct {
	Status       string            `json:"status"` // ok | degraded
	Catalog      string            `json:"catalog"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}
