package catalog

import (
	"path"
	"strings"
)

// ImageResolver turns image references from the data into URLs under the
// image route. Missing references resolve to the fallback image.
type ImageResolver struct {
	BaseURL  string
	Fallback string
}

func NewImageResolver(baseURL, fallback string) ImageResolver {
	return ImageResolver{BaseURL: strings.TrimRight(baseURL, "/"), Fallback: fallback}
}

func (r ImageResolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return r.FallbackURL()
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return r.BaseURL + path.Clean("/"+ref)
}

func (r ImageResolver) FallbackURL() string {
	return r.BaseURL + path.Clean("/"+r.Fallback)
}
