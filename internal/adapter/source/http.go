package source

import (
	"context"
	"io"
	"net/http"
	"time"

	"neuro-site/internal/domain"
	"neuro-site/internal/logger"

	"go.uber.org/zap"
)

// maxDocumentSize bounds the body read from the static resource.
const maxDocumentSize = 8 << 20

// HTTPSource GETs the exercise document from a URL. One call is one request.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{url: url, client: &http.Client{Timeout: timeout}}
}

// NewHTTPSourceWithClient is used by tests to inject an httptest client.
func NewHTTPSourceWithClient(url string, client *http.Client) *HTTPSource {
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context) (domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return domain.Dataset{}, &FetchError{Kind: KindNetwork, Source: s.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Dataset{}, &FetchError{Kind: KindNetwork, Source: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Get().Warn("Exercise document request returned non-success status",
			zap.String("url", s.url),
			zap.Int("status", resp.StatusCode),
		)
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return domain.Dataset{}, &FetchError{Kind: KindStatus, Source: s.url, Status: resp.StatusCode}
	}

	return DecodeDataset(io.LimitReader(resp.Body, maxDocumentSize), s.url)
}
