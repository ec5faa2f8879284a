package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDocument))
	}))
	defer server.Close()

	src := NewHTTPSourceWithClient(server.URL+"/data/exercises.json", server.Client())
	ds, err := src.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestHTTPSource_Fetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL, 2*time.Second)
	ds, err := src.Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, IsFetchError(err, KindStatus))
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusInternalServerError, fe.Status)
	assert.Equal(t, 0, ds.Len())
}

func TestHTTPSource_Fetch_Malformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"categories": [`))
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, time.Second).Fetch(context.Background())

	assert.True(t, IsFetchError(err, KindMalformed))
}

func TestHTTPSource_Fetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPSource(url, time.Second).Fetch(context.Background())

	assert.True(t, IsFetchError(err, KindNetwork))
}

func TestHTTPSource_Fetch_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPSource(server.URL, 5*time.Second).Fetch(ctx)

	require.Error(t, err)
	assert.True(t, IsFetchError(err, KindNetwork))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
