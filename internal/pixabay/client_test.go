package pixabay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageURLReturnsFirstHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/", r.URL.Path)
		assert.Equal(t, "px-key", r.URL.Query().Get("key"))
		assert.Equal(t, "calm lake", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"total":2,"hits":[{"id":1,"largeImageURL":"https://img/1.jpg"},{"id":2,"largeImageURL":"https://img/2.jpg"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "px-key", time.Second)
	url, err := c.ImageURL(context.Background(), "calm lake")
	require.NoError(t, err)
	assert.Equal(t, "https://img/1.jpg", url)
}

func TestImageURLNoHits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":0,"hits":[]}`))
	}))
	defer srv.Close()

	url, err := NewClient(srv.URL, "k", time.Second).ImageURL(context.Background(), "volcano")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestImageURLErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "[ERROR 400] Invalid API key", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad", time.Second).ImageURL(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestDisabledClientSkipsLookup(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", time.Second)
	assert.False(t, c.Enabled())

	url, err := c.ImageURL(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, url)
}
