package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazelkitchen/recipebook/backend/internal/model"
)

// blobServer fakes a hosted JSON blob: GET returns the payload, PUT replaces
// it wholesale.
type blobServer struct {
	mu   sync.Mutex
	body []byte
}

func (b *blobServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			w.Write(b.body)
		case http.MethodPut:
			data, _ := io.ReadAll(r.Body)
			b.body = data
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func TestBlobStoreRoundTrip(t *testing.T) {
	backend := &blobServer{body: []byte(`{"recipes":[],"nextId":1}`)}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	s := NewBlobStore(srv.URL)
	ctx := context.Background()

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Recipes)
	assert.Equal(t, int64(1), doc.NextID)

	doc.Recipes = append(doc.Recipes, model.Recipe{ID: 1, Title: "Soup", Author: "A"})
	doc.NextID = 2
	require.NoError(t, s.Save(ctx, doc))

	reloaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded.Recipes, 1)
	assert.Equal(t, "Soup", reloaded.Recipes[0].Title)
	assert.Equal(t, int64(2), reloaded.NextID)
}

func TestBlobStoreLoadRepairsMissingNextID(t *testing.T) {
	backend := &blobServer{body: []byte(`{"recipes":[{"id":7,"title":"Soup","author":"A"}]}`)}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	doc, err := NewBlobStore(srv.URL).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), doc.NextID)
}

func TestBlobStoreSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewBlobStore(srv.URL)
	ctx := context.Background()

	_, err := s.Load(ctx)
	assert.Error(t, err)

	err = s.Save(ctx, &Document{NextID: 1})
	assert.Error(t, err)
}
