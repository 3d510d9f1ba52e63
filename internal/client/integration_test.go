package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"casaflow/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory /api/properties backend exercising the accessor against the real
// domain model and response envelopes.
type propertyBackend struct {
	mu         sync.Mutex
	properties map[string]models.Property
}

func (b *propertyBackend) handler() http.Handler {
	mux := chi.NewRouter()
	mux.Get("/api/properties", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := make([]models.Property, 0, len(b.properties))
		for _, p := range b.properties {
			list = append(list, p)
		}
		writeJSON(w, 200, map[string]any{"data": list})
	})
	mux.Post("/api/properties", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		property := models.Property{ID: uuid.New(), Name: "Maple Court", Address: "12 Maple St"}
		b.properties[property.ID.String()] = property
		writeJSON(w, 201, map[string]any{"data": property})
	})
	mux.Get("/api/properties/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		property, ok := b.properties[chi.URLParam(r, "id")]
		if !ok {
			writeJSON(w, 404, map[string]any{"message": "PROPERTY_NOT_FOUND"})
			return
		}
		writeJSON(w, 200, map[string]any{"data": property})
	})
	mux.Delete("/api/properties/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		id := chi.URLParam(r, "id")
		if _, ok := b.properties[id]; !ok {
			writeJSON(w, 404, map[string]any{"message": "PROPERTY_NOT_FOUND"})
			return
		}
		delete(b.properties, id)
		w.WriteHeader(204)
	})
	return mux
}

func TestResourceWithDomainModel(t *testing.T) {
	backend := &propertyBackend{properties: map[string]models.Property{}}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	resource := NewResource[models.Property](New(server.URL), NewStore(), "properties")
	ctx := context.Background()

	created, err := resource.Create(ctx, models.PropertyCreateBody{Name: "Maple Court", Address: "12 Maple St"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := resource.Get(ctx, created.Identity())
	require.NoError(t, err)
	assert.Equal(t, created.Identity(), fetched.Identity())

	list, err := resource.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, resource.Delete(ctx, created.Identity()))

	_, err = resource.Get(ctx, created.Identity())
	require.Error(t, err, "deleted item must not be served from cache")
}
