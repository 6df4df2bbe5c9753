package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string][]byte)}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bs, ok := m.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	return bs, nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *memStore) DeletePrefix(ctx context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func perform(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestMiddleware_ServesRepeatReadFromCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemStore()

	hits := 0
	r := gin.New()
	r.GET("/api/v1/yachts/:id", Middleware(store, time.Minute), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	first := perform(r, http.MethodGet, "/api/v1/yachts/7")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := perform(r, http.MethodGet, "/api/v1/yachts/7")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, hits, "second read must not reach the handler")
}

func TestMiddleware_DoesNotCacheFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemStore()

	r := gin.New()
	r.GET("/api/v1/yachts/:id", Middleware(store, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND"})
	})

	perform(r, http.MethodGet, "/api/v1/yachts/404")
	assert.Equal(t, 0, store.len())
}

func TestMiddleware_NilStorePassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hits := 0
	r := gin.New()
	r.GET("/api/v1/yachts", Middleware(nil, time.Minute), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{})
	})

	perform(r, http.MethodGet, "/api/v1/yachts")
	perform(r, http.MethodGet, "/api/v1/yachts")
	assert.Equal(t, 2, hits)
}

func TestInvalidate_DropsResourceAfterWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemStore()

	hits := 0
	r := gin.New()
	r.GET("/api/v1/yachts/:id", Middleware(store, time.Minute), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"version": hits})
	})
	r.PUT("/api/v1/yachts/:id", Invalidate(store, "yachts"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	perform(r, http.MethodGet, "/api/v1/yachts/7")
	cached := perform(r, http.MethodGet, "/api/v1/yachts/7")
	assert.Equal(t, "HIT", cached.Header().Get("X-Cache"))

	perform(r, http.MethodPut, "/api/v1/yachts/7")

	fresh := perform(r, http.MethodGet, "/api/v1/yachts/7")
	assert.Equal(t, "MISS", fresh.Header().Get("X-Cache"))
	assert.Equal(t, 2, hits, "read after write must reach the handler")
	assert.Contains(t, fresh.Body.String(), `"version":2`)
}

func TestInvalidate_KeepsOtherResources(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemStore()

	r := gin.New()
	r.GET("/api/v1/yachts", Middleware(store, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	r.GET("/api/v1/tours", Middleware(store, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	r.PUT("/api/v1/yachts/1", Invalidate(store, "yachts"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	perform(r, http.MethodGet, "/api/v1/yachts")
	perform(r, http.MethodGet, "/api/v1/tours")
	require.Equal(t, 2, store.len())

	perform(r, http.MethodPut, "/api/v1/yachts/1")

	assert.Equal(t, 1, store.len())
	tours := perform(r, http.MethodGet, "/api/v1/tours")
	assert.Equal(t, "HIT", tours.Header().Get("X-Cache"))
}

func TestInvalidate_SkipsFailedMutations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemStore()

	r := gin.New()
	r.GET("/api/v1/yachts/:id", Middleware(store, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	r.PUT("/api/v1/yachts/:id", Invalidate(store, "yachts"), func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR"})
	})

	perform(r, http.MethodGet, "/api/v1/yachts/7")
	require.Equal(t, 1, store.len())

	perform(r, http.MethodPut, "/api/v1/yachts/7")
	assert.Equal(t, 1, store.len(), "rejected write must not evict")
}

func TestResourceExtraction(t *testing.T) {
	assert.Equal(t, "yachts", resource("/api/v1/yachts/7"))
	assert.Equal(t, "yachts", resource("/api/v1/yachts"))
	assert.Equal(t, "states", resource("/api/v1/states/3"))
	assert.Equal(t, "root", resource("/api/v1"))
}
