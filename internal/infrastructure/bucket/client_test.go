package bucket

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nautica/internal/core/apperror"
)

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key", "products")

	url, err := c.Upload(context.Background(), "yachts/4/photo.webp", "image/webp", []byte("img-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/products/yachts/4/photo.webp", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "image/webp", gotType)
	assert.Equal(t, []byte("img-bytes"), gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/products/yachts/4/photo.webp", url)
}

func TestUpload_EmptyData(t *testing.T) {
	c := NewClient("http://storage.local", "key", "products")

	_, err := c.Upload(context.Background(), "x.webp", "image/webp", nil)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestUpload_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "products")

	_, err := c.Upload(context.Background(), "dup.webp", "image/webp", []byte("x"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestDelete_MissingObjectIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "products")

	assert.NoError(t, c.Delete(context.Background(), "ghost.webp"))
}
