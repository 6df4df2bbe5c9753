package cache

import (
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"nautica/pkg/logger"
)

const keyPrefix = "nautica:http"

// maxCachedBody caps what we are willing to hold per entry.
const maxCachedBody = 1 << 20 // 1MB

// captureWriter tees the response body while forwarding to the client.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if w.buf.Len() < maxCachedBody {
		w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// resource names the cache bucket for a request path: the first path
// segment after the API prefix. Keys are grouped by resource so writes
// can drop every cached read of the entity family they touched.
func resource(path string) string {
	path = strings.TrimPrefix(path, "/api/v1")
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}

// resourcePrefix is the shared key prefix for one resource's entries.
func resourcePrefix(res string) string {
	return keyPrefix + ":" + res + ":"
}

// key builds a stable cache key from method, path and query.
func key(r *http.Request) string {
	sum := sha1.Sum([]byte(r.Method + ":" + r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s%x", resourcePrefix(resource(r.URL.Path)), sum[:])
}

// encode packs [4 bytes status][content-type][0x00][body].
func encode(status int, contentType string, body []byte) []byte {
	out := make([]byte, 4+len(contentType)+1+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	copy(out[4:], contentType)
	out[4+len(contentType)] = 0
	copy(out[4+len(contentType)+1:], body)
	return out
}

func decode(bs []byte) (status int, contentType string, body []byte, ok bool) {
	if len(bs) < 5 {
		return 0, "", nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	sep := bytes.IndexByte(bs[4:], 0)
	if sep < 0 {
		return 0, "", nil, false
	}
	contentType = string(bs[4 : 4+sep])
	body = bs[4+sep+1:]
	return status, contentType, body, true
}

// Middleware caches successful GET responses for ttl. A nil store
// disables caching entirely.
func Middleware(store Store, ttl time.Duration) gin.HandlerFunc {
	if store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		k := key(c.Request)

		if bs, err := store.Get(ctx, k); err == nil {
			if status, contentType, body, ok := decode(bs); ok {
				c.Header("X-Cache", "HIT")
				c.Data(status, contentType, body)
				c.Abort()
				return
			}
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header("X-Cache", "MISS")

		c.Next()

		status := c.Writer.Status()
		if status != http.StatusOK || len(c.Errors) > 0 || cw.buf.Len() >= maxCachedBody {
			return
		}

		payload := encode(status, c.Writer.Header().Get("Content-Type"), cw.buf.Bytes())
		if err := store.Set(ctx, k, payload, ttl); err != nil {
			logger.Warn(ctx, "cache store failed", "key", k, "error", err)
		}
	}
}

// Invalidate drops the cached entries of the given resources after a
// successful mutation, so writes are visible to the next read instead
// of waiting out the TTL. A nil store is a passthrough.
func Invalidate(store Store, resources ...string) gin.HandlerFunc {
	if store == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest || len(c.Errors) > 0 {
			return
		}

		ctx := c.Request.Context()
		for _, res := range resources {
			if err := store.DeletePrefix(ctx, resourcePrefix(res)); err != nil {
				logger.Warn(ctx, "cache invalidation failed", "resource", res, "error", err)
			}
		}
	}
}
