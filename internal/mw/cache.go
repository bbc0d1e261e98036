package mw

import (
	"bytes"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const cacheHeader = "X-Cache"

type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

// recordingWriter copies everything written to the client into buf.
type recordingWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Headers that belong to one exchange and are never replayed.
var uncachedHeaders = []string{RequestIDHeader, cacheHeader}

// ResponseCache keeps successful GET responses keyed by request URI. Any
// successful non-GET request through Handler empties it.
//
// Every Invalidate starts a new generation. A GET only stores its response if
// no invalidation happened while it was being served, so a read that raced a
// write is never cached.
type ResponseCache struct {
	entries *cache.Cache
	ttl     time.Duration

	mu         sync.Mutex
	generation uint64
}

// NewResponseCache creates a cache whose entries live for ttl.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		entries: cache.New(ttl, 2*ttl),
		ttl:     ttl,
	}
}

// Invalidate drops every cached response.
func (rc *ResponseCache) Invalidate() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.generation++
	rc.entries.Flush()
}

func (rc *ResponseCache) currentGeneration() uint64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.generation
}

// store saves resp unless the cache was invalidated after generation.
func (rc *ResponseCache) store(key string, generation uint64, resp cachedResponse) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.generation == generation {
		rc.entries.Set(key, resp, rc.ttl)
	}
}

// Len reports how many responses are cached.
func (rc *ResponseCache) Len() int {
	return rc.entries.ItemCount()
}

// Handler returns the middleware. A request sent with Cache-Control: no-cache
// skips the lookup but still refreshes the entry.
func (rc *ResponseCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			if isSuccess(c.Writer.Status()) {
				rc.Invalidate()
			}
			return
		}

		key := c.Request.URL.RequestURI()
		if !bypassCache(c.Request) {
			if v, ok := rc.entries.Get(key); ok {
				rc.replay(c, v.(cachedResponse))
				return
			}
		}

		generation := rc.currentGeneration()
		rw := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rw
		c.Header(cacheHeader, "MISS")

		c.Next()

		if isSuccess(rw.Status()) {
			header := rw.Header().Clone()
			for _, h := range uncachedHeaders {
				header.Del(h)
			}
			rc.store(key, generation, cachedResponse{
				status: rw.Status(),
				header: header,
				body:   bytes.Clone(rw.buf.Bytes()),
			})
		}
	}
}

func (rc *ResponseCache) replay(c *gin.Context, resp cachedResponse) {
	h := c.Writer.Header()
	for k, v := range resp.header {
		h[k] = v
	}
	h.Set(cacheHeader, "HIT")
	c.Writer.WriteHeader(resp.status)
	_, _ = c.Writer.Write(resp.body)
	c.Abort()
}

func bypassCache(r *http.Request) bool {
	return strings.Contains(strings.ToLower(r.Header.Get("Cache-Control")), "no-cache")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
