package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"villa-api-backend/config"
	"villa-api-backend/internal/errs"
	"villa-api-backend/internal/model"
	"villa-api-backend/internal/store"
	"villa-api-backend/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	s := store.NewGormStore(testutil.NewSQLiteDB(t))
	return NewRouter(s, config.ServerConfig{}, nil), s
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorFields(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	e := decode[errs.HTTPError](t, w)
	fields := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		fields = append(fields, f.Field)
	}
	return fields
}

// stubStore fails the test when a repository is requested without being set.
type stubStore struct {
	t       *testing.T
	villas  store.Repository[model.Villa]
	numbers store.Repository[model.VillaNumber]
	pingErr error
}

func (s *stubStore) Villas() store.Repository[model.Villa] {
	if s.villas == nil {
		s.t.Fatalf("villa storage was touched")
	}
	return s.villas
}

func (s *stubStore) VillaNumbers() store.Repository[model.VillaNumber] {
	if s.numbers == nil {
		s.t.Fatalf("villa number storage was touched")
	}
	return s.numbers
}

func (s *stubStore) Ping(context.Context) error { return s.pingErr }

// failingRepo returns err from every operation.
type failingRepo[T any] struct{ err error }

func (r failingRepo[T]) GetAll(context.Context, ...store.Predicate) ([]T, error) { return nil, r.err }
func (r failingRepo[T]) Get(context.Context, bool, ...store.Predicate) (*T, error) {
	return nil, r.err
}
func (r failingRepo[T]) Create(context.Context, *T) error { return r.err }
func (r failingRepo[T]) Update(context.Context, *T) error { return r.err }
func (r failingRepo[T]) Remove(context.Context, *T) error { return r.err }

// pausingVillas holds the first GetAll after it has read from the database
// until release is closed.
type pausingVillas struct {
	store.Repository[model.Villa]
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (p *pausingVillas) GetAll(ctx context.Context, preds ...store.Predicate) ([]model.Villa, error) {
	out, err := p.Repository.GetAll(ctx, preds...)
	p.once.Do(func() {
		close(p.read)
		<-p.release
	})
	return out, err
}

type pausingStore struct {
	store.Store
	villas *pausingVillas
}

func (s *pausingStore) Villas() store.Repository[model.Villa] { return s.villas }
