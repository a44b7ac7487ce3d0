package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LaithTanirah/football/pkg/jwt"
	"github.com/LaithTanirah/football/pkg/logger"
	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type fakeReader struct {
	files map[string][]byte
	err   error
}

func (f *fakeReader) Open(_ context.Context, name string) (io.ReadCloser, string, int64, error) {
	if f.err != nil {
		return nil, "", 0, f.err
	}
	data, ok := f.files[name]
	if !ok {
		return nil, "", 0, domain.ErrAssetNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), "image/svg+xml", int64(len(data)), nil
}

type readyStore struct{ err error }

func (s readyStore) Init(context.Context) error  { return nil }
func (s readyStore) Ready(context.Context) error { return s.err }
func (s readyStore) Save(context.Context, string, []byte, string) (string, int64, error) {
	return "", 0, errors.New("not used")
}

func newReaderRouter(t *testing.T, reader domain.AssetReader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(RouterConfig{
		Service:       &mockUploadService{},
		Store:         readyStore{},
		Reader:        reader,
		TokenManager:  jwt.NewTokenManagerWithoutRedis(testSecret),
		Log:           logger.NewWithWriter("error", io.Discard),
		MaxImageBytes: 2 << 20,
		URLPrefix:     "/uploads",
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return router
}

func TestServeAsset_Found(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	router := newReaderRouter(t, &fakeReader{files: map[string][]byte{"team-logo-u1-1-abc.svg": svg}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/uploads/team-logo-u1-1-abc.svg", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), svg) {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "image/svg+xml" {
		t.Errorf("expected image/svg+xml, got %q", got)
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("expected a content security policy on served assets")
	}
	if rec.Header().Get("Cache-Control") != assetCacheControl {
		t.Errorf("unexpected cache control %q", rec.Header().Get("Cache-Control"))
	}
}

func TestServeAsset_NotFound(t *testing.T) {
	router := newReaderRouter(t, &fakeReader{files: map[string][]byte{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/uploads/missing.png", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Code != domain.CodeNotFound {
		t.Errorf("expected %s, got %s", domain.CodeNotFound, resp.Code)
	}
}

func TestServeAsset_BackendError_Returns500(t *testing.T) {
	router := newReaderRouter(t, &fakeReader{err: errors.New("connection reset")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/uploads/a.png", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Code != domain.CodeInternal {
		t.Errorf("expected %s, got %s", domain.CodeInternal, resp.Code)
	}
}

func TestHealth_StoreNotReady_Returns503(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHealthHandler(readyStore{err: errors.New("container missing")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/healthz", nil)
	h.Health(c)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestUnknownRoute_ReturnsJSON404(t *testing.T) {
	router := newReaderRouter(t, &fakeReader{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/nowhere", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Code != domain.CodeNotFound {
		t.Errorf("expected %s, got %s", domain.CodeNotFound, resp.Code)
	}
}

func TestMaxRequestBytes_CoversEncodedImage(t *testing.T) {
	if got := MaxRequestBytes(3); got != 4+bodySlack {
		t.Errorf("expected %d, got %d", 4+bodySlack, got)
	}
}
