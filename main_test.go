package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func writeFrontendFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"index.html":    "<html>app shell</html>",
		"favicon.ico":   "icon-bytes",
		"assets/app.js": "console.log('bundle')",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newFrontendRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	serveFrontend(router, writeFrontendFixture(t))
	return router
}

func TestServeFrontendAssets(t *testing.T) {
	router := newFrontendRouter(t)

	tests := []struct {
		name     string
		path     string
		wantBody string
		wantType string
	}{
		{
			name:     "js bundle served as file",
			path:     "/assets/app.js",
			wantBody: "console.log('bundle')",
			wantType: "javascript",
		},
		{
			name:     "favicon served as file",
			path:     "/favicon.ico",
			wantBody: "icon-bytes",
		},
		{
			name:     "client route falls back to index",
			path:     "/events/68b1c2d3e4f5a6b7c8d9e0f1",
			wantBody: "<html>app shell</html>",
			wantType: "text/html",
		},
		{
			name:     "root serves index",
			path:     "/",
			wantBody: "<html>app shell</html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
			if tt.wantType != "" && !strings.Contains(w.Header().Get("Content-Type"), tt.wantType) {
				t.Errorf("content-type = %q, want %q", w.Header().Get("Content-Type"), tt.wantType)
			}
		})
	}
}

func TestServeFrontendUnknownAPIRoute(t *testing.T) {
	router := newFrontendRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("api miss served html, content-type = %q", w.Header().Get("Content-Type"))
	}
}

func TestServeFrontendTraversalStaysInDir(t *testing.T) {
	router := newFrontendRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/assets/../../../../etc/passwd", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "<html>app shell</html>" {
		t.Errorf("body = %q, want index fallback", w.Body.String())
	}
}
