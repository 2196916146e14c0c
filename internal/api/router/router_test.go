package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/config"
	"github.com/yessenovuniversity/canvas-db/internal/api/handler"
	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/service"
)

// emptyNavigator 没有任何数据的导航器
type emptyNavigator struct{}

func (emptyNavigator) Entities() []string { return nil }

func (emptyNavigator) Edges(string) ([]string, error) { return nil, nil }

func (emptyNavigator) Get(context.Context, string, int64) (model.Entity, error) { return nil, nil }

func (emptyNavigator) Follow(context.Context, string, int64, string) (model.Entity, error) {
	return nil, nil
}

var _ handler.Navigator = (*service.Relations)(nil)

func newTestEngine() http.Handler {
	cfg := &config.Config{Server: config.ServerConfig{Mode: "test"}}
	h := handler.NewHandler(emptyNavigator{}, func(context.Context) error { return nil }, zap.NewNop())
	return Setup(cfg, h, zap.NewNop())
}

func TestSetup_Routes(t *testing.T) {
	r := newTestEngine()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/catalog", http.StatusOK},
		{http.MethodGet, "/api/v1/courses/10", http.StatusNotFound},
		{http.MethodGet, "/api/v1/courses/10/account", http.StatusNotFound},
		{http.MethodPost, "/api/v1/courses/10", http.StatusNotFound},
		{http.MethodDelete, "/api/v1/courses/10", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != tt.want {
			t.Errorf("%s %s: 期望 %d，实际 %d", tt.method, tt.path, tt.want, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s %s: 缺少 X-Request-ID", tt.method, tt.path)
		}
	}
}
