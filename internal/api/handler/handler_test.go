package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/service"
	pkgerrors "github.com/yessenovuniversity/canvas-db/pkg/errors"
	"github.com/yessenovuniversity/canvas-db/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Navigator
// ═══════════════════════════════════════════════════════════

type mockNavigator struct {
	rows  map[string]model.Entity // key: entity/id
	edges map[string]model.Entity // key: entity/id/relation
	err   error
}

func (m *mockNavigator) Entities() []string { return []string{"accounts", "courses"} }

func (m *mockNavigator) Edges(entity string) ([]string, error) {
	if entity == "courses" {
		return []string{"account", "root_account", "wiki"}, nil
	}
	return []string{}, nil
}

func (m *mockNavigator) Get(_ context.Context, entity string, id int64) (model.Entity, error) {
	if m.err != nil {
		return nil, m.err
	}
	if entity != "accounts" && entity != "courses" {
		return nil, fmt.Errorf("%w: %s", service.ErrUnknownEntity, entity)
	}
	return m.rows[fmt.Sprintf("%s/%d", entity, id)], nil
}

func (m *mockNavigator) Follow(ctx context.Context, entity string, id int64, relation string) (model.Entity, error) {
	src, err := m.Get(ctx, entity, id)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, pkgerrors.ErrNotFound
	}
	target, ok := m.edges[fmt.Sprintf("%s/%d/%s", entity, id, relation)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrUnknownRelation, relation)
	}
	return target, nil
}

func newMockNavigator() *mockNavigator {
	name := func(s string) *string { return &s }
	id := func(v int64) *int64 { return &v }

	dept := &model.Account{ID: 1, Name: name("Dept A")}
	univ := &model.Account{ID: 2, Name: name("University")}
	course := &model.Course{ID: 10, Name: name("Biology 101"), AccountID: id(1), RootAccountID: id(2)}

	return &mockNavigator{
		rows: map[string]model.Entity{
			"accounts/1": dept,
			"accounts/2": univ,
			"courses/10": course,
		},
		edges: map[string]model.Entity{
			"courses/10/account":      dept,
			"courses/10/root_account": univ,
			"courses/10/wiki":         nil,
		},
	}
}

// ═══════════════════════════════════════════════════════════
// Helpers
// ═══════════════════════════════════════════════════════════

func setupRouter(nav Navigator, ping Pinger) *gin.Engine {
	h := NewHandler(nav, ping, zap.NewNop())
	r := gin.New()
	r.GET("/health", h.Health.Check)
	r.GET("/api/catalog", h.Entity.ListEntities)
	r.GET("/api/v1/:entity/:id", h.Entity.GetEntity)
	r.GET("/api/v1/:entity/:id/:relation", h.Entity.FollowRelation)
	return r
}

func okPing(context.Context) error { return nil }

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func dataField(t *testing.T, resp response.Response, key string) any {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("data 不是对象: %v", resp.Data)
	}
	return data[key]
}

// ═══════════════════════════════════════════════════════════
// EntityHandler Tests
// ═══════════════════════════════════════════════════════════

func TestEntityHandler_GetEntity_Success(t *testing.T) {
	r := setupRouter(newMockNavigator(), okPing)

	w := doGet(r, "/api/v1/courses/10")

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("期望 code=0，实际 %d", resp.Code)
	}
	if got := dataField(t, resp, "label"); got != "Biology 101" {
		t.Errorf("期望 label=Biology 101，实际 %v", got)
	}
	if got := dataField(t, resp, "entity"); got != "courses" {
		t.Errorf("期望 entity=courses，实际 %v", got)
	}
	if got := dataField(t, resp, "display"); got != "<Course Biology 101 (id=10)>" {
		t.Errorf("display 不符: %v", got)
	}
}

func TestEntityHandler_GetEntity_NotFound(t *testing.T) {
	r := setupRouter(newMockNavigator(), okPing)

	w := doGet(r, "/api/v1/courses/404")

	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际 %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != response.CodeNotFound {
		t.Errorf("期望 code=%d，实际 %d", response.CodeNotFound, resp.Code)
	}
}

func TestEntityHandler_GetEntity_BadRequests(t *testing.T) {
	r := setupRouter(newMockNavigator(), okPing)

	for _, path := range []string{"/api/v1/courses/abc", "/api/v1/courses/0", "/api/v1/groups/1"} {
		w := doGet(r, path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: 期望 400，实际 %d", path, w.Code)
			continue
		}
		if resp := parseResponse(w); resp.Code != response.CodeInvalidParam {
			t.Errorf("%s: 期望 code=%d，实际 %d", path, response.CodeInvalidParam, resp.Code)
		}
	}
}

func TestEntityHandler_ErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"存储不可用", fmt.Errorf("load: %w", pkgerrors.ErrStorageUnavailable), http.StatusServiceUnavailable, response.CodeStorageUnavailable},
		{"结构不匹配", pkgerrors.ErrSchemaMismatch, http.StatusInternalServerError, response.CodeSchemaMismatch},
		{"多态类型未注册", service.ErrUnknownPolymorphicType, http.StatusUnprocessableEntity, response.CodeUnresolvableRef},
		{"未知错误", errors.New("boom"), http.StatusInternalServerError, response.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := newMockNavigator()
			nav.err = tt.err
			r := setupRouter(nav, okPing)

			w := doGet(r, "/api/v1/courses/10")
			if w.Code != tt.wantStatus {
				t.Fatalf("期望 %d，实际 %d", tt.wantStatus, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.wantCode {
				t.Errorf("期望 code=%d，实际 %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestEntityHandler_FollowRelation(t *testing.T) {
	r := setupRouter(newMockNavigator(), okPing)

	tests := []struct {
		path       string
		wantStatus int
		wantCode   int
		wantLabel  string
	}{
		{"/api/v1/courses/10/account", http.StatusOK, 0, "Dept A"},
		{"/api/v1/courses/10/root_account", http.StatusOK, 0, "University"},
		{"/api/v1/courses/10/wiki", http.StatusNotFound, response.CodeNotFound, ""},
		{"/api/v1/courses/404/account", http.StatusNotFound, response.CodeNotFound, ""},
		{"/api/v1/courses/10/instructors", http.StatusBadRequest, response.CodeInvalidParam, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doGet(r, tt.path)
			if w.Code != tt.wantStatus {
				t.Fatalf("期望 %d，实际 %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("期望 code=%d，实际 %d", tt.wantCode, resp.Code)
			}
			if tt.wantLabel == "" {
				return
			}
			target, ok := dataField(t, resp, "target").(map[string]any)
			if !ok || target["label"] != tt.wantLabel {
				t.Errorf("期望目标 %q，实际 %v", tt.wantLabel, target)
			}
		})
	}
}

func TestEntityHandler_ListEntities(t *testing.T) {
	r := setupRouter(newMockNavigator(), okPing)

	w := doGet(r, "/api/catalog")
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
	list, ok := dataField(t, parseResponse(w), "list").([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("期望 2 个实体，实际 %v", list)
	}
}

// ═══════════════════════════════════════════════════════════
// HealthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestHealthHandler(t *testing.T) {
	r := setupRouter(newMockNavigator(), okPing)
	if w := doGet(r, "/health"); w.Code != http.StatusOK {
		t.Errorf("期望 200，实际 %d", w.Code)
	}

	down := func(context.Context) error { return pkgerrors.ErrStorageUnavailable }
	r = setupRouter(newMockNavigator(), down)
	w := doGet(r, "/health")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("期望 503，实际 %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != response.CodeStorageUnavailable {
		t.Errorf("期望 code=%d，实际 %d", response.CodeStorageUnavailable, resp.Code)
	}
}
