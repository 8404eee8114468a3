package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/DRSN-tech/catalog-service/internal/browser"
	"github.com/DRSN-tech/catalog-service/internal/cfg"
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/shopspring/decimal"
)

const (
	testJWTSecret     = "test-jwt-secret"
	testSessionSecret = "0123456789abcdef0123456789abcdef"
	testBasePath      = "/admin/services"
)

var (
	haircutID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	addonID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	spaID     = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

type fakeCatalogUC struct {
	mu         sync.Mutex
	items      []domain.CatalogItem
	listErr    error
	archiveErr error
	archived   []uuid.UUID
	actors     []domain.Role
}

func (f *fakeCatalogUC) List(ctx context.Context) ([]domain.CatalogItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCatalogUC) Get(ctx context.Context, id uuid.UUID) (*domain.CatalogItem, error) {
	for _, item := range f.items {
		if item.ID == id {
			item := item
			return &item, nil
		}
	}
	return nil, e.ErrItemNotFound
}

func (f *fakeCatalogUC) Archive(ctx context.Context, id uuid.UUID, actor domain.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.actors = append(f.actors, actor)
	if f.archiveErr != nil {
		return f.archiveErr
	}
	f.archived = append(f.archived, id)
	return nil
}

func testItems() []domain.CatalogItem {
	duration := 30
	spaDuration := 480
	return []domain.CatalogItem{
		{
			ID:              haircutID,
			Name:            "Haircut",
			Description:     "Classic cut",
			Price:           decimal.NewNullDecimal(decimal.RequireFromString("25")),
			DurationMinutes: &duration,
			IsActive:        true,
		},
		{ID: addonID, Name: "Shampoo Addon", Category: domain.AddonCategory, IsActive: true},
		{
			ID:              spaID,
			Name:            "Spa Day",
			Price:           decimal.NewNullDecimal(decimal.RequireFromString("199.99")),
			DurationMinutes: &spaDuration,
			IsPackage:       true,
			IsActive:        true,
		},
	}
}

func newTestRouter(t *testing.T, uc *fakeCatalogUC) http.Handler {
	t.Helper()

	config := &cfg.Config{
		Http: &cfg.HTTPConfig{
			CORSOrigins: []string{"*"},
			SwaggerURL:  "http://localhost/swagger/doc.json",
		},
		Auth: &cfg.AuthCfg{
			JWTSecret:     testJWTSecret,
			RoleClaim:     "role",
			SessionSecret: testSessionSecret,
		},
		Catalog: &cfg.CatalogCfg{AdminBasePath: testBasePath},
	}

	r := chi.NewRouter()
	router := NewRouter(r, logger.NewNop(), config, sessions.NewCookieStore([]byte(testSessionSecret)))
	if err := router.Init(uc); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	return r
}

func signToken(t *testing.T, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role})
	s, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return s
}

func doRequest(t *testing.T, h http.Handler, req *http.Request, role string) *httptest.ResponseRecorder {
	t.Helper()

	if role != "" {
		req.Header.Set("Authorization", "Bearer "+signToken(t, role))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListPage_Owner(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, testBasePath, nil), "owner")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"3 total (2 services, 1 packages)",
		"Create Service",
		"Create Package",
		"Haircut",
		"$25.00",
		"0.5h",
		"Add-on",
		"Package",
		testBasePath + "/" + haircutID.String() + "/archive",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
	if strings.Contains(body, "No access") {
		t.Fatalf("expected no 'No access' for owner")
	}
}

func TestListPage_NonOwnerSeesNoAccess(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, testBasePath, nil), "admin")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "No access") {
		t.Fatalf("expected 'No access' for admin")
	}
	if strings.Contains(body, "Create Service") {
		t.Fatalf("expected no create buttons for admin")
	}
}

func TestListPage_FilterAndSearch(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	req := httptest.NewRequest(http.MethodGet, testBasePath+"?type=package&tq=haircut", nil)
	rec := doRequest(t, h, req, "owner")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `<option value="package" selected>`) {
		t.Fatalf("expected package option to be selected")
	}
	// Ссылка архивации сохраняет текущие фильтры.
	if !strings.Contains(body, "/archive?tq=haircut&amp;type=package") {
		t.Fatalf("expected archive link to carry filters")
	}
}

func TestListPage_UnknownFilterShowsToast(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, testBasePath+"?type=bogus", nil), "owner")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "unknown type filter") {
		t.Fatalf("expected unknown filter toast")
	}
	if !strings.Contains(body, `<option value="all" selected>`) {
		t.Fatalf("expected filter to stay on all")
	}
}

func TestListPage_LoadError(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{listErr: errors.New("db down")})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, testBasePath, nil), "owner")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), browser.LoadFailureMessage) {
		t.Fatalf("expected load failure message")
	}
}

func TestListPage_Empty(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, testBasePath, nil), "owner")
	body := rec.Body.String()
	if !strings.Contains(body, browser.EmptyTitle) {
		t.Fatalf("expected empty state title")
	}
	if !strings.Contains(body, browser.EmptyCreateLabel) {
		t.Fatalf("expected create link in empty state")
	}
}

func TestDetailPage(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, testBasePath+"/"+spaID.String(), nil), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Spa Day") || !strings.Contains(body, "$199.99") || !strings.Contains(body, "8h") {
		t.Fatalf("expected item details in body")
	}
	if strings.Contains(body, "/archive") {
		t.Fatalf("expected no archive link for anonymous user")
	}

	rec = doRequest(t, h, httptest.NewRequest(http.MethodGet, testBasePath+"/"+uuid.NewString(), nil), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = doRequest(t, h, httptest.NewRequest(http.MethodGet, testBasePath+"/not-a-uuid", nil), "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestConfirmPage(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	path := testBasePath + "/" + haircutID.String() + "/archive?q=hair"
	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, path, nil), "owner")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Archive this service?") {
		t.Fatalf("expected confirmation prompt")
	}
	if !strings.Contains(body, `name="q" value="hair"`) {
		t.Fatalf("expected query to be preserved in form")
	}

	rec = doRequest(t, h, httptest.NewRequest(http.MethodGet, path, nil), "admin")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func postArchive(t *testing.T, h http.Handler, id uuid.UUID, form url.Values, role string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, testBasePath+"/"+id.String()+"/archive", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(t, h, req, role)
}

func followWithCookies(t *testing.T, h http.Handler, rec *httptest.ResponseRecorder, role string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, rec.Header().Get("Location"), nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return doRequest(t, h, req, role).Body.String()
}

func TestArchiveForm_Success(t *testing.T) {
	uc := &fakeCatalogUC{items: testItems()}
	h := newTestRouter(t, uc)

	form := url.Values{"confirm": {"yes"}, "q": {"hair"}, "type": {"service"}}
	rec := postArchive(t, h, haircutID, form, "owner")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != testBasePath+"?q=hair&type=service" {
		t.Fatalf("expected redirect with filters, got %q", loc)
	}
	if len(uc.archived) != 1 || uc.archived[0] != haircutID {
		t.Fatalf("expected haircut to be archived, got %v", uc.archived)
	}
	if uc.actors[0] != domain.RoleOwner {
		t.Fatalf("expected actor OWNER, got %q", uc.actors[0])
	}

	if body := followWithCookies(t, h, rec, "owner"); !strings.Contains(body, browser.ArchiveSuccessMessage) {
		t.Fatalf("expected success toast after redirect")
	}
}

func TestArchiveForm_Declined(t *testing.T) {
	uc := &fakeCatalogUC{items: testItems()}
	h := newTestRouter(t, uc)

	rec := postArchive(t, h, haircutID, url.Values{"confirm": {"no"}}, "owner")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if len(uc.archived) != 0 {
		t.Fatalf("expected no archive call, got %v", uc.archived)
	}
}

func TestArchiveForm_Forbidden(t *testing.T) {
	uc := &fakeCatalogUC{items: testItems()}
	h := newTestRouter(t, uc)

	rec := postArchive(t, h, haircutID, url.Values{"confirm": {"yes"}}, "admin")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if len(uc.actors) != 0 {
		t.Fatalf("expected no archive call, got %v", uc.actors)
	}
	if body := followWithCookies(t, h, rec, "admin"); !strings.Contains(body, e.ErrForbidden.Error()) {
		t.Fatalf("expected forbidden toast after redirect")
	}
}

func TestArchiveForm_Failure(t *testing.T) {
	uc := &fakeCatalogUC{items: testItems(), archiveErr: errors.New("boom")}
	h := newTestRouter(t, uc)

	rec := postArchive(t, h, haircutID, url.Values{"confirm": {"yes"}}, "owner")
	if body := followWithCookies(t, h, rec, "owner"); !strings.Contains(body, browser.ArchiveFailureMessage) {
		t.Fatalf("expected failure toast after redirect")
	}
}

func TestAPI_GetCatalog(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?q=spa", nil), "owner")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var view browser.View
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.Summary.Total != 3 || view.Summary.Packages != 1 {
		t.Fatalf("expected summary 3/1, got %+v", view.Summary)
	}
	if view.Compact == nil || len(view.Compact.Rows) != 1 || view.Compact.Rows[0].Name != "Spa Day" {
		t.Fatalf("expected only Spa Day in compact view, got %+v", view.Compact)
	}
	if view.Table == nil || len(view.Table.Rows) != 3 {
		t.Fatalf("expected full table, got %+v", view.Table)
	}
}

func TestAPI_GetCatalog_TableFollowsTypeFilter(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?type=addon", nil), "owner")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var view browser.View
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.Table == nil || len(view.Table.Rows) != 1 || view.Table.Rows[0].Name != "Shampoo Addon" {
		t.Fatalf("expected table [Shampoo Addon], got %+v", view.Table)
	}
}

func TestAPI_GetCatalog_EmptyTypeRejected(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?type=", nil), "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListPage_EmptyTypeShowsToast(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, testBasePath+"?type=", nil), "owner")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), e.ErrUnknownTypeFilter.Error()) {
		t.Fatalf("expected unknown filter toast for empty type")
	}
}

func TestAPI_GetCatalog_UnknownFilter(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?type=bogus", nil), "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Message != e.ErrUnknownTypeFilter.Error() {
		t.Fatalf("expected %q, got %q", e.ErrUnknownTypeFilter.Error(), resp.Message)
	}
}

func TestAPI_GetItem(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/"+addonID.String(), nil), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var item ItemResponse
	if err := json.NewDecoder(rec.Body).Decode(&item); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Kind != domain.KindAddon || item.Badge != "Add-on" || item.Price != browser.Placeholder {
		t.Fatalf("unexpected item %+v", item)
	}
}

func archiveAPI(t *testing.T, h http.Handler, id uuid.UUID, body, role string) (*httptest.ResponseRecorder, ArchiveResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/"+id.String()+"/archive", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(t, h, req, role)

	var resp ArchiveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return rec, resp
}

func TestAPI_Archive(t *testing.T) {
	tests := []struct {
		name        string
		uc          *fakeCatalogUC
		body        string
		role        string
		wantCode    int
		wantOutcome browser.ArchiveOutcome
		wantCalls   int
	}{
		{
			name:        "success",
			uc:          &fakeCatalogUC{items: testItems()},
			body:        `{"confirm":true}`,
			role:        "owner",
			wantCode:    http.StatusOK,
			wantOutcome: browser.ArchiveSucceeded,
			wantCalls:   1,
		},
		{
			name:        "declined",
			uc:          &fakeCatalogUC{items: testItems()},
			body:        `{"confirm":false}`,
			role:        "owner",
			wantCode:    http.StatusBadRequest,
			wantOutcome: browser.ArchiveDeclined,
		},
		{
			name:        "forbidden",
			uc:          &fakeCatalogUC{items: testItems()},
			body:        `{"confirm":true}`,
			role:        "inspector",
			wantCode:    http.StatusForbidden,
			wantOutcome: browser.ArchiveRefused,
		},
		{
			name:        "not found",
			uc:          &fakeCatalogUC{items: testItems(), archiveErr: e.ErrItemNotFound},
			body:        `{"confirm":true}`,
			role:        "owner",
			wantCode:    http.StatusNotFound,
			wantOutcome: browser.ArchiveFailed,
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t, tt.uc)

			rec, resp := archiveAPI(t, h, haircutID, tt.body, tt.role)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if resp.Outcome != tt.wantOutcome {
				t.Fatalf("expected outcome %q, got %q", tt.wantOutcome, resp.Outcome)
			}
			if len(tt.uc.actors) != tt.wantCalls {
				t.Fatalf("expected %d archive calls, got %d", tt.wantCalls, len(tt.uc.actors))
			}
		})
	}
}

func TestAPI_Archive_Notifications(t *testing.T) {
	uc := &fakeCatalogUC{items: testItems(), archiveErr: e.ErrItemNotFound}
	h := newTestRouter(t, uc)

	_, resp := archiveAPI(t, h, haircutID, `{"confirm":true}`, "owner")
	if len(resp.Notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(resp.Notifications))
	}
	if resp.Notifications[0].Kind != browser.NotifyError || resp.Notifications[0].Message != e.ErrItemNotFound.Error() {
		t.Fatalf("unexpected notification %+v", resp.Notifications[0])
	}
}

func TestAPI_Archive_BadJSON(t *testing.T) {
	h := newTestRouter(t, &fakeCatalogUC{items: testItems()})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/"+haircutID.String()+"/archive", strings.NewReader("{"))
	rec := doRequest(t, h, req, "owner")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestActorRole(t *testing.T) {
	var got domain.Role
	h := ActorRole(testJWTSecret, "role", logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RoleFromContext(r.Context())
	}))

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		wantCode int
		wantRole domain.Role
	}{
		{
			name:     "no token",
			setup:    func(r *http.Request) {},
			wantCode: http.StatusOK,
			wantRole: "",
		},
		{
			name: "bearer header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, "owner"))
			},
			wantCode: http.StatusOK,
			wantRole: domain.RoleOwner,
		},
		{
			name: "cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: accessTokenName, Value: signToken(t, "admin")})
			},
			wantCode: http.StatusOK,
			wantRole: domain.RoleAdmin,
		},
		{
			name: "invalid signature",
			setup: func(r *http.Request) {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "owner"})
				s, _ := token.SignedString([]byte("other-secret"))
				r.Header.Set("Authorization", "Bearer "+s)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "missing role claim",
			setup: func(r *http.Request) {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"})
				s, _ := token.SignedString([]byte(testJWTSecret))
				r.Header.Set("Authorization", "Bearer "+s)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = "unset"
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if tt.wantCode == http.StatusOK && got != tt.wantRole {
				t.Fatalf("expected role %q, got %q", tt.wantRole, got)
			}
		})
	}
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: e.ErrInvalidItemID, code: http.StatusBadRequest},
		{err: e.Wrap("op", e.ErrUnknownTypeFilter), code: http.StatusBadRequest},
		{err: e.ErrConfirmRequired, code: http.StatusBadRequest},
		{err: e.ErrUnauthorized, code: http.StatusUnauthorized},
		{err: e.ErrForbidden, code: http.StatusForbidden},
		{err: e.Wrap("op", e.ErrItemNotFound), code: http.StatusNotFound},
		{err: e.ErrArchivePending, code: http.StatusConflict},
		{err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if code, _ := ToHTTPResponse(tt.err); code != tt.code {
			t.Fatalf("%v: expected %d, got %d", tt.err, tt.code, code)
		}
	}
}

func TestPathNavigator(t *testing.T) {
	nav := NewPathNavigator(testBasePath)

	if got := nav.CreateServiceURL(); got != testBasePath+"/new?mode=service" {
		t.Fatalf("expected service create url, got %q", got)
	}
	if got := nav.CreatePackageURL(); got != testBasePath+"/new?mode=package" {
		t.Fatalf("expected package create url, got %q", got)
	}
	if got := nav.ArchiveURL(spaID); got != testBasePath+"/"+spaID.String()+"/archive" {
		t.Fatalf("expected archive url, got %q", got)
	}
}
