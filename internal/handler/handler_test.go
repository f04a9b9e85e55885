package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"DatasetGenerator_StatisticsProject/internal/auth"
	"DatasetGenerator_StatisticsProject/internal/middleware"
	"DatasetGenerator_StatisticsProject/internal/storage"

	"github.com/gin-gonic/gin"
)

// newTestRouter wires the same routes as cmd/api against a throwaway
// sqlite file.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	storage.InitDB(filepath.Join(t.TempDir(), "test.db"))

	router := gin.New()
	router.LoadHTMLGlob("../../templates/*.html")
	router.GET("/", Index)
	router.POST("/", Index)
	downloads := router.Group("/download").Use(middleware.DownloadRateLimit())
	{
		downloads.GET("/csv", DownloadCSV)
		downloads.GET("/sav", DownloadSAV)
	}
	router.POST("/admin/login", AdminLogin)
	protected := router.Group("/admin").Use(middleware.AdminAuth())
	{
		protected.GET("/students", ListStudents)
		protected.GET("/key/:id", StudentAnswerKey)
	}
	return router
}

func sessionRequest(t *testing.T, method, target, studentID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	token, err := auth.NewSessionToken(studentID)
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	return req
}

func TestIndexSetsSessionCookie(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("index did not set the session cookie")
	}
	if !strings.Contains(w.Body.String(), "Your identifier") {
		t.Fatal("page body missing identifier section")
	}
}

func TestIndexQueryParamPinsIdentifier(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?user_id=alice", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<strong>alice</strong>") {
		t.Fatal("page does not show the query-pinned identifier")
	}
}

func TestManualIDOverrideRedirects(t *testing.T) {
	router := newTestRouter(t)
	form := url.Values{"manual_id": {"seminar42"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	var sessionID string
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			id, err := auth.ParseSessionToken(c.Value)
			if err != nil {
				t.Fatalf("session cookie does not validate: %v", err)
			}
			sessionID = id
		}
	}
	if sessionID != "seminar42" {
		t.Fatalf("session pinned to %q, want seminar42", sessionID)
	}
}

func TestDownloadRequiresSession(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download/csv", nil))
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302 redirect", w.Code)
	}
}

func TestDownloadCSV(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, sessionRequest(t, http.MethodGet, "/download/csv", "alice"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "dataset_alice.csv") {
		t.Fatalf("Content-Disposition = %q", cd)
	}

	// same identifier, same bytes
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, sessionRequest(t, http.MethodGet, "/download/csv", "alice"))
	if !bytes.Equal(w.Body.Bytes(), w2.Body.Bytes()) {
		t.Fatal("two CSV downloads for the same identifier differ")
	}
}

func TestDownloadSAV(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, sessionRequest(t, http.MethodGet, "/download/sav", "alice"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("$FL2")) {
		t.Fatal("SAV download does not start with the system file magic")
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/x-spss-sav") {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"alice", "alice"},
		{"a1-b2_c3.d4", "a1-b2_c3.d4"},
		{`x"; rm`, "x___rm"},
		{"new\r\nline", "new__line"},
	}
	for _, tt := range tests {
		if got := safeFilename(tt.in); got != tt.want {
			t.Errorf("safeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAdminFlow(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "secret123")
	router := newTestRouter(t)

	// wrong password rejected
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status = %d, want 401", w.Code)
	}

	// correct password yields a token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d, want 200", w.Code)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil || login.Token == "" {
		t.Fatalf("login response %q: %v", w.Body.String(), err)
	}

	// roster requires the token
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/students", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated roster: status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/students", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("roster: status = %d, want 200", w.Code)
	}

	// answer key lookup for an arbitrary identifier
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/key/alice", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("answer key: status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "h1_verdict") {
		t.Fatal("answer key response missing hypothesis verdicts")
	}
}
