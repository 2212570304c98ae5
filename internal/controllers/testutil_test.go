package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/factorypro/site_backend/internal/config"
	"github.com/factorypro/site_backend/internal/database"
	"github.com/factorypro/site_backend/internal/routes"
	"github.com/factorypro/site_backend/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newTestRouter wires the full route table against an in-memory database and
// a temp upload directory.
func newTestRouter(t *testing.T, db *gorm.DB, uploadDir string) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Env:             "test",
		JWTSecret:       "test-secret",
		SessionTTLHours: "24",
		AdminPassword:   "admin123",
	}
	r := gin.New()
	routes.Register(r, db, cfg, storage.NewLocalStorage(uploadDir, "/uploads"), nil)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, r http.Handler, method, path string, fields map[string]string, images []formImage, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, img := range images {
		fw, err := mw.CreateFormFile("images", img.name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(img.content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type formImage struct {
	name    string
	content []byte
}

// adminCookie logs in with the test password and returns the session cookie.
func adminCookie(t *testing.T, r http.Handler) *http.Cookie {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"password": "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d - %s", w.Code, w.Body.String())
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "auth_token" && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("auth_token cookie not set on login")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
