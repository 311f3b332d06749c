package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/inventory/internal/db"
	"github.com/Skotchmaster/inventory/internal/events"
	"github.com/Skotchmaster/inventory/internal/logging"
	"github.com/Skotchmaster/inventory/internal/repo"
	"github.com/Skotchmaster/inventory/internal/service"
	"github.com/Skotchmaster/inventory/internal/transport"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	P  *ProductHTTP
	C  *CartHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.Open(context.Background(), "sqlite::memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	r := &repo.GormRepo{DB: gdb}
	p := &ProductHTTP{Svc: &service.ProductService{Repo: r, Publisher: events.Nop{}, Topic: "product_events"}}
	c := &CartHTTP{Svc: &service.CartService{Repo: r, Publisher: events.Nop{}, Topic: "cart_events"}}

	e := New(logging.NewWithWriter(io.Discard, "error"), &Deps{
		ProductHandler: p,
		CartHandler:    c,
		DB:             gdb,
		DocsURL:        "http://localhost:8000/docs",
	})

	return &testEnv{T: t, E: e, DB: gdb, P: p, C: c}
}

// doJSONRequest builds a context for calling a handler directly. Path
// parameters are set by the caller.
func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

// serve sends a raw request through the full router. A non-empty body is
// sent as JSON.
func (env *testEnv) serve(method, path, body string) *httptest.ResponseRecorder {
	contentType := ""
	if body != "" {
		contentType = echo.MIMEApplicationJSON
	}
	return env.serveAs(method, path, contentType, body)
}

// serveAs is serve with an explicit Content-Type; an empty one is not sent.
func (env *testEnv) serveAs(method, path, contentType, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func requireDetail(t *testing.T, rec *httptest.ResponseRecorder, code int, detail string) {
	t.Helper()
	require.Equal(t, code, rec.Code)
	resp := decode[transport.ErrorResponse](t, rec)
	require.Equal(t, detail, resp.Detail)
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "expected *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
	return he
}
