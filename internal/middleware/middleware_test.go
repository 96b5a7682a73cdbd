package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/auth"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

var secret = []byte("middleware-test-secret")

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newRouter(t *testing.T) *ginext.Engine {
	t.Helper()
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log), Identity(secret, log))
	r.GET("/whoami", func(c *ginext.Context) {
		p := auth.PrincipalFromContext(c.Request.Context())
		if p == nil {
			c.JSON(http.StatusOK, ginext.H{"subject": ""})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"subject": p.Subject, "role": string(p.Role)})
	})
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestIdentity_ValidToken(t *testing.T) {
	r := newRouter(t)

	token, err := auth.Issue(secret, "user-1", auth.Claims{Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subject":"user-1","role":"admin"}`, w.Body.String())
}

func TestIdentity_InvalidTokenStaysAnonymous(t *testing.T) {
	r := newRouter(t)

	token, err := auth.Issue([]byte("another-secret-entirely"), "user-1", auth.Claims{Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + token, "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"subject":""}`, w.Body.String())
	}
}

func TestRecovery(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-panic")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error","reason":"internal"}`, w.Body.String())
	assert.Equal(t, "req-panic", w.Header().Get(RequestIDHeader))
}
