package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventbackend/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	id := w.Header().Get("X-Request-ID")
	if id == "" || w.Body.String() != id {
		t.Fatalf("expected generated id echoed, header=%q body=%q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = serve(r, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected incoming id kept, got %q", got)
	}
}

func newProtected(issuer auth.Issuer, roles ...string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.PUT("/p", Auth(issuer), RequireRoles(roles...), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func TestAuthAndRoles(t *testing.T) {
	issuer := auth.NewIssuer("test-secret")
	admin, err := issuer.Issue("u-1", "ADMIN")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	lowerAdmin, err := issuer.Issue("u-3", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	player, err := issuer.Issue("u-2", "PLAYER")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other, err := auth.NewIssuer("other-secret").Issue("u-1", "ADMIN")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r := newProtected(issuer, "ADMIN", "MANAGER")

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"not bearer", "Basic Zm9vOmJhcg==", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusForbidden},
		{"wrong secret", "Bearer " + other.AccessToken, http.StatusForbidden},
		{"refresh token as access", "Bearer " + admin.RefreshToken, http.StatusForbidden},
		{"role not allowed", "Bearer " + player.AccessToken, http.StatusForbidden},
		{"role differs only in case", "Bearer " + lowerAdmin.AccessToken, http.StatusForbidden},
		{"allowed role", "Bearer " + admin.AccessToken, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/p", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := serve(r, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.status == http.StatusOK && w.Body.String() != "u-1" {
				t.Fatalf("expected user id in context, got %q", w.Body.String())
			}
		})
	}
}

func TestRequireRolesWithoutAuth(t *testing.T) {
	r := gin.New()
	r.GET("/p", RequireRoles("ADMIN"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/p", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without role, got %d", w.Code)
	}
}

func TestTimeoutSetsDeadline(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(50 * time.Millisecond))
	r.GET("/t", func(c *gin.Context) {
		if _, ok := c.Request.Context().Deadline(); !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		<-c.Request.Context().Done()
		if c.Request.Context().Err() != context.DeadlineExceeded {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusGatewayTimeout)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/t", nil))
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected deadline to fire, got %d", w.Code)
	}
}

func TestCORSWildcard(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/c", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/c", nil)
	req.Header.Set("Origin", "http://example.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := serve(r, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestMetricsRecordsRouteTemplate(t *testing.T) {
	m := NewMetrics()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	serve(r, httptest.NewRequest(http.MethodGet, "/api/users/7", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/users/8", nil))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	want := `eventbackend_http_requests_total{method="GET",route="/api/users/:id",status="200"} 2`
	if !strings.Contains(string(body), want) {
		t.Fatalf("expected %q in exposition, got:\n%s", want, body)
	}
}

func TestLoggerDoesNotBreakChain(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	r := gin.New()
	r.Use(RequestID(), Logger(logrus.NewEntry(log)))
	r.GET("/l", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/l", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("expected handler status, got %d", w.Code)
	}
}
