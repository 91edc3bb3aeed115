package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"alexsimon-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}

func authRouter(secret string) *gin.Engine {
	r := gin.New()
	r.POST("/protected", BearerAuth(secret, "SCRAPER_SECRET", true), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBearerAuth_ValidToken(t *testing.T) {
	if w := request(authRouter("s3cret"), "Bearer s3cret"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBearerAuth_RejectsBadCredentials(t *testing.T) {
	r := authRouter("s3cret")
	cases := map[string]string{
		"wrong token":    "Bearer nope",
		"missing header": "",
		"wrong scheme":   "Basic s3cret",
		"empty token":    "Bearer ",
		"prefix only":    "Bearer s3cre",
	}
	for name, header := range cases {
		if w := request(r, header); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, w.Code)
		}
	}
}

func TestBearerAuth_UnconfiguredSecretPasses(t *testing.T) {
	if w := request(authRouter(""), ""); w.Code != http.StatusOK {
		t.Fatalf("expected development fallback to pass, got %d", w.Code)
	}
}
