package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"snapvroom/utils"
)

func newProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", DeviceAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"deviceId": c.GetString("deviceID")})
	})
	return r
}

func TestDeviceAuthRejectsMissingToken(t *testing.T) {
	r := newProtectedRouter(t)

	for name, header := range map[string]string{
		"no header":    "",
		"wrong scheme": "Basic abc",
		"empty bearer": "Bearer ",
	} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, w.Code)
		}
	}
}

func TestDeviceAuthRejectsGarbageToken(t *testing.T) {
	r := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeviceAuthAcceptsIssuedToken(t *testing.T) {
	r := newProtectedRouter(t)

	token, err := utils.GenerateDeviceToken("device-42", time.Hour)
	if err != nil {
		t.Fatalf("GenerateDeviceToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, "device-42") {
		t.Fatalf("expected device id in response, got %s", body)
	}
}

func TestDeviceAuthRejectsExpiredToken(t *testing.T) {
	r := newProtectedRouter(t)

	token, err := utils.GenerateDeviceToken("device-42", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateDeviceToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}
