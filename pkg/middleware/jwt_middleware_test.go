package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LaithTanirah/football/pkg/jwt"
	"github.com/LaithTanirah/football/pkg/util"
	"github.com/gin-gonic/gin"
)

func newTestRouter(tm jwt.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(tm), func(c *gin.Context) {
		id, _ := util.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "header": c.GetHeader(util.UserIDHeader)})
	})
	return r
}

func TestAuthMiddleware_NoToken_Returns401(t *testing.T) {
	r := newTestRouter(jwt.NewTokenManagerWithoutRedis("s"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/whoami", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["code"] != "UNAUTHORIZED" {
		t.Errorf("expected UNAUTHORIZED code, got %v", body)
	}
}

func TestAuthMiddleware_NonBearerScheme_Returns401(t *testing.T) {
	r := newTestRouter(jwt.NewTokenManagerWithoutRedis("s"))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken_Returns401(t *testing.T) {
	tm := jwt.NewTokenManagerWithoutRedis("s")
	token, _ := tm.GenerateAccessToken("u1", "name", -time.Minute)
	r := newTestRouter(tm)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "access token expired" {
		t.Errorf("unexpected message: %v", body)
	}
}

func TestAuthMiddleware_ValidBearer_InjectsCaller(t *testing.T) {
	tm := jwt.NewTokenManagerWithoutRedis("s")
	token, _ := tm.GenerateAccessToken("u1", "name", time.Minute)
	r := newTestRouter(tm)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["user_id"] != "u1" || body["header"] != "u1" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestAuthMiddleware_CookieToken_Accepted(t *testing.T) {
	tm := jwt.NewTokenManagerWithoutRedis("s")
	token, _ := tm.GenerateAccessToken("u2", "name", time.Minute)
	r := newTestRouter(tm)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_SpoofedHeaderIgnoredWithoutToken(t *testing.T) {
	r := newTestRouter(jwt.NewTokenManagerWithoutRedis("s"))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(util.UserIDHeader, "someone-else")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
