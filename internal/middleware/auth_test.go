package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-middleware"

func signToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := service.Claims{
		UserID: uuid.NewString(),
		Name:   "Usuario Prueba",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := service.NewAuthService(nil, testSecret, 1)
	r := gin.New()
	group := r.Group("/", JWTAuth(auth))
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		actor := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"role": actor.Role, "name": actor.Name})
	})
	return r
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec := do(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	r := protectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	rec := do(protectedRouter(), signToken(t, model.RoleCashier, time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), model.RoleCashier)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	rec := do(protectedRouter(), signToken(t, model.RoleCashier, -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	now := time.Now()
	claims := service.Claims{
		UserID: uuid.NewString(),
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	rec := do(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleAllows(t *testing.T) {
	rec := do(protectedRouter(model.RoleAdmin, model.RoleCashier), signToken(t, model.RoleCashier, time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbids(t *testing.T) {
	rec := do(protectedRouter(model.RoleAdmin), signToken(t, model.RoleCashier, time.Hour))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetActorRebuildsFromClaims(t *testing.T) {
	rec := do(protectedRouter(), signToken(t, model.RoleWarehouse, time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario Prueba")
}
