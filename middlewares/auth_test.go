package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steve-ongera/AgriLink/configs"
	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/middlewares"
	"github.com/steve-ongera/AgriLink/utils"
)

func authTestRouter(cfg *configs.Config, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", middlewares.AuthMiddleware(cfg, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   utils.CurrentUserID(c),
			"userType": utils.CurrentUserType(c),
		})
	})
	return r
}

func getWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := authTestRouter(cfg)

	// No token.
	assert.Equal(t, http.StatusUnauthorized, getWithToken(r, "").Code)

	// Garbage token.
	assert.Equal(t, http.StatusUnauthorized, getWithToken(r, "not.a.jwt").Code)

	// Token signed with a different secret.
	foreign, err := utils.GenerateToken(1, entity.UserTypeBuyer, "other-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, getWithToken(r, foreign).Code)

	// Expired token.
	expired, err := utils.GenerateToken(1, entity.UserTypeBuyer, cfg.JWTSecret, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, getWithToken(r, expired).Code)

	// Valid token.
	token, err := utils.GenerateToken(42, entity.UserTypeBuyer, cfg.JWTSecret, time.Hour)
	require.NoError(t, err)
	w := getWithToken(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
}

func TestOptionalAuth(t *testing.T) {
	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", middlewares.OptionalAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   utils.CurrentUserID(c),
			"userType": utils.CurrentUserType(c),
		})
	})

	// Anonymous and broken tokens both pass through as guests.
	w := getWithToken(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":0`)

	w = getWithToken(r, "not.a.jwt")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":0`)

	// A valid token identifies the caller.
	token, err := utils.GenerateToken(42, entity.UserTypeBuyer, cfg.JWTSecret, time.Hour)
	require.NoError(t, err)
	w = getWithToken(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
}

func TestAuthMiddlewareRoles(t *testing.T) {
	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := authTestRouter(cfg, entity.UserTypeAdmin)

	buyerToken, err := utils.GenerateToken(1, entity.UserTypeBuyer, cfg.JWTSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, getWithToken(r, buyerToken).Code)

	adminToken, err := utils.GenerateToken(2, entity.UserTypeAdmin, cfg.JWTSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, getWithToken(r, adminToken).Code)
}
