package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", AuthMiddleware(cfg))
	api.GET("/me", func(c *gin.Context) {
		util.Success(c, util.GetUserFromContext(c).UserID)
	})
	api.GET("/pro", ProMiddleware(), func(c *gin.Context) {
		util.Success(c, nil)
	})
	return r
}

func token(t *testing.T, secret string, user *model.User) string {
	t.Helper()
	tok, err := util.GenerateJWT(user, secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "s3cret"}}
	r := newRouter(cfg)
	user := &model.User{ID: "ana@demo.com", Name: "Ana", IsLifetime: true}

	cases := []struct {
		name   string
		header string
		query  string
		status int
	}{
		{"no token", "", "", http.StatusUnauthorized},
		{"bearer", "Bearer " + token(t, "s3cret", user), "", http.StatusOK},
		{"query token", "", token(t, "s3cret", user), http.StatusOK},
		{"wrong secret", "Bearer " + token(t, "other", user), "", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := "/api/me"
			if tc.query != "" {
				path += "?token=" + tc.query
			}
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestProMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "s3cret"}}
	r := newRouter(cfg)

	for _, tc := range []struct {
		lifetime bool
		status   int
	}{{true, http.StatusOK}, {false, http.StatusForbidden}} {
		req := httptest.NewRequest(http.MethodGet, "/api/pro", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, "s3cret", &model.User{ID: "u", IsLifetime: tc.lifetime}))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code)
		if tc.status == http.StatusForbidden {
			assert.Contains(t, w.Body.String(), proRequiredMessage)
		}
	}
}
