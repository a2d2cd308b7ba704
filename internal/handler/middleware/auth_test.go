//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/pkg/cookie"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/shared"
	commonhttp "fieldbook/tests/common/httptest"
	usecasemock "fieldbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var player = shared.Actor{UserID: "user-1", Email: "p@example.com", Name: "Player", Role: user.RoleMember.String()}

func newAuthRouter(t *testing.T, mw gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", mw, func(c *gin.Context) {
		actor := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "admin": middleware.HasRoleAtLeast(c, user.RoleAdmin)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)
	router := newAuthRouter(t, auth.RequireAuth())

	t.Run("missing token", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "")
		commonhttp.AssertErrorCode(t, rec, http.StatusUnauthorized, "AUTH_REQUIRED")
	})

	t.Run("invalid token", func(t *testing.T) {
		validator.EXPECT().ValidateToken("bad").Return(shared.Actor{}, errs.New("signature is invalid")).Times(1)

		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "bad")
		commonhttp.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("bearer token", func(t *testing.T) {
		validator.EXPECT().ValidateToken("good").Return(player, nil).Times(1)

		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "good")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id":"user-1","admin":false}`, rec.Body.String())
	})

	t.Run("cookie token wins over header", func(t *testing.T) {
		validator.EXPECT().ValidateToken("from-cookie").Return(player, nil).Times(1)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer from-header")
		req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "from-cookie"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOptionalThenRequire(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(auth.OptionalAuth())
	router.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"anonymous": middleware.GetActor(c).IsAnonymous()})
	})
	router.GET("/private", auth.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})

	t.Run("invalid token stays anonymous on public routes", func(t *testing.T) {
		validator.EXPECT().ValidateToken("expired").Return(shared.Actor{}, errs.New("token is expired")).Times(1)

		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/public", nil, "expired")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"anonymous":true}`, rec.Body.String())
	})

	t.Run("token is validated once per request", func(t *testing.T) {
		admin := shared.Actor{UserID: "admin-1", Role: user.RoleAdmin.String()}
		validator.EXPECT().ValidateToken("admin").Return(admin, nil).Times(1)

		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/private", nil, "admin")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id":"admin-1"}`, rec.Body.String())
	})
}

func TestHasRoleAtLeast(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		actor *shared.Actor
		min   user.Role
		want  bool
	}{
		{name: "anonymous", actor: nil, min: user.RoleMember, want: false},
		{name: "member meets member", actor: &shared.Actor{UserID: "u", Role: "member"}, min: user.RoleMember, want: true},
		{name: "member below admin", actor: &shared.Actor{UserID: "u", Role: "member"}, min: user.RoleAdmin, want: false},
		{name: "admin meets member", actor: &shared.Actor{UserID: "u", Role: "admin"}, min: user.RoleMember, want: true},
		{name: "unknown role", actor: &shared.Actor{UserID: "u", Role: "owner"}, min: user.RoleMember, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			if tt.actor != nil {
				middleware.SetActor(c, *tt.actor)
			}
			assert.Equal(t, tt.want, middleware.HasRoleAtLeast(c, tt.min))
		})
	}
}
