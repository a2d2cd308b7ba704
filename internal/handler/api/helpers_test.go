//go:build unit

package api_test

import (
	"strings"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	memberToken = "member-token"
	adminToken  = "admin-token"
)

var (
	member = shared.Actor{UserID: "user-1", Email: "player@example.com", Name: "Player One", Role: user.RoleMember.String()}
	admin  = shared.Actor{UserID: "admin-1", Email: "admin@example.com", Name: "Admin", Role: user.RoleAdmin.String()}
)

// stubAuth resolves the two fixed tokens and leaves every other request anonymous.
func stubAuth(c *gin.Context) {
	switch strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ") {
	case memberToken:
		middleware.SetActor(c, member)
	case adminToken:
		middleware.SetActor(c, admin)
	}
	c.Next()
}
