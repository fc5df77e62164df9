package middleware

import (
	"Parchment/internal/pkg/consts"
	"Parchment/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorMiddleware 将 X-Admin-User 记为本次请求的操作者，仅用于变更日志
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(consts.AdminUserHeader))
		if runes := []rune(actor); len(runes) > maxActorLength {
			actor = string(runes[:maxActorLength])
		}
		if actor != "" {
			c.Set("actor", actor)
			c.Request = c.Request.WithContext(service.WithActor(c.Request.Context(), actor))
		}
		c.Next()
	}
}

// maxActorLength 按字符计
const maxActorLength = 150
