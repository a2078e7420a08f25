package middleware

import (
	"net/http"
	"strings"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/policy"
	"society-http-service/internal/domain/services"
	"society-http-service/internal/error/response"
	"society-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authentication 通用的认证中间件，解析令牌并将访问者信息写入上下文
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, response.ErrorBody{
				Error: "Authorization header is required",
			})
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, response.ErrorBody{
				Error: "Invalid token format",
			})
			c.Abort()
			return
		}

		// 验证token并提取claims
		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorBody{
				Error: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if !claims.Role.Valid() {
			c.JSON(http.StatusUnauthorized, response.ErrorBody{
				Error: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// 存储访问者信息到上下文
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AuthenticateAdmin 验证管理员权限
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		Authentication()(c)
		if c.IsAborted() {
			return
		}

		if role, exists := c.Get("role"); !exists || role.(models.Role) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, response.ErrorBody{
				Error: "Insufficient permissions: requires admin role",
			})
			c.Abort()
			return
		}
	}
}

// OptionalAuthentication 可选认证：enabled为false时直接放行（访客登记终端无令牌）
func OptionalAuthentication(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return Authentication()
}

// CurrentActor 从上下文中取出当前访问者，未认证时返回nil
func CurrentActor(c *gin.Context) *policy.Actor {
	userID, ok := c.Get("userID")
	if !ok {
		return nil
	}
	role, ok := c.Get("role")
	if !ok {
		return nil
	}

	return &policy.Actor{
		ID:   userID.(uint),
		Role: role.(models.Role),
	}
}
