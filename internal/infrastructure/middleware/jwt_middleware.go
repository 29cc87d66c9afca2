package middleware

import (
	"net/http"
	"strings"

	"linkup_room_server/pkg/errorx"
	"linkup_room_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// CtxUserIdKey 存入 gin 上下文的当前用户 id 键名
const CtxUserIdKey = "user_id"

// JWTAuth JWT 认证中间件
// 验证 Access Token 并将用户信息存入上下文
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从 Header 获取 Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "请先登录",
			})
			return
		}

		// 2. 解析 Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "Token 格式错误，请使用 Bearer Token",
			})
			return
		}

		// 3. 验证 Token
		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "Token 已过期或无效，请重新登录",
			})
			return
		}

		// 4. 验证是否为 Access Token
		if !claims.IsAccessToken() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "请使用 Access Token 访问此接口",
			})
			return
		}

		// 5. 将用户信息存入上下文，供后续 Handler 使用
		c.Set(CtxUserIdKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 可选认证中间件
// 房间详情等接口允许游客访问：带合法 Token 则注入用户 id，
// 不带或无效则按未登录继续（访客视角由角色解析负责兜底）
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		claims, err := jwt.ParseToken(parts[1])
		if err != nil || !claims.IsAccessToken() {
			c.Next()
			return
		}
		c.Set(CtxUserIdKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserId 从上下文读取当前用户 id，未登录时返回空串
func CurrentUserId(c *gin.Context) string {
	return c.GetString(CtxUserIdKey)
}
