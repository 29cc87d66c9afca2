package request

// RefreshTokenRequest 刷新 Token 请求
// 使用位置:
//   - internal/handler/auth_handler.go: RefreshTokenHandler
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
