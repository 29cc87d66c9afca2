package request

// LoginRequest 登录请求
// 身份由外部体系核验，这里只负责换发本服务的 Token 对
// 使用位置:
//   - internal/handler/auth_handler.go: LoginHandler
//   - internal/service/auth/service.go: Login
type LoginRequest struct {
	UserId string `json:"user_id" binding:"required"`
	Name   string `json:"name"`
}
