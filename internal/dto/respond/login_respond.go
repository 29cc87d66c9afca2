package respond

// LoginRespond 登录响应，携带双 Token
// 使用位置:
//   - internal/service/auth/service.go: Login
type LoginRespond struct {
	UserId       string `json:"user_id"`
	Name         string `json:"name,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
