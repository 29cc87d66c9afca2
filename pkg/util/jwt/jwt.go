// Package jwt 负责会话 Token 的签发与校验
// 双 Token 机制：短期 Access Token 做接口认证，
// 长期 Refresh Token 携带 token_id 与服务端记录比对，实现单点互踢
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// 签发方标识与两类 Token 的 subject，解析时据此区分用途
const (
	issuer = "linkup_room"

	SubjectAccess  = "access_token"
	SubjectRefresh = "refresh_token"
)

// JWTConfig JWT 配置
type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration // Access Token 有效期
	RefreshTokenExpiry time.Duration // Refresh Token 有效期
}

// 全局配置，由 Init 函数初始化
var jwtConfig *JWTConfig

// Init 初始化 JWT 配置
func Init(secret string, accessExpiryMinutes, refreshExpiryHours int) {
	jwtConfig = &JWTConfig{
		Secret:             secret,
		AccessTokenExpiry:  time.Duration(accessExpiryMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshExpiryHours) * time.Hour,
	}
}

// Claims 会话声明
type Claims struct {
	UserID  string `json:"user_id"`
	TokenID string `json:"token_id,omitempty"` // 仅 Refresh Token 使用，用于单点互踢
	jwt.RegisteredClaims
}

// IsAccessToken 该 Token 是否可用于接口认证
func (c *Claims) IsAccessToken() bool {
	return c.Subject == SubjectAccess
}

// IsRefreshToken 该 Token 是否可用于换发（必须携带 token_id）
func (c *Claims) IsRefreshToken() bool {
	return c.Subject == SubjectRefresh && c.TokenID != ""
}

// sign 按给定 subject 与有效期签发 Token
func sign(userID, tokenID, subject string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtConfig.Secret))
}

// GenerateAccessToken 生成 Access Token (短期，用于接口认证)
func GenerateAccessToken(userID string) (string, error) {
	return sign(userID, "", SubjectAccess, jwtConfig.AccessTokenExpiry)
}

// GenerateRefreshToken 生成 Refresh Token (长期，用于刷新 Access Token)
// 返回 token 字符串和 tokenID (用于 Redis 存储实现单点互踢)
func GenerateRefreshToken(userID string) (tokenString string, tokenID string, err error) {
	tokenID = uuid.NewString()
	tokenString, err = sign(userID, tokenID, SubjectRefresh, jwtConfig.RefreshTokenExpiry)
	return
}

// ParseToken 解析并验证 Token
// 只接受本服务用 HS256 签发的 Token，签发方不符一律拒绝
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtConfig.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
