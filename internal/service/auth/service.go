// Package auth 提供认证相关的业务逻辑
// 处理 Token 签发、刷新与单点互踢
package auth

import (
	"context"
	"time"

	myredis "linkup_room_server/internal/dao/redis"
	"linkup_room_server/internal/dto/request"
	"linkup_room_server/internal/dto/respond"
	"linkup_room_server/pkg/errorx"
	"linkup_room_server/pkg/util/jwt"

	"go.uber.org/zap"
)

// tokenKey 每个用户只保留一个有效的 Refresh Token ID
func tokenKey(userId string) string {
	return "user_token:" + userId
}

// Service 认证服务实现
type Service struct {
	cache      myredis.AsyncCacheService // 缓存服务（依赖倒置）
	refreshTTL int                       // Refresh Token 有效期（小时）
}

// NewAuthService 创建认证服务实例
func NewAuthService(cache myredis.AsyncCacheService, refreshTTLHours int) *Service {
	return &Service{
		cache:      cache,
		refreshTTL: refreshTTLHours,
	}
}

// Login 登录并签发双 Token
// 用户身份由外部体系核验完毕，这里只做 Token 换发；
// 新签发的 Token ID 覆盖旧值，旧设备的 Refresh Token 随即失效
func (s *Service) Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error) {
	accessToken, err := jwt.GenerateAccessToken(req.UserId)
	if err != nil {
		zap.L().Error("generate access token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenId, err := jwt.GenerateRefreshToken(req.UserId)
	if err != nil {
		zap.L().Error("generate refresh token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if err := s.storeTokenID(ctx, req.UserId, tokenId); err != nil {
		return nil, err
	}
	return &respond.LoginRespond{
		UserId:       req.UserId,
		Name:         req.Name,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken 用 Refresh Token 换发新的双 Token
// 校验三件事：签名有效、subject 是 refresh_token、Token ID 与服务端记录一致
// 换发成功后旧 Refresh Token 即刻作废（Token ID 被覆盖）
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.ErrUnauthenticated
	}
	if !claims.IsRefreshToken() {
		return nil, errorx.ErrUnauthenticated
	}
	valid, err := s.ValidateTokenID(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !valid {
		// Token ID 不匹配：已在其他设备登录或已登出
		return nil, errorx.New(errorx.CodeUnauthorized, "登录状态已失效，请重新登录")
	}

	accessToken, err := jwt.GenerateAccessToken(claims.UserID)
	if err != nil {
		zap.L().Error("generate access token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	newRefreshToken, tokenId, err := jwt.GenerateRefreshToken(claims.UserID)
	if err != nil {
		zap.L().Error("generate refresh token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if err := s.storeTokenID(ctx, claims.UserID, tokenId); err != nil {
		return nil, err
	}
	return &respond.RefreshTokenRespond{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout 登出，清除服务端记录的 Token ID
// 清理失败只是把失效推迟到 TTL 到期，属于非关键写，投递到后台队列执行，
// 请求本身不等待缓存结果（签发路径的写入仍然同步，刷新校验依赖它）
func (s *Service) Logout(ctx context.Context, userId string) error {
	s.cache.SubmitTask(func() {
		if err := s.cache.Delete(context.Background(), tokenKey(userId)); err != nil {
			zap.L().Warn("logout token cleanup failed", zap.String("user_id", userId), zap.Error(err))
		}
	})
	return nil
}

// ValidateTokenID 验证用户的 Token ID 是否有效
// 用于实现单点登录互踢机制
func (s *Service) ValidateTokenID(ctx context.Context, userId, tokenId string) (bool, error) {
	validTokenID, err := s.cache.Get(ctx, tokenKey(userId))
	if err != nil {
		return false, err
	}
	if validTokenID == "" {
		return false, nil
	}
	return tokenId == validTokenID, nil
}

func (s *Service) storeTokenID(ctx context.Context, userId, tokenId string) error {
	ttl := time.Duration(s.refreshTTL) * time.Hour
	if err := s.cache.Set(ctx, tokenKey(userId), tokenId, ttl); err != nil {
		zap.L().Error("store token id failed", zap.String("user_id", userId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
