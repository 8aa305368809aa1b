package service

import (
	"context"
	"crypto/subtle"

	"Shelf/config"
	"Shelf/pkg/jwt"
	"Shelf/pkg/log"
	"Shelf/types"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Config *config.Config
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
}

// Login 校验后台账号密码并签发 access token
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	if ve := validateStruct("", req); ve.OrNil() != nil {
		return nil, ve
	}

	admin := s.Config.Admin
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(admin.Username)) == 1
	// 用户名不匹配也执行一次比较，避免时间差暴露账号是否存在
	passErr := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password))
	if admin.Username == "" || !userOK || passErr != nil {
		log.L.Warn("admin login failed", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), admin.Username, jwt.TypeAccess, s.Config.Jwt.Expire())
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.Config.Jwt.ExpireSeconds,
	}, nil
}
