package service

import (
	"errors"
	"strings"
	"time"

	"github.com/minishop-next/internal/config"
	"github.com/minishop-next/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionIssuer = "minishop"

// SessionClaims 购物会话令牌声明，Subject 为会话ID
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionService 匿名购物会话服务
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService 创建会话服务，未配置密钥时生成进程内随机密钥
func NewSessionService(cfg config.SessionConfig) *SessionService {
	secret := strings.TrimSpace(cfg.SecretKey)
	if secret == "" {
		secret = uuid.NewString() + uuid.NewString()
		logger.Warnw("session_secret_generated", "hint", "set session.secret to keep sessions across restarts")
	}
	return &SessionService{
		secret: []byte(secret),
		ttl:    cfg.TTL(),
	}
}

// Issue 创建新会话并签发令牌
func (s *SessionService) Issue() (string, string, time.Time, error) {
	sessionID := uuid.NewString()
	token, expiresAt, err := s.Sign(sessionID)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return sessionID, token, expiresAt, nil
}

// Sign 为已有会话签发令牌
func (s *SessionService) Sign(sessionID string) (string, time.Time, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", time.Time{}, ErrSessionRequired
	}
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    sessionIssuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse 校验令牌并返回会话ID
func (s *SessionService) Parse(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrSessionRequired
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
	)
	token, err := parser.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", errors.Join(ErrSessionInvalid, err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", ErrSessionInvalid
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", ErrSessionInvalid
	}
	return claims.Subject, nil
}
