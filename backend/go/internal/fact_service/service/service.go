package service

import (
	"Trivio/backend/go/internal/database/kafka"
	"Trivio/backend/go/internal/fact_service/store"
	"Trivio/backend/go/internal/models"
	"Trivio/backend/go/pkg/apperr"
	"Trivio/backend/go/pkg/logger"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service 封装了事实领域的业务逻辑。
// 所有操作都以显式的 callerID 参数标识调用方身份，
// 业务层之下不存在任何隐式的"当前用户"上下文。
type Service struct {
	store     *store.Store
	jwtSecret []byte
	tokenTTL  time.Duration
	rdb       *redis.Client           // 可选；为 nil 时注销不做令牌吊销
	publisher *kafka.RequestPublisher // 可选；为 nil 时生成请求不投递到 Kafka
	logger    *logger.Logger
}

// NewService 创建一个新的 Service 实例。
func NewService(s *store.Store, jwtSecret string, tokenTTL time.Duration, rdb *redis.Client, publisher *kafka.RequestPublisher, log *logger.Logger) *Service {
	return &Service{
		store:     s,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		rdb:       rdb,
		publisher: publisher,
		logger:    log,
	}
}

// --- User Registration & Login ---

// RegisterUserByEmail 处理新用户通过邮箱注册的逻辑。
func (s *Service) RegisterUserByEmail(email, password, username string) (*models.User, error) {
	// 检查用户是否已存在
	_, err := s.store.GetUserByEmail(email)
	if err == nil {
		return nil, apperr.Validation("该邮箱已被注册")
	}

	// 哈希密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Username:   username,
		Email:      email,
		Provider:   "email",
		ProviderID: email,
		Status:     models.StatusActive,
		Password:   string(hashedPassword),
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// LoginUserByEmail 处理用户通过邮箱登录的逻辑。
func (s *Service) LoginUserByEmail(email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return "", apperr.Unauthorized("用户不存在或密码错误")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperr.Unauthorized("用户不存在或密码错误")
	}

	if err := s.store.TouchLastLogin(user); err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error(), Type: "database_error"}).Warn("更新最近登录时间失败")
	}

	// 生成 JWT
	return s.generateJWT(user.ID)
}

// --- Token Revocation ---

const revokedTokenKeyPrefix = "revoked_token:"

// RevokeToken 将令牌的 jti 写入 Redis，有效期为令牌的剩余生命周期。
// 未配置 Redis 时为空操作，令牌只能等待自然过期。
func (s *Service) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	if ttl <= 0 {
		return nil // 令牌已过期，无需吊销
	}
	return s.rdb.Set(ctx, revokedTokenKeyPrefix+jti, 1, ttl).Err()
}

// IsTokenRevoked 检查令牌的 jti 是否已被吊销。
func (s *Service) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	if s.rdb == nil || jti == "" {
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, revokedTokenKeyPrefix+jti).Result()
	if err != nil {
		// Redis 不可用时放行而不是拒绝所有请求；吊销是尽力而为的。
		if !errors.Is(err, redis.Nil) {
			s.logger.WithError(models.ErrorInfo{Message: err.Error(), Type: "redis_error"}).Warn("检查令牌吊销状态失败")
		}
		return false, nil
	}
	return n > 0, nil
}

// --- Helpers ---

// generateJWT 为指定用户 ID 生成一个新的 JWT。
func (s *Service) generateJWT(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iss": "trivio_fact_service",
		"aud": "trivio_clients",
		"exp": time.Now().Add(s.tokenTTL).Unix(),
		"iat": time.Now().Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.jwtSecret)
}
