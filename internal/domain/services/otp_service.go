package services

import (
	"context"
	"fmt"
	"time"

	"society-http-service/internal/infrastructure/config"
	"society-http-service/utils"

	"github.com/go-redis/redis/v8"
)

// InterfaceOTPService defines the OTP store interface
type InterfaceOTPService interface {
	Generate(ctx context.Context, mobile string) (string, error)
	CheckAndConsume(ctx context.Context, mobile, code string) (bool, error)
}

// OTPService 基于Redis的验证码存储，带TTL自动过期
type OTPService struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewOTPService 创建一个新的验证码服务
func NewOTPService(client *redis.Client, cfg *config.Config) InterfaceOTPService {
	return &OTPService{
		Client: client,
		TTL:    cfg.OTPTTL,
	}
}

// NewRedisClient 按配置创建Redis客户端
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func otpKey(mobile string) string {
	return "otp:" + mobile
}

// 1 Generate 生成6位数字验证码并以TTL写入，覆盖同号码的旧验证码
func (s *OTPService) Generate(ctx context.Context, mobile string) (string, error) {
	n := int64(utils.RandomInt32())
	if n < 0 {
		n = -n
	}
	code := fmt.Sprintf("%06d", 100000+n%900000)

	if err := s.Client.Set(ctx, otpKey(mobile), code, s.TTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// 2 CheckAndConsume 校验验证码并在匹配时删除，保证单次使用
func (s *OTPService) CheckAndConsume(ctx context.Context, mobile, code string) (bool, error) {
	stored, err := s.Client.Get(ctx, otpKey(mobile)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if stored != code {
		return false, nil
	}

	if err := s.Client.Del(ctx, otpKey(mobile)).Err(); err != nil {
		return false, err
	}
	return true, nil
}
