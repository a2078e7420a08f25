package services

import (
	"context"
	"errors"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/infrastructure/config"
	Logger "society-http-service/pkg/logger"
	"society-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceAuthService 定义认证服务接口
type InterfaceAuthService interface {
	Signup(name, phoneNumber, password string, role models.Role, unit, employeeID *string) (*models.User, string, error)
	Login(phoneNumber, password string, role models.Role) (*models.User, string, error)
	SendOTP(ctx context.Context, mobile string) error
	ResetPassword(ctx context.Context, mobile, otp, newPassword string) error
}

// AuthService 提供注册、登录和密码重置服务
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
	OTP    InterfaceOTPService
	SMS    InterfaceSMSService
}

// NewAuthService 创建一个新的认证服务
func NewAuthService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService, otpService InterfaceOTPService, smsService InterfaceSMSService) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
		OTP:    otpService,
		SMS:    smsService,
	}
}

// 1 Signup 注册新用户并签发令牌。
// 角色专属必填字段在models.NewUser构造时校验，校验失败不会写库
func (s *AuthService) Signup(name, phoneNumber, password string, role models.Role, unit, employeeID *string) (*models.User, string, error) {
	user, err := models.NewUser(name, phoneNumber, password, role, unit, employeeID)
	if err != nil {
		return nil, "", err
	}

	// 手机号全局唯一
	var count int64
	if err := s.DB.Model(&models.User{}).Where("phone_number = ?", phoneNumber).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrPhoneAlreadyRegistered
	}

	// 密码哈希由模型钩子处理
	if err := s.DB.Create(user).Error; err != nil {
		return nil, "", err
	}

	token, err := s.JWT.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// 2 Login 登录。手机号和角色共同构成查找键：
// 以resident注册的手机号即使密码正确也无法以admin身份登录
func (s *AuthService) Login(phoneNumber, password string, role models.Role) (*models.User, string, error) {
	var user models.User
	if err := s.DB.Where("phone_number = ? AND role = ?", phoneNumber, role).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrRoleMismatch
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidPassword
	}

	token, err := s.JWT.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// 3 SendOTP 生成验证码并通过短信下发。
// 验证码写入带TTL的存储后才发送，短信失败降级为发送失败错误，不影响进程
func (s *AuthService) SendOTP(ctx context.Context, mobile string) error {
	code, err := s.OTP.Generate(ctx, mobile)
	if err != nil {
		return err
	}

	if err := s.SMS.SendOTP(mobile, code); err != nil {
		Logger.Error("发送验证码短信失败: mobile=%s err=%v", mobile, err)
		return err
	}
	return nil
}

// 4 ResetPassword 用验证码重置密码。验证码单次有效，校验通过即作废
func (s *AuthService) ResetPassword(ctx context.Context, mobile, otp, newPassword string) error {
	ok, err := s.OTP.CheckAndConsume(ctx, mobile, otp)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOTP
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	result := s.DB.Model(&models.User{}).Where("phone_number = ?", mobile).Update("password", hashed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
