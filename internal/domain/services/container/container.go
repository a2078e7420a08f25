package container

import (
	"context"
	"sync"
	"time"

	"society-http-service/internal/domain/policy"
	"society-http-service/internal/domain/services"
	"society-http-service/internal/infrastructure/config"
	Logger "society-http-service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client
	policy *policy.Policy

	// 基础服务
	jwtService services.InterfaceJWTService
	otpService services.InterfaceOTPService
	smsService services.InterfaceSMSService

	// 推送服务
	notifyService services.InterfaceNotifyService

	// 业务服务
	authService         services.InterfaceAuthService
	announcementService services.InterfaceAnnouncementService
	complaintService    services.InterfaceComplaintService
	visitorService      services.InterfaceVisitorService
	notificationService services.InterfaceNotificationService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			Logger.Warning("Redis连接测试失败: %v，验证码功能将不可用", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 授权策略：访客接口的鉴权开关来自部署配置
	c.policy = policy.New(c.config.VisitorAuthRequired)

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.otpService = services.NewOTPService(c.redis, c.config)
	c.smsService = services.NewSMSService(c.config)

	// 初始化MQTT推送服务，未配置时为nil
	c.notifyService = services.NewNotifyService(c.config)
	if c.notifyService != nil {
		if err := c.notifyService.Connect(); err != nil {
			Logger.Warning("MQTT服务连接失败: %v，公告推送不可用", err)
		}
	}

	// 初始化业务服务
	c.authService = services.NewAuthService(c.db, c.config, c.jwtService, c.otpService, c.smsService)
	c.announcementService = services.NewAnnouncementService(c.db, c.config, c.policy, c.notifyService)
	c.complaintService = services.NewComplaintService(c.db, c.config, c.policy)
	c.visitorService = services.NewVisitorService(c.db, c.config, c.policy)
	c.notificationService = services.NewNotificationService(c.db, c.config, c.policy)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "policy":
		return c.policy
	case "jwt":
		return c.jwtService
	case "otp":
		return c.otpService
	case "sms":
		return c.smsService
	case "notify":
		return c.notifyService
	case "auth":
		return c.authService
	case "announcement":
		return c.announcementService
	case "complaint":
		return c.complaintService
	case "visitor":
		return c.visitorService
	case "notification":
		return c.notificationService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
