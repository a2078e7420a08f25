package routes

import (
	_ "society-http-service/docs"
	"society-http-service/internal/app/controllers"
	"society-http-service/internal/app/middleware"
	"society-http-service/internal/domain/services/container"
	"society-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件，前端来源由配置决定
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.ClientOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 请求ID中间件
	r.Use(middleware.RequestID())

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer, cfg)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container, cfg)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	// 添加IP限流中间件 - 每秒允许50个请求，最多突发100个请求
	api.Use(middleware.IPRateLimiter(50, 100))

	// 健康检查路由
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)
	api.GET("/health", healthController.Ping) // 兼容Docker健康检查的路由

	// 认证路由，验证码接口单独收紧限流防止短信轰炸
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", controllers.HandleAuthFunc(container, "signup"))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
	authGroup.POST("/send-otp", middleware.CombinedRateLimiter(1, 3), controllers.HandleAuthFunc(container, "sendOTP"))
	authGroup.POST("/reset-password", controllers.HandleAuthFunc(container, "resetPassword"))

	// 访客路由，门岗自助机部署时无认证，可通过配置要求令牌
	visitorGroup := api.Group("/visitors")
	visitorGroup.Use(middleware.OptionalAuthentication(cfg.VisitorAuthRequired))
	visitorGroup.POST("/checkin", controllers.HandleVisitorFunc(container, "checkIn"))
	visitorGroup.POST("/checkout/:id", controllers.HandleVisitorFunc(container, "checkOut"))
	visitorGroup.GET("/current", controllers.HandleVisitorFunc(container, "getCurrent"))
	visitorGroup.GET("/history", controllers.HandleVisitorFunc(container, "getHistory"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 公告路由
	announcementGroup := auth.Group("/announcements")
	announcementGroup.GET("", controllers.HandleAnnouncementFunc(container, "getAnnouncements"))
	announcementGroup.POST("", controllers.HandleAnnouncementFunc(container, "createAnnouncement"))
	announcementGroup.PUT("/:id", controllers.HandleAnnouncementFunc(container, "updateAnnouncement"))
	announcementGroup.DELETE("/:id", controllers.HandleAnnouncementFunc(container, "deleteAnnouncement"))

	// 投诉路由
	complaintGroup := auth.Group("/complaints")
	complaintGroup.POST("", controllers.HandleComplaintFunc(container, "createComplaint"))
	complaintGroup.GET("", controllers.HandleComplaintFunc(container, "getComplaints"))
	complaintGroup.PUT("/:id", controllers.HandleComplaintFunc(container, "updateComplaint"))
	complaintGroup.PUT("/:id/resolve", controllers.HandleComplaintFunc(container, "resolveComplaint"))

	// 通知流路由
	auth.GET("/notifications", controllers.HandleNotificationFunc(container, "getFeed"))
}
