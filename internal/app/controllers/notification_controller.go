package controllers

import (
	"strconv"

	"society-http-service/internal/app/middleware"
	"society-http-service/internal/domain/services"
	"society-http-service/internal/domain/services/container"
	"society-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// NotificationController 处理通知流相关的请求
type NotificationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNotificationController 创建一个新的通知控制器
func NewNotificationController(ctx *gin.Context, container *container.ServiceContainer) *NotificationController {
	return &NotificationController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetFeed 获取通知流
// @Summary      获取通知流
// @Description  按时间倒序合并公告通知和投诉动态，范围由角色决定
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        limit query int false "返回条数上限"
// @Security     BearerAuth
// @Success      200  {array}   services.FeedItem
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications [get]
func (c *NotificationController) GetFeed() {
	actor := middleware.CurrentActor(c.Ctx)

	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "0"))
	if limit < 0 {
		limit = 0
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	feed, err := notificationService.GetFeed(actor, limit)
	if err != nil {
		handleServiceError(c.Ctx, err, "Error fetching notifications")
		return
	}

	response.OK(c.Ctx, feed)
}

// HandleNotificationFunc 返回一个处理通知请求的Gin处理函数
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNotificationController(ctx, container)

		switch method {
		case "getFeed":
			controller.GetFeed()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}
