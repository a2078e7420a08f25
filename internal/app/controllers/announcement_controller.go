package controllers

import (
	"strconv"

	"society-http-service/internal/app/middleware"
	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/services"
	"society-http-service/internal/domain/services/container"
	"society-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAnnouncementController 定义公告控制器接口
type InterfaceAnnouncementController interface {
	GetAnnouncements()
	CreateAnnouncement()
	UpdateAnnouncement()
	DeleteAnnouncement()
}

// AnnouncementController 处理公告相关的请求
type AnnouncementController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAnnouncementController 创建一个新的公告控制器
func NewAnnouncementController(ctx *gin.Context, container *container.ServiceContainer) *AnnouncementController {
	return &AnnouncementController{
		Ctx:       ctx,
		Container: container,
	}
}

// AnnouncementRequest 表示公告创建/更新请求
type AnnouncementRequest struct {
	Title    string `json:"title" example:"Water supply interruption"`
	Content  string `json:"content" example:"Maintenance work on Saturday 10:00-14:00"`
	Priority string `json:"priority" example:"high"` // low | medium | high
}

// GetAnnouncements 获取公告列表
// @Summary      获取公告列表
// @Description  按创建时间倒序返回公告，所有已认证角色可见
// @Tags         Announcement
// @Accept       json
// @Produce      json
// @Param        limit query int false "返回条数上限"
// @Security     BearerAuth
// @Success      200  {array}   models.Announcement
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /announcements [get]
func (c *AnnouncementController) GetAnnouncements() {
	actor := middleware.CurrentActor(c.Ctx)

	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "0"))
	if limit < 0 {
		limit = 0
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	announcements, err := announcementService.GetAnnouncements(actor, limit)
	if err != nil {
		handleServiceError(c.Ctx, err, "Database error")
		return
	}

	response.OK(c.Ctx, announcements)
}

// CreateAnnouncement 发布公告
// @Summary      发布公告
// @Description  管理员发布公告并向所有业主投递通知
// @Tags         Announcement
// @Accept       json
// @Produce      json
// @Param        request body AnnouncementRequest true "公告内容"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /announcements [post]
func (c *AnnouncementController) CreateAnnouncement() {
	actor := middleware.CurrentActor(c.Ctx)

	var req AnnouncementRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}
	if req.Title == "" || req.Content == "" || req.Priority == "" {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	announcement, err := announcementService.CreateAnnouncement(actor, req.Title, req.Content, models.Priority(req.Priority))
	if err != nil {
		handleServiceError(c.Ctx, err, "Database error")
		return
	}

	response.Created(c.Ctx, gin.H{"announcementId": announcement.ID})
}

// UpdateAnnouncement 更新公告
// @Summary      更新公告
// @Description  管理员更新公告内容，通知重新投递，公告时间戳刷新
// @Tags         Announcement
// @Accept       json
// @Produce      json
// @Param        id path int true "公告ID"
// @Param        request body AnnouncementRequest true "公告内容"
// @Security     BearerAuth
// @Success      200  {object}  models.Announcement
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /announcements/{id} [put]
func (c *AnnouncementController) UpdateAnnouncement() {
	actor := middleware.CurrentActor(c.Ctx)

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid announcement ID")
		return
	}

	var req AnnouncementRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}
	if req.Title == "" || req.Content == "" || req.Priority == "" {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	announcement, err := announcementService.UpdateAnnouncement(actor, uint(idUint), req.Title, req.Content, models.Priority(req.Priority))
	if err != nil {
		handleServiceError(c.Ctx, err, "Database error")
		return
	}

	response.OK(c.Ctx, announcement)
}

// DeleteAnnouncement 删除公告
// @Summary      删除公告
// @Description  管理员删除公告，级联清理关联通知
// @Tags         Announcement
// @Accept       json
// @Produce      json
// @Param        id path int true "公告ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement() {
	actor := middleware.CurrentActor(c.Ctx)

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid announcement ID")
		return
	}

	announcementService := c.Container.GetService("announcement").(services.InterfaceAnnouncementService)
	if err := announcementService.DeleteAnnouncement(actor, uint(idUint)); err != nil {
		handleServiceError(c.Ctx, err, "Database error")
		return
	}

	response.OK(c.Ctx, gin.H{"message": "Announcement deleted"})
}

// HandleAnnouncementFunc 返回一个处理公告请求的Gin处理函数
func HandleAnnouncementFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAnnouncementController(ctx, container)

		switch method {
		case "getAnnouncements":
			controller.GetAnnouncements()
		case "createAnnouncement":
			controller.CreateAnnouncement()
		case "updateAnnouncement":
			controller.UpdateAnnouncement()
		case "deleteAnnouncement":
			controller.DeleteAnnouncement()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}
