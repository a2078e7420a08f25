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

// InterfaceVisitorController 定义访客控制器接口
type InterfaceVisitorController interface {
	CheckIn()
	CheckOut()
	GetCurrent()
	GetHistory()
}

// VisitorController 处理访客登记相关的请求
type VisitorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisitorController 创建一个新的访客控制器
func NewVisitorController(ctx *gin.Context, container *container.ServiceContainer) *VisitorController {
	return &VisitorController{
		Ctx:       ctx,
		Container: container,
	}
}

// CheckInRequest 表示访客登记请求
type CheckInRequest struct {
	Name    string `json:"name" binding:"required" example:"Amit Shah"`
	Phone   string `json:"phone" binding:"required" example:"9123456780"`
	Email   string `json:"email" example:"amit@example.com"`
	Address string `json:"address" example:"12 MG Road"`
	Purpose string `json:"purpose" example:"Courier delivery"`
}

// CheckIn 访客签到
// @Summary      访客签到
// @Description  登记访客进入，签到时间由服务端记录
// @Tags         Visitor
// @Accept       json
// @Produce      json
// @Param        request body CheckInRequest true "访客信息"
// @Success      201  {object}  models.Visitor
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /visitors/checkin [post]
func (c *VisitorController) CheckIn() {
	actor := middleware.CurrentActor(c.Ctx)

	var req CheckInRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}

	visitor := &models.Visitor{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Purpose: req.Purpose,
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	if err := visitorService.CheckIn(actor, visitor); err != nil {
		handleServiceError(c.Ctx, err, "Failed to check in visitor")
		return
	}

	response.Created(c.Ctx, visitor)
}

// CheckOut 访客签退
// @Summary      访客签退
// @Description  记录访客离开时间
// @Tags         Visitor
// @Accept       json
// @Produce      json
// @Param        id path int true "访客记录ID"
// @Success      200  {object}  models.Visitor
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /visitors/checkout/{id} [post]
func (c *VisitorController) CheckOut() {
	actor := middleware.CurrentActor(c.Ctx)

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid visitor ID")
		return
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	visitor, err := visitorService.CheckOut(actor, uint(idUint))
	if err != nil {
		handleServiceError(c.Ctx, err, "Failed to check out visitor")
		return
	}

	response.OK(c.Ctx, visitor)
}

// GetCurrent 获取在场访客
// @Summary      获取在场访客
// @Description  返回所有未签退的访客，按签到时间倒序
// @Tags         Visitor
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.Visitor
// @Failure      500  {object}  ErrorResponse
// @Router       /visitors/current [get]
func (c *VisitorController) GetCurrent() {
	actor := middleware.CurrentActor(c.Ctx)

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	visitors, err := visitorService.GetCurrent(actor)
	if err != nil {
		handleServiceError(c.Ctx, err, "Failed to fetch current visitors")
		return
	}

	response.OK(c.Ctx, visitors)
}

// GetHistory 获取访客历史
// @Summary      获取访客历史
// @Description  返回全部访客记录，按签到时间倒序
// @Tags         Visitor
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.Visitor
// @Failure      500  {object}  ErrorResponse
// @Router       /visitors/history [get]
func (c *VisitorController) GetHistory() {
	actor := middleware.CurrentActor(c.Ctx)

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	visitors, err := visitorService.GetHistory(actor)
	if err != nil {
		handleServiceError(c.Ctx, err, "Failed to fetch visitor history")
		return
	}

	response.OK(c.Ctx, visitors)
}

// HandleVisitorFunc 返回一个处理访客请求的Gin处理函数
func HandleVisitorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisitorController(ctx, container)

		switch method {
		case "checkIn":
			controller.CheckIn()
		case "checkOut":
			controller.CheckOut()
		case "getCurrent":
			controller.GetCurrent()
		case "getHistory":
			controller.GetHistory()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}
