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

// InterfaceComplaintController 定义投诉控制器接口
type InterfaceComplaintController interface {
	CreateComplaint()
	GetComplaints()
	UpdateComplaint()
	ResolveComplaint()
}

// ComplaintController 处理投诉相关的请求
type ComplaintController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewComplaintController 创建一个新的投诉控制器
func NewComplaintController(ctx *gin.Context, container *container.ServiceContainer) *ComplaintController {
	return &ComplaintController{
		Ctx:       ctx,
		Container: container,
	}
}

// ComplaintRequest 表示投诉创建/更新请求
type ComplaintRequest struct {
	Title       string `json:"title" example:"Lift not working"`
	Description string `json:"description" example:"Lift in block A stuck on 3rd floor"`
	Priority    string `json:"priority" example:"high"` // low | medium | high
}

// ResolveComplaintRequest 表示投诉处理请求
type ResolveComplaintRequest struct {
	ResolutionDescription string `json:"resolution_description" example:"Technician replaced the controller board"`
}

// CreateComplaint 提交投诉
// @Summary      提交投诉
// @Description  业主提交投诉，自动带上业主单元号，初始状态为open
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        request body ComplaintRequest true "投诉内容"
// @Security     BearerAuth
// @Success      201  {object}  models.Complaint
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /complaints [post]
func (c *ComplaintController) CreateComplaint() {
	actor := middleware.CurrentActor(c.Ctx)

	var req ComplaintRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}
	if req.Title == "" || req.Description == "" || req.Priority == "" {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaint, err := complaintService.CreateComplaint(actor, req.Title, req.Description, models.Priority(req.Priority))
	if err != nil {
		handleServiceError(c.Ctx, err, "Error creating complaint")
		return
	}

	response.Created(c.Ctx, complaint)
}

// GetComplaints 获取投诉列表
// @Summary      获取投诉列表
// @Description  管理员看到全部投诉，业主只看到自己的
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Complaint
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /complaints [get]
func (c *ComplaintController) GetComplaints() {
	actor := middleware.CurrentActor(c.Ctx)

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaints, err := complaintService.GetComplaints(actor)
	if err != nil {
		handleServiceError(c.Ctx, err, "Error fetching complaints")
		return
	}

	response.OK(c.Ctx, complaints)
}

// UpdateComplaint 更新投诉
// @Summary      更新投诉
// @Description  业主修改自己的未完结投诉，他人投诉按不存在处理
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        id path int true "投诉ID"
// @Param        request body ComplaintRequest true "投诉内容"
// @Security     BearerAuth
// @Success      200  {object}  models.Complaint
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /complaints/{id} [put]
func (c *ComplaintController) UpdateComplaint() {
	actor := middleware.CurrentActor(c.Ctx)

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid complaint ID")
		return
	}

	var req ComplaintRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}
	if req.Title == "" || req.Description == "" || req.Priority == "" {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaint, err := complaintService.UpdateComplaint(actor, uint(idUint), req.Title, req.Description, models.Priority(req.Priority))
	if err != nil {
		handleServiceError(c.Ctx, err, "Error updating complaint")
		return
	}

	response.OK(c.Ctx, complaint)
}

// ResolveComplaint 处理投诉
// @Summary      处理投诉
// @Description  管理员处理任意投诉，业主只能处理自己的；已完结投诉不可重复处理
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        id path int true "投诉ID"
// @Param        request body ResolveComplaintRequest true "处理说明"
// @Security     BearerAuth
// @Success      200  {object}  models.Complaint
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /complaints/{id}/resolve [put]
func (c *ComplaintController) ResolveComplaint() {
	actor := middleware.CurrentActor(c.Ctx)

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid complaint ID")
		return
	}

	var req ResolveComplaintRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.ResolutionDescription == "" {
		response.ParamError(c.Ctx, "Resolution description is required")
		return
	}

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaint, err := complaintService.ResolveComplaint(actor, uint(idUint), req.ResolutionDescription)
	if err != nil {
		handleServiceError(c.Ctx, err, "Error resolving complaint")
		return
	}

	response.OK(c.Ctx, complaint)
}

// HandleComplaintFunc 返回一个处理投诉请求的Gin处理函数
func HandleComplaintFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewComplaintController(ctx, container)

		switch method {
		case "createComplaint":
			controller.CreateComplaint()
		case "getComplaints":
			controller.GetComplaints()
		case "updateComplaint":
			controller.UpdateComplaint()
		case "resolveComplaint":
			controller.ResolveComplaint()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}
