package controllers

import (
	"errors"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/policy"
	"society-http-service/internal/domain/services"
	"society-http-service/internal/error/code"
	"society-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一的错误响应结构，用于swagger文档
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required fields"`
}

// handleServiceError 将服务层错误映射为对应的HTTP响应
func handleServiceError(ctx *gin.Context, err error, fallback string) {
	// 授权拒绝：错误码决定HTTP状态，原因即响应消息
	var denial *policy.Error
	if errors.As(err, &denial) {
		response.FailWithMessage(ctx, denial.Code, denial.Reason)
		return
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.FailWithMessage(ctx, code.ErrUserNotFound, err.Error())
	case errors.Is(err, services.ErrPhoneAlreadyRegistered):
		response.FailWithMessage(ctx, code.ErrPhoneAlreadyRegistered, err.Error())
	case errors.Is(err, services.ErrRoleMismatch):
		response.FailWithMessage(ctx, code.ErrRoleMismatch, err.Error())
	case errors.Is(err, services.ErrInvalidPassword):
		response.FailWithMessage(ctx, code.ErrPasswordIncorrect, err.Error())
	case errors.Is(err, services.ErrInvalidOTP):
		response.FailWithMessage(ctx, code.ErrOTPInvalid, err.Error())
	case errors.Is(err, services.ErrInvalidPriority):
		response.ParamError(ctx, err.Error())
	case errors.Is(err, services.ErrAnnouncementNotFound):
		response.FailWithMessage(ctx, code.ErrAnnouncementNotFound, err.Error())
	case errors.Is(err, services.ErrComplaintNotFound):
		response.FailWithMessage(ctx, code.ErrComplaintNotFound, err.Error())
	case errors.Is(err, services.ErrVisitorNotFound):
		response.FailWithMessage(ctx, code.ErrVisitorNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidRole),
		errors.Is(err, models.ErrUnitRequired),
		errors.Is(err, models.ErrEmployeeIDRequired):
		response.ParamError(ctx, err.Error())
	default:
		response.ServerError(ctx, fallback)
	}
}
