package controllers

import (
	"net/http"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/services"
	"society-http-service/internal/domain/services/container"
	"society-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Signup()
	Login()
	SendOTP()
	ResetPassword()
}

// AuthController 处理注册、登录和密码重置请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// SignupRequest 表示注册请求
type SignupRequest struct {
	Name        string  `json:"name" example:"Ravi Kumar"`
	PhoneNumber string  `json:"phone_number" example:"9876543210"`
	Password    string  `json:"password" example:"secret123"`
	Role        string  `json:"role" example:"resident"` // resident | security | admin
	Unit        *string `json:"unit" example:"A-101"`
	EmployeeID  *string `json:"employee_id" example:"SEC-07"`
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" example:"9876543210"`
	Password    string `json:"password" example:"secret123"`
	Role        string `json:"role" example:"resident"`
}

// SendOTPRequest 表示发送验证码请求
type SendOTPRequest struct {
	Mobile string `json:"mobile" example:"9876543210"`
}

// ResetPasswordRequest 表示重置密码请求
type ResetPasswordRequest struct {
	Mobile   string `json:"mobile" example:"9876543210"`
	OTP      string `json:"otp" example:"482913"`
	Password string `json:"password" example:"newsecret456"`
}

// AuthResponse 注册/登录成功后的响应，包含用户信息和令牌
type AuthResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Role        string  `json:"role"`
	Unit        *string `json:"unit"`
	EmployeeID  *string `json:"employee_id"`
	Token       string  `json:"token"`
}

// OTPResponse 验证码接口的响应
type OTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newAuthResponse(user *models.User, token string) AuthResponse {
	return AuthResponse{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		Unit:        user.Unit,
		EmployeeID:  user.EmployeeID,
		Token:       token,
	}
}

// Signup 用户注册
// @Summary      用户注册
// @Description  注册新用户（业主/保安/管理员），返回用户信息和JWT令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "注册信息"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/signup [post]
func (c *AuthController) Signup() {
	var req SignupRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}

	// 必填字段检查
	if req.Name == "" || req.PhoneNumber == "" || req.Password == "" || req.Role == "" {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	user, token, err := authService.Signup(req.Name, req.PhoneNumber, req.Password, models.Role(req.Role), req.Unit, req.EmployeeID)
	if err != nil {
		handleServiceError(c.Ctx, err, "Error during registration")
		return
	}

	response.Created(c.Ctx, newAuthResponse(user, token))
}

// Login 用户登录
// @Summary      用户登录
// @Description  按手机号和角色登录，返回用户信息和JWT令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录信息"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}

	if req.PhoneNumber == "" || req.Password == "" || req.Role == "" {
		response.ParamError(c.Ctx, "Missing required fields")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	user, token, err := authService.Login(req.PhoneNumber, req.Password, models.Role(req.Role))
	if err != nil {
		handleServiceError(c.Ctx, err, "Error during login")
		return
	}

	response.OK(c.Ctx, newAuthResponse(user, token))
}

// SendOTP 发送短信验证码
// @Summary      发送验证码
// @Description  生成6位验证码并通过短信发送，用于重置密码
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body SendOTPRequest true "手机号"
// @Success      200  {object}  OTPResponse
// @Failure      400  {object}  OTPResponse
// @Failure      500  {object}  OTPResponse
// @Router       /auth/send-otp [post]
func (c *AuthController) SendOTP() {
	var req SendOTPRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.Mobile == "" {
		c.Ctx.JSON(http.StatusBadRequest, OTPResponse{Success: false, Message: "Mobile number required"})
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.SendOTP(c.Ctx.Request.Context(), req.Mobile); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, OTPResponse{Success: false, Message: "Failed to send OTP"})
		return
	}

	c.Ctx.JSON(http.StatusOK, OTPResponse{Success: true, Message: "OTP sent"})
}

// ResetPassword 重置密码
// @Summary      重置密码
// @Description  校验验证码并重置密码，验证码一次性使用
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ResetPasswordRequest true "重置信息"
// @Success      200  {object}  OTPResponse
// @Failure      400  {object}  OTPResponse
// @Failure      401  {object}  OTPResponse
// @Failure      500  {object}  OTPResponse
// @Router       /auth/reset-password [post]
func (c *AuthController) ResetPassword() {
	var req ResetPasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.Mobile == "" || req.OTP == "" || req.Password == "" {
		c.Ctx.JSON(http.StatusBadRequest, OTPResponse{Success: false, Message: "All fields required"})
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.ResetPassword(c.Ctx.Request.Context(), req.Mobile, req.OTP, req.Password); err != nil {
		if err == services.ErrInvalidOTP {
			c.Ctx.JSON(http.StatusUnauthorized, OTPResponse{Success: false, Message: "Invalid OTP"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, OTPResponse{Success: false, Message: "Failed to reset password"})
		return
	}

	c.Ctx.JSON(http.StatusOK, OTPResponse{Success: true, Message: "Password reset successfully"})
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "signup":
			controller.Signup()
		case "login":
			controller.Login()
		case "sendOTP":
			controller.SendOTP()
		case "resetPassword":
			controller.ResetPassword()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}
