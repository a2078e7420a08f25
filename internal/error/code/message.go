package code

// 错误码消息映射（客户端可见，保持英文）
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "success",
	ErrUnknown:          "Internal server error",
	ErrBind:             "Invalid request body",
	ErrValidation:       "Missing required fields",
	ErrTokenInvalid:     "Invalid token",
	ErrPermissionDenied: "Insufficient permissions",
	ErrTooManyRequests:  "Too many requests",

	// 用户相关错误码
	ErrUserNotFound:           "User not found",
	ErrPhoneAlreadyRegistered: "Phone number already registered",
	ErrPasswordIncorrect:      "Invalid password",
	ErrRoleMismatch:           "User not found or incorrect role",
	ErrOTPInvalid:             "Invalid OTP",
	ErrOTPSendFailed:          "Failed to send OTP",

	// 公告相关错误码
	ErrAnnouncementNotFound: "Announcement not found",

	// 投诉相关错误码
	ErrComplaintNotFound:        "Complaint not found or unauthorized",
	ErrComplaintAlreadyResolved: "Complaint is already resolved",

	// 访客相关错误码
	ErrVisitorNotFound: "Visitor not found",

	// 数据库相关错误码
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:           StatusNotFound,
	ErrPhoneAlreadyRegistered: StatusBadRequest,
	ErrPasswordIncorrect:      StatusBadRequest,
	ErrRoleMismatch:           StatusBadRequest,
	ErrOTPInvalid:             StatusUnauthorized,
	ErrOTPSendFailed:          StatusInternalServerError,

	// 公告相关错误码
	ErrAnnouncementNotFound: StatusNotFound,

	// 投诉相关错误码
	ErrComplaintNotFound:        StatusNotFound,
	ErrComplaintAlreadyResolved: StatusBadRequest,

	// 访客相关错误码
	ErrVisitorNotFound: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
