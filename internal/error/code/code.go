package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 已创建.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未认证.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrPhoneAlreadyRegistered - 400: 手机号已注册.
	ErrPhoneAlreadyRegistered
	// ErrPasswordIncorrect - 400: 密码错误.
	ErrPasswordIncorrect
	// ErrRoleMismatch - 400: 用户不存在或角色不符.
	ErrRoleMismatch
	// ErrOTPInvalid - 401: 验证码无效.
	ErrOTPInvalid
	// ErrOTPSendFailed - 500: 验证码发送失败.
	ErrOTPSendFailed
)

// 公告相关错误码 (102xxx).
const (
	// ErrAnnouncementNotFound - 404: 公告不存在.
	ErrAnnouncementNotFound int = iota + 102000
)

// 投诉相关错误码 (103xxx).
const (
	// ErrComplaintNotFound - 404: 投诉不存在或无权访问.
	ErrComplaintNotFound int = iota + 103000
	// ErrComplaintAlreadyResolved - 400: 投诉已处理完结.
	ErrComplaintAlreadyResolved
)

// 访客相关错误码 (104xxx).
const (
	// ErrVisitorNotFound - 404: 访客记录不存在.
	ErrVisitorNotFound int = iota + 104000
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
