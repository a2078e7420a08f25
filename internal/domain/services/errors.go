package services

import "errors"

// 服务层哨兵错误，错误文本即客户端可见消息
var (
	ErrUserNotFound           = errors.New("User not found")
	ErrPhoneAlreadyRegistered = errors.New("Phone number already registered")
	ErrRoleMismatch           = errors.New("User not found or incorrect role")
	ErrInvalidPassword        = errors.New("Invalid password")
	ErrInvalidOTP             = errors.New("Invalid OTP")
	ErrInvalidPriority        = errors.New("Invalid priority")
	ErrAnnouncementNotFound   = errors.New("Announcement not found")
	ErrComplaintNotFound      = errors.New("Complaint not found")
	ErrVisitorNotFound        = errors.New("Visitor not found")
)
