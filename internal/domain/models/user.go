package models

import (
	"errors"
	"time"

	"society-http-service/utils"

	"gorm.io/gorm"
)

// Role 用户角色
type Role string

const (
	RoleResident Role = "resident" // 业主
	RoleSecurity Role = "security" // 保安
	RoleAdmin    Role = "admin"    // 物业管理员
)

// Valid 判断角色是否为系统认可的角色
func (r Role) Valid() bool {
	switch r {
	case RoleResident, RoleSecurity, RoleAdmin:
		return true
	}
	return false
}

// 角色字段校验错误，客户端可见消息
var (
	ErrInvalidRole        = errors.New("Invalid role")
	ErrUnitRequired       = errors.New("Unit is required for resident or admin")
	ErrEmployeeIDRequired = errors.New("Employee ID is required for security")
)

// User represents a registered society member
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	PhoneNumber string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone_number"`
	Password    string    `gorm:"type:varchar(100);not null" json:"-"` // 不在JSON中暴露密码
	Role        Role      `gorm:"type:varchar(20);not null" json:"role"`
	Unit        *string   `gorm:"type:varchar(50)" json:"unit"`        // 业主/管理员必填
	EmployeeID  *string   `gorm:"type:varchar(50)" json:"employee_id"` // 保安必填
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Complaints    []Complaint    `gorm:"foreignKey:UserID" json:"complaints,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"notifications,omitempty"`
}

// NewUser 按角色构造用户，角色专属的必填字段在构造时强制校验，
// 缺少户号的业主用户无法被构造出来
func NewUser(name, phoneNumber, password string, role Role, unit, employeeID *string) (*User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	user := &User{
		Name:        name,
		PhoneNumber: phoneNumber,
		Password:    password,
		Role:        role,
	}

	switch role {
	case RoleResident, RoleAdmin:
		if unit == nil || *unit == "" {
			return nil, ErrUnitRequired
		}
		user.Unit = unit
	case RoleSecurity:
		if employeeID == nil || *employeeID == "" {
			return nil, ErrEmployeeIDRequired
		}
		user.EmployeeID = employeeID
	}

	return user, nil
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (u *User) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}
