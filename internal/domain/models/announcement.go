package models

import "time"

// Priority 公告/投诉优先级
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid 判断优先级是否合法，不合法的值一律拒绝而不是静默降级
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Announcement represents a society-wide announcement published by an admin
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Priority  Priority  `gorm:"type:varchar(10);not null" json:"priority"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"date"` // 客户端以date字段消费发布时间
	UpdatedAt time.Time `json:"-"`

	// Relations
	Notifications []Notification `gorm:"foreignKey:AnnouncementID" json:"-"`
}
