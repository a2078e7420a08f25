package models

import "time"

// ComplaintStatus 投诉处理状态
type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "open"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved" // 终态，不可再变更
)

// Complaint represents a complaint filed by a resident
type Complaint struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"` // 创建后不可变更
	Title       string          `gorm:"type:varchar(200);not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Status      ComplaintStatus `gorm:"type:varchar(20);not null;default:open" json:"status"`
	Date        string          `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Unit        *string         `gorm:"type:varchar(50)" json:"unit"`          // 创建时从业主档案拷贝
	Priority    Priority        `gorm:"type:varchar(10);not null" json:"priority"`

	// 仅在status=resolved时二者同时非空
	ResolutionDescription *string `gorm:"type:text" json:"resolution_description"`
	ResolvedBy            *uint   `json:"resolved_by"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Resolved 判断投诉是否已处于终态
func (c *Complaint) Resolved() bool {
	return c.Status == ComplaintStatusResolved
}
