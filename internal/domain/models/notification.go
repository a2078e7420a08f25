package models

// Notification 公告发布/更新时为每位业主物化的一行通知，
// 公告删除时随之删除，不会比公告存活得更久
type Notification struct {
	UserID         uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	AnnouncementID uint `gorm:"primaryKey;autoIncrement:false" json:"announcement_id"`

	// Relations
	Announcement *Announcement `gorm:"foreignKey:AnnouncementID" json:"announcement,omitempty"`
}
