package services

import (
	"errors"
	"time"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/policy"
	"society-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceAnnouncementService defines the announcement service interface
type InterfaceAnnouncementService interface {
	GetAnnouncements(actor *policy.Actor, limit int) ([]models.Announcement, error)
	GetAnnouncementByID(actor *policy.Actor, id uint) (*models.Announcement, error)
	CreateAnnouncement(actor *policy.Actor, title, content string, priority models.Priority) (*models.Announcement, error)
	UpdateAnnouncement(actor *policy.Actor, id uint, title, content string, priority models.Priority) (*models.Announcement, error)
	DeleteAnnouncement(actor *policy.Actor, id uint) error
}

// AnnouncementService 提供公告相关的服务
type AnnouncementService struct {
	DB     *gorm.DB
	Config *config.Config
	Policy *policy.Policy
	Notify InterfaceNotifyService
}

// NewAnnouncementService 创建一个新的公告服务
func NewAnnouncementService(db *gorm.DB, cfg *config.Config, p *policy.Policy, notify InterfaceNotifyService) InterfaceAnnouncementService {
	return &AnnouncementService{
		DB:     db,
		Config: cfg,
		Policy: p,
		Notify: notify,
	}
}

// 1 GetAnnouncements 按发布时间倒序获取公告，limit<=0时返回全部
func (s *AnnouncementService) GetAnnouncements(actor *policy.Actor, limit int) ([]models.Announcement, error) {
	if _, err := s.Policy.Authorize(actor, policy.ActionList, policy.Announcement{}); err != nil {
		return nil, err
	}

	query := s.DB.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var announcements []models.Announcement
	if err := query.Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// 2 GetAnnouncementByID 根据ID获取公告
func (s *AnnouncementService) GetAnnouncementByID(actor *policy.Actor, id uint) (*models.Announcement, error) {
	if _, err := s.Policy.Authorize(actor, policy.ActionRead, policy.Announcement{}); err != nil {
		return nil, err
	}

	var announcement models.Announcement
	if err := s.DB.First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return &announcement, nil
}

// 3 CreateAnnouncement 创建公告并为每位业主物化一行通知。
// 公告写入和通知扇出在同一事务内，并发读取方看不到中间状态
func (s *AnnouncementService) CreateAnnouncement(actor *policy.Actor, title, content string, priority models.Priority) (*models.Announcement, error) {
	if _, err := s.Policy.Authorize(actor, policy.ActionCreate, policy.Announcement{}); err != nil {
		return nil, err
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	announcement := &models.Announcement{
		Title:     title,
		Content:   content,
		Priority:  priority,
		CreatedBy: actor.ID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(announcement).Error; err != nil {
			return err
		}
		return fanOutNotifications(tx, announcement.ID)
	})
	if err != nil {
		return nil, err
	}

	publishAnnouncementEvent(s.Notify, announcement, "created")
	return announcement, nil
}

// 4 UpdateAnnouncement 更新公告并重建通知扇出。
// 旧通知删除和新通知插入在同一事务内完成，发布时间刷新为当前时间
func (s *AnnouncementService) UpdateAnnouncement(actor *policy.Actor, id uint, title, content string, priority models.Priority) (*models.Announcement, error) {
	if _, err := s.Policy.Authorize(actor, policy.ActionUpdate, policy.Announcement{}); err != nil {
		return nil, err
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	var announcement models.Announcement
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&announcement, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAnnouncementNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"title":      title,
			"content":    content,
			"priority":   priority,
			"created_at": time.Now(), // 客户端按date字段展示更新时间
		}
		if err := tx.Model(&announcement).Updates(updates).Error; err != nil {
			return err
		}

		// 重建通知：删旧插新
		if err := tx.Where("announcement_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return fanOutNotifications(tx, id)
	})
	if err != nil {
		return nil, err
	}

	publishAnnouncementEvent(s.Notify, &announcement, "updated")
	return &announcement, nil
}

// 5 DeleteAnnouncement 删除公告。先删除从属的通知行以满足外键约束
func (s *AnnouncementService) DeleteAnnouncement(actor *policy.Actor, id uint) error {
	if _, err := s.Policy.Authorize(actor, policy.ActionDelete, policy.Announcement{}); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("announcement_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Announcement{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAnnouncementNotFound
		}
		return nil
	})
}

// fanOutNotifications 为当前所有业主生成该公告的通知行
func fanOutNotifications(tx *gorm.DB, announcementID uint) error {
	var residentIDs []uint
	if err := tx.Model(&models.User{}).Where("role = ?", models.RoleResident).Pluck("id", &residentIDs).Error; err != nil {
		return err
	}
	if len(residentIDs) == 0 {
		return nil
	}

	notifications := make([]models.Notification, 0, len(residentIDs))
	for _, userID := range residentIDs {
		notifications = append(notifications, models.Notification{
			UserID:         userID,
			AnnouncementID: announcementID,
		})
	}
	return tx.CreateInBatches(notifications, 500).Error
}
