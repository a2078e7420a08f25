package services

import (
	"sort"
	"time"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/policy"
	"society-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceNotificationService defines the notification projection interface
type InterfaceNotificationService interface {
	GetFeed(actor *policy.Actor, limit int) ([]FeedItem, error)
}

// FeedItem 通知流中的一条记录，由公告和投诉动态投影而来
type FeedItem struct {
	Type        string          `json:"type"` // announcement | complaint
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    models.Priority `json:"priority"`
	Status      string          `json:"status,omitempty"` // 仅投诉条目携带
	Timestamp   time.Time       `json:"timestamp"`
}

// NotificationService 纯读侧的通知投影，自身不持有任何状态
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
	Policy *policy.Policy
}

// NewNotificationService 创建一个新的通知投影服务
func NewNotificationService(db *gorm.DB, cfg *config.Config, p *policy.Policy) InterfaceNotificationService {
	return &NotificationService{
		DB:     db,
		Config: cfg,
		Policy: p,
	}
}

// GetFeed 合并公告通知与投诉动态，按时间倒序返回。
// 业主：自己的公告通知行 + 自己的投诉；管理员：全部公告 + 全部投诉；
// 保安：全部公告
func (s *NotificationService) GetFeed(actor *policy.Actor, limit int) ([]FeedItem, error) {
	items := make([]FeedItem, 0)

	// 公告部分
	announcements, err := s.feedAnnouncements(actor)
	if err != nil {
		return nil, err
	}
	for i := range announcements {
		a := &announcements[i]
		items = append(items, FeedItem{
			Type:        "announcement",
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Content,
			Priority:    a.Priority,
			Timestamp:   a.CreatedAt,
		})
	}

	// 投诉部分
	scope, err := s.Policy.Authorize(actor, policy.ActionList, policy.Complaint{})
	if err == nil {
		query := s.DB.Order("updated_at DESC")
		if scope == policy.ScopeOwn {
			query = query.Where("user_id = ?", actor.ID)
		}
		var complaints []models.Complaint
		if err := query.Find(&complaints).Error; err != nil {
			return nil, err
		}
		for i := range complaints {
			c := &complaints[i]
			items = append(items, FeedItem{
				Type:        "complaint",
				ID:          c.ID,
				Title:       c.Title,
				Description: c.Description,
				Priority:    c.Priority,
				Status:      string(c.Status),
				Timestamp:   c.UpdatedAt,
			})
		}
	}
	// 投诉不可见的角色（保安）只收到公告部分

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// feedAnnouncements 返回actor可见的公告。
// 业主走通知行（公告更新后重建，不会读到过期通知），其余角色直接读公告表
func (s *NotificationService) feedAnnouncements(actor *policy.Actor) ([]models.Announcement, error) {
	if _, err := s.Policy.Authorize(actor, policy.ActionList, policy.Announcement{}); err != nil {
		return nil, err
	}

	if actor.Role == models.RoleResident {
		var notifications []models.Notification
		if err := s.DB.Preload("Announcement").Where("user_id = ?", actor.ID).Find(&notifications).Error; err != nil {
			return nil, err
		}
		announcements := make([]models.Announcement, 0, len(notifications))
		for i := range notifications {
			if notifications[i].Announcement != nil {
				announcements = append(announcements, *notifications[i].Announcement)
			}
		}
		return announcements, nil
	}

	var announcements []models.Announcement
	if err := s.DB.Order("created_at DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}
