package services

import (
	"errors"
	"time"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/policy"
	"society-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceComplaintService defines the complaint service interface
type InterfaceComplaintService interface {
	CreateComplaint(actor *policy.Actor, title, description string, priority models.Priority) (*models.Complaint, error)
	GetComplaints(actor *policy.Actor) ([]models.Complaint, error)
	UpdateComplaint(actor *policy.Actor, id uint, title, description string, priority models.Priority) (*models.Complaint, error)
	ResolveComplaint(actor *policy.Actor, id uint, resolutionDescription string) (*models.Complaint, error)
}

// ComplaintService 提供投诉相关的服务
type ComplaintService struct {
	DB     *gorm.DB
	Config *config.Config
	Policy *policy.Policy
}

// NewComplaintService 创建一个新的投诉服务
func NewComplaintService(db *gorm.DB, cfg *config.Config, p *policy.Policy) InterfaceComplaintService {
	return &ComplaintService{
		DB:     db,
		Config: cfg,
		Policy: p,
	}
}

// 1 CreateComplaint 创建投诉。户号在创建时从业主档案拷贝，此后不可由用户修改
func (s *ComplaintService) CreateComplaint(actor *policy.Actor, title, description string, priority models.Priority) (*models.Complaint, error) {
	if _, err := s.Policy.Authorize(actor, policy.ActionCreate, policy.Complaint{}); err != nil {
		return nil, err
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	// 获取业主档案以拷贝户号
	var user models.User
	if err := s.DB.First(&user, actor.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	complaint := &models.Complaint{
		UserID:      actor.ID,
		Title:       title,
		Description: description,
		Status:      models.ComplaintStatusOpen,
		Date:        time.Now().Format("2006-01-02"),
		Unit:        user.Unit,
		Priority:    priority,
	}

	if err := s.DB.Create(complaint).Error; err != nil {
		return nil, err
	}
	return complaint, nil
}

// 2 GetComplaints 按策略给出的可见范围获取投诉列表：
// 管理员看到全部，业主只看到自己的记录
func (s *ComplaintService) GetComplaints(actor *policy.Actor) ([]models.Complaint, error) {
	scope, err := s.Policy.Authorize(actor, policy.ActionList, policy.Complaint{})
	if err != nil {
		return nil, err
	}

	query := s.DB.Order("id DESC")
	if scope == policy.ScopeOwn {
		query = query.Where("user_id = ?", actor.ID)
	}

	var complaints []models.Complaint
	if err := query.Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// 3 UpdateComplaint 编辑投诉内容。仅限本人且未完结的投诉
func (s *ComplaintService) UpdateComplaint(actor *policy.Actor, id uint, title, description string, priority models.Priority) (*models.Complaint, error) {
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	var complaint models.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	// 授权基于资源快照：user_id和status在请求期间视为不可变
	if _, err := s.Policy.Authorize(actor, policy.ActionUpdate, policy.Complaint{
		OwnerID: complaint.UserID,
		Status:  complaint.Status,
	}); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": description,
		"priority":    priority,
	}
	if err := s.DB.Model(&complaint).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新读取，返回持久化后的规范表示
	if err := s.DB.First(&complaint, id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// 4 ResolveComplaint 处理完结投诉。
// 状态翻转与处理说明、处理人在同一次更新中写入，保证二者与状态同时生效
func (s *ComplaintService) ResolveComplaint(actor *policy.Actor, id uint, resolutionDescription string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	if _, err := s.Policy.Authorize(actor, policy.ActionResolve, policy.Complaint{
		OwnerID: complaint.UserID,
		Status:  complaint.Status,
	}); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":                 models.ComplaintStatusResolved,
		"resolution_description": resolutionDescription,
		"resolved_by":            actor.ID,
	}
	if err := s.DB.Model(&complaint).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新读取，返回持久化后的规范表示
	if err := s.DB.First(&complaint, id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}
