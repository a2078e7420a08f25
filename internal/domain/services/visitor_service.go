package services

import (
	"errors"
	"time"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/policy"
	"society-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceVisitorService defines the visitor service interface
type InterfaceVisitorService interface {
	CheckIn(actor *policy.Actor, visitor *models.Visitor) error
	CheckOut(actor *policy.Actor, id uint) (*models.Visitor, error)
	GetCurrent(actor *policy.Actor) ([]models.Visitor, error)
	GetHistory(actor *policy.Actor) ([]models.Visitor, error)
}

// VisitorService 提供访客登记相关的服务
type VisitorService struct {
	DB     *gorm.DB
	Config *config.Config
	Policy *policy.Policy
}

// NewVisitorService 创建一个新的访客服务
func NewVisitorService(db *gorm.DB, cfg *config.Config, p *policy.Policy) InterfaceVisitorService {
	return &VisitorService{
		DB:     db,
		Config: cfg,
		Policy: p,
	}
}

// 1 CheckIn 登记访客入场，check_out保持为空
func (s *VisitorService) CheckIn(actor *policy.Actor, visitor *models.Visitor) error {
	if _, err := s.Policy.Authorize(actor, policy.ActionCheckIn, policy.Visitor{}); err != nil {
		return err
	}
	return s.DB.Create(visitor).Error
}

// 2 CheckOut 登记访客离场，写入一次check_out时间
func (s *VisitorService) CheckOut(actor *policy.Actor, id uint) (*models.Visitor, error) {
	if _, err := s.Policy.Authorize(actor, policy.ActionCheckOut, policy.Visitor{}); err != nil {
		return nil, err
	}

	var visitor models.Visitor
	if err := s.DB.First(&visitor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitorNotFound
		}
		return nil, err
	}

	now := time.Now()
	if err := s.DB.Model(&visitor).Update("check_out", now).Error; err != nil {
		return nil, err
	}

	visitor.CheckOut = &now
	return &visitor, nil
}

// 3 GetCurrent 获取在场访客（未离场），按入场时间倒序
func (s *VisitorService) GetCurrent(actor *policy.Actor) ([]models.Visitor, error) {
	if _, err := s.Policy.Authorize(actor, policy.ActionList, policy.Visitor{}); err != nil {
		return nil, err
	}

	var visitors []models.Visitor
	if err := s.DB.Where("check_out IS NULL").Order("check_in DESC").Find(&visitors).Error; err != nil {
		return nil, err
	}
	return visitors, nil
}

// 4 GetHistory 获取全部访客记录，按入场时间倒序
func (s *VisitorService) GetHistory(actor *policy.Actor) ([]models.Visitor, error) {
	if _, err := s.Policy.Authorize(actor, policy.ActionList, policy.Visitor{}); err != nil {
		return nil, err
	}

	var visitors []models.Visitor
	if err := s.DB.Order("check_in DESC").Find(&visitors).Error; err != nil {
		return nil, err
	}
	return visitors, nil
}
