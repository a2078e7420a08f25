package services

import (
	"encoding/json"
	"fmt"
	"time"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/infrastructure/config"
	Logger "society-http-service/pkg/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// InterfaceNotifyService 定义通知推送接口。
// 推送是尽力而为的附加通道，任何失败都不影响HTTP请求本身
type InterfaceNotifyService interface {
	Connect() error
	PublishAnnouncement(a *models.Announcement, event string) error
	Close()
}

// NotifyService 通过MQTT向在线客户端推送公告通知
type NotifyService struct {
	Config *config.Config
	Client mqtt.Client
}

// announcementMessage 推送消息体
type announcementMessage struct {
	Event    string          `json:"event"` // created / updated / deleted
	ID       uint            `json:"id"`
	Title    string          `json:"title"`
	Priority models.Priority `json:"priority"`
	Date     time.Time       `json:"date"`
}

// NewNotifyService 创建一个新的通知推送服务。
// 未配置MQTT_BROKER_URL时返回nil，调用方按未启用处理
func NewNotifyService(cfg *config.Config) InterfaceNotifyService {
	if cfg.MQTTBrokerURL == "" {
		return nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBrokerURL).
		SetClientID(cfg.MQTTClientID).
		SetUsername(cfg.MQTTUsername).
		SetPassword(cfg.MQTTPassword).
		SetAutoReconnect(true).
		SetConnectTimeout(5 * time.Second)

	return &NotifyService{
		Config: cfg,
		Client: mqtt.NewClient(opts),
	}
}

// Connect 连接MQTT服务器
func (s *NotifyService) Connect() error {
	token := s.Client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("MQTT connect timeout: %s", s.Config.MQTTBrokerURL)
	}
	return token.Error()
}

// PublishAnnouncement 推送公告事件
func (s *NotifyService) PublishAnnouncement(a *models.Announcement, event string) error {
	if !s.Client.IsConnected() {
		return fmt.Errorf("MQTT client not connected")
	}

	payload, err := json.Marshal(announcementMessage{
		Event:    event,
		ID:       a.ID,
		Title:    a.Title,
		Priority: a.Priority,
		Date:     a.CreatedAt,
	})
	if err != nil {
		return err
	}

	topic := s.Config.MQTTTopicPrefix + "/announcements"
	token := s.Client.Publish(topic, byte(s.Config.MQTTQoS), false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("MQTT publish timeout: topic=%s", topic)
	}
	return token.Error()
}

// Close 断开MQTT连接
func (s *NotifyService) Close() {
	if s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}

// publishAnnouncementEvent 推送公告事件的公共入口，推送失败仅记录日志
func publishAnnouncementEvent(notify InterfaceNotifyService, a *models.Announcement, event string) {
	if notify == nil {
		return
	}
	if err := notify.PublishAnnouncement(a, event); err != nil {
		Logger.Warning("公告推送失败: id=%d event=%s err=%v", a.ID, event, err)
	}
}
