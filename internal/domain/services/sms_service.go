package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"society-http-service/internal/infrastructure/config"
)

// InterfaceSMSService defines the SMS dispatch interface
type InterfaceSMSService interface {
	SendOTP(mobile, code string) error
}

// SMSService 通过Fast2SMS发送短信验证码
type SMSService struct {
	Config *config.Config
	Client *http.Client
}

// fast2smsRequest Fast2SMS OTP路由的请求体
type fast2smsRequest struct {
	Route           string `json:"route"`
	VariablesValues string `json:"variables_values"`
	Numbers         string `json:"numbers"`
}

// fast2smsResponse Fast2SMS的响应体
type fast2smsResponse struct {
	Return  bool   `json:"return"`
	Message string `json:"message"`
}

// NewSMSService 创建一个新的短信服务
func NewSMSService(cfg *config.Config) InterfaceSMSService {
	return &SMSService{
		Config: cfg,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendOTP 发送验证码短信。失败只影响本次发送，不影响服务可用性
func (s *SMSService) SendOTP(mobile, code string) error {
	payload, err := json.Marshal(fast2smsRequest{
		Route:           "otp",
		VariablesValues: code,
		Numbers:         mobile,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.Config.Fast2SMSAPIURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("authorization", s.Config.Fast2SMSAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending OTP SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("SMS API returned status code %d", resp.StatusCode)
	}

	var apiResp fast2smsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("error decoding SMS response: %w", err)
	}
	if !apiResp.Return {
		return fmt.Errorf("SMS API rejected request: %s", apiResp.Message)
	}

	return nil
}
