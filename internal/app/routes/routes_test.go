package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/infrastructure/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Announcement{},
		&models.Complaint{},
		&models.Notification{},
		&models.Visitor{},
	))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	cfg := &config.Config{
		JWTSecretKey:   "test-secret",
		TokenExpiresIn: time.Hour,
		OTPTTL:         5 * time.Minute,
		ClientOrigin:   "http://localhost:5173",
	}

	return SetupRouter(db, cfg, redisClient)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func signupToken(t *testing.T, r *gin.Engine, name, phone, role string) string {
	t.Helper()

	body := map[string]interface{}{
		"name":         name,
		"phone_number": phone,
		"password":     "pass123",
		"role":         role,
	}
	switch role {
	case "resident", "admin":
		body["unit"] = "A-101"
	case "security":
		body["employee_id"] = "SEC-01"
	}

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSignupAndLoginFlow(t *testing.T) {
	r := setupTestRouter(t)

	signupToken(t, r, "Ravi", "9000000001", "resident")

	// 重复手机号
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"name": "Other", "phone_number": "9000000001", "password": "x", "role": "resident", "unit": "B-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Phone number already registered", resp["error"])

	// 缺少必填字段
	w, resp = doJSON(t, r, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"name": "NoPhone", "password": "x", "role": "resident",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", resp["error"])

	// 角色不符的登录
	w, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"phone_number": "9000000001", "password": "pass123", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User not found or incorrect role", resp["error"])

	// 正常登录
	w, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"phone_number": "9000000001", "password": "pass123", "role": "resident",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ravi", resp["name"])
	assert.NotEmpty(t, resp["token"])
}

func TestAnnouncementEndpointsRoleGate(t *testing.T) {
	r := setupTestRouter(t)

	adminToken := signupToken(t, r, "Admin", "9000000010", "admin")
	residentToken := signupToken(t, r, "Ravi", "9000000011", "resident")

	// 未认证
	w, resp := doJSON(t, r, http.MethodGet, "/api/announcements", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header is required", resp["error"])

	// 业主不能发布公告
	w, resp = doJSON(t, r, http.MethodPost, "/api/announcements", residentToken, map[string]interface{}{
		"title": "t", "content": "c", "priority": "low",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Only admins can manage announcements", resp["error"])

	// 管理员发布
	w, resp = doJSON(t, r, http.MethodPost, "/api/announcements", adminToken, map[string]interface{}{
		"title": "Water cut", "content": "Saturday", "priority": "high",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotNil(t, resp["announcementId"])

	// 所有角色可读
	w, _ = doJSON(t, r, http.MethodGet, "/api/announcements", residentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Water cut", list[0]["title"])
	assert.NotEmpty(t, list[0]["date"])
}

func TestComplaintResolveLifecycleOverHTTP(t *testing.T) {
	r := setupTestRouter(t)

	adminToken := signupToken(t, r, "Admin", "9000000020", "admin")
	residentToken := signupToken(t, r, "Ravi", "9000000021", "resident")

	w, resp := doJSON(t, r, http.MethodPost, "/api/complaints", residentToken, map[string]interface{}{
		"title": "Lift broken", "description": "Stuck", "priority": "high",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "open", resp["status"])
	assert.Equal(t, "A-101", resp["unit"])
	id := uint(resp["id"].(float64))

	// 处理说明必填
	w, resp = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/complaints/%d/resolve", id), adminToken, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Resolution description is required", resp["error"])

	// 管理员处理
	w, resp = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/complaints/%d/resolve", id), adminToken, map[string]interface{}{
		"resolution_description": "fixed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "resolved", resp["status"])
	assert.Equal(t, "fixed", resp["resolution_description"])

	// 重复处理
	w, resp = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/complaints/%d/resolve", id), adminToken, map[string]interface{}{
		"resolution_description": "again",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Complaint is already resolved", resp["error"])
}

func TestVisitorEndpointsWithoutToken(t *testing.T) {
	r := setupTestRouter(t)

	// 门岗自助机部署：无令牌登记
	w, resp := doJSON(t, r, http.MethodPost, "/api/visitors/checkin", "", map[string]interface{}{
		"name": "Amit", "phone": "9123456780", "purpose": "Delivery",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := uint(resp["id"].(float64))
	assert.Nil(t, resp["check_out"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/visitors/current", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/visitors/checkout/%d", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, resp["check_out"])

	// 不存在的访客
	w, resp = doJSON(t, r, http.MethodPost, "/api/visitors/checkout/42", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Visitor not found", resp["error"])
}

func TestHealthEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", resp["status"])
}

func TestNotificationFeedOverHTTP(t *testing.T) {
	r := setupTestRouter(t)

	adminToken := signupToken(t, r, "Admin", "9000000030", "admin")
	residentToken := signupToken(t, r, "Ravi", "9000000031", "resident")

	w, _ := doJSON(t, r, http.MethodPost, "/api/announcements", adminToken, map[string]interface{}{
		"title": "Water cut", "content": "Saturday", "priority": "high",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/notifications", residentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var feed []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "announcement", feed[0]["type"])
}
