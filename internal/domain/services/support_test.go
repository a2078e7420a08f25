package services

import (
	"testing"
	"time"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/policy"
	"society-http-service/internal/infrastructure/config"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建内存数据库并迁移全部模型
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:   "test-secret",
		TokenExpiresIn: time.Hour,
		OTPTTL:         5 * time.Minute,
	}
}

func testPolicy() *policy.Policy {
	return policy.New(false)
}

// seedUser 写入一个测试用户并返回其记录
func seedUser(t *testing.T, db *gorm.DB, name, phone string, role models.Role, unit, employeeID *string) *models.User {
	t.Helper()

	user, err := models.NewUser(name, phone, "password123", role, unit, employeeID)
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string {
	return &s
}

func actorFor(user *models.User) *policy.Actor {
	return &policy.Actor{ID: user.ID, Role: user.Role}
}
