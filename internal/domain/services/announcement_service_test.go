package services

import (
	"testing"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAnnouncementService(db *gorm.DB) InterfaceAnnouncementService {
	return NewAnnouncementService(db, testConfig(), testPolicy(), nil)
}

func notificationCount(t *testing.T, db *gorm.DB, announcementID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Where("announcement_id = ?", announcementID).Count(&count).Error)
	return count
}

func TestCreateAnnouncementFansOutToResidents(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAnnouncementService(db)

	admin := seedUser(t, db, "Admin", "9100000001", models.RoleAdmin, strPtr("OFFICE"), nil)
	seedUser(t, db, "R1", "9100000002", models.RoleResident, strPtr("A-101"), nil)
	seedUser(t, db, "R2", "9100000003", models.RoleResident, strPtr("A-102"), nil)
	seedUser(t, db, "R3", "9100000004", models.RoleResident, strPtr("B-201"), nil)
	seedUser(t, db, "Guard", "9100000005", models.RoleSecurity, nil, strPtr("SEC-01"))

	a, err := svc.CreateAnnouncement(actorFor(admin), "Water cut", "Saturday 10-14", models.PriorityHigh)
	require.NoError(t, err)
	require.NotZero(t, a.ID)

	// 每位业主恰好一条通知，保安和管理员没有
	assert.Equal(t, int64(3), notificationCount(t, db, a.ID))

	var total int64
	db.Model(&models.Notification{}).Count(&total)
	assert.Equal(t, int64(3), total)
}

func TestCreateAnnouncementDeniedForNonAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAnnouncementService(db)

	resident := seedUser(t, db, "R1", "9100000002", models.RoleResident, strPtr("A-101"), nil)

	_, err := svc.CreateAnnouncement(actorFor(resident), "t", "c", models.PriorityLow)
	var denial *policy.Error
	require.ErrorAs(t, err, &denial)
	assert.EqualError(t, err, "Only admins can manage announcements")

	// 拒绝后不留下任何记录
	var count int64
	db.Model(&models.Announcement{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateAnnouncementInvalidPriority(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAnnouncementService(db)

	admin := seedUser(t, db, "Admin", "9100000001", models.RoleAdmin, strPtr("OFFICE"), nil)

	_, err := svc.CreateAnnouncement(actorFor(admin), "t", "c", models.Priority("urgent"))
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestUpdateAnnouncementRebuildsNotifications(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAnnouncementService(db)

	admin := seedUser(t, db, "Admin", "9100000001", models.RoleAdmin, strPtr("OFFICE"), nil)
	seedUser(t, db, "R1", "9100000002", models.RoleResident, strPtr("A-101"), nil)

	a, err := svc.CreateAnnouncement(actorFor(admin), "Water cut", "Saturday", models.PriorityMedium)
	require.NoError(t, err)
	assert.Equal(t, int64(1), notificationCount(t, db, a.ID))

	// 更新时已有两位业主，通知重建后每人一条
	seedUser(t, db, "R2", "9100000003", models.RoleResident, strPtr("A-102"), nil)

	updated, err := svc.UpdateAnnouncement(actorFor(admin), a.ID, "Water cut extended", "Sunday too", models.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, "Water cut extended", updated.Title)
	assert.Equal(t, int64(2), notificationCount(t, db, a.ID))
}

func TestUpdateAnnouncementNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAnnouncementService(db)

	admin := seedUser(t, db, "Admin", "9100000001", models.RoleAdmin, strPtr("OFFICE"), nil)

	_, err := svc.UpdateAnnouncement(actorFor(admin), 42, "t", "c", models.PriorityLow)
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}

func TestDeleteAnnouncementCleansNotifications(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAnnouncementService(db)

	admin := seedUser(t, db, "Admin", "9100000001", models.RoleAdmin, strPtr("OFFICE"), nil)
	seedUser(t, db, "R1", "9100000002", models.RoleResident, strPtr("A-101"), nil)

	a, err := svc.CreateAnnouncement(actorFor(admin), "t", "c", models.PriorityLow)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAnnouncement(actorFor(admin), a.ID))
	assert.Equal(t, int64(0), notificationCount(t, db, a.ID))

	// 重复删除按不存在处理
	err = svc.DeleteAnnouncement(actorFor(admin), a.ID)
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}

func TestGetAnnouncementsOrderedAndLimited(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAnnouncementService(db)

	admin := seedUser(t, db, "Admin", "9100000001", models.RoleAdmin, strPtr("OFFICE"), nil)
	resident := seedUser(t, db, "R1", "9100000002", models.RoleResident, strPtr("A-101"), nil)

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.CreateAnnouncement(actorFor(admin), title, "c", models.PriorityLow)
		require.NoError(t, err)
	}

	// 所有角色可读
	all, err := svc.GetAnnouncements(actorFor(resident), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := svc.GetAnnouncements(actorFor(resident), 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
