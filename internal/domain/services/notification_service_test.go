package services

import (
	"testing"

	"society-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFeedFixtures(t *testing.T, db *gorm.DB) (resident1, resident2, admin, guard *models.User) {
	t.Helper()

	resident1 = seedUser(t, db, "R1", "9400000001", models.RoleResident, strPtr("A-101"), nil)
	resident2 = seedUser(t, db, "R2", "9400000002", models.RoleResident, strPtr("A-102"), nil)
	admin = seedUser(t, db, "Admin", "9400000003", models.RoleAdmin, strPtr("OFFICE"), nil)
	guard = seedUser(t, db, "Guard", "9400000004", models.RoleSecurity, nil, strPtr("SEC-01"))

	announcementService := NewAnnouncementService(db, testConfig(), testPolicy(), nil)
	_, err := announcementService.CreateAnnouncement(actorFor(admin), "Water cut", "Saturday", models.PriorityHigh)
	require.NoError(t, err)

	complaintService := NewComplaintService(db, testConfig(), testPolicy())
	_, err = complaintService.CreateComplaint(actorFor(resident1), "Lift broken", "d", models.PriorityMedium)
	require.NoError(t, err)
	_, err = complaintService.CreateComplaint(actorFor(resident2), "Leaking pipe", "d", models.PriorityLow)
	require.NoError(t, err)
	return
}

func feedTypes(items []FeedItem) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Type]++
	}
	return counts
}

func TestFeedScopePerRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, testConfig(), testPolicy())

	resident1, _, admin, guard := seedFeedFixtures(t, db)

	// 业主：自己的公告通知 + 自己的投诉
	feed, err := svc.GetFeed(actorFor(resident1), 0)
	require.NoError(t, err)
	counts := feedTypes(feed)
	assert.Equal(t, 1, counts["announcement"])
	assert.Equal(t, 1, counts["complaint"])
	for _, item := range feed {
		if item.Type == "complaint" {
			assert.Equal(t, "Lift broken", item.Title)
			assert.Equal(t, "open", item.Status)
		}
	}

	// 管理员：全部公告 + 全部投诉
	feed, err = svc.GetFeed(actorFor(admin), 0)
	require.NoError(t, err)
	counts = feedTypes(feed)
	assert.Equal(t, 1, counts["announcement"])
	assert.Equal(t, 2, counts["complaint"])

	// 保安：只有公告
	feed, err = svc.GetFeed(actorFor(guard), 0)
	require.NoError(t, err)
	counts = feedTypes(feed)
	assert.Equal(t, 1, counts["announcement"])
	assert.Equal(t, 0, counts["complaint"])
}

func TestFeedOrderAndLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, testConfig(), testPolicy())

	_, _, admin, _ := seedFeedFixtures(t, db)

	feed, err := svc.GetFeed(actorFor(admin), 0)
	require.NoError(t, err)
	require.True(t, len(feed) >= 2)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i-1].Timestamp.Before(feed[i].Timestamp))
	}

	limited, err := svc.GetFeed(actorFor(admin), 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestFeedDropsNotificationsOfDeletedAnnouncements(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, testConfig(), testPolicy())

	resident1, _, admin, _ := seedFeedFixtures(t, db)

	announcementService := NewAnnouncementService(db, testConfig(), testPolicy(), nil)
	announcements, err := announcementService.GetAnnouncements(actorFor(admin), 0)
	require.NoError(t, err)
	require.Len(t, announcements, 1)

	require.NoError(t, announcementService.DeleteAnnouncement(actorFor(admin), announcements[0].ID))

	feed, err := svc.GetFeed(actorFor(resident1), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, feedTypes(feed)["announcement"])
}
