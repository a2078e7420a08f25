package services

import (
	"testing"
	"time"

	"society-http-service/internal/domain/models"
	"society-http-service/internal/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestComplaintService(db *gorm.DB) InterfaceComplaintService {
	return NewComplaintService(db, testConfig(), testPolicy())
}

func TestCreateComplaintCopiesUnit(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestComplaintService(db)

	resident := seedUser(t, db, "Ravi", "9200000001", models.RoleResident, strPtr("A-101"), nil)

	c, err := svc.CreateComplaint(actorFor(resident), "Lift broken", "Stuck on 3rd floor", models.PriorityHigh)
	require.NoError(t, err)

	assert.Equal(t, resident.ID, c.UserID)
	assert.Equal(t, models.ComplaintStatusOpen, c.Status)
	require.NotNil(t, c.Unit)
	assert.Equal(t, "A-101", *c.Unit)
	assert.Equal(t, time.Now().Format("2006-01-02"), c.Date)
	assert.Nil(t, c.ResolutionDescription)
	assert.Nil(t, c.ResolvedBy)
}

func TestCreateComplaintDeniedForNonResident(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestComplaintService(db)

	admin := seedUser(t, db, "Admin", "9200000002", models.RoleAdmin, strPtr("OFFICE"), nil)
	guard := seedUser(t, db, "Guard", "9200000003", models.RoleSecurity, nil, strPtr("SEC-01"))

	for _, actor := range []*policy.Actor{actorFor(admin), actorFor(guard)} {
		_, err := svc.CreateComplaint(actor, "t", "d", models.PriorityLow)
		assert.EqualError(t, err, "Only residents can submit complaints")
	}
}

func TestGetComplaintsScope(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestComplaintService(db)

	r1 := seedUser(t, db, "R1", "9200000001", models.RoleResident, strPtr("A-101"), nil)
	r2 := seedUser(t, db, "R2", "9200000002", models.RoleResident, strPtr("A-102"), nil)
	admin := seedUser(t, db, "Admin", "9200000003", models.RoleAdmin, strPtr("OFFICE"), nil)
	guard := seedUser(t, db, "Guard", "9200000004", models.RoleSecurity, nil, strPtr("SEC-01"))

	_, err := svc.CreateComplaint(actorFor(r1), "one", "d", models.PriorityLow)
	require.NoError(t, err)
	_, err = svc.CreateComplaint(actorFor(r2), "two", "d", models.PriorityLow)
	require.NoError(t, err)

	// 管理员看到全部
	all, err := svc.GetComplaints(actorFor(admin))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// 业主只看到自己的
	own, err := svc.GetComplaints(actorFor(r1))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, r1.ID, own[0].UserID)

	// 保安没有投诉可见范围
	_, err = svc.GetComplaints(actorFor(guard))
	var denial *policy.Error
	assert.ErrorAs(t, err, &denial)
}

func TestUpdateComplaintOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestComplaintService(db)

	r1 := seedUser(t, db, "R1", "9200000001", models.RoleResident, strPtr("A-101"), nil)
	r2 := seedUser(t, db, "R2", "9200000002", models.RoleResident, strPtr("A-102"), nil)

	c, err := svc.CreateComplaint(actorFor(r1), "Lift", "d", models.PriorityLow)
	require.NoError(t, err)

	// 他人投诉按不存在处理，不泄露记录是否存在
	_, err = svc.UpdateComplaint(actorFor(r2), c.ID, "hacked", "d", models.PriorityLow)
	assert.EqualError(t, err, "Complaint not found or unauthorized")

	// 本人可编辑，户号与状态保持不变
	updated, err := svc.UpdateComplaint(actorFor(r1), c.ID, "Lift still broken", "worse now", models.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, "Lift still broken", updated.Title)
	assert.Equal(t, models.ComplaintStatusOpen, updated.Status)
	require.NotNil(t, updated.Unit)
	assert.Equal(t, "A-101", *updated.Unit)
}

func TestUpdateResolvedComplaintRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestComplaintService(db)

	r1 := seedUser(t, db, "R1", "9200000001", models.RoleResident, strPtr("A-101"), nil)
	admin := seedUser(t, db, "Admin", "9200000002", models.RoleAdmin, strPtr("OFFICE"), nil)

	c, err := svc.CreateComplaint(actorFor(r1), "Lift", "d", models.PriorityLow)
	require.NoError(t, err)

	_, err = svc.ResolveComplaint(actorFor(admin), c.ID, "fixed")
	require.NoError(t, err)

	_, err = svc.UpdateComplaint(actorFor(r1), c.ID, "reopen", "d", models.PriorityLow)
	assert.EqualError(t, err, "Complaint is already resolved")
}

func TestResolveComplaint(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestComplaintService(db)

	r1 := seedUser(t, db, "R1", "9200000001", models.RoleResident, strPtr("A-101"), nil)
	r2 := seedUser(t, db, "R2", "9200000002", models.RoleResident, strPtr("A-102"), nil)
	admin := seedUser(t, db, "Admin", "9200000003", models.RoleAdmin, strPtr("OFFICE"), nil)

	c1, err := svc.CreateComplaint(actorFor(r1), "Lift", "d", models.PriorityLow)
	require.NoError(t, err)
	c2, err := svc.CreateComplaint(actorFor(r2), "Water", "d", models.PriorityLow)
	require.NoError(t, err)

	// 业主不能处理他人投诉
	_, err = svc.ResolveComplaint(actorFor(r1), c2.ID, "done")
	assert.EqualError(t, err, "Residents can only resolve their own complaints")

	// 业主处理自己的投诉
	resolved, err := svc.ResolveComplaint(actorFor(r1), c1.ID, "self service")
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolutionDescription)
	assert.Equal(t, "self service", *resolved.ResolutionDescription)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, r1.ID, *resolved.ResolvedBy)

	// 管理员处理任意投诉
	resolved2, err := svc.ResolveComplaint(actorFor(admin), c2.ID, "fixed by office")
	require.NoError(t, err)
	require.NotNil(t, resolved2.ResolvedBy)
	assert.Equal(t, admin.ID, *resolved2.ResolvedBy)
}

func TestResolveTwiceLeavesRecordUnchanged(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestComplaintService(db)

	r1 := seedUser(t, db, "R1", "9200000001", models.RoleResident, strPtr("A-101"), nil)
	admin := seedUser(t, db, "Admin", "9200000002", models.RoleAdmin, strPtr("OFFICE"), nil)

	c, err := svc.CreateComplaint(actorFor(r1), "Lift", "d", models.PriorityLow)
	require.NoError(t, err)

	first, err := svc.ResolveComplaint(actorFor(admin), c.ID, "fixed")
	require.NoError(t, err)

	// 已完结投诉对任何角色都拒绝重复处理
	_, err = svc.ResolveComplaint(actorFor(admin), c.ID, "fixed again")
	assert.EqualError(t, err, "Complaint is already resolved")
	_, err = svc.ResolveComplaint(actorFor(r1), c.ID, "fixed again")
	assert.EqualError(t, err, "Complaint is already resolved")

	// 原处理信息未被覆盖
	var current models.Complaint
	require.NoError(t, db.First(&current, c.ID).Error)
	require.NotNil(t, current.ResolutionDescription)
	assert.Equal(t, *first.ResolutionDescription, *current.ResolutionDescription)
	require.NotNil(t, current.ResolvedBy)
	assert.Equal(t, *first.ResolvedBy, *current.ResolvedBy)
}

func TestResolveMissingComplaint(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestComplaintService(db)

	admin := seedUser(t, db, "Admin", "9200000001", models.RoleAdmin, strPtr("OFFICE"), nil)

	_, err := svc.ResolveComplaint(actorFor(admin), 42, "fixed")
	assert.ErrorIs(t, err, ErrComplaintNotFound)
}
