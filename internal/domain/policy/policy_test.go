package policy

import (
	"testing"

	"society-http-service/internal/error/code"
	"society-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	resident = &Actor{ID: 1, Role: models.RoleResident}
	security = &Actor{ID: 2, Role: models.RoleSecurity}
	admin    = &Actor{ID: 3, Role: models.RoleAdmin}
)

func denialCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok, "expected *policy.Error, got %T", err)
	return perr.Code
}

func TestAnnouncementRules(t *testing.T) {
	p := New(false)

	// 读取：三种角色均可见全部
	for _, actor := range []*Actor{resident, security, admin} {
		scope, err := p.Authorize(actor, ActionList, Announcement{})
		assert.NoError(t, err)
		assert.Equal(t, ScopeAll, scope)
	}

	// 写入：仅管理员
	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		_, err := p.Authorize(resident, action, Announcement{})
		assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))

		_, err = p.Authorize(security, action, Announcement{})
		assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))

		_, err = p.Authorize(admin, action, Announcement{})
		assert.NoError(t, err)
	}

	// 未认证一律拒绝
	_, err := p.Authorize(nil, ActionList, Announcement{})
	assert.Equal(t, code.ErrTokenInvalid, denialCode(t, err))
}

func TestComplaintCreate(t *testing.T) {
	p := New(false)

	scope, err := p.Authorize(resident, ActionCreate, Complaint{})
	assert.NoError(t, err)
	assert.Equal(t, ScopeOwn, scope)

	_, err = p.Authorize(security, ActionCreate, Complaint{})
	assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))

	_, err = p.Authorize(admin, ActionCreate, Complaint{})
	assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))
}

func TestComplaintListScope(t *testing.T) {
	p := New(false)

	scope, err := p.Authorize(resident, ActionList, Complaint{})
	assert.NoError(t, err)
	assert.Equal(t, ScopeOwn, scope)

	scope, err = p.Authorize(admin, ActionList, Complaint{})
	assert.NoError(t, err)
	assert.Equal(t, ScopeAll, scope)

	_, err = p.Authorize(security, ActionList, Complaint{})
	assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))
}

func TestComplaintUpdate(t *testing.T) {
	p := New(false)
	own := Complaint{OwnerID: resident.ID, Status: models.ComplaintStatusOpen}

	// 本人且未完结：允许
	_, err := p.Authorize(resident, ActionUpdate, own)
	assert.NoError(t, err)

	// 非本人：按不存在处理
	other := Complaint{OwnerID: 99, Status: models.ComplaintStatusOpen}
	_, err = p.Authorize(resident, ActionUpdate, other)
	assert.Equal(t, code.ErrComplaintNotFound, denialCode(t, err))

	// 已完结：拒绝编辑
	resolved := Complaint{OwnerID: resident.ID, Status: models.ComplaintStatusResolved}
	_, err = p.Authorize(resident, ActionUpdate, resolved)
	assert.Equal(t, code.ErrComplaintAlreadyResolved, denialCode(t, err))

	// 管理员和保安都不能编辑投诉内容
	_, err = p.Authorize(admin, ActionUpdate, own)
	assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))
	_, err = p.Authorize(security, ActionUpdate, own)
	assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))
}

func TestComplaintResolve(t *testing.T) {
	p := New(false)
	own := Complaint{OwnerID: resident.ID, Status: models.ComplaintStatusOpen}
	other := Complaint{OwnerID: 99, Status: models.ComplaintStatusInProgress}

	// 业主处理自己的投诉
	_, err := p.Authorize(resident, ActionResolve, own)
	assert.NoError(t, err)

	// 业主处理他人投诉：拒绝
	_, err = p.Authorize(resident, ActionResolve, other)
	assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))

	// 管理员处理任意投诉
	_, err = p.Authorize(admin, ActionResolve, own)
	assert.NoError(t, err)
	_, err = p.Authorize(admin, ActionResolve, other)
	assert.NoError(t, err)

	// 保安不能处理
	_, err = p.Authorize(security, ActionResolve, own)
	assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))
}

// 终态投诉的再次处理对任何角色都以独立的原因拒绝
func TestResolveAlreadyResolved(t *testing.T) {
	p := New(false)
	resolved := Complaint{OwnerID: resident.ID, Status: models.ComplaintStatusResolved}

	for _, actor := range []*Actor{resident, admin} {
		_, err := p.Authorize(actor, ActionResolve, resolved)
		assert.Equal(t, code.ErrComplaintAlreadyResolved, denialCode(t, err))
		assert.EqualError(t, err, "Complaint is already resolved")
	}
}

func TestVisitorPolicySwitch(t *testing.T) {
	// 门岗模式：未认证可访问
	kiosk := New(false)
	for _, action := range []Action{ActionCheckIn, ActionCheckOut, ActionList} {
		_, err := kiosk.Authorize(nil, action, Visitor{})
		assert.NoError(t, err)
	}

	// 加固模式：要求令牌
	hardened := New(true)
	_, err := hardened.Authorize(nil, ActionCheckIn, Visitor{})
	assert.Equal(t, code.ErrTokenInvalid, denialCode(t, err))

	_, err = hardened.Authorize(security, ActionCheckIn, Visitor{})
	assert.NoError(t, err)
}

// 未覆盖的动作默认拒绝
func TestDenyByDefault(t *testing.T) {
	p := New(false)

	_, err := p.Authorize(admin, Action("purge"), Complaint{})
	assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))

	_, err = p.Authorize(admin, ActionResolve, Announcement{})
	assert.Equal(t, code.ErrPermissionDenied, denialCode(t, err))
}
