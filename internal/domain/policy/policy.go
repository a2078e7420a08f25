// Package policy centralizes authorization decisions for every mutating
// endpoint. Controllers and services call Authorize() instead of performing
// ad-hoc permission checks.
package policy

import (
	"society-http-service/internal/domain/models"
	"society-http-service/internal/error/code"
)

// Action 对资源的操作类型
type Action string

const (
	ActionCreate   Action = "create"
	ActionRead     Action = "read"
	ActionList     Action = "list"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionResolve  Action = "resolve"
	ActionCheckIn  Action = "checkin"
	ActionCheckOut Action = "checkout"
)

// Scope 列表操作的可见范围
type Scope int

const (
	// ScopeNone 不可见
	ScopeNone Scope = iota
	// ScopeOwn 仅自己创建的记录
	ScopeOwn
	// ScopeAll 全部记录
	ScopeAll
)

// Actor 发起请求的已认证身份，为nil表示未携带有效令牌
type Actor struct {
	ID   uint
	Role models.Role
}

// Resource 鉴权所需的资源快照
type Resource interface {
	resourceKind() string
}

// Announcement 公告资源（无所有权维度）
type Announcement struct{}

// Complaint 投诉资源快照，OwnerID与Status在请求生命周期内视为不可变
type Complaint struct {
	OwnerID uint
	Status  models.ComplaintStatus
}

// Visitor 访客资源（无所有权维度）
type Visitor struct{}

func (Announcement) resourceKind() string { return "announcement" }
func (Complaint) resourceKind() string    { return "complaint" }
func (Visitor) resourceKind() string      { return "visitor" }

// Error is returned when access is denied.
type Error struct {
	Code   int    // internal/error/code 错误码，决定HTTP状态
	Reason string // 客户端可见的拒绝原因
}

func (e *Error) Error() string {
	return e.Reason
}

func deny(errCode int, reason string) *Error {
	if reason == "" {
		reason = code.GetMessage(errCode)
	}
	return &Error{Code: errCode, Reason: reason}
}

// Policy 授权策略。除访客开关外无任何可变状态，决策是actor+资源快照的纯函数
type Policy struct {
	// VisitorAuthRequired 访客接口是否要求认证。
	// 默认false，对应门岗自助机在可信网络直接访问的部署方式
	VisitorAuthRequired bool
}

// New 创建授权策略
func New(visitorAuthRequired bool) *Policy {
	return &Policy{VisitorAuthRequired: visitorAuthRequired}
}

// Authorize 判定actor能否对资源执行action。
// 默认拒绝；规则按 角色 → 所有权 → 状态前置条件 的顺序检查。
// 允许时返回列表可见范围（非列表操作返回ScopeAll），拒绝时返回*Error
func (p *Policy) Authorize(actor *Actor, action Action, res Resource) (Scope, error) {
	switch r := res.(type) {
	case Announcement:
		return p.authorizeAnnouncement(actor, action)
	case Complaint:
		return p.authorizeComplaint(actor, action, r)
	case Visitor:
		return p.authorizeVisitor(actor, action)
	}
	return ScopeNone, deny(code.ErrPermissionDenied, "")
}

// authorizeAnnouncement 公告：所有角色可读，仅管理员可写
func (p *Policy) authorizeAnnouncement(actor *Actor, action Action) (Scope, error) {
	if actor == nil {
		return ScopeNone, deny(code.ErrTokenInvalid, "")
	}

	switch action {
	case ActionList, ActionRead:
		return ScopeAll, nil
	case ActionCreate, ActionUpdate, ActionDelete:
		if actor.Role != models.RoleAdmin {
			return ScopeNone, deny(code.ErrPermissionDenied, "Only admins can manage announcements")
		}
		return ScopeAll, nil
	}
	return ScopeNone, deny(code.ErrPermissionDenied, "")
}

// authorizeComplaint 投诉：业主持有自己的记录，管理员有全局读取和处理权限
func (p *Policy) authorizeComplaint(actor *Actor, action Action, c Complaint) (Scope, error) {
	if actor == nil {
		return ScopeNone, deny(code.ErrTokenInvalid, "")
	}

	switch action {
	case ActionCreate:
		if actor.Role != models.RoleResident {
			return ScopeNone, deny(code.ErrPermissionDenied, "Only residents can submit complaints")
		}
		return ScopeOwn, nil

	case ActionList:
		switch actor.Role {
		case models.RoleAdmin:
			return ScopeAll, nil
		case models.RoleResident:
			return ScopeOwn, nil
		}
		return ScopeNone, deny(code.ErrPermissionDenied, "")

	case ActionUpdate:
		// 角色
		if actor.Role != models.RoleResident {
			return ScopeNone, deny(code.ErrPermissionDenied, "Only residents can edit complaints")
		}
		// 所有权：非本人记录按不存在处理，不向外泄露记录是否存在
		if c.OwnerID != actor.ID {
			return ScopeNone, deny(code.ErrComplaintNotFound, "")
		}
		// 状态前置条件
		if c.Status == models.ComplaintStatusResolved {
			return ScopeNone, deny(code.ErrComplaintAlreadyResolved, "")
		}
		return ScopeOwn, nil

	case ActionResolve:
		// 角色
		if actor.Role != models.RoleAdmin && actor.Role != models.RoleResident {
			return ScopeNone, deny(code.ErrPermissionDenied, "Unauthorized to resolve complaints")
		}
		// 所有权：业主只能处理自己的投诉，管理员不受限
		if actor.Role == models.RoleResident && c.OwnerID != actor.ID {
			return ScopeNone, deny(code.ErrPermissionDenied, "Residents can only resolve their own complaints")
		}
		// 状态前置条件：终态投诉对任何角色都拒绝，且拒绝原因独立
		if c.Status == models.ComplaintStatusResolved {
			return ScopeNone, deny(code.ErrComplaintAlreadyResolved, "")
		}
		return ScopeAll, nil
	}
	return ScopeNone, deny(code.ErrPermissionDenied, "")
}

// authorizeVisitor 访客：鉴权与否由部署开关决定
func (p *Policy) authorizeVisitor(actor *Actor, action Action) (Scope, error) {
	switch action {
	case ActionCheckIn, ActionCheckOut, ActionList:
		if p.VisitorAuthRequired && actor == nil {
			return ScopeNone, deny(code.ErrTokenInvalid, "")
		}
		return ScopeAll, nil
	}
	return ScopeNone, deny(code.ErrPermissionDenied, "")
}
