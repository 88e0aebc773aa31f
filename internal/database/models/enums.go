package models

// ApprovalStatus is the lifecycle of join requests, project ideas and project idea requests
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusAccepted ApprovalStatus = "accepted"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// IsValid checks if the ApprovalStatus is valid
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusAccepted, ApprovalStatusRejected:
		return true
	}
	return false
}

// IsResolved reports whether the status is terminal
func (s ApprovalStatus) IsResolved() bool {
	return s == ApprovalStatusAccepted || s == ApprovalStatusRejected
}

// TaskStatus is the state of a task in its review loop
type TaskStatus string

const (
	TaskStatusBacklog      TaskStatus = "backlog"
	TaskStatusInProgress   TaskStatus = "in_progress"
	TaskStatusDone         TaskStatus = "done"
	TaskStatusNeedToRevise TaskStatus = "need_to_revise"
	TaskStatusCompleted    TaskStatus = "completed"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusInProgress, TaskStatusDone, TaskStatusNeedToRevise, TaskStatusCompleted:
		return true
	}
	return false
}

// IsReviewStatus reports whether only a supervisor review may produce the status
func (s TaskStatus) IsReviewStatus() bool {
	return s == TaskStatusCompleted || s == TaskStatusNeedToRevise
}

// NotificationStatus tracks whether the recipient has seen a notification
type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

// Role identifies which kind of account a caller or recipient is
type Role string

const (
	RoleStudent    Role = "student"
	RoleSupervisor Role = "supervisor"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleSupervisor
}
