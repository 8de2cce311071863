package rbac

// Action names a guarded operation.
type Action string

const (
	ActionTaskCreate         Action = "task.create"
	ActionTaskUpdate         Action = "task.update"
	ActionTaskDelete         Action = "task.delete"
	ActionTaskAssign         Action = "task.assign"
	ActionTaskReview         Action = "task.review"
	ActionEventModerate      Action = "event.moderate"
	ActionEventDelete        Action = "event.delete"
	ActionUserManage         Action = "user.manage"
	ActionDictManage         Action = "dict.manage"
	ActionNotificationCreate Action = "notification.create"
	ActionReportView         Action = "report.view"
	ActionBackupRun          Action = "backup.run"
)

// Resource describes the object an action targets. Zero fields mean the
// resource is unscoped in that dimension.
type Resource struct {
	DepartmentID string // owning department
	OwnerID      string // creating or owning user
}
