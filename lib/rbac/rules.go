package rbac

import (
	"office-tools-backend/models"
)

var rules = map[Action]RuleFunc{
	// Anyone may create a task; managers only inside their own department.
	ActionTaskCreate: func(actor models.Actor, res Resource) bool {
		if actor.Role.IsAdmin() {
			return true
		}
		if actor.Role.IsManager() {
			return sameDepartment(actor, res)
		}
		return true
	},

	// Creator, department scoped manager, or admin.
	ActionTaskUpdate: taskMutateRule,
	ActionTaskDelete: taskMutateRule,

	// Direct assignment and rejection review: admin, or manager of the
	// task's department.
	ActionTaskAssign: departmentModeratorRule,
	ActionTaskReview: departmentModeratorRule,

	// Event status changes (approve/reject) are a moderator call.
	ActionEventModerate: func(actor models.Actor, res Resource) bool {
		return actor.Role.CanModerate()
	},

	// Owner or admin.
	ActionEventDelete: func(actor models.Actor, res Resource) bool {
		return actor.Role.IsAdmin() || isOwner(actor, res)
	},

	// Self, or admin for anyone.
	ActionUserManage: func(actor models.Actor, res Resource) bool {
		return actor.Role.IsAdmin() || isOwner(actor, res)
	},

	ActionDictManage: func(actor models.Actor, res Resource) bool {
		return actor.Role.IsAdmin()
	},

	ActionNotificationCreate: func(actor models.Actor, res Resource) bool {
		return actor.Role.CanModerate()
	},

	ActionReportView: func(actor models.Actor, res Resource) bool {
		return actor.Role.CanModerate()
	},

	ActionBackupRun: func(actor models.Actor, res Resource) bool {
		return actor.Role.IsAdmin()
	},
}

func taskMutateRule(actor models.Actor, res Resource) bool {
	if actor.Role.IsAdmin() || isOwner(actor, res) {
		return true
	}
	return actor.Role.IsManager() && sameDepartment(actor, res)
}

func departmentModeratorRule(actor models.Actor, res Resource) bool {
	if actor.Role.IsAdmin() {
		return true
	}
	return actor.Role.IsManager() && sameDepartment(actor, res)
}
