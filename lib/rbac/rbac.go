package rbac

import (
	"office-tools-backend/models"
)

// RuleFunc decides whether the actor may perform an action on the resource.
type RuleFunc func(actor models.Actor, res Resource) bool

// Can evaluates the single policy table consulted by every guarded handler.
// Unknown actions are denied.
func Can(actor models.Actor, action Action, res Resource) bool {
	rule, found := rules[action]
	if !found {
		return false
	}
	return rule(actor, res)
}

// sameDepartment holds when the resource is unscoped or the actor belongs to
// the resource's department.
func sameDepartment(actor models.Actor, res Resource) bool {
	if res.DepartmentID == "" {
		return true
	}
	return actor.DepartmentID == res.DepartmentID
}

func isOwner(actor models.Actor, res Resource) bool {
	return res.OwnerID != "" && res.OwnerID == actor.ID
}
