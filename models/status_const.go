package models

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityNormal, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// AssignmentType controls how users get linked to a task:
// open tasks allow self-apply, direct tasks are manager-assigned only.
type AssignmentType string

const (
	AssignmentTypeOpen   AssignmentType = "open"
	AssignmentTypeDirect AssignmentType = "direct"
)

type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusAccepted  AssignmentStatus = "accepted"
	AssignmentStatusRejected  AssignmentStatus = "rejected"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// CountsTowardCapacity reports whether the assignment occupies one of the
// task's capacity slots.
func (s AssignmentStatus) CountsTowardCapacity() bool {
	return s == AssignmentStatusAccepted || s == AssignmentStatusCompleted
}

type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusApproved, EventStatusRejected:
		return true
	}
	return false
}

type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusAccepted ParticipantStatus = "accepted"
	ParticipantStatusDeclined ParticipantStatus = "declined"
)

func (s ParticipantStatus) Valid() bool {
	switch s {
	case ParticipantStatusPending, ParticipantStatusAccepted, ParticipantStatusDeclined:
		return true
	}
	return false
}
