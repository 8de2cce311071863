package taskapimodels

import (
	"time"

	"github.com/pkg/errors"
	"office-tools-backend/models"
	dbmodels "office-tools-backend/models/db"
)

type CreateTaskRequest struct {
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	StartTime    *time.Time            `json:"start_time"`
	EndTime      *time.Time            `json:"end_time"`
	Status       models.TaskStatus     `json:"status"`
	ProjectID    *string               `json:"projectId"`
	DepartmentID *string               `json:"departmentId"`
	Priority     models.TaskPriority   `json:"priority"`
	Type         models.AssignmentType `json:"assignment_type"`
	Capacity     int                   `json:"capacity"`
	Weight       *int                  `json:"weight"`
}

func (r CreateTaskRequest) Validate() error {
	if r.Title == "" {
		return errors.New("Missing title")
	}
	if r.Status != "" && !r.Status.Valid() {
		return errors.New("Invalid status")
	}
	if r.Priority != "" && !r.Priority.Valid() {
		return errors.New("Invalid priority")
	}
	if r.Type != "" && r.Type != models.AssignmentTypeOpen && r.Type != models.AssignmentTypeDirect {
		return errors.New("Invalid assignment_type")
	}
	if r.Capacity < 0 {
		return errors.New("Invalid capacity")
	}
	if r.Weight != nil && (*r.Weight < 0 || *r.Weight > 100) {
		return errors.New("Invalid weight")
	}
	return nil
}

type UpdateTaskRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	StartTime   *time.Time             `json:"start_time"`
	EndTime     *time.Time             `json:"end_time"`
	Status      *models.TaskStatus     `json:"status"`
	ProjectID   *string                `json:"projectId"`
	Priority    *models.TaskPriority   `json:"priority"`
	Type        *models.AssignmentType `json:"assignment_type"`
	Capacity    *int                   `json:"capacity"`
	Weight      *int                   `json:"weight"`
	ClearWeight bool                   `json:"clearWeight"`
}

func (r UpdateTaskRequest) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("Invalid status")
	}
	if r.Priority != nil && !r.Priority.Valid() {
		return errors.New("Invalid priority")
	}
	if r.Capacity != nil && *r.Capacity < 1 {
		return errors.New("Invalid capacity")
	}
	if r.Weight != nil && (*r.Weight < 0 || *r.Weight > 100) {
		return errors.New("Invalid weight")
	}
	return nil
}

// ListFilter mirrors the query params of the task list endpoint.
type ListFilter struct {
	ID        string
	Status    models.TaskStatus
	ProjectID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
	Scope     string // "all" disables role based scoping where permitted
}

type AssignRequest struct {
	UserID string `json:"userId"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// ReviewRequest optionally narrows a rejection review to one user.
type ReviewRequest struct {
	UserID string `json:"userId"`
}

type ReviewResult struct {
	Count int `json:"count"`
}

type ProgressRequest struct {
	Progress *float64 `json:"progress"`
}

// TaskView is a task list item with the read side effective weight attached.
type TaskView struct {
	dbmodels.Task
	EffectiveWeight int `json:"effectiveWeight"`
}

type StatsSummary struct {
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}
