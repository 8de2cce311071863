package tasks

import (
	"context"
	"fmt"
	"math"
	"time"

	"office-tools-backend/db"
	participantstore "office-tools-backend/lib/events/participant-store"
	"office-tools-backend/lib/rbac"
	assignmentstore "office-tools-backend/lib/tasks/assignment-store"
	tasksstore "office-tools-backend/lib/tasks/store"
	usersstore "office-tools-backend/lib/users/store"
	"office-tools-backend/lib/utils/helpers"
	"office-tools-backend/lib/utils/lock"
	"office-tools-backend/models"
	notificationapimodels "office-tools-backend/models/api/notification"
	taskapimodels "office-tools-backend/models/api/task"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	rejectReasonLimit = 1000
	lockWait          = 2 * time.Second

	titleNewTask      = "Nhiệm vụ mới"
	titleTaskAccepted = "Nhận nhiệm vụ"
	titleTaskRejected = "Từ chối nhiệm vụ"
	titleTaskDone     = "Hoàn thành nhiệm vụ"

	fallbackActorName = "Một nhân viên"
)

type Provider interface {
	List(actor models.Actor, filter taskapimodels.ListFilter) ([]taskapimodels.TaskView, error)
	Get(actor models.Actor, id string) (*taskapimodels.TaskView, error)
	Create(actor models.Actor, req taskapimodels.CreateTaskRequest) (*taskapimodels.TaskView, error)
	Update(actor models.Actor, id string, req taskapimodels.UpdateTaskRequest) error
	Delete(actor models.Actor, id string) error
	Stats(actor models.Actor, scope string) (*taskapimodels.StatsSummary, error)

	Apply(ctx context.Context, actor models.Actor, taskID string) (*dbmodels.TaskAssignment, error)
	Assign(ctx context.Context, actor models.Actor, taskID, userID string) (*dbmodels.TaskAssignment, error)
	Accept(ctx context.Context, actor models.Actor, taskID string) (*dbmodels.TaskAssignment, error)
	Reject(actor models.Actor, taskID, reason string) (*dbmodels.TaskAssignment, error)
	ApproveRejection(actor models.Actor, taskID, userID string) (*taskapimodels.ReviewResult, error)
	DenyRejection(actor models.Actor, taskID, userID string) (*taskapimodels.ReviewResult, error)
	UpdateProgress(actor models.Actor, taskID string, progress *float64) (*dbmodels.TaskAssignment, error)
}

var Instance Provider

func NewHandler(notifier Notifier) {
	Instance = newInstance(db.DB, notifier)
}

func newInstance(gormDB *gorm.DB, notifier Notifier) *impl {
	return &impl{
		taskStore:        tasksstore.NewInstance(gormDB),
		assignmentStore:  assignmentstore.NewInstance(gormDB),
		userStore:        usersstore.NewInstance(gormDB),
		participantStore: participantstore.NewInstance(gormDB),
		notifier:         notifier,
	}
}

type impl struct {
	taskStore        tasksstore.Provider
	assignmentStore  assignmentstore.Provider
	userStore        usersstore.Provider
	participantStore participantstore.Provider
	notifier         Notifier
}

func (i impl) List(actor models.Actor, filter taskapimodels.ListFilter) ([]taskapimodels.TaskView, error) {
	departmentID, assignedUserID := listScope(actor, filter.Scope)
	list, err := i.taskStore.List(filter, departmentID, assignedUserID)
	if err != nil {
		return nil, errors.Wrap(err, "task list failed")
	}
	return i.attachWeights(list)
}

// listScope resolves role based visibility: admins see everything,
// everyone else is fenced to their department, and scope=me narrows the
// list to the caller's own assignments.
func listScope(actor models.Actor, scope string) (departmentID, assignedUserID string) {
	if scope == "me" {
		return "", actor.ID
	}
	if actor.Role.IsAdmin() {
		return "", ""
	}
	return actor.DepartmentID, ""
}

func (i impl) Get(actor models.Actor, id string) (*taskapimodels.TaskView, error) {
	rec, err := i.taskStore.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "task lookup failed")
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	if !i.canSee(actor, *rec) {
		return nil, ErrForbidden
	}
	weights, err := i.groupWeights(rec.ProjectID)
	if err != nil {
		return nil, err
	}
	return &taskapimodels.TaskView{Task: *rec, EffectiveWeight: weights[rec.ID]}, nil
}

func (i impl) canSee(actor models.Actor, rec dbmodels.Task) bool {
	if actor.Role.IsAdmin() {
		return true
	}
	if rec.DepartmentID == nil || rec.InDepartment(actor.DepartmentID) {
		return true
	}
	for _, a := range rec.Assignments {
		if a.UserID == actor.ID {
			return true
		}
	}
	return false
}

func (i impl) Create(actor models.Actor, req taskapimodels.CreateTaskRequest) (*taskapimodels.TaskView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	departmentID := req.DepartmentID
	if departmentID == nil && actor.DepartmentID != "" {
		dept := actor.DepartmentID
		departmentID = &dept
	}
	if !rbac.Can(actor, rbac.ActionTaskCreate, rbac.Resource{DepartmentID: deref(departmentID)}) {
		return nil, ErrForbidden
	}
	if req.Weight != nil {
		if err := i.checkWeight(req.ProjectID, "", *req.Weight); err != nil {
			return nil, err
		}
	}
	rec := dbmodels.Task{
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       req.Status,
		ProjectID:    req.ProjectID,
		DepartmentID: departmentID,
		CreatedByID:  actor.ID,
		Priority:     req.Priority,
		Type:         req.Type,
		Capacity:     req.Capacity,
		Weight:       req.Weight,
	}
	if rec.Status == "" {
		rec.Status = models.TaskStatusTodo
	}
	if rec.Priority == "" {
		rec.Priority = models.TaskPriorityNormal
	}
	if rec.Type == "" {
		rec.Type = models.AssignmentTypeOpen
	}
	if rec.Capacity < 1 {
		rec.Capacity = 1
	}
	id, err := i.taskStore.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "task create failed")
	}
	i.notifier.Broadcast("tasks", "created", id)
	return i.Get(actor, id)
}

func (i impl) Update(actor models.Actor, id string, req taskapimodels.UpdateTaskRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.taskStore.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "task lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	if !rbac.Can(actor, rbac.ActionTaskUpdate, rbac.Resource{DepartmentID: deref(rec.DepartmentID), OwnerID: rec.CreatedByID}) {
		return ErrForbidden
	}
	group := rec.ProjectID
	if req.ProjectID != nil {
		group = req.ProjectID
	}
	if req.Weight != nil {
		if err := i.checkWeight(group, rec.ID, *req.Weight); err != nil {
			return err
		}
	}

	updMap := map[string]interface{}{}
	if req.Title != nil {
		updMap["title"] = *req.Title
	}
	if req.Description != nil {
		updMap["description"] = *req.Description
	}
	if req.StartTime != nil {
		updMap["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updMap["end_time"] = *req.EndTime
	}
	if req.Status != nil {
		updMap["status"] = *req.Status
	}
	if req.ProjectID != nil {
		updMap["project_id"] = *req.ProjectID
	}
	if req.Priority != nil {
		updMap["priority"] = *req.Priority
	}
	if req.Type != nil {
		updMap["assignment_type"] = *req.Type
	}
	if req.Capacity != nil {
		updMap["capacity"] = *req.Capacity
	}
	if req.Weight != nil {
		updMap["weight"] = *req.Weight
	}
	if req.ClearWeight {
		updMap["weight"] = nil
	}
	if err := i.taskStore.Update(id, updMap); err != nil {
		return errors.Wrap(err, "task update failed")
	}
	i.notifier.Broadcast("tasks", "updated", id)
	return nil
}

func (i impl) Delete(actor models.Actor, id string) error {
	rec, err := i.taskStore.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "task lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	if !rbac.Can(actor, rbac.ActionTaskDelete, rbac.Resource{DepartmentID: deref(rec.DepartmentID), OwnerID: rec.CreatedByID}) {
		return ErrForbidden
	}
	if err := i.taskStore.Delete(id); err != nil {
		return errors.Wrap(err, "task delete failed")
	}
	i.notifier.Broadcast("tasks", "deleted", id)
	return nil
}

func (i impl) Stats(actor models.Actor, scope string) (*taskapimodels.StatsSummary, error) {
	if scope == "" {
		switch {
		case actor.Role.IsAdmin():
			scope = "all"
		case actor.Role.IsManager():
			scope = "department"
		default:
			scope = "me"
		}
	}
	var (
		departmentID string
		taskIDs      []string
	)
	switch scope {
	case "me":
		ids, err := i.assignmentStore.ListTaskIDsByUser(actor.ID)
		if err != nil {
			return nil, errors.Wrap(err, "assignment lookup failed")
		}
		if len(ids) == 0 {
			return &taskapimodels.StatsSummary{}, nil
		}
		taskIDs = ids
	case "department":
		departmentID = actor.DepartmentID
	case "all":
		if !actor.Role.IsAdmin() {
			departmentID = actor.DepartmentID
		}
	default:
		return nil, errors.New("Invalid scope")
	}
	byStatus, err := i.taskStore.StatsByStatus(departmentID, taskIDs)
	if err != nil {
		return nil, errors.Wrap(err, "task stats failed")
	}
	return &taskapimodels.StatsSummary{
		Todo:       byStatus[models.TaskStatusTodo],
		InProgress: byStatus[models.TaskStatusInProgress],
		Completed:  byStatus[models.TaskStatusCompleted],
	}, nil
}

// Apply is the employee self-apply path, allowed on open tasks only.
// The capacity check and the insert run under a per-task lock, the unique
// index is the backstop for anything that still slips through.
func (i impl) Apply(ctx context.Context, actor models.Actor, taskID string) (*dbmodels.TaskAssignment, error) {
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return nil, errors.Wrap(err, "task lookup failed")
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if task.Status == models.TaskStatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	if task.Type != models.AssignmentTypeOpen {
		return nil, ErrNotOpen
	}
	existing, err := i.assignmentStore.GetByTaskAndUser(taskID, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "assignment lookup failed")
	}
	if existing != nil {
		return nil, ErrAlreadyAssigned
	}

	rec, err := i.admit(ctx, *task, actor.ID, models.AssignmentStatusAccepted)
	if err != nil {
		return nil, err
	}

	i.markInProgress(*task)
	i.notifyModerators(*task, titleTaskAccepted,
		fmt.Sprintf("%s đã nhận nhiệm vụ \"%s\"", i.actorName(actor.ID), task.Title))
	i.notifier.Broadcast("tasks", "applied", taskID)
	return rec, nil
}

// Assign is the moderator path: direct tasks land in assigned and wait for
// the user to accept, open tasks land in accepted straight away.
func (i impl) Assign(ctx context.Context, actor models.Actor, taskID, userID string) (*dbmodels.TaskAssignment, error) {
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return nil, errors.Wrap(err, "task lookup failed")
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if !actor.Role.CanModerate() {
		return nil, ErrForbidden
	}
	if !rbac.Can(actor, rbac.ActionTaskAssign, rbac.Resource{DepartmentID: deref(task.DepartmentID)}) {
		return nil, ErrCrossDepartment
	}
	if task.Status == models.TaskStatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	target, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "user lookup failed")
	}
	if target == nil {
		return nil, ErrNotFound
	}

	// Advisory busy check, a lookup failure never blocks the assignment.
	busy, err := i.participantStore.HasActiveEvent(userID, time.Now())
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("busy check failed")
	} else if busy {
		return nil, ErrUserBusy
	}

	existing, err := i.assignmentStore.GetByTaskAndUser(taskID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "assignment lookup failed")
	}
	if existing != nil {
		return nil, ErrAlreadyAssigned
	}

	initial := models.AssignmentStatusAccepted
	if task.Type == models.AssignmentTypeDirect {
		initial = models.AssignmentStatusAssigned
	}
	rec, err := i.admit(ctx, *task, userID, initial)
	if err != nil {
		return nil, err
	}

	i.markInProgress(*task)
	i.notifier.Notify([]string{userID}, titleNewTask,
		fmt.Sprintf("Bạn được giao nhiệm vụ \"%s\"", task.Title),
		taskRef(taskID))
	i.notifier.Broadcast("tasks", "assigned", taskID)
	return rec, nil
}

// admit serializes the capacity check and the insert per task.
func (i impl) admit(ctx context.Context, task dbmodels.Task, userID string, initial models.AssignmentStatus) (*dbmodels.TaskAssignment, error) {
	var rec *dbmodels.TaskAssignment
	ok, err := lock.WithDelay(ctx, "task:"+task.ID, lockWait, func() error {
		active, err := i.assignmentStore.CountActive(task.ID)
		if err != nil {
			return errors.Wrap(err, "capacity count failed")
		}
		if active >= int64(task.Capacity) {
			return ErrTaskFull
		}
		rec, err = i.assignmentStore.Create(dbmodels.TaskAssignment{
			TaskID: task.ID,
			UserID: userID,
			Status: initial,
		})
		if errors.Is(err, assignmentstore.ErrDuplicate) {
			return ErrAlreadyAssigned
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Errorf("task %s is locked, try again", task.ID)
	}
	return rec, nil
}

func (i impl) Accept(ctx context.Context, actor models.Actor, taskID string) (*dbmodels.TaskAssignment, error) {
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return nil, errors.Wrap(err, "task lookup failed")
	}
	if task == nil {
		return nil, ErrNotFound
	}
	rec, err := i.assignmentStore.GetByTaskAndUser(taskID, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "assignment lookup failed")
	}
	if rec == nil {
		return nil, ErrAssignmentNotFound
	}
	if rec.Status == models.AssignmentStatusAccepted || rec.Status == models.AssignmentStatusCompleted {
		return rec, nil
	}

	// Capacity may have been taken by someone else since the offer.
	ok, err := lock.WithDelay(ctx, "task:"+taskID, lockWait, func() error {
		active, err := i.assignmentStore.CountActive(taskID)
		if err != nil {
			return errors.Wrap(err, "capacity count failed")
		}
		if active >= int64(task.Capacity) {
			return ErrTaskFull
		}
		return i.assignmentStore.Update(rec.ID, map[string]interface{}{
			"status": models.AssignmentStatusAccepted,
		})
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Errorf("task %s is locked, try again", taskID)
	}
	rec.Status = models.AssignmentStatusAccepted

	i.markInProgress(*task)
	i.notifyModerators(*task, titleTaskAccepted,
		fmt.Sprintf("%s đã nhận nhiệm vụ \"%s\"", i.actorName(actor.ID), task.Title))
	i.notifier.Broadcast("tasks", "accepted", taskID)
	return rec, nil
}

func (i impl) Reject(actor models.Actor, taskID, reason string) (*dbmodels.TaskAssignment, error) {
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return nil, errors.Wrap(err, "task lookup failed")
	}
	if task == nil {
		return nil, ErrNotFound
	}
	rec, err := i.assignmentStore.GetByTaskAndUser(taskID, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "assignment lookup failed")
	}
	if rec == nil {
		return nil, ErrAssignmentNotFound
	}
	if rec.Status == models.AssignmentStatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	reason = helpers.Truncate(reason, rejectReasonLimit)
	err = i.assignmentStore.Update(rec.ID, map[string]interface{}{
		"status":        models.AssignmentStatusRejected,
		"reject_reason": reason,
	})
	if err != nil {
		return nil, errors.Wrap(err, "assignment update failed")
	}
	rec.Status = models.AssignmentStatusRejected
	rec.RejectReason = reason

	msg := fmt.Sprintf("%s từ chối: %s", i.actorName(actor.ID), task.Title)
	if reason != "" {
		msg = fmt.Sprintf("%s — Lý do: %s", msg, reason)
	}
	i.notifyModerators(*task, titleTaskRejected, msg)
	i.notifier.Broadcast("tasks", "rejected", taskID)
	return rec, nil
}

func (i impl) ApproveRejection(actor models.Actor, taskID, userID string) (*taskapimodels.ReviewResult, error) {
	task, rows, err := i.rejectedRows(actor, taskID, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	affected := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
		affected = append(affected, r.UserID)
	}
	if err := i.assignmentStore.DeleteByIDs(ids); err != nil {
		return nil, errors.Wrap(err, "assignment delete failed")
	}

	i.notifier.Notify(affected, titleTaskRejected,
		fmt.Sprintf("Yêu cầu từ chối nhiệm vụ \"%s\" đã được chấp nhận", task.Title),
		taskRef(taskID))
	i.notifier.Broadcast("tasks", "rejection_approved", taskID)
	return &taskapimodels.ReviewResult{Count: len(rows)}, nil
}

func (i impl) DenyRejection(actor models.Actor, taskID, userID string) (*taskapimodels.ReviewResult, error) {
	task, rows, err := i.rejectedRows(actor, taskID, userID)
	if err != nil {
		return nil, err
	}
	restored := models.AssignmentStatusAccepted
	if task.Type == models.AssignmentTypeDirect {
		restored = models.AssignmentStatusAssigned
	}
	ids := make([]string, 0, len(rows))
	affected := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
		affected = append(affected, r.UserID)
	}
	err = i.assignmentStore.UpdateByIDs(ids, map[string]interface{}{
		"status":        restored,
		"reject_reason": "",
	})
	if err != nil {
		return nil, errors.Wrap(err, "assignment update failed")
	}

	i.notifier.Notify(affected, titleNewTask,
		fmt.Sprintf("Yêu cầu từ chối nhiệm vụ \"%s\" đã bị từ chối, nhiệm vụ được giao lại", task.Title),
		taskRef(taskID))
	i.notifier.Broadcast("tasks", "rejection_denied", taskID)
	return &taskapimodels.ReviewResult{Count: len(rows)}, nil
}

func (i impl) rejectedRows(actor models.Actor, taskID, userID string) (*dbmodels.Task, []dbmodels.TaskAssignment, error) {
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "task lookup failed")
	}
	if task == nil {
		return nil, nil, ErrNotFound
	}
	if !actor.Role.CanModerate() {
		return nil, nil, ErrForbidden
	}
	if !rbac.Can(actor, rbac.ActionTaskReview, rbac.Resource{DepartmentID: deref(task.DepartmentID)}) {
		return nil, nil, ErrForbidden
	}
	rows, err := i.assignmentStore.ListRejected(taskID, userID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "assignment lookup failed")
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoRejected
	}
	return task, rows, nil
}

func (i impl) UpdateProgress(actor models.Actor, taskID string, progress *float64) (*dbmodels.TaskAssignment, error) {
	if progress == nil || *progress < 0 || *progress > 100 || *progress != math.Trunc(*progress) {
		return nil, ErrInvalidProgress
	}
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return nil, errors.Wrap(err, "task lookup failed")
	}
	if task == nil {
		return nil, ErrNotFound
	}
	rec, err := i.assignmentStore.GetByTaskAndUser(taskID, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "assignment lookup failed")
	}
	if rec == nil {
		return nil, ErrAssignmentNotFound
	}
	if rec.Status == models.AssignmentStatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	value := int(*progress)
	updMap := map[string]interface{}{"progress": value}
	if value == 100 {
		updMap["status"] = models.AssignmentStatusCompleted
	}
	if err := i.assignmentStore.Update(rec.ID, updMap); err != nil {
		return nil, errors.Wrap(err, "assignment update failed")
	}
	rec.Progress = value
	if value == 100 {
		rec.Status = models.AssignmentStatusCompleted
		i.notifyModerators(*task, titleTaskDone,
			fmt.Sprintf("%s đã hoàn thành nhiệm vụ \"%s\"", i.actorName(actor.ID), task.Title))
	}
	i.notifier.Broadcast("tasks", "progress", taskID)
	return rec, nil
}

// markInProgress bumps a fresh task once someone is on it.
func (i impl) markInProgress(task dbmodels.Task) {
	if task.Status != models.TaskStatusTodo {
		return
	}
	err := i.taskStore.Update(task.ID, map[string]interface{}{
		"status": models.TaskStatusInProgress,
	})
	if err != nil {
		log.WithError(err).WithField("task_id", task.ID).Warn("task status bump failed")
	}
}

// notifyModerators targets the department managers, falling back to the
// task creator when there are none.
func (i impl) notifyModerators(task dbmodels.Task, title, message string) {
	audience := []string{task.CreatedByID}
	if task.DepartmentID != nil {
		managers, err := i.userStore.ListManagers(*task.DepartmentID)
		if err != nil {
			log.WithError(err).WithField("task_id", task.ID).Warn("manager lookup failed")
		} else if len(managers) > 0 {
			audience = audience[:0]
			for _, m := range managers {
				audience = append(audience, m.ID)
			}
		}
	}
	i.notifier.Notify(audience, title, message, taskRef(task.ID))
}

func (i impl) actorName(userID string) string {
	rec, err := i.userStore.GetByID(userID)
	if err != nil || rec == nil {
		return fallbackActorName
	}
	return rec.Name
}

func (i impl) attachWeights(list []dbmodels.Task) ([]taskapimodels.TaskView, error) {
	type groupKey struct {
		hasProject bool
		projectID  string
	}
	cache := map[groupKey]map[string]int{}
	views := make([]taskapimodels.TaskView, 0, len(list))
	for _, rec := range list {
		key := groupKey{}
		if rec.ProjectID != nil {
			key = groupKey{hasProject: true, projectID: *rec.ProjectID}
		}
		weights, ok := cache[key]
		if !ok {
			var err error
			weights, err = i.groupWeights(rec.ProjectID)
			if err != nil {
				return nil, err
			}
			cache[key] = weights
		}
		views = append(views, taskapimodels.TaskView{Task: rec, EffectiveWeight: weights[rec.ID]})
	}
	return views, nil
}

func (i impl) groupWeights(projectID *string) (map[string]int, error) {
	siblings, err := i.taskStore.ListSiblings(projectID)
	if err != nil {
		return nil, errors.Wrap(err, "sibling lookup failed")
	}
	return EffectiveWeights(siblings), nil
}

func (i impl) checkWeight(projectID *string, selfID string, weight int) error {
	siblings, err := i.taskStore.ListSiblings(projectID)
	if err != nil {
		return errors.Wrap(err, "sibling lookup failed")
	}
	return ValidateWeight(siblings, selfID, weight)
}

func taskRef(taskID string) notificationapimodels.Ref {
	return notificationapimodels.Ref{Type: "task", ID: taskID}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
