package tasksstore

import (
	"office-tools-backend/models"
	taskapimodels "office-tools-backend/models/api/task"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const maxListLimit = 500

type Provider interface {
	Create(rec dbmodels.Task) (id string, err error)
	GetByID(id string) (rec *dbmodels.Task, err error)
	List(filter taskapimodels.ListFilter, departmentID, assignedUserID string) (list []dbmodels.Task, err error)
	ListSiblings(projectID *string) (list []dbmodels.Task, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	StatsByStatus(departmentID string, taskIDs []string) (map[models.TaskStatus]int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Task) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Task, err error) {
	err = i.db.Model(dbmodels.Task{}).
		Where("id = ?", id).
		Preload("Project").
		Preload("Assignments").
		Preload("Assignments.User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// List applies the endpoint filter plus role based scoping: a non empty
// departmentID restricts to that department, a non empty assignedUserID
// restricts to tasks the user is linked to.
func (i impl) List(filter taskapimodels.ListFilter, departmentID, assignedUserID string) (list []dbmodels.Task, err error) {
	tx := i.db.Model(dbmodels.Task{})
	if filter.ID != "" {
		tx = tx.Where("tasks.id = ?", filter.ID)
	}
	if filter.Status != "" {
		tx = tx.Where("tasks.status = ?", filter.Status)
	}
	if filter.ProjectID != "" {
		tx = tx.Where("tasks.project_id = ?", filter.ProjectID)
	}
	if filter.From != nil {
		tx = tx.Where("tasks.start_time >= ?", filter.From)
	}
	if filter.To != nil {
		tx = tx.Where("tasks.start_time <= ?", filter.To)
	}
	if departmentID != "" {
		tx = tx.Where("tasks.department_id = ?", departmentID)
	}
	if assignedUserID != "" {
		tx = tx.
			Joins("JOIN task_assignments ON task_assignments.task_id = tasks.id").
			Where("task_assignments.user_id = ?", assignedUserID)
	}
	limit := filter.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	err = tx.
		Preload("Project").
		Preload("Assignments").
		Preload("Assignments.User").
		Order("tasks.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListSiblings returns the weight group of a project: its tasks, or the
// tasks with no project when projectID is nil.
func (i impl) ListSiblings(projectID *string) (list []dbmodels.Task, err error) {
	tx := i.db.Model(dbmodels.Task{})
	if projectID == nil {
		tx = tx.Where("project_id IS NULL")
	} else {
		tx = tx.Where("project_id = ?", *projectID)
	}
	err = tx.
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Task{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("task_id = ?", id).
		Delete(&dbmodels.TaskAssignment{}).
		Error
	if err != nil {
		return err
	}
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Task{}).
		Error
}

func (i impl) StatsByStatus(departmentID string, taskIDs []string) (map[models.TaskStatus]int64, error) {
	type row struct {
		Status models.TaskStatus
		Count  int64
	}
	var rows []row
	tx := i.db.Model(dbmodels.Task{}).
		Select("status, count(id) as count").
		Group("status")
	if departmentID != "" {
		tx = tx.Where("department_id = ?", departmentID)
	}
	if taskIDs != nil {
		tx = tx.Where("id IN ?", taskIDs)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := map[models.TaskStatus]int64{
		models.TaskStatusTodo:       0,
		models.TaskStatusInProgress: 0,
		models.TaskStatusCompleted:  0,
	}
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}
