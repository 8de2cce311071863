package assignmentstore

import (
	"strings"

	"office-tools-backend/models"
	dbmodels "office-tools-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrDuplicate reports a second row for the same (task, user) pair, raised
// by the unique index when concurrent writers slip past the pre-check.
var ErrDuplicate = errors.New("assignment already exists")

type Provider interface {
	Create(rec dbmodels.TaskAssignment) (*dbmodels.TaskAssignment, error)
	GetByTaskAndUser(taskID, userID string) (rec *dbmodels.TaskAssignment, err error)
	ListByTask(taskID string) (list []dbmodels.TaskAssignment, err error)
	ListTaskIDsByUser(userID string) (ids []string, err error)
	ListRejected(taskID, userID string) (list []dbmodels.TaskAssignment, err error)
	CountActive(taskID string) (int64, error)
	Update(id string, updMap map[string]interface{}) error
	UpdateByIDs(ids []string, updMap map[string]interface{}) error
	DeleteByIDs(ids []string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TaskAssignment) (*dbmodels.TaskAssignment, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByTaskAndUser(taskID, userID string) (rec *dbmodels.TaskAssignment, err error) {
	err = i.db.Model(dbmodels.TaskAssignment{}).
		Where("task_id = ?", taskID).
		Where("user_id = ?", userID).
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

func (i impl) ListByTask(taskID string) (list []dbmodels.TaskAssignment, err error) {
	err = i.db.Model(dbmodels.TaskAssignment{}).
		Where("task_id = ?", taskID).
		Preload("User").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListTaskIDsByUser(userID string) (ids []string, err error) {
	err = i.db.Model(dbmodels.TaskAssignment{}).
		Where("user_id = ?", userID).
		Pluck("task_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) ListRejected(taskID, userID string) (list []dbmodels.TaskAssignment, err error) {
	tx := i.db.Model(dbmodels.TaskAssignment{}).
		Where("task_id = ?", taskID).
		Where("status = ?", models.AssignmentStatusRejected)
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CountActive counts the assignments occupying capacity slots.
func (i impl) CountActive(taskID string) (int64, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.TaskAssignment{}).
		Where("task_id = ?", taskID).
		Where("status IN ?", []models.AssignmentStatus{
			models.AssignmentStatusAccepted,
			models.AssignmentStatusCompleted,
		}).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.TaskAssignment{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) UpdateByIDs(ids []string, updMap map[string]interface{}) error {
	if len(ids) == 0 || len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.TaskAssignment{}).
		Where("id IN ?", ids).
		Updates(updMap).
		Error
}

func (i impl) DeleteByIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Delete(&dbmodels.TaskAssignment{}, ids).
		Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	// sqlite wording, hit by the hermetic test setup
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
