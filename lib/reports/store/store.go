package reportsstore

import (
	reportapimodels "office-tools-backend/models/api/report"
	dbmodels "office-tools-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	EventsByMonth(year int) ([]reportapimodels.EventsByMonthRow, error)
	EventsByDepartment() ([]reportapimodels.EventsByDepartmentRow, error)
	TasksWithDepartments() ([]dbmodels.Task, map[string]string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) EventsByMonth(year int) ([]reportapimodels.EventsByMonthRow, error) {
	var rows []reportapimodels.EventsByMonthRow
	err := i.db.Model(dbmodels.Event{}).
		Select("EXTRACT(MONTH FROM start_time)::int AS month, count(id) AS count").
		Where("EXTRACT(YEAR FROM start_time) = ?", year).
		Group("month").
		Order("month").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// EventsByDepartment attributes each event to its creator's department.
func (i impl) EventsByDepartment() ([]reportapimodels.EventsByDepartmentRow, error) {
	var rows []reportapimodels.EventsByDepartmentRow
	err := i.db.Model(dbmodels.Event{}).
		Select("COALESCE(departments.name, 'N/A') AS department, count(events.id) AS count").
		Joins("JOIN users ON users.id = events.created_by_id").
		Joins("LEFT JOIN departments ON departments.id = users.department_id").
		Group("departments.name").
		Order("count DESC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (i impl) TasksWithDepartments() ([]dbmodels.Task, map[string]string, error) {
	var tasks []dbmodels.Task
	err := i.db.Model(dbmodels.Task{}).
		Preload("Assignments").
		Order("created_at").
		Find(&tasks).
		Error
	if err != nil {
		return nil, nil, err
	}
	var departments []dbmodels.Department
	if err := i.db.Find(&departments).Error; err != nil {
		return nil, nil, err
	}
	names := make(map[string]string, len(departments))
	for _, d := range departments {
		names[d.ID] = d.Name
	}
	return tasks, names, nil
}
