package reports

import (
	"bytes"

	"office-tools-backend/db"
	pdfexport "office-tools-backend/lib/export/pdf"
	xlsexport "office-tools-backend/lib/export/xls"
	"office-tools-backend/lib/rbac"
	reportsstore "office-tools-backend/lib/reports/store"
	"office-tools-backend/models"
	reportapimodels "office-tools-backend/models/api/report"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
)

var ErrForbidden = errors.New("Forbidden")

type Provider interface {
	EventsByMonth(actor models.Actor, year int) ([]reportapimodels.EventsByMonthRow, error)
	EventsByDepartment(actor models.Actor) ([]reportapimodels.EventsByDepartmentRow, error)
	TaskReportXlsx(actor models.Actor) (*bytes.Buffer, error)
	TaskReportPdf(actor models.Actor) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: reportsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store reportsstore.Provider
}

func (i impl) EventsByMonth(actor models.Actor, year int) ([]reportapimodels.EventsByMonthRow, error) {
	if !rbac.Can(actor, rbac.ActionReportView, rbac.Resource{}) {
		return nil, ErrForbidden
	}
	return i.store.EventsByMonth(year)
}

func (i impl) EventsByDepartment(actor models.Actor) ([]reportapimodels.EventsByDepartmentRow, error) {
	if !rbac.Can(actor, rbac.ActionReportView, rbac.Resource{}) {
		return nil, ErrForbidden
	}
	return i.store.EventsByDepartment()
}

func (i impl) TaskReportXlsx(actor models.Actor) (*bytes.Buffer, error) {
	rows, err := i.taskReport(actor)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportTaskReport(rows)
}

func (i impl) TaskReportPdf(actor models.Actor) ([]byte, error) {
	rows, err := i.taskReport(actor)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateTaskReport(rows)
}

func (i impl) taskReport(actor models.Actor) ([]reportapimodels.TaskReportRow, error) {
	if !rbac.Can(actor, rbac.ActionReportView, rbac.Resource{}) {
		return nil, ErrForbidden
	}
	tasks, departmentNames, err := i.store.TasksWithDepartments()
	if err != nil {
		return nil, errors.Wrap(err, "task report load failed")
	}
	rows := make([]reportapimodels.TaskReportRow, 0, len(tasks))
	for _, t := range tasks {
		department := ""
		if t.DepartmentID != nil {
			department = departmentNames[*t.DepartmentID]
		}
		rows = append(rows, reportapimodels.TaskReportRow{
			Title:      t.Title,
			Department: department,
			Status:     string(t.Status),
			Priority:   string(t.Priority),
			Assignees:  activeAssignees(t),
			Capacity:   t.Capacity,
			Progress:   taskProgress(t),
		})
	}
	return rows, nil
}

func activeAssignees(t dbmodels.Task) int {
	count := 0
	for _, a := range t.Assignments {
		if a.Status.CountsTowardCapacity() {
			count++
		}
	}
	return count
}

func taskProgress(t dbmodels.Task) int {
	if t.Status == models.TaskStatusCompleted {
		return 100
	}
	if len(t.Assignments) == 0 {
		return 0
	}
	sum := 0
	for _, a := range t.Assignments {
		sum += a.Progress
	}
	return sum / len(t.Assignments)
}
