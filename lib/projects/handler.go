package projects

import (
	"office-tools-backend/db"
	eventsstore "office-tools-backend/lib/events/store"
	projectsstore "office-tools-backend/lib/projects/store"
	"office-tools-backend/lib/tasks"
	"office-tools-backend/models"
	projectapimodels "office-tools-backend/models/api/project"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("Not found")
	ErrForbidden = errors.New("Forbidden")
)

type Provider interface {
	List(actor models.Actor) ([]projectapimodels.ProjectView, error)
	Get(actor models.Actor, id string) (*projectapimodels.ProjectView, error)
	Create(actor models.Actor, req projectapimodels.CreateProjectRequest) (*projectapimodels.ProjectView, error)
	Update(actor models.Actor, id string, req projectapimodels.UpdateProjectRequest) error
	Delete(actor models.Actor, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = newInstance(db.DB)
}

func newInstance(gormDB *gorm.DB) *impl {
	return &impl{
		store:      projectsstore.NewInstance(gormDB),
		eventStore: eventsstore.NewInstance(gormDB),
	}
}

type impl struct {
	store      projectsstore.Provider
	eventStore eventsstore.Provider
}

func (i impl) List(actor models.Actor) ([]projectapimodels.ProjectView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "project list failed")
	}
	views := make([]projectapimodels.ProjectView, 0, len(list))
	for _, rec := range list {
		views = append(views, projectapimodels.ProjectView{
			Project:  rec,
			Progress: Rollup(rec.Tasks),
		})
	}
	return views, nil
}

func (i impl) Get(actor models.Actor, id string) (*projectapimodels.ProjectView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "project lookup failed")
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return &projectapimodels.ProjectView{Project: *rec, Progress: Rollup(rec.Tasks)}, nil
}

func (i impl) Create(actor models.Actor, req projectapimodels.CreateProjectRequest) (*projectapimodels.ProjectView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !actor.Role.CanModerate() {
		return nil, ErrForbidden
	}
	id, err := i.store.Create(dbmodels.Project{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, errors.Wrap(err, "project create failed")
	}

	// Companion calendar event, skipped silently when the window is absent.
	if req.CreateEvent && req.EventStart != nil && req.EventEnd != nil {
		_, err := i.eventStore.Create(dbmodels.Event{
			Title:       req.Name,
			Description: req.Description,
			StartTime:   *req.EventStart,
			EndTime:     *req.EventEnd,
			RoomID:      req.RoomID,
			CreatedByID: actor.ID,
			Status:      models.EventStatusApproved,
		})
		if err != nil {
			log.WithError(err).WithField("project_id", id).Warn("companion event create failed")
		}
	}
	return i.Get(actor, id)
}

func (i impl) Update(actor models.Actor, id string, req projectapimodels.UpdateProjectRequest) error {
	if !actor.Role.CanModerate() {
		return ErrForbidden
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "project lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	updMap := map[string]interface{}{}
	if req.Name != nil {
		updMap["name"] = *req.Name
	}
	if req.Description != nil {
		updMap["description"] = *req.Description
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(actor models.Actor, id string) error {
	if !actor.Role.IsAdmin() {
		return ErrForbidden
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "project lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.store.Delete(id)
}

// Rollup folds task completion into one 0..100 figure using the effective
// weights of the task group. A completed task counts in full, anything else
// counts as the average progress of its assignments.
func Rollup(group []dbmodels.Task) int {
	if len(group) == 0 {
		return 0
	}
	weights := tasks.EffectiveWeights(group)
	total := 0
	for _, t := range group {
		total += weights[t.ID] * taskCompletion(t)
	}
	return total / 100
}

func taskCompletion(t dbmodels.Task) int {
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
