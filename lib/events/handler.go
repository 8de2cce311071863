package events

import (
	"fmt"

	"office-tools-backend/db"
	participantstore "office-tools-backend/lib/events/participant-store"
	eventsstore "office-tools-backend/lib/events/store"
	"office-tools-backend/lib/rbac"
	"office-tools-backend/models"
	eventapimodels "office-tools-backend/models/api/event"
	notificationapimodels "office-tools-backend/models/api/notification"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	titleEventInvite   = "Lời mời tham gia sự kiện"
	titleEventStatus   = "Cập nhật sự kiện"
	titleEventCanceled = "Hủy sự kiện"
)

var (
	ErrNotFound          = errors.New("Not found")
	ErrForbidden         = errors.New("Forbidden")
	ErrInvalidTransition = errors.New("Invalid status transition")
)

// Notifier mirrors the side channel of the task workflow; the production
// wiring plugs in the notification fan-out.
type Notifier interface {
	Notify(userIDs []string, title, message string, ref notificationapimodels.Ref)
	Broadcast(resource, action, id string)
}

type Provider interface {
	List(actor models.Actor) ([]dbmodels.Event, error)
	Get(actor models.Actor, id string) (*dbmodels.Event, error)
	Create(actor models.Actor, req eventapimodels.CreateEventRequest) (*dbmodels.Event, error)
	Update(actor models.Actor, id string, req eventapimodels.UpdateEventRequest) error
	Delete(actor models.Actor, id string) error

	Participants(actor models.Actor, eventID string) ([]dbmodels.Participant, error)
	AddParticipants(actor models.Actor, req eventapimodels.AddParticipantsRequest) ([]dbmodels.Participant, error)
	Rsvp(actor models.Actor, participantID string, status models.ParticipantStatus) error
}

var Instance Provider

func NewHandler(notifier Notifier) {
	Instance = newInstance(db.DB, notifier)
}

func newInstance(gormDB *gorm.DB, notifier Notifier) *impl {
	return &impl{
		eventStore:       eventsstore.NewInstance(gormDB),
		participantStore: participantstore.NewInstance(gormDB),
		notifier:         notifier,
	}
}

type impl struct {
	eventStore       eventsstore.Provider
	participantStore participantstore.Provider
	notifier         Notifier
}

func (i impl) List(actor models.Actor) ([]dbmodels.Event, error) {
	return i.eventStore.List()
}

func (i impl) Get(actor models.Actor, id string) (*dbmodels.Event, error) {
	rec, err := i.eventStore.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "event lookup failed")
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (i impl) Create(actor models.Actor, req eventapimodels.CreateEventRequest) (*dbmodels.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	rec := dbmodels.Event{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   *req.StartTime,
		EndTime:     *req.EndTime,
		RoomID:      req.RoomID,
		CreatedByID: actor.ID,
		Status:      models.EventStatusPending,
		Repeat:      req.Repeat,
	}
	id, err := i.eventStore.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "event create failed")
	}
	if len(req.ParticipantIDs) > 0 {
		if _, err := i.participantStore.BulkAdd(id, req.ParticipantIDs); err != nil {
			return nil, errors.Wrap(err, "participant add failed")
		}
		i.notifier.Notify(req.ParticipantIDs, titleEventInvite,
			fmt.Sprintf("Bạn được mời tham gia sự kiện \"%s\"", req.Title),
			eventRef(id))
	}
	i.notifier.Broadcast("events", "created", id)
	return i.eventStore.GetByID(id)
}

func (i impl) Update(actor models.Actor, id string, req eventapimodels.UpdateEventRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.eventStore.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "event lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}

	updMap := map[string]interface{}{}
	if req.TouchesDetails() {
		// details are frozen once the event leaves pending
		if !actor.Role.IsAdmin() {
			if rec.CreatedByID != actor.ID {
				return ErrForbidden
			}
			if rec.Status != models.EventStatusPending {
				return ErrInvalidTransition
			}
		}
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
		if req.RoomID != nil {
			updMap["room_id"] = *req.RoomID
		}
	}

	if req.Status != nil && *req.Status != rec.Status {
		if !rbac.Can(actor, rbac.ActionEventModerate, rbac.Resource{}) {
			return ErrForbidden
		}
		if rec.Status != models.EventStatusPending {
			return ErrInvalidTransition
		}
		updMap["status"] = *req.Status
	}

	if err := i.eventStore.Update(id, updMap); err != nil {
		return errors.Wrap(err, "event update failed")
	}

	if req.Status != nil && *req.Status != rec.Status {
		i.notifyParticipants(*rec, titleEventStatus,
			fmt.Sprintf("Sự kiện \"%s\" đã chuyển sang trạng thái %s", rec.Title, *req.Status))
	}
	i.notifier.Broadcast("events", "updated", id)
	return nil
}

func (i impl) Delete(actor models.Actor, id string) error {
	rec, err := i.eventStore.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "event lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	if !rbac.Can(actor, rbac.ActionEventDelete, rbac.Resource{OwnerID: rec.CreatedByID}) {
		return ErrForbidden
	}

	i.notifyParticipants(*rec, titleEventCanceled,
		fmt.Sprintf("Sự kiện \"%s\" đã bị hủy", rec.Title))

	if err := i.participantStore.DeleteByEvent(id); err != nil {
		return errors.Wrap(err, "participant delete failed")
	}
	if err := i.eventStore.Delete(id); err != nil {
		return errors.Wrap(err, "event delete failed")
	}
	i.notifier.Broadcast("events", "deleted", id)
	return nil
}

func (i impl) Participants(actor models.Actor, eventID string) ([]dbmodels.Participant, error) {
	rec, err := i.eventStore.GetByID(eventID)
	if err != nil {
		return nil, errors.Wrap(err, "event lookup failed")
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return i.participantStore.ListByEvent(eventID)
}

func (i impl) AddParticipants(actor models.Actor, req eventapimodels.AddParticipantsRequest) ([]dbmodels.Participant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	rec, err := i.eventStore.GetByID(req.EventID)
	if err != nil {
		return nil, errors.Wrap(err, "event lookup failed")
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	if rec.CreatedByID != actor.ID && !actor.Role.CanModerate() {
		return nil, ErrForbidden
	}
	added, err := i.participantStore.BulkAdd(req.EventID, req.UserIDs)
	if err != nil {
		return nil, errors.Wrap(err, "participant add failed")
	}
	i.notifier.Notify(req.UserIDs, titleEventInvite,
		fmt.Sprintf("Bạn được mời tham gia sự kiện \"%s\"", rec.Title),
		eventRef(req.EventID))
	i.notifier.Broadcast("events", "participants_added", req.EventID)
	return added, nil
}

func (i impl) Rsvp(actor models.Actor, participantID string, status models.ParticipantStatus) error {
	if !status.Valid() || status == models.ParticipantStatusPending {
		return errors.New("Invalid status")
	}
	rec, err := i.participantStore.GetByID(participantID)
	if err != nil {
		return errors.Wrap(err, "participant lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.UserID != actor.ID {
		return ErrForbidden
	}
	if err := i.participantStore.UpdateStatus(participantID, status); err != nil {
		return errors.Wrap(err, "participant update failed")
	}

	event, err := i.eventStore.GetByID(rec.EventID)
	if err == nil && event != nil {
		verb := "chấp nhận"
		if status == models.ParticipantStatusDeclined {
			verb = "từ chối"
		}
		i.notifier.Notify([]string{event.CreatedByID}, titleEventStatus,
			fmt.Sprintf("Một người tham gia đã %s lời mời sự kiện \"%s\"", verb, event.Title),
			eventRef(event.ID))
	}
	i.notifier.Broadcast("events", "rsvp", rec.EventID)
	return nil
}

func (i impl) notifyParticipants(event dbmodels.Event, title, message string) {
	list, err := i.participantStore.ListByEvent(event.ID)
	if err != nil {
		return
	}
	userIDs := make([]string, 0, len(list))
	for _, p := range list {
		userIDs = append(userIDs, p.UserID)
	}
	i.notifier.Notify(userIDs, title, message, eventRef(event.ID))
}

func eventRef(eventID string) notificationapimodels.Ref {
	return notificationapimodels.Ref{Type: "event", ID: eventID}
}
