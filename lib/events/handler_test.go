package events

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	participantstore "office-tools-backend/lib/events/participant-store"
	"office-tools-backend/models"
	eventapimodels "office-tools-backend/models/api/event"
	notificationapimodels "office-tools-backend/models/api/notification"
	dbmodels "office-tools-backend/models/db"
)

type fakeNotifier struct {
	notifies   [][]string
	broadcasts []string
}

func (f *fakeNotifier) Notify(userIDs []string, title, message string, ref notificationapimodels.Ref) {
	f.notifies = append(f.notifies, userIDs)
}

func (f *fakeNotifier) Broadcast(resource, action, id string) {
	f.broadcasts = append(f.broadcasts, resource+"/"+action)
}

type fixture struct {
	db       *gorm.DB
	handler  *impl
	notifier *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	err = gormDB.AutoMigrate(
		&dbmodels.User{},
		&dbmodels.Room{},
		&dbmodels.Event{},
		&dbmodels.Participant{},
	)
	require.NoError(t, err)
	notifier := &fakeNotifier{}
	return &fixture{db: gormDB, handler: newInstance(gormDB, notifier), notifier: notifier}
}

func tp(t time.Time) *time.Time { return &t }

func (f *fixture) createEvent(t *testing.T, actor models.Actor, participants ...string) *dbmodels.Event {
	t.Helper()
	now := time.Now()
	rec, err := f.handler.Create(actor, eventapimodels.CreateEventRequest{
		Title:          "Họp phòng",
		StartTime:      tp(now.Add(time.Hour)),
		EndTime:        tp(now.Add(2 * time.Hour)),
		ParticipantIDs: participants,
	})
	require.NoError(t, err)
	return rec
}

func TestEventLifecycle(t *testing.T) {
	owner := models.Actor{ID: "owner", Role: models.UserRoleEmployee}
	manager := models.Actor{ID: "boss", Role: models.UserRoleManager}

	t.Run("create lands pending and invites participants", func(t *testing.T) {
		f := newFixture(t)
		rec := f.createEvent(t, owner, "u1", "u2")
		require.Equal(t, models.EventStatusPending, rec.Status)

		parts, err := f.handler.Participants(owner, rec.ID)
		require.NoError(t, err)
		require.Len(t, parts, 2)
		require.Equal(t, models.ParticipantStatusPending, parts[0].Status)
		require.NotEmpty(t, f.notifier.notifies)
	})

	t.Run("owner edits while pending only", func(t *testing.T) {
		f := newFixture(t)
		rec := f.createEvent(t, owner)
		title := "renamed"

		require.NoError(t, f.handler.Update(owner, rec.ID, eventapimodels.UpdateEventRequest{Title: &title}))

		approved := models.EventStatusApproved
		require.NoError(t, f.handler.Update(manager, rec.ID, eventapimodels.UpdateEventRequest{Status: &approved}))

		err := f.handler.Update(owner, rec.ID, eventapimodels.UpdateEventRequest{Title: &title})
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("employee cannot approve", func(t *testing.T) {
		f := newFixture(t)
		rec := f.createEvent(t, owner)
		approved := models.EventStatusApproved
		err := f.handler.Update(owner, rec.ID, eventapimodels.UpdateEventRequest{Status: &approved})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("status is settled once", func(t *testing.T) {
		f := newFixture(t)
		rec := f.createEvent(t, owner)
		approved := models.EventStatusApproved
		rejected := models.EventStatusRejected
		require.NoError(t, f.handler.Update(manager, rec.ID, eventapimodels.UpdateEventRequest{Status: &approved}))
		err := f.handler.Update(manager, rec.ID, eventapimodels.UpdateEventRequest{Status: &rejected})
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("delete notifies participants and clears rows", func(t *testing.T) {
		f := newFixture(t)
		rec := f.createEvent(t, owner, "u1")

		stranger := models.Actor{ID: "stranger", Role: models.UserRoleEmployee}
		require.ErrorIs(t, f.handler.Delete(stranger, rec.ID), ErrForbidden)
		require.NoError(t, f.handler.Delete(owner, rec.ID))

		var rows int64
		require.NoError(t, f.db.Model(&dbmodels.Participant{}).Where("event_id = ?", rec.ID).Count(&rows).Error)
		require.Zero(t, rows)
	})
}

func TestRsvp(t *testing.T) {
	owner := models.Actor{ID: "owner", Role: models.UserRoleEmployee}
	invitee := models.Actor{ID: "u1", Role: models.UserRoleEmployee}

	f := newFixture(t)
	rec := f.createEvent(t, owner, "u1")
	parts, err := f.handler.Participants(owner, rec.ID)
	require.NoError(t, err)
	require.Len(t, parts, 1)

	t.Run("only the invitee answers", func(t *testing.T) {
		err := f.handler.Rsvp(owner, parts[0].ID, models.ParticipantStatusAccepted)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("accept recorded", func(t *testing.T) {
		require.NoError(t, f.handler.Rsvp(invitee, parts[0].ID, models.ParticipantStatusAccepted))
		reloaded, err := f.handler.Participants(owner, rec.ID)
		require.NoError(t, err)
		require.Equal(t, models.ParticipantStatusAccepted, reloaded[0].Status)
	})

	t.Run("pending is not a valid answer", func(t *testing.T) {
		err := f.handler.Rsvp(invitee, parts[0].ID, models.ParticipantStatusPending)
		require.Error(t, err)
	})
}

// The busy lookup feeds the assignment eligibility gate.
func TestHasActiveEvent(t *testing.T) {
	f := newFixture(t)
	store := participantstore.NewInstance(f.db)
	now := time.Now()

	addEvent := func(status models.EventStatus, from, to time.Time, pStatus models.ParticipantStatus) {
		event := dbmodels.Event{Title: "e", StartTime: from, EndTime: to, CreatedByID: "owner", Status: status}
		require.NoError(t, f.db.Create(&event).Error)
		part := dbmodels.Participant{EventID: event.ID, UserID: "u1", Status: pStatus}
		require.NoError(t, f.db.Create(&part).Error)
	}

	t.Run("no participation", func(t *testing.T) {
		busy, err := store.HasActiveEvent("u1", now)
		require.NoError(t, err)
		require.False(t, busy)
	})

	t.Run("pending event does not block", func(t *testing.T) {
		addEvent(models.EventStatusPending, now.Add(-time.Hour), now.Add(time.Hour), models.ParticipantStatusAccepted)
		busy, err := store.HasActiveEvent("u1", now)
		require.NoError(t, err)
		require.False(t, busy)
	})

	t.Run("declined participation does not block", func(t *testing.T) {
		f := newFixture(t)
		s := participantstore.NewInstance(f.db)
		event := dbmodels.Event{Title: "e", StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour), CreatedByID: "o", Status: models.EventStatusApproved}
		require.NoError(t, f.db.Create(&event).Error)
		part := dbmodels.Participant{EventID: event.ID, UserID: "u1", Status: models.ParticipantStatusDeclined}
		require.NoError(t, f.db.Create(&part).Error)
		busy, err := s.HasActiveEvent("u1", now)
		require.NoError(t, err)
		require.False(t, busy)
	})

	t.Run("approved in-progress event blocks", func(t *testing.T) {
		f := newFixture(t)
		s := participantstore.NewInstance(f.db)
		event := dbmodels.Event{Title: "e", StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour), CreatedByID: "o", Status: models.EventStatusApproved}
		require.NoError(t, f.db.Create(&event).Error)
		part := dbmodels.Participant{EventID: event.ID, UserID: "u1", Status: models.ParticipantStatusAccepted}
		require.NoError(t, f.db.Create(&part).Error)
		busy, err := s.HasActiveEvent("u1", now)
		require.NoError(t, err)
		require.True(t, busy)
	})

	t.Run("past event does not block", func(t *testing.T) {
		f := newFixture(t)
		s := participantstore.NewInstance(f.db)
		event := dbmodels.Event{Title: "e", StartTime: now.Add(-3 * time.Hour), EndTime: now.Add(-2 * time.Hour), CreatedByID: "o", Status: models.EventStatusApproved}
		require.NoError(t, f.db.Create(&event).Error)
		part := dbmodels.Participant{EventID: event.ID, UserID: "u1", Status: models.ParticipantStatusAccepted}
		require.NoError(t, f.db.Create(&part).Error)
		busy, err := s.HasActiveEvent("u1", now)
		require.NoError(t, err)
		require.False(t, busy)
	})
}
