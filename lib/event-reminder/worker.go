package eventreminder

import (
	"context"
	"fmt"
	"time"

	"office-tools-backend/config"
	"office-tools-backend/db"
	participantstore "office-tools-backend/lib/events/participant-store"
	eventsstore "office-tools-backend/lib/events/store"
	baseworker "office-tools-backend/lib/utils/base-worker"
	"office-tools-backend/lib/utils/helpers"
	"office-tools-backend/models"
	notificationapimodels "office-tools-backend/models/api/notification"
	dbmodels "office-tools-backend/models/db"
)

const runPeriod = time.Minute

type Notifier interface {
	Notify(userIDs []string, title, message string, ref notificationapimodels.Ref)
}

type workerImpl struct {
	baseworker.BaseImpl
	eventStore       eventsstore.Provider
	participantStore participantstore.Provider
	notifier         Notifier
	leadIn           time.Duration
	notified         map[string]time.Time
}

// Start launches the reminder loop: accepted participants of approved
// events get a heads-up shortly before the event starts.
func Start(ctx context.Context, notifier Notifier) {
	w := workerImpl{
		BaseImpl:         *baseworker.NewInstance("event-reminder", 10*time.Second, runPeriod),
		eventStore:       eventsstore.NewInstance(db.DB),
		participantStore: participantstore.NewInstance(db.DB),
		notifier:         notifier,
		leadIn:           time.Duration(config.Conf.Reminder.LeadInMin) * time.Minute,
		notified:         map[string]time.Time{},
	}
	go w.Run(ctx, w.job)
}

func (w workerImpl) job(ctx context.Context) {
	logger := w.GetLogger()
	now := time.Now()
	list, err := w.eventStore.ListStartingBetween(now, now.Add(w.leadIn), models.EventStatusApproved)
	if err != nil {
		logger.WithError(err).Error("upcoming event lookup failed")
		return
	}
	for _, event := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		if _, done := w.notified[event.ID]; done {
			continue
		}
		w.remind(event)
		w.notified[event.ID] = event.StartTime
	}
	w.cleanup(now)
}

func (w workerImpl) remind(event dbmodels.Event) {
	participants, err := w.participantStore.ListByEvent(event.ID)
	if err != nil {
		w.GetLogger().WithError(err).WithField("event_id", event.ID).Error("participant lookup failed")
		return
	}
	userIDs := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.Status == models.ParticipantStatusAccepted {
			userIDs = append(userIDs, p.UserID)
		}
	}
	if len(userIDs) == 0 {
		return
	}
	w.notifier.Notify(userIDs, "Nhắc nhở sự kiện",
		fmt.Sprintf("Sự kiện \"%s\" bắt đầu lúc %s", event.Title, event.StartTime.Format("15:04 02.01.2006")),
		notificationapimodels.Ref{Type: "event", ID: event.ID})
}

// cleanup drops bookkeeping for events already started.
func (w workerImpl) cleanup(now time.Time) {
	for id, start := range w.notified {
		if start.Before(now) {
			delete(w.notified, id)
		}
	}
}
