package notifications

import (
	"sync/atomic"

	"office-tools-backend/db"
	notificationstore "office-tools-backend/lib/notifications/store"
	"office-tools-backend/lib/rbac"
	connectionhub "office-tools-backend/lib/ws/hub/connection-hub"
	"office-tools-backend/models"
	notificationapimodels "office-tools-backend/models/api/notification"
	dbmodels "office-tools-backend/models/db"
	wsmodels "office-tools-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotFound  = errors.New("Not found")
	ErrForbidden = errors.New("Forbidden")
)

// Dropped side-channel deliveries. Surfaced on /health so silent
// failures stay visible to operators.
var (
	droppedNotifies   atomic.Int64
	droppedBroadcasts atomic.Int64
)

func DroppedNotifies() int64   { return droppedNotifies.Load() }
func DroppedBroadcasts() int64 { return droppedBroadcasts.Load() }

type Provider interface {
	List(actor models.Actor) ([]dbmodels.Notification, error)
	Create(actor models.Actor, req notificationapimodels.CreateNotificationRequest) error
	MarkRead(actor models.Actor, id string) error

	Notify(userIDs []string, title, message string, ref notificationapimodels.Ref)
	Broadcast(resource, action, id string)
}

var Instance Provider

func NewHandler() {
	Instance = newInstance(notificationstore.NewInstance(db.DB), connectionhub.Instance)
}

func newInstance(store notificationstore.Provider, hub connectionhub.Provider) *impl {
	return &impl{
		store: store,
		hub:   hub,
	}
}

type impl struct {
	store notificationstore.Provider
	hub   connectionhub.Provider
}

func (i impl) List(actor models.Actor) ([]dbmodels.Notification, error) {
	list, err := i.store.ListByUser(actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "notification list failed")
	}
	return list, nil
}

func (i impl) Create(actor models.Actor, req notificationapimodels.CreateNotificationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !rbac.Can(actor, rbac.ActionNotificationCreate, rbac.Resource{}) {
		return ErrForbidden
	}
	i.Notify([]string{req.ToUserID}, req.Title, req.Message, notificationapimodels.Ref{})
	return nil
}

func (i impl) MarkRead(actor models.Actor, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "notification lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.UserID != actor.ID && !actor.Role.IsAdmin() {
		return ErrForbidden
	}
	return i.store.MarkRead(id)
}

// Notify persists one notification per user and mirrors each to the
// realtime hub. Best-effort on both legs, a failure is counted and
// logged but never returned.
func (i impl) Notify(userIDs []string, title, message string, ref notificationapimodels.Ref) {
	if len(userIDs) == 0 {
		return
	}
	recs := make([]dbmodels.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		recs = append(recs, dbmodels.Notification{
			UserID:  userID,
			Title:   title,
			Message: message,
			RefType: ref.Type,
			RefID:   ref.ID,
		})
	}
	saved, err := i.store.CreateBatch(recs)
	if err != nil {
		droppedNotifies.Add(int64(len(recs)))
		log.WithError(err).WithField("title", title).Warn("notification persist failed")
		return
	}
	if i.hub == nil {
		return
	}
	for _, rec := range saved {
		i.hub.SendMessage(wsmodels.ServerMessage{
			ToUserID: rec.UserID,
			Event:    wsmodels.EventReceiveNotification,
			Time:     rec.CreatedAt.Format("02.01.2006 15:04:05"),
			ID:       rec.ID,
			Title:    rec.Title,
			Msg:      rec.Message,
			IsRead:   rec.IsRead,
		})
	}
}

func (i impl) Broadcast(resource, action, id string) {
	if i.hub == nil {
		droppedBroadcasts.Add(1)
		return
	}
	i.hub.Broadcast(wsmodels.BroadcastMessage{
		Event:    wsmodels.EventDataUpdated,
		Resource: resource,
		Action:   action,
		ID:       id,
	})
}
