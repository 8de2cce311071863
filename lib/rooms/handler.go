package rooms

import (
	"office-tools-backend/db"
	"office-tools-backend/lib/rbac"
	roomsstore "office-tools-backend/lib/rooms/store"
	"office-tools-backend/models"
	dictapimodels "office-tools-backend/models/api/dict"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
)

var (
	ErrNotFound  = errors.New("Not found")
	ErrForbidden = errors.New("Forbidden")
)

type Provider interface {
	List() ([]dbmodels.Room, error)
	Create(actor models.Actor, data dictapimodels.RoomData) (*dbmodels.Room, error)
	Update(actor models.Actor, id string, data dictapimodels.RoomData) error
	Delete(actor models.Actor, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: roomsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store roomsstore.Provider
}

func (i impl) List() ([]dbmodels.Room, error) {
	return i.store.List()
}

// Rooms are maintained by moderators, unlike departments which stay
// admin only.
func canManage(actor models.Actor) bool {
	return actor.Role.CanModerate() || rbac.Can(actor, rbac.ActionDictManage, rbac.Resource{})
}

func (i impl) Create(actor models.Actor, data dictapimodels.RoomData) (*dbmodels.Room, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if !canManage(actor) {
		return nil, ErrForbidden
	}
	id, err := i.store.Create(dbmodels.Room{
		Name:     data.Name,
		Location: data.Location,
		Capacity: data.Capacity,
	})
	if err != nil {
		return nil, errors.Wrap(err, "room create failed")
	}
	return i.store.GetByID(id)
}

func (i impl) Update(actor models.Actor, id string, data dictapimodels.RoomData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if !canManage(actor) {
		return ErrForbidden
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "room lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.store.Update(id, map[string]interface{}{
		"name":     data.Name,
		"location": data.Location,
		"capacity": data.Capacity,
	})
}

func (i impl) Delete(actor models.Actor, id string) error {
	if !canManage(actor) {
		return ErrForbidden
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "room lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.store.Delete(id)
}
