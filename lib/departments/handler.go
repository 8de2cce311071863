package departments

import (
	"office-tools-backend/db"
	departmentsstore "office-tools-backend/lib/departments/store"
	"office-tools-backend/lib/rbac"
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
	List() ([]dbmodels.Department, error)
	Create(actor models.Actor, data dictapimodels.DepartmentData) (*dbmodels.Department, error)
	Update(actor models.Actor, id string, data dictapimodels.DepartmentData) error
	Delete(actor models.Actor, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: departmentsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store departmentsstore.Provider
}

func (i impl) List() ([]dbmodels.Department, error) {
	return i.store.List()
}

func (i impl) Create(actor models.Actor, data dictapimodels.DepartmentData) (*dbmodels.Department, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if !rbac.Can(actor, rbac.ActionDictManage, rbac.Resource{}) {
		return nil, ErrForbidden
	}
	id, err := i.store.Create(dbmodels.Department{
		Name:        data.Name,
		Description: data.Description,
	})
	if err != nil {
		return nil, errors.Wrap(err, "department create failed")
	}
	return i.store.GetByID(id)
}

func (i impl) Update(actor models.Actor, id string, data dictapimodels.DepartmentData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if !rbac.Can(actor, rbac.ActionDictManage, rbac.Resource{}) {
		return ErrForbidden
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "department lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.store.Update(id, map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
	})
}

func (i impl) Delete(actor models.Actor, id string) error {
	if !rbac.Can(actor, rbac.ActionDictManage, rbac.Resource{}) {
		return ErrForbidden
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "department lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.store.Delete(id)
}
