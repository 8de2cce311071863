package users

import (
	"office-tools-backend/db"
	"office-tools-backend/lib/rbac"
	usersstore "office-tools-backend/lib/users/store"
	authutils "office-tools-backend/lib/utils/auth-utils"
	"office-tools-backend/models"
	userapimodels "office-tools-backend/models/api/user"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
)

var (
	ErrNotFound  = errors.New("Not found")
	ErrForbidden = errors.New("Forbidden")
)

type Provider interface {
	List(actor models.Actor) ([]dbmodels.User, error)
	Get(actor models.Actor, id string) (*dbmodels.User, error)
	Update(actor models.Actor, id string, req userapimodels.UpdateUserRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

// List is department scoped for managers and employees, admins see everyone.
func (i impl) List(actor models.Actor) ([]dbmodels.User, error) {
	if actor.Role.IsAdmin() {
		return i.store.List()
	}
	if actor.DepartmentID == "" {
		return []dbmodels.User{}, nil
	}
	return i.store.ListByDepartment(actor.DepartmentID)
}

func (i impl) Get(actor models.Actor, id string) (*dbmodels.User, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "user lookup failed")
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (i impl) Update(actor models.Actor, id string, req userapimodels.UpdateUserRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "user lookup failed")
	}
	if rec == nil {
		return ErrNotFound
	}
	if !rbac.Can(actor, rbac.ActionUserManage, rbac.Resource{OwnerID: rec.ID}) {
		return ErrForbidden
	}

	updMap := map[string]interface{}{}
	if req.Name != nil {
		updMap["name"] = *req.Name
	}
	// moving between departments is an admin call
	if req.DepartmentID != nil || req.ClearDept {
		if !actor.Role.IsAdmin() {
			return ErrForbidden
		}
		if req.ClearDept {
			updMap["department_id"] = nil
		} else {
			updMap["department_id"] = *req.DepartmentID
		}
	}
	if req.Password != nil {
		hash, err := authutils.HashPassword(*req.Password)
		if err != nil {
			return errors.Wrap(err, "password hash failed")
		}
		updMap["password"] = hash
	}
	return i.store.Update(id, updMap)
}
