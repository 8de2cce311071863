package dictapimodels

import "github.com/pkg/errors"

type DepartmentData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r DepartmentData) Validate() error {
	if r.Name == "" {
		return errors.New("Missing name")
	}
	return nil
}

type RoomData struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

func (r RoomData) Validate() error {
	if r.Name == "" {
		return errors.New("Missing name")
	}
	if r.Capacity < 0 {
		return errors.New("Invalid capacity")
	}
	return nil
}
