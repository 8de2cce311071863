package projectapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "office-tools-backend/models/db"
)

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Optionally creates an approved calendar event covering the project
	// timeframe.
	CreateEvent bool       `json:"createEvent"`
	EventStart  *time.Time `json:"eventStart"`
	EventEnd    *time.Time `json:"eventEnd"`
	RoomID      *string    `json:"roomId"`
}

func (r CreateProjectRequest) Validate() error {
	if r.Name == "" {
		return errors.New("Missing name")
	}
	return nil
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ProjectView carries the weighted progress rollup computed on read.
type ProjectView struct {
	dbmodels.Project
	Progress int `json:"progress"`
}
