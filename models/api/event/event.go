package eventapimodels

import (
	"time"

	"github.com/pkg/errors"
	"office-tools-backend/models"
)

type CreateEventRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	RoomID         *string    `json:"roomId"`
	ParticipantIDs []string   `json:"participantIds"`
	Repeat         string     `json:"repeat"`
}

func (r CreateEventRequest) Validate() error {
	if r.Title == "" || r.StartTime == nil || r.EndTime == nil {
		return errors.New("Missing required fields")
	}
	if r.EndTime.Before(*r.StartTime) {
		return errors.New("end_time before start_time")
	}
	return nil
}

type UpdateEventRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	StartTime   *time.Time          `json:"start_time"`
	EndTime     *time.Time          `json:"end_time"`
	RoomID      *string             `json:"roomId"`
	Status      *models.EventStatus `json:"status"`
}

func (r UpdateEventRequest) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("Invalid status")
	}
	return nil
}

func (r UpdateEventRequest) TouchesDetails() bool {
	return r.Title != nil || r.Description != nil || r.StartTime != nil || r.EndTime != nil || r.RoomID != nil
}

type AddParticipantsRequest struct {
	EventID string   `json:"eventId"`
	UserIDs []string `json:"userIds"`
}

func (r AddParticipantsRequest) Validate() error {
	if r.EventID == "" || len(r.UserIDs) == 0 {
		return errors.New("Missing eventId or userIds")
	}
	return nil
}

type RsvpRequest struct {
	Status models.ParticipantStatus `json:"status"`
}
