package controllers

import (
	"office-tools-backend/lib/auth"
	"office-tools-backend/lib/backup"
	"office-tools-backend/lib/departments"
	"office-tools-backend/lib/events"
	"office-tools-backend/lib/notifications"
	"office-tools-backend/lib/projects"
	"office-tools-backend/lib/reports"
	roomshandler "office-tools-backend/lib/rooms"
	"office-tools-backend/lib/tasks"
	usershandler "office-tools-backend/lib/users"
	apimodels "office-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse failed")
		return errors.New("Invalid request body")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("Missing id")
	}
	return id, nil
}

// SendError maps a handler error to an HTTP status. Sentinel errors from
// the lib layer carry their own status, everything else is a 500 with the
// message passed through.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(statusOf(err)).JSON(apimodels.NewError(err.Error()))
}

func statusOf(err error) int {
	switch {
	case isNotFound(err):
		return fiber.StatusNotFound
	case isForbidden(err):
		return fiber.StatusForbidden
	case isConflict(err):
		return fiber.StatusConflict
	case isBadRequest(err):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func isNotFound(err error) bool {
	for _, target := range []error{
		tasks.ErrNotFound,
		tasks.ErrAssignmentNotFound,
		tasks.ErrNoRejected,
		usershandler.ErrNotFound,
		departments.ErrNotFound,
		roomshandler.ErrNotFound,
		events.ErrNotFound,
		notifications.ErrNotFound,
		projects.ErrNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isForbidden(err error) bool {
	for _, target := range []error{
		tasks.ErrForbidden,
		tasks.ErrCrossDepartment,
		usershandler.ErrForbidden,
		departments.ErrForbidden,
		roomshandler.ErrForbidden,
		events.ErrForbidden,
		notifications.ErrForbidden,
		projects.ErrForbidden,
		reports.ErrForbidden,
		backup.ErrForbidden,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isConflict(err error) bool {
	for _, target := range []error{
		tasks.ErrTaskFull,
		tasks.ErrAlreadyAssigned,
		tasks.ErrUserBusy,
		auth.ErrEmailTaken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isBadRequest(err error) bool {
	for _, target := range []error{
		tasks.ErrNotOpen,
		tasks.ErrAlreadyCompleted,
		tasks.ErrInvalidProgress,
		tasks.ErrWeightOverflow,
		events.ErrInvalidTransition,
		auth.ErrInvalidResetCode,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
