package tasks

import (
	notificationapimodels "office-tools-backend/models/api/notification"
)

// Notifier is the side channel of the assignment workflow. Implementations
// must be best-effort: delivery failures stay inside the implementation and
// never reach the caller.
type Notifier interface {
	Notify(userIDs []string, title, message string, ref notificationapimodels.Ref)
	Broadcast(resource, action, id string)
}

// NopNotifier discards everything. Used until the realtime stack is up.
type NopNotifier struct{}

func (NopNotifier) Notify(userIDs []string, title, message string, ref notificationapimodels.Ref) {
}

func (NopNotifier) Broadcast(resource, action, id string) {}
