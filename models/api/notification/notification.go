package notificationapimodels

import "github.com/pkg/errors"

// Ref points a notification at the resource that produced it.
type Ref struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type CreateNotificationRequest struct {
	ToUserID string `json:"toUserId"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

func (r CreateNotificationRequest) Validate() error {
	if r.ToUserID == "" || r.Title == "" || r.Message == "" {
		return errors.New("Missing fields")
	}
	return nil
}
