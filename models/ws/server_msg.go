package wsmodels

// ServerMessage is a per-user push event mirrored from a persisted
// notification.
type ServerMessage struct {
	ToUserID string `json:"-"`
	Event    string `json:"event"` // event name (receiveNotification)
	Time     string `json:"time"`  // event time
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Msg      string `json:"msg,omitempty"`
	IsRead   bool   `json:"is_read"`
}

// BroadcastMessage announces a data mutation to every connected client.
type BroadcastMessage struct {
	Event    string `json:"event"` // event name (dataUpdated)
	Resource string `json:"resource"`
	Action   string `json:"action"`
	ID       string `json:"id"`
}

const (
	EventReceiveNotification = "receiveNotification"
	EventDataUpdated         = "dataUpdated"
)
