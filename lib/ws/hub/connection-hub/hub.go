package connectionhub

import (
	"sync"

	"office-tools-backend/db"
	notificationstore "office-tools-backend/lib/notifications/store"
	wsmodels "office-tools-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	Broadcast(msg wsmodels.BroadcastMessage)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	go i.replayUnread(userID)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[msg.ToUserID]
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
		// a stalled or torn-down session must not block the sender
	}
}

// Broadcast fans a mutation event to every connected client.
func (i *impl) Broadcast(msg wsmodels.BroadcastMessage) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	for _, sess := range i.clients {
		select {
		case sess.sendCh <- msg:
		default:
			// a stalled client must not block the hub
		}
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// replayUnread pushes notifications persisted while the user was offline.
func (i *impl) replayUnread(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.ListUnread(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load unread notifications")
		return
	}
	for _, item := range list {
		if !i.IsConnected(userID) {
			return
		}
		i.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Event:    wsmodels.EventReceiveNotification,
			Time:     item.CreatedAt.Format("02.01.2006 15:04:05"),
			ID:       item.ID,
			Title:    item.Title,
			Msg:      item.Message,
			IsRead:   item.IsRead,
		})
	}
}
