package connectionhub

import (
	"testing"

	"github.com/stretchr/testify/require"

	wsmodels "office-tools-backend/models/ws"
)

func newTestHub() *impl {
	return &impl{clients: map[string]clientSession{}}
}

func addStubSession(h *impl, userID string, buffer int) clientSession {
	sess := clientSession{
		sendCh: make(chan any, buffer),
		stop:   func() {},
	}
	h.clients[userID] = sess
	return sess
}

func TestSendMessage(t *testing.T) {
	t.Run("delivers to the user's session", func(t *testing.T) {
		hub := newTestHub()
		sess := addStubSession(hub, "u1", 8)

		msg := wsmodels.ServerMessage{ToUserID: "u1", Event: wsmodels.EventReceiveNotification, Title: "Nhiệm vụ mới"}
		hub.SendMessage(msg)

		require.Len(t, sess.sendCh, 1)
		require.Equal(t, msg, <-sess.sendCh)
	})

	t.Run("unknown user is a no-op", func(t *testing.T) {
		hub := newTestHub()
		require.NotPanics(t, func() {
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "nobody"})
		})
	})

	t.Run("full session buffer does not block the sender", func(t *testing.T) {
		hub := newTestHub()
		sess := addStubSession(hub, "u1", 1)
		sess.sendCh <- wsmodels.ServerMessage{ToUserID: "u1", Title: "first"}

		// No reader drains the channel; without the drop path this would hang.
		hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u1", Title: "second"})

		require.Len(t, sess.sendCh, 1)
		first := (<-sess.sendCh).(wsmodels.ServerMessage)
		require.Equal(t, "first", first.Title)
	})

	t.Run("deleted client cannot receive", func(t *testing.T) {
		hub := newTestHub()
		addStubSession(hub, "u1", 8)
		hub.DeleteClient("u1")

		require.NotPanics(t, func() {
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u1", Title: "late"})
		})
		require.False(t, hub.IsConnected("u1"))
	})
}

func TestBroadcast(t *testing.T) {
	hub := newTestHub()
	a := addStubSession(hub, "a", 8)
	b := addStubSession(hub, "b", 8)
	stalled := addStubSession(hub, "stalled", 1)
	stalled.sendCh <- wsmodels.BroadcastMessage{Event: wsmodels.EventDataUpdated}

	hub.Broadcast(wsmodels.BroadcastMessage{
		Event:    wsmodels.EventDataUpdated,
		Resource: "tasks",
		Action:   "applied",
		ID:       "t1",
	})

	require.Len(t, a.sendCh, 1)
	require.Len(t, b.sendCh, 1)
	require.Len(t, stalled.sendCh, 1)
	got := (<-a.sendCh).(wsmodels.BroadcastMessage)
	require.Equal(t, "tasks", got.Resource)
}
