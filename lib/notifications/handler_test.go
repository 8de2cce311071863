package notifications

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	notificationstore "office-tools-backend/lib/notifications/store"
	"office-tools-backend/models"
	notificationapimodels "office-tools-backend/models/api/notification"
	dbmodels "office-tools-backend/models/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gormDB.AutoMigrate(&dbmodels.Notification{}))
	return gormDB
}

func TestNotify(t *testing.T) {
	gormDB := newTestDB(t)
	h := newInstance(notificationstore.NewInstance(gormDB), nil)

	h.Notify([]string{"u1", "u2"}, "Nhiệm vụ mới", "chi tiết", notificationapimodels.Ref{Type: "task", ID: "t1"})

	var rows []dbmodels.Notification
	require.NoError(t, gormDB.Order("user_id").Find(&rows).Error)
	require.Len(t, rows, 2)
	require.Equal(t, "u1", rows[0].UserID)
	require.Equal(t, "task", rows[0].RefType)
	require.Equal(t, "t1", rows[0].RefID)
	require.False(t, rows[0].IsRead)
}

func TestListAndMarkRead(t *testing.T) {
	gormDB := newTestDB(t)
	h := newInstance(notificationstore.NewInstance(gormDB), nil)
	h.Notify([]string{"u1"}, "a", "b", notificationapimodels.Ref{})

	owner := models.Actor{ID: "u1", Role: models.UserRoleEmployee}
	other := models.Actor{ID: "u2", Role: models.UserRoleEmployee}

	list, err := h.List(owner)
	require.NoError(t, err)
	require.Len(t, list, 1)

	t.Run("stranger cannot mark read", func(t *testing.T) {
		require.ErrorIs(t, h.MarkRead(other, list[0].ID), ErrForbidden)
	})

	t.Run("owner marks read", func(t *testing.T) {
		require.NoError(t, h.MarkRead(owner, list[0].ID))
		reloaded, err := h.List(owner)
		require.NoError(t, err)
		require.True(t, reloaded[0].IsRead)
	})

	t.Run("unknown id", func(t *testing.T) {
		require.ErrorIs(t, h.MarkRead(owner, "nope"), ErrNotFound)
	})
}

func TestCreate(t *testing.T) {
	gormDB := newTestDB(t)
	h := newInstance(notificationstore.NewInstance(gormDB), nil)

	manager := models.Actor{ID: "m", Role: models.UserRoleManager}
	worker := models.Actor{ID: "w", Role: models.UserRoleEmployee}
	req := notificationapimodels.CreateNotificationRequest{ToUserID: "u1", Title: "t", Message: "m"}

	require.ErrorIs(t, h.Create(worker, req), ErrForbidden)
	require.NoError(t, h.Create(manager, req))

	var rows int64
	require.NoError(t, gormDB.Model(&dbmodels.Notification{}).Where("user_id = ?", "u1").Count(&rows).Error)
	require.EqualValues(t, 1, rows)
}
