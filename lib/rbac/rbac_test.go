package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
	"office-tools-backend/models"
)

func TestRbac(t *testing.T) {
	admin := models.Actor{ID: "u-admin", Role: models.UserRoleAdmin}
	mgrSales := models.Actor{ID: "u-mgr", Role: models.UserRoleManager, DepartmentID: "dep-sales"}
	empSales := models.Actor{ID: "u-emp", Role: models.UserRoleEmployee, DepartmentID: "dep-sales"}

	salesTask := Resource{DepartmentID: "dep-sales", OwnerID: "u-creator"}
	hrTask := Resource{DepartmentID: "dep-hr", OwnerID: "u-creator"}

	t.Run(`task assign check`, func(t *testing.T) {
		require.True(t, Can(admin, ActionTaskAssign, hrTask))
		require.True(t, Can(mgrSales, ActionTaskAssign, salesTask))
		require.False(t, Can(mgrSales, ActionTaskAssign, hrTask))
		require.False(t, Can(empSales, ActionTaskAssign, salesTask))
	})

	t.Run(`task mutate check`, func(t *testing.T) {
		creator := models.Actor{ID: "u-creator", Role: models.UserRoleEmployee}
		require.True(t, Can(creator, ActionTaskUpdate, salesTask))
		require.True(t, Can(mgrSales, ActionTaskUpdate, salesTask))
		require.False(t, Can(mgrSales, ActionTaskDelete, hrTask))
		require.False(t, Can(empSales, ActionTaskDelete, salesTask))
		require.True(t, Can(admin, ActionTaskDelete, hrTask))
	})

	t.Run(`rejection review check`, func(t *testing.T) {
		require.True(t, Can(mgrSales, ActionTaskReview, salesTask))
		require.False(t, Can(mgrSales, ActionTaskReview, hrTask))
		require.False(t, Can(empSales, ActionTaskReview, salesTask))
	})

	t.Run(`unscoped resource check`, func(t *testing.T) {
		// tasks without a department are reviewable by any manager
		require.True(t, Can(mgrSales, ActionTaskReview, Resource{}))
	})

	t.Run(`event rules check`, func(t *testing.T) {
		owner := models.Actor{ID: "u-owner", Role: models.UserRoleEmployee}
		require.True(t, Can(mgrSales, ActionEventModerate, Resource{}))
		require.False(t, Can(empSales, ActionEventModerate, Resource{}))
		require.True(t, Can(owner, ActionEventDelete, Resource{OwnerID: "u-owner"}))
		require.False(t, Can(empSales, ActionEventDelete, Resource{OwnerID: "u-owner"}))
	})

	t.Run(`admin only actions check`, func(t *testing.T) {
		require.True(t, Can(admin, ActionBackupRun, Resource{}))
		require.False(t, Can(mgrSales, ActionBackupRun, Resource{}))
		require.True(t, Can(admin, ActionDictManage, Resource{}))
		require.False(t, Can(mgrSales, ActionDictManage, Resource{}))
	})

	t.Run(`unknown action denied`, func(t *testing.T) {
		require.False(t, Can(admin, Action("task.unknown"), Resource{}))
	})
}
