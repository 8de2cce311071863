package projects

import (
	"testing"

	"github.com/stretchr/testify/require"

	"office-tools-backend/models"
	dbmodels "office-tools-backend/models/db"
)

func task(id string, weight *int, status models.TaskStatus, progresses ...int) dbmodels.Task {
	t := dbmodels.Task{Weight: weight, Status: status}
	t.ID = id
	for _, p := range progresses {
		t.Assignments = append(t.Assignments, dbmodels.TaskAssignment{Progress: p})
	}
	return t
}

func ptr(v int) *int { return &v }

func TestRollup(t *testing.T) {
	t.Run("empty project", func(t *testing.T) {
		require.Equal(t, 0, Rollup(nil))
	})

	t.Run("all completed", func(t *testing.T) {
		group := []dbmodels.Task{
			task("a", nil, models.TaskStatusCompleted),
			task("b", nil, models.TaskStatusCompleted),
		}
		require.Equal(t, 100, Rollup(group))
	})

	t.Run("weighted mix", func(t *testing.T) {
		// a carries 60% and is done, b carries the remaining 40% at
		// half progress: 60 + 20 = 80.
		group := []dbmodels.Task{
			task("a", ptr(60), models.TaskStatusCompleted),
			task("b", nil, models.TaskStatusInProgress, 50),
		}
		require.Equal(t, 80, Rollup(group))
	})

	t.Run("assignment average", func(t *testing.T) {
		group := []dbmodels.Task{
			task("a", nil, models.TaskStatusInProgress, 40, 60),
		}
		require.Equal(t, 50, Rollup(group))
	})

	t.Run("no assignments means no progress", func(t *testing.T) {
		group := []dbmodels.Task{
			task("a", nil, models.TaskStatusTodo),
		}
		require.Equal(t, 0, Rollup(group))
	})
}
