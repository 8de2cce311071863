package tasks

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"office-tools-backend/models"
	notificationapimodels "office-tools-backend/models/api/notification"
	taskapimodels "office-tools-backend/models/api/task"
	dbmodels "office-tools-backend/models/db"
)

type notifyCall struct {
	UserIDs []string
	Title   string
	Message string
	Ref     notificationapimodels.Ref
}

type broadcastCall struct {
	Resource string
	Action   string
	ID       string
}

type fakeNotifier struct {
	notifies   []notifyCall
	broadcasts []broadcastCall
}

func (f *fakeNotifier) Notify(userIDs []string, title, message string, ref notificationapimodels.Ref) {
	f.notifies = append(f.notifies, notifyCall{UserIDs: userIDs, Title: title, Message: message, Ref: ref})
}

func (f *fakeNotifier) Broadcast(resource, action, id string) {
	f.broadcasts = append(f.broadcasts, broadcastCall{Resource: resource, Action: action, ID: id})
}

func (f *fakeNotifier) lastNotify(t *testing.T) notifyCall {
	t.Helper()
	require.NotEmpty(t, f.notifies)
	return f.notifies[len(f.notifies)-1]
}

type fixture struct {
	db       *gorm.DB
	handler  *impl
	notifier *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = gormDB.AutoMigrate(
		&dbmodels.Department{},
		&dbmodels.User{},
		&dbmodels.Project{},
		&dbmodels.Task{},
		&dbmodels.TaskAssignment{},
		&dbmodels.Event{},
		&dbmodels.Participant{},
	)
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	return &fixture{
		db:       gormDB,
		handler:  newInstance(gormDB, notifier),
		notifier: notifier,
	}
}

func (f *fixture) addUser(t *testing.T, name string, role models.UserRole, departmentID *string) dbmodels.User {
	t.Helper()
	rec := dbmodels.User{
		Name:         name,
		Email:        name + "@office.local",
		Password:     "x",
		Role:         role,
		DepartmentID: departmentID,
	}
	require.NoError(t, f.db.Create(&rec).Error)
	return rec
}

func (f *fixture) addDepartment(t *testing.T, name string) dbmodels.Department {
	t.Helper()
	rec := dbmodels.Department{Name: name}
	require.NoError(t, f.db.Create(&rec).Error)
	return rec
}

func (f *fixture) addTask(t *testing.T, rec dbmodels.Task) dbmodels.Task {
	t.Helper()
	if rec.Status == "" {
		rec.Status = models.TaskStatusTodo
	}
	if rec.Priority == "" {
		rec.Priority = models.TaskPriorityNormal
	}
	if rec.Type == "" {
		rec.Type = models.AssignmentTypeOpen
	}
	if rec.Capacity == 0 {
		rec.Capacity = 1
	}
	require.NoError(t, f.db.Create(&rec).Error)
	return rec
}

func (f *fixture) addAssignment(t *testing.T, taskID, userID string, status models.AssignmentStatus) dbmodels.TaskAssignment {
	t.Helper()
	rec := dbmodels.TaskAssignment{TaskID: taskID, UserID: userID, Status: status}
	require.NoError(t, f.db.Create(&rec).Error)
	return rec
}

func (f *fixture) assignment(t *testing.T, taskID, userID string) dbmodels.TaskAssignment {
	t.Helper()
	var rec dbmodels.TaskAssignment
	err := f.db.Where("task_id = ? AND user_id = ?", taskID, userID).First(&rec).Error
	require.NoError(t, err)
	return rec
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("open task self-apply lands accepted", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "sales")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "Báo cáo tuần", DepartmentID: &dept.ID, CreatedByID: manager.ID, Capacity: 2})

		rec, err := f.handler.Apply(ctx, worker.Actor(), task.ID)
		require.NoError(t, err)
		require.Equal(t, models.AssignmentStatusAccepted, rec.Status)

		var reloaded dbmodels.Task
		require.NoError(t, f.db.First(&reloaded, "id = ?", task.ID).Error)
		require.Equal(t, models.TaskStatusInProgress, reloaded.Status)

		note := f.notifier.lastNotify(t)
		require.Equal(t, []string{manager.ID}, note.UserIDs)
		require.Equal(t, "Nhận nhiệm vụ", note.Title)
		require.Contains(t, note.Message, "worker")
		require.Equal(t, "task", note.Ref.Type)
	})

	t.Run("second apply rejected as duplicate", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID, Capacity: 5})

		_, err := f.handler.Apply(ctx, worker.Actor(), task.ID)
		require.NoError(t, err)
		_, err = f.handler.Apply(ctx, worker.Actor(), task.ID)
		require.ErrorIs(t, err, ErrAlreadyAssigned)
	})

	t.Run("capacity exhausted", func(t *testing.T) {
		f := newFixture(t)
		a := f.addUser(t, "a", models.UserRoleEmployee, nil)
		b := f.addUser(t, "b", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: a.ID, Capacity: 1})

		_, err := f.handler.Apply(ctx, a.Actor(), task.ID)
		require.NoError(t, err)
		_, err = f.handler.Apply(ctx, b.Actor(), task.ID)
		require.ErrorIs(t, err, ErrTaskFull)
	})

	t.Run("direct task refuses self-apply", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID, Type: models.AssignmentTypeDirect})

		_, err := f.handler.Apply(ctx, worker.Actor(), task.ID)
		require.ErrorIs(t, err, ErrNotOpen)
	})

	t.Run("completed task refuses apply", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID, Status: models.TaskStatusCompleted})

		_, err := f.handler.Apply(ctx, worker.Actor(), task.ID)
		require.ErrorIs(t, err, ErrAlreadyCompleted)
	})

	t.Run("missing task", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		_, err := f.handler.Apply(ctx, worker.Actor(), "nope")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAssign(t *testing.T) {
	ctx := context.Background()

	t.Run("direct assignment waits for the user", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "Cài đặt máy", DepartmentID: &dept.ID, CreatedByID: manager.ID, Type: models.AssignmentTypeDirect})

		rec, err := f.handler.Assign(ctx, manager.Actor(), task.ID, worker.ID)
		require.NoError(t, err)
		require.Equal(t, models.AssignmentStatusAssigned, rec.Status)

		note := f.notifier.lastNotify(t)
		require.Equal(t, []string{worker.ID}, note.UserIDs)
		require.Equal(t, "Nhiệm vụ mới", note.Title)
	})

	t.Run("open assignment lands accepted", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &dept.ID, CreatedByID: manager.ID})

		rec, err := f.handler.Assign(ctx, manager.Actor(), task.ID, worker.ID)
		require.NoError(t, err)
		require.Equal(t, models.AssignmentStatusAccepted, rec.Status)
	})

	t.Run("direct assignment onto a full task rejected", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		first := f.addUser(t, "first", models.UserRoleEmployee, &dept.ID)
		second := f.addUser(t, "second", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &dept.ID, CreatedByID: manager.ID, Type: models.AssignmentTypeDirect, Capacity: 1})
		f.addAssignment(t, task.ID, first.ID, models.AssignmentStatusAccepted)

		_, err := f.handler.Assign(ctx, manager.Actor(), task.ID, second.ID)
		require.ErrorIs(t, err, ErrTaskFull)
	})

	t.Run("employee cannot assign", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID})

		_, err := f.handler.Assign(ctx, worker.Actor(), task.ID, worker.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("cross-department manager rejected", func(t *testing.T) {
		f := newFixture(t)
		sales := f.addDepartment(t, "sales")
		it := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &sales.ID)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &it.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &it.ID, CreatedByID: worker.ID})

		_, err := f.handler.Assign(ctx, manager.Actor(), task.ID, worker.ID)
		require.ErrorIs(t, err, ErrCrossDepartment)
	})

	t.Run("admin crosses departments", func(t *testing.T) {
		f := newFixture(t)
		it := f.addDepartment(t, "it")
		admin := f.addUser(t, "admin", models.UserRoleAdmin, nil)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &it.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &it.ID, CreatedByID: worker.ID})

		_, err := f.handler.Assign(ctx, admin.Actor(), task.ID, worker.ID)
		require.NoError(t, err)
	})

	t.Run("busy user rejected", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &dept.ID, CreatedByID: manager.ID})

		now := time.Now()
		start := now.Add(-time.Hour)
		end := now.Add(time.Hour)
		event := dbmodels.Event{
			Title:       "Họp quý",
			StartTime:   start,
			EndTime:     end,
			CreatedByID: manager.ID,
			Status:      models.EventStatusApproved,
		}
		require.NoError(t, f.db.Create(&event).Error)
		part := dbmodels.Participant{EventID: event.ID, UserID: worker.ID, Status: models.ParticipantStatusAccepted}
		require.NoError(t, f.db.Create(&part).Error)

		_, err := f.handler.Assign(ctx, manager.Actor(), task.ID, worker.ID)
		require.ErrorIs(t, err, ErrUserBusy)
	})

	t.Run("unknown target user", func(t *testing.T) {
		f := newFixture(t)
		admin := f.addUser(t, "admin", models.UserRoleAdmin, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: admin.ID})

		_, err := f.handler.Assign(ctx, admin.Actor(), task.ID, "nope")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAccept(t *testing.T) {
	ctx := context.Background()

	t.Run("assigned becomes accepted", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &dept.ID, CreatedByID: manager.ID, Type: models.AssignmentTypeDirect})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusAssigned)

		rec, err := f.handler.Accept(ctx, worker.Actor(), task.ID)
		require.NoError(t, err)
		require.Equal(t, models.AssignmentStatusAccepted, rec.Status)

		note := f.notifier.lastNotify(t)
		require.Equal(t, []string{manager.ID}, note.UserIDs)
	})

	t.Run("accept is a no-op when already accepted", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusAccepted)

		rec, err := f.handler.Accept(ctx, worker.Actor(), task.ID)
		require.NoError(t, err)
		require.Equal(t, models.AssignmentStatusAccepted, rec.Status)
		require.Empty(t, f.notifier.notifies)
	})

	t.Run("capacity re-checked at accept time", func(t *testing.T) {
		f := newFixture(t)
		a := f.addUser(t, "a", models.UserRoleEmployee, nil)
		b := f.addUser(t, "b", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: a.ID, Type: models.AssignmentTypeDirect, Capacity: 1})
		f.addAssignment(t, task.ID, a.ID, models.AssignmentStatusAssigned)
		f.addAssignment(t, task.ID, b.ID, models.AssignmentStatusAccepted)

		_, err := f.handler.Accept(ctx, a.Actor(), task.ID)
		require.ErrorIs(t, err, ErrTaskFull)
	})

	t.Run("no assignment row", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID})

		_, err := f.handler.Accept(ctx, worker.Actor(), task.ID)
		require.ErrorIs(t, err, ErrAssignmentNotFound)
	})
}

func TestReject(t *testing.T) {
	t.Run("stores truncated reason and notifies managers", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &dept.ID, CreatedByID: manager.ID})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusAccepted)

		longReason := strings.Repeat("q", 1200)
		rec, err := f.handler.Reject(worker.Actor(), task.ID, longReason)
		require.NoError(t, err)
		require.Equal(t, models.AssignmentStatusRejected, rec.Status)
		require.Len(t, rec.RejectReason, 1000)

		note := f.notifier.lastNotify(t)
		require.Equal(t, "Từ chối nhiệm vụ", note.Title)
		require.Contains(t, note.Message, "Lý do")
	})

	t.Run("completed row cannot be rejected", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusCompleted)

		_, err := f.handler.Reject(worker.Actor(), task.ID, "")
		require.ErrorIs(t, err, ErrAlreadyCompleted)
	})
}

func TestRejectionReview(t *testing.T) {
	setup := func(t *testing.T) (*fixture, dbmodels.User, dbmodels.User, dbmodels.User, dbmodels.Task) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		a := f.addUser(t, "a", models.UserRoleEmployee, &dept.ID)
		b := f.addUser(t, "b", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &dept.ID, CreatedByID: manager.ID, Type: models.AssignmentTypeDirect, Capacity: 3})
		return f, manager, a, b, task
	}

	t.Run("approve deletes rejected rows", func(t *testing.T) {
		f, manager, a, b, task := setup(t)
		f.addAssignment(t, task.ID, a.ID, models.AssignmentStatusRejected)
		f.addAssignment(t, task.ID, b.ID, models.AssignmentStatusRejected)

		res, err := f.handler.ApproveRejection(manager.Actor(), task.ID, "")
		require.NoError(t, err)
		require.Equal(t, 2, res.Count)

		var remaining int64
		require.NoError(t, f.db.Model(&dbmodels.TaskAssignment{}).Where("task_id = ?", task.ID).Count(&remaining).Error)
		require.Zero(t, remaining)

		note := f.notifier.lastNotify(t)
		require.ElementsMatch(t, []string{a.ID, b.ID}, note.UserIDs)
	})

	t.Run("approve scoped to one user", func(t *testing.T) {
		f, manager, a, b, task := setup(t)
		f.addAssignment(t, task.ID, a.ID, models.AssignmentStatusRejected)
		f.addAssignment(t, task.ID, b.ID, models.AssignmentStatusRejected)

		res, err := f.handler.ApproveRejection(manager.Actor(), task.ID, a.ID)
		require.NoError(t, err)
		require.Equal(t, 1, res.Count)

		rec := f.assignment(t, task.ID, b.ID)
		require.Equal(t, models.AssignmentStatusRejected, rec.Status)
	})

	t.Run("deny restores assigned on direct tasks", func(t *testing.T) {
		f, manager, a, _, task := setup(t)
		f.addAssignment(t, task.ID, a.ID, models.AssignmentStatusRejected)

		res, err := f.handler.DenyRejection(manager.Actor(), task.ID, "")
		require.NoError(t, err)
		require.Equal(t, 1, res.Count)

		rec := f.assignment(t, task.ID, a.ID)
		require.Equal(t, models.AssignmentStatusAssigned, rec.Status)
		require.Empty(t, rec.RejectReason)
	})

	t.Run("deny restores accepted on open tasks", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &dept.ID, CreatedByID: manager.ID})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusRejected)

		_, err := f.handler.DenyRejection(manager.Actor(), task.ID, "")
		require.NoError(t, err)

		rec := f.assignment(t, task.ID, worker.ID)
		require.Equal(t, models.AssignmentStatusAccepted, rec.Status)
	})

	t.Run("nothing rejected", func(t *testing.T) {
		f, manager, _, _, task := setup(t)
		_, err := f.handler.ApproveRejection(manager.Actor(), task.ID, "")
		require.ErrorIs(t, err, ErrNoRejected)
		_, err = f.handler.DenyRejection(manager.Actor(), task.ID, "")
		require.ErrorIs(t, err, ErrNoRejected)
	})

	t.Run("cross-department manager rejected", func(t *testing.T) {
		f, _, a, _, task := setup(t)
		other := f.addDepartment(t, "sales")
		outsider := f.addUser(t, "outsider", models.UserRoleManager, &other.ID)
		f.addAssignment(t, task.ID, a.ID, models.AssignmentStatusRejected)

		_, err := f.handler.ApproveRejection(outsider.Actor(), task.ID, "")
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestUpdateProgress(t *testing.T) {
	fp := func(v float64) *float64 { return &v }

	t.Run("progress saved", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusAccepted)

		rec, err := f.handler.UpdateProgress(worker.Actor(), task.ID, fp(40))
		require.NoError(t, err)
		require.Equal(t, 40, rec.Progress)
		require.Equal(t, models.AssignmentStatusAccepted, rec.Status)
	})

	t.Run("reaching 100 completes and notifies", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
		worker := f.addUser(t, "worker", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &dept.ID, CreatedByID: manager.ID})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusAccepted)

		rec, err := f.handler.UpdateProgress(worker.Actor(), task.ID, fp(100))
		require.NoError(t, err)
		require.Equal(t, models.AssignmentStatusCompleted, rec.Status)

		note := f.notifier.lastNotify(t)
		require.Equal(t, "Hoàn thành nhiệm vụ", note.Title)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusAccepted)

		for _, v := range []*float64{nil, fp(-1), fp(150), fp(99.5)} {
			_, err := f.handler.UpdateProgress(worker.Actor(), task.ID, v)
			require.ErrorIs(t, err, ErrInvalidProgress)
		}
	})

	t.Run("completed row is terminal", func(t *testing.T) {
		f := newFixture(t)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: worker.ID})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusCompleted)

		_, err := f.handler.UpdateProgress(worker.Actor(), task.ID, fp(50))
		require.ErrorIs(t, err, ErrAlreadyCompleted)
	})
}

func TestTaskCRUD(t *testing.T) {
	t.Run("create applies defaults and weight check", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)

		view, err := f.handler.Create(manager.Actor(), taskapimodels.CreateTaskRequest{Title: "Nhiệm vụ A"})
		require.NoError(t, err)
		require.Equal(t, models.TaskStatusTodo, view.Status)
		require.Equal(t, models.AssignmentTypeOpen, view.Type)
		require.Equal(t, 1, view.Capacity)
		require.Equal(t, dept.ID, *view.DepartmentID)
		require.Equal(t, 100, view.EffectiveWeight)
	})

	t.Run("create rejects weight overflow", func(t *testing.T) {
		f := newFixture(t)
		manager := f.addUser(t, "m", models.UserRoleManager, nil)
		w := 60
		_, err := f.handler.Create(manager.Actor(), taskapimodels.CreateTaskRequest{Title: "a", Weight: &w})
		require.NoError(t, err)
		_, err = f.handler.Create(manager.Actor(), taskapimodels.CreateTaskRequest{Title: "b", Weight: &w})
		require.ErrorIs(t, err, ErrWeightOverflow)
	})

	t.Run("update guarded by policy", func(t *testing.T) {
		f := newFixture(t)
		dept := f.addDepartment(t, "it")
		owner := f.addUser(t, "owner", models.UserRoleEmployee, &dept.ID)
		stranger := f.addUser(t, "stranger", models.UserRoleEmployee, &dept.ID)
		task := f.addTask(t, dbmodels.Task{Title: "t", DepartmentID: &dept.ID, CreatedByID: owner.ID})

		title := "renamed"
		err := f.handler.Update(stranger.Actor(), task.ID, taskapimodels.UpdateTaskRequest{Title: &title})
		require.ErrorIs(t, err, ErrForbidden)
		require.NoError(t, f.handler.Update(owner.Actor(), task.ID, taskapimodels.UpdateTaskRequest{Title: &title}))

		var reloaded dbmodels.Task
		require.NoError(t, f.db.First(&reloaded, "id = ?", task.ID).Error)
		require.Equal(t, "renamed", reloaded.Title)
	})

	t.Run("delete removes assignments", func(t *testing.T) {
		f := newFixture(t)
		admin := f.addUser(t, "admin", models.UserRoleAdmin, nil)
		worker := f.addUser(t, "w", models.UserRoleEmployee, nil)
		task := f.addTask(t, dbmodels.Task{Title: "t", CreatedByID: admin.ID})
		f.addAssignment(t, task.ID, worker.ID, models.AssignmentStatusAccepted)

		require.NoError(t, f.handler.Delete(admin.Actor(), task.ID))
		var rows int64
		require.NoError(t, f.db.Model(&dbmodels.TaskAssignment{}).Where("task_id = ?", task.ID).Count(&rows).Error)
		require.Zero(t, rows)
	})

	t.Run("list attaches effective weights", func(t *testing.T) {
		f := newFixture(t)
		admin := f.addUser(t, "admin", models.UserRoleAdmin, nil)
		project := dbmodels.Project{Name: "p"}
		require.NoError(t, f.db.Create(&project).Error)
		w1, w2 := 30, 20
		f.addTask(t, dbmodels.Task{Title: "a", CreatedByID: admin.ID, ProjectID: &project.ID, Weight: &w1})
		f.addTask(t, dbmodels.Task{Title: "b", CreatedByID: admin.ID, ProjectID: &project.ID, Weight: &w2})
		f.addTask(t, dbmodels.Task{Title: "c", CreatedByID: admin.ID, ProjectID: &project.ID})
		f.addTask(t, dbmodels.Task{Title: "d", CreatedByID: admin.ID, ProjectID: &project.ID})

		views, err := f.handler.List(admin.Actor(), taskapimodels.ListFilter{ProjectID: project.ID})
		require.NoError(t, err)
		require.Len(t, views, 4)
		byTitle := map[string]int{}
		for _, v := range views {
			byTitle[v.Title] = v.EffectiveWeight
		}
		require.Equal(t, map[string]int{"a": 30, "b": 20, "c": 25, "d": 25}, byTitle)
	})

	t.Run("employee list is department scoped", func(t *testing.T) {
		f := newFixture(t)
		it := f.addDepartment(t, "it")
		sales := f.addDepartment(t, "sales")
		worker := f.addUser(t, "w", models.UserRoleEmployee, &it.ID)
		f.addTask(t, dbmodels.Task{Title: "mine", DepartmentID: &it.ID, CreatedByID: worker.ID})
		f.addTask(t, dbmodels.Task{Title: "other", DepartmentID: &sales.ID, CreatedByID: worker.ID})

		views, err := f.handler.List(worker.Actor(), taskapimodels.ListFilter{})
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Equal(t, "mine", views[0].Title)
	})
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	dept := f.addDepartment(t, "it")
	manager := f.addUser(t, "manager", models.UserRoleManager, &dept.ID)
	worker := f.addUser(t, "worker", models.UserRoleEmployee, &dept.ID)
	done := f.addTask(t, dbmodels.Task{Title: "done", DepartmentID: &dept.ID, CreatedByID: manager.ID, Status: models.TaskStatusCompleted})
	f.addTask(t, dbmodels.Task{Title: "todo", DepartmentID: &dept.ID, CreatedByID: manager.ID})
	f.addAssignment(t, done.ID, worker.ID, models.AssignmentStatusCompleted)

	t.Run("department scope", func(t *testing.T) {
		summary, err := f.handler.Stats(manager.Actor(), "")
		require.NoError(t, err)
		require.EqualValues(t, 1, summary.Todo)
		require.EqualValues(t, 1, summary.Completed)
	})

	t.Run("me scope follows assignments", func(t *testing.T) {
		summary, err := f.handler.Stats(worker.Actor(), "me")
		require.NoError(t, err)
		require.EqualValues(t, 0, summary.Todo)
		require.EqualValues(t, 1, summary.Completed)
	})

	t.Run("empty me scope", func(t *testing.T) {
		idle := f.addUser(t, "idle", models.UserRoleEmployee, &dept.ID)
		summary, err := f.handler.Stats(idle.Actor(), "me")
		require.NoError(t, err)
		require.EqualValues(t, 0, summary.Todo+summary.InProgress+summary.Completed)
	})
}
