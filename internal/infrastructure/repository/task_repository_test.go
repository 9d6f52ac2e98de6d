package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"taskhub/internal/domain/task"
	"taskhub/internal/domain/user"
	"taskhub/internal/infrastructure/database"
)

func seedUser(t *testing.T, db *database.DB, username string) *user.User {
	t.Helper()
	u := &user.User{Username: username, Password: "hash"}
	require.NoError(t, NewUserRepository(db).Create(u))
	return u
}

func TestTaskRepositoryCreateAndGet(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	repo := NewTaskRepository(db)

	tk := &task.Task{Title: "T", Description: "D", UserID: alice.ID}
	require.NoError(t, repo.Create(tk))
	require.NotEmpty(t, tk.ID)
	require.Equal(t, task.StatusOpen, tk.Status)

	got, err := repo.GetByID(tk.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "T", got.Title)
	require.Equal(t, alice.ID, got.UserID)
}

func TestTaskRepositoryOwnerScoping(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob1")
	repo := NewTaskRepository(db)

	tk := &task.Task{Title: "T", Description: "D", UserID: alice.ID}
	require.NoError(t, repo.Create(tk))

	// Another owner's task is indistinguishable from a missing one.
	_, err := repo.GetByID(tk.ID, bob.ID)
	require.ErrorIs(t, err, task.ErrTaskNotFound)

	err = repo.Delete(tk.ID, bob.ID)
	require.ErrorIs(t, err, task.ErrTaskNotFound)

	stolen := *tk
	stolen.UserID = bob.ID
	err = repo.Update(&stolen)
	require.ErrorIs(t, err, task.ErrTaskNotFound)

	// Alice's view is unaffected.
	_, err = repo.GetByID(tk.ID, alice.ID)
	require.NoError(t, err)

	bobTasks, err := repo.ListByUser(bob.ID, task.Filter{})
	require.NoError(t, err)
	require.Empty(t, bobTasks)
}

func TestTaskRepositoryListFilters(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	repo := NewTaskRepository(db)

	seed := []task.Task{
		{Title: "Buy groceries", Description: "milk and eggs", Status: task.StatusOpen, UserID: alice.ID},
		{Title: "Write report", Description: "quarterly numbers", Status: task.StatusInProgress, UserID: alice.ID},
		{Title: "Ship release", Description: "tag and publish", Status: task.StatusDone, UserID: alice.ID},
	}
	for i := range seed {
		require.NoError(t, repo.Create(&seed[i]))
	}

	byStatus, err := repo.ListByUser(alice.ID, task.Filter{Status: task.StatusInProgress})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	require.Equal(t, "Write report", byStatus[0].Title)

	// Search is a case-insensitive substring match over title and description.
	bySearch, err := repo.ListByUser(alice.ID, task.Filter{Search: "REPORT"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)

	byDescription, err := repo.ListByUser(alice.ID, task.Filter{Search: "eggs"})
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	require.Equal(t, "Buy groceries", byDescription[0].Title)

	both, err := repo.ListByUser(alice.ID, task.Filter{Status: task.StatusOpen, Search: "milk"})
	require.NoError(t, err)
	require.Len(t, both, 1)

	none, err := repo.ListByUser(alice.ID, task.Filter{Search: "nothing-matches"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestTaskRepositoryUpdate(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	repo := NewTaskRepository(db)

	tk := &task.Task{Title: "T", Description: "D", UserID: alice.ID}
	require.NoError(t, repo.Create(tk))

	tk.Status = task.StatusDone
	tk.Title = "T2"
	require.NoError(t, repo.Update(tk))

	got, err := repo.GetByID(tk.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, task.StatusDone, got.Status)
	require.Equal(t, "T2", got.Title)
}

func TestTaskRepositoryDelete(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	repo := NewTaskRepository(db)

	tk := &task.Task{Title: "T", Description: "D", UserID: alice.ID}
	require.NoError(t, repo.Create(tk))

	require.NoError(t, repo.Delete(tk.ID, alice.ID))

	_, err := repo.GetByID(tk.ID, alice.ID)
	require.ErrorIs(t, err, task.ErrTaskNotFound)

	err = repo.Delete(tk.ID, alice.ID)
	require.ErrorIs(t, err, task.ErrTaskNotFound)
}
