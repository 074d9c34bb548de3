package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mvbuuren/donatui/internal/database"
)

func openTestDB(t *testing.T) *DonationRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDonationRepo(db)
}

func TestInsertAndListDonations(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestDB(t)

	id, err := repo.Insert(ctx, "s1", "s1-Apple Health", `[{"name":"ihealth_step_counts"}]`)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = repo.Insert(ctx, "s1", "s1-tracking", `[{"message":"user entered flow"}]`)
	require.NoError(t, err)

	donations, err := repo.BySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, donations, 2)
	keys := []string{donations[0].Key, donations[1].Key}
	require.Contains(t, keys, "s1-Apple Health")
	require.Contains(t, keys, "s1-tracking")
	require.False(t, donations[0].CreatedAt.IsZero())
}

func TestBySessionScopesToSession(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestDB(t)

	_, err := repo.Insert(ctx, "s1", "s1-Apple Health", "[]")
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "s2", "s2-Apple Health", "[]")
	require.NoError(t, err)

	donations, err := repo.BySession(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, donations, 1)
	require.Equal(t, "s2", donations[0].SessionID)
}

func TestInsertEventsWritesWholeLog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestDB(t)

	events := []FlowEvent{
		{SessionID: "s1", Kind: "debug", Message: "extracting file"},
		{SessionID: "s1", Kind: "debug", Message: "extraction successful, go to consent form"},
	}
	require.NoError(t, repo.InsertEvents(ctx, events))
	require.NoError(t, repo.InsertEvents(ctx, nil))

	var n int
	row := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM flow_events WHERE session_id = ?`, "s1")
	require.NoError(t, row.Scan(&n))
	require.Equal(t, 2, n)
}
