package journal

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/scenescope/internal/bridge"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	require.NoError(t, Migrate(path))
	require.NoError(t, Migrate(path))
}

func TestAppendAndFramesRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(setupDB(t))
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sess, err := store.StartSession(ctx, "ws://localhost/bridge", start)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	msgs := []bridge.Message{
		{Type: bridge.KindLoad},
		{Type: bridge.KindObserve, UUIDs: []string{"renderer-1"}},
		{Type: bridge.KindOverviewUpdate, ResourceType: "scenes", Entities: []bridge.EntityRef{{UUID: "s1", Name: "Main"}}},
		{Type: bridge.KindError, Message: "boom"},
	}
	for i, m := range msgs {
		require.NoError(t, store.Append(ctx, sess.ID, i+1, time.Duration(i)*250*time.Millisecond, m))
	}

	frames, err := store.Frames(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, frames, 4)
	assert.Equal(t, 750*time.Millisecond, frames[3].Offset)
	assert.Equal(t, bridge.KindObserve, frames[1].Message.Type)
	assert.Equal(t, []string{"renderer-1"}, frames[1].Message.UUIDs)
	assert.Equal(t, "Main", frames[2].Message.Entities[0].Name)

	list, err := store.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Frames)
	assert.Equal(t, 1, list[0].Errors)
	assert.True(t, start.Equal(list[0].StartedAt))
}

func TestFramesUnknownSession(t *testing.T) {
	store := NewStore(setupDB(t))
	_, err := store.Frames(context.Background(), "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPruneKeepsNewest(t *testing.T) {
	ctx := context.Background()
	store := NewStore(setupDB(t))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 4; i++ {
		sess, err := store.StartSession(ctx, "t", base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		require.NoError(t, store.Append(ctx, sess.ID, 1, 0, bridge.Message{Type: bridge.KindLoad}))
		ids = append(ids, sess.ID)
	}

	removed, err := store.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	list, err := store.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[3], list[0].ID)
	assert.Equal(t, ids[2], list[1].ID)

	_, err = store.Frames(ctx, ids[0])
	require.ErrorIs(t, err, ErrSessionNotFound)

	removed, err = store.Prune(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRecorderAssignsSequence(t *testing.T) {
	ctx := context.Background()
	store := NewStore(setupDB(t))
	rec, err := NewRecorder(ctx, store, "t", nil)
	require.NoError(t, err)

	clock := rec.Session().StartedAt
	rec.now = func() time.Time { clock = clock.Add(100 * time.Millisecond); return clock }

	rec.Record(bridge.Message{Type: bridge.KindLoad})
	rec.Record(bridge.Message{Type: bridge.KindEntityUpdate, UUID: "e1"})

	frames, err := store.Frames(ctx, rec.Session().ID)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, 100*time.Millisecond, frames[0].Offset)
	assert.Equal(t, 200*time.Millisecond, frames[1].Offset)
	assert.Equal(t, "e1", frames[1].Message.UUID)
}
