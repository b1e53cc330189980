package db

import (
	"testing"

	"github.com/steadyjournal/steady/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationListAndMarkRead(t *testing.T) {
	database := openTestDB(t)
	notifications := NewNotificationRepository(database)
	ann := createTestUser(t, database, "ann@example.com")
	bob := createTestUser(t, database, "bob@example.com")

	batch := []models.Notification{
		{ID: "n-1", UserID: ann.ID, Kind: models.NotificationKindReminder, Message: "first", CreatedAt: day("2025-03-09")},
		{ID: "n-2", UserID: ann.ID, Kind: models.NotificationKindCheckin, Message: "second", CreatedAt: day("2025-03-10")},
		{ID: "n-3", UserID: bob.ID, Kind: models.NotificationKindReminder, Message: "other", CreatedAt: day("2025-03-10")},
	}
	require.NoError(t, notifications.CreateBatch(batch))

	mine, err := notifications.ListByUser(ann.ID, false)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "n-2", mine[0].ID, "newest first")

	// Marking with the wrong owner changes nothing.
	updated, err := notifications.MarkRead("n-2", bob.ID)
	require.NoError(t, err)
	assert.False(t, updated)

	updated, err = notifications.MarkRead("n-2", ann.ID)
	require.NoError(t, err)
	assert.True(t, updated)

	unread, err := notifications.ListByUser(ann.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "n-1", unread[0].ID)
}

func TestNotificationCreateBatchEmptyIsNoop(t *testing.T) {
	database := openTestDB(t)
	notifications := NewNotificationRepository(database)

	require.NoError(t, notifications.CreateBatch(nil))

	none, err := notifications.ListByUser(1, false)
	require.NoError(t, err)
	assert.Empty(t, none)
}
