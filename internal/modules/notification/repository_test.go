package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *Repository {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Notification{}))
	return NewRepository(db)
}

func seedNotifications(t *testing.T, repo *Repository, userID int64, count int) {
	base := time.Now().Add(-time.Duration(count) * time.Minute)
	for i := 0; i < count; i++ {
		n := &Notification{
			UserID:    userID,
			Type:      TypeSystem,
			Title:     fmt.Sprintf("notification %d", i),
			Message:   "body",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), n))
	}
}

func TestGetByUserID_NewestFirstAndCapped(t *testing.T) {
	repo := setupRepo(t)
	seedNotifications(t, repo, 1, InboxLimit+10)
	seedNotifications(t, repo, 2, 3)

	list, err := repo.GetByUserID(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, list, InboxLimit, "inbox never loads more than the cap")

	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt), "expected newest first")
	}

	for _, n := range list {
		assert.Equal(t, int64(1), n.UserID)
	}
}

func TestGetByUserID_LimitAboveCapIsClamped(t *testing.T) {
	repo := setupRepo(t)
	seedNotifications(t, repo, 1, InboxLimit+5)

	list, err := repo.GetByUserID(context.Background(), 1, InboxLimit*10)
	require.NoError(t, err)
	assert.Len(t, list, InboxLimit)
}

func TestMarkAsRead_ScopedToOwner(t *testing.T) {
	repo := setupRepo(t)
	seedNotifications(t, repo, 1, 1)

	var n Notification
	require.NoError(t, repo.DB().First(&n).Error)

	err := repo.MarkAsRead(context.Background(), n.ID, 99)
	assert.ErrorIs(t, err, ErrNotificationNotFound, "another user's id must not match")

	require.NoError(t, repo.MarkAsRead(context.Background(), n.ID, 1))

	unread, err := repo.CountUnread(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}

func TestMarkAsRead_MissingRow(t *testing.T) {
	repo := setupRepo(t)

	err := repo.MarkAsRead(context.Background(), 12345, 1)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllAsRead(t *testing.T) {
	repo := setupRepo(t)
	seedNotifications(t, repo, 1, 4)
	seedNotifications(t, repo, 2, 2)

	require.NoError(t, repo.MarkAllAsRead(context.Background(), 1))

	unread, err := repo.CountUnread(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	otherUnread, err := repo.CountUnread(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), otherUnread, "other inboxes stay untouched")
}

func TestDeleteByUser(t *testing.T) {
	repo := setupRepo(t)
	seedNotifications(t, repo, 1, 3)

	require.NoError(t, repo.DeleteByUser(context.Background(), 1))

	var count int64
	require.NoError(t, repo.DB().Model(&Notification{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestServiceInsert_EmptyLinkStoredAsNull(t *testing.T) {
	repo := setupRepo(t)
	svc := NewService(repo)

	require.NoError(t, svc.Insert(context.Background(), 1, "عنوان", "نص", TypeAlert, ""))
	require.NoError(t, svc.Insert(context.Background(), 1, "عنوان", "نص", TypePlaceApproval, "/my-places"))

	var withLink, withoutLink Notification
	require.NoError(t, repo.DB().Where("type = ?", TypePlaceApproval).First(&withLink).Error)
	require.NoError(t, repo.DB().Where("type = ?", TypeAlert).First(&withoutLink).Error)

	require.NotNil(t, withLink.Link)
	assert.Equal(t, "/my-places", *withLink.Link)
	assert.Nil(t, withoutLink.Link)
}
