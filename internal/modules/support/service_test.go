package support

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/database"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/notification"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

type recordingSink struct {
	inserts []int64
	fail    bool
}

func (r *recordingSink) Insert(_ context.Context, userID int64, _, _ string, _ notification.Type, _ string) error {
	if r.fail {
		return errors.New("sink down")
	}
	r.inserts = append(r.inserts, userID)
	return nil
}

func setupSupport(t *testing.T) (*Service, *recordingSink) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Ticket{}))

	sink := &recordingSink{}
	return NewService(repository.NewTicketRepository(db), sink), sink
}

func TestOpen_GeneratesRef(t *testing.T) {
	svc, _ := setupSupport(t)

	ticket, err := svc.Open(context.Background(), 1, "مشكلة", "التفاصيل")
	require.NoError(t, err)

	assert.Equal(t, domain.TicketOpen, ticket.Status)
	assert.NotEmpty(t, ticket.Ref)

	other, err := svc.Open(context.Background(), 1, "أخرى", "تفاصيل")
	require.NoError(t, err)
	assert.NotEqual(t, ticket.Ref, other.Ref, "refs are unique per ticket")
}

func TestReply(t *testing.T) {
	svc, sink := setupSupport(t)

	ticket, err := svc.Open(context.Background(), 5, "مشكلة", "التفاصيل")
	require.NoError(t, err)

	t.Run("answers and notifies the opener", func(t *testing.T) {
		answered, err := svc.Reply(context.Background(), ticket.ID, 2, "تم الحل")
		require.NoError(t, err)

		assert.Equal(t, domain.TicketAnswered, answered.Status)
		require.NotNil(t, answered.Reply)
		assert.Equal(t, "تم الحل", *answered.Reply)
		require.NotNil(t, answered.RepliedBy)
		assert.Equal(t, int64(2), *answered.RepliedBy)
		assert.Equal(t, []int64{5}, sink.inserts)
	})

	t.Run("empty reply is rejected", func(t *testing.T) {
		_, err := svc.Reply(context.Background(), ticket.ID, 2, "   ")
		assert.ErrorIs(t, err, ErrEmptyReply)
	})

	t.Run("missing ticket", func(t *testing.T) {
		_, err := svc.Reply(context.Background(), 404, 2, "رد")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestReply_SinkFailureDoesNotFail(t *testing.T) {
	svc, sink := setupSupport(t)
	sink.fail = true

	ticket, err := svc.Open(context.Background(), 5, "مشكلة", "التفاصيل")
	require.NoError(t, err)

	answered, err := svc.Reply(context.Background(), ticket.ID, 2, "رد")
	require.NoError(t, err, "notification failure must not surface")
	assert.Equal(t, domain.TicketAnswered, answered.Status)
}

func TestClose(t *testing.T) {
	svc, _ := setupSupport(t)

	ticket, err := svc.Open(context.Background(), 5, "مشكلة", "التفاصيل")
	require.NoError(t, err)

	t.Run("stranger cannot close", func(t *testing.T) {
		_, err := svc.Close(context.Background(), ticket.ID, 99, false)
		assert.ErrorIs(t, err, ErrNotTicketUser)
	})

	t.Run("opener closes", func(t *testing.T) {
		closed, err := svc.Close(context.Background(), ticket.ID, 5, false)
		require.NoError(t, err)
		assert.Equal(t, domain.TicketClosed, closed.Status)
	})

	t.Run("reply after close is rejected", func(t *testing.T) {
		_, err := svc.Reply(context.Background(), ticket.ID, 2, "متأخر")
		assert.ErrorIs(t, err, ErrTicketClosed)
	})

	t.Run("staff closes any ticket", func(t *testing.T) {
		other, err := svc.Open(context.Background(), 6, "أخرى", "تفاصيل")
		require.NoError(t, err)

		closed, err := svc.Close(context.Background(), other.ID, 2, true)
		require.NoError(t, err)
		assert.Equal(t, domain.TicketClosed, closed.Status)
	})
}
