package repositories

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/gw-social-media/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var messageColumns = []string{"message_id", "posted_by", "message_text", "time_posted_epoch"}

func TestMessageReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageReadRepository(db, nil, zap.NewNop().Sugar())
	query := regexp.QuoteMeta("FROM message WHERE message_id = $1")

	mock.ExpectQuery(query).WithArgs(5).
		WillReturnRows(sqlmock.NewRows(messageColumns).AddRow(5, 2, "old", 500))
	mock.ExpectQuery(query).WithArgs(6).
		WillReturnRows(sqlmock.NewRows(messageColumns))

	message, err := repo.GetByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, &models.Message{MessageID: 5, PostedBy: 2, MessageText: "old", TimePostedEpoch: 500}, message)

	message, err = repo.GetByID(context.Background(), 6)
	assert.NoError(t, err)
	assert.Nil(t, message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageReadRepository_Lists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageReadRepository(db, nil, zap.NewNop().Sugar())

	mock.ExpectQuery(regexp.QuoteMeta("FROM message ORDER BY message_id")).
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow(1, 1, "first", 100).
			AddRow(2, 2, "second", 200))
	mock.ExpectQuery(regexp.QuoteMeta("FROM message WHERE posted_by = $1")).WithArgs(3).
		WillReturnRows(sqlmock.NewRows(messageColumns))
	mock.ExpectQuery(regexp.QuoteMeta("FROM message ORDER BY message_id")).
		WillReturnError(errors.New("connection reset"))

	ctx := context.Background()

	messages, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []models.Message{
		{MessageID: 1, PostedBy: 1, MessageText: "first", TimePostedEpoch: 100},
		{MessageID: 2, PostedBy: 2, MessageText: "second", TimePostedEpoch: 200},
	}, messages)

	messages, err = repo.ListByAccountID(ctx, 3)
	assert.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)

	messages, err = repo.List(ctx)
	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, messages)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageWriteRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageWriteRepository(db, nil, zap.NewNop().Sugar())
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO message")).
		WithArgs(1, "hello", int64(1000)).
		WillReturnRows(sqlmock.NewRows([]string{"message_id"}).AddRow(9))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE message")).
		WithArgs(1, "edited", int64(1000), 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM message")).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.Insert(ctx, models.Message{PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1000})
	require.NoError(t, err)
	assert.Equal(t, &models.Message{MessageID: 9, PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1000}, created)

	created.MessageText = "edited"
	updated, err := repo.Update(ctx, *created)
	assert.NoError(t, err)
	assert.True(t, updated)

	deleted, err := repo.Delete(ctx, *created)
	assert.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositories_Postgres(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	log := zap.NewNop().Sugar()
	accounts := NewAccountWriteRepository(db, nil, log)
	reader := NewMessageReadRepository(db, nil, log)
	writer := NewMessageWriteRepository(db, nil, log)
	ctx := context.Background()

	ann, err := accounts.Insert(ctx, models.Account{Username: "ann", Password: "pass1"})
	require.NoError(t, err)
	bob, err := accounts.Insert(ctx, models.Account{Username: "bob", Password: "pass2"})
	require.NoError(t, err)

	first, err := writer.Insert(ctx, models.Message{PostedBy: ann.AccountID, MessageText: "hello", TimePostedEpoch: 1000})
	require.NoError(t, err)
	second, err := writer.Insert(ctx, models.Message{PostedBy: bob.AccountID, MessageText: "hi", TimePostedEpoch: 2000})
	require.NoError(t, err)
	assert.NotEqual(t, first.MessageID, second.MessageID)

	t.Run("ListByAccountID", func(t *testing.T) {
		messages, err := reader.ListByAccountID(ctx, ann.AccountID)
		assert.NoError(t, err)
		assert.Equal(t, []models.Message{*first}, messages)
	})

	t.Run("UnknownAuthorIsRejected", func(t *testing.T) {
		_, err := writer.Insert(ctx, models.Message{PostedBy: 9999, MessageText: "ghost", TimePostedEpoch: 1})
		assert.Error(t, err)
	})

	t.Run("Update", func(t *testing.T) {
		first.MessageText = "edited"
		updated, err := writer.Update(ctx, *first)
		assert.NoError(t, err)
		assert.True(t, updated)

		stored, err := reader.GetByID(ctx, first.MessageID)
		assert.NoError(t, err)
		assert.Equal(t, first, stored)
	})

	t.Run("PaddedTextOfMaximumLength", func(t *testing.T) {
		padded := strings.Repeat(" ", 50) + strings.Repeat("x", 254)

		first.MessageText = padded
		updated, err := writer.Update(ctx, *first)
		require.NoError(t, err)
		assert.True(t, updated)

		inserted, err := writer.Insert(ctx, models.Message{PostedBy: ann.AccountID, MessageText: padded, TimePostedEpoch: 3000})
		require.NoError(t, err)

		stored, err := reader.GetByID(ctx, inserted.MessageID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, padded, stored.MessageText)

		deleted, err := writer.Delete(ctx, *inserted)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("AccountDeleteCascades", func(t *testing.T) {
		deleted, err := accounts.Delete(ctx, *bob)
		require.NoError(t, err)
		require.True(t, deleted)

		stored, err := reader.GetByID(ctx, second.MessageID)
		assert.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := writer.Delete(ctx, *first)
		assert.NoError(t, err)
		assert.True(t, deleted)

		messages, err := reader.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, messages)
	})
}
