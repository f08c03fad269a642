package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-media/internal/models"
	"go.uber.org/zap"
)

// MessageReadRepository handles message read operations.
type MessageReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
	log      *zap.SugaredLogger
}

func NewMessageReadRepository(db *sqlx.DB, txGetter TxGetter, log *zap.SugaredLogger) *MessageReadRepository {
	return &MessageReadRepository{db: db, txGetter: txGetter, log: log}
}

// GetByID returns the message with the given id, or nil when there is none.
func (r *MessageReadRepository) GetByID(ctx context.Context, id int) (*models.Message, error) {
	const query = `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE message_id = $1
	`

	var message models.Message
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &message, query, id)
	logQuery(r.log, query, []any{id}, message, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// List returns all messages ordered by id.
func (r *MessageReadRepository) List(ctx context.Context) ([]models.Message, error) {
	const query = `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		ORDER BY message_id
	`
	return r.selectAll(ctx, query)
}

// ListByAccountID returns the messages posted by the account ordered by id.
func (r *MessageReadRepository) ListByAccountID(ctx context.Context, accountID int) ([]models.Message, error) {
	const query = `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE posted_by = $1
		ORDER BY message_id
	`
	return r.selectAll(ctx, query, accountID)
}

func (r *MessageReadRepository) selectAll(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	messages := []models.Message{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &messages, query, args...)
	logQuery(r.log, query, args, len(messages), err)

	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MessageWriteRepository handles message write operations.
type MessageWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
	log      *zap.SugaredLogger
}

func NewMessageWriteRepository(db *sqlx.DB, txGetter TxGetter, log *zap.SugaredLogger) *MessageWriteRepository {
	return &MessageWriteRepository{db: db, txGetter: txGetter, log: log}
}

// Insert stores a new message and returns it with the generated id.
func (r *MessageWriteRepository) Insert(ctx context.Context, message models.Message) (*models.Message, error) {
	const query = `
		INSERT INTO message (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id
	`
	args := []any{message.PostedBy, message.MessageText, message.TimePostedEpoch}

	var id int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)
	logQuery(r.log, query, args, id, err)

	if err != nil {
		return nil, err
	}

	message.MessageID = id
	return &message, nil
}

// Update overwrites every column of the message. It reports whether a row changed.
func (r *MessageWriteRepository) Update(ctx context.Context, message models.Message) (bool, error) {
	const query = `
		UPDATE message
		SET posted_by = $1, message_text = $2, time_posted_epoch = $3
		WHERE message_id = $4
	`
	args := []any{message.PostedBy, message.MessageText, message.TimePostedEpoch, message.MessageID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	rowsAffected := affected(res)
	logQuery(r.log, query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes the message. It reports whether a row was removed.
func (r *MessageWriteRepository) Delete(ctx context.Context, message models.Message) (bool, error) {
	const query = `DELETE FROM message WHERE message_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, message.MessageID)
	rowsAffected := affected(res)
	logQuery(r.log, query, []any{message.MessageID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
