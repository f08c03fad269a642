//go:generate mockgen -source=message.go -destination=mock_message.go -package=services
package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-media/internal/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader defines read-only operations for messages.
type MessageReader interface {
	GetByID(ctx context.Context, id int) (*models.Message, error)
	List(ctx context.Context) ([]models.Message, error)
	ListByAccountID(ctx context.Context, accountID int) ([]models.Message, error)
}

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Insert(ctx context.Context, message models.Message) (*models.Message, error)
	Update(ctx context.Context, message models.Message) (bool, error)
	Delete(ctx context.Context, message models.Message) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MessageService handles message posting, editing and deletion and publishes
// message events to Kafka.
type MessageService struct {
	reader      MessageReader
	writer      MessageWriter
	kafkaWriter KafkaWriter
	log         *zap.SugaredLogger
}

// NewMessageService creates a new MessageService. kafkaWriter may be nil.
func NewMessageService(reader MessageReader, writer MessageWriter, kafkaWriter KafkaWriter, log *zap.SugaredLogger) *MessageService {
	return &MessageService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		log:         log,
	}
}

// publishEvent publishes a message event to Kafka. Failures are logged only.
func (s *MessageService) publishEvent(ctx context.Context, eventType string, message models.Message) {
	if s.kafkaWriter == nil {
		s.log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "messageID", message.MessageID)
		return
	}

	event := models.MessageEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Message:   message,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.log.Errorw("Failed to marshal message event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(message.MessageID)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		s.log.Errorw("Failed to publish message event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		s.log.Infow("Message event published to Kafka", "event_id", event.EventID, "type", eventType)
	}
}

// GetMessageByID returns the message or ErrMessageNotFound.
func (s *MessageService) GetMessageByID(ctx context.Context, id int) (*models.Message, error) {
	s.log.Infow("fetching message", "messageID", id)
	message, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, internalError(s.log, "get message", err)
	}
	if message == nil {
		s.log.Infow("message not found", "messageID", id)
		return nil, ErrMessageNotFound
	}
	return message, nil
}

// GetAllMessages returns every message in storage order.
func (s *MessageService) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	messages, err := s.reader.List(ctx)
	if err != nil {
		return nil, internalError(s.log, "list messages", err)
	}
	s.log.Infow("fetched messages", "count", len(messages))
	return messages, nil
}

// GetMessagesByAccountID returns the messages posted by the account, possibly none.
func (s *MessageService) GetMessagesByAccountID(ctx context.Context, accountID int) ([]models.Message, error) {
	messages, err := s.reader.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, internalError(s.log, "list account messages", err)
	}
	s.log.Infow("fetched account messages", "accountID", accountID, "count", len(messages))
	return messages, nil
}

// CreateMessage stores a message posted by owner. owner is nil when PostedBy does not
// resolve to an account.
func (s *MessageService) CreateMessage(ctx context.Context, candidate models.Message, owner *models.Account) (*models.Message, error) {
	s.log.Infow("creating message", "postedBy", candidate.PostedBy)

	if owner == nil {
		s.log.Errorw("message author does not exist", "postedBy", candidate.PostedBy)
		return nil, ErrAccountRequired
	}
	if err := validateMessage(candidate); err != nil {
		s.log.Errorw("invalid message", "postedBy", candidate.PostedBy, "error", err)
		return nil, err
	}
	if err := checkAccountPermission(*owner, candidate.PostedBy); err != nil {
		s.log.Errorw("account not authorized", "accountID", owner.AccountID, "postedBy", candidate.PostedBy)
		return nil, err
	}

	created, err := s.writer.Insert(ctx, candidate)
	if err != nil {
		return nil, internalError(s.log, "insert message", err)
	}

	s.log.Infow("created message", "messageID", created.MessageID)
	s.publishEvent(ctx, models.MessageCreated, *created)
	return created, nil
}

// UpdateMessage replaces the text of a stored message. Author and timestamp are kept
// from the stored row; the returned message is the stored one with the new text.
func (s *MessageService) UpdateMessage(ctx context.Context, patch models.Message) (*models.Message, error) {
	s.log.Infow("updating message", "messageID", patch.MessageID)

	message, err := s.GetMessageByID(ctx, patch.MessageID)
	if err != nil {
		return nil, err
	}

	message.MessageText = patch.MessageText
	if err := validateMessage(*message); err != nil {
		s.log.Errorw("invalid message", "messageID", patch.MessageID, "error", err)
		return nil, err
	}

	updated, err := s.writer.Update(ctx, *message)
	if err != nil {
		return nil, internalError(s.log, "update message", err)
	}
	if !updated {
		s.log.Errorw("message removed before update", "messageID", patch.MessageID)
		return nil, ErrMessageNotFound
	}

	s.log.Infow("updated message", "messageID", message.MessageID)
	s.publishEvent(ctx, models.MessageUpdated, *message)
	return message, nil
}

// DeleteMessage removes the message, or returns ErrMessageNotFound when nothing was removed.
func (s *MessageService) DeleteMessage(ctx context.Context, message models.Message) error {
	s.log.Infow("deleting message", "messageID", message.MessageID)

	deleted, err := s.writer.Delete(ctx, message)
	if err != nil {
		return internalError(s.log, "delete message", err)
	}
	if !deleted {
		s.log.Infow("message to delete not found", "messageID", message.MessageID)
		return ErrMessageNotFound
	}

	s.log.Infow("deleted message", "messageID", message.MessageID)
	s.publishEvent(ctx, models.MessageDeleted, message)
	return nil
}
