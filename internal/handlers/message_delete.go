//go:generate mockgen -source=message_delete.go -destination=mock_message_delete.go -package=handlers
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-social-media/internal/models"
	"github.com/sbilibin2017/gw-social-media/internal/services"
	"go.uber.org/zap"
)

// MessageDeleter defines the interface that the message service must implement.
type MessageDeleter interface {
	GetMessageByID(ctx context.Context, id int) (*models.Message, error)
	DeleteMessage(ctx context.Context, message models.Message) error
}

// NewDeleteMessageHandler returns an HTTP handler deleting a message.
// Deleting an unknown message answers 200 with an empty body.
// @Summary Delete a message
// @Tags messages
// @Produce json
// @Param message_id path int true "Message ID"
// @Success 200 {object} handlers.MessageResponse "Deleted message, or empty body when absent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid message id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages/{message_id} [delete]
func NewDeleteMessageHandler(svc MessageDeleter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, ok := intURLParam(r, "message_id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid message id")
			return
		}

		ctx := r.Context()

		message, err := svc.GetMessageByID(ctx, messageID)
		if err == nil {
			err = svc.DeleteMessage(ctx, *message)
		}
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusOK)
			default:
				requestLog(log, r).Errorw("failed to delete message", "messageID", messageID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponse(*message))
	}
}
