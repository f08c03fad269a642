//go:generate mockgen -source=message_get.go -destination=mock_message_get.go -package=handlers
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-social-media/internal/models"
	"github.com/sbilibin2017/gw-social-media/internal/services"
	"go.uber.org/zap"
)

// MessageGetter defines the interface that the message service must implement.
type MessageGetter interface {
	GetMessageByID(ctx context.Context, id int) (*models.Message, error)
}

// NewGetMessageHandler returns an HTTP handler fetching one message.
// An unknown id answers 200 with an empty body.
// @Summary Get a message
// @Tags messages
// @Produce json
// @Param message_id path int true "Message ID"
// @Success 200 {object} handlers.MessageResponse "Message, or empty body when absent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid message id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages/{message_id} [get]
func NewGetMessageHandler(svc MessageGetter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, ok := intURLParam(r, "message_id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid message id")
			return
		}

		message, err := svc.GetMessageByID(r.Context(), messageID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusOK)
			default:
				requestLog(log, r).Errorw("failed to get message", "messageID", messageID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponse(*message))
	}
}
