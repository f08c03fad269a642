//go:generate mockgen -source=message_update.go -destination=mock_message_update.go -package=handlers
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-social-media/internal/models"
	"github.com/sbilibin2017/gw-social-media/internal/services"
	"go.uber.org/zap"
)

// MessageUpdater defines the interface that the message service must implement.
type MessageUpdater interface {
	UpdateMessage(ctx context.Context, patch models.Message) (*models.Message, error)
}

// UpdateMessageRequest represents the JSON body for editing a message
// swagger:model UpdateMessageRequest
type UpdateMessageRequest struct {
	// New message text, 1 to 254 characters
	// required: true
	// default: edited
	MessageText string `json:"message_text"`
}

// NewUpdateMessageHandler returns an HTTP handler replacing the text of a message.
// @Summary Edit a message
// @Tags messages
// @Accept json
// @Produce json
// @Param message_id path int true "Message ID"
// @Param updateMessageRequest body handlers.UpdateMessageRequest true "New text"
// @Success 200 {object} handlers.MessageResponse "Updated message"
// @Failure 400 {object} handlers.ErrorResponse "Unknown message or invalid text"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages/{message_id} [patch]
func NewUpdateMessageHandler(svc MessageUpdater, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, ok := intURLParam(r, "message_id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid message id")
			return
		}

		var req UpdateMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		message, err := svc.UpdateMessage(r.Context(), models.Message{
			MessageID:   messageID,
			MessageText: req.MessageText,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound),
				errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				requestLog(log, r).Errorw("failed to update message", "messageID", messageID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponse(*message))
	}
}
