//go:generate mockgen -source=message_create.go -destination=mock_message_create.go -package=handlers
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

// AccountGetter resolves the posting account.
type AccountGetter interface {
	GetAccountByID(ctx context.Context, id int) (*models.Account, error)
}

// MessageCreator defines the interface that the message service must implement.
type MessageCreator interface {
	CreateMessage(ctx context.Context, candidate models.Message, owner *models.Account) (*models.Message, error)
}

// CreateMessageRequest represents the JSON body for posting a message
// swagger:model CreateMessageRequest
type CreateMessageRequest struct {
	// ID of the posting account
	// required: true
	// default: 1
	PostedBy int `json:"posted_by"`

	// Message text, 1 to 254 characters
	// required: true
	// default: hello
	MessageText string `json:"message_text"`

	// Posting time, seconds since epoch
	// default: 1669947792
	TimePostedEpoch int64 `json:"time_posted_epoch"`
}

// NewCreateMessageHandler returns an HTTP handler for posting a message.
// @Summary Post a message
// @Description Stores a message for an existing account
// @Tags messages
// @Accept json
// @Produce json
// @Param createMessageRequest body handlers.CreateMessageRequest true "Message"
// @Success 200 {object} handlers.MessageResponse "Stored message"
// @Failure 400 {object} handlers.ErrorResponse "Invalid message or unknown account"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages [post]
func NewCreateMessageHandler(accounts AccountGetter, svc MessageCreator, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMessageRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx := r.Context()

		owner, err := accounts.GetAccountByID(ctx, req.PostedBy)
		if err != nil {
			requestLog(log, r).Errorw("failed to resolve message author", "postedBy", req.PostedBy, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		message, err := svc.CreateMessage(ctx, models.Message{
			PostedBy:        req.PostedBy,
			MessageText:     req.MessageText,
			TimePostedEpoch: req.TimePostedEpoch,
		}, owner)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation),
				errors.Is(err, services.ErrUnauthorized):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				requestLog(log, r).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponse(*message))
	}
}
