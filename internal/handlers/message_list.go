//go:generate mockgen -source=message_list.go -destination=mock_message_list.go -package=handlers
package handlers

import (
	"context"
	"net/http"

	"github.com/samber/lo"
	"github.com/sbilibin2017/gw-social-media/internal/models"
	"go.uber.org/zap"
)

// MessageLister defines the interface that the message service must implement.
type MessageLister interface {
	GetAllMessages(ctx context.Context) ([]models.Message, error)
}

// AccountMessageLister lists the messages of one account.
type AccountMessageLister interface {
	GetMessagesByAccountID(ctx context.Context, accountID int) ([]models.Message, error)
}

// NewListMessagesHandler returns an HTTP handler listing every message.
// @Summary List messages
// @Tags messages
// @Produce json
// @Success 200 {array} handlers.MessageResponse "All messages"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /messages [get]
func NewListMessagesHandler(svc MessageLister, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := svc.GetAllMessages(r.Context())
		if err != nil {
			requestLog(log, r).Errorw("failed to list messages", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponses(messages))
	}
}

// NewListAccountMessagesHandler returns an HTTP handler listing the messages of an account.
// @Summary List messages of an account
// @Tags messages
// @Produce json
// @Param account_id path int true "Account ID"
// @Success 200 {array} handlers.MessageResponse "Messages posted by the account"
// @Failure 400 {object} handlers.ErrorResponse "Invalid account id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts/{account_id}/messages [get]
func NewListAccountMessagesHandler(svc AccountMessageLister, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := intURLParam(r, "account_id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid account id")
			return
		}

		messages, err := svc.GetMessagesByAccountID(r.Context(), accountID)
		if err != nil {
			requestLog(log, r).Errorw("failed to list account messages", "accountID", accountID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponses(messages))
	}
}

// toMessageResponses never returns nil so an empty list encodes as [].
func toMessageResponses(messages []models.Message) []MessageResponse {
	return lo.Map(messages, func(m models.Message, _ int) MessageResponse {
		return toMessageResponse(m)
	})
}
