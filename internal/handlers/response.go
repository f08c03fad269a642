package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-social-media/internal/middlewares"
	"github.com/sbilibin2017/gw-social-media/internal/models"
	"go.uber.org/zap"
)

// AccountResponse represents an account returned by the API. The password is never exposed.
// swagger:model AccountResponse
type AccountResponse struct {
	// Account ID
	// default: 1
	AccountID int `json:"account_id"`

	// Username
	// default: john_doe
	Username string `json:"username"`
}

// MessageResponse represents a message returned by the API
// swagger:model MessageResponse
type MessageResponse struct {
	// Message ID
	// default: 1
	MessageID int `json:"message_id"`

	// ID of the posting account
	// default: 1
	PostedBy int `json:"posted_by"`

	// Message text
	// default: hello
	MessageText string `json:"message_text"`

	// Posting time, seconds since epoch
	// default: 1669947792
	TimePostedEpoch int64 `json:"time_posted_epoch"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func toAccountResponse(account models.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.AccountID,
		Username:  account.Username,
	}
}

func toMessageResponse(message models.Message) MessageResponse {
	return MessageResponse{
		MessageID:       message.MessageID,
		PostedBy:        message.PostedBy,
		MessageText:     message.MessageText,
		TimePostedEpoch: message.TimePostedEpoch,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// intURLParam parses a positive integer route parameter.
func intURLParam(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requestLog tags log lines with the request id set by the logging middleware.
func requestLog(log *zap.SugaredLogger, r *http.Request) *zap.SugaredLogger {
	return log.With("request_id", middlewares.RequestIDFromContext(r.Context()))
}
