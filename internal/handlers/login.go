//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social-media/internal/models"
	"go.uber.org/zap"
)

// LoginValidator defines the interface that the login service must implement.
type LoginValidator interface {
	ValidateLogin(ctx context.Context, credentials models.Account) (*models.Account, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Account login
// @Description Checks the credentials and returns the matching account
// @Tags accounts
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.AccountResponse "Matching account"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc LoginValidator, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		account, err := svc.ValidateLogin(r.Context(), models.Account{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			requestLog(log, r).Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if account == nil {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		writeJSON(w, http.StatusOK, toAccountResponse(*account))
	}
}
