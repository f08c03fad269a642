//go:generate mockgen -source=account.go -destination=mock_account.go -package=services
package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-social-media/internal/models"
	"github.com/sbilibin2017/gw-social-media/internal/repositories"
	"go.uber.org/zap"
)

// AccountReader defines read-only operations for accounts.
// Lookups return a nil account, not an error, when nothing matches.
type AccountReader interface {
	GetByID(ctx context.Context, id int) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	GetByCredentials(ctx context.Context, username, password string) (*models.Account, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Insert(ctx context.Context, account models.Account) (*models.Account, error)
	Update(ctx context.Context, account models.Account) (bool, error)
	Delete(ctx context.Context, account models.Account) (bool, error)
}

// UsernameLocker reserves a username for the duration of an account creation.
type UsernameLocker interface {
	Acquire(ctx context.Context, username string) (bool, error)
	Release(ctx context.Context, username string) error
}

// AccountService handles registration, login and account maintenance.
type AccountService struct {
	reader AccountReader
	writer AccountWriter
	locker UsernameLocker
	log    *zap.SugaredLogger
}

// NewAccountService creates a new AccountService instance. locker may be nil.
func NewAccountService(reader AccountReader, writer AccountWriter, locker UsernameLocker, log *zap.SugaredLogger) *AccountService {
	return &AccountService{
		reader: reader,
		writer: writer,
		locker: locker,
		log:    log,
	}
}

// GetAccountByID returns the account or nil when it does not exist.
func (s *AccountService) GetAccountByID(ctx context.Context, id int) (*models.Account, error) {
	s.log.Infow("fetching account", "accountID", id)
	account, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, internalError(s.log, "get account", err)
	}
	s.log.Infow("fetched account", "accountID", id, "found", account != nil)
	return account, nil
}

// GetAllAccounts returns every account in storage order.
func (s *AccountService) GetAllAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.reader.List(ctx)
	if err != nil {
		return nil, internalError(s.log, "list accounts", err)
	}
	s.log.Infow("fetched accounts", "count", len(accounts))
	return accounts, nil
}

// FindAccountByUsername returns the account with exactly this username, or nil.
func (s *AccountService) FindAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	account, err := s.reader.GetByUsername(ctx, username)
	if err != nil {
		return nil, internalError(s.log, "find account by username", err)
	}
	s.log.Infow("found account by username", "username", username, "found", account != nil)
	return account, nil
}

// ValidateLogin returns the account matching the credentials, or nil when they do not match.
func (s *AccountService) ValidateLogin(ctx context.Context, credentials models.Account) (*models.Account, error) {
	account, err := s.reader.GetByCredentials(ctx, credentials.Username, credentials.Password)
	if err != nil {
		return nil, internalError(s.log, "validate login", err)
	}
	s.log.Infow("login validated", "username", credentials.Username, "valid", account != nil)
	return account, nil
}

// CreateAccount validates the candidate and stores it. The returned account carries
// the generated id.
func (s *AccountService) CreateAccount(ctx context.Context, candidate models.Account) (*models.Account, error) {
	s.log.Infow("creating account", "username", candidate.Username)

	if err := validateAccount(candidate); err != nil {
		s.log.Errorw("invalid account", "username", candidate.Username, "error", err)
		return nil, err
	}

	if s.locker != nil {
		acquired, err := s.locker.Acquire(ctx, candidate.Username)
		if err != nil {
			return nil, internalError(s.log, "reserve username", err)
		}
		if !acquired {
			s.log.Errorw("username is being registered concurrently", "username", candidate.Username)
			return nil, ErrUsernameExists
		}
		defer func() {
			if err := s.locker.Release(ctx, candidate.Username); err != nil {
				s.log.Warnw("failed to release username reservation", "username", candidate.Username, "error", err)
			}
		}()
	}

	exists, err := s.reader.ExistsByUsername(ctx, candidate.Username)
	if err != nil {
		return nil, internalError(s.log, "check username", err)
	}
	if exists {
		s.log.Errorw("username already exists", "username", candidate.Username)
		return nil, ErrUsernameExists
	}

	found, err := s.FindAccountByUsername(ctx, candidate.Username)
	if err != nil {
		return nil, err
	}
	if found != nil {
		s.log.Errorw("username already exists", "username", candidate.Username)
		return nil, ErrUsernameExists
	}

	created, err := s.writer.Insert(ctx, candidate)
	if errors.Is(err, repositories.ErrUsernameTaken) {
		s.log.Errorw("username taken on insert", "username", candidate.Username)
		return nil, ErrUsernameExists
	}
	if err != nil {
		return nil, internalError(s.log, "insert account", err)
	}

	s.log.Infow("created account", "accountID", created.AccountID, "username", created.Username)
	return created, nil
}

// UpdateAccount applies the same field rules as CreateAccount, then overwrites the
// stored account. It reports whether a row changed.
func (s *AccountService) UpdateAccount(ctx context.Context, account models.Account) (bool, error) {
	s.log.Infow("updating account", "accountID", account.AccountID)

	if err := validateAccount(account); err != nil {
		s.log.Errorw("invalid account", "accountID", account.AccountID, "error", err)
		return false, err
	}

	updated, err := s.writer.Update(ctx, account)
	if errors.Is(err, repositories.ErrUsernameTaken) {
		return false, ErrUsernameExists
	}
	if err != nil {
		return false, internalError(s.log, "update account", err)
	}

	s.log.Infow("updated account", "accountID", account.AccountID, "updated", updated)
	return updated, nil
}

// DeleteAccount removes the account and reports whether a row was removed.
func (s *AccountService) DeleteAccount(ctx context.Context, account models.Account) (bool, error) {
	s.log.Infow("deleting account", "accountID", account.AccountID)

	if account.AccountID <= 0 {
		return false, ErrInvalidAccountID
	}

	deleted, err := s.writer.Delete(ctx, account)
	if err != nil {
		return false, internalError(s.log, "delete account", err)
	}

	s.log.Infow("deleted account", "accountID", account.AccountID, "deleted", deleted)
	return deleted, nil
}

// AccountExists reports whether an account with the id is stored.
func (s *AccountService) AccountExists(ctx context.Context, id int) (bool, error) {
	account, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return false, internalError(s.log, "check account", err)
	}
	return account != nil, nil
}
