package repositories

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-media/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is returned when an insert or update loses against another account
// holding the same username.
var ErrUsernameTaken = errors.New("username already taken")

// AccountReadRepository handles account read operations.
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
	log      *zap.SugaredLogger
}

func NewAccountReadRepository(db *sqlx.DB, txGetter TxGetter, log *zap.SugaredLogger) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter, log: log}
}

// GetByID returns the account with the given id, or nil when there is none.
func (r *AccountReadRepository) GetByID(ctx context.Context, id int) (*models.Account, error) {
	const query = `
		SELECT account_id, username, password
		FROM account
		WHERE account_id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByUsername returns the account with exactly this username, or nil when there is none.
func (r *AccountReadRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	const query = `
		SELECT account_id, username, password
		FROM account
		WHERE username = $1
	`
	return r.getOne(ctx, query, username)
}

// List returns all accounts ordered by id.
func (r *AccountReadRepository) List(ctx context.Context) ([]models.Account, error) {
	const query = `
		SELECT account_id, username, password
		FROM account
		ORDER BY account_id
	`

	accounts := []models.Account{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &accounts, query)
	logQuery(r.log, query, nil, len(accounts), err)

	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// ExistsByUsername reports whether an account with this username is stored.
func (r *AccountReadRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM account WHERE username = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, username)
	logQuery(r.log, query, []any{username}, exists, err)

	return exists, err
}

// GetByCredentials returns the account whose username matches and whose stored hash
// matches the password. A mismatch is not an error.
func (r *AccountReadRepository) GetByCredentials(ctx context.Context, username, password string) (*models.Account, error) {
	account, err := r.GetByUsername(ctx, username)
	if err != nil || account == nil {
		return nil, err
	}

	err = checkPassword(account.Password, password)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *AccountReadRepository) getOne(ctx context.Context, query string, arg any) (*models.Account, error) {
	var account models.Account
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, arg)
	logQuery(r.log, query, []any{arg}, account.AccountID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountWriteRepository handles account write operations.
// Passwords are stored as bcrypt hashes.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
	log      *zap.SugaredLogger
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter TxGetter, log *zap.SugaredLogger) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter, log: log}
}

// Insert stores a new account and returns it with the generated id.
func (r *AccountWriteRepository) Insert(ctx context.Context, account models.Account) (*models.Account, error) {
	const query = `
		INSERT INTO account (username, password)
		VALUES ($1, $2)
		RETURNING account_id
	`

	hash, err := hashPassword(account.Password)
	if err != nil {
		return nil, err
	}

	var id int
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, account.Username, hash)
	logQuery(r.log, query, []any{account.Username}, id, err)

	if isUsernameConflict(err) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}

	return &models.Account{
		AccountID: id,
		Username:  account.Username,
		Password:  hash,
	}, nil
}

// Update overwrites username and password of the account. It reports whether a row changed.
func (r *AccountWriteRepository) Update(ctx context.Context, account models.Account) (bool, error) {
	const query = `
		UPDATE account
		SET username = $1, password = $2
		WHERE account_id = $3
	`

	hash, err := hashPassword(account.Password)
	if err != nil {
		return false, err
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, account.Username, hash, account.AccountID)
	rowsAffected := affected(res)
	logQuery(r.log, query, []any{account.Username, account.AccountID}, rowsAffected, err)

	if isUsernameConflict(err) {
		return false, ErrUsernameTaken
	}
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes the account. Messages posted by it are removed by the foreign key cascade.
func (r *AccountWriteRepository) Delete(ctx context.Context, account models.Account) (bool, error) {
	const query = `DELETE FROM account WHERE account_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, account.AccountID)
	rowsAffected := affected(res)
	logQuery(r.log, query, []any{account.AccountID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func affected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}

// passwordDigest feeds bcrypt a fixed 44-byte input, so passwords of any length hash
// without hitting its 72-byte limit.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordDigest(password))
}
