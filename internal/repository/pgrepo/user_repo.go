package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

const userColumns = `user_id, created_at, updated_at, username, full_name, email, password_hash,
	COALESCE(wallet_balance, 0), COALESCE(account_balance, 0)`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (username, full_name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		args.Username, args.FullName, args.Email, args.PasswordHash)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user %s", args.Username)
	}
	return user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", userID)
	}
	return user, nil
}

// LockByID читает строку пользователя с пессимистической блокировкой.
// Вызывать только внутри транзакции, иначе блокировка бессмысленна.
func (r *UserRepository) LockByID(ctx context.Context, userID int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userID)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "locking user %d", userID)
	}
	return user, nil
}

func (r *UserRepository) GetBalances(ctx context.Context, userID int64) (*repoargs.UserBalances, error) {
	var balances repoargs.UserBalances
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(wallet_balance, 0), COALESCE(account_balance, 0)
		FROM users WHERE user_id = $1`, userID).
		Scan(&balances.WalletBalance, &balances.AccountBalance)
	if err != nil {
		return nil, convertErr(err, "getting balances of user %d", userID)
	}
	return &balances, nil
}

// ApplyWalletDelta применяет дельту к балансу кошелька защищенным апдейтом:
// отрицательная дельта не пройдет, если итог стал бы меньше нуля. Возвращает
// false, если условие не выполнилось и ни одна строка не была изменена.
func (r *UserRepository) ApplyWalletDelta(ctx context.Context, userID int64, delta decimal.Decimal) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET wallet_balance = COALESCE(wallet_balance, 0) + $1, updated_at = NOW()
		WHERE user_id = $2 AND COALESCE(wallet_balance, 0) + $1 >= 0`, delta, userID)
	if err != nil {
		return false, convertErr(err, "applying wallet delta for user %d", userID)
	}
	return tag.RowsAffected() > 0, nil
}

// ResyncAccountBalance выставляет кешированный account_balance в сумму балансов
// всех счетов пользователя.
func (r *UserRepository) ResyncAccountBalance(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET account_balance = (
			SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = $1
		), updated_at = NOW()
		WHERE user_id = $1`, userID)
	return convertErr(err, "resyncing account balance for user %d", userID)
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Username, &u.FullName, &u.Email,
		&u.PasswordHash, &u.WalletBalance, &u.AccountBalance)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &u, nil
}
