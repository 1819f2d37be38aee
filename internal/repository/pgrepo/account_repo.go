package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

const accountColumns = `account_id, created_at, updated_at, user_id, bank_name, account_number, balance, is_primary`

type AccountRepository struct {
	db uow.DBTX
}

func NewAccountRepository(db uow.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO accounts (user_id, bank_name, account_number, balance, is_primary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+accountColumns,
		args.UserID, args.BankName, args.AccountNumber, args.Balance, args.IsPrimary)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "creating account for user %d", args.UserID)
	}
	return account, nil
}

func (r *AccountRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE user_id = $1
		ORDER BY is_primary DESC, account_id ASC`, userID)
	if err != nil {
		return nil, convertErr(err, "getting accounts of user %d", userID)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning account of user %d", userID)
		}
		accounts = append(accounts, *account)
	}
	return accounts, convertErr(rows.Err(), "getting accounts of user %d", userID)
}

// LockPrimary блокирует и возвращает основной счет пользователя: сначала
// помеченный is_primary, при его отсутствии - счет с наименьшим id.
// Если счетов нет, возвращает ErrRecordNotFound.
func (r *AccountRepository) LockPrimary(ctx context.Context, userID int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE user_id = $1
		ORDER BY is_primary DESC, account_id ASC
		LIMIT 1
		FOR UPDATE`, userID)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "locking primary account of user %d", userID)
	}
	return account, nil
}

// LockByID блокирует счет, принадлежащий userID. Чужой либо несуществующий
// счет дает ErrRecordNotFound - владение проверяется самим запросом.
func (r *AccountRepository) LockByID(ctx context.Context, accountID, userID int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE account_id = $1 AND user_id = $2
		FOR UPDATE`, accountID, userID)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "locking account %d of user %d", accountID, userID)
	}
	return account, nil
}

// ApplyDelta применяет дельту к балансу счета защищенным апдейтом.
// Возвращает false, если списание увело бы баланс в минус.
func (r *AccountRepository) ApplyDelta(ctx context.Context, accountID int64, delta decimal.Decimal) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts SET balance = balance + $1, updated_at = NOW()
		WHERE account_id = $2 AND balance + $1 >= 0`, delta, accountID)
	if err != nil {
		return false, convertErr(err, "applying delta for account %d", accountID)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete удаляет счет с нулевым балансом. Счет с остатком не удаляется.
func (r *AccountRepository) Delete(ctx context.Context, accountID, userID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM accounts
		WHERE account_id = $1 AND user_id = $2 AND balance = 0`, accountID, userID)
	if err != nil {
		return convertErr(err, "deleting account %d of user %d", accountID, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting account %d of user %d", accountID, userID)
	}
	return nil
}

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.UserID, &a.BankName,
		&a.AccountNumber, &a.Balance, &a.IsPrimary)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}
