package pgrepo

import (
	"context"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

const transactionColumns = `transaction_id, created_at, user_id, transaction_type, amount,
	payment_method, status, COALESCE(description, ''), reference_number,
	COALESCE(from_account, ''), COALESCE(to_account, '')`

// TransactionRepository легаси-леджер: по строке на пользователя на каждое
// движение средств.
type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO transactions (user_id, transaction_type, amount, payment_method, status,
			description, reference_number, from_account, to_account)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+transactionColumns,
		args.UserID, args.Type, args.Amount, args.PaymentMethod, args.Status,
		args.Description, args.ReferenceNumber, args.FromAccount, args.ToAccount)

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction for user %d", args.UserID)
	}
	return transaction, nil
}

func (r *TransactionRepository) GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "getting transactions of user %d", userID)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction of user %d", userID)
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, convertErr(rows.Err(), "getting transactions of user %d", userID)
}

func scanTransaction(row interface{ Scan(...any) error }) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.CreatedAt, &t.UserID, &t.Type, &t.Amount, &t.PaymentMethod,
		&t.Status, &t.Description, &t.ReferenceNumber, &t.FromAccount, &t.ToAccount)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}
