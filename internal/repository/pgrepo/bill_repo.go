package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

const billColumns = `bill_id, created_at, updated_at, user_id, provider_name, bill_type,
	amount, due_date, status, transaction_id`

type BillRepository struct {
	db uow.DBTX
}

func NewBillRepository(db uow.DBTX) *BillRepository {
	return &BillRepository{db: db}
}

func (r *BillRepository) Create(ctx context.Context, args repoargs.CreateBill) (*domain.Bill, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO bills (user_id, provider_name, bill_type, amount, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+billColumns,
		args.UserID, args.ProviderName, args.BillType, args.Amount, args.DueDate, domain.BillStatusPending)

	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "creating bill for user %d", args.UserID)
	}
	return bill, nil
}

func (r *BillRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Bill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+billColumns+` FROM bills
		WHERE user_id = $1
		ORDER BY due_date ASC, bill_id ASC`, userID)
	if err != nil {
		return nil, convertErr(err, "getting bills of user %d", userID)
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		bill, scanErr := scanBill(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning bill of user %d", userID)
		}
		bills = append(bills, *bill)
	}
	return bills, convertErr(rows.Err(), "getting bills of user %d", userID)
}

// LockPending блокирует неоплаченный счет пользователя. Оплаченный, чужой
// или несуществующий счет дает ErrRecordNotFound.
func (r *BillRepository) LockPending(ctx context.Context, billID, userID int64) (*domain.Bill, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+billColumns+` FROM bills
		WHERE bill_id = $1 AND user_id = $2 AND status = $3
		FOR UPDATE`, billID, userID, domain.BillStatusPending)

	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "locking pending bill %d of user %d", billID, userID)
	}
	return bill, nil
}

// MarkPaid переводит счет в терминальный статус Paid со ссылкой на транзакцию,
// которой он был оплачен. Повторная оплата отсекается условием по статусу.
func (r *BillRepository) MarkPaid(ctx context.Context, billID, transactionID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bills SET status = $1, transaction_id = $2, updated_at = NOW()
		WHERE bill_id = $3 AND status = $4`,
		domain.BillStatusPaid, transactionID, billID, domain.BillStatusPending)
	if err != nil {
		return convertErr(err, "marking bill %d paid", billID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "marking bill %d paid", billID)
	}
	return nil
}

func (r *BillRepository) Update(ctx context.Context, billID, userID int64, args repoargs.UpdateBill) (*domain.Bill, error) {
	setClauses := make([]string, 0, 3)
	queryArgs := make([]any, 0, 5)

	if args.ProviderName != nil {
		queryArgs = append(queryArgs, *args.ProviderName)
		setClauses = append(setClauses, fmt.Sprintf("provider_name = $%d", len(queryArgs)))
	}
	if args.Amount != nil {
		queryArgs = append(queryArgs, *args.Amount)
		setClauses = append(setClauses, fmt.Sprintf("amount = $%d", len(queryArgs)))
	}
	if args.DueDate != nil {
		queryArgs = append(queryArgs, *args.DueDate)
		setClauses = append(setClauses, fmt.Sprintf("due_date = $%d", len(queryArgs)))
	}
	if len(setClauses) == 0 {
		return nil, convertErr(errNoRowsAffected, "updating bill %d: no fields", billID)
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	queryArgs = append(queryArgs, billID, userID, domain.BillStatusPending)
	query := fmt.Sprintf(`UPDATE bills SET %s WHERE bill_id = $%d AND user_id = $%d AND status = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), len(queryArgs)-2, len(queryArgs)-1, len(queryArgs), billColumns)

	bill, err := scanBill(r.db.QueryRow(ctx, query, queryArgs...))
	if err != nil {
		return nil, convertErr(err, "updating bill %d of user %d", billID, userID)
	}
	return bill, nil
}

// Delete удаляет неоплаченный счет. Оплаченные счета не удаляются - на них
// ссылается история транзакций.
func (r *BillRepository) Delete(ctx context.Context, billID, userID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM bills
		WHERE bill_id = $1 AND user_id = $2 AND status <> $3`,
		billID, userID, domain.BillStatusPaid)
	if err != nil {
		return convertErr(err, "deleting bill %d of user %d", billID, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting bill %d of user %d", billID, userID)
	}
	return nil
}

func scanBill(row interface{ Scan(...any) error }) (*domain.Bill, error) {
	var b domain.Bill
	err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.UserID, &b.ProviderName, &b.BillType,
		&b.Amount, &b.DueDate, &b.Status, &b.TransactionID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &b, nil
}
