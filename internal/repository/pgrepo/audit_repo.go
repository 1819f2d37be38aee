package pgrepo

import (
	"context"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

const auditColumns = `id, created_at, user_id, transaction_type, amount,
	source_type, source_id, COALESCE(source_name, ''),
	destination_type, destination_id, COALESCE(destination_name, ''),
	COALESCE(description, ''), category, reference_number,
	bill_id, transfer_id, balance_before, balance_after, status`

// AuditRepository таблица transaction_history. Только вставка и чтение:
// UPDATE/DELETE по этой таблице не существует в принципе.
type AuditRepository struct {
	db uow.DBTX
}

func NewAuditRepository(db uow.DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, args repoargs.CreateAuditRecord) (*domain.AuditRecord, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO transaction_history (user_id, transaction_type, amount,
			source_type, source_id, source_name,
			destination_type, destination_id, destination_name,
			description, category, reference_number,
			bill_id, transfer_id, balance_before, balance_after, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+auditColumns,
		args.UserID, args.Type, args.Amount,
		args.Source.Type, args.Source.ID, args.Source.Name,
		args.Destination.Type, args.Destination.ID, args.Destination.Name,
		args.Description, args.Category, args.ReferenceNumber,
		args.BillID, args.TransferID, args.BalanceBefore, args.BalanceAfter, args.Status)

	record, err := scanAuditRecord(row)
	if err != nil {
		return nil, convertErr(err, "creating audit record for user %d", args.UserID)
	}
	return record, nil
}

// GetByUserID возвращает записи истории по порядку вставки (по убыванию id),
// чтобы потребители могли стабильно их листать.
func (r *AuditRepository) GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.AuditRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+auditColumns+` FROM transaction_history
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "getting audit records of user %d", userID)
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		record, scanErr := scanAuditRecord(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning audit record of user %d", userID)
		}
		records = append(records, *record)
	}
	return records, convertErr(rows.Err(), "getting audit records of user %d", userID)
}

func scanAuditRecord(row interface{ Scan(...any) error }) (*domain.AuditRecord, error) {
	var rec domain.AuditRecord
	err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UserID, &rec.Type, &rec.Amount,
		&rec.Source.Type, &rec.Source.ID, &rec.Source.Name,
		&rec.Destination.Type, &rec.Destination.ID, &rec.Destination.Name,
		&rec.Description, &rec.Category, &rec.ReferenceNumber,
		&rec.BillID, &rec.TransferID, &rec.BalanceBefore, &rec.BalanceAfter, &rec.Status)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &rec, nil
}
