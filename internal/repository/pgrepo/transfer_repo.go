package pgrepo

import (
	"context"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

type TransferRepository struct {
	db uow.DBTX
}

func NewTransferRepository(db uow.DBTX) *TransferRepository {
	return &TransferRepository{db: db}
}

// Create вставляет неизменяемую запись перевода. Записи transfers никогда
// не обновляются и не удаляются.
func (r *TransferRepository) Create(ctx context.Context, args repoargs.CreateTransfer) (*domain.Transfer, error) {
	var t domain.Transfer
	err := r.db.QueryRow(ctx, `
		INSERT INTO transfers (from_user_id, to_user_id, amount, note)
		VALUES ($1, $2, $3, $4)
		RETURNING transfer_id, created_at, from_user_id, to_user_id, amount, COALESCE(note, '')`,
		args.FromUserID, args.ToUserID, args.Amount, nullIfEmpty(args.Note)).
		Scan(&t.ID, &t.CreatedAt, &t.FromUserID, &t.ToUserID, &t.Amount, &t.Note)
	if err != nil {
		return nil, convertErr(err, "creating transfer %d -> %d", args.FromUserID, args.ToUserID)
	}
	return &t, nil
}

// GetByUserID возвращает переводы, где пользователь выступает отправителем
// или получателем, по убыванию даты создания.
func (r *TransferRepository) GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.Transfer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT transfer_id, created_at, from_user_id, to_user_id, amount, COALESCE(note, '')
		FROM transfers
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "getting transfers of user %d", userID)
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		var t domain.Transfer
		if scanErr := rows.Scan(&t.ID, &t.CreatedAt, &t.FromUserID, &t.ToUserID, &t.Amount, &t.Note); scanErr != nil {
			return nil, convertErr(scanErr, "scanning transfer of user %d", userID)
		}
		transfers = append(transfers, t)
	}
	return transfers, convertErr(rows.Err(), "getting transfers of user %d", userID)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
