package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finflow/pkg/uow"
)

// WalletMirrorRepository легаси-таблица wallets, дублирующая wallet_balance
// из users. Источник истины - users; зеркало поддерживается best-effort,
// его ошибки вызывающая сторона логирует и глотает.
type WalletMirrorRepository struct {
	db uow.DBTX
}

func NewWalletMirrorRepository(db uow.DBTX) *WalletMirrorRepository {
	return &WalletMirrorRepository{db: db}
}

func (r *WalletMirrorRepository) ApplyDelta(ctx context.Context, userID int64, delta decimal.Decimal) error {
	_, err := r.db.Exec(ctx, `
		UPDATE wallets SET wallet_balance = wallet_balance + $1, updated_at = NOW()
		WHERE user_id = $2`, delta, userID)
	return convertErr(err, "applying wallet mirror delta for user %d", userID)
}
