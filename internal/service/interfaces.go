package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
	LockByID(ctx context.Context, userID int64) (*domain.User, error)
	GetBalances(ctx context.Context, userID int64) (*repoargs.UserBalances, error)
	ApplyWalletDelta(ctx context.Context, userID int64, delta decimal.Decimal) (bool, error)
	ResyncAccountBalance(ctx context.Context, userID int64) error
}

type AccountRepository interface {
	Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error)
	LockPrimary(ctx context.Context, userID int64) (*domain.Account, error)
	LockByID(ctx context.Context, accountID, userID int64) (*domain.Account, error)
	ApplyDelta(ctx context.Context, accountID int64, delta decimal.Decimal) (bool, error)
	Delete(ctx context.Context, accountID, userID int64) error
}

type TransferRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransfer) (*domain.Transfer, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.Transfer, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.Transaction, error)
}

type BillRepository interface {
	Create(ctx context.Context, args repoargs.CreateBill) (*domain.Bill, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Bill, error)
	LockPending(ctx context.Context, billID, userID int64) (*domain.Bill, error)
	MarkPaid(ctx context.Context, billID, transactionID int64) error
	Update(ctx context.Context, billID, userID int64, args repoargs.UpdateBill) (*domain.Bill, error)
	Delete(ctx context.Context, billID, userID int64) error
}

type AuditRepository interface {
	Create(ctx context.Context, args repoargs.CreateAuditRecord) (*domain.AuditRecord, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.AuditRecord, error)
}

type WalletMirrorRepository interface {
	ApplyDelta(ctx context.Context, userID int64, delta decimal.Decimal) error
}
