package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
}

type TransferServicer interface {
	ExecuteTransfer(ctx context.Context, args service.ExecuteTransferArgs) (*service.TransferResult, error)
	FindRecipient(ctx context.Context, identifier string, currentUserID int64) (*domain.User, error)
	GetHistory(ctx context.Context, userID int64, limit, offset uint) ([]domain.Transfer, error)
}

type WalletServicer interface {
	GetBalances(ctx context.Context, userID int64) (*repoargs.UserBalances, error)
	FundWallet(ctx context.Context, userID int64, amount decimal.Decimal, accountID int64) (*repoargs.UserBalances, error)
	MoveWalletToAccount(
		ctx context.Context,
		userID, accountID int64,
		amount decimal.Decimal,
	) (*repoargs.UserBalances, error)
	MoveAccountToWallet(
		ctx context.Context,
		userID, accountID int64,
		amount decimal.Decimal,
	) (*repoargs.UserBalances, error)
}

type AccountServicer interface {
	Create(ctx context.Context, args service.CreateAccountArgs) (*domain.Account, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error)
	Deposit(ctx context.Context, userID, accountID int64, amount decimal.Decimal) (*domain.Account, error)
	Withdraw(ctx context.Context, userID, accountID int64, amount decimal.Decimal) (*domain.Account, error)
	Delete(ctx context.Context, accountID, userID int64) error
}

type BillServicer interface {
	Create(ctx context.Context, args service.CreateBillArgs) (*domain.Bill, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Bill, error)
	PayBill(ctx context.Context, args service.PayBillArgs) (*service.PayBillResult, error)
	Update(ctx context.Context, billID, userID int64, args repoargs.UpdateBill) (*domain.Bill, error)
	Delete(ctx context.Context, billID, userID int64) error
}

type HistoryServicer interface {
	GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.AuditRecord, error)
	GetLedger(ctx context.Context, userID int64, limit, offset uint) ([]domain.Transaction, error)
}
