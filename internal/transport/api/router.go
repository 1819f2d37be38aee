package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/finflow/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 5 * time.Second
)

const (
	RouteGroup             = "/api"
	RegisterRoute          = "/auth/register"
	LoginRoute             = "/auth/login"
	MeRoute                = "/auth/me"
	WalletBalanceRoute     = "/wallet/balance"
	WalletFundRoute        = "/wallet/fund"
	WalletToAccountRoute   = "/wallet/to-account"
	WalletFromAccountRoute = "/wallet/from-account"
	TransfersRoute         = "/transfers"
	RecipientRoute         = "/transfers/recipient"
	AccountsRoute          = "/accounts"
	AccountRoute           = "/accounts/:id"
	AccountDepositRoute    = "/accounts/:id/deposit"
	AccountWithdrawRoute   = "/accounts/:id/withdraw"
	BillsRoute             = "/bills"
	BillRoute              = "/bills/:id"
	BillPayRoute           = "/bills/:id/pay"
	HistoryRoute           = "/history"
	TransactionsRoute      = "/transactions"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	TransferService TransferServicer
	WalletService   WalletServicer
	AccountService  AccountServicer
	BillService     BillServicer
	HistoryService  HistoryServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	transferHandler := NewTransferHandler(args.TransferService)
	walletHandler := NewWalletHandler(args.WalletService)
	accountsHandler := NewAccountsHandler(args.AccountService)
	billsHandler := NewBillsHandler(args.BillService)
	historyHandler := NewHistoryHandler(args.HistoryService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(MeRoute, authHandler.Me)

	api.GET(WalletBalanceRoute, walletHandler.Balance)
	api.POST(WalletFundRoute, walletHandler.Fund)
	api.POST(WalletToAccountRoute, walletHandler.ToAccount)
	api.POST(WalletFromAccountRoute, walletHandler.FromAccount)

	api.POST(TransfersRoute, transferHandler.Create)
	api.GET(TransfersRoute, transferHandler.Index)
	api.GET(RecipientRoute, transferHandler.FindRecipient)

	api.POST(AccountsRoute, accountsHandler.Create)
	api.GET(AccountsRoute, accountsHandler.Index)
	api.POST(AccountDepositRoute, accountsHandler.Deposit)
	api.POST(AccountWithdrawRoute, accountsHandler.Withdraw)
	api.DELETE(AccountRoute, accountsHandler.Delete)

	api.POST(BillsRoute, billsHandler.Create)
	api.GET(BillsRoute, billsHandler.Index)
	api.POST(BillPayRoute, billsHandler.Pay)
	api.PATCH(BillRoute, billsHandler.Update)
	api.DELETE(BillRoute, billsHandler.Delete)

	api.GET(HistoryRoute, historyHandler.Index)
	api.GET(TransactionsRoute, historyHandler.Ledger)
	return r
}
