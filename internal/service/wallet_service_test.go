package service

import (
	"context"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/internal/service/mocks"
	"github.com/fsdevblog/finflow/pkg/uow"
	uowmocks "github.com/fsdevblog/finflow/pkg/uow/mocks"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockUserRepo        *mocks.MockUserRepository
	mockAccountRepo     *mocks.MockAccountRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockAuditRepo       *mocks.MockAuditRepository
	mockMirrorRepo      *mocks.MockWalletMirrorRepository
	walletService       *WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(mockCtrl)
	s.mockAuditRepo = mocks.NewMockAuditRepository(mockCtrl)
	s.mockMirrorRepo = mocks.NewMockWalletMirrorRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AuditRepoName)).
		Return(s.mockAuditRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WalletMirrorRepoName)).
		Return(s.mockMirrorRepo, nil).AnyTimes()

	log := logrus.New()
	log.SetOutput(io.Discard)

	txlog, txlogErr := NewTxLogService(s.mockUOW, log)
	s.Require().NoError(txlogErr)

	walletService, servErr := NewWalletService(s.mockUOW, txlog, log)
	s.Require().NoError(servErr)
	s.walletService = walletService
}

func (s *WalletServiceTestSuite) expectDo() *gomock.Call {
	return s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *WalletServiceTestSuite) TestFundWalletDoesNotDebitLinkedAccount() {
	amount := decimal.NewFromInt(500)
	owner := &domain.User{ID: 1, WalletBalance: decimal.NewFromInt(100)}
	account := &domain.Account{ID: 9, UserID: 1, BankName: "SBI", Balance: decimal.NewFromInt(30)}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(owner, nil)
	// счет дает только имя источника, его баланс не трогается:
	// нет ожиданий ни на ApplyDelta, ни на ResyncAccountBalance
	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(9), int64(1)).Return(account, nil)
	s.mockUserRepo.EXPECT().ApplyWalletDelta(gomock.Any(), int64(1), amount).Return(true, nil)
	s.mockMirrorRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var ledgerRow repoargs.CreateTransaction
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			ledgerRow = args
			return &domain.Transaction{ID: 1}, nil
		})

	s.mockAuditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.AuditRecord{ID: 1}, nil)
	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), int64(1)).
		Return(&repoargs.UserBalances{WalletBalance: decimal.NewFromInt(600)}, nil)

	balances, err := s.walletService.FundWallet(context.Background(), 1, amount, 9)
	s.Require().NoError(err)

	s.True(decimal.NewFromInt(600).Equal(balances.WalletBalance))
	s.Equal("Deposit", ledgerRow.Type)
	s.Equal("Added ₹500 to wallet from SBI", ledgerRow.Description)
	s.Equal("SBI", ledgerRow.FromAccount)
	s.Equal("Wallet", ledgerRow.ToAccount)
}

func (s *WalletServiceTestSuite) TestFundWalletWithoutAccount() {
	amount := decimal.NewFromInt(500)
	owner := &domain.User{ID: 1, WalletBalance: decimal.Zero}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(owner, nil)
	s.mockUserRepo.EXPECT().ApplyWalletDelta(gomock.Any(), int64(1), amount).Return(true, nil)
	s.mockMirrorRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var ledgerRow repoargs.CreateTransaction
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			ledgerRow = args
			return &domain.Transaction{ID: 1}, nil
		})

	s.mockAuditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.AuditRecord{ID: 1}, nil)
	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), int64(1)).
		Return(&repoargs.UserBalances{WalletBalance: amount}, nil)

	_, err := s.walletService.FundWallet(context.Background(), 1, amount, 0)
	s.Require().NoError(err)

	s.Equal("External Source", ledgerRow.FromAccount)
}

func (s *WalletServiceTestSuite) TestFundWalletRejectsNonPositiveAmount() {
	balances, err := s.walletService.FundWallet(context.Background(), 1, decimal.Zero, 0)
	s.Nil(balances)

	var validationErr *domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
}

func (s *WalletServiceTestSuite) TestMoveWalletToAccount() {
	amount := decimal.NewFromInt(200)
	owner := &domain.User{ID: 1, WalletBalance: decimal.NewFromInt(1000)}
	account := &domain.Account{ID: 9, UserID: 1, BankName: "SBI", Balance: decimal.NewFromInt(50)}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(owner, nil)
	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(9), int64(1)).Return(account, nil)
	s.mockUserRepo.EXPECT().ApplyWalletDelta(gomock.Any(), int64(1), decimal.NewFromInt(-200)).
		Return(true, nil)
	s.mockMirrorRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockAccountRepo.EXPECT().ApplyDelta(gomock.Any(), int64(9), amount).Return(true, nil)
	s.mockUserRepo.EXPECT().ResyncAccountBalance(gomock.Any(), int64(1)).Return(nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 1}, nil)
	s.mockAuditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.AuditRecord{ID: 1}, nil)
	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), int64(1)).
		Return(&repoargs.UserBalances{
			WalletBalance:  decimal.NewFromInt(800),
			AccountBalance: decimal.NewFromInt(250),
		}, nil)

	balances, err := s.walletService.MoveWalletToAccount(context.Background(), 1, 9, amount)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(800).Equal(balances.WalletBalance))
	s.True(decimal.NewFromInt(250).Equal(balances.AccountBalance))
}

func (s *WalletServiceTestSuite) TestMoveWalletToAccountInsufficientFunds() {
	amount := decimal.NewFromInt(200)
	owner := &domain.User{ID: 1, WalletBalance: decimal.NewFromInt(100)}
	account := &domain.Account{ID: 9, UserID: 1, BankName: "SBI"}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(owner, nil)
	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(9), int64(1)).Return(account, nil)

	balances, err := s.walletService.MoveWalletToAccount(context.Background(), 1, 9, amount)
	s.Nil(balances)

	var fundsErr *domain.InsufficientFundsError
	s.Require().ErrorAs(err, &fundsErr)
	s.Equal(domain.TransferSourceWallet, fundsErr.Source)
}

func (s *WalletServiceTestSuite) TestMoveAccountToWalletInsufficientFunds() {
	amount := decimal.NewFromInt(200)
	owner := &domain.User{ID: 1, WalletBalance: decimal.NewFromInt(100)}
	account := &domain.Account{ID: 9, UserID: 1, BankName: "SBI", Balance: decimal.NewFromInt(20)}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(owner, nil)
	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(9), int64(1)).Return(account, nil)

	balances, err := s.walletService.MoveAccountToWallet(context.Background(), 1, 9, amount)
	s.Nil(balances)

	var fundsErr *domain.InsufficientFundsError
	s.Require().ErrorAs(err, &fundsErr)
	s.Equal(domain.TransferSourceAccount, fundsErr.Source)
}

func (s *WalletServiceTestSuite) TestGetBalances() {
	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), int64(1)).
		Return(&repoargs.UserBalances{
			WalletBalance:  decimal.NewFromInt(100),
			AccountBalance: decimal.NewFromInt(200),
		}, nil)

	balances, err := s.walletService.GetBalances(context.Background(), 1)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(100).Equal(balances.WalletBalance))
	s.True(decimal.NewFromInt(200).Equal(balances.AccountBalance))
}
