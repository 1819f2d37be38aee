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

type AccountServiceTestSuite struct {
	suite.Suite
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockUserRepo        *mocks.MockUserRepository
	mockAccountRepo     *mocks.MockAccountRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockAuditRepo       *mocks.MockAuditRepository
	accountService      *AccountService
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(mockCtrl)
	s.mockAuditRepo = mocks.NewMockAuditRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AuditRepoName)).
		Return(s.mockAuditRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	log := logrus.New()
	log.SetOutput(io.Discard)

	txlog, txlogErr := NewTxLogService(s.mockUOW, log)
	s.Require().NoError(txlogErr)

	accountService, servErr := NewAccountService(s.mockUOW, txlog, log)
	s.Require().NoError(servErr)
	s.accountService = accountService
}

func (s *AccountServiceTestSuite) expectDo() *gomock.Call {
	return s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *AccountServiceTestSuite) TestCreateFirstAccountBecomesPrimary() {
	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1}, nil)
	s.mockAccountRepo.EXPECT().GetByUserID(gomock.Any(), int64(1)).
		Return([]domain.Account{}, nil)
	s.mockAccountRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateAccount{
			UserID:        1,
			BankName:      "SBI",
			AccountNumber: "123456789",
			Balance:       decimal.NewFromInt(500),
			IsPrimary:     true,
		}).
		Return(&domain.Account{ID: 9, UserID: 1, BankName: "SBI", IsPrimary: true}, nil)
	s.mockUserRepo.EXPECT().ResyncAccountBalance(gomock.Any(), int64(1)).Return(nil)

	account, err := s.accountService.Create(context.Background(), CreateAccountArgs{
		UserID:         1,
		BankName:       " SBI ",
		AccountNumber:  " 123456789 ",
		InitialBalance: decimal.NewFromInt(500),
	})
	s.Require().NoError(err)
	s.True(account.IsPrimary)
}

func (s *AccountServiceTestSuite) TestCreateSecondAccountIsNotPrimary() {
	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1}, nil)
	s.mockAccountRepo.EXPECT().GetByUserID(gomock.Any(), int64(1)).
		Return([]domain.Account{{ID: 9, UserID: 1, IsPrimary: true}}, nil)
	s.mockAccountRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
			s.False(args.IsPrimary)
			return &domain.Account{ID: 10, UserID: 1, BankName: args.BankName}, nil
		})
	s.mockUserRepo.EXPECT().ResyncAccountBalance(gomock.Any(), int64(1)).Return(nil)

	_, err := s.accountService.Create(context.Background(), CreateAccountArgs{
		UserID:        1,
		BankName:      "ICICI",
		AccountNumber: "987654321",
	})
	s.Require().NoError(err)
}

func (s *AccountServiceTestSuite) TestCreateValidation() {
	cases := []struct {
		name    string
		args    CreateAccountArgs
		wantMsg string
	}{
		{
			name:    "blank bank name",
			args:    CreateAccountArgs{UserID: 1, BankName: " ", AccountNumber: "123456789"},
			wantMsg: "bank name and account number are required",
		},
		{
			name: "negative initial balance",
			args: CreateAccountArgs{
				UserID: 1, BankName: "SBI", AccountNumber: "123456789",
				InitialBalance: decimal.NewFromInt(-1),
			},
			wantMsg: "initial balance cannot be negative",
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			account, err := s.accountService.Create(context.Background(), c.args)
			s.Nil(account)

			var validationErr *domain.ValidationError
			s.Require().ErrorAs(err, &validationErr)
			s.Equal(c.wantMsg, validationErr.Message)
		})
	}
}

func (s *AccountServiceTestSuite) TestDeposit() {
	account := &domain.Account{ID: 9, UserID: 1, BankName: "SBI", Balance: decimal.NewFromInt(100)}

	s.expectDo()

	// владелец блокируется раньше счета - единый порядок с переводами
	ownerLock := s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1}, nil)
	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(9), int64(1)).
		Return(account, nil).After(ownerLock)
	s.mockAccountRepo.EXPECT().ApplyDelta(gomock.Any(), int64(9), decimal.NewFromInt(300)).
		Return(true, nil)
	s.mockUserRepo.EXPECT().ResyncAccountBalance(gomock.Any(), int64(1)).Return(nil)

	var ledgerRow repoargs.CreateTransaction
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			ledgerRow = args
			return &domain.Transaction{ID: 1}, nil
		})
	s.mockAuditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.AuditRecord{ID: 1}, nil)

	updated, err := s.accountService.Deposit(context.Background(), 1, 9, decimal.NewFromInt(300))
	s.Require().NoError(err)

	s.True(decimal.NewFromInt(400).Equal(updated.Balance))
	s.Equal("Deposit", ledgerRow.Type)
	s.Equal("External", ledgerRow.FromAccount)
	s.Equal("SBI", ledgerRow.ToAccount)
	s.Equal("Deposited ₹300 to SBI", ledgerRow.Description)
}

func (s *AccountServiceTestSuite) TestWithdraw() {
	account := &domain.Account{ID: 9, UserID: 1, BankName: "SBI", Balance: decimal.NewFromInt(500)}

	s.expectDo()

	ownerLock := s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1}, nil)
	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(9), int64(1)).
		Return(account, nil).After(ownerLock)
	s.mockAccountRepo.EXPECT().ApplyDelta(gomock.Any(), int64(9), decimal.NewFromInt(-300)).
		Return(true, nil)
	s.mockUserRepo.EXPECT().ResyncAccountBalance(gomock.Any(), int64(1)).Return(nil)

	var ledgerRow repoargs.CreateTransaction
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			ledgerRow = args
			return &domain.Transaction{ID: 1}, nil
		})
	s.mockAuditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.AuditRecord{ID: 1}, nil)

	updated, err := s.accountService.Withdraw(context.Background(), 1, 9, decimal.NewFromInt(300))
	s.Require().NoError(err)

	s.True(decimal.NewFromInt(200).Equal(updated.Balance))
	s.Equal("Withdrawal", ledgerRow.Type)
	s.Equal("SBI", ledgerRow.FromAccount)
	s.Equal("External", ledgerRow.ToAccount)
	// сумма в леджере всегда положительная
	s.True(decimal.NewFromInt(300).Equal(ledgerRow.Amount))
}

func (s *AccountServiceTestSuite) TestWithdrawInsufficientFunds() {
	account := &domain.Account{ID: 9, UserID: 1, BankName: "SBI", Balance: decimal.NewFromInt(100)}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil)
	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(9), int64(1)).Return(account, nil)

	updated, err := s.accountService.Withdraw(context.Background(), 1, 9, decimal.NewFromInt(300))
	s.Nil(updated)

	var fundsErr *domain.InsufficientFundsError
	s.Require().ErrorAs(err, &fundsErr)
	s.Equal(domain.TransferSourceAccount, fundsErr.Source)
}

// Баланс прочитан под блокировкой и покрывает сумму, но защищенный UPDATE
// возвращает ноль строк - списание не произошло, отдаем недостаток средств.
func (s *AccountServiceTestSuite) TestWithdrawGuardMiss() {
	account := &domain.Account{ID: 9, UserID: 1, BankName: "SBI", Balance: decimal.NewFromInt(100)}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil)
	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(9), int64(1)).Return(account, nil)
	s.mockAccountRepo.EXPECT().
		ApplyDelta(gomock.Any(), int64(9), decimal.NewFromInt(60).Neg()).
		Return(false, nil)

	// пересчет баланса владельца и реестр не вызываются

	updated, err := s.accountService.Withdraw(context.Background(), 1, 9, decimal.NewFromInt(60))
	s.Nil(updated)

	var fundsErr *domain.InsufficientFundsError
	s.Require().ErrorAs(err, &fundsErr)
	s.Equal(domain.TransferSourceAccount, fundsErr.Source)
	s.True(decimal.NewFromInt(100).Equal(fundsErr.Available))
}

func (s *AccountServiceTestSuite) TestDelete() {
	s.expectDo()

	ownerLock := s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1}, nil)
	s.mockAccountRepo.EXPECT().Delete(gomock.Any(), int64(9), int64(1)).
		Return(nil).After(ownerLock)
	s.mockUserRepo.EXPECT().ResyncAccountBalance(gomock.Any(), int64(1)).Return(nil)

	s.Require().NoError(s.accountService.Delete(context.Background(), 9, 1))
}

func (s *AccountServiceTestSuite) TestDeleteMissingAccount() {
	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil)
	// ненулевой баланс или чужой счет - репозиторий не находит строку
	s.mockAccountRepo.EXPECT().Delete(gomock.Any(), int64(9), int64(1)).
		Return(domain.ErrRecordNotFound)

	err := s.accountService.Delete(context.Background(), 9, 1)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
