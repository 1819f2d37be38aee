package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

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

type TransferServiceTestSuite struct {
	suite.Suite
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockUserRepo        *mocks.MockUserRepository
	mockAccountRepo     *mocks.MockAccountRepository
	mockTransferRepo    *mocks.MockTransferRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockAuditRepo       *mocks.MockAuditRepository
	mockMirrorRepo      *mocks.MockWalletMirrorRepository
	transferService     *TransferService
}

func TestTransferServiceSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

func (s *TransferServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(mockCtrl)
	s.mockTransferRepo = mocks.NewMockTransferRepository(mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(mockCtrl)
	s.mockAuditRepo = mocks.NewMockAuditRepository(mockCtrl)
	s.mockMirrorRepo = mocks.NewMockWalletMirrorRepository(mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервисов.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransferRepoName)).
		Return(s.mockTransferRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AuditRepoName)).
		Return(s.mockAuditRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	// Транзакционные репозитории.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransferRepoName)).
		Return(s.mockTransferRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WalletMirrorRepoName)).
		Return(s.mockMirrorRepo, nil).AnyTimes()

	log := logrus.New()
	log.SetOutput(io.Discard)

	txlog, txlogErr := NewTxLogService(s.mockUOW, log)
	s.Require().NoError(txlogErr)

	transferService, servErr := NewTransferService(s.mockUOW, txlog, log)
	s.Require().NoError(servErr)
	s.transferService = transferService
}

// expectDo прогоняет переданную в Do функцию на мок-транзакции.
func (s *TransferServiceTestSuite) expectDo() *gomock.Call {
	return s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *TransferServiceTestSuite) TestValidation() {
	amount := decimal.NewFromInt(100)

	cases := []struct {
		name    string
		args    ExecuteTransferArgs
		wantMsg string
	}{
		{
			name:    "missing parties",
			args:    ExecuteTransferArgs{Amount: amount, Source: domain.TransferSourceWallet},
			wantMsg: "sender and recipient are required",
		},
		{
			name: "transfer to self without self flag",
			args: ExecuteTransferArgs{
				FromUserID: 1, ToUserID: 1, Amount: amount, Source: domain.TransferSourceWallet,
			},
			wantMsg: "cannot transfer money to yourself, use self transfer for moving money between your accounts",
		},
		{
			name: "invalid source",
			args: ExecuteTransferArgs{
				FromUserID: 1, ToUserID: 2, Amount: amount, Source: "card",
			},
			wantMsg: `source must be either "wallet" or "account"`,
		},
		{
			name: "self transfer without account ids",
			args: ExecuteTransferArgs{
				FromUserID: 1, ToUserID: 1, Amount: amount,
				Source: domain.TransferSourceAccount, IsSelfTransfer: true,
			},
			wantMsg: "source and destination account ids are required for self transfers",
		},
		{
			name: "self transfer same accounts",
			args: ExecuteTransferArgs{
				FromUserID: 1, ToUserID: 1, Amount: amount,
				Source: domain.TransferSourceAccount, IsSelfTransfer: true,
				FromAccountID: 10, ToAccountID: 10,
			},
			wantMsg: "source and destination accounts must differ",
		},
		{
			name: "non positive amount",
			args: ExecuteTransferArgs{
				FromUserID: 1, ToUserID: 2, Amount: decimal.Zero, Source: domain.TransferSourceWallet,
			},
			wantMsg: "amount must be greater than 0",
		},
	}

	// Do не должен вызываться вовсе: валидация отсекает запрос до транзакции.
	for _, c := range cases {
		s.Run(c.name, func() {
			result, err := s.transferService.ExecuteTransfer(context.Background(), c.args)
			s.Nil(result)

			var validationErr *domain.ValidationError
			s.Require().ErrorAs(err, &validationErr)
			s.Equal(c.wantMsg, validationErr.Message)
		})
	}
}

func (s *TransferServiceTestSuite) TestWalletTransferToWalletRecipient() {
	amount := decimal.NewFromInt(100)
	sender := &domain.User{ID: 5, Username: "alice", Email: "alice@example.com",
		FullName: "Alice A", WalletBalance: decimal.NewFromInt(1000)}
	recipient := &domain.User{ID: 2, Username: "bob", Email: "bob@example.com",
		WalletBalance: decimal.NewFromInt(10)}

	s.expectDo()

	// пользователи блокируются по возрастанию id: сначала 2, затем 5,
	// хотя отправитель - пятый
	lockRecipient := s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(2)).Return(recipient, nil)
	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(5)).Return(sender, nil).After(lockRecipient)

	s.mockUserRepo.EXPECT().ApplyWalletDelta(gomock.Any(), int64(5), decimal.NewFromInt(-100)).
		Return(true, nil)
	s.mockAccountRepo.EXPECT().LockPrimary(gomock.Any(), int64(2)).
		Return(nil, domain.ErrRecordNotFound)
	s.mockUserRepo.EXPECT().ApplyWalletDelta(gomock.Any(), int64(2), amount).
		Return(true, nil)
	s.mockMirrorRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	s.mockTransferRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateTransfer{FromUserID: 5, ToUserID: 2, Amount: amount, Note: "lunch"}).
		Return(&domain.Transfer{ID: 7, CreatedAt: time.Now(), FromUserID: 5, ToUserID: 2, Amount: amount}, nil)

	var ledgerRows []repoargs.CreateTransaction
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			ledgerRows = append(ledgerRows, args)
			return &domain.Transaction{ID: int64(len(ledgerRows))}, nil
		}).Times(2)

	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), int64(5)).
		Return(&repoargs.UserBalances{WalletBalance: decimal.NewFromInt(900)}, nil)
	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), int64(2)).
		Return(&repoargs.UserBalances{WalletBalance: decimal.NewFromInt(110)}, nil)

	// аудит пишется после коммита, по записи на каждую сторону
	s.mockAuditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.AuditRecord{ID: 1}, nil).Times(2)

	result, err := s.transferService.ExecuteTransfer(context.Background(), ExecuteTransferArgs{
		FromUserID: 5,
		ToUserID:   2,
		Amount:     amount,
		Source:     domain.TransferSourceWallet,
		Note:       "lunch",
	})
	s.Require().NoError(err)

	s.Equal(int64(7), result.TransferID)
	s.Regexp(`^TRF[0-9A-F]{12}$`, result.Reference)
	s.Equal(domain.TransferSourceWallet, result.DestinationType)
	s.Nil(result.DestinationAccountID)
	s.Equal("Alice A", result.Sender.Name)
	s.Equal("bob", result.Recipient.Name)
	s.True(decimal.NewFromInt(900).Equal(result.Sender.WalletBalance))
	s.True(decimal.NewFromInt(110).Equal(result.Recipient.WalletBalance))

	s.Require().Len(ledgerRows, 2)
	s.Equal(int64(5), ledgerRows[0].UserID)
	s.Equal("Transfer", ledgerRows[0].Type)
	s.Equal("Wallet", ledgerRows[0].PaymentMethod)
	s.Equal("Sent ₹100 to bob: lunch", ledgerRows[0].Description)
	s.Equal(int64(2), ledgerRows[1].UserID)
	s.Equal("Received ₹100 from Alice A: lunch", ledgerRows[1].Description)
	s.Equal(ledgerRows[0].ReferenceNumber, ledgerRows[1].ReferenceNumber)
}

func (s *TransferServiceTestSuite) TestWalletTransferPrefersRecipientPrimaryAccount() {
	amount := decimal.NewFromInt(50)
	sender := &domain.User{ID: 1, Username: "alice", WalletBalance: decimal.NewFromInt(500)}
	recipient := &domain.User{ID: 2, Username: "bob"}
	primary := &domain.Account{ID: 33, UserID: 2, BankName: "HDFC", Balance: decimal.NewFromInt(200), IsPrimary: true}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(sender, nil)
	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(2)).Return(recipient, nil)

	s.mockUserRepo.EXPECT().ApplyWalletDelta(gomock.Any(), int64(1), decimal.NewFromInt(-50)).
		Return(true, nil)
	s.mockMirrorRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// у получателя есть основной счет - кредитуется он, не кошелек
	s.mockAccountRepo.EXPECT().LockPrimary(gomock.Any(), int64(2)).Return(primary, nil)
	s.mockAccountRepo.EXPECT().ApplyDelta(gomock.Any(), int64(33), amount).Return(true, nil)
	s.mockUserRepo.EXPECT().ResyncAccountBalance(gomock.Any(), int64(2)).Return(nil)

	s.mockTransferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transfer{ID: 8, CreatedAt: time.Now()}, nil)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 1}, nil).Times(2)

	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), int64(1)).
		Return(&repoargs.UserBalances{WalletBalance: decimal.NewFromInt(450)}, nil)
	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), int64(2)).
		Return(&repoargs.UserBalances{AccountBalance: decimal.NewFromInt(250)}, nil)

	s.mockAuditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.AuditRecord{ID: 1}, nil).Times(2)

	result, err := s.transferService.ExecuteTransfer(context.Background(), ExecuteTransferArgs{
		FromUserID: 1,
		ToUserID:   2,
		Amount:     amount,
		Source:     domain.TransferSourceWallet,
	})
	s.Require().NoError(err)

	s.Equal(domain.TransferSourceAccount, result.DestinationType)
	s.Require().NotNil(result.DestinationAccountID)
	s.Equal(int64(33), *result.DestinationAccountID)
	s.Equal("HDFC", result.DestinationBankName)
}

func (s *TransferServiceTestSuite) TestInsufficientWalletFunds() {
	sender := &domain.User{ID: 1, Username: "alice", WalletBalance: decimal.NewFromInt(50)}
	recipient := &domain.User{ID: 2, Username: "bob"}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(sender, nil)
	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(2)).Return(recipient, nil)

	// дальше блокировок дело не доходит: остаток меньше суммы

	result, err := s.transferService.ExecuteTransfer(context.Background(), ExecuteTransferArgs{
		FromUserID: 1,
		ToUserID:   2,
		Amount:     decimal.NewFromInt(100),
		Source:     domain.TransferSourceWallet,
	})
	s.Nil(result)

	var fundsErr *domain.InsufficientFundsError
	s.Require().ErrorAs(err, &fundsErr)
	s.Equal(domain.TransferSourceWallet, fundsErr.Source)
	s.True(decimal.NewFromInt(50).Equal(fundsErr.Available))
}

// Предварительная проверка остатка читает значение под блокировкой, но
// защищенный апдейт все равно может не пройти: баланс успел измениться
// между чтением и UPDATE. Ноль затронутых строк трактуется как недостаток
// средств, а не как успех.
func (s *TransferServiceTestSuite) TestWalletDebitGuardMiss() {
	sender := &domain.User{ID: 1, Username: "alice", WalletBalance: decimal.NewFromInt(100)}
	recipient := &domain.User{ID: 2, Username: "bob"}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(sender, nil)
	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(2)).Return(recipient, nil)

	// проверка 100 >= 60 проходит, но UPDATE не затрагивает строк
	s.mockUserRepo.EXPECT().
		ApplyWalletDelta(gomock.Any(), int64(1), decimal.NewFromInt(60).Neg()).
		Return(false, nil)

	// зеркало, реестр и аудит не трогаются: дебет не состоялся

	result, err := s.transferService.ExecuteTransfer(context.Background(), ExecuteTransferArgs{
		FromUserID: 1,
		ToUserID:   2,
		Amount:     decimal.NewFromInt(60),
		Source:     domain.TransferSourceWallet,
	})
	s.Nil(result)

	var fundsErr *domain.InsufficientFundsError
	s.Require().ErrorAs(err, &fundsErr)
	s.Equal(domain.TransferSourceWallet, fundsErr.Source)
	s.True(decimal.NewFromInt(100).Equal(fundsErr.Available))
}

func (s *TransferServiceTestSuite) TestSenderWithoutLinkedAccount() {
	sender := &domain.User{ID: 1, Username: "alice"}
	recipient := &domain.User{ID: 2, Username: "bob"}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(sender, nil)
	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(2)).Return(recipient, nil)
	s.mockAccountRepo.EXPECT().LockPrimary(gomock.Any(), int64(1)).
		Return(nil, domain.ErrRecordNotFound)

	result, err := s.transferService.ExecuteTransfer(context.Background(), ExecuteTransferArgs{
		FromUserID: 1,
		ToUserID:   2,
		Amount:     decimal.NewFromInt(100),
		Source:     domain.TransferSourceAccount,
	})
	s.Nil(result)

	var validationErr *domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("sender does not have a linked bank account", validationErr.Message)
}

func (s *TransferServiceTestSuite) TestSelfTransferWritesSingleLedgerRow() {
	amount := decimal.NewFromInt(100)
	user := &domain.User{ID: 1, Username: "alice", FullName: "Alice A"}
	source := &domain.Account{ID: 10, UserID: 1, BankName: "SBI", Balance: decimal.NewFromInt(400)}
	dest := &domain.Account{ID: 11, UserID: 1, BankName: "ICICI", Balance: decimal.NewFromInt(25)}

	s.expectDo()

	// один пользователь - одна блокировка строки users
	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(user, nil).Times(1)

	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(10), int64(1)).Return(source, nil)
	s.mockAccountRepo.EXPECT().ApplyDelta(gomock.Any(), int64(10), decimal.NewFromInt(-100)).Return(true, nil)
	s.mockAccountRepo.EXPECT().LockByID(gomock.Any(), int64(11), int64(1)).Return(dest, nil)
	s.mockAccountRepo.EXPECT().ApplyDelta(gomock.Any(), int64(11), amount).Return(true, nil)
	s.mockUserRepo.EXPECT().ResyncAccountBalance(gomock.Any(), int64(1)).Return(nil).Times(2)

	s.mockTransferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transfer{ID: 9, CreatedAt: time.Now()}, nil)

	var ledgerRow repoargs.CreateTransaction
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			ledgerRow = args
			return &domain.Transaction{ID: 1}, nil
		}).Times(1)

	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), int64(1)).
		Return(&repoargs.UserBalances{AccountBalance: decimal.NewFromInt(425)}, nil).Times(2)

	s.mockAuditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.AuditRecord{ID: 1}, nil).Times(1)

	result, err := s.transferService.ExecuteTransfer(context.Background(), ExecuteTransferArgs{
		FromUserID:     1,
		ToUserID:       1,
		Amount:         amount,
		Source:         domain.TransferSourceAccount,
		IsSelfTransfer: true,
		FromAccountID:  10,
		ToAccountID:    11,
	})
	s.Require().NoError(err)

	s.Equal("Self Transfer", ledgerRow.Type)
	s.Equal("Bank Transfer", ledgerRow.PaymentMethod)
	s.Equal("Self Transfer: ₹100 from SBI to ICICI", ledgerRow.Description)
	s.Equal("SBI", ledgerRow.FromAccount)
	s.Equal("ICICI", ledgerRow.ToAccount)
	s.Equal(int64(9), result.TransferID)
}

func (s *TransferServiceTestSuite) TestTransferRecordFailureAbortsWithoutAudit() {
	amount := decimal.NewFromInt(100)
	sender := &domain.User{ID: 1, WalletBalance: decimal.NewFromInt(500)}
	recipient := &domain.User{ID: 2}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(sender, nil)
	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(2)).Return(recipient, nil)
	s.mockUserRepo.EXPECT().ApplyWalletDelta(gomock.Any(), int64(1), decimal.NewFromInt(-100)).
		Return(true, nil)
	s.mockMirrorRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.mockAccountRepo.EXPECT().LockPrimary(gomock.Any(), int64(2)).
		Return(nil, domain.ErrRecordNotFound)
	s.mockUserRepo.EXPECT().ApplyWalletDelta(gomock.Any(), int64(2), amount).
		Return(true, nil)

	// сбой на вставке записи перевода - вся транзакция откатывается,
	// аудит не пишется (нет ожиданий на auditRepo.Create)
	s.mockTransferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUnknown)

	result, err := s.transferService.ExecuteTransfer(context.Background(), ExecuteTransferArgs{
		FromUserID: 1,
		ToUserID:   2,
		Amount:     amount,
		Source:     domain.TransferSourceWallet,
	})
	s.Nil(result)
	s.Require().ErrorIs(err, domain.ErrUnknown)
}

func (s *TransferServiceTestSuite) TestFindRecipientExcludesSelf() {
	user := &domain.User{ID: 1, Username: "alice"}

	s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(user, nil)

	found, err := s.transferService.FindRecipient(context.Background(), "alice", 1)
	s.Nil(found)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *TransferServiceTestSuite) TestFindRecipientOk() {
	user := &domain.User{ID: 2, Username: "bob"}

	s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(user, nil)

	found, err := s.transferService.FindRecipient(context.Background(), "bob", 1)
	s.Require().NoError(err)
	s.Equal(int64(2), found.ID)
}

func (s *TransferServiceTestSuite) TestAuditFailureDoesNotFailCommittedTransfer() {
	amount := decimal.NewFromInt(100)
	sender := &domain.User{ID: 1, WalletBalance: decimal.NewFromInt(500)}
	recipient := &domain.User{ID: 2}

	s.expectDo()

	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(sender, nil)
	s.mockUserRepo.EXPECT().LockByID(gomock.Any(), int64(2)).Return(recipient, nil)
	s.mockUserRepo.EXPECT().ApplyWalletDelta(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil).Times(2)
	s.mockMirrorRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.mockAccountRepo.EXPECT().LockPrimary(gomock.Any(), int64(2)).
		Return(nil, domain.ErrRecordNotFound)
	s.mockTransferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transfer{ID: 3, CreatedAt: time.Now()}, nil)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 1}, nil).Times(2)
	s.mockUserRepo.EXPECT().GetBalances(gomock.Any(), gomock.Any()).
		Return(&repoargs.UserBalances{}, nil).Times(2)

	// аудит падает, но перевод уже закоммичен - ошибка наружу не выходит
	s.mockAuditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("audit store down")).Times(2)

	result, err := s.transferService.ExecuteTransfer(context.Background(), ExecuteTransferArgs{
		FromUserID: 1,
		ToUserID:   2,
		Amount:     amount,
		Source:     domain.TransferSourceWallet,
	})
	s.Require().NoError(err)
	s.Equal(int64(3), result.TransferID)
}
