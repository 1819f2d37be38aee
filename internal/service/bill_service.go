package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

type BillService struct {
	uow      uow.UOW
	billRepo BillRepository
	mutator  *balanceMutator
	txlog    *TxLogService
	log      *logrus.Logger
}

func NewBillService(u uow.UOW, txlog *TxLogService, log *logrus.Logger) (*BillService, error) {
	billRepo, brErr := uow.GetRepositoryAs[BillRepository](u, uow.RepositoryName(repoargs.BillRepoName))
	if brErr != nil {
		return nil, brErr //nolint:wrapcheck
	}
	return &BillService{
		uow:      u,
		billRepo: billRepo,
		mutator:  newBalanceMutator(log),
		txlog:    txlog,
		log:      log,
	}, nil
}

type PayBillArgs struct {
	BillID        int64
	UserID        int64
	PaymentMethod domain.TransferSourceType
	// AccountID обязателен при оплате со счета.
	AccountID int64
	Notes     string
}

type PayBillResult struct {
	Bill            *domain.Bill
	Transaction     *domain.Transaction
	PaymentMethod   domain.TransferSourceType
	BalanceAfter    decimal.Decimal
	AccountBankName string
}

// payBillState значения, снятые внутри денежной транзакции, для записи
// аудита после коммита.
type payBillState struct {
	bill          *domain.Bill
	account       *domain.Account
	transaction   *domain.Transaction
	balanceBefore decimal.Decimal
	balanceAfter  decimal.Decimal
}

// PayBill оплачивает счет со статусом Pending. Списание средств, строка
// леджера и перевод счета в Paid выполняются в одной транзакции: счет либо
// оплачен полностью, либо не тронут. Повторная оплата невозможна - строка
// bills блокируется с проверкой статуса.
func (s *BillService) PayBill(ctx context.Context, args PayBillArgs) (*PayBillResult, error) {
	if !args.PaymentMethod.Valid() {
		return nil, domain.NewValidationError(`payment method must be either "wallet" or "account"`)
	}
	if args.PaymentMethod == domain.TransferSourceAccount && args.AccountID == 0 {
		return nil, domain.NewValidationError("account id is required for bank payments")
	}
	notes := strings.TrimSpace(args.Notes)

	var st payBillState
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		return s.settleLocked(c, tx, args, notes, &st)
	})
	if txErr != nil {
		return nil, fmt.Errorf("paying bill %d: %w", args.BillID, txErr)
	}

	s.auditPayment(ctx, args, &st)

	result := &PayBillResult{
		Bill:          st.bill,
		Transaction:   st.transaction,
		PaymentMethod: args.PaymentMethod,
		BalanceAfter:  st.balanceAfter,
	}
	if st.account != nil {
		result.AccountBankName = st.account.BankName
	}
	return result, nil
}

func (s *BillService) settleLocked(
	ctx context.Context,
	tx uow.TX,
	args PayBillArgs,
	notes string,
	st *payBillState,
) error {
	billRepo, brErr := uow.GetAs[BillRepository](tx, uow.RepositoryName(repoargs.BillRepoName))
	if brErr != nil {
		return brErr //nolint:wrapcheck
	}

	// блокировка с проверкой статуса: уже оплаченный счет сюда не пройдет
	bill, lockErr := billRepo.LockPending(ctx, args.BillID, args.UserID)
	if lockErr != nil {
		return fmt.Errorf("pending bill: %w", lockErr)
	}
	st.bill = bill

	if debitErr := s.debitPayment(ctx, tx, args, bill.Amount, st); debitErr != nil {
		return debitErr
	}

	transaction, txnErr := s.recordPayment(ctx, tx, args, notes, st)
	if txnErr != nil {
		return txnErr
	}
	st.transaction = transaction

	if markErr := billRepo.MarkPaid(ctx, bill.ID, transaction.ID); markErr != nil {
		return fmt.Errorf("marking bill %d paid: %w", bill.ID, markErr)
	}
	now := time.Now()
	st.bill.Status = domain.BillStatusPaid
	st.bill.TransactionID = &transaction.ID
	st.bill.UpdatedAt = now
	return nil
}

func (s *BillService) debitPayment(
	ctx context.Context,
	tx uow.TX,
	args PayBillArgs,
	amount decimal.Decimal,
	st *payBillState,
) error {
	userRepo, urErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if urErr != nil {
		return urErr //nolint:wrapcheck
	}
	// строка users блокируется первой при любом способе оплаты: тот же
	// порядок пользователь-затем-счет, что и в переводах
	user, userLockErr := userRepo.LockByID(ctx, args.UserID)
	if userLockErr != nil {
		return fmt.Errorf("payer: %w", userLockErr)
	}

	if args.PaymentMethod == domain.TransferSourceWallet {
		st.balanceBefore = user.WalletBalance
		if err := s.mutator.walletDelta(ctx, tx, user.ID, amount.Neg(), user.WalletBalance); err != nil {
			return err
		}
		st.balanceAfter = st.balanceBefore.Sub(amount)
		return nil
	}

	accountRepo, arErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if arErr != nil {
		return arErr //nolint:wrapcheck
	}
	account, acctLockErr := accountRepo.LockByID(ctx, args.AccountID, args.UserID)
	if acctLockErr != nil {
		return fmt.Errorf("payment account: %w", acctLockErr)
	}
	st.account = account
	st.balanceBefore = account.Balance
	if err := s.mutator.accountDelta(ctx, tx, account, amount.Neg()); err != nil {
		return err
	}
	st.balanceAfter = st.balanceBefore.Sub(amount)
	return nil
}

func (s *BillService) recordPayment(
	ctx context.Context,
	tx uow.TX,
	args PayBillArgs,
	notes string,
	st *payBillState,
) (*domain.Transaction, error) {
	transactionRepo, txnErr :=
		uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if txnErr != nil {
		return nil, txnErr //nolint:wrapcheck
	}

	description := fmt.Sprintf("%s bill payment to %s", st.bill.BillType, st.bill.ProviderName)
	if notes != "" {
		description += ": " + notes
	}

	paymentMethod := "Wallet"
	fromAccount := "Wallet"
	if args.PaymentMethod == domain.TransferSourceAccount {
		paymentMethod = "Bank Transfer"
		fromAccount = st.account.BankName
	}

	transaction, createErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		UserID:          args.UserID,
		Type:            "Bill Payment",
		Amount:          st.bill.Amount,
		PaymentMethod:   paymentMethod,
		Status:          "Success",
		Description:     description,
		ReferenceNumber: GenerateTransactionReference(),
		FromAccount:     fromAccount,
		ToAccount:       st.bill.ProviderName,
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating bill payment ledger row: %w", createErr)
	}
	return transaction, nil
}

func (s *BillService) auditPayment(ctx context.Context, args PayBillArgs, st *payBillState) {
	billID := st.bill.ID
	var err error
	if args.PaymentMethod == domain.TransferSourceWallet {
		_, err = s.txlog.LogBillPaymentWallet(ctx, args.UserID, st.bill.Amount,
			st.bill.ProviderName, &billID, st.balanceBefore, st.balanceAfter)
	} else {
		accountID := st.account.ID
		_, err = s.txlog.LogBillPaymentBank(ctx, args.UserID, st.bill.Amount,
			st.bill.ProviderName, st.account.BankName, &billID, &accountID,
			st.balanceBefore, st.balanceAfter)
	}
	if err != nil {
		s.log.WithError(err).WithField("BillID", st.bill.ID).
			Error("audit log failed for committed bill payment")
	}
}

type CreateBillArgs struct {
	UserID       int64
	ProviderName string
	BillType     string
	Amount       decimal.Decimal
	DueDate      time.Time
}

func (s *BillService) Create(ctx context.Context, args CreateBillArgs) (*domain.Bill, error) {
	if strings.TrimSpace(args.ProviderName) == "" || strings.TrimSpace(args.BillType) == "" {
		return nil, domain.NewValidationError("provider name and bill type are required")
	}
	if !args.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount must be greater than 0")
	}
	bill, err := s.billRepo.Create(ctx, repoargs.CreateBill{
		UserID:       args.UserID,
		ProviderName: strings.TrimSpace(args.ProviderName),
		BillType:     strings.TrimSpace(args.BillType),
		Amount:       args.Amount,
		DueDate:      args.DueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("creating bill: %w", err)
	}
	return bill, nil
}

func (s *BillService) GetByUserID(ctx context.Context, userID int64) ([]domain.Bill, error) {
	bills, err := s.billRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return bills, nil
}

// Update меняет только переданные поля и только у неоплаченного счета.
func (s *BillService) Update(ctx context.Context, billID, userID int64, args repoargs.UpdateBill) (*domain.Bill, error) {
	if args.Amount != nil && !args.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount must be greater than 0")
	}
	bill, err := s.billRepo.Update(ctx, billID, userID, args)
	if err != nil {
		return nil, fmt.Errorf("updating bill %d: %w", billID, err)
	}
	return bill, nil
}

// Delete удаляет счет. Оплаченные счета не удаляются: на них ссылается леджер.
func (s *BillService) Delete(ctx context.Context, billID, userID int64) error {
	if err := s.billRepo.Delete(ctx, billID, userID); err != nil {
		return fmt.Errorf("deleting bill %d: %w", billID, err)
	}
	return nil
}
