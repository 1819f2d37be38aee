package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

type AccountService struct {
	uow         uow.UOW
	accountRepo AccountRepository
	mutator     *balanceMutator
	txlog       *TxLogService
	log         *logrus.Logger
}

func NewAccountService(u uow.UOW, txlog *TxLogService, log *logrus.Logger) (*AccountService, error) {
	accountRepo, arErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if arErr != nil {
		return nil, arErr //nolint:wrapcheck
	}
	return &AccountService{
		uow:         u,
		accountRepo: accountRepo,
		mutator:     newBalanceMutator(log),
		txlog:       txlog,
		log:         log,
	}, nil
}

type CreateAccountArgs struct {
	UserID         int64
	BankName       string
	AccountNumber  string
	InitialBalance decimal.Decimal
}

// Create добавляет банковский счет. Первый счет пользователя автоматически
// становится основным - на него по умолчанию приходят входящие переводы.
// Проверка "первый ли" и вставка идут в одной транзакции.
func (s *AccountService) Create(ctx context.Context, args CreateAccountArgs) (*domain.Account, error) {
	bankName := strings.TrimSpace(args.BankName)
	accountNumber := strings.TrimSpace(args.AccountNumber)
	if bankName == "" || accountNumber == "" {
		return nil, domain.NewValidationError("bank name and account number are required")
	}
	if args.InitialBalance.IsNegative() {
		return nil, domain.NewValidationError("initial balance cannot be negative")
	}

	var created *domain.Account
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, arErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if arErr != nil {
			return arErr //nolint:wrapcheck
		}
		userRepo, urErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if urErr != nil {
			return urErr //nolint:wrapcheck
		}

		if _, lockErr := userRepo.LockByID(c, args.UserID); lockErr != nil {
			return fmt.Errorf("account owner: %w", lockErr)
		}

		existing, listErr := accountRepo.GetByUserID(c, args.UserID)
		if listErr != nil {
			return fmt.Errorf("listing accounts: %w", listErr)
		}

		account, createErr := accountRepo.Create(c, repoargs.CreateAccount{
			UserID:        args.UserID,
			BankName:      bankName,
			AccountNumber: accountNumber,
			Balance:       args.InitialBalance,
			IsPrimary:     len(existing) == 0,
		})
		if createErr != nil {
			return fmt.Errorf("creating account: %w", createErr)
		}
		created = account

		if resyncErr := userRepo.ResyncAccountBalance(c, args.UserID); resyncErr != nil {
			return fmt.Errorf("resync account balance for user %d: %w", args.UserID, resyncErr)
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("adding bank account: %w", txErr)
	}
	return created, nil
}

func (s *AccountService) GetByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	accounts, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return accounts, nil
}

type accountMoveState struct {
	account       *domain.Account
	balanceBefore decimal.Decimal
	balanceAfter  decimal.Decimal
}

// Deposit зачисляет средства на счет с внешнего рейла.
func (s *AccountService) Deposit(
	ctx context.Context,
	userID, accountID int64,
	amount decimal.Decimal,
) (*domain.Account, error) {
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("amount must be greater than 0")
	}

	var st accountMoveState
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		return s.moveLocked(c, tx, userID, accountID, amount, &st,
			"Deposit",
			func(account *domain.Account) string {
				return fmt.Sprintf("Deposited ₹%s to %s", amount, account.BankName)
			})
	})
	if txErr != nil {
		return nil, fmt.Errorf("depositing to account %d: %w", accountID, txErr)
	}

	accID := st.account.ID
	if _, err := s.txlog.LogAccountDeposit(ctx, userID, amount, st.account.BankName, &accID,
		st.balanceBefore, st.balanceAfter); err != nil {
		s.log.WithError(err).WithField("AccountID", accountID).
			Error("audit log failed for committed deposit")
	}
	st.account.Balance = st.balanceAfter
	return st.account, nil
}

// Withdraw снимает средства со счета. Уход в минус невозможен.
func (s *AccountService) Withdraw(
	ctx context.Context,
	userID, accountID int64,
	amount decimal.Decimal,
) (*domain.Account, error) {
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("amount must be greater than 0")
	}

	var st accountMoveState
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		return s.moveLocked(c, tx, userID, accountID, amount.Neg(), &st,
			"Withdrawal",
			func(account *domain.Account) string {
				return fmt.Sprintf("Withdrew ₹%s from %s", amount, account.BankName)
			})
	})
	if txErr != nil {
		return nil, fmt.Errorf("withdrawing from account %d: %w", accountID, txErr)
	}

	accID := st.account.ID
	if _, err := s.txlog.LogAccountWithdrawal(ctx, userID, amount, st.account.BankName, &accID,
		st.balanceBefore, st.balanceAfter); err != nil {
		s.log.WithError(err).WithField("AccountID", accountID).
			Error("audit log failed for committed withdrawal")
	}
	st.account.Balance = st.balanceAfter
	return st.account, nil
}

func (s *AccountService) moveLocked(
	ctx context.Context,
	tx uow.TX,
	userID, accountID int64,
	delta decimal.Decimal,
	st *accountMoveState,
	ledgerType string,
	describe func(*domain.Account) string,
) error {
	accountRepo, arErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if arErr != nil {
		return arErr //nolint:wrapcheck
	}
	userRepo, urErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if urErr != nil {
		return urErr //nolint:wrapcheck
	}
	transactionRepo, txnRepoErr :=
		uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if txnRepoErr != nil {
		return txnRepoErr //nolint:wrapcheck
	}

	// владелец блокируется раньше счета: ResyncAccountBalance дальше
	// обновит строку users, и без явной блокировки здесь порядок взятия
	// замков разошелся бы с переводами
	if _, ownerLockErr := userRepo.LockByID(ctx, userID); ownerLockErr != nil {
		return fmt.Errorf("account owner: %w", ownerLockErr)
	}

	account, lockErr := accountRepo.LockByID(ctx, accountID, userID)
	if lockErr != nil {
		return fmt.Errorf("account: %w", lockErr)
	}
	st.account = account
	st.balanceBefore = account.Balance

	if err := s.mutator.accountDelta(ctx, tx, account, delta); err != nil {
		return err
	}
	st.balanceAfter = st.balanceBefore.Add(delta)

	fromAccount, toAccount := "External", account.BankName
	if delta.IsNegative() {
		fromAccount, toAccount = account.BankName, "External"
	}
	_, txnErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		UserID:          userID,
		Type:            ledgerType,
		Amount:          delta.Abs(),
		PaymentMethod:   "Bank Transfer",
		Status:          "Success",
		Description:     describe(account),
		ReferenceNumber: GenerateTransactionReference(),
		FromAccount:     fromAccount,
		ToAccount:       toAccount,
	})
	if txnErr != nil {
		return fmt.Errorf("creating account move ledger row: %w", txnErr)
	}
	return nil
}

// Delete удаляет счет с нулевым балансом. Основной счет после удаления
// не переназначается - пользователь выбирает новый сам.
func (s *AccountService) Delete(ctx context.Context, accountID, userID int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, arErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if arErr != nil {
			return arErr //nolint:wrapcheck
		}
		userRepo, urErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if urErr != nil {
			return urErr //nolint:wrapcheck
		}
		if _, ownerLockErr := userRepo.LockByID(c, userID); ownerLockErr != nil {
			return fmt.Errorf("account owner: %w", ownerLockErr)
		}
		if deleteErr := accountRepo.Delete(c, accountID, userID); deleteErr != nil {
			return fmt.Errorf("deleting account %d: %w", accountID, deleteErr)
		}
		if resyncErr := userRepo.ResyncAccountBalance(c, userID); resyncErr != nil {
			return fmt.Errorf("resync account balance for user %d: %w", userID, resyncErr)
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("removing bank account: %w", txErr)
	}
	return nil
}
