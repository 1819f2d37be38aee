package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

type WalletService struct {
	uow      uow.UOW
	userRepo UserRepository
	mutator  *balanceMutator
	txlog    *TxLogService
	log      *logrus.Logger
}

func NewWalletService(u uow.UOW, txlog *TxLogService, log *logrus.Logger) (*WalletService, error) {
	userRepo, urErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if urErr != nil {
		return nil, urErr //nolint:wrapcheck
	}
	return &WalletService{
		uow:      u,
		userRepo: userRepo,
		mutator:  newBalanceMutator(log),
		txlog:    txlog,
		log:      log,
	}, nil
}

// GetBalances возвращает кешированные балансы кошелька и счетов.
func (s *WalletService) GetBalances(ctx context.Context, userID int64) (*repoargs.UserBalances, error) {
	balances, err := s.userRepo.GetBalances(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return balances, nil
}

// walletMoveState снапшот внутри-транзакционных значений для аудита.
type walletMoveState struct {
	account       *domain.Account
	sourceName    string
	balanceBefore decimal.Decimal
	balanceAfter  decimal.Decimal
}

// FundWallet пополняет кошелек. Внешний платежный рейл симулируется:
// привязанный счет, если указан, дает только имя источника и не дебетуется.
func (s *WalletService) FundWallet(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	accountID int64,
) (*repoargs.UserBalances, error) {
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("amount must be greater than 0")
	}

	var st walletMoveState
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, urErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if urErr != nil {
			return urErr //nolint:wrapcheck
		}
		user, lockErr := userRepo.LockByID(c, userID)
		if lockErr != nil {
			return fmt.Errorf("wallet owner: %w", lockErr)
		}

		st.sourceName = "External Source"
		if accountID != 0 {
			accountRepo, arErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
			if arErr != nil {
				return arErr //nolint:wrapcheck
			}
			account, acctErr := accountRepo.LockByID(c, accountID, userID)
			if acctErr != nil {
				return fmt.Errorf("funding source account: %w", acctErr)
			}
			st.account = account
			st.sourceName = account.BankName
		}

		st.balanceBefore = user.WalletBalance
		if err := s.mutator.walletDelta(c, tx, userID, amount, user.WalletBalance); err != nil {
			return err
		}
		st.balanceAfter = st.balanceBefore.Add(amount)

		transactionRepo, txnRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if txnRepoErr != nil {
			return txnRepoErr //nolint:wrapcheck
		}
		_, txnErr := transactionRepo.Create(c, repoargs.CreateTransaction{
			UserID:          userID,
			Type:            "Deposit",
			Amount:          amount,
			PaymentMethod:   "Wallet",
			Status:          "Success",
			Description:     fmt.Sprintf("Added ₹%s to wallet from %s", amount, st.sourceName),
			ReferenceNumber: GenerateTransactionReference(),
			FromAccount:     st.sourceName,
			ToAccount:       "Wallet",
		})
		if txnErr != nil {
			return fmt.Errorf("creating wallet funding ledger row: %w", txnErr)
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("funding wallet: %w", txErr)
	}

	var srcID *int64
	if st.account != nil {
		srcID = &st.account.ID
	}
	if _, err := s.txlog.LogWalletFund(ctx, userID, amount, st.sourceName, srcID,
		st.balanceBefore, st.balanceAfter); err != nil {
		s.log.WithError(err).WithField("UserID", userID).
			Error("audit log failed for committed wallet funding")
	}

	return s.userRepo.GetBalances(ctx, userID) //nolint:wrapcheck
}

// MoveWalletToAccount переносит средства из кошелька на банковский счет
// пользователя одной транзакцией.
func (s *WalletService) MoveWalletToAccount(
	ctx context.Context,
	userID, accountID int64,
	amount decimal.Decimal,
) (*repoargs.UserBalances, error) {
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("amount must be greater than 0")
	}

	var st walletMoveState
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, urErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if urErr != nil {
			return urErr //nolint:wrapcheck
		}
		accountRepo, arErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if arErr != nil {
			return arErr //nolint:wrapcheck
		}

		user, lockErr := userRepo.LockByID(c, userID)
		if lockErr != nil {
			return fmt.Errorf("wallet owner: %w", lockErr)
		}
		account, acctErr := accountRepo.LockByID(c, accountID, userID)
		if acctErr != nil {
			return fmt.Errorf("destination account: %w", acctErr)
		}
		st.account = account

		st.balanceBefore = user.WalletBalance
		if err := s.mutator.walletDelta(c, tx, userID, amount.Neg(), user.WalletBalance); err != nil {
			return err
		}
		if err := s.mutator.accountDelta(c, tx, account, amount); err != nil {
			return err
		}
		st.balanceAfter = st.balanceBefore.Sub(amount)

		return s.recordWalletMove(c, tx, userID, amount,
			"Wallet", account.BankName,
			fmt.Sprintf("Transferred ₹%s from wallet to %s", amount, account.BankName))
	})
	if txErr != nil {
		return nil, fmt.Errorf("moving wallet to account: %w", txErr)
	}

	accID := st.account.ID
	if _, err := s.txlog.LogWalletToAccount(ctx, userID, amount, st.account.BankName, &accID,
		st.balanceBefore, st.balanceAfter); err != nil {
		s.log.WithError(err).WithField("UserID", userID).
			Error("audit log failed for committed wallet to account move")
	}

	return s.userRepo.GetBalances(ctx, userID) //nolint:wrapcheck
}

// MoveAccountToWallet обратная операция: со счета в кошелек.
func (s *WalletService) MoveAccountToWallet(
	ctx context.Context,
	userID, accountID int64,
	amount decimal.Decimal,
) (*repoargs.UserBalances, error) {
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("amount must be greater than 0")
	}

	var st walletMoveState
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, urErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if urErr != nil {
			return urErr //nolint:wrapcheck
		}
		accountRepo, arErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if arErr != nil {
			return arErr //nolint:wrapcheck
		}

		user, lockErr := userRepo.LockByID(c, userID)
		if lockErr != nil {
			return fmt.Errorf("wallet owner: %w", lockErr)
		}
		account, acctErr := accountRepo.LockByID(c, accountID, userID)
		if acctErr != nil {
			return fmt.Errorf("source account: %w", acctErr)
		}
		st.account = account

		st.balanceBefore = account.Balance
		if err := s.mutator.accountDelta(c, tx, account, amount.Neg()); err != nil {
			return err
		}
		if err := s.mutator.walletDelta(c, tx, userID, amount, user.WalletBalance); err != nil {
			return err
		}
		st.balanceAfter = st.balanceBefore.Sub(amount)

		return s.recordWalletMove(c, tx, userID, amount,
			account.BankName, "Wallet",
			fmt.Sprintf("Transferred ₹%s from %s to wallet", amount, account.BankName))
	})
	if txErr != nil {
		return nil, fmt.Errorf("moving account to wallet: %w", txErr)
	}

	accID := st.account.ID
	if _, err := s.txlog.LogAccountToWallet(ctx, userID, amount, st.account.BankName, &accID,
		st.balanceBefore, st.balanceAfter); err != nil {
		s.log.WithError(err).WithField("UserID", userID).
			Error("audit log failed for committed account to wallet move")
	}

	return s.userRepo.GetBalances(ctx, userID) //nolint:wrapcheck
}

func (s *WalletService) recordWalletMove(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	amount decimal.Decimal,
	fromAccount, toAccount, description string,
) error {
	transactionRepo, txnRepoErr :=
		uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if txnRepoErr != nil {
		return txnRepoErr //nolint:wrapcheck
	}
	_, txnErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		UserID:          userID,
		Type:            "Self Transfer",
		Amount:          amount,
		PaymentMethod:   "Wallet",
		Status:          "Success",
		Description:     description,
		ReferenceNumber: GenerateTransactionReference(),
		FromAccount:     fromAccount,
		ToAccount:       toAccount,
	})
	if txnErr != nil {
		return fmt.Errorf("creating wallet move ledger row: %w", txnErr)
	}
	return nil
}
