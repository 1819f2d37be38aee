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

// LogEntry параметры записи аудита. Category и Status при пустых значениях
// получают дефолты (GENERAL / SUCCESS).
type LogEntry struct {
	UserID        int64
	Type          domain.AuditType
	Amount        decimal.Decimal
	Source        domain.EntityRef
	Destination   domain.EntityRef
	Description   string
	Category      string
	BillID        *int64
	TransferID    *int64
	BalanceBefore *decimal.Decimal
	BalanceAfter  *decimal.Decimal
	Status        string
}

// TxLogService пишет записи в transaction_history. Таблица append-only,
// записи после создания не меняются. Пишет на пуле соединений, вне денежной
// транзакции: аудит - best-effort наблюдаемость, не вторая гарантия
// консистентности. Вызывающие потоки логируют его ошибку и продолжают,
// уже закоммиченная мутация баланса при этом не откатывается.
type TxLogService struct {
	uow             uow.UOW
	auditRepo       AuditRepository
	transactionRepo TransactionRepository
	log             *logrus.Logger
}

func NewTxLogService(u uow.UOW, log *logrus.Logger) (*TxLogService, error) {
	auditRepo, auditRepoErr := uow.GetRepositoryAs[AuditRepository](u, uow.RepositoryName(repoargs.AuditRepoName))
	if auditRepoErr != nil {
		return nil, auditRepoErr //nolint:wrapcheck
	}
	transactionRepo, transactionRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr //nolint:wrapcheck
	}
	return &TxLogService{
		uow:             u,
		auditRepo:       auditRepo,
		transactionRepo: transactionRepo,
		log:             log,
	}, nil
}

// LogTransaction создает запись аудита с уникальным референсом в неймспейсе
// TXN_ (отдельном от референсов переводов).
func (s *TxLogService) LogTransaction(ctx context.Context, entry LogEntry) (*domain.AuditRecord, error) {
	category := entry.Category
	if category == "" {
		category = domain.AuditCategoryDefault
	}
	status := entry.Status
	if status == "" {
		status = domain.AuditStatusSuccess
	}

	record, err := s.auditRepo.Create(ctx, repoargs.CreateAuditRecord{
		UserID:          entry.UserID,
		Type:            entry.Type,
		Amount:          entry.Amount,
		Source:          entry.Source,
		Destination:     entry.Destination,
		Description:     entry.Description,
		Category:        category,
		ReferenceNumber: GenerateAuditReference(),
		BillID:          entry.BillID,
		TransferID:      entry.TransferID,
		BalanceBefore:   entry.BalanceBefore,
		BalanceAfter:    entry.BalanceAfter,
		Status:          status,
	})
	if err != nil {
		return nil, fmt.Errorf("logging %s transaction: %w", entry.Type, err)
	}
	return record, nil
}

// GetByUserID возвращает записи аудита по порядку вставки.
func (s *TxLogService) GetByUserID(ctx context.Context, userID int64, limit, offset uint) ([]domain.AuditRecord, error) {
	records, err := s.auditRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return records, nil
}

// GetLedger возвращает строки легаси-леджера пользователя.
func (s *TxLogService) GetLedger(ctx context.Context, userID int64, limit, offset uint) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// Именованные обертки ниже - тонкие фиксированные отображения параметров
// в общую форму записи: единообразные описания и категории для каждого
// вида движения средств.

func (s *TxLogService) LogWalletFund(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	sourceName string,
	accountID *int64,
	balanceBefore, balanceAfter decimal.Decimal,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditWalletFund,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityBankAccount, ID: accountID, Name: sourceName},
		Destination:   domain.EntityRef{Type: domain.EntityWallet, Name: "My Wallet"},
		Description:   fmt.Sprintf("Added ₹%s to wallet from %s", amount, sourceName),
		Category:      "WALLET_MANAGEMENT",
		BalanceBefore: &balanceBefore,
		BalanceAfter:  &balanceAfter,
	})
}

func (s *TxLogService) LogWalletTransfer(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	recipientName string,
	recipientID int64,
	transferID *int64,
	balanceBefore, balanceAfter decimal.Decimal,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditWalletTransfer,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityWallet, Name: "My Wallet"},
		Destination:   domain.EntityRef{Type: domain.EntityUser, ID: &recipientID, Name: recipientName},
		Description:   fmt.Sprintf("Sent ₹%s to %s", amount, recipientName),
		Category:      "TRANSFER",
		TransferID:    transferID,
		BalanceBefore: &balanceBefore,
		BalanceAfter:  &balanceAfter,
	})
}

func (s *TxLogService) LogWalletTransferReceived(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	senderName string,
	senderID int64,
	transferID *int64,
	balanceBefore, balanceAfter decimal.Decimal,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditWalletTransfer,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityUser, ID: &senderID, Name: senderName},
		Destination:   domain.EntityRef{Type: domain.EntityWallet, Name: "My Wallet"},
		Description:   fmt.Sprintf("Received ₹%s from %s", amount, senderName),
		Category:      "TRANSFER",
		TransferID:    transferID,
		BalanceBefore: &balanceBefore,
		BalanceAfter:  &balanceAfter,
	})
}

func (s *TxLogService) LogBillPaymentWallet(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	billProvider string,
	billID *int64,
	balanceBefore, balanceAfter decimal.Decimal,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditBillPaymentWallet,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityWallet, Name: "My Wallet"},
		Destination:   domain.EntityRef{Type: domain.EntityBill, ID: billID, Name: billProvider},
		Description:   fmt.Sprintf("Paid %s bill of ₹%s from wallet", billProvider, amount),
		Category:      "UTILITIES",
		BillID:        billID,
		BalanceBefore: &balanceBefore,
		BalanceAfter:  &balanceAfter,
	})
}

func (s *TxLogService) LogBillPaymentBank(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	billProvider, accountName string,
	billID, accountID *int64,
	balanceBefore, balanceAfter decimal.Decimal,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditBillPaymentBank,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityBankAccount, ID: accountID, Name: accountName},
		Destination:   domain.EntityRef{Type: domain.EntityBill, ID: billID, Name: billProvider},
		Description:   fmt.Sprintf("Paid %s bill of ₹%s from %s", billProvider, amount, accountName),
		Category:      "UTILITIES",
		BillID:        billID,
		BalanceBefore: &balanceBefore,
		BalanceAfter:  &balanceAfter,
	})
}

func (s *TxLogService) LogAccountDeposit(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	accountName string,
	accountID *int64,
	balanceBefore, balanceAfter decimal.Decimal,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditAccountDeposit,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityExternal, Name: "External Deposit"},
		Destination:   domain.EntityRef{Type: domain.EntityBankAccount, ID: accountID, Name: accountName},
		Description:   fmt.Sprintf("Deposited ₹%s to %s", amount, accountName),
		Category:      "ACCOUNT_MANAGEMENT",
		BalanceBefore: &balanceBefore,
		BalanceAfter:  &balanceAfter,
	})
}

func (s *TxLogService) LogAccountWithdrawal(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	accountName string,
	accountID *int64,
	balanceBefore, balanceAfter decimal.Decimal,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditAccountWithdrawal,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityBankAccount, ID: accountID, Name: accountName},
		Destination:   domain.EntityRef{Type: domain.EntityExternal, Name: "Cash Withdrawal"},
		Description:   fmt.Sprintf("Withdrew ₹%s from %s", amount, accountName),
		Category:      "ACCOUNT_MANAGEMENT",
		BalanceBefore: &balanceBefore,
		BalanceAfter:  &balanceAfter,
	})
}

func (s *TxLogService) LogWalletToAccount(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	accountName string,
	accountID *int64,
	walletBalanceBefore, walletBalanceAfter decimal.Decimal,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditWalletToAccount,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityWallet, Name: "My Wallet"},
		Destination:   domain.EntityRef{Type: domain.EntityBankAccount, ID: accountID, Name: accountName},
		Description:   fmt.Sprintf("Transferred ₹%s from wallet to %s", amount, accountName),
		Category:      "TRANSFER",
		BalanceBefore: &walletBalanceBefore,
		BalanceAfter:  &walletBalanceAfter,
	})
}

func (s *TxLogService) LogAccountToWallet(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	accountName string,
	accountID *int64,
	accountBalanceBefore, accountBalanceAfter decimal.Decimal,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditAccountToWallet,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityBankAccount, ID: accountID, Name: accountName},
		Destination:   domain.EntityRef{Type: domain.EntityWallet, Name: "My Wallet"},
		Description:   fmt.Sprintf("Transferred ₹%s from %s to wallet", amount, accountName),
		Category:      "TRANSFER",
		BalanceBefore: &accountBalanceBefore,
		BalanceAfter:  &accountBalanceAfter,
	})
}

func (s *TxLogService) LogSelfTransfer(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	fromAccountName, toAccountName string,
	fromAccountID, toAccountID *int64,
	transferID *int64,
	balanceBefore, balanceAfter decimal.Decimal,
	description string,
) (*domain.AuditRecord, error) {
	return s.LogTransaction(ctx, LogEntry{
		UserID:        userID,
		Type:          domain.AuditSelfTransfer,
		Amount:        amount,
		Source:        domain.EntityRef{Type: domain.EntityBankAccount, ID: fromAccountID, Name: fromAccountName},
		Destination:   domain.EntityRef{Type: domain.EntityBankAccount, ID: toAccountID, Name: toAccountName},
		Description:   description,
		Category:      "TRANSFER",
		TransferID:    transferID,
		BalanceBefore: &balanceBefore,
		BalanceAfter:  &balanceAfter,
	})
}
