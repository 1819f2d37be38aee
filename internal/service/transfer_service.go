package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/pkg/uow"
)

type TransferService struct {
	uow          uow.UOW
	transferRepo TransferRepository
	userRepo     UserRepository
	mutator      *balanceMutator
	txlog        *TxLogService
	log          *logrus.Logger
}

func NewTransferService(u uow.UOW, txlog *TxLogService, log *logrus.Logger) (*TransferService, error) {
	transferRepo, trErr := uow.GetRepositoryAs[TransferRepository](u, uow.RepositoryName(repoargs.TransferRepoName))
	if trErr != nil {
		return nil, trErr //nolint:wrapcheck
	}
	userRepo, urErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if urErr != nil {
		return nil, urErr //nolint:wrapcheck
	}
	return &TransferService{
		uow:          u,
		transferRepo: transferRepo,
		userRepo:     userRepo,
		mutator:      newBalanceMutator(log),
		txlog:        txlog,
		log:          log,
	}, nil
}

type ExecuteTransferArgs struct {
	FromUserID     int64
	ToUserID       int64
	Amount         decimal.Decimal
	Source         domain.TransferSourceType
	Note           string
	IsSelfTransfer bool
	// FromAccountID/ToAccountID обязательны только для self-переводов.
	FromAccountID int64
	ToAccountID   int64
}

type TransferParty struct {
	UserID         int64
	Name           string
	Email          string
	WalletBalance  decimal.Decimal
	AccountBalance decimal.Decimal
}

// TransferResult снимок результата перевода. Единственный способ для
// вызывающей стороны узнать исход - других побочных каналов нет.
type TransferResult struct {
	Reference            string
	TransferID           int64
	Amount               decimal.Decimal
	Source               domain.TransferSourceType
	Note                 string
	DestinationType      domain.TransferSourceType
	DestinationAccountID *int64
	DestinationBankName  string
	TransferDate         time.Time
	Sender               TransferParty
	Recipient            TransferParty
}

// transferState накапливает снятые под блокировками значения по ходу
// транзакции: балансы до/после фиксируются в момент каждой мутации,
// а не пересчитываются задним числом.
type transferState struct {
	sender    *domain.User
	recipient *domain.User

	senderAccount    *domain.Account
	recipientAccount *domain.Account
	destinationType  domain.TransferSourceType

	senderBalanceBefore    decimal.Decimal
	senderBalanceAfter     decimal.Decimal
	recipientBalanceBefore decimal.Decimal
	recipientBalanceAfter  decimal.Decimal

	reference  string
	transferID int64
	createdAt  time.Time

	senderBalances    *repoargs.UserBalances
	recipientBalances *repoargs.UserBalances
}

// ExecuteTransfer выполняет перевод между кошельками/счетами атомарно.
// Вся валидация происходит до открытия транзакции; после начала мутаций
// любая ошибка откатывает транзакцию целиком - частичных списаний не бывает.
// Аудит пишется после коммита, best-effort.
func (s *TransferService) ExecuteTransfer(ctx context.Context, args ExecuteTransferArgs) (*TransferResult, error) {
	if validErr := validateTransferArgs(args); validErr != nil {
		return nil, validErr
	}
	note := strings.TrimSpace(args.Note)

	var st transferState
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		return s.executeLocked(c, tx, args, note, &st)
	})
	if txErr != nil {
		return nil, fmt.Errorf("executing transfer: %w", txErr)
	}

	s.writeAuditTrail(ctx, args, note, &st)

	result := &TransferResult{
		Reference:       st.reference,
		TransferID:      st.transferID,
		Amount:          args.Amount,
		Source:          args.Source,
		Note:            note,
		DestinationType: st.destinationType,
		TransferDate:    st.createdAt,
		Sender: TransferParty{
			UserID:         st.sender.ID,
			Name:           st.sender.DisplayName(),
			Email:          st.sender.Email,
			WalletBalance:  st.senderBalances.WalletBalance,
			AccountBalance: st.senderBalances.AccountBalance,
		},
		Recipient: TransferParty{
			UserID:         st.recipient.ID,
			Name:           st.recipient.DisplayName(),
			Email:          st.recipient.Email,
			WalletBalance:  st.recipientBalances.WalletBalance,
			AccountBalance: st.recipientBalances.AccountBalance,
		},
	}
	if st.recipientAccount != nil {
		result.DestinationAccountID = &st.recipientAccount.ID
		result.DestinationBankName = st.recipientAccount.BankName
	}
	return result, nil
}

func validateTransferArgs(args ExecuteTransferArgs) error {
	if args.FromUserID == 0 || args.ToUserID == 0 {
		return domain.NewValidationError("sender and recipient are required")
	}
	if args.FromUserID == args.ToUserID && !args.IsSelfTransfer {
		return domain.NewValidationError(
			"cannot transfer money to yourself, use self transfer for moving money between your accounts")
	}
	if !args.Source.Valid() {
		return domain.NewValidationError(`source must be either "wallet" or "account"`)
	}
	if args.IsSelfTransfer {
		if args.FromAccountID == 0 || args.ToAccountID == 0 {
			return domain.NewValidationError("source and destination account ids are required for self transfers")
		}
		if args.FromAccountID == args.ToAccountID {
			return domain.NewValidationError("source and destination accounts must differ")
		}
	}
	if !args.Amount.IsPositive() {
		return domain.NewValidationError("amount must be greater than 0")
	}
	return nil
}

func (s *TransferService) executeLocked(
	ctx context.Context,
	tx uow.TX,
	args ExecuteTransferArgs,
	note string,
	st *transferState,
) error {
	userRepo, urErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if urErr != nil {
		return urErr //nolint:wrapcheck
	}

	if lockErr := s.lockParties(ctx, userRepo, args, st); lockErr != nil {
		return lockErr
	}
	if debitErr := s.debitFundingLeg(ctx, tx, args, st); debitErr != nil {
		return debitErr
	}
	if creditErr := s.creditReceivingLeg(ctx, tx, args, st); creditErr != nil {
		return creditErr
	}
	if recordErr := s.recordTransfer(ctx, tx, args, note, st); recordErr != nil {
		return recordErr
	}

	// перечитываем кешированные балансы уже после всех мутаций
	senderBalances, sbErr := userRepo.GetBalances(ctx, st.sender.ID)
	if sbErr != nil {
		return fmt.Errorf("rereading sender balances: %w", sbErr)
	}
	recipientBalances, rbErr := userRepo.GetBalances(ctx, st.recipient.ID)
	if rbErr != nil {
		return fmt.Errorf("rereading recipient balances: %w", rbErr)
	}
	st.senderBalances = senderBalances
	st.recipientBalances = recipientBalances
	return nil
}

// lockParties блокирует строки обоих участников строго по возрастанию
// user_id, независимо от того, кто отправитель. Единый порядок по всем
// потокам исключает дедлок двух встречных переводов между одной парой.
func (s *TransferService) lockParties(
	ctx context.Context,
	userRepo UserRepository,
	args ExecuteTransferArgs,
	st *transferState,
) error {
	if args.FromUserID == args.ToUserID {
		user, err := userRepo.LockByID(ctx, args.FromUserID)
		if err != nil {
			return fmt.Errorf("sender: %w", err)
		}
		st.sender, st.recipient = user, user
		return nil
	}

	firstID, secondID := args.FromUserID, args.ToUserID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	first, firstErr := userRepo.LockByID(ctx, firstID)
	if firstErr != nil {
		return partyLockError(firstID == args.FromUserID, firstErr)
	}
	second, secondErr := userRepo.LockByID(ctx, secondID)
	if secondErr != nil {
		return partyLockError(secondID == args.FromUserID, secondErr)
	}

	if first.ID == args.FromUserID {
		st.sender, st.recipient = first, second
	} else {
		st.sender, st.recipient = second, first
	}
	return nil
}

func partyLockError(isSender bool, err error) error {
	if isSender {
		return fmt.Errorf("sender: %w", err)
	}
	return fmt.Errorf("recipient: %w", err)
}

func (s *TransferService) debitFundingLeg(
	ctx context.Context,
	tx uow.TX,
	args ExecuteTransferArgs,
	st *transferState,
) error {
	if args.Source == domain.TransferSourceWallet {
		st.senderBalanceBefore = st.sender.WalletBalance
		if err := s.mutator.walletDelta(ctx, tx, st.sender.ID, args.Amount.Neg(), st.sender.WalletBalance); err != nil {
			return err
		}
		st.senderBalanceAfter = st.senderBalanceBefore.Sub(args.Amount)
		return nil
	}

	accountRepo, arErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if arErr != nil {
		return arErr //nolint:wrapcheck
	}

	var account *domain.Account
	var lockErr error
	if args.IsSelfTransfer {
		account, lockErr = accountRepo.LockByID(ctx, args.FromAccountID, st.sender.ID)
		if lockErr != nil {
			return fmt.Errorf("source account: %w", lockErr)
		}
	} else {
		account, lockErr = accountRepo.LockPrimary(ctx, st.sender.ID)
		if lockErr != nil {
			if errors.Is(lockErr, domain.ErrRecordNotFound) {
				return domain.NewValidationError("sender does not have a linked bank account")
			}
			return fmt.Errorf("sender primary account: %w", lockErr)
		}
	}

	st.senderAccount = account
	st.senderBalanceBefore = account.Balance
	if err := s.mutator.accountDelta(ctx, tx, account, args.Amount.Neg()); err != nil {
		return err
	}
	st.senderBalanceAfter = st.senderBalanceBefore.Sub(args.Amount)
	return nil
}

// creditReceivingLeg определяет получающую сторону. Self-перевод кредитует
// явно указанный счет. Перевод другому пользователю предпочитает его
// основной банковский счет, кошелек - только при отсутствии счетов:
// эта асимметрия сохранена из исходной системы намеренно.
func (s *TransferService) creditReceivingLeg(
	ctx context.Context,
	tx uow.TX,
	args ExecuteTransferArgs,
	st *transferState,
) error {
	accountRepo, arErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if arErr != nil {
		return arErr //nolint:wrapcheck
	}

	if args.IsSelfTransfer {
		account, lockErr := accountRepo.LockByID(ctx, args.ToAccountID, st.recipient.ID)
		if lockErr != nil {
			return fmt.Errorf("destination account: %w", lockErr)
		}
		st.recipientAccount = account
		st.destinationType = domain.TransferSourceAccount
		st.recipientBalanceBefore = account.Balance
		if err := s.mutator.accountDelta(ctx, tx, account, args.Amount); err != nil {
			return err
		}
		st.recipientBalanceAfter = st.recipientBalanceBefore.Add(args.Amount)
		return nil
	}

	account, lockErr := accountRepo.LockPrimary(ctx, st.recipient.ID)
	switch {
	case lockErr == nil:
		st.recipientAccount = account
		st.destinationType = domain.TransferSourceAccount
		st.recipientBalanceBefore = account.Balance
		if err := s.mutator.accountDelta(ctx, tx, account, args.Amount); err != nil {
			return err
		}
		st.recipientBalanceAfter = st.recipientBalanceBefore.Add(args.Amount)
	case errors.Is(lockErr, domain.ErrRecordNotFound):
		st.destinationType = domain.TransferSourceWallet
		st.recipientBalanceBefore = st.recipient.WalletBalance
		if err := s.mutator.walletDelta(ctx, tx, st.recipient.ID, args.Amount, st.recipient.WalletBalance); err != nil {
			return err
		}
		st.recipientBalanceAfter = st.recipientBalanceBefore.Add(args.Amount)
	default:
		return fmt.Errorf("recipient primary account: %w", lockErr)
	}
	return nil
}

func (s *TransferService) recordTransfer(
	ctx context.Context,
	tx uow.TX,
	args ExecuteTransferArgs,
	note string,
	st *transferState,
) error {
	transferRepo, trErr := uow.GetAs[TransferRepository](tx, uow.RepositoryName(repoargs.TransferRepoName))
	if trErr != nil {
		return trErr //nolint:wrapcheck
	}
	transactionRepo, txnErr :=
		uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if txnErr != nil {
		return txnErr //nolint:wrapcheck
	}

	st.reference = GenerateTransferReference()
	transfer, createErr := transferRepo.Create(ctx, repoargs.CreateTransfer{
		FromUserID: args.FromUserID,
		ToUserID:   args.ToUserID,
		Amount:     args.Amount,
		Note:       note,
	})
	if createErr != nil {
		return fmt.Errorf("creating transfer record: %w", createErr)
	}
	st.transferID = transfer.ID
	st.createdAt = transfer.CreatedAt

	paymentMethod := "Wallet"
	if args.Source == domain.TransferSourceAccount {
		paymentMethod = "Bank Transfer"
	}

	senderDescription, recipientDescription := s.ledgerDescriptions(args, note, st)

	// строка леджера отправителя пишется всегда
	_, senderTxnErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		UserID:          args.FromUserID,
		Type:            ledgerType(args.IsSelfTransfer),
		Amount:          args.Amount,
		PaymentMethod:   paymentMethod,
		Status:          "Success",
		Description:     senderDescription,
		ReferenceNumber: st.reference,
		FromAccount:     s.sourceDisplayName(args, st),
		ToAccount:       s.destinationDisplayName(st),
	})
	if senderTxnErr != nil {
		return fmt.Errorf("creating sender ledger row: %w", senderTxnErr)
	}

	// self-перевод - движение внутри одного пользователя, вторая строка не нужна
	if args.IsSelfTransfer {
		return nil
	}

	_, recipientTxnErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		UserID:          args.ToUserID,
		Type:            "Transfer",
		Amount:          args.Amount,
		PaymentMethod:   paymentMethod,
		Status:          "Success",
		Description:     recipientDescription,
		ReferenceNumber: st.reference,
		FromAccount:     s.sourceDisplayName(args, st),
		ToAccount:       s.destinationDisplayName(st),
	})
	if recipientTxnErr != nil {
		return fmt.Errorf("creating recipient ledger row: %w", recipientTxnErr)
	}
	return nil
}

func ledgerType(isSelf bool) string {
	if isSelf {
		return "Self Transfer"
	}
	return "Transfer"
}

func (s *TransferService) ledgerDescriptions(
	args ExecuteTransferArgs,
	note string,
	st *transferState,
) (string, string) {
	suffix := ""
	if note != "" {
		suffix = ": " + note
	}
	if args.IsSelfTransfer {
		desc := fmt.Sprintf("Self Transfer: ₹%s from %s to %s%s",
			args.Amount, s.sourceDisplayName(args, st), s.destinationDisplayName(st), suffix)
		return desc, desc
	}
	senderDesc := fmt.Sprintf("Sent ₹%s to %s%s", args.Amount, st.recipient.DisplayName(), suffix)
	recipientDesc := fmt.Sprintf("Received ₹%s from %s%s", args.Amount, st.sender.DisplayName(), suffix)
	return senderDesc, recipientDesc
}

func (s *TransferService) sourceDisplayName(args ExecuteTransferArgs, st *transferState) string {
	if args.Source == domain.TransferSourceWallet {
		return "Wallet"
	}
	if st.senderAccount != nil {
		return st.senderAccount.BankName
	}
	return "Bank Account"
}

func (s *TransferService) destinationDisplayName(st *transferState) string {
	if st.destinationType == domain.TransferSourceAccount && st.recipientAccount != nil {
		return st.recipientAccount.BankName
	}
	return "Wallet"
}

// writeAuditTrail пишет записи аудита по каждой затронутой стороне после
// коммита денежной транзакции. Ошибка аудита логируется, но уже
// закоммиченное движение средств не откатывается - осознанный компромисс,
// а не баг.
func (s *TransferService) writeAuditTrail(
	ctx context.Context,
	args ExecuteTransferArgs,
	note string,
	st *transferState,
) {
	suffix := ""
	if note != "" {
		suffix = ": " + note
	}
	transferID := st.transferID

	if args.IsSelfTransfer {
		desc := fmt.Sprintf("Self Transfer: ₹%s from %s to %s%s",
			args.Amount, s.sourceDisplayName(args, st), s.destinationDisplayName(st), suffix)
		var fromID, toID *int64
		if st.senderAccount != nil {
			fromID = &st.senderAccount.ID
		}
		if st.recipientAccount != nil {
			toID = &st.recipientAccount.ID
		}
		_, err := s.txlog.LogSelfTransfer(ctx, args.FromUserID, args.Amount,
			s.sourceDisplayName(args, st), s.destinationDisplayName(st),
			fromID, toID, &transferID, st.senderBalanceBefore, st.senderBalanceAfter, desc)
		if err != nil {
			s.log.WithError(err).WithField("Reference", st.reference).
				Error("audit log failed for committed self transfer")
		}
		return
	}

	s.auditSenderLeg(ctx, args, suffix, st, &transferID)
	s.auditRecipientLeg(ctx, args, suffix, st, &transferID)
}

func (s *TransferService) auditSenderLeg(
	ctx context.Context,
	args ExecuteTransferArgs,
	suffix string,
	st *transferState,
	transferID *int64,
) {
	var err error
	if args.Source == domain.TransferSourceWallet {
		_, err = s.txlog.LogWalletTransfer(ctx, args.FromUserID, args.Amount,
			st.recipient.DisplayName(), args.ToUserID, transferID,
			st.senderBalanceBefore, st.senderBalanceAfter)
	} else {
		var srcID *int64
		if st.senderAccount != nil {
			srcID = &st.senderAccount.ID
		}
		destination := domain.EntityRef{Type: domain.EntityUser, ID: &st.recipient.ID, Name: st.recipient.DisplayName()}
		if st.recipientAccount != nil {
			destination = domain.EntityRef{
				Type: domain.EntityBankAccount,
				ID:   &st.recipientAccount.ID,
				Name: st.recipientAccount.BankName,
			}
		}
		_, err = s.txlog.LogTransaction(ctx, LogEntry{
			UserID:        args.FromUserID,
			Type:          domain.AuditAccountTransfer,
			Amount:        args.Amount,
			Source:        domain.EntityRef{Type: domain.EntityBankAccount, ID: srcID, Name: s.sourceDisplayName(args, st)},
			Destination:   destination,
			Description:   fmt.Sprintf("Sent ₹%s to %s%s", args.Amount, st.recipient.DisplayName(), suffix),
			Category:      "TRANSFER",
			TransferID:    transferID,
			BalanceBefore: &st.senderBalanceBefore,
			BalanceAfter:  &st.senderBalanceAfter,
		})
	}
	if err != nil {
		s.log.WithError(err).WithField("Reference", st.reference).
			Error("audit log failed for committed transfer, sender leg")
	}
}

func (s *TransferService) auditRecipientLeg(
	ctx context.Context,
	args ExecuteTransferArgs,
	suffix string,
	st *transferState,
	transferID *int64,
) {
	var err error
	if st.destinationType == domain.TransferSourceAccount {
		source := domain.EntityRef{Type: domain.EntityWallet, Name: st.sender.DisplayName()}
		if args.Source == domain.TransferSourceAccount && st.senderAccount != nil {
			source = domain.EntityRef{
				Type: domain.EntityBankAccount,
				ID:   &st.senderAccount.ID,
				Name: st.senderAccount.BankName,
			}
		}
		var destID *int64
		if st.recipientAccount != nil {
			destID = &st.recipientAccount.ID
		}
		_, err = s.txlog.LogTransaction(ctx, LogEntry{
			UserID:        args.ToUserID,
			Type:          domain.AuditAccountTransfer,
			Amount:        args.Amount,
			Source:        source,
			Destination:   domain.EntityRef{Type: domain.EntityBankAccount, ID: destID, Name: s.destinationDisplayName(st)},
			Description:   fmt.Sprintf("Received ₹%s from %s%s", args.Amount, st.sender.DisplayName(), suffix),
			Category:      "TRANSFER",
			TransferID:    transferID,
			BalanceBefore: &st.recipientBalanceBefore,
			BalanceAfter:  &st.recipientBalanceAfter,
		})
	} else {
		_, err = s.txlog.LogWalletTransferReceived(ctx, args.ToUserID, args.Amount,
			st.sender.DisplayName(), args.FromUserID, transferID,
			st.recipientBalanceBefore, st.recipientBalanceAfter)
	}
	if err != nil {
		s.log.WithError(err).WithField("Reference", st.reference).
			Error("audit log failed for committed transfer, recipient leg")
	}
}

// FindRecipient ищет пользователя по email либо username, исключая самого
// ищущего: перевод самому себе оформляется как self-перевод.
func (s *TransferService) FindRecipient(ctx context.Context, identifier string, currentUserID int64) (*domain.User, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, domain.NewValidationError("email or username is required")
	}
	user, err := s.userRepo.FindByUsername(ctx, identifier)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if user.ID == currentUserID {
		return nil, fmt.Errorf("recipient lookup: %w", domain.ErrRecordNotFound)
	}
	return user, nil
}

// GetHistory возвращает переводы пользователя (отправленные и полученные).
func (s *TransferService) GetHistory(ctx context.Context, userID int64, limit, offset uint) ([]domain.Transfer, error) {
	transfers, err := s.transferRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transfers, nil
}
