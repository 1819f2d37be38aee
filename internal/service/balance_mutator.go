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

// balanceMutator применяет знаковые дельты к балансам кошельков и счетов.
// Все мутации идут строго через транзакционные репозитории (tx), под уже
// взятыми блокировками строк. Дебет выполняется защищенным апдейтом:
// конкурентное списание не уведет баланс в минус, даже если предварительная
// проверка остатка прошла по уже устаревшему значению.
type balanceMutator struct {
	log *logrus.Logger
}

func newBalanceMutator(log *logrus.Logger) *balanceMutator {
	return &balanceMutator{log: log}
}

// walletDelta применяет дельту к кошельку пользователя. available - остаток,
// прочитанный под блокировкой строки users; по нему формируется ошибка
// недостатка средств. Зеркальная таблица wallets обновляется best-effort:
// ее ошибка логируется и не прерывает основную мутацию.
func (m *balanceMutator) walletDelta(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	delta decimal.Decimal,
	available decimal.Decimal,
) error {
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return userRepoErr //nolint:wrapcheck
	}

	if delta.IsNegative() && available.LessThan(delta.Neg()) {
		return domain.NewInsufficientFundsError(domain.TransferSourceWallet, available)
	}

	applied, applyErr := userRepo.ApplyWalletDelta(ctx, userID, delta)
	if applyErr != nil {
		return fmt.Errorf("wallet delta for user %d: %w", userID, applyErr)
	}
	if !applied {
		return domain.NewInsufficientFundsError(domain.TransferSourceWallet, available)
	}

	m.mirrorDelta(ctx, tx, userID, delta)
	return nil
}

// accountDelta применяет дельту к балансу счета и пересчитывает кешированный
// account_balance владельца по сумме его счетов.
func (m *balanceMutator) accountDelta(
	ctx context.Context,
	tx uow.TX,
	account *domain.Account,
	delta decimal.Decimal,
) error {
	accountRepo, accountRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accountRepoErr != nil {
		return accountRepoErr //nolint:wrapcheck
	}
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return userRepoErr //nolint:wrapcheck
	}

	if delta.IsNegative() && account.Balance.LessThan(delta.Neg()) {
		return domain.NewInsufficientFundsError(domain.TransferSourceAccount, account.Balance)
	}

	applied, applyErr := accountRepo.ApplyDelta(ctx, account.ID, delta)
	if applyErr != nil {
		return fmt.Errorf("account delta for account %d: %w", account.ID, applyErr)
	}
	if !applied {
		return domain.NewInsufficientFundsError(domain.TransferSourceAccount, account.Balance)
	}

	if resyncErr := userRepo.ResyncAccountBalance(ctx, account.UserID); resyncErr != nil {
		return fmt.Errorf("resync account balance for user %d: %w", account.UserID, resyncErr)
	}
	return nil
}

func (m *balanceMutator) mirrorDelta(ctx context.Context, tx uow.TX, userID int64, delta decimal.Decimal) {
	mirrorRepo, mirrorRepoErr :=
		uow.GetAs[WalletMirrorRepository](tx, uow.RepositoryName(repoargs.WalletMirrorRepoName))
	if mirrorRepoErr != nil {
		m.log.WithError(mirrorRepoErr).Warn("wallets mirror repo unavailable, skipping")
		return
	}
	if err := mirrorRepo.ApplyDelta(ctx, userID, delta); err != nil {
		// зеркало не источник истины, основную мутацию не откатываем
		m.log.WithError(err).WithField("UserID", userID).Warn("wallets mirror update skipped")
	}
}
