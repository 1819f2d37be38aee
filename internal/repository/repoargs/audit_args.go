package repoargs

import (
	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateAuditRecord полная форма записи в transaction_history.
// ReferenceNumber генерируется на уровне сервиса, не репозитория.
type CreateAuditRecord struct {
	UserID          int64
	Type            domain.AuditType
	Amount          decimal.Decimal
	Source          domain.EntityRef
	Destination     domain.EntityRef
	Description     string
	Category        string
	ReferenceNumber string
	BillID          *int64
	TransferID      *int64
	BalanceBefore   *decimal.Decimal
	BalanceAfter    *decimal.Decimal
	Status          string
}
