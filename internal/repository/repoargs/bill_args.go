package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBill struct {
	UserID       int64
	ProviderName string
	BillType     string
	Amount       decimal.Decimal
	DueDate      time.Time
}

// UpdateBill nil-поля не меняются. Обновлять можно только неоплаченный счет.
type UpdateBill struct {
	ProviderName *string
	Amount       *decimal.Decimal
	DueDate      *time.Time
}
