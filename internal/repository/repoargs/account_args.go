package repoargs

import "github.com/shopspring/decimal"

type CreateAccount struct {
	UserID        int64
	BankName      string
	AccountNumber string
	Balance       decimal.Decimal
	IsPrimary     bool
}
