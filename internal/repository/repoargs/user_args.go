package repoargs

import "github.com/shopspring/decimal"

type CreateUser struct {
	Username     string
	FullName     string
	Email        string
	PasswordHash string
}

// UserBalances снимок кешированных балансов пользователя.
type UserBalances struct {
	WalletBalance  decimal.Decimal
	AccountBalance decimal.Decimal
}
