package repoargs

import "github.com/shopspring/decimal"

type CreateTransfer struct {
	FromUserID int64
	ToUserID   int64
	Amount     decimal.Decimal
	Note       string
}

type CreateTransaction struct {
	UserID          int64
	Type            string
	Amount          decimal.Decimal
	PaymentMethod   string
	Status          string
	Description     string
	ReferenceNumber string
	FromAccount     string
	ToAccount       string
}
