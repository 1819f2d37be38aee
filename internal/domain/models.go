package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Username       string
	FullName       string
	Email          string
	PasswordHash   string
	WalletBalance  decimal.Decimal
	AccountBalance decimal.Decimal
}

// DisplayName возвращает имя для показа контрагенту: полное имя,
// иначе username, иначе email.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

type Account struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        int64
	BankName      string
	AccountNumber string
	Balance       decimal.Decimal
	IsPrimary     bool
}

// Transfer неизменяемая запись о переводе между пользователями.
type Transfer struct {
	ID         int64
	CreatedAt  time.Time
	FromUserID int64
	ToUserID   int64
	Amount     decimal.Decimal
	Note       string
}

// Transaction строка легаси-леджера: по одной на пользователя на каждое
// движение средств. Используется для простых списков истории.
type Transaction struct {
	ID              int64
	CreatedAt       time.Time
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

type Bill struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        int64
	ProviderName  string
	BillType      string
	Amount        decimal.Decimal
	DueDate       time.Time
	Status        BillStatusType
	TransactionID *int64
}

// EntityRef типизированная ссылка на источник либо получателя движения средств.
type EntityRef struct {
	Type EntityType
	ID   *int64
	Name string
}

// AuditRecord запись в transaction_history - авторитетная история движения
// средств. Append-only: после создания никогда не меняется и не удаляется.
type AuditRecord struct {
	ID              int64
	CreatedAt       time.Time
	UserID          int64
	Type            AuditType
	Amount          decimal.Decimal
	Source          EntityRef
	Destination     EntityRef
	Description     string
	Category        string
	ReferenceNumber string
	BillID          *int64
	TransferID      *int64
	BalanceBefore   *decimal.Decimal
	BalanceAfter    *decimal.Decimal
	Status          string
}
