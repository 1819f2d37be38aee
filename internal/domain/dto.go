package domain

// TransferSourceType источник списания при переводе: кошелек или банковский счет.
type TransferSourceType string

const (
	TransferSourceWallet  TransferSourceType = "wallet"
	TransferSourceAccount TransferSourceType = "account"
)

func (t TransferSourceType) Valid() bool {
	return t == TransferSourceWallet || t == TransferSourceAccount
}

type BillStatusType string

const (
	BillStatusPending BillStatusType = "Pending"
	BillStatusPaid    BillStatusType = "Paid"
)

// AuditType закрытый набор видов движения средств в transaction_history.
type AuditType string

const (
	AuditWalletFund        AuditType = "WALLET_FUND"
	AuditWalletTransfer    AuditType = "WALLET_TRANSFER"
	AuditSelfTransfer      AuditType = "SELF_TRANSFER"
	AuditAccountTransfer   AuditType = "ACCOUNT_TRANSFER"
	AuditBillPaymentWallet AuditType = "BILL_PAYMENT_WALLET"
	AuditBillPaymentBank   AuditType = "BILL_PAYMENT_BANK"
	AuditAccountDeposit    AuditType = "ACCOUNT_DEPOSIT"
	AuditAccountWithdrawal AuditType = "ACCOUNT_WITHDRAWAL"
	AuditWalletToAccount   AuditType = "WALLET_TO_ACCOUNT"
	AuditAccountToWallet   AuditType = "ACCOUNT_TO_WALLET"
)

type EntityType string

const (
	EntityWallet      EntityType = "WALLET"
	EntityBankAccount EntityType = "BANK_ACCOUNT"
	EntityUser        EntityType = "USER"
	EntityBill        EntityType = "BILL"
	EntityExternal    EntityType = "EXTERNAL"
)

const (
	AuditStatusSuccess   = "SUCCESS"
	AuditCategoryDefault = "GENERAL"
)
