package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts serialize as plain JSON numbers, matching the wire contract
// of the API.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType classifies a transaction as money in or money out.
// The sign of a transaction is carried by its type, never by a negative
// amount.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the known transaction types
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single income or expense entry owned by one
// tenant. Transactions are immutable once created; there are no update
// or delete operations.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TenantID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenantId"`
	Type        TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Date        Date            `gorm:"type:date;not null" json:"date"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null" json:"createdBy"`
	CreatedAt   time.Time       `gorm:"not null;default:now()" json:"createdAt"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// TypedAmount is the projection used by the summary aggregator: the
// transaction type and amount of one row, nothing else.
type TypedAmount struct {
	Type   TransactionType
	Amount decimal.Decimal
}
