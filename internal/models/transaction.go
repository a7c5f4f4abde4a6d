package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/uuid"
)

func init() {
	// Stored and served payloads carry amount as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

// TimeLayout is the display form of Transaction.Time.
const TimeLayout = "15:04"

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionTypes lists every transaction type.
var TransactionTypes = []TransactionType{TransactionTypeIncome, TransactionTypeExpense}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// CategoryType is the fixed transaction category enumeration
type CategoryType string

const (
	CategoryFood          CategoryType = "food"
	CategoryTransport     CategoryType = "transport"
	CategoryBills         CategoryType = "bills"
	CategoryShopping      CategoryType = "shopping"
	CategoryEntertainment CategoryType = "entertainment"
	CategoryHealth        CategoryType = "health"
	CategoryHousing       CategoryType = "housing"
	CategoryOther         CategoryType = "other"
	CategoryIncome        CategoryType = "income"
)

// ExpenseCategories are the spending categories, in display order.
var ExpenseCategories = []CategoryType{
	CategoryFood,
	CategoryTransport,
	CategoryBills,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealth,
	CategoryHousing,
	CategoryOther,
}

// Categories is the full enumeration, income last.
var Categories = append(append([]CategoryType{}, ExpenseCategories...), CategoryIncome)

// Valid reports whether c belongs to the enumeration.
func (c CategoryType) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is a single income or expense record. Transactions are never
// mutated after they are admitted to the ledger.
type Transaction struct {
	ID       string          `gorm:"primaryKey" json:"id"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Type     TransactionType `gorm:"not null" json:"type"`
	Category CategoryType    `gorm:"not null" json:"category"`
	Title    string          `gorm:"not null" json:"title"`
	Date     Date            `gorm:"not null;index" json:"date"`
	Time     string          `json:"time"`
	Note     string          `json:"note,omitempty"`
}

// TableName pins the remote table name.
func (Transaction) TableName() string { return "transactions" }

// BeforeCreate generates an ID for records inserted without one.
func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New()
	}
	return nil
}

// Validate checks the structural rules a transaction must satisfy before it
// is admitted to the ledger.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return apperrors.Validation("id", "id is required")
	}
	if t.Amount.IsNegative() {
		return apperrors.Validation("amount", "amount must not be negative")
	}
	if !t.Type.Valid() {
		return apperrors.Validation("type", "type must be income or expense")
	}
	if !t.Category.Valid() {
		return apperrors.Validation("category", "unknown category "+string(t.Category))
	}
	if strings.TrimSpace(t.Title) == "" {
		return apperrors.Validation("title", "title is required")
	}
	if t.Date.IsZero() {
		return apperrors.Validation("date", "date is required")
	}
	return nil
}

// TransactionInput is the raw form input for a new transaction.
type TransactionInput struct {
	Amount   string
	Type     TransactionType
	Category CategoryType
	Title    string
	Date     string // YYYY-MM-DD, defaults to today
	Time     string // HH:MM, defaults to now
	Note     string
}

// NewTransaction builds and validates a transaction from form input, stamping
// a fresh ID. Missing date and time default to now.
func NewTransaction(in TransactionInput, now time.Time) (Transaction, error) {
	amountText := strings.TrimSpace(in.Amount)
	if amountText == "" {
		return Transaction{}, apperrors.Validation("amount", "please enter a valid amount")
	}
	// decimal has no NaN or Inf, so a successful parse is always finite.
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return Transaction{}, apperrors.Validation("amount", "please enter a valid amount")
	}

	date := DateOf(now)
	if in.Date != "" {
		date, err = ParseDate(in.Date)
		if err != nil {
			return Transaction{}, apperrors.Validation("date", err.Error())
		}
	}

	clock := now.Format(TimeLayout)
	if in.Time != "" {
		if _, err := time.Parse(TimeLayout, in.Time); err != nil {
			return Transaction{}, apperrors.Validation("time", "time must be HH:MM")
		}
		clock = in.Time
	}

	tx := Transaction{
		ID:       uuid.New(),
		Amount:   amount,
		Type:     in.Type,
		Category: in.Category,
		Title:    strings.TrimSpace(in.Title),
		Date:     date,
		Time:     clock,
		Note:     strings.TrimSpace(in.Note),
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}
