package models

import "github.com/shopspring/decimal"

// BudgetCategory is an advisory spending ceiling for one transaction
// category. Spent is a snapshot taken when the category list is composed; it
// does not follow later ledger changes, and editing Limit never touches it.
type BudgetCategory struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
	Category CategoryType    `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
}

// KVEntry is one row of the local key-value store.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text;not null"`
}

// TableName pins the key-value table name.
func (KVEntry) TableName() string { return "kv_entries" }
