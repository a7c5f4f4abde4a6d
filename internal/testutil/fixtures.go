package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"budgetapp/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestTransaction returns a valid transaction with a unique id and title.
func NewTestTransaction(txType models.TransactionType, category models.CategoryType, amount int64, date string) models.Transaction {
	n := nextID()
	return models.Transaction{
		ID:       fmt.Sprintf("tx-%d", n),
		Amount:   decimal.NewFromInt(amount),
		Type:     txType,
		Category: category,
		Title:    fmt.Sprintf("Test Transaction %d", n),
		Date:     models.MustParseDate(date),
		Time:     "12:00",
	}
}

// Expense returns an expense fixture.
func Expense(category models.CategoryType, amount int64, date string) models.Transaction {
	return NewTestTransaction(models.TransactionTypeExpense, category, amount, date)
}

// Income returns an income fixture categorized as income.
func Income(amount int64, date string) models.Transaction {
	return NewTestTransaction(models.TransactionTypeIncome, models.CategoryIncome, amount, date)
}

// ErrInjected is the failure returned by FaultyKV.
var ErrInjected = errors.New("injected storage failure")

// FaultyKV is an in-memory KeyValue whose operations can be made to fail.
type FaultyKV struct {
	mu         sync.Mutex
	data       map[string]string
	FailGet    bool
	FailSet    bool
	FailRemove bool
	// BeforeSet runs before every Set with the mutex released, letting tests
	// interleave other operations between a read and its write.
	BeforeSet func()
}

// NewFaultyKV returns an empty, healthy FaultyKV.
func NewFaultyKV() *FaultyKV {
	return &FaultyKV{data: map[string]string{}}
}

// Get implements storage.KeyValue.
func (f *FaultyKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailGet {
		return "", false, ErrInjected
	}
	v, ok := f.data[key]
	return v, ok, nil
}

// Set implements storage.KeyValue.
func (f *FaultyKV) Set(_ context.Context, key, value string) error {
	if hook := f.BeforeSet; hook != nil {
		hook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSet {
		return ErrInjected
	}
	f.data[key] = value
	return nil
}

// Remove implements storage.KeyValue.
func (f *FaultyKV) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailRemove {
		return ErrInjected
	}
	delete(f.data, key)
	return nil
}

// Put stores a raw value, bypassing failure flags.
func (f *FaultyKV) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}
