package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single money movement, optionally attributed to a budget.
type Transaction struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category,omitempty"`
	BudgetID  string          `json:"budget_id,omitempty"`
	Note      string          `json:"note,omitempty"`
	Date      string          `json:"date"` // YYYY-MM-DD format
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetWeekly  BudgetPeriod = "weekly"
	BudgetYearly  BudgetPeriod = "yearly"
)

// Budget caps spending for a category. Spent is denormalized: it is
// recomputed from the budget's transactions on every finance write.
type Budget struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Period    BudgetPeriod    `json:"period"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
	BillingWeekly  BillingCycle = "weekly"
)

// Subscription is a recurring charge, optionally attributed to a budget.
type Subscription struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	BudgetID        string          `json:"budget_id,omitempty"`
	BillingCycle    BillingCycle    `json:"billing_cycle"`
	NextBillingDate string          `json:"next_billing_date,omitempty"` // YYYY-MM-DD format
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Asset is something owned, counted toward net worth.
type Asset struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Liability is something owed, counted against net worth.
type Liability struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NetWorthSnapshot records total assets, liabilities, and net worth on a
// given date.
type NetWorthSnapshot struct {
	Date        string          `json:"date"` // YYYY-MM-DD format
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Net         decimal.Decimal `json:"net"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FinanceData groups all money tracking for one goal.
type FinanceData struct {
	Transactions  []Transaction      `json:"transactions"`
	Budgets       []Budget           `json:"budgets"`
	Subscriptions []Subscription     `json:"subscriptions"`
	Assets        []Asset            `json:"assets"`
	Liabilities   []Liability        `json:"liabilities"`
	NetWorth      []NetWorthSnapshot `json:"net_worth"`
}
