package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType classifies a category as income, expense or investment.
type CategoryType string

const (
	CategoryTypeIncome     CategoryType = "INCOME"
	CategoryTypeExpense    CategoryType = "EXPENSE"
	CategoryTypeInvestment CategoryType = "INVESTMENT"
)

// Category is a budgeting category owned by the storage collaborator.
// The engine only reads it.
type Category struct {
	ID   uuid.UUID
	Name string
	Type CategoryType
}

// TransactionRecord is a raw transaction handed to the engine for
// classification and anomaly checks. Amount is signed: positive for
// money in, negative for money out.
type TransactionRecord struct {
	Description  string
	Amount       decimal.Decimal
	Date         time.Time
	CategoryHint *uuid.UUID
}

// MonthlyAggregate is one per-category monthly total supplied by the
// storage boundary. Planned and Actual are non-negative amounts in the
// caller's currency unit.
type MonthlyAggregate struct {
	Month        Month
	CategoryID   uuid.UUID
	CategoryName string
	CategoryType CategoryType
	Planned      decimal.Decimal
	Actual       decimal.Decimal
}
