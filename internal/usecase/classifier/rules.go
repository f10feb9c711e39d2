package classifier

import "github.com/fincast/fincast-backend/internal/domain"

// keywordRule maps a description substring to a category guess with a
// base confidence. Matching is case-insensitive.
type keywordRule struct {
	Keyword        string
	CategoryName   string
	CategoryType   domain.CategoryType
	BaseConfidence float64
}

// keywordRules is the fixed rule table consulted before the learned
// pattern store. Ordering does not matter; all matches are collected
// and ranked by confidence.
var keywordRules = []keywordRule{
	{Keyword: "salary", CategoryName: "Salary", CategoryType: domain.CategoryTypeIncome, BaseConfidence: 90},
	{Keyword: "payroll", CategoryName: "Salary", CategoryType: domain.CategoryTypeIncome, BaseConfidence: 88},
	{Keyword: "dividend", CategoryName: "Investment Income", CategoryType: domain.CategoryTypeIncome, BaseConfidence: 85},
	{Keyword: "interest", CategoryName: "Investment Income", CategoryType: domain.CategoryTypeIncome, BaseConfidence: 70},
	{Keyword: "refund", CategoryName: "Other Income", CategoryType: domain.CategoryTypeIncome, BaseConfidence: 65},

	{Keyword: "rent", CategoryName: "Housing", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 85},
	{Keyword: "mortgage", CategoryName: "Housing", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 88},
	{Keyword: "grocery", CategoryName: "Groceries", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 85},
	{Keyword: "supermarket", CategoryName: "Groceries", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 82},
	{Keyword: "restaurant", CategoryName: "Dining Out", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 80},
	{Keyword: "uber", CategoryName: "Transport", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 75},
	{Keyword: "taxi", CategoryName: "Transport", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 75},
	{Keyword: "fuel", CategoryName: "Transport", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 78},
	{Keyword: "pharmacy", CategoryName: "Health", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 80},
	{Keyword: "electric", CategoryName: "Utilities", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 78},
	{Keyword: "water bill", CategoryName: "Utilities", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 78},
	{Keyword: "internet", CategoryName: "Utilities", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 72},
	{Keyword: "netflix", CategoryName: "Subscriptions", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 85},
	{Keyword: "spotify", CategoryName: "Subscriptions", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 85},
	{Keyword: "insurance", CategoryName: "Insurance", CategoryType: domain.CategoryTypeExpense, BaseConfidence: 80},

	{Keyword: "broker", CategoryName: "Brokerage", CategoryType: domain.CategoryTypeInvestment, BaseConfidence: 75},
	{Keyword: "etf", CategoryName: "Brokerage", CategoryType: domain.CategoryTypeInvestment, BaseConfidence: 78},
	{Keyword: "401k", CategoryName: "Retirement Fund", CategoryType: domain.CategoryTypeInvestment, BaseConfidence: 85},
	{Keyword: "pension", CategoryName: "Retirement Fund", CategoryType: domain.CategoryTypeInvestment, BaseConfidence: 80},
}
