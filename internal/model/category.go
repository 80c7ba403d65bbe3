package model

// TransactionType identifies whether a transaction adds to or subtracts from a
// sheet's balance. The amount itself is always stored positive; the sign is
// carried by the type.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[TransactionType]bool{
	TypeIncome: true, TypeExpense: true,
}

// Category is one value from the fixed, closed category set. The set is
// partitioned into expense and income categories; CategoryOther is the only
// member of both partitions.
type Category string

const (
	CategoryFood          Category = "Food & Dining"
	CategoryTransport     Category = "Transportation"
	CategoryHousing       Category = "Housing"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health & Wellness"
	CategoryShopping      Category = "Shopping"
	CategoryPersonalCare  Category = "Personal Care"
	CategoryEducation     Category = "Education"

	CategorySalary      Category = "Salary"
	CategoryBusiness    Category = "Business"
	CategoryInvestments Category = "Investments"
	CategoryGifts       Category = "Gifts"

	CategoryOther Category = "Other"
)

// ExpenseCategories is the ordered set of categories offered for expense
// transactions. The order is the order presented to clients.
var ExpenseCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryHousing,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealth,
	CategoryShopping,
	CategoryPersonalCare,
	CategoryEducation,
	CategoryOther,
}

// IncomeCategories is the ordered set of categories offered for income
// transactions.
var IncomeCategories = []Category{
	CategorySalary,
	CategoryBusiness,
	CategoryInvestments,
	CategoryGifts,
	CategoryOther,
}

// IsValidForType reports whether cat belongs to the category subset matching
// transactionType. CategoryOther satisfies both types.
func (c Category) IsValidForType(transactionType TransactionType) bool {
	for _, cat := range CategoriesForType(transactionType) {
		if cat == c {
			return true
		}
	}
	return false
}

// CategoriesForType returns the fixed ordered category set for the given
// transaction type. Returns nil for an unknown type.
func CategoriesForType(transactionType TransactionType) []Category {
	switch transactionType {
	case TypeExpense:
		return ExpenseCategories
	case TypeIncome:
		return IncomeCategories
	default:
		return nil
	}
}

// NormalizeExpenseCategory validates an externally suggested category against
// the expense partition and substitutes CategoryOther on mismatch. Used when
// accepting AI-sourced category suggestions, where receipts are always forced
// to type expense.
func NormalizeExpenseCategory(suggested Category) Category {
	if suggested.IsValidForType(TypeExpense) {
		return suggested
	}
	return CategoryOther
}
