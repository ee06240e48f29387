package ledger

import "github.com/shopspring/decimal"

// DefaultCategories returns the built-in category set seeded on first run.
func DefaultCategories() CategorySet {
	def := func(id, name string, t Type) Category {
		return Category{ID: id, Name: name, Type: t, IsDefault: true}
	}
	return CategorySet{
		Expense: []Category{
			def("food", "Food", Expense),
			def("transport", "Transport", Expense),
			def("rent", "Rent", Expense),
			def("shopping", "Shopping", Expense),
			def("bills", "Bills", Expense),
			def("entertainment", "Entertainment", Expense),
			def("health", "Health", Expense),
		},
		Income: []Category{
			def("salary", "Salary", Income),
			def("freelance", "Freelance", Income),
			def("business", "Business", Income),
			def("investment", "Investment", Income),
			def("other", "Other", Income),
		},
	}
}

func DefaultSettings() Settings {
	return Settings{
		Currency:      "INR",
		Theme:         ThemeDark,
		MonthlyBudget: decimal.Zero,
	}
}
