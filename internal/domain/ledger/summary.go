package ledger

import "github.com/shopspring/decimal"

// Summary holds the derived income/expense/balance totals of one
// tenant. It is computed on demand and never persisted.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// Summarize reduces a set of typed amounts into totals. Rows typed
// "income" accumulate into TotalIncome; every other row counts as
// expense. The reduction is defined by exclusion on purpose: it matches
// the store contract, which today knows exactly two types.
//
// Summation is commutative, so the result is independent of row order.
// An empty input yields all-zero totals.
func Summarize(rows []TypedAmount) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, row := range rows {
		if row.Type == TypeIncome {
			income = income.Add(row.Amount)
		} else {
			expense = expense.Add(row.Amount)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}
