package trackit

import "sort"

// CategoryTotal is one row of the category breakdown: a category and its
// summed expenditure.
type CategoryTotal struct {
	Category Category
	Total    Amount
}

// Summary holds the computed totals for a transaction list.
type Summary struct {
	TotalEarnings    Amount
	TotalExpenditure Amount
	// Balance is TotalEarnings - TotalExpenditure and may be negative.
	Balance Amount
	// Categories maps each category to its summed expenditure, sorted by
	// summed amount descending; equal sums keep encounter order.
	Categories []CategoryTotal
}

// Aggregate computes the totals and the category breakdown of a transaction
// list. It never fails: an empty list yields zero totals and no categories.
func Aggregate(txs []Transaction) Summary {
	var s Summary

	totals := make(map[Category]Amount)
	var order []Category
	for _, tx := range txs {
		switch tx.Type {
		case Earning:
			s.TotalEarnings = s.TotalEarnings.Add(tx.Amount)
		case Expenditure:
			s.TotalExpenditure = s.TotalExpenditure.Add(tx.Amount)
			if _, seen := totals[tx.Category]; !seen {
				order = append(order, tx.Category)
			}
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}
	s.Balance = s.TotalEarnings.Sub(s.TotalExpenditure)

	s.Categories = make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		s.Categories = append(s.Categories, CategoryTotal{Category: cat, Total: totals[cat]})
	}
	sort.SliceStable(s.Categories, func(i, j int) bool {
		return s.Categories[i].Total.Cmp(s.Categories[j].Total) > 0
	})
	return s
}
