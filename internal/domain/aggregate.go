package domain

import (
	"math"
	"sort"
)

// This file holds the derived-aggregate functions: pure, side-effect-free
// reducers over a Trip value. Given the same Trip they always return the
// same result, so callers may recompute freely on every read (trips are
// bounded by their day count) or memoize without changing behavior.

// Total sums the cost of every activity in the day. The sum is commutative:
// reordering activities never changes the result.
func (d Day) Total() float64 {
	var sum float64
	for _, a := range d.Activities {
		sum += a.Cost
	}
	return sum
}

// ActivitiesTotal sums Day.Total over every day of the trip.
func (t *Trip) ActivitiesTotal() float64 {
	var sum float64
	for _, d := range t.Days {
		sum += d.Total()
	}
	return sum
}

// AccommodationCost returns the accommodation cost, or 0 when none is set.
func (t *Trip) AccommodationCost() float64 {
	if t.Accommodation == nil {
		return 0
	}
	return t.Accommodation.Cost
}

// TransportationTotal sums the cost of every transport record.
func (t *Trip) TransportationTotal() float64 {
	var sum float64
	for _, tr := range t.Transportation {
		sum += tr.Cost
	}
	return sum
}

// Total is the full trip cost: activities + accommodation + transportation.
// The identity Total == ActivitiesTotal + AccommodationCost +
// TransportationTotal holds exactly for all inputs.
func (t *Trip) Total() float64 {
	return t.ActivitiesTotal() + t.AccommodationCost() + t.TransportationTotal()
}

// AverageDailyCost is Total divided by the day count. A trip with no days
// is treated as one day, so the result is always defined.
func (t *Trip) AverageDailyCost() float64 {
	days := len(t.Days)
	if days < 1 {
		days = 1
	}
	return t.Total() / float64(days)
}

// ActivityCount returns the number of activities across all days.
func (t *Trip) ActivityCount() int {
	var n int
	for _, d := range t.Days {
		n += len(d.Activities)
	}
	return n
}

// PackedCount returns the number of packing items marked packed.
func (t *Trip) PackedCount() int {
	var n int
	for _, item := range t.PackingList {
		if item.Packed {
			n++
		}
	}
	return n
}

// PackingProgress returns the packed percentage rounded to an integer.
// An empty packing list is 0%, never a division by zero.
func (t *Trip) PackingProgress() int {
	total := len(t.PackingList)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(t.PackedCount()) / float64(total) * 100))
}

// DocumentProgress returns (completed, total) across every document category.
func (t *Trip) DocumentProgress() (completed, total int) {
	for _, items := range t.Documents {
		for _, item := range items {
			total++
			if item.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// CategoryStat is one row of the activity category breakdown.
type CategoryStat struct {
	Category Category
	Count    int
	Cost     float64
}

// BreakdownByCategory groups every activity in every day by category.
// Rows are ordered by count descending; ties break by category name
// ascending so the output is deterministic across runs.
func BreakdownByCategory(t *Trip) []CategoryStat {
	byCat := make(map[Category]*CategoryStat)
	for _, d := range t.Days {
		for _, a := range d.Activities {
			stat, ok := byCat[a.Category]
			if !ok {
				stat = &CategoryStat{Category: a.Category}
				byCat[a.Category] = stat
			}
			stat.Count++
			stat.Cost += a.Cost
		}
	}

	out := make([]CategoryStat, 0, len(byCat))
	for _, stat := range byCat {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// BudgetStatus is the three-way budget classification, plus StatusNone for
// trips with no budget limit set. It is recomputed fresh from the current
// Trip on every evaluation — there is no transition history.
type BudgetStatus string

const (
	// StatusNone means no budget limit has been set.
	StatusNone BudgetStatus = "none"
	// StatusWithin means spending is comfortably under the limit.
	StatusWithin BudgetStatus = "within"
	// StatusWarning means less than 10% of the limit remains.
	StatusWarning BudgetStatus = "warning"
	// StatusOver means spending has exceeded the limit.
	StatusOver BudgetStatus = "over"
)

// BudgetReport is the derived budget position for a trip.
type BudgetReport struct {
	Status    BudgetStatus
	Limit     float64 // 0 when Status == StatusNone
	Spent     float64
	Remaining float64 // negative when over budget
}

// ClassifyBudget derives the budget position from the current trip value.
// Classification: over when remaining < 0, warning when remaining is under
// 10% of the limit, within otherwise.
func ClassifyBudget(t *Trip) BudgetReport {
	spent := t.Total()
	if t.BudgetLimit == nil {
		return BudgetReport{Status: StatusNone, Spent: spent}
	}

	limit := *t.BudgetLimit
	remaining := limit - spent

	status := StatusWithin
	switch {
	case remaining < 0:
		status = StatusOver
	case remaining < limit*0.10:
		status = StatusWarning
	}

	return BudgetReport{Status: status, Limit: limit, Spent: spent, Remaining: remaining}
}
