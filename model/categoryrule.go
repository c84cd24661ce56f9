package model

import (
	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/pdate"
	"github.com/wrenlabs/budget/record"
)

// Period names the four recurrence periods a CategoryRule can fire on.
// A nil *Period on a rule means "one-shot" (spec §3).
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func (p Period) valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	default:
		return false
	}
}

// CategoryRule is a repeating (or one-shot) spending rule attached to a
// Category (spec §3, §4.3). RepeatN is meaningless when Period is nil but is
// still required to be positive.
type CategoryRule struct {
	Amount    decimal.Decimal `json:"amount"`
	StartDate *pdate.PDate    `json:"startDate"`
	EndDate   *pdate.PDate    `json:"endDate"`
	RepeatN   int             `json:"repeatN"`
	Period    *Period         `json:"period"`
}

// NewCategoryRule constructs a one-shot rule for amount, unbounded in both
// directions. Use the With* options to add dates or turn it into a
// recurring rule.
func NewCategoryRule(amount decimal.Decimal, opts ...func(*CategoryRule)) (CategoryRule, error) {
	r := CategoryRule{Amount: amount, RepeatN: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.CheckInvariants(); err != nil {
		return CategoryRule{}, err
	}
	return r, nil
}

// WithRuleDates bounds the rule to [start, end]; either may be nil.
func WithRuleDates(start, end *pdate.PDate) func(*CategoryRule) {
	return func(r *CategoryRule) {
		r.StartDate = start
		r.EndDate = end
	}
}

// WithRulePeriod turns the rule into a recurring one firing every repeatN
// periods.
func WithRulePeriod(period Period, repeatN int) func(*CategoryRule) {
	return func(r *CategoryRule) {
		r.Period = &period
		r.RepeatN = repeatN
	}
}

// CheckInvariants implements record.Invariant (spec §3: "amount is a finite
// number; repeatN is a positive integer; ... period is one of the four
// values or null"). decimal.Decimal values are always finite, so there is
// nothing to check there.
func (r CategoryRule) CheckInvariants() error {
	if r.RepeatN <= 0 {
		return record.NewInvariantViolation("CategoryRule", "RepeatN", "must be a positive integer")
	}
	if r.Period != nil && !r.Period.valid() {
		return record.NewInvariantViolation("CategoryRule", "Period", "must be day, week, month, year, or null")
	}
	return nil
}

// CountOccurrencesBetween returns how many times the rule fires within the
// inclusive window [dateBegin, dateEnd], per spec §4.3's contract.
func (r CategoryRule) CountOccurrencesBetween(dateBegin, dateEnd pdate.PDate) int {
	if r.StartDate != nil && dateEnd.Before(*r.StartDate) {
		return 0
	}
	if r.EndDate != nil && dateBegin.After(*r.EndDate) {
		return 0
	}
	if r.Period == nil {
		return 1
	}

	firstDay := dateBegin
	if r.StartDate != nil {
		firstDay = *r.StartDate
	}
	lastDay := dateEnd
	if r.EndDate != nil && r.EndDate.Before(dateEnd) {
		lastDay = *r.EndDate
	}

	count := r.countForPeriod(firstDay, lastDay)

	if firstDay.Before(dateBegin) {
		prevDay, err := dateBegin.AddDays(-1)
		if err != nil {
			// dateBegin > firstDay >= pdate's minimum value, so dateBegin-1
			// is always representable; this would be a logic error above.
			panic(err)
		}
		// Recursive call per spec §4.3, anchored at the rule's own start:
		// this window's firstDay equals dateBegin so it terminates in one
		// more level.
		count -= r.CountOccurrencesBetween(firstDay, prevDay)
	}
	return count
}

// countForPeriod computes the occurrence count over [firstDay, lastDay]
// (lastDay >= firstDay) for the rule's period, per the four formulas in
// spec §4.3. It does not apply the dateBegin-anchoring correction.
func (r CategoryRule) countForPeriod(firstDay, lastDay pdate.PDate) int {
	switch *r.Period {
	case PeriodDay:
		daysDiff := lastDay.Value() - firstDay.Value()
		if daysDiff < 0 {
			daysDiff = 0
		}
		return daysDiff/r.RepeatN + 1
	case PeriodWeek:
		daysDiff := lastDay.Value() - firstDay.Value()
		if daysDiff < 0 {
			daysDiff = 0
		}
		return daysDiff/(r.RepeatN*7) + 1
	case PeriodMonth:
		months := 12*(lastDay.Year()-firstDay.Year()) + (lastDay.Month() - firstDay.Month())
		if lastDay.Day() >= firstDay.Day() {
			months++
		}
		return (months-1)/r.RepeatN + 1
	case PeriodYear:
		years := lastDay.Year() - firstDay.Year()
		if lastDay.Month() > firstDay.Month() || (lastDay.Month() == firstDay.Month() && lastDay.Day() >= firstDay.Day()) {
			years++
		}
		return years
	default:
		return 0
	}
}
