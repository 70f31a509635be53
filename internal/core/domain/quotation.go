package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LookbackMonths is how far before the reference date a quotation may be dated.
const LookbackMonths = 6

// QuotationRecord is a quotation as delivered by a rate provider. The rate is kept
// as the provider's string; parsing it is the resolver's job.
type QuotationRecord struct {
	CountryCurrency string
	ExchangeRate    string
	RecordDate      time.Time
}

// CurrencyQuotation is a resolved quotation with a parsed, unrounded rate.
type CurrencyQuotation struct {
	CountryCurrency CountryCurrency
	Rate            decimal.Decimal
	RecordDate      time.Time
}

// QuotationQuery selects quotations for one currency whose record date lies in
// [From, To] inclusive. Providers return matches newest first, at most Limit of them.
type QuotationQuery struct {
	CountryCurrency CountryCurrency
	From            time.Time
	To              time.Time
	Limit           int
}

// DateWindow is an inclusive range of calendar dates.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar date of t lies inside the window.
func (w DateWindow) Contains(t time.Time) bool {
	d := NormalizeDate(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// LookbackWindow returns [asOf - 6 calendar months, asOf].
func LookbackWindow(asOf time.Time) DateWindow {
	end := NormalizeDate(asOf)
	return DateWindow{
		Start: SubtractMonths(end, LookbackMonths),
		End:   end,
	}
}
