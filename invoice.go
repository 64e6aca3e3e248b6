package grana

import "github.com/grana-fin/grana/date"

// InvoiceMonth maps a credit card purchase date to the "YYYY-MM" label
// of the statement it bills into. Purchases on or after the closing day
// belong to the next month's statement.
//
// The month step goes through date.AddMonths, so a closing day larger
// than the month's length (say 31 in February) rolls over through
// calendar arithmetic instead of clamping.
func InvoiceMonth(d date.Date, closingDay int) string {
	if d.Day() >= closingDay {
		d = d.AddMonths(1)
	}
	return date.MonthKey(d)
}
