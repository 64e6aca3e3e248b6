package grana

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultRepeatCount is the number of occurrences of a recurring series
// when the caller does not specify one.
const DefaultRepeatCount = 12

// Expand turns a user intent into the concrete transactions to record.
// It only constructs records; the Store applies their balance effects.
//
// Single yields one record with a fresh id. InstallmentSplit divides the
// amount into count equal shares, each rounded to 2 decimals on its own:
// the shares of a series may drift from the original amount by up to
// count cents, which is accepted rather than redistributed. Recurring
// repeats the full amount count times. Series record i is dated i months
// after the base date, and only the first record keeps the base status;
// the rest start pending.
//
// When source is a credit card with a closing day, every record gets the
// card id and the invoice month resolved from its own date.
func Expand(base Transaction, mode ScheduleMode, count int, source *Account) []Transaction {
	switch mode {
	case InstallmentSplit:
		if count < 2 {
			count = 2
		}
		return expandSeries(base, count, source, true)
	case Recurring:
		if count < 1 {
			count = DefaultRepeatCount
		}
		return expandSeries(base, count, source, false)
	default:
		t := base.Clone()
		t.ID = uuid.NewString()
		stampCard(&t, source)
		return []Transaction{t}
	}
}

func expandSeries(base Transaction, count int, source *Account, split bool) []Transaction {
	groupID := uuid.NewString()
	share := base.Amount
	if split {
		share = base.Amount.DivRound(count)
	}

	out := make([]Transaction, 0, count)
	for i := 0; i < count; i++ {
		t := base.Clone()
		t.ID = uuid.NewString()
		t.GroupID = groupID
		t.Date = base.Date.AddMonths(i)
		if i > 0 {
			t.Status = Pending
		}
		if split {
			t.Amount = share
			t.Installment = &Installment{Current: i + 1, Total: count}
			t.Description = fmt.Sprintf("%s (%d/%d)", base.Description, i+1, count)
			t.InstallmentID = groupID
		} else {
			t.IsRecurring = true
		}
		stampCard(&t, source)
		out = append(out, t)
	}
	return out
}

// stampCard attaches credit card accrual metadata when the source
// account is a card with a configured closing day.
func stampCard(t *Transaction, source *Account) {
	if source == nil || !source.IsCreditCard() || t.AccountID != source.ID {
		return
	}
	t.CreditCardID = source.ID
	t.InvoiceMonth = InvoiceMonth(t.Date, source.ClosingDay)
}
