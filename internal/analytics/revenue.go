package analytics

import (
	"sort"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// monthBucketLimit is how many trailing year-month buckets views keep
const monthBucketLimit = 6

// PaymentStatusOf is the single classification views use; it delegates to
// the entity so the rule cannot drift between call sites.
func PaymentStatusOf(p *entity.Payment) entity.PaymentStatus {
	return p.Status()
}

// RevenueSummary aggregates a payment set
type RevenueSummary struct {
	TotalBilled      decimal.Decimal
	TotalCollected   decimal.Decimal
	TotalOutstanding decimal.Decimal
	CountByStatus    map[entity.PaymentStatus]int
}

// Revenue sums a payment set. Collected caps each payment at its billed
// amount; outstanding floors each balance at zero.
func Revenue(payments []entity.Payment) RevenueSummary {
	s := RevenueSummary{
		TotalBilled:      decimal.Zero,
		TotalCollected:   decimal.Zero,
		TotalOutstanding: decimal.Zero,
		CountByStatus: map[entity.PaymentStatus]int{
			entity.PaymentStatusPaid:    0,
			entity.PaymentStatusPending: 0,
			entity.PaymentStatusPartial: 0,
		},
	}
	for i := range payments {
		p := &payments[i]
		s.TotalBilled = s.TotalBilled.Add(p.AmountDue)
		s.TotalCollected = s.TotalCollected.Add(p.Collected())
		s.TotalOutstanding = s.TotalOutstanding.Add(p.Balance())
		s.CountByStatus[p.Status()]++
	}
	return s
}

// MonthBucket is one year-month time bucket, keyed as "2006-01"
type MonthBucket struct {
	Month     string
	Collected decimal.Decimal
	Payments  int
}

// MonthlyRevenue groups collected amounts by the month the payment was
// recorded. Buckets come from observed data only, sorted ascending, and only
// the most recent six are kept.
func MonthlyRevenue(payments []entity.Payment) []MonthBucket {
	byMonth := make(map[string]*MonthBucket)
	for i := range payments {
		p := &payments[i]
		key := p.RecordedAt.Format("2006-01")
		b, ok := byMonth[key]
		if !ok {
			b = &MonthBucket{Month: key, Collected: decimal.Zero}
			byMonth[key] = b
		}
		b.Collected = b.Collected.Add(p.Collected())
		b.Payments++
	}
	return lastBuckets(byMonth)
}

// VisitBucket counts visits per year-month
type VisitBucket struct {
	Month  string
	Visits int
}

// MonthlyVisits counts visits per month, ascending, most recent six kept
func MonthlyVisits(visits []entity.Visit) []VisitBucket {
	byMonth := make(map[string]int)
	for i := range visits {
		byMonth[visits[i].VisitDate.Format("2006-01")]++
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > monthBucketLimit {
		keys = keys[len(keys)-monthBucketLimit:]
	}

	out := make([]VisitBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, VisitBucket{Month: k, Visits: byMonth[k]})
	}
	return out
}

func lastBuckets(byMonth map[string]*MonthBucket) []MonthBucket {
	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > monthBucketLimit {
		keys = keys[len(keys)-monthBucketLimit:]
	}

	out := make([]MonthBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byMonth[k])
	}
	return out
}
