package usecase

import (
	"context"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/analytics"
	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"
	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
	"github.com/ahmadeq/test-clinic-demo/internal/store"

	"github.com/sirupsen/logrus"
)

type AnalyticsUsecase interface {
	Overview(ctx context.Context) (*dto.AnalyticsOverviewResponse, error)
}

type analyticsUsecase struct {
	clinic *store.Store
	log    *logrus.Logger
	now    func() time.Time
}

// AnalyticsOption configures an AnalyticsUsecase
type AnalyticsOption func(*analyticsUsecase)

// WithAnalyticsClock overrides the clock the follow-up counts are relative to
func WithAnalyticsClock(now func() time.Time) AnalyticsOption {
	return func(u *analyticsUsecase) {
		u.now = now
	}
}

func NewAnalyticsUsecase(clinic *store.Store, log *logrus.Logger, opts ...AnalyticsOption) AnalyticsUsecase {
	u := &analyticsUsecase{clinic: clinic, log: log, now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Overview recomputes every aggregate from the raw collections on each call
func (u *analyticsUsecase) Overview(ctx context.Context) (*dto.AnalyticsOverviewResponse, error) {
	state := u.clinic.Snapshot()

	revenue := analytics.Revenue(state.Payments)
	resp := &dto.AnalyticsOverviewResponse{
		PatientCount: len(state.Patients),
		VisitCount:   len(state.Visits),
		PaymentCount: len(state.Payments),
		Revenue: dto.RevenueSummaryResponse{
			TotalBilled:      revenue.TotalBilled,
			TotalCollected:   revenue.TotalCollected,
			TotalOutstanding: revenue.TotalOutstanding,
			Paid:             revenue.CountByStatus[entity.PaymentStatusPaid],
			Pending:          revenue.CountByStatus[entity.PaymentStatusPending],
			Partial:          revenue.CountByStatus[entity.PaymentStatusPartial],
		},
		MonthlyRevenue:       monthBuckets(analytics.MonthlyRevenue(state.Payments)),
		MonthlyVisits:        visitBuckets(analytics.MonthlyVisits(state.Visits)),
		TopDiagnoses:         labelCounts(analytics.TopLabels(analytics.DiagnosisFrequencies(state.Visits), 5)),
		TopComplaints:        labelCounts(analytics.TopLabels(analytics.ComplaintFrequencies(state.Visits), 5)),
		TopChronicConditions: labelCounts(analytics.TopLabels(analytics.ChronicConditionFrequencies(state.Patients), 5)),
	}

	for _, f := range analytics.UpcomingFollowUps(state.Visits, u.now()) {
		switch f.Bucket {
		case analytics.FollowUpOverdue:
			resp.FollowUps.Overdue++
		case analytics.FollowUpDueToday:
			resp.FollowUps.DueToday++
		case analytics.FollowUpDueSoon:
			resp.FollowUps.DueSoon++
		case analytics.FollowUpNextWeek:
			resp.FollowUps.NextWeek++
		default:
			resp.FollowUps.Later++
		}
	}

	return resp, nil
}

func labelCounts(counts []analytics.LabelCount) []dto.LabelCountResponse {
	out := make([]dto.LabelCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.LabelCountResponse{Label: c.Label, Count: c.Count})
	}
	return out
}

func monthBuckets(buckets []analytics.MonthBucket) []dto.MonthBucketResponse {
	out := make([]dto.MonthBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.MonthBucketResponse{Month: b.Month, Collected: b.Collected, Payments: b.Payments})
	}
	return out
}

func visitBuckets(buckets []analytics.VisitBucket) []dto.VisitBucketResponse {
	out := make([]dto.VisitBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.VisitBucketResponse{Month: b.Month, Visits: b.Visits})
	}
	return out
}
