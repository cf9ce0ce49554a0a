package dto

import "github.com/shopspring/decimal"

// Response DTOs for the analytics overview page

type LabelCountResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type MonthBucketResponse struct {
	Month     string          `json:"month"`
	Collected decimal.Decimal `json:"collected"`
	Payments  int             `json:"payments"`
}

type VisitBucketResponse struct {
	Month  string `json:"month"`
	Visits int    `json:"visits"`
}

type RevenueSummaryResponse struct {
	TotalBilled      decimal.Decimal `json:"total_billed"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	Paid             int             `json:"paid"`
	Pending          int             `json:"pending"`
	Partial          int             `json:"partial"`
}

type FollowUpSummaryResponse struct {
	Overdue  int `json:"overdue"`
	DueToday int `json:"due_today"`
	DueSoon  int `json:"due_soon"`
	NextWeek int `json:"next_7_days"`
	Later    int `json:"later"`
}

type AnalyticsOverviewResponse struct {
	PatientCount         int                     `json:"patient_count"`
	VisitCount           int                     `json:"visit_count"`
	PaymentCount         int                     `json:"payment_count"`
	Revenue              RevenueSummaryResponse  `json:"revenue"`
	MonthlyRevenue       []MonthBucketResponse   `json:"monthly_revenue"`
	MonthlyVisits        []VisitBucketResponse   `json:"monthly_visits"`
	TopDiagnoses         []LabelCountResponse    `json:"top_diagnoses"`
	TopComplaints        []LabelCountResponse    `json:"top_complaints"`
	TopChronicConditions []LabelCountResponse    `json:"top_chronic_conditions"`
	FollowUps            FollowUpSummaryResponse `json:"follow_ups"`
}
