package model

import (
	"math"
)

// Policy bundles the fixed lending rules. It is injected once at construction;
// nothing reads these knobs at call time.
type Policy struct {
	LoanPeriodDays int     `yaml:"loanPeriodDays" envconfig:"LOAN_PERIOD_DAYS" default:"14"`
	MaxLoans       int     `yaml:"maxLoans" envconfig:"MAX_LOANS" default:"5"`
	DailyRate      float64 `yaml:"dailyRate" envconfig:"LATE_FEE_DAILY_RATE" default:"0.5"`
	EscalatedRate  float64 `yaml:"escalatedRate" envconfig:"LATE_FEE_ESCALATED_RATE" default:"1.0"`
	EscalationDays int     `yaml:"escalationDays" envconfig:"LATE_FEE_ESCALATION_DAYS" default:"7"`
	MaxFee         float64 `yaml:"maxFee" envconfig:"LATE_FEE_MAX" default:"15"`
	MaxRefund      float64 `yaml:"maxRefund" envconfig:"REFUND_MAX" default:"15"`
}

func DefaultPolicy() Policy {
	return Policy{
		LoanPeriodDays: 14,
		MaxLoans:       5,
		DailyRate:      0.5,
		EscalatedRate:  1.0,
		EscalationDays: 7,
		MaxFee:         15,
		MaxRefund:      15,
	}
}

// LateFee computes the tiered overdue fee: the first EscalationDays overdue
// days bill at DailyRate, every further day at EscalatedRate, capped at MaxFee.
func (p Policy) LateFee(daysOverdue int) float64 {
	if daysOverdue <= 0 {
		return 0
	}
	base := min(daysOverdue, p.EscalationDays)
	fee := float64(base)*p.DailyRate + float64(max(0, daysOverdue-p.EscalationDays))*p.EscalatedRate
	fee = math.Min(fee, p.MaxFee)
	return math.Round(fee*100) / 100
}
