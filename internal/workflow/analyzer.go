package workflow

import "time"

// TimeReport summarizes elapsed-vs-expected processing time for a document.
type TimeReport struct {
	ExpectedHours  float64 `json:"expected_hours"`
	SpentHours     float64 `json:"spent_hours"`
	RemainingHours float64 `json:"remaining_hours"`
	Exceeded       bool    `json:"exceeded"`
	Percentage     float64 `json:"percentage"`
	IsApproved     bool    `json:"is_approved"`
	IsRejected     bool    `json:"is_rejected"`
}

// AnalyzeApprovalTime derives processing metrics from the routing ledger.
//
// The clock starts at the first ledger entry (upload date when the ledger is
// empty) and stops at the terminal approval or rejection entry; for in-flight
// documents it runs to the caller-supplied now. Because terminal documents
// anchor the end time in the ledger, the report freezes at the terminal
// instant: recomputing after approval never advances with the wall clock.
func AnalyzeApprovalTime(doc Document, now time.Time) TimeReport {
	expected := doc.ExpectedHours
	if expected <= 0 {
		expected = DefaultExpectedHours
	}

	start := doc.DateUploaded
	if first, ok := doc.History.First(); ok {
		start = first.Timestamp
	}

	status := doc.EffectiveStatus()
	end := now
	switch status {
	case StatusApproved:
		if entry, ok := doc.History.LatestByAction(EntryApproved); ok {
			end = entry.Timestamp
		}
	case StatusRejected:
		if entry, ok := doc.History.LatestByAction(EntryRejected); ok {
			end = entry.Timestamp
		}
	}

	spent := end.Sub(start).Hours()
	if spent < 0 {
		spent = 0
	}

	percentage := spent / expected * 100
	if percentage > 100 {
		percentage = 100
	}

	remaining := expected - spent
	if remaining < 0 {
		remaining = -remaining
	}

	return TimeReport{
		ExpectedHours:  expected,
		SpentHours:     spent,
		RemainingHours: remaining,
		Exceeded:       spent > expected,
		Percentage:     percentage,
		IsApproved:     status == StatusApproved,
		IsRejected:     status == StatusRejected,
	}
}
