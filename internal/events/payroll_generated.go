package events

import "time"

const PayrollSnapshotsGeneratedTopic = "payroll.snapshots.generated.v1"

type PayrollSnapshotsGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Succeeded   int       `json:"succeeded"`
	Failed      int       `json:"failed"`
	GeneratedBy string    `json:"generated_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
