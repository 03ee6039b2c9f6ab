package domain

import "time"

// HistoryEntry is one row of the append-only status log of a resume.
// Consecutive entries for a resume never repeat the same stateId; the
// tracker guarantees that by construction, there is no database constraint.
type HistoryEntry struct {
	HistoryID int64     `json:"historyId"`
	ResumeID  int64     `json:"resumeId"`
	Date      time.Time `json:"date"`
	StateID   int64     `json:"stateId"`
}
