package usecase

import (
	"context"

	"go-resume-tracker/internal/domain"
)

// recordTransition appends one history row per genuine status change.
//
// A brand-new resume always gets exactly one row. For an existing resume the
// latest row decides: no row yet means this is the first transition, an equal
// stateId makes the call a no-op, a different stateId appends a new row.
// Repeated upserts with an unchanged status therefore leave the log alone.
func recordTransition(ctx context.Context, s domain.UpsertStore, resumeID, stateID int64, isNew bool) error {
	if isNew {
		if err := s.InsertHistory(ctx, resumeID, stateID); err != nil {
			return &domain.EntityProcessingError{Entity: roleHistory, Err: err}
		}
		return nil
	}

	last, err := s.LatestHistory(ctx, resumeID)
	if err != nil {
		return &domain.EntityProcessingError{Entity: roleHistory, Err: err}
	}
	if last != nil && last.StateID == stateID {
		return nil
	}

	if err := s.InsertHistory(ctx, resumeID, stateID); err != nil {
		return &domain.EntityProcessingError{Entity: roleHistory, Err: err}
	}
	return nil
}
