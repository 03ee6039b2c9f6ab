package domain

import "context"

// ResolvedIDs carries the foreign keys resolved earlier in the same
// transaction. Nil means the corresponding sub-object was absent or skipped
// and the resume column is written as NULL.
type ResolvedIDs struct {
	CompanyID              *int64
	ParentCompanyID        *int64
	ContactCompanyID       *int64
	ContactParentCompanyID *int64
}

// UpsertStore is the write surface available inside one upsert transaction.
// Implementations are bound to a live transaction handle; nothing written
// through a store is visible outside it until the runner commits.
type UpsertStore interface {
	InsertCompany(ctx context.Context, in *CompanyInput, ref string) (int64, error)
	UpdateCompany(ctx context.Context, id int64, in *CompanyInput) error

	InsertContact(ctx context.Context, in *ContactInput, companyID int64, ref string) (int64, error)
	UpdateContact(ctx context.Context, id int64, in *ContactInput, companyID int64) error

	InsertResume(ctx context.Context, req *UpsertResumeRequest, ids ResolvedIDs) (int64, error)
	// UpdateResume returns the number of affected rows; zero is not an error.
	UpdateResume(ctx context.Context, id int64, req *UpsertResumeRequest, ids ResolvedIDs) (int64, error)

	LatestHistory(ctx context.Context, resumeID int64) (*HistoryEntry, error)
	InsertHistory(ctx context.Context, resumeID, stateID int64) error
}

// TxRunner brackets a unit of work in one pooled connection and one
// transaction: commit on success, rollback on error, release exactly once.
type TxRunner interface {
	InTx(ctx context.Context, fn func(UpsertStore) error) error
}
