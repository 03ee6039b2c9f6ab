package domain

import (
	"context"
	"time"
)

// Resume is a stored job-application record. Ref scopes every row to the
// owning account and is immutable after creation; updates are always
// filtered by resumeId AND ref.
type Resume struct {
	ResumeID               int64     `json:"resumeId"`
	Ref                    string    `json:"ref"`
	Position               string    `json:"position"`
	StateID                int64     `json:"stateId"`
	Link                   *string   `json:"link,omitempty"`
	Comment                *string   `json:"comment,omitempty"`
	CompanyID              *int64    `json:"companyId,omitempty"`
	ParentCompanyID        *int64    `json:"parentCompanyId,omitempty"`
	ContactCompanyID       *int64    `json:"contactCompanyId,omitempty"`
	ContactParentCompanyID *int64    `json:"contactParentCompanyId,omitempty"`
	Created                time.Time `json:"created"`
}

// UpsertResumeRequest is the input of the upsert workflow. Ref never comes
// from the request body; the delivery layer stamps it from the
// authenticated caller. StateID is a pointer because zero is a legal state:
// only an absent value is rejected.
type UpsertResumeRequest struct {
	ResumeID UpsertID `json:"resumeId"`
	Ref      string   `json:"-" validate:"required"`
	Position string   `json:"position" validate:"required"`
	StateID  *int64   `json:"stateId" validate:"required"`
	Link     *string  `json:"link"`
	Comment  *string  `json:"comment"`

	Company       *CompanyInput `json:"company"`
	ParentCompany *CompanyInput `json:"parentCompany"`
	Contact       *ContactInput `json:"contact"`
	ParentContact *ContactInput `json:"parentContact"`
}

// UpsertResumeResult reports the ids resolved inside the transaction. A nil
// id means the corresponding sub-object was absent or skipped.
type UpsertResumeResult struct {
	ResumeID               int64  `json:"resumeId"`
	CompanyID              *int64 `json:"companyId"`
	ParentCompanyID        *int64 `json:"parentCompanyId"`
	ContactCompanyID       *int64 `json:"contactCompanyId"`
	ContactParentCompanyID *int64 `json:"contactParentCompanyId"`
	Created                bool   `json:"created"`
}

// ResumeUsecase defines business logic for resume records
type ResumeUsecase interface {
	// Upsert creates or updates a resume together with its companies,
	// contacts and status history, atomically.
	Upsert(ctx context.Context, req *UpsertResumeRequest) (*UpsertResumeResult, error)
}
