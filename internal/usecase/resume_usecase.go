package usecase

import (
	"context"
	"errors"

	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/logger"
	"go-resume-tracker/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type resumeUsecase struct {
	tx       domain.TxRunner
	validate *validator.Validate
}

// NewResumeUsecase creates the resume upsert usecase
func NewResumeUsecase(tx domain.TxRunner, validate *validator.Validate) domain.ResumeUsecase {
	return &resumeUsecase{tx: tx, validate: validate}
}

// Upsert creates or updates a resume together with up to two companies, up
// to two company-gated contacts and the status history, all inside one
// transaction. On any failure the transaction rolls back and nothing from
// the request is persisted.
func (uc *resumeUsecase) Upsert(ctx context.Context, req *domain.UpsertResumeRequest) (*domain.UpsertResumeResult, error) {
	// Request-level validation runs before any connection is acquired.
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	var result *domain.UpsertResumeResult
	err := uc.tx.InTx(ctx, func(s domain.UpsertStore) error {
		res, err := uc.upsertInTx(ctx, s, req)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *resumeUsecase) validateRequest(req *domain.UpsertResumeRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &domain.ValidationError{
				Field:  validation.FieldLabel(fieldErrs[0].Field()),
				Reason: validation.FormatFieldError(fieldErrs[0]),
			}
		}
		return &domain.ValidationError{Field: "request", Reason: err.Error()}
	}
	return nil
}

// upsertInTx runs the ordered pipeline against one transactional store.
// Each step depends on the ids resolved by the previous ones, so the order
// is fixed: companies first, then their gated contacts, then the resume row,
// then history.
func (uc *resumeUsecase) upsertInTx(ctx context.Context, s domain.UpsertStore, req *domain.UpsertResumeRequest) (*domain.UpsertResumeResult, error) {
	var (
		ids domain.ResolvedIDs
		err error
	)

	if ids.CompanyID, err = resolveCompany(ctx, s, req.Company, req.Ref, roleCompany); err != nil {
		return nil, err
	}
	if ids.ParentCompanyID, err = resolveCompany(ctx, s, req.ParentCompany, req.Ref, roleParentCompany); err != nil {
		return nil, err
	}
	if ids.ContactCompanyID, err = resolveContact(ctx, s, req.Contact, ids.CompanyID, req.Ref, roleContact); err != nil {
		return nil, err
	}
	if ids.ContactParentCompanyID, err = resolveContact(ctx, s, req.ParentContact, ids.ParentCompanyID, req.Ref, roleParentContact); err != nil {
		return nil, err
	}

	resumeID, created, err := uc.writeResume(ctx, s, req, ids)
	if err != nil {
		return nil, err
	}

	if err := recordTransition(ctx, s, resumeID, *req.StateID, created); err != nil {
		return nil, err
	}

	return &domain.UpsertResumeResult{
		ResumeID:               resumeID,
		CompanyID:              ids.CompanyID,
		ParentCompanyID:        ids.ParentCompanyID,
		ContactCompanyID:       ids.ContactCompanyID,
		ContactParentCompanyID: ids.ContactParentCompanyID,
		Created:                created,
	}, nil
}

// writeResume inserts or updates the resume row itself. Unlike companies and
// contacts a negative resume id is a hard failure: the request targets a row
// that cannot exist.
func (uc *resumeUsecase) writeResume(ctx context.Context, s domain.UpsertStore, req *domain.UpsertResumeRequest, ids domain.ResolvedIDs) (int64, bool, error) {
	if req.ResumeID.IsInvalid() {
		return 0, false, &domain.ValidationError{Field: "resumeId", Reason: "must not be negative"}
	}

	if target, ok := req.ResumeID.Target(); ok {
		affected, err := s.UpdateResume(ctx, target, req, ids)
		if err != nil {
			return 0, false, &domain.EntityProcessingError{Entity: roleResume, Err: err}
		}
		if affected == 0 {
			// Stale id/ref pair. Committed as success; whether this should
			// be a not-found is a product decision.
			logger.Log.Warn("resume update matched no rows", "resumeId", target, "ref", req.Ref)
		}
		return target, false, nil
	}

	newID, err := s.InsertResume(ctx, req, ids)
	if err != nil {
		return 0, false, &domain.EntityProcessingError{Entity: roleResume, Err: err}
	}
	if newID <= 0 {
		return 0, false, &domain.EntityProcessingError{Entity: roleResume, Err: errMissingGeneratedID}
	}
	return newID, true, nil
}
