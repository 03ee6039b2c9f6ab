package usecase

import (
	"context"
	"errors"

	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/logger"
)

// Entity roles used to contextualize storage failures
const (
	roleCompany       = "primary company"
	roleParentCompany = "recruiting company"
	roleContact       = "primary contact"
	roleParentContact = "recruiting contact"
	roleResume        = "resume"
	roleHistory       = "status history"
)

var errMissingGeneratedID = errors.New("no generated id returned by insert")

// upsertOps binds the insert and update statements for one entity role.
type upsertOps[P any] struct {
	role   string
	insert func(ctx context.Context, p *P) (int64, error)
	update func(ctx context.Context, id int64, p *P) error
}

// resolveEntity turns a payload's identity into a create, an update or a
// skip. The returned id is nil when nothing was persisted. An invalid
// (negative) identity is logged and skipped rather than failing the whole
// transaction; malformed sub-objects never poison the rest of the request.
func resolveEntity[P any](ctx context.Context, payload *P, id domain.UpsertID, ops upsertOps[P]) (*int64, error) {
	if payload == nil {
		return nil, nil
	}

	if id.IsInvalid() {
		logger.Log.Warn("skipping entity with negative id", "entity", ops.role, "id", id.Raw())
		return nil, nil
	}

	if target, ok := id.Target(); ok {
		// Owner ref is immutable after creation; the update statement
		// never rewrites it. The id flows downstream unchanged no matter
		// how many rows were actually affected.
		if err := ops.update(ctx, target, payload); err != nil {
			return nil, &domain.EntityProcessingError{Entity: ops.role, Err: err}
		}
		return &target, nil
	}

	newID, err := ops.insert(ctx, payload)
	if err != nil {
		return nil, &domain.EntityProcessingError{Entity: ops.role, Err: err}
	}
	if newID <= 0 {
		return nil, &domain.EntityProcessingError{Entity: ops.role, Err: errMissingGeneratedID}
	}
	return &newID, nil
}

func resolveCompany(ctx context.Context, s domain.UpsertStore, in *domain.CompanyInput, ref, role string) (*int64, error) {
	var id domain.UpsertID
	if in != nil {
		id = in.CompanyID
	}
	return resolveEntity(ctx, in, id, upsertOps[domain.CompanyInput]{
		role: role,
		insert: func(ctx context.Context, c *domain.CompanyInput) (int64, error) {
			return s.InsertCompany(ctx, c, ref)
		},
		update: func(ctx context.Context, id int64, c *domain.CompanyInput) error {
			return s.UpdateCompany(ctx, id, c)
		},
	})
}

// resolveContact applies the company-dependency gate before the generic
// resolver: a contact is only persisted when its governing company resolved
// to a strictly positive id in this same transaction, and only when the
// required name is present. Both gates skip silently, they never escalate.
func resolveContact(ctx context.Context, s domain.UpsertStore, in *domain.ContactInput, companyID *int64, ref, role string) (*int64, error) {
	if in == nil {
		return nil, nil
	}
	if companyID == nil || *companyID <= 0 {
		logger.Log.Debug("skipping contact without resolved company", "entity", role)
		return nil, nil
	}
	if in.Name == "" {
		logger.Log.Warn("skipping contact without required name", "entity", role, "companyId", *companyID)
		return nil, nil
	}

	owner := *companyID
	return resolveEntity(ctx, in, in.ContactID, upsertOps[domain.ContactInput]{
		role: role,
		insert: func(ctx context.Context, c *domain.ContactInput) (int64, error) {
			return s.InsertContact(ctx, c, owner, ref)
		},
		update: func(ctx context.Context, id int64, c *domain.ContactInput) error {
			return s.UpdateContact(ctx, id, c, owner)
		},
	})
}
