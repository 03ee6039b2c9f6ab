package postgres

import (
	"context"
	"errors"
	"time"

	"go-resume-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

// upsertStore implements domain.UpsertStore on a live pgx transaction.
// Every method issues exactly one statement.
type upsertStore struct {
	tx pgx.Tx
}

func (s *upsertStore) InsertCompany(ctx context.Context, in *domain.CompanyInput, ref string) (int64, error) {
	query := `
		INSERT INTO companies (name, city, street, houseNumber, postalCode, isRecruiter, ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING companyId`

	var id int64
	err := s.tx.QueryRow(ctx, query,
		in.Name, in.City, in.Street, in.HouseNumber, in.PostalCode, in.IsRecruiter, ref,
	).Scan(&id)
	return id, err
}

// UpdateCompany rewrites the company fields but never its ref: ownership is
// fixed at creation.
func (s *upsertStore) UpdateCompany(ctx context.Context, id int64, in *domain.CompanyInput) error {
	query := `
		UPDATE companies
		SET name = $2, city = $3, street = $4, houseNumber = $5, postalCode = $6, isRecruiter = $7
		WHERE companyId = $1`

	_, err := s.tx.Exec(ctx, query,
		id, in.Name, in.City, in.Street, in.HouseNumber, in.PostalCode, in.IsRecruiter,
	)
	return err
}

func (s *upsertStore) InsertContact(ctx context.Context, in *domain.ContactInput, companyID int64, ref string) (int64, error) {
	query := `
		INSERT INTO contacts (vorname, name, email, anrede, title, zusatzname, phone, mobile, company, ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING contactId`

	var id int64
	err := s.tx.QueryRow(ctx, query,
		in.FirstName, in.Name, in.Email, in.Salutation, in.Title, in.NameSuffix,
		in.Phone, in.Mobile, companyID, ref,
	).Scan(&id)
	return id, err
}

func (s *upsertStore) UpdateContact(ctx context.Context, id int64, in *domain.ContactInput, companyID int64) error {
	query := `
		UPDATE contacts
		SET vorname = $2, name = $3, email = $4, anrede = $5, title = $6, zusatzname = $7,
			phone = $8, mobile = $9, company = $10
		WHERE contactId = $1`

	_, err := s.tx.Exec(ctx, query,
		id, in.FirstName, in.Name, in.Email, in.Salutation, in.Title, in.NameSuffix,
		in.Phone, in.Mobile, companyID,
	)
	return err
}

func (s *upsertStore) InsertResume(ctx context.Context, req *domain.UpsertResumeRequest, ids domain.ResolvedIDs) (int64, error) {
	query := `
		INSERT INTO resumes (ref, position, stateId, link, comment,
			companyId, parentCompanyId, contactCompanyId, contactParentCompanyId, created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING resumeId`

	var id int64
	err := s.tx.QueryRow(ctx, query,
		req.Ref, req.Position, *req.StateID, req.Link, req.Comment,
		ids.CompanyID, ids.ParentCompanyID, ids.ContactCompanyID, ids.ContactParentCompanyID,
		time.Now(),
	).Scan(&id)
	return id, err
}

// UpdateResume is scoped by resumeId AND ref so one account can never touch
// another account's rows. The created timestamp is write-once.
func (s *upsertStore) UpdateResume(ctx context.Context, id int64, req *domain.UpsertResumeRequest, ids domain.ResolvedIDs) (int64, error) {
	query := `
		UPDATE resumes
		SET position = $3, stateId = $4, link = $5, comment = $6,
			companyId = $7, parentCompanyId = $8, contactCompanyId = $9, contactParentCompanyId = $10
		WHERE resumeId = $1 AND ref = $2`

	tag, err := s.tx.Exec(ctx, query,
		id, req.Ref, req.Position, *req.StateID, req.Link, req.Comment,
		ids.CompanyID, ids.ParentCompanyID, ids.ContactCompanyID, ids.ContactParentCompanyID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *upsertStore) LatestHistory(ctx context.Context, resumeID int64) (*domain.HistoryEntry, error) {
	query := `
		SELECT historyId, resumeId, date, stateId
		FROM history
		WHERE resumeId = $1
		ORDER BY date DESC, historyId DESC
		LIMIT 1`

	var entry domain.HistoryEntry
	err := s.tx.QueryRow(ctx, query, resumeID).Scan(
		&entry.HistoryID, &entry.ResumeID, &entry.Date, &entry.StateID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *upsertStore) InsertHistory(ctx context.Context, resumeID, stateID int64) error {
	query := `INSERT INTO history (resumeId, date, stateId) VALUES ($1, $2, $3)`
	_, err := s.tx.Exec(ctx, query, resumeID, time.Now(), stateID)
	return err
}
