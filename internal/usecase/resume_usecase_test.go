package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go-resume-tracker/internal/domain"
	"go-resume-tracker/internal/usecase"
	"go-resume-tracker/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Fake transactional store. Ids are handed out sequentially from seeded
// counters so tests can assert exact id plumbing.

type companyInsert struct {
	in  *domain.CompanyInput
	ref string
}

type companyUpdate struct {
	id int64
	in *domain.CompanyInput
}

type contactInsert struct {
	in        *domain.ContactInput
	companyID int64
	ref       string
}

type contactUpdate struct {
	id        int64
	in        *domain.ContactInput
	companyID int64
}

type resumeUpdate struct {
	id  int64
	ref string
	ids domain.ResolvedIDs
}

type fakeStore struct {
	nextCompanyID int64
	nextContactID int64
	nextResumeID  int64

	companyInserts []companyInsert
	companyUpdates []companyUpdate
	contactInserts []contactInsert
	contactUpdates []contactUpdate
	resumeInserts  []domain.ResolvedIDs
	resumeUpdates  []resumeUpdate
	history        []domain.HistoryEntry

	updateAffected int64

	failInsertCompany error
	failInsertContact error
	failInsertResume  error
	failInsertHistory error
	zeroResumeID      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextCompanyID:  10,
		nextContactID:  100,
		nextResumeID:   7,
		updateAffected: 1,
	}
}

func (s *fakeStore) InsertCompany(_ context.Context, in *domain.CompanyInput, ref string) (int64, error) {
	if s.failInsertCompany != nil {
		return 0, s.failInsertCompany
	}
	id := s.nextCompanyID
	s.nextCompanyID++
	s.companyInserts = append(s.companyInserts, companyInsert{in: in, ref: ref})
	return id, nil
}

func (s *fakeStore) UpdateCompany(_ context.Context, id int64, in *domain.CompanyInput) error {
	s.companyUpdates = append(s.companyUpdates, companyUpdate{id: id, in: in})
	return nil
}

func (s *fakeStore) InsertContact(_ context.Context, in *domain.ContactInput, companyID int64, ref string) (int64, error) {
	if s.failInsertContact != nil {
		return 0, s.failInsertContact
	}
	id := s.nextContactID
	s.nextContactID++
	s.contactInserts = append(s.contactInserts, contactInsert{in: in, companyID: companyID, ref: ref})
	return id, nil
}

func (s *fakeStore) UpdateContact(_ context.Context, id int64, in *domain.ContactInput, companyID int64) error {
	s.contactUpdates = append(s.contactUpdates, contactUpdate{id: id, in: in, companyID: companyID})
	return nil
}

func (s *fakeStore) InsertResume(_ context.Context, _ *domain.UpsertResumeRequest, ids domain.ResolvedIDs) (int64, error) {
	if s.failInsertResume != nil {
		return 0, s.failInsertResume
	}
	if s.zeroResumeID {
		return 0, nil
	}
	id := s.nextResumeID
	s.nextResumeID++
	s.resumeInserts = append(s.resumeInserts, ids)
	return id, nil
}

func (s *fakeStore) UpdateResume(_ context.Context, id int64, req *domain.UpsertResumeRequest, ids domain.ResolvedIDs) (int64, error) {
	s.resumeUpdates = append(s.resumeUpdates, resumeUpdate{id: id, ref: req.Ref, ids: ids})
	return s.updateAffected, nil
}

func (s *fakeStore) LatestHistory(_ context.Context, resumeID int64) (*domain.HistoryEntry, error) {
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].ResumeID == resumeID {
			entry := s.history[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) InsertHistory(_ context.Context, resumeID, stateID int64) error {
	if s.failInsertHistory != nil {
		return s.failInsertHistory
	}
	s.history = append(s.history, domain.HistoryEntry{
		HistoryID: int64(len(s.history) + 1),
		ResumeID:  resumeID,
		Date:      time.Now(),
		StateID:   stateID,
	})
	return nil
}

type storeSnapshot struct {
	companyInserts []companyInsert
	companyUpdates []companyUpdate
	contactInserts []contactInsert
	contactUpdates []contactUpdate
	resumeInserts  []domain.ResolvedIDs
	resumeUpdates  []resumeUpdate
	history        []domain.HistoryEntry
}

func (s *fakeStore) snapshot() storeSnapshot {
	return storeSnapshot{
		companyInserts: append([]companyInsert(nil), s.companyInserts...),
		companyUpdates: append([]companyUpdate(nil), s.companyUpdates...),
		contactInserts: append([]contactInsert(nil), s.contactInserts...),
		contactUpdates: append([]contactUpdate(nil), s.contactUpdates...),
		resumeInserts:  append([]domain.ResolvedIDs(nil), s.resumeInserts...),
		resumeUpdates:  append([]resumeUpdate(nil), s.resumeUpdates...),
		history:        append([]domain.HistoryEntry(nil), s.history...),
	}
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.companyInserts = snap.companyInserts
	s.companyUpdates = snap.companyUpdates
	s.contactInserts = snap.contactInserts
	s.contactUpdates = snap.contactUpdates
	s.resumeInserts = snap.resumeInserts
	s.resumeUpdates = snap.resumeUpdates
	s.history = snap.history
}

// fakeTxRunner mimics the pooled transaction bracket: writes are discarded
// on error, and acquire/release bookkeeping is observable.
type fakeTxRunner struct {
	store      *fakeStore
	acquireErr error

	acquires  int
	releases  int
	commits   int
	rollbacks int
}

func (r *fakeTxRunner) InTx(_ context.Context, fn func(domain.UpsertStore) error) error {
	if r.acquireErr != nil {
		return &domain.ConnectionError{Err: r.acquireErr}
	}
	r.acquires++
	defer func() { r.releases++ }()

	snap := r.store.snapshot()
	if err := fn(r.store); err != nil {
		r.store.restore(snap)
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}

func newUpsertFixture() (*fakeStore, *fakeTxRunner, domain.ResumeUsecase) {
	store := newFakeStore()
	runner := &fakeTxRunner{store: store}
	uc := usecase.NewResumeUsecase(runner, validator.New())
	return store, runner, uc
}

func int64Ptr(v int64) *int64 { return &v }

func baseRequest() *domain.UpsertResumeRequest {
	return &domain.UpsertResumeRequest{
		Ref:      "u1",
		Position: "Dev",
		StateID:  int64Ptr(5),
	}
}

func TestUpsertValidation(t *testing.T) {
	t.Run("Should fail without ref before any connection is acquired", func(t *testing.T) {
		_, runner, uc := newUpsertFixture()
		req := baseRequest()
		req.Ref = ""

		_, err := uc.Upsert(context.Background(), req)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "ref", validationErr.Field)
		assert.Zero(t, runner.acquires)
	})

	t.Run("Should fail without position", func(t *testing.T) {
		_, runner, uc := newUpsertFixture()
		req := baseRequest()
		req.Position = ""

		_, err := uc.Upsert(context.Background(), req)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "position", validationErr.Field)
		assert.Zero(t, runner.acquires)
	})

	t.Run("Should fail without stateId", func(t *testing.T) {
		_, runner, uc := newUpsertFixture()
		req := baseRequest()
		req.StateID = nil

		_, err := uc.Upsert(context.Background(), req)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "stateId", validationErr.Field)
		assert.Zero(t, runner.acquires)
	})

	t.Run("Should accept a zero stateId as defined", func(t *testing.T) {
		_, runner, uc := newUpsertFixture()
		req := baseRequest()
		req.StateID = int64Ptr(0)

		result, err := uc.Upsert(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, 1, runner.commits)
	})
}

func TestUpsertCreatesResumeEndToEnd(t *testing.T) {
	store, runner, uc := newUpsertFixture()

	req := baseRequest()
	req.Company = &domain.CompanyInput{Name: "Acme", City: "Berlin"}

	result, err := uc.Upsert(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.ResumeID)
	assert.True(t, result.Created)
	require.NotNil(t, result.CompanyID)
	assert.Equal(t, int64(10), *result.CompanyID)
	assert.Nil(t, result.ParentCompanyID)
	assert.Nil(t, result.ContactCompanyID)

	// The company insert was scoped by the owner ref.
	require.Len(t, store.companyInserts, 1)
	assert.Equal(t, "u1", store.companyInserts[0].ref)

	// The resolved company id flowed into the resume row.
	require.Len(t, store.resumeInserts, 1)
	require.NotNil(t, store.resumeInserts[0].CompanyID)
	assert.Equal(t, int64(10), *store.resumeInserts[0].CompanyID)

	// Exactly one history row for a brand-new resume.
	require.Len(t, store.history, 1)
	assert.Equal(t, int64(7), store.history[0].ResumeID)
	assert.Equal(t, int64(5), store.history[0].StateID)

	assert.Equal(t, 1, runner.acquires)
	assert.Equal(t, 1, runner.releases)
	assert.Equal(t, 1, runner.commits)
}

func TestHistoryTransitions(t *testing.T) {
	t.Run("Unchanged stateId is idempotent on the log", func(t *testing.T) {
		store, _, uc := newUpsertFixture()
		store.history = []domain.HistoryEntry{
			{HistoryID: 1, ResumeID: 7, Date: time.Now(), StateID: 5},
		}

		req := baseRequest()
		req.ResumeID = domain.UpdateID(7)

		result, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Len(t, store.history, 1)
	})

	t.Run("A new stateId appends exactly one row", func(t *testing.T) {
		store, _, uc := newUpsertFixture()
		store.history = []domain.HistoryEntry{
			{HistoryID: 1, ResumeID: 7, Date: time.Now(), StateID: 5},
		}

		req := baseRequest()
		req.ResumeID = domain.UpdateID(7)
		req.StateID = int64Ptr(6)

		_, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, store.history, 2)
		assert.Equal(t, int64(6), store.history[1].StateID)
	})

	t.Run("An existing resume without history gets a first row", func(t *testing.T) {
		store, _, uc := newUpsertFixture()

		req := baseRequest()
		req.ResumeID = domain.UpdateID(7)

		_, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, store.history, 1)
		assert.Equal(t, int64(5), store.history[0].StateID)
	})

	t.Run("Only the targeted resume's history decides", func(t *testing.T) {
		store, _, uc := newUpsertFixture()
		store.history = []domain.HistoryEntry{
			{HistoryID: 1, ResumeID: 99, Date: time.Now(), StateID: 5},
		}

		req := baseRequest()
		req.ResumeID = domain.UpdateID(7)

		_, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)
		assert.Len(t, store.history, 2)
	})
}

func TestCompanyResolution(t *testing.T) {
	t.Run("Positive companyId updates and flows downstream unchanged", func(t *testing.T) {
		store, _, uc := newUpsertFixture()

		req := baseRequest()
		req.Company = &domain.CompanyInput{CompanyID: domain.UpdateID(42), Name: "Acme"}

		result, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)

		require.Len(t, store.companyUpdates, 1)
		assert.Equal(t, int64(42), store.companyUpdates[0].id)
		assert.Empty(t, store.companyInserts)
		require.NotNil(t, result.CompanyID)
		assert.Equal(t, int64(42), *result.CompanyID)
	})

	t.Run("Negative companyId is skipped without failing", func(t *testing.T) {
		store, runner, uc := newUpsertFixture()

		req := baseRequest()
		req.Company = &domain.CompanyInput{CompanyID: domain.UpdateID(-3), Name: "Acme"}
		req.Contact = &domain.ContactInput{Name: "Mueller"}

		result, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)

		assert.Empty(t, store.companyInserts)
		assert.Empty(t, store.companyUpdates)
		assert.Nil(t, result.CompanyID)
		// The gated contact is skipped too.
		assert.Empty(t, store.contactInserts)
		assert.Equal(t, 1, runner.commits)
	})

	t.Run("Recruiting company resolves independently", func(t *testing.T) {
		store, _, uc := newUpsertFixture()

		req := baseRequest()
		req.ParentCompany = &domain.CompanyInput{Name: "HeadhuntCo", IsRecruiter: true}

		result, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)

		require.NotNil(t, result.ParentCompanyID)
		assert.Equal(t, int64(10), *result.ParentCompanyID)
		assert.Nil(t, result.CompanyID)
		require.Len(t, store.resumeInserts, 1)
		assert.Nil(t, store.resumeInserts[0].CompanyID)
		require.NotNil(t, store.resumeInserts[0].ParentCompanyID)
	})
}

func TestContactGate(t *testing.T) {
	t.Run("Contact is persisted with the company id resolved in this transaction", func(t *testing.T) {
		store, _, uc := newUpsertFixture()

		req := baseRequest()
		req.Company = &domain.CompanyInput{Name: "Acme"}
		req.Contact = &domain.ContactInput{Name: "Mueller", Email: "m@acme.example"}

		result, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)

		require.Len(t, store.contactInserts, 1)
		assert.Equal(t, int64(10), store.contactInserts[0].companyID)
		assert.Equal(t, "u1", store.contactInserts[0].ref)
		require.NotNil(t, result.ContactCompanyID)
		assert.Equal(t, int64(100), *result.ContactCompanyID)
	})

	t.Run("Fully populated contact is never persisted without its company", func(t *testing.T) {
		store, _, uc := newUpsertFixture()

		req := baseRequest()
		req.Contact = &domain.ContactInput{
			Name: "Mueller", FirstName: "Anna", Email: "m@acme.example", Phone: "+4912345678",
		}

		result, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)

		assert.Empty(t, store.contactInserts)
		assert.Empty(t, store.contactUpdates)
		assert.Nil(t, result.ContactCompanyID)
	})

	t.Run("Contact without a name is skipped with a warning, not an error", func(t *testing.T) {
		store, runner, uc := newUpsertFixture()

		req := baseRequest()
		req.Company = &domain.CompanyInput{Name: "Acme"}
		req.Contact = &domain.ContactInput{Email: "nameless@acme.example"}

		result, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)

		assert.Empty(t, store.contactInserts)
		require.NotNil(t, result.CompanyID)
		assert.Equal(t, 1, runner.commits)
	})

	t.Run("Contact update is rebound to its resolved company", func(t *testing.T) {
		store, _, uc := newUpsertFixture()

		req := baseRequest()
		req.Company = &domain.CompanyInput{CompanyID: domain.UpdateID(42), Name: "Acme"}
		req.Contact = &domain.ContactInput{ContactID: domain.UpdateID(17), Name: "Mueller"}

		result, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)

		require.Len(t, store.contactUpdates, 1)
		assert.Equal(t, int64(17), store.contactUpdates[0].id)
		assert.Equal(t, int64(42), store.contactUpdates[0].companyID)
		require.NotNil(t, result.ContactCompanyID)
		assert.Equal(t, int64(17), *result.ContactCompanyID)
	})

	t.Run("Recruiting contact gates on the recruiting company only", func(t *testing.T) {
		store, _, uc := newUpsertFixture()

		req := baseRequest()
		req.ParentCompany = &domain.CompanyInput{Name: "HeadhuntCo", IsRecruiter: true}
		req.Contact = &domain.ContactInput{Name: "Mueller"}       // no primary company
		req.ParentContact = &domain.ContactInput{Name: "Schmidt"} // gated on recruiting company

		result, err := uc.Upsert(context.Background(), req)
		require.NoError(t, err)

		require.Len(t, store.contactInserts, 1)
		assert.Equal(t, "Schmidt", store.contactInserts[0].in.Name)
		assert.Nil(t, result.ContactCompanyID)
		require.NotNil(t, result.ContactParentCompanyID)
	})
}

func TestUpsertFailures(t *testing.T) {
	t.Run("Contact insert failure rolls back everything", func(t *testing.T) {
		store, runner, uc := newUpsertFixture()
		store.failInsertContact = errors.New("duplicate key")

		req := baseRequest()
		req.Company = &domain.CompanyInput{Name: "Acme"}
		req.Contact = &domain.ContactInput{Name: "Mueller"}

		_, err := uc.Upsert(context.Background(), req)

		var entityErr *domain.EntityProcessingError
		require.ErrorAs(t, err, &entityErr)
		assert.Equal(t, "primary contact", entityErr.Entity)

		// Nothing from the request survives the rollback.
		assert.Empty(t, store.companyInserts)
		assert.Empty(t, store.contactInserts)
		assert.Empty(t, store.resumeInserts)
		assert.Empty(t, store.history)

		assert.Equal(t, 1, runner.acquires)
		assert.Equal(t, 1, runner.releases)
		assert.Equal(t, 1, runner.rollbacks)
		assert.Zero(t, runner.commits)
	})

	t.Run("History insert failure rolls back the resume too", func(t *testing.T) {
		store, runner, uc := newUpsertFixture()
		store.failInsertHistory = errors.New("disk full")

		_, err := uc.Upsert(context.Background(), baseRequest())

		var entityErr *domain.EntityProcessingError
		require.ErrorAs(t, err, &entityErr)
		assert.Equal(t, "status history", entityErr.Entity)
		assert.Empty(t, store.resumeInserts)
		assert.Equal(t, 1, runner.rollbacks)
	})

	t.Run("Recruiting company failure names its role", func(t *testing.T) {
		store, _, uc := newUpsertFixture()
		store.failInsertCompany = errors.New("constraint violation")

		req := baseRequest()
		req.ParentCompany = &domain.CompanyInput{Name: "HeadhuntCo"}

		_, err := uc.Upsert(context.Background(), req)

		var entityErr *domain.EntityProcessingError
		require.ErrorAs(t, err, &entityErr)
		assert.Equal(t, "recruiting company", entityErr.Entity)
	})

	t.Run("Missing generated resume id is fatal", func(t *testing.T) {
		store, runner, uc := newUpsertFixture()
		store.zeroResumeID = true

		_, err := uc.Upsert(context.Background(), baseRequest())

		var entityErr *domain.EntityProcessingError
		require.ErrorAs(t, err, &entityErr)
		assert.Equal(t, "resume", entityErr.Entity)
		assert.Equal(t, 1, runner.rollbacks)
	})

	t.Run("Negative resumeId is a hard validation failure", func(t *testing.T) {
		_, runner, uc := newUpsertFixture()

		req := baseRequest()
		req.ResumeID = domain.UpdateID(-1)

		_, err := uc.Upsert(context.Background(), req)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "resumeId", validationErr.Field)
		// Surfaced after rollback, not before the transaction.
		assert.Equal(t, 1, runner.rollbacks)
	})

	t.Run("Connection acquisition failure surfaces directly", func(t *testing.T) {
		store := newFakeStore()
		runner := &fakeTxRunner{store: store, acquireErr: errors.New("pool exhausted")}
		uc := usecase.NewResumeUsecase(runner, validator.New())

		_, err := uc.Upsert(context.Background(), baseRequest())

		var connErr *domain.ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.Zero(t, runner.commits)
	})
}

func TestResumeUpdateZeroRows(t *testing.T) {
	// A stale resumeId/ref pair matches no rows; this is logged and still
	// committed as success.
	store, runner, uc := newUpsertFixture()
	store.updateAffected = 0

	req := baseRequest()
	req.ResumeID = domain.UpdateID(7)

	result, err := uc.Upsert(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ResumeID)
	assert.False(t, result.Created)
	assert.Equal(t, 1, runner.commits)
}

func TestResumeUpdateScope(t *testing.T) {
	store, _, uc := newUpsertFixture()

	req := baseRequest()
	req.ResumeID = domain.UpdateID(7)
	req.Company = &domain.CompanyInput{Name: "Acme"}

	_, err := uc.Upsert(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, store.resumeUpdates, 1)
	assert.Equal(t, int64(7), store.resumeUpdates[0].id)
	assert.Equal(t, "u1", store.resumeUpdates[0].ref)
	require.NotNil(t, store.resumeUpdates[0].ids.CompanyID)
	assert.Equal(t, int64(10), *store.resumeUpdates[0].ids.CompanyID)
}
