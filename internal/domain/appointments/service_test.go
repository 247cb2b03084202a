package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
	"github.com/jeroenvanhattem/vethub/internal/domain/vets"
	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
	"github.com/jeroenvanhattem/vethub/internal/ports/tx"
)

type testRepo struct {
	byID   map[int64]Appointment
	nextID int64
}

func (r *testRepo) List(ctx context.Context) ([]Appointment, error) {
	out := make([]Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID int64) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.PetID == petID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) ListByVet(ctx context.Context, vetID int64) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.VetID == vetID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) Create(ctx context.Context, a Appointment) (Appointment, error) {
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testPets map[int64]pets.Pet

func (p testPets) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	pt, ok := p[id]
	if !ok {
		return pets.Pet{}, apierr.NotFound(apierr.PetNotFound)
	}
	return pt, nil
}

type testVets map[int64]vets.Vet

func (v testVets) GetByID(ctx context.Context, id int64) (vets.Vet, error) {
	vt, ok := v[id]
	if !ok {
		return vets.Vet{}, apierr.NotFound(apierr.VetNotFound)
	}
	return vt, nil
}

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	svc := NewService(
		&testRepo{byID: map[int64]Appointment{}},
		testPets{1: {ID: 1, Name: "Leo"}},
		testVets{1: {ID: 1, FirstName: "James", LastName: "Carter"}},
		tx.Passthrough,
	)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func notFoundCode(t *testing.T, err error) string {
	t.Helper()
	var nf *apierr.NotFoundError
	require.ErrorAs(t, err, &nf)
	return nf.Code.Code
}

func TestCreate_DefaultsToScheduled(t *testing.T) {
	svc := newTestService()

	a, err := svc.Create(context.Background(), CreateInput{
		ScheduledAt: fixedNow.Add(24 * time.Hour),
		Reason:      "checkup",
		PetID:       1,
		VetID:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, a.Status)
	assert.Equal(t, "Leo", a.PetName)
	assert.Equal(t, "James", a.VetFirstName)
	assert.Equal(t, "Carter", a.VetLastName)
}

func TestCreate_RejectsPastAndBadStatus(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		ScheduledAt: fixedNow,
		Reason:      "checkup",
		Status:      "LOST",
		PetID:       1,
		VetID:       1,
	})

	var ve *apierr.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Violations, 2)
	assert.Equal(t, "SCHEDULED_DATE_TIME_NOT_IN_FUTURE", ve.Violations[0].Code)
	assert.Equal(t, "STATUS_INVALID_VALUE", ve.Violations[1].Code)
}

func TestCreate_PetCheckedBeforeVet(t *testing.T) {
	svc := newTestService()
	in := CreateInput{ScheduledAt: fixedNow.Add(time.Hour), Reason: "x", PetID: 9, VetID: 9}

	_, err := svc.Create(context.Background(), in)
	assert.Equal(t, "ERR-0003", notFoundCode(t, err))

	in.PetID = 1
	_, err = svc.Create(context.Background(), in)
	assert.Equal(t, "ERR-0005", notFoundCode(t, err))
}

func TestCancelAndComplete_AnyTransition(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{ScheduledAt: fixedNow.Add(time.Hour), Reason: "x", Status: StatusCompleted, PetID: 1, VetID: 1})
	require.NoError(t, err)

	a, err = svc.Cancel(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, a.Status)

	a, err = svc.Complete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, a.Status)

	_, err = svc.Cancel(ctx, 99)
	assert.Equal(t, "ERR-0009", notFoundCode(t, err))
}

func TestUpdate_AllowsPastDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{ScheduledAt: fixedNow.Add(time.Hour), Reason: "x", PetID: 1, VetID: 1})
	require.NoError(t, err)

	past := fixedNow.AddDate(0, 0, -3)
	a, err = svc.Update(ctx, a.ID, UpdateInput{ScheduledAt: past, Reason: "moved", Status: StatusConfirmed})
	require.NoError(t, err)
	assert.True(t, a.ScheduledAt.Equal(past))
	assert.Equal(t, StatusConfirmed, a.Status)
}

func TestListByParent_MissingParent(t *testing.T) {
	svc := newTestService()

	_, err := svc.ListByPet(context.Background(), 42)
	assert.Equal(t, "ERR-0003", notFoundCode(t, err))

	_, err = svc.ListByVet(context.Background(), 42)
	assert.Equal(t, "ERR-0005", notFoundCode(t, err))

	items, err := svc.ListByVet(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
