package vets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeroenvanhattem/vethub/internal/adapters/storage/memory"
	"github.com/jeroenvanhattem/vethub/internal/domain/specialties"
	"github.com/jeroenvanhattem/vethub/internal/domain/vets"
	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
)

type world struct {
	vets                          *vets.Service
	surgery, radiology, dentistry specialties.Specialty
}

func setup(t *testing.T) world {
	t.Helper()
	ctx := context.Background()

	db := memory.NewDB()
	txm := memory.NewTxManager(db)
	sps := specialties.NewService(memory.NewSpecialtyRepo(db), txm)

	w := world{vets: vets.NewService(memory.NewVetRepo(db), sps, txm)}
	var err error
	w.surgery, err = sps.Create(ctx, specialties.Input{Name: "surgery"})
	require.NoError(t, err)
	w.radiology, err = sps.Create(ctx, specialties.Input{Name: "radiology"})
	require.NoError(t, err)
	w.dentistry, err = sps.Create(ctx, specialties.Input{Name: "dentistry"})
	require.NoError(t, err)
	return w
}

func TestCreateSortsSpecialtiesByID(t *testing.T) {
	w := setup(t)
	ctx := context.Background()

	v, err := w.vets.Create(ctx, vets.Input{
		FirstName:    "Linda",
		LastName:     "Douglas",
		SpecialtyIDs: []int64{w.dentistry.ID, w.surgery.ID, 404},
	})
	require.NoError(t, err)

	got, err := w.vets.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []specialties.Specialty{w.surgery, w.dentistry}, got.Specialties)
}

func TestUpdateReplacesSpecialtySet(t *testing.T) {
	w := setup(t)
	ctx := context.Background()

	v, err := w.vets.Create(ctx, vets.Input{FirstName: "Helen", LastName: "Leary", SpecialtyIDs: []int64{w.surgery.ID, w.radiology.ID}})
	require.NoError(t, err)

	updated, err := w.vets.Update(ctx, v.ID, vets.Input{FirstName: "Helena", LastName: "Leary", SpecialtyIDs: []int64{w.dentistry.ID}})
	require.NoError(t, err)
	assert.Equal(t, "Helena", updated.FirstName)
	assert.Equal(t, []specialties.Specialty{w.dentistry}, updated.Specialties)

	got, err := w.vets.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []specialties.Specialty{w.dentistry}, got.Specialties)

	_, err = w.vets.Update(ctx, v.ID, vets.Input{FirstName: "Helena", LastName: "Leary"})
	require.NoError(t, err)
	got, err = w.vets.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Specialties)
}

func TestMissingVetIsNotFound(t *testing.T) {
	w := setup(t)
	ctx := context.Background()

	_, err := w.vets.GetByID(ctx, 99)
	assert.True(t, apierr.IsNotFound(err))

	_, err = w.vets.Update(ctx, 99, vets.Input{FirstName: "A", LastName: "B"})
	var nf *apierr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "ERR-0005", nf.Code.Code)

	require.ErrorAs(t, w.vets.Delete(ctx, 99), &nf)
	assert.Equal(t, "ERR-0005", nf.Code.Code)
}
