package specialties_test

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

func newServices() (*specialties.Service, *vets.Service) {
	db := memory.NewDB()
	txm := memory.NewTxManager(db)
	sps := specialties.NewService(memory.NewSpecialtyRepo(db), txm)
	return sps, vets.NewService(memory.NewVetRepo(db), sps, txm)
}

func notFoundCode(t *testing.T, err error) string {
	t.Helper()
	var nf *apierr.NotFoundError
	require.ErrorAs(t, err, &nf)
	return nf.Code.Code
}

func TestResolveIgnoresUnknownAndDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices()

	surgery, err := svc.Create(ctx, specialties.Input{Name: "surgery"})
	require.NoError(t, err)
	radiology, err := svc.Create(ctx, specialties.Input{Name: "radiology"})
	require.NoError(t, err)

	got, err := svc.Resolve(ctx, []int64{radiology.ID, 999, surgery.ID, radiology.ID})
	require.NoError(t, err)
	assert.Equal(t, []specialties.Specialty{surgery, radiology}, got)

	got, err = svc.Resolve(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMissingIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices()

	_, err := svc.GetByID(ctx, 7)
	assert.Equal(t, "ERR-0006", notFoundCode(t, err))

	_, err = svc.Update(ctx, 7, specialties.Input{Name: "x"})
	assert.Equal(t, "ERR-0006", notFoundCode(t, err))

	assert.Equal(t, "ERR-0006", notFoundCode(t, svc.Delete(ctx, 7)))
}

func TestDeleteUnlinksFromVets(t *testing.T) {
	ctx := context.Background()
	svc, vetsSvc := newServices()

	surgery, err := svc.Create(ctx, specialties.Input{Name: "surgery"})
	require.NoError(t, err)
	dentistry, err := svc.Create(ctx, specialties.Input{Name: "dentistry"})
	require.NoError(t, err)

	v, err := vetsSvc.Create(ctx, vets.Input{FirstName: "Rafael", LastName: "Ortega", SpecialtyIDs: []int64{surgery.ID, dentistry.ID}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, surgery.ID))

	got, err := vetsSvc.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []specialties.Specialty{dentistry}, got.Specialties)
}
