package pettypes_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeroenvanhattem/vethub/internal/adapters/storage/memory"
	"github.com/jeroenvanhattem/vethub/internal/domain/owners"
	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
	"github.com/jeroenvanhattem/vethub/internal/domain/pettypes"
	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
)

func notFoundCode(t *testing.T, err error) string {
	t.Helper()
	var nf *apierr.NotFoundError
	require.ErrorAs(t, err, &nf)
	return nf.Code.Code
}

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	svc := pettypes.NewService(memory.NewPetTypeRepo(db), memory.NewTxManager(db))

	cat, err := svc.Create(ctx, pettypes.Input{Name: "cat"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, pettypes.Input{Name: "dog"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, cat.ID, pettypes.Input{Name: "lizard"})
	require.NoError(t, err)
	assert.Equal(t, cat.ID, updated.ID)

	got, err := svc.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "lizard", got.Name)

	require.NoError(t, svc.Delete(ctx, cat.ID))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "dog", all[0].Name)
}

func TestMissingIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	svc := pettypes.NewService(memory.NewPetTypeRepo(db), memory.NewTxManager(db))

	_, err := svc.GetByID(ctx, 42)
	assert.Equal(t, "ERR-0004", notFoundCode(t, err))

	_, err = svc.Update(ctx, 42, pettypes.Input{Name: "x"})
	assert.Equal(t, "ERR-0004", notFoundCode(t, err))

	err = svc.Delete(ctx, 42)
	assert.Equal(t, "ERR-0004", notFoundCode(t, err))
}

func TestDeleteInUseIsInternalError(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	txm := memory.NewTxManager(db)

	svc := pettypes.NewService(memory.NewPetTypeRepo(db), txm)
	ownersSvc := owners.NewService(memory.NewOwnerRepo(db), txm)
	petsSvc := pets.NewService(memory.NewPetRepo(db), ownersSvc, svc, txm)

	cat, err := svc.Create(ctx, pettypes.Input{Name: "cat"})
	require.NoError(t, err)
	george, err := ownersSvc.Create(ctx, &owners.CreateInput{FirstName: "George", LastName: "Franklin"})
	require.NoError(t, err)
	_, err = petsSvc.Create(ctx, george.ID, pets.Input{Name: "Leo", BirthDate: time.Date(2020, 9, 7, 0, 0, 0, 0, time.UTC), TypeID: cat.ID})
	require.NoError(t, err)

	err = svc.Delete(ctx, cat.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, memory.ErrPetTypeInUse)
	assert.False(t, apierr.IsNotFound(err))

	_, err = svc.GetByID(ctx, cat.ID)
	assert.NoError(t, err)
}
