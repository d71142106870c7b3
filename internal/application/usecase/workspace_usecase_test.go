package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/application/usecase"
	"github.com/scannercafe/sync-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Registro de workspaces
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_AltaNueva(t *testing.T) {
	uc := usecase.NewWorkspaceUseCase(newFakeWorkspaceRepo(), nil)

	out, err := uc.Register(context.Background(), dto.RegisterWorkspaceRequest{
		BusinessName: "Café Central", SyncKey: "key-1",
	})
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.True(t, out.Created, "una key nueva debe crear el workspace")
	assert.Equal(t, "Café Central", out.Workspace.Business)
}

func TestRegister_IdempotenteMismoNegocio(t *testing.T) {
	uc := usecase.NewWorkspaceUseCase(newFakeWorkspaceRepo(), nil)
	in := dto.RegisterWorkspaceRequest{BusinessName: "Café Central", SyncKey: "key-1"}

	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	// Reenvío del mismo registro: éxito sin crear nada.
	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.False(t, out.Created, "registrar dos veces la misma key no crea otro workspace")
}

func TestRegister_KeyTomadaPorOtroNegocio(t *testing.T) {
	uc := usecase.NewWorkspaceUseCase(newFakeWorkspaceRepo(), nil)

	_, err := uc.Register(context.Background(), dto.RegisterWorkspaceRequest{
		BusinessName: "Café Central", SyncKey: "key-1",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterWorkspaceRequest{
		BusinessName: "Otro Negocio", SyncKey: "key-1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"una key registrada bajo otro negocio debe ser acceso denegado")
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc := usecase.NewWorkspaceUseCase(newFakeWorkspaceRepo(), nil)

	_, err := uc.Register(context.Background(), dto.RegisterWorkspaceRequest{SyncKey: "key-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterWorkspaceRequest{BusinessName: "Café"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CarreraDeRegistroConcurrente(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	uc := usecase.NewWorkspaceUseCase(repo, nil)

	// Otro proceso registró la key entre el check y el insert.
	_, err := uc.Register(context.Background(), dto.RegisterWorkspaceRequest{
		BusinessName: "Café Central", SyncKey: "key-1",
	})
	require.NoError(t, err)
	repo.failCreateWith = domain.ErrDuplicate

	out, err := uc.Register(context.Background(), dto.RegisterWorkspaceRequest{
		BusinessName: "Café Central", SyncKey: "key-1",
	})
	require.NoError(t, err, "la carrera con el mismo negocio debe resolverse como idempotente")
	assert.False(t, out.Created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de sync keys
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_KeyVacia(t *testing.T) {
	uc := usecase.NewWorkspaceUseCase(newFakeWorkspaceRepo(), nil)

	_, err := uc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingSyncKey)
}

func TestResolve_KeyDesconocida(t *testing.T) {
	uc := usecase.NewWorkspaceUseCase(newFakeWorkspaceRepo(), nil)

	_, err := uc.Resolve(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_PueblaElCache(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	cache := newFakeWorkspaceCache()
	uc := usecase.NewWorkspaceUseCase(repo, cache)

	_, err := uc.Register(context.Background(), dto.RegisterWorkspaceRequest{
		BusinessName: "Café Central", SyncKey: "key-1",
	})
	require.NoError(t, err)

	ws, err := uc.Resolve(context.Background(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, "Café Central", ws.Business)
	assert.Equal(t, 1, cache.sets, "el primer resolve debe poblar el caché")

	_, err = uc.Resolve(context.Background(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits, "el segundo resolve debe salir del caché")
	assert.Equal(t, 1, cache.sets, "un hit no reescribe la entrada")
}
