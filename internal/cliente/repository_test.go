package cliente

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
	"github.com/MarvicInmobiliaria/api-crm/internal/interaccion"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Cliente{}, &interaccion.Interaccion{}))
	return db
}

func TestGuardarRechazaEmailDuplicado(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	require.NoError(t, repo.Guardar(db, &Cliente{Name: "Ana", Email: "ana@x.com", Type: TipoComprador}))

	err := repo.Guardar(db, &Cliente{Name: "Otra Ana", Email: "ana@x.com", Type: TipoComprador})
	var ve *crmerrors.ValidationError
	require.True(t, errors.As(err, &ve))

	var total int64
	db.Model(&Cliente{}).Count(&total)
	assert.EqualValues(t, 1, total)
}

func TestDedupDeEmailEsSensibleAMayusculas(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	require.NoError(t, repo.Guardar(db, &Cliente{Name: "Ana", Email: "ana@x.com", Type: TipoComprador}))
	// Misma dirección con otra caja: se admite como cliente distinto
	require.NoError(t, repo.Guardar(db, &Cliente{Name: "Ana Mayúscula", Email: "Ana@x.com", Type: TipoComprador}))
}

func TestGuardarAdmiteVariosSinEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	require.NoError(t, repo.Guardar(db, &Cliente{Name: "Uno", Type: TipoComprador}))
	require.NoError(t, repo.Guardar(db, &Cliente{Name: "Dos", Type: TipoVendedor}))
}

func TestGuardarValidaPresupuesto(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	min, max := 300000.0, 200000.0
	err := repo.Guardar(db, &Cliente{Name: "Ana", Type: TipoComprador, BudgetMin: &min, BudgetMax: &max})

	var ve *crmerrors.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestActualizarParcial(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	c := &Cliente{Name: "Ana", Email: "ana@x.com", Phone: "600111222", Type: TipoComprador}
	require.NoError(t, repo.Guardar(db, c))

	telefono := "699000111"
	actualizado, err := repo.Actualizar(db, c.ID, &ActualizarClienteRequest{Phone: &telefono})
	require.NoError(t, err)

	assert.Equal(t, "699000111", actualizado.Phone)
	assert.Equal(t, "Ana", actualizado.Name)
	assert.Equal(t, "ana@x.com", actualizado.Email)
}

func TestActualizarInexistente(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	nombre := "Nadie"
	_, err := repo.Actualizar(db, "no-existe", &ActualizarClienteRequest{Name: &nombre})
	assert.ErrorIs(t, err, crmerrors.ErrNotFound)
}

func TestEliminarNoCascadaInteracciones(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	c := &Cliente{Name: "Ana", Email: "ana@x.com", Type: TipoComprador}
	require.NoError(t, repo.Guardar(db, c))

	inter := &interaccion.Interaccion{ClientID: c.ID, Type: interaccion.TipoLlamada, Description: "seguimiento"}
	require.NoError(t, interaccion.NewRepository().Guardar(db, inter))

	require.NoError(t, repo.Eliminar(db, c.ID))

	// La interacción conserva la clave foránea colgante
	restantes, err := interaccion.NewRepository().ListarPorCliente(db, c.ID)
	require.NoError(t, err)
	assert.Len(t, restantes, 1)
}

func TestEliminarInexistente(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	assert.ErrorIs(t, repo.Eliminar(db, "no-existe"), crmerrors.ErrNotFound)
}
