package lead

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Repository interface {
	Guardar(db *gorm.DB, l *Lead) error
	BuscarPorID(db *gorm.DB, id string) (*Lead, error)
	ListarRecientes(db *gorm.DB, limite int, estado Estado) ([]Lead, error)
	ListarTodos(db *gorm.DB) ([]Lead, error)
	CambiarEstado(db *gorm.DB, id string, nuevo Estado) (*Lead, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, l *Lead) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Lead, error) {
	var l Lead
	if err := db.First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListarRecientes devuelve los últimos leads, el más nuevo primero, con
// los resúmenes de propiedad, cliente y agente asignado precargados.
// Con estado no vacío filtra por ese estado.
func (r *repositoryImpl) ListarRecientes(db *gorm.DB, limite int, estado Estado) ([]Lead, error) {
	q := db.
		Preload("Property").
		Preload("Client").
		Preload("Agent").
		Order("created_at desc").
		Limit(limite)
	if estado != "" {
		q = q.Where("status = ?", estado)
	}

	var lista []Lead
	err := q.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Lead, error) {
	var lista []Lead
	err := db.Find(&lista).Error
	return lista, err
}

// CambiarEstado aplica una transición del ciclo de vida como una única
// actualización atómica del registro.
func (r *repositoryImpl) CambiarEstado(db *gorm.DB, id string, nuevo Estado) (*Lead, error) {
	l, err := r.BuscarPorID(db, id)
	if err != nil {
		return nil, err
	}

	if err := ValidarTransicion(l.Status, nuevo); err != nil {
		return nil, err
	}

	if err := db.Model(l).Update("status", nuevo).Error; err != nil {
		return nil, &crmerrors.PersistenceError{Op: "actualizar estado de lead", Err: err}
	}
	l.Status = nuevo
	return l, nil
}
