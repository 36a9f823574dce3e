package agente

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Repository interface {
	Guardar(db *gorm.DB, a *Agente) error
	BuscarPorID(db *gorm.DB, id string) (*Agente, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Agente, error)
	ListarTodos(db *gorm.DB) ([]Agente, error)
	PrimerDisponible(db *gorm.DB) (*Agente, error)
	Actualizar(db *gorm.DB, a *Agente) error
	Eliminar(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, a *Agente) error {
	if err := a.Validar(); err != nil {
		return err
	}

	if _, err := r.BuscarPorEmail(db, a.Email); err == nil {
		return crmerrors.NewValidation("ya existe un agente con email %q", a.Email)
	} else if !errors.Is(err, crmerrors.ErrNotFound) {
		return err
	}

	return db.Create(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Agente, error) {
	var a Agente
	if err := db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Agente, error) {
	var a Agente
	if err := db.Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Agente, error) {
	var lista []Agente
	err := db.Find(&lista).Error
	return lista, err
}

// PrimerDisponible devuelve el agente más antiguo. Es el fallback de
// asignación de leads: determinista, sin reparto de carga.
func (r *repositoryImpl) PrimerDisponible(db *gorm.DB) (*Agente, error) {
	var a Agente
	if err := db.Order("created_at asc").First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, a *Agente) error {
	if err := a.Validar(); err != nil {
		return err
	}
	return db.Save(a).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id string) error {
	res := db.Delete(&Agente{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return crmerrors.ErrNotFound
	}
	return nil
}
