package propiedad

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Repository interface {
	Guardar(db *gorm.DB, p *Propiedad) error
	BuscarPorID(db *gorm.DB, id string) (*Propiedad, error)
	BuscarPorReferencia(db *gorm.DB, referencia string) (*Propiedad, error)
	ListarTodas(db *gorm.DB) ([]Propiedad, error)
	ListarPorAgente(db *gorm.DB, agentID string) ([]Propiedad, error)
	Actualizar(db *gorm.DB, id string, cambios *ActualizarPropiedadRequest) (*Propiedad, error)
	Eliminar(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, p *Propiedad) error {
	if err := p.Validar(); err != nil {
		return err
	}

	// La referencia es clave natural única para la resolución de leads
	var existente Propiedad
	if err := db.Where("reference = ?", p.Reference).First(&existente).Error; err == nil {
		return crmerrors.NewValidation("ya existe una propiedad con referencia %q", p.Reference)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Propiedad, error) {
	var p Propiedad
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) BuscarPorReferencia(db *gorm.DB, referencia string) (*Propiedad, error) {
	var p Propiedad
	if err := db.Where("reference = ?", referencia).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Propiedad, error) {
	var lista []Propiedad
	err := db.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarPorAgente(db *gorm.DB, agentID string) ([]Propiedad, error) {
	var lista []Propiedad
	err := db.Where("agent_id = ?", agentID).Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id string, cambios *ActualizarPropiedadRequest) (*Propiedad, error) {
	existente, err := r.BuscarPorID(db, id)
	if err != nil {
		return nil, err
	}

	cambios.AplicarA(existente)
	if err := existente.Validar(); err != nil {
		return nil, err
	}

	if err := db.Save(existente).Error; err != nil {
		return nil, err
	}
	return existente, nil
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id string) error {
	res := db.Delete(&Propiedad{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return crmerrors.ErrNotFound
	}
	return nil
}
