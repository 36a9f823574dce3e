package visita

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Repository interface {
	Guardar(db *gorm.DB, v *Visita) error
	BuscarPorID(db *gorm.DB, id string) (*Visita, error)
	ListarTodas(db *gorm.DB) ([]Visita, error)
	ListarPorPropiedad(db *gorm.DB, propertyID string) ([]Visita, error)
	ListarPorCliente(db *gorm.DB, clientID string) ([]Visita, error)
	ListarPorAgente(db *gorm.DB, agentID string) ([]Visita, error)
	Actualizar(db *gorm.DB, v *Visita) error
	Eliminar(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, v *Visita) error {
	if err := v.Validar(); err != nil {
		return err
	}
	return db.Create(v).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Visita, error) {
	var v Visita
	if err := db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Visita, error) {
	var lista []Visita
	err := db.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarPorPropiedad(db *gorm.DB, propertyID string) ([]Visita, error) {
	var lista []Visita
	err := db.Where("property_id = ?", propertyID).Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clientID string) ([]Visita, error) {
	var lista []Visita
	err := db.Where("client_id = ?", clientID).Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarPorAgente(db *gorm.DB, agentID string) ([]Visita, error) {
	var lista []Visita
	err := db.Where("agent_id = ?", agentID).Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, v *Visita) error {
	if err := v.Validar(); err != nil {
		return err
	}
	return db.Save(v).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id string) error {
	res := db.Delete(&Visita{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return crmerrors.ErrNotFound
	}
	return nil
}
