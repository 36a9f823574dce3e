package interaccion

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Repository interface {
	Guardar(db *gorm.DB, i *Interaccion) error
	BuscarPorID(db *gorm.DB, id string) (*Interaccion, error)
	ListarTodas(db *gorm.DB) ([]Interaccion, error)
	ListarPorCliente(db *gorm.DB, clientID string) ([]Interaccion, error)
	Eliminar(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, i *Interaccion) error {
	if err := i.Validar(); err != nil {
		return err
	}
	if i.Date.IsZero() {
		i.Date = time.Now()
	}
	return db.Create(i).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Interaccion, error) {
	var i Interaccion
	if err := db.First(&i, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Interaccion, error) {
	var lista []Interaccion
	err := db.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clientID string) ([]Interaccion, error) {
	var lista []Interaccion
	err := db.Where("client_id = ?", clientID).Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id string) error {
	res := db.Delete(&Interaccion{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return crmerrors.ErrNotFound
	}
	return nil
}
