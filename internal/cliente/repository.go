package cliente

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Repository interface {
	Guardar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id string) (*Cliente, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	Actualizar(db *gorm.DB, id string, cambios *ActualizarClienteRequest) (*Cliente, error)
	Eliminar(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, c *Cliente) error {
	if err := c.Validar(); err != nil {
		return err
	}

	// A lo sumo un cliente por email no vacío. La comprobación es
	// leer-luego-insertar: dos altas concurrentes con el mismo email
	// pueden colarse ambas (carrera conocida, documentada).
	if c.Email != "" {
		if _, err := r.BuscarPorEmail(db, c.Email); err == nil {
			return crmerrors.NewValidation("ya existe un cliente con email %q", c.Email)
		} else if !errors.Is(err, crmerrors.ErrNotFound) {
			return err
		}
	}

	return db.Create(c).Error
}

// BuscarPorEmail compara el email de forma exacta, sensible a mayúsculas.
func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Cliente, error) {
	var c Cliente
	if err := db.Where("email = ?", email).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Cliente, error) {
	var c Cliente
	if err := db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmerrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var lista []Cliente
	err := db.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id string, cambios *ActualizarClienteRequest) (*Cliente, error) {
	existente, err := r.BuscarPorID(db, id)
	if err != nil {
		return nil, err
	}

	if cambios.Email != nil && *cambios.Email != existente.Email && *cambios.Email != "" {
		if _, err := r.BuscarPorEmail(db, *cambios.Email); err == nil {
			return nil, crmerrors.NewValidation("ya existe un cliente con email %q", *cambios.Email)
		} else if !errors.Is(err, crmerrors.ErrNotFound) {
			return nil, err
		}
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
	res := db.Delete(&Cliente{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return crmerrors.ErrNotFound
	}
	return nil
}
