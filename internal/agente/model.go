package agente

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

// Agente es un comercial de la agencia. Sales y Listings son contadores
// acumulados; Rating va de 0 a 5.
type Agente struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	Phone        string  `json:"phone"`
	Avatar       string  `json:"avatar"`
	Sales        int     `json:"sales"`
	Listings     int     `json:"listings"`
	Rating       float64 `json:"rating"`
	PasswordHash string  `json:"-"`
}

func (a *Agente) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a *Agente) Validar() error {
	if a.Name == "" {
		return crmerrors.NewValidation("name es obligatorio")
	}
	if a.Email == "" {
		return crmerrors.NewValidation("email es obligatorio")
	}
	if a.Rating < 0 || a.Rating > 5 {
		return crmerrors.NewValidation("rating debe estar entre 0 y 5")
	}
	return nil
}
