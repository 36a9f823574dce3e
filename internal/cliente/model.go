package cliente

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Tipo string

const (
	TipoComprador   Tipo = "comprador"
	TipoVendedor    Tipo = "vendedor"
	TipoInquilino   Tipo = "inquilino"
	TipoPropietario Tipo = "propietario"
	TipoLead        Tipo = "lead"
)

// Cliente es una persona de contacto de la agencia. El email, cuando
// existe, actúa como clave de deduplicación en la entrada de leads.
type Cliente struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Name        string   `json:"name"`
	Email       string   `gorm:"index" json:"email"`
	Phone       string   `json:"phone"`
	Type        Tipo     `json:"type"`
	Preferences string   `json:"preferences"`
	BudgetMin   *float64 `json:"budgetMin,omitempty"`
	BudgetMax   *float64 `json:"budgetMax,omitempty"`
	Zones       []string `gorm:"type:jsonb;serializer:json" json:"zones"`
	Notes       string   `json:"notes"`
	Source      string   `json:"source"`
}

func (c *Cliente) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func tipoValido(t Tipo) bool {
	switch t {
	case TipoComprador, TipoVendedor, TipoInquilino, TipoPropietario, TipoLead:
		return true
	}
	return false
}

func (c *Cliente) Validar() error {
	if c.Name == "" {
		return crmerrors.NewValidation("name es obligatorio")
	}
	if !tipoValido(c.Type) {
		return crmerrors.NewValidation("type inválido: %q", c.Type)
	}
	if c.BudgetMin != nil && c.BudgetMax != nil && *c.BudgetMin > *c.BudgetMax {
		return crmerrors.NewValidation("budgetMin no puede superar budgetMax")
	}
	return nil
}
