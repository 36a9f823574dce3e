package propiedad

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Operacion string

const (
	OperacionVenta    Operacion = "venta"
	OperacionAlquiler Operacion = "alquiler"
)

type TipoPropiedad string

const (
	TipoPiso    TipoPropiedad = "piso"
	TipoCasa    TipoPropiedad = "casa"
	TipoChalet  TipoPropiedad = "chalet"
	TipoLocal   TipoPropiedad = "local"
	TipoOficina TipoPropiedad = "oficina"
	TipoTerreno TipoPropiedad = "terreno"
	TipoAtico   TipoPropiedad = "atico"
)

type Estado string

const (
	EstadoDisponible Estado = "disponible"
	EstadoReservado  Estado = "reservado"
	EstadoVendido    Estado = "vendido"
	EstadoAlquilado  Estado = "alquilado"
)

// Propiedad representa un inmueble de la cartera de la agencia. La
// referencia es el código visible para clientes y portales, y la clave
// con la que los leads externos apuntan a una propiedad.
type Propiedad struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Reference    string        `gorm:"uniqueIndex" json:"reference"`
	Title        string        `json:"title"`
	Operation    Operacion     `json:"operation"`
	PropertyType TipoPropiedad `json:"propertyType"`
	Price        float64       `json:"price"`
	Area         float64       `json:"area"`
	Bedrooms     int           `json:"bedrooms"`
	Bathrooms    int           `json:"bathrooms"`
	Address      string        `json:"address"`
	City         string        `json:"city"`
	Zone         string        `json:"zone"`
	Description  string        `json:"description"`

	// Listas serializadas en JSONB; Images conserva el orden de subida
	Features []string `gorm:"type:jsonb;serializer:json" json:"features"`
	Images   []string `gorm:"type:jsonb;serializer:json" json:"images"`

	Status  Estado `json:"status"`
	AgentID string `json:"agentId"`
}

func (p *Propiedad) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func operacionValida(o Operacion) bool {
	return o == OperacionVenta || o == OperacionAlquiler
}

func tipoValido(t TipoPropiedad) bool {
	switch t {
	case TipoPiso, TipoCasa, TipoChalet, TipoLocal, TipoOficina, TipoTerreno, TipoAtico:
		return true
	}
	return false
}

func estadoValido(e Estado) bool {
	switch e {
	case EstadoDisponible, EstadoReservado, EstadoVendido, EstadoAlquilado:
		return true
	}
	return false
}

// Validar comprueba los campos obligatorios antes de persistir.
func (p *Propiedad) Validar() error {
	if p.Reference == "" {
		return crmerrors.NewValidation("reference es obligatoria")
	}
	if p.Title == "" {
		return crmerrors.NewValidation("title es obligatorio")
	}
	if !operacionValida(p.Operation) {
		return crmerrors.NewValidation("operation inválida: %q", p.Operation)
	}
	if !tipoValido(p.PropertyType) {
		return crmerrors.NewValidation("propertyType inválido: %q", p.PropertyType)
	}
	if p.Price <= 0 {
		return crmerrors.NewValidation("price debe ser positivo")
	}
	if p.Area <= 0 {
		return crmerrors.NewValidation("area debe ser positiva")
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 {
		return crmerrors.NewValidation("bedrooms y bathrooms no pueden ser negativos")
	}
	if !estadoValido(p.Status) {
		return crmerrors.NewValidation("status inválido: %q", p.Status)
	}
	return nil
}
