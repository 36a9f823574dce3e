package interaccion

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Tipo string

const (
	TipoLlamada   Tipo = "llamada"
	TipoEmail     Tipo = "email"
	TipoVisita    Tipo = "visita"
	TipoWhatsapp  Tipo = "whatsapp"
	TipoIdealista Tipo = "idealista"
	TipoOtro      Tipo = "otro"
)

// Interaccion registra un contacto con un cliente: llamada, email,
// visita, mensaje o entrada desde un portal.
type Interaccion struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID    string    `json:"clientId"`
	Type        Tipo      `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func (i *Interaccion) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func tipoValido(t Tipo) bool {
	switch t {
	case TipoLlamada, TipoEmail, TipoVisita, TipoWhatsapp, TipoIdealista, TipoOtro:
		return true
	}
	return false
}

// TipoDesdeFuente mapea la fuente de un lead a un tipo de interacción
// del enumerado cerrado; las fuentes desconocidas caen en "otro".
func TipoDesdeFuente(fuente string) Tipo {
	switch fuente {
	case "idealista":
		return TipoIdealista
	case "email":
		return TipoEmail
	case "whatsapp":
		return TipoWhatsapp
	default:
		return TipoOtro
	}
}

func (i *Interaccion) Validar() error {
	if i.ClientID == "" {
		return crmerrors.NewValidation("clientId es obligatorio")
	}
	if !tipoValido(i.Type) {
		return crmerrors.NewValidation("type inválido: %q", i.Type)
	}
	return nil
}
