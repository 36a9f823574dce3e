package visita

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
)

type Estado string

const (
	EstadoProgramada Estado = "programada"
	EstadoRealizada  Estado = "realizada"
	EstadoCancelada  Estado = "cancelada"
)

// Visita es una cita de un cliente para ver una propiedad, acompañado
// por un agente.
type Visita struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	PropertyID  string    `json:"propertyId"`
	ClientID    string    `json:"clientId"`
	AgentID     string    `json:"agentId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      Estado    `json:"status"`
	Notes       string    `json:"notes"`
}

func (v *Visita) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

func estadoValido(e Estado) bool {
	switch e {
	case EstadoProgramada, EstadoRealizada, EstadoCancelada:
		return true
	}
	return false
}

func (v *Visita) Validar() error {
	if v.PropertyID == "" || v.ClientID == "" || v.AgentID == "" {
		return crmerrors.NewValidation("propertyId, clientId y agentId son obligatorios")
	}
	if v.ScheduledAt.IsZero() {
		return crmerrors.NewValidation("scheduledAt es obligatorio")
	}
	if !estadoValido(v.Status) {
		return crmerrors.NewValidation("status inválido: %q", v.Status)
	}
	return nil
}
