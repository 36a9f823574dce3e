package lead

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/agente"
	"github.com/MarvicInmobiliaria/api-crm/internal/cliente"
	"github.com/MarvicInmobiliaria/api-crm/internal/propiedad"
)

// FuentePorDefecto es el portal del que llegan los leads si el payload
// no indica otra cosa.
const FuentePorDefecto = "idealista"

type Estado string

const (
	EstadoNuevo      Estado = "nuevo"
	EstadoContactado Estado = "contactado"
	EstadoConvertido Estado = "convertido"
	EstadoDescartado Estado = "descartado"
)

// Lead es una consulta entrante de un posible cliente, capturada desde
// un portal externo y pendiente de triaje. Las claves foráneas son
// opcionales: un lead con referencia desconocida se captura igualmente.
type Lead struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	PropertyID      *string `json:"propertyId"`
	ClientID        *string `json:"clientId"`
	Source          string  `json:"source"`
	OriginalEmail   *string `json:"originalEmail,omitempty"`
	Message         string  `json:"message"`
	Status          Estado  `json:"status"`
	AssignedAgentID *string `json:"assignedAgentId"`

	Property *propiedad.Propiedad `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Client   *cliente.Cliente     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Agent    *agente.Agente       `gorm:"foreignKey:AssignedAgentID" json:"agent,omitempty"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

func estadoValido(e Estado) bool {
	switch e {
	case EstadoNuevo, EstadoContactado, EstadoConvertido, EstadoDescartado:
		return true
	}
	return false
}
