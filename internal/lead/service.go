package lead

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/agente"
	"github.com/MarvicInmobiliaria/api-crm/internal/cliente"
	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
	"github.com/MarvicInmobiliaria/api-crm/internal/interaccion"
	"github.com/MarvicInmobiliaria/api-crm/internal/propiedad"
)

// Longitud máxima del extracto del mensaje que se guarda en la
// interacción de entrada.
const maxExtractoMensaje = 100

// Service transforma un payload externo de lead en estado consistente
// del almacén: resuelve o crea el cliente, resuelve la propiedad por
// referencia, asigna agente y crea el lead más su interacción.
type Service struct {
	DB     *gorm.DB
	Logger *logrus.Logger

	Propiedades   propiedad.Repository
	Agentes       agente.Repository
	Clientes      cliente.Repository
	Leads         Repository
	Interacciones interaccion.Repository
}

func NewService(db *gorm.DB, logger *logrus.Logger) *Service {
	return &Service{
		DB:            db,
		Logger:        logger,
		Propiedades:   propiedad.NewRepository(),
		Agentes:       agente.NewRepository(),
		Clientes:      cliente.NewRepository(),
		Leads:         NewRepository(),
		Interacciones: interaccion.NewRepository(),
	}
}

// Procesar ejecuta la entrada de un lead. La validación va primero y no
// deja efectos; una referencia o email sin coincidencia degrada a clave
// foránea nula en lugar de fallar: el lead se captura siempre que haya
// nombre. Solo los fallos del almacén abortan, como PersistenceError.
func (s *Service) Procesar(p PayloadLead) (*ResultadoIntake, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, crmerrors.NewValidation("Name is required")
	}

	fuente := p.Source
	if fuente == "" {
		fuente = FuentePorDefecto
	}

	var resultado ResultadoIntake
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var propertyID, assignedAgentID, clientID *string

		// Resolución de propiedad por referencia: un miss no es error
		if p.PropertyReference != "" {
			prop, err := s.Propiedades.BuscarPorReferencia(tx, p.PropertyReference)
			switch {
			case err == nil:
				propertyID = &prop.ID
				if prop.AgentID != "" {
					agentID := prop.AgentID
					assignedAgentID = &agentID
				}
			case errors.Is(err, crmerrors.ErrNotFound):
				s.Logger.WithField("referencia", p.PropertyReference).
					Warn("lead con referencia de propiedad desconocida")
			default:
				return &crmerrors.PersistenceError{Op: "buscar propiedad", Err: err}
			}
		}

		// Fallback: primer agente disponible, para que ningún lead quede
		// sin asignar mientras exista al menos un agente
		if assignedAgentID == nil {
			ag, err := s.Agentes.PrimerDisponible(tx)
			switch {
			case err == nil:
				assignedAgentID = &ag.ID
			case errors.Is(err, crmerrors.ErrNotFound):
				// sin agentes: el lead queda sin asignar
			default:
				return &crmerrors.PersistenceError{Op: "buscar agente", Err: err}
			}
		}

		// Resolución o alta de cliente, deduplicado por email exacto
		if p.Email != "" {
			existente, err := s.Clientes.BuscarPorEmail(tx, p.Email)
			switch {
			case err == nil:
				clientID = &existente.ID
			case errors.Is(err, crmerrors.ErrNotFound):
				nuevo := cliente.Cliente{
					Name:   p.Name,
					Email:  p.Email,
					Phone:  p.Phone,
					Type:   cliente.TipoLead,
					Source: fuente,
					Notes:  p.Message,
				}
				if err := s.Clientes.Guardar(tx, &nuevo); err != nil {
					return &crmerrors.PersistenceError{Op: "crear cliente", Err: err}
				}
				clientID = &nuevo.ID
			default:
				return &crmerrors.PersistenceError{Op: "buscar cliente", Err: err}
			}
		}

		nuevoLead := Lead{
			PropertyID:      propertyID,
			ClientID:        clientID,
			Source:          fuente,
			OriginalEmail:   p.OriginalEmail,
			Message:         p.Message,
			Status:          EstadoNuevo,
			AssignedAgentID: assignedAgentID,
		}
		if err := s.Leads.Guardar(tx, &nuevoLead); err != nil {
			return &crmerrors.PersistenceError{Op: "crear lead", Err: err}
		}

		if clientID != nil {
			inter := interaccion.Interaccion{
				ClientID:    *clientID,
				Type:        interaccion.TipoDesdeFuente(fuente),
				Description: extractoMensaje(fuente, p.Message),
				Date:        time.Now(),
			}
			if err := s.Interacciones.Guardar(tx, &inter); err != nil {
				return &crmerrors.PersistenceError{Op: "crear interacción", Err: err}
			}
		}

		resultado = ResultadoIntake{
			LeadID:     nuevoLead.ID,
			ClientID:   clientID,
			PropertyID: propertyID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resultado, nil
}

func extractoMensaje(fuente, mensaje string) string {
	extracto := mensaje
	if runas := []rune(extracto); len(runas) > maxExtractoMensaje {
		extracto = string(runas[:maxExtractoMensaje])
	}
	return fmt.Sprintf("Lead recibido desde %s: %s...", fuente, extracto)
}
