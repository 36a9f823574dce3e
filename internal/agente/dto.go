package agente

import (
	"github.com/MarvicInmobiliaria/api-crm/internal/propiedad"
	"github.com/MarvicInmobiliaria/api-crm/internal/visita"
)

type ResumenAgenteDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Avatar          string  `json:"avatar"`
	Sales           int     `json:"sales"`
	Rating          float64 `json:"rating"`
	TotalListings   int     `json:"totalListings"`
	ActiveListings  int     `json:"activeListings"`
	ScheduledVisits int     `json:"scheduledVisits"`
	CompletedVisits int     `json:"completedVisits"`
}

// MontarResumenAgenteDTO calcula las métricas de un agente sobre un
// snapshot de sus propiedades y visitas.
func MontarResumenAgenteDTO(a Agente, propiedades []propiedad.Propiedad, visitas []visita.Visita) ResumenAgenteDTO {
	activas := 0
	for _, p := range propiedades {
		if p.Status == propiedad.EstadoDisponible {
			activas++
		}
	}

	programadas, realizadas := 0, 0
	for _, v := range visitas {
		switch v.Status {
		case visita.EstadoProgramada:
			programadas++
		case visita.EstadoRealizada:
			realizadas++
		}
	}

	return ResumenAgenteDTO{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		Avatar:          a.Avatar,
		Sales:           a.Sales,
		Rating:          a.Rating,
		TotalListings:   len(propiedades),
		ActiveListings:  activas,
		ScheduledVisits: programadas,
		CompletedVisits: realizadas,
	}
}
