package dashboard

import (
	"sort"
	"time"

	"github.com/MarvicInmobiliaria/api-crm/internal/agente"
	"github.com/MarvicInmobiliaria/api-crm/internal/propiedad"
	"github.com/MarvicInmobiliaria/api-crm/internal/visita"
)

type Stats struct {
	TotalProperties   int `json:"totalProperties"`
	PropertiesForSale int `json:"propertiesForSale"`
	PropertiesForRent int `json:"propertiesForRent"`
	TotalClients      int `json:"totalClients"`
	ScheduledVisits   int `json:"scheduledVisits"`
	Sales             int `json:"sales"`
	Rentals           int `json:"rentals"`
}

type Resumen struct {
	Stats           Stats           `json:"stats"`
	ProximasVisitas []visita.Visita `json:"proximasVisitas"`
	TopAgentes      []agente.Agente `json:"topAgentes"`
}

// Calcular deriva el panel de control de un snapshot del almacén. Es
// una función pura: mismo snapshot y misma hora, mismo resultado.
func Calcular(
	propiedades []propiedad.Propiedad,
	totalClientes int,
	visitas []visita.Visita,
	agentes []agente.Agente,
	ahora time.Time,
) Resumen {
	var stats Stats

	disponibles := 0
	for _, p := range propiedades {
		switch p.Status {
		case propiedad.EstadoDisponible:
			disponibles++
			switch p.Operation {
			case propiedad.OperacionVenta:
				stats.PropertiesForSale++
			case propiedad.OperacionAlquiler:
				stats.PropertiesForRent++
			}
		case propiedad.EstadoVendido:
			stats.Sales++
		case propiedad.EstadoAlquilado:
			stats.Rentals++
		}
	}
	stats.TotalProperties = disponibles
	stats.TotalClients = totalClientes

	porEstado := visita.ContarPorEstado(visitas)
	stats.ScheduledVisits = porEstado[visita.EstadoProgramada]

	return Resumen{
		Stats:           stats,
		ProximasVisitas: visita.ProximasProgramadas(visitas, ahora, 5),
		TopAgentes:      topPorVentas(agentes, 4),
	}
}

func topPorVentas(agentes []agente.Agente, max int) []agente.Agente {
	top := make([]agente.Agente, len(agentes))
	copy(top, agentes)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Sales > top[j].Sales
	})

	if len(top) > max {
		top = top[:max]
	}
	return top
}
