package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MarvicInmobiliaria/api-crm/internal/agente"
	"github.com/MarvicInmobiliaria/api-crm/internal/propiedad"
	"github.com/MarvicInmobiliaria/api-crm/internal/visita"
)

func prop(status propiedad.Estado, op propiedad.Operacion) propiedad.Propiedad {
	return propiedad.Propiedad{Status: status, Operation: op}
}

func TestCalcularStats(t *testing.T) {
	ahora := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	propiedades := []propiedad.Propiedad{
		prop(propiedad.EstadoDisponible, propiedad.OperacionVenta),
		prop(propiedad.EstadoDisponible, propiedad.OperacionVenta),
		prop(propiedad.EstadoDisponible, propiedad.OperacionAlquiler),
		prop(propiedad.EstadoReservado, propiedad.OperacionVenta),
		prop(propiedad.EstadoVendido, propiedad.OperacionVenta),
		prop(propiedad.EstadoVendido, propiedad.OperacionVenta),
		prop(propiedad.EstadoAlquilado, propiedad.OperacionAlquiler),
	}
	visitas := []visita.Visita{
		{Status: visita.EstadoProgramada, ScheduledAt: ahora.Add(24 * time.Hour)},
		{Status: visita.EstadoProgramada, ScheduledAt: ahora.Add(48 * time.Hour)},
		{Status: visita.EstadoRealizada, ScheduledAt: ahora.Add(-24 * time.Hour)},
		{Status: visita.EstadoCancelada, ScheduledAt: ahora.Add(72 * time.Hour)},
	}

	resumen := Calcular(propiedades, 12, visitas, nil, ahora)

	assert.Equal(t, 3, resumen.Stats.TotalProperties)
	assert.Equal(t, 2, resumen.Stats.PropertiesForSale)
	assert.Equal(t, 1, resumen.Stats.PropertiesForRent)
	assert.Equal(t, 12, resumen.Stats.TotalClients)
	assert.Equal(t, 2, resumen.Stats.ScheduledVisits)
	assert.Equal(t, 2, resumen.Stats.Sales)
	assert.Equal(t, 1, resumen.Stats.Rentals)
}

func TestCalcularProximasVisitasOrdenadas(t *testing.T) {
	ahora := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	visitas := []visita.Visita{
		{ID: "v3", Status: visita.EstadoProgramada, ScheduledAt: ahora.Add(72 * time.Hour)},
		{ID: "v1", Status: visita.EstadoProgramada, ScheduledAt: ahora.Add(2 * time.Hour)},
		{ID: "pasada", Status: visita.EstadoProgramada, ScheduledAt: ahora.Add(-time.Hour)},
		{ID: "v2", Status: visita.EstadoProgramada, ScheduledAt: ahora.Add(24 * time.Hour)},
		{ID: "cancelada", Status: visita.EstadoCancelada, ScheduledAt: ahora.Add(3 * time.Hour)},
	}

	resumen := Calcular(nil, 0, visitas, nil, ahora)

	ids := make([]string, 0, len(resumen.ProximasVisitas))
	for _, v := range resumen.ProximasVisitas {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"v1", "v2", "v3"}, ids)
}

func TestTopAgentesPorVentas(t *testing.T) {
	agentes := []agente.Agente{
		{Name: "Ana", Sales: 3},
		{Name: "Berta", Sales: 9},
		{Name: "Carlos", Sales: 1},
		{Name: "Diana", Sales: 9},
		{Name: "Emilio", Sales: 5},
	}

	resumen := Calcular(nil, 0, nil, agentes, time.Now())

	assert.Len(t, resumen.TopAgentes, 4)
	assert.Equal(t, "Berta", resumen.TopAgentes[0].Name)
	// empate de ventas: se conserva el orden de entrada
	assert.Equal(t, "Diana", resumen.TopAgentes[1].Name)
	assert.Equal(t, "Emilio", resumen.TopAgentes[2].Name)
	assert.Equal(t, "Ana", resumen.TopAgentes[3].Name)

	// la entrada no se reordena
	assert.Equal(t, "Ana", agentes[0].Name)
}
