package visita

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visitaEn(momento time.Time, estado Estado) Visita {
	return Visita{
		PropertyID:  "p1",
		ClientID:    "c1",
		AgentID:     "a1",
		ScheduledAt: momento,
		Status:      estado,
	}
}

func TestDelDiaFiltraPorDiaNatural(t *testing.T) {
	dia := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	siguiente := dia.AddDate(0, 0, 1)

	// Orden de entrada revuelto a propósito
	visitas := []Visita{
		visitaEn(siguiente.Add(10*time.Hour), EstadoProgramada),
		visitaEn(dia.Add(9*time.Hour), EstadoProgramada),
		visitaEn(dia.Add(17*time.Hour), EstadoRealizada),
		visitaEn(siguiente.Add(12*time.Hour), EstadoProgramada),
		visitaEn(dia.Add(12*time.Hour), EstadoCancelada),
	}

	resultado := DelDia(visitas, dia.Add(15*time.Hour))
	require.Len(t, resultado, 3)

	// Conserva el orden de entrada
	assert.Equal(t, dia.Add(9*time.Hour), resultado[0].ScheduledAt)
	assert.Equal(t, dia.Add(17*time.Hour), resultado[1].ScheduledAt)
	assert.Equal(t, dia.Add(12*time.Hour), resultado[2].ScheduledAt)
}

func TestDelDiaSinCoincidencias(t *testing.T) {
	dia := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	visitas := []Visita{visitaEn(dia.Add(9*time.Hour), EstadoProgramada)}

	assert.Empty(t, DelDia(visitas, dia.AddDate(0, 0, 3)))
}

func TestProximasProgramadasOrdenaYLimita(t *testing.T) {
	ahora := time.Date(2024, 5, 12, 8, 0, 0, 0, time.UTC)

	visitas := []Visita{
		visitaEn(ahora.Add(72*time.Hour), EstadoProgramada),
		visitaEn(ahora.Add(-2*time.Hour), EstadoProgramada), // pasada
		visitaEn(ahora.Add(24*time.Hour), EstadoProgramada),
		visitaEn(ahora.Add(48*time.Hour), EstadoRealizada), // no programada
		visitaEn(ahora.Add(2*time.Hour), EstadoProgramada),
	}

	resultado := ProximasProgramadas(visitas, ahora, 2)
	require.Len(t, resultado, 2)
	assert.Equal(t, ahora.Add(2*time.Hour), resultado[0].ScheduledAt)
	assert.Equal(t, ahora.Add(24*time.Hour), resultado[1].ScheduledAt)
}

func TestContarPorEstado(t *testing.T) {
	ahora := time.Now()
	visitas := []Visita{
		visitaEn(ahora, EstadoProgramada),
		visitaEn(ahora, EstadoProgramada),
		visitaEn(ahora, EstadoRealizada),
		visitaEn(ahora, EstadoCancelada),
	}

	conteo := ContarPorEstado(visitas)
	assert.Equal(t, 2, conteo[EstadoProgramada])
	assert.Equal(t, 1, conteo[EstadoRealizada])
	assert.Equal(t, 1, conteo[EstadoCancelada])
}
