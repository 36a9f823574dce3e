package visita

import (
	"sort"
	"time"
)

// DelDia filtra un snapshot de visitas dejando las del mismo día natural
// que fecha, en el orden de entrada.
func DelDia(visitas []Visita, fecha time.Time) []Visita {
	y, m, d := fecha.Date()

	resultado := make([]Visita, 0, len(visitas))
	for _, v := range visitas {
		vy, vm, vd := v.ScheduledAt.Date()
		if vy == y && vm == m && vd == d {
			resultado = append(resultado, v)
		}
	}
	return resultado
}

// ProximasProgramadas devuelve las visitas programadas desde ahora,
// ordenadas por hora ascendente y limitadas a max (max <= 0 no limita).
func ProximasProgramadas(visitas []Visita, ahora time.Time, max int) []Visita {
	proximas := make([]Visita, 0, len(visitas))
	for _, v := range visitas {
		if v.Status == EstadoProgramada && !v.ScheduledAt.Before(ahora) {
			proximas = append(proximas, v)
		}
	}

	sort.SliceStable(proximas, func(i, j int) bool {
		return proximas[i].ScheduledAt.Before(proximas[j].ScheduledAt)
	})

	if max > 0 && len(proximas) > max {
		proximas = proximas[:max]
	}
	return proximas
}

// ContarPorEstado agrupa un snapshot de visitas por estado.
func ContarPorEstado(visitas []Visita) map[Estado]int {
	conteo := make(map[Estado]int)
	for _, v := range visitas {
		conteo[v.Status]++
	}
	return conteo
}
