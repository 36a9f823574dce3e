package lead

// PayloadLead es el cuerpo que envía Make (Integromat) con cada lead
// del portal. Solo name es obligatorio.
type PayloadLead struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Message           string  `json:"message"`
	PropertyReference string  `json:"property_reference"`
	Source            string  `json:"source"`
	OriginalEmail     *string `json:"original_email"`
}

// ResultadoIntake resume los registros resueltos o creados por la
// entrada de un lead.
type ResultadoIntake struct {
	LeadID     string  `json:"lead_id"`
	ClientID   *string `json:"client_id"`
	PropertyID *string `json:"property_id"`
}

// CambiarEstadoRequest pide una transición del ciclo de vida.
type CambiarEstadoRequest struct {
	Estado Estado `json:"estado"`
}

// ConteoEstados agrupa los leads del snapshot actual por estado.
type ConteoEstados struct {
	Nuevos      int `json:"nuevos"`
	Contactados int `json:"contactados"`
	Convertidos int `json:"convertidos"`
	Descartados int `json:"descartados"`
}

// ContarPorEstado recalcula el conteo en cada lectura; no hay contadores
// cacheados.
func ContarPorEstado(leads []Lead) ConteoEstados {
	var c ConteoEstados
	for _, l := range leads {
		switch l.Status {
		case EstadoNuevo:
			c.Nuevos++
		case EstadoContactado:
			c.Contactados++
		case EstadoConvertido:
			c.Convertidos++
		case EstadoDescartado:
			c.Descartados++
		}
	}
	return c
}
