package lead

import "github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"

// Grafo de transiciones del ciclo de vida de un lead:
// nuevo → contactado → convertido, con descartado alcanzable desde
// nuevo y contactado. Convertido y descartado son terminales.
var transiciones = map[Estado][]Estado{
	EstadoNuevo:      {EstadoContactado, EstadoDescartado},
	EstadoContactado: {EstadoConvertido, EstadoDescartado},
}

// PuedeTransicionar indica si el cambio desde→hasta está permitido.
func PuedeTransicionar(desde, hasta Estado) bool {
	for _, e := range transiciones[desde] {
		if e == hasta {
			return true
		}
	}
	return false
}

// ValidarTransicion devuelve InvalidTransitionError si el cambio no está
// en el grafo. No muta nada.
func ValidarTransicion(desde, hasta Estado) error {
	if !estadoValido(hasta) {
		return &crmerrors.InvalidTransitionError{From: string(desde), To: string(hasta)}
	}
	if !PuedeTransicionar(desde, hasta) {
		return &crmerrors.InvalidTransitionError{From: string(desde), To: string(hasta)}
	}
	return nil
}
