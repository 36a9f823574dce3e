package cliente

import "strings"

// Buscar filtra un snapshot de clientes: subcadena sin distinguir
// mayúsculas sobre nombre y email, subcadena exacta sobre teléfono, y
// opcionalmente el tipo. Conserva el orden de entrada.
func Buscar(clientes []Cliente, termino string, tipo Tipo) []Cliente {
	termino = strings.ToLower(termino)

	resultado := make([]Cliente, 0, len(clientes))
	for _, c := range clientes {
		if termino != "" {
			coincide := strings.Contains(strings.ToLower(c.Name), termino) ||
				strings.Contains(strings.ToLower(c.Email), termino) ||
				strings.Contains(c.Phone, termino)
			if !coincide {
				continue
			}
		}
		if tipo != "" && c.Type != tipo {
			continue
		}
		resultado = append(resultado, c)
	}
	return resultado
}

// ContarPorTipo agrupa un snapshot de clientes por tipo.
func ContarPorTipo(clientes []Cliente) map[Tipo]int {
	conteo := make(map[Tipo]int)
	for _, c := range clientes {
		conteo[c.Type]++
	}
	return conteo
}
