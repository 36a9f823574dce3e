package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretoDePrueba = "secreto-de-prueba"

func TestGenerarYValidarToken(t *testing.T) {
	tok, err := GenerarToken(secretoDePrueba, "agente-1", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAndValidate(secretoDePrueba, tok)
	require.NoError(t, err)
	assert.Equal(t, "agente-1", claims.AgentID)
	assert.Equal(t, "agente-1", claims.Subject)
}

func TestValidarConSecretoIncorrecto(t *testing.T) {
	tok, err := GenerarToken(secretoDePrueba, "agente-1", time.Hour)
	require.NoError(t, err)

	_, err = ParseAndValidate("otro-secreto", tok)
	assert.Error(t, err)
}

func TestValidarTokenExpirado(t *testing.T) {
	tok, err := GenerarToken(secretoDePrueba, "agente-1", -time.Hour)
	require.NoError(t, err)

	_, err = ParseAndValidate(secretoDePrueba, tok)
	assert.Error(t, err)
}

func TestValidarTokenMalformado(t *testing.T) {
	_, err := ParseAndValidate(secretoDePrueba, "no-es-un-jwt")
	assert.Error(t, err)
}

func siguienteHandler(t *testing.T, llamado *bool, agenteEsperado string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*llamado = true
		if agenteEsperado != "" {
			id, ok := AgentIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, agenteEsperado, id)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestMiddlewareSinToken(t *testing.T) {
	llamado := false
	h := Middleware(secretoDePrueba)(siguienteHandler(t, &llamado, ""))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/propiedades", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, llamado)
}

func TestMiddlewareTokenInvalido(t *testing.T) {
	llamado := false
	h := Middleware(secretoDePrueba)(siguienteHandler(t, &llamado, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/propiedades", nil)
	req.Header.Set("Authorization", "Bearer basura")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, llamado)
}

func TestMiddlewareTokenValido(t *testing.T) {
	tok, err := GenerarToken(secretoDePrueba, "agente-7", time.Hour)
	require.NoError(t, err)

	llamado := false
	h := Middleware(secretoDePrueba)(siguienteHandler(t, &llamado, "agente-7"))

	req := httptest.NewRequest(http.MethodGet, "/api/propiedades", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, llamado)
}

func TestMiddlewareDejaPasarPreflight(t *testing.T) {
	llamado := false
	h := Middleware(secretoDePrueba)(siguienteHandler(t, &llamado, ""))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/propiedades", nil))

	assert.True(t, llamado)
}
