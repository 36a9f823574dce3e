package lead

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/cliente"
)

const secretoDePrueba = "secreto-webhook"

func newTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	logger := logrus.New()
	logger.SetOutput(&strings.Builder{})
	return NewHandler(db, logger, secretoDePrueba, 50), db
}

func postWebhook(h *Handler, token string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.RecibirWebhook(rec, req)
	return rec
}

func TestWebhookRechazaSecretoIncorrecto(t *testing.T) {
	h, db := newTestHandler(t)

	rec := postWebhook(h, "secreto-equivocado", PayloadLead{Name: "Ana"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var leads int64
	db.Model(&Lead{}).Count(&leads)
	assert.Zero(t, leads)
}

func TestWebhookRechazaSinToken(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postWebhook(h, "", PayloadLead{Name: "Ana"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookRechazaSinNombre(t *testing.T) {
	h, db := newTestHandler(t)

	rec := postWebhook(h, secretoDePrueba, PayloadLead{Email: "ana@x.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var leads, clientes int64
	db.Model(&Lead{}).Count(&leads)
	db.Model(&cliente.Cliente{}).Count(&clientes)
	assert.Zero(t, leads)
	assert.Zero(t, clientes)
}

func TestWebhookCreaLead(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postWebhook(h, secretoDePrueba, PayloadLead{
		Name:  "Ana López",
		Email: "ana@x.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var respuesta map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respuesta))
	assert.Equal(t, true, respuesta["success"])
	assert.NotEmpty(t, respuesta["lead_id"])
	assert.NotEmpty(t, respuesta["client_id"])
	assert.Nil(t, respuesta["property_id"])
}

func TestListarLeadsMasNuevoPrimero(t *testing.T) {
	h, _ := newTestHandler(t)

	postWebhook(h, secretoDePrueba, PayloadLead{Name: "Primero"})
	postWebhook(h, secretoDePrueba, PayloadLead{Name: "Segundo", Message: "el último"})

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rec := httptest.NewRecorder()
	h.ListarLeads(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var respuesta struct {
		Leads []Lead `json:"leads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respuesta))
	require.Len(t, respuesta.Leads, 2)
	assert.Equal(t, "el último", respuesta.Leads[0].Message)
}

func TestListarLeadsFiltraPorEstado(t *testing.T) {
	h, db := newTestHandler(t)

	postWebhook(h, secretoDePrueba, PayloadLead{Name: "Uno"})
	rec := postWebhook(h, secretoDePrueba, PayloadLead{Name: "Dos"})

	var creado map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &creado))
	_, err := h.Repository.CambiarEstado(db, creado["lead_id"].(string), EstadoContactado)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/leads?estado=contactado", nil)
	out := httptest.NewRecorder()
	h.ListarLeads(out, req)
	require.Equal(t, http.StatusOK, out.Code)

	var respuesta struct {
		Leads []Lead `json:"leads"`
	}
	require.NoError(t, json.Unmarshal(out.Body.Bytes(), &respuesta))
	require.Len(t, respuesta.Leads, 1)
	assert.Equal(t, EstadoContactado, respuesta.Leads[0].Status)
}

func TestCambiarEstadoHTTPTransicionIlegal(t *testing.T) {
	h, db := newTestHandler(t)

	l := &Lead{Source: FuentePorDefecto, Status: EstadoConvertido}
	require.NoError(t, h.Repository.Guardar(db, l))

	body := bytes.NewReader([]byte(`{"estado":"nuevo"}`))
	req := httptest.NewRequest(http.MethodPut, "/api/leads/"+l.ID+"/estado", body)
	req = mux.SetURLVars(req, map[string]string{"id": l.ID})
	rec := httptest.NewRecorder()
	h.CambiarEstadoHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestContarLeadsPorEstado(t *testing.T) {
	h, db := newTestHandler(t)

	for _, estado := range []Estado{EstadoNuevo, EstadoNuevo, EstadoContactado, EstadoDescartado} {
		require.NoError(t, h.Repository.Guardar(db, &Lead{Source: FuentePorDefecto, Status: estado}))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/leads/conteo", nil)
	rec := httptest.NewRecorder()
	h.ContarLeads(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var conteo ConteoEstados
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conteo))
	assert.Equal(t, ConteoEstados{Nuevos: 2, Contactados: 1, Descartados: 1}, conteo)
}
