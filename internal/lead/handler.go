package lead

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
	"github.com/MarvicInmobiliaria/api-crm/internal/utils"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Service    *Service
	Logger     *logrus.Logger

	// Secreto compartido con el webhook del portal
	WebhookSecret string
	// Tope del listado de leads recientes
	ListLimit int
}

func NewHandler(db *gorm.DB, logger *logrus.Logger, webhookSecret string, listLimit int) *Handler {
	return &Handler{
		DB:            db,
		Repository:    NewRepository(),
		Service:       NewService(db, logger),
		Logger:        logger,
		WebhookSecret: webhookSecret,
		ListLimit:     listLimit,
	}
}

// RecibirWebhook es el endpoint que invoca Make (Integromat) con cada
// lead del portal. Protegido por secreto bearer, no por JWT.
func (h *Handler) RecibirWebhook(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	apiKey := strings.TrimPrefix(authHeader, "Bearer ")
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(h.WebhookSecret)) != 1 {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload PayloadLead
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	resultado, err := h.Service.Procesar(payload)
	if err != nil {
		var ve *crmerrors.ValidationError
		if errors.As(err, &ve) {
			utils.RespondError(w, http.StatusBadRequest, ve.Msg)
			return
		}
		h.Logger.WithError(err).Error("error al procesar lead")
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to create lead",
			"details": err.Error(),
		})
		return
	}

	h.Logger.WithFields(logrus.Fields{
		"leadId":   resultado.LeadID,
		"clientId": resultado.ClientID,
	}).Info("lead procesado")

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"lead_id":     resultado.LeadID,
		"client_id":   resultado.ClientID,
		"property_id": resultado.PropertyID,
		"message":     "Lead created successfully",
	})
}

// ListarLeads devuelve los leads recientes, el más nuevo primero, con
// los resúmenes relacionados; admite ?estado= para filtrar.
func (h *Handler) ListarLeads(w http.ResponseWriter, r *http.Request) {
	estado := Estado(r.URL.Query().Get("estado"))

	lista, err := h.Repository.ListarRecientes(h.DB, h.ListLimit, estado)
	if err != nil {
		h.Logger.WithError(err).Error("error al listar leads")
		utils.RespondError(w, http.StatusInternalServerError, "error al listar leads")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"leads": lista})
}

// ContarLeads devuelve el conteo por estado recalculado sobre el
// snapshot actual.
func (h *Handler) ContarLeads(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		h.Logger.WithError(err).Error("error al contar leads")
		utils.RespondError(w, http.StatusInternalServerError, "error al contar leads")
		return
	}

	utils.RespondJSON(w, http.StatusOK, ContarPorEstado(lista))
}

// CambiarEstadoHTTP aplica una transición del ciclo de vida del lead.
func (h *Handler) CambiarEstadoHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req CambiarEstadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	l, err := h.Repository.CambiarEstado(h.DB, id, req.Estado)
	if err != nil {
		h.Logger.WithError(err).Warn("transición de lead rechazada")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, l)
}
