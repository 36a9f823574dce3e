package visita

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
	"github.com/MarvicInmobiliaria/api-crm/internal/utils"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Logger     *logrus.Logger
}

func NewHandler(db *gorm.DB, logger *logrus.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Logger:     logger,
	}
}

func (h *Handler) CrearVisita(w http.ResponseWriter, r *http.Request) {
	var v Visita
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if v.Status == "" {
		v.Status = EstadoProgramada
	}

	if err := h.Repository.Guardar(h.DB, &v); err != nil {
		h.Logger.WithError(err).Error("error al crear visita")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, v)
}

// ListarVisitas admite filtros ?propiedad=, ?cliente= y ?agente=.
func (h *Handler) ListarVisitas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		lista []Visita
		err   error
	)
	switch {
	case q.Get("propiedad") != "":
		lista, err = h.Repository.ListarPorPropiedad(h.DB, q.Get("propiedad"))
	case q.Get("cliente") != "":
		lista, err = h.Repository.ListarPorCliente(h.DB, q.Get("cliente"))
	case q.Get("agente") != "":
		lista, err = h.Repository.ListarPorAgente(h.DB, q.Get("agente"))
	default:
		lista, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		h.Logger.WithError(err).Error("error al listar visitas")
		utils.RespondError(w, http.StatusInternalServerError, "error al listar visitas")
		return
	}

	utils.RespondJSON(w, http.StatusOK, lista)
}

// Agenda devuelve las visitas del día natural pedido en ?fecha=2006-01-02.
func (h *Handler) Agenda(w http.ResponseWriter, r *http.Request) {
	fechaStr := r.URL.Query().Get("fecha")
	fecha, err := time.Parse("2006-01-02", fechaStr)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "fecha inválida, formato esperado 2006-01-02")
		return
	}

	lista, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		h.Logger.WithError(err).Error("error al consultar agenda")
		utils.RespondError(w, http.StatusInternalServerError, "error al consultar agenda")
		return
	}

	utils.RespondJSON(w, http.StatusOK, DelDia(lista, fecha))
}

func (h *Handler) BuscarPorIDHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	v, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, v)
}

func (h *Handler) ActualizarVisita(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existente, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	var cambios Visita
	if err := json.NewDecoder(r.Body).Decode(&cambios); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if !cambios.ScheduledAt.IsZero() {
		existente.ScheduledAt = cambios.ScheduledAt
	}
	if cambios.Status != "" {
		existente.Status = cambios.Status
	}
	if cambios.Notes != "" {
		existente.Notes = cambios.Notes
	}

	if err := h.Repository.Actualizar(h.DB, existente); err != nil {
		h.Logger.WithError(err).Error("error al actualizar visita")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, existente)
}

func (h *Handler) EliminarVisita(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Repository.Eliminar(h.DB, id); err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
