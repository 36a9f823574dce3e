package propiedad

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
	"github.com/MarvicInmobiliaria/api-crm/internal/utils"
)

// Handler encapsula DB y repository
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

// CrearPropiedad da de alta un inmueble en la cartera.
func (h *Handler) CrearPropiedad(w http.ResponseWriter, r *http.Request) {
	var p Propiedad
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if p.Status == "" {
		p.Status = EstadoDisponible
	}

	if err := h.Repository.Guardar(h.DB, &p); err != nil {
		h.Logger.WithError(err).Error("error al crear propiedad")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, p)
}

// ListarPropiedades devuelve la cartera; con ?agente= filtra por agente.
func (h *Handler) ListarPropiedades(w http.ResponseWriter, r *http.Request) {
	agentID := r.URL.Query().Get("agente")

	var (
		lista []Propiedad
		err   error
	)
	if agentID != "" {
		lista, err = h.Repository.ListarPorAgente(h.DB, agentID)
	} else {
		lista, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		h.Logger.WithError(err).Error("error al listar propiedades")
		utils.RespondError(w, http.StatusInternalServerError, "error al listar propiedades")
		return
	}

	utils.RespondJSON(w, http.StatusOK, lista)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) ActualizarPropiedad(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var cambios ActualizarPropiedadRequest
	if err := json.NewDecoder(r.Body).Decode(&cambios); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	p, err := h.Repository.Actualizar(h.DB, id, &cambios)
	if err != nil {
		h.Logger.WithError(err).Error("error al actualizar propiedad")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, p)
}

// EliminarPropiedad borra el registro. Las visitas y leads que lo
// referencien conservan la clave foránea colgante.
func (h *Handler) EliminarPropiedad(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Repository.Eliminar(h.DB, id); err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
