package interaccion

import (
	"encoding/json"
	"net/http"

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

func (h *Handler) CrearInteraccion(w http.ResponseWriter, r *http.Request) {
	var i Interaccion
	if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if err := h.Repository.Guardar(h.DB, &i); err != nil {
		h.Logger.WithError(err).Error("error al crear interacción")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, i)
}

// ListarInteracciones admite ?cliente= para el historial de un cliente.
func (h *Handler) ListarInteracciones(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("cliente")

	var (
		lista []Interaccion
		err   error
	)
	if clientID != "" {
		lista, err = h.Repository.ListarPorCliente(h.DB, clientID)
	} else {
		lista, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		h.Logger.WithError(err).Error("error al listar interacciones")
		utils.RespondError(w, http.StatusInternalServerError, "error al listar interacciones")
		return
	}

	utils.RespondJSON(w, http.StatusOK, lista)
}

func (h *Handler) BuscarPorIDHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	i, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, i)
}

func (h *Handler) EliminarInteraccion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Repository.Eliminar(h.DB, id); err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
