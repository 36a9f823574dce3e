package cliente

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

func (h *Handler) CrearCliente(w http.ResponseWriter, r *http.Request) {
	var c Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if c.Type == "" {
		c.Type = TipoComprador
	}

	if err := h.Repository.Guardar(h.DB, &c); err != nil {
		h.Logger.WithError(err).Error("error al crear cliente")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, c)
}

// ListarClientes devuelve los clientes; admite ?buscar= y ?tipo= sobre
// el snapshot actual.
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		h.Logger.WithError(err).Error("error al listar clientes")
		utils.RespondError(w, http.StatusInternalServerError, "error al listar clientes")
		return
	}

	termino := r.URL.Query().Get("buscar")
	tipo := Tipo(r.URL.Query().Get("tipo"))
	if termino != "" || tipo != "" {
		lista = Buscar(lista, termino, tipo)
	}

	utils.RespondJSON(w, http.StatusOK, lista)
}

func (h *Handler) BuscarPorIDHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	c, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, c)
}

func (h *Handler) ActualizarCliente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var cambios ActualizarClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&cambios); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	c, err := h.Repository.Actualizar(h.DB, id, &cambios)
	if err != nil {
		h.Logger.WithError(err).Error("error al actualizar cliente")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, c)
}

// EliminarCliente borra el registro sin cascada: visitas, interacciones
// y leads conservan la clave foránea colgante.
func (h *Handler) EliminarCliente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Repository.Eliminar(h.DB, id); err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
