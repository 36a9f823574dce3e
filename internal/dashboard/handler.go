package dashboard

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/agente"
	"github.com/MarvicInmobiliaria/api-crm/internal/cliente"
	"github.com/MarvicInmobiliaria/api-crm/internal/propiedad"
	"github.com/MarvicInmobiliaria/api-crm/internal/utils"
	"github.com/MarvicInmobiliaria/api-crm/internal/visita"
)

type Handler struct {
	DB     *gorm.DB
	Logger *logrus.Logger

	Propiedades propiedad.Repository
	Clientes    cliente.Repository
	Visitas     visita.Repository
	Agentes     agente.Repository
}

func NewHandler(db *gorm.DB, logger *logrus.Logger) *Handler {
	return &Handler{
		DB:          db,
		Logger:      logger,
		Propiedades: propiedad.NewRepository(),
		Clientes:    cliente.NewRepository(),
		Visitas:     visita.NewRepository(),
		Agentes:     agente.NewRepository(),
	}
}

// Resumen monta el panel de control sobre el snapshot actual.
func (h *Handler) Resumen(w http.ResponseWriter, r *http.Request) {
	propiedades, err := h.Propiedades.ListarTodas(h.DB)
	if err != nil {
		h.Logger.WithError(err).Error("error al listar propiedades")
		utils.RespondError(w, http.StatusInternalServerError, "error al montar el panel")
		return
	}

	clientes, err := h.Clientes.ListarTodos(h.DB)
	if err != nil {
		h.Logger.WithError(err).Error("error al listar clientes")
		utils.RespondError(w, http.StatusInternalServerError, "error al montar el panel")
		return
	}

	visitas, err := h.Visitas.ListarTodas(h.DB)
	if err != nil {
		h.Logger.WithError(err).Error("error al listar visitas")
		utils.RespondError(w, http.StatusInternalServerError, "error al montar el panel")
		return
	}

	agentes, err := h.Agentes.ListarTodos(h.DB)
	if err != nil {
		h.Logger.WithError(err).Error("error al listar agentes")
		utils.RespondError(w, http.StatusInternalServerError, "error al montar el panel")
		return
	}

	utils.RespondJSON(w, http.StatusOK, Calcular(propiedades, len(clientes), visitas, agentes, time.Now()))
}
