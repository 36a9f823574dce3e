package agente

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/auth"
	"github.com/MarvicInmobiliaria/api-crm/internal/crmerrors"
	"github.com/MarvicInmobiliaria/api-crm/internal/propiedad"
	"github.com/MarvicInmobiliaria/api-crm/internal/utils"
	"github.com/MarvicInmobiliaria/api-crm/internal/visita"
)

// request DTOs
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type crearAgenteRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Avatar   string  `json:"avatar"`
	Rating   float64 `json:"rating"`
	Password string  `json:"password"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Logger     *logrus.Logger

	Propiedades propiedad.Repository
	Visitas     visita.Repository

	JWTSecret string
	JWTTTL    time.Duration
}

func NewHandler(db *gorm.DB, logger *logrus.Logger, jwtSecret string, jwtTTL time.Duration) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Logger:      logger,
		Propiedades: propiedad.NewRepository(),
		Visitas:     visita.NewRepository(),
		JWTSecret:   jwtSecret,
		JWTTTL:      jwtTTL,
	}
}

// Login emite un JWT para credenciales válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	a, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "credenciales inválidas")
		return
	}

	if !utils.CheckPassword(a.PasswordHash, req.Password) {
		utils.RespondError(w, http.StatusUnauthorized, "credenciales inválidas")
		return
	}

	token, err := auth.GenerarToken(h.JWTSecret, a.ID, h.JWTTTL)
	if err != nil {
		h.Logger.WithError(err).Error("error al generar token")
		utils.RespondError(w, http.StatusInternalServerError, "error al generar token")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// CrearAgente da de alta un agente. Si no llega contraseña se genera una
// temporal y se devuelve una única vez en la respuesta.
func (h *Handler) CrearAgente(w http.ResponseWriter, r *http.Request) {
	var req crearAgenteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	password := req.Password
	temporal := false
	if password == "" {
		generada, err := utils.GenerarPasswordTemporal()
		if err != nil {
			h.Logger.WithError(err).Error("error al generar contraseña temporal")
			utils.RespondError(w, http.StatusInternalServerError, "error al procesar contraseña")
			return
		}
		password = generada
		temporal = true
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al procesar contraseña")
		return
	}

	a := Agente{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Avatar:       req.Avatar,
		Rating:       req.Rating,
		PasswordHash: hash,
	}

	if err := h.Repository.Guardar(h.DB, &a); err != nil {
		h.Logger.WithError(err).Error("error al crear agente")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	respuesta := map[string]interface{}{"agente": a}
	if temporal {
		respuesta["passwordTemporal"] = password
	}
	utils.RespondJSON(w, http.StatusCreated, respuesta)
}

func (h *Handler) ListarAgentes(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		h.Logger.WithError(err).Error("error al listar agentes")
		utils.RespondError(w, http.StatusInternalServerError, "error al listar agentes")
		return
	}

	utils.RespondJSON(w, http.StatusOK, lista)
}

func (h *Handler) BuscarPorIDHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	a, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, a)
}

// Resumen devuelve las métricas del agente calculadas sobre el snapshot
// actual de sus propiedades y visitas.
func (h *Handler) Resumen(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	a, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	propiedades, err := h.Propiedades.ListarPorAgente(h.DB, a.ID)
	if err != nil {
		h.Logger.WithError(err).Error("error al listar propiedades del agente")
		utils.RespondError(w, http.StatusInternalServerError, "error al montar resumen")
		return
	}

	visitas, err := h.Visitas.ListarPorAgente(h.DB, a.ID)
	if err != nil {
		h.Logger.WithError(err).Error("error al listar visitas del agente")
		utils.RespondError(w, http.StatusInternalServerError, "error al montar resumen")
		return
	}

	utils.RespondJSON(w, http.StatusOK, MontarResumenAgenteDTO(*a, propiedades, visitas))
}

func (h *Handler) ActualizarAgente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existente, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	var req crearAgenteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if req.Name != "" {
		existente.Name = req.Name
	}
	if req.Email != "" {
		existente.Email = req.Email
	}
	if req.Phone != "" {
		existente.Phone = req.Phone
	}
	if req.Avatar != "" {
		existente.Avatar = req.Avatar
	}
	if req.Rating != 0 {
		existente.Rating = req.Rating
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "error al procesar contraseña")
			return
		}
		existente.PasswordHash = hash
	}

	if err := h.Repository.Actualizar(h.DB, existente); err != nil {
		h.Logger.WithError(err).Error("error al actualizar agente")
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, existente)
}

func (h *Handler) EliminarAgente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Repository.Eliminar(h.DB, id); err != nil {
		utils.RespondError(w, crmerrors.HTTPStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
