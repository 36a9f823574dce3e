package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MarvicInmobiliaria/api-crm/internal/agente"
	"github.com/MarvicInmobiliaria/api-crm/internal/auth"
	"github.com/MarvicInmobiliaria/api-crm/internal/cliente"
	"github.com/MarvicInmobiliaria/api-crm/internal/config"
	"github.com/MarvicInmobiliaria/api-crm/internal/dashboard"
	"github.com/MarvicInmobiliaria/api-crm/internal/interaccion"
	"github.com/MarvicInmobiliaria/api-crm/internal/lead"
	"github.com/MarvicInmobiliaria/api-crm/internal/propiedad"
	"github.com/MarvicInmobiliaria/api-crm/internal/visita"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Error al cargar la configuración")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Error al conectar a la base de datos")
	}

	// AutoMigrate para todos los modelos
	if err := db.AutoMigrate(
		&agente.Agente{},
		&propiedad.Propiedad{},
		&cliente.Cliente{},
		&visita.Visita{},
		&interaccion.Interaccion{},
		&lead.Lead{},
	); err != nil {
		logger.WithError(err).Fatal("Error en AutoMigrate")
	}

	// Handlers
	jwtTTL := time.Duration(cfg.JWTTTLMinutes) * time.Minute
	agenteHandler := agente.NewHandler(db, logger, cfg.JWTSecret, jwtTTL)
	propiedadHandler := propiedad.NewHandler(db, logger)
	clienteHandler := cliente.NewHandler(db, logger)
	visitaHandler := visita.NewHandler(db, logger)
	interaccionHandler := interaccion.NewHandler(db, logger)
	leadHandler := lead.NewHandler(db, logger, cfg.WebhookSecret, cfg.LeadListLimit)
	dashboardHandler := dashboard.NewHandler(db, logger)

	// Router
	r := mux.NewRouter()

	// Rutas públicas: login y webhook de leads (secreto bearer propio)
	r.HandleFunc("/api/login", agenteHandler.Login).Methods("POST")
	r.HandleFunc("/api/leads", leadHandler.RecibirWebhook).Methods("POST")

	// Rutas protegidas por JWT
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware(cfg.JWTSecret))

	// Rutas de propiedades
	api.HandleFunc("/propiedades", propiedadHandler.CrearPropiedad).Methods("POST")
	api.HandleFunc("/propiedades", propiedadHandler.ListarPropiedades).Methods("GET")
	api.HandleFunc("/propiedades/{id}", propiedadHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/propiedades/{id}", propiedadHandler.ActualizarPropiedad).Methods("PUT")
	api.HandleFunc("/propiedades/{id}", propiedadHandler.EliminarPropiedad).Methods("DELETE")

	// Rutas de clientes
	api.HandleFunc("/clientes", clienteHandler.CrearCliente).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorIDHTTP).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.ActualizarCliente).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.EliminarCliente).Methods("DELETE")

	// Rutas de agentes
	api.HandleFunc("/agentes", agenteHandler.CrearAgente).Methods("POST")
	api.HandleFunc("/agentes", agenteHandler.ListarAgentes).Methods("GET")
	api.HandleFunc("/agentes/{id}", agenteHandler.BuscarPorIDHTTP).Methods("GET")
	api.HandleFunc("/agentes/{id}", agenteHandler.ActualizarAgente).Methods("PUT")
	api.HandleFunc("/agentes/{id}", agenteHandler.EliminarAgente).Methods("DELETE")
	api.HandleFunc("/agentes/{id}/resumen", agenteHandler.Resumen).Methods("GET")

	// Rutas de visitas y agenda
	api.HandleFunc("/visitas", visitaHandler.CrearVisita).Methods("POST")
	api.HandleFunc("/visitas", visitaHandler.ListarVisitas).Methods("GET")
	api.HandleFunc("/visitas/{id}", visitaHandler.BuscarPorIDHTTP).Methods("GET")
	api.HandleFunc("/visitas/{id}", visitaHandler.ActualizarVisita).Methods("PUT")
	api.HandleFunc("/visitas/{id}", visitaHandler.EliminarVisita).Methods("DELETE")
	api.HandleFunc("/agenda", visitaHandler.Agenda).Methods("GET")

	// Rutas de interacciones
	api.HandleFunc("/interacciones", interaccionHandler.CrearInteraccion).Methods("POST")
	api.HandleFunc("/interacciones", interaccionHandler.ListarInteracciones).Methods("GET")
	api.HandleFunc("/interacciones/{id}", interaccionHandler.BuscarPorIDHTTP).Methods("GET")
	api.HandleFunc("/interacciones/{id}", interaccionHandler.EliminarInteraccion).Methods("DELETE")

	// Rutas de leads (lectura y triaje)
	api.HandleFunc("/leads", leadHandler.ListarLeads).Methods("GET")
	api.HandleFunc("/leads/conteo", leadHandler.ContarLeads).Methods("GET")
	api.HandleFunc("/leads/{id}/estado", leadHandler.CambiarEstadoHTTP).Methods("PUT")

	// Panel de control
	api.HandleFunc("/dashboard", dashboardHandler.Resumen).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	logger.Infof("Servidor escuchando en el puerto %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		logger.WithError(err).Fatal("El servidor no pudo arrancar")
	}
}
