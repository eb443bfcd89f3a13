package handler

import (
	"context"
	"net/http"
	"time"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/handler/api"
	"harbormaster/internal/app/handler/middleware"
	"harbormaster/internal/app/repository"
	"harbormaster/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "harbormaster/docs" // Swagger docs
)

const healthTimeout = 2 * time.Second

type Handler struct {
	Repository       *repository.Repository
	DockAPIHandler   *api.DockHandler
	ShipAPIHandler   *api.ShipHandler
	HaulerAPIHandler *api.HaulerHandler
}

// NewHandler wires the API handlers. photos may be nil.
func NewHandler(rep *repository.Repository, photos *repository.PhotoStore) *Handler {
	fleet := service.NewFleet(rep)
	ships := &api.ShipHandler{Fleet: fleet}
	if photos != nil {
		ships.Photos = photos
	}
	return &Handler{
		Repository:       rep,
		DockAPIHandler:   &api.DockHandler{Fleet: fleet},
		ShipAPIHandler:   ships,
		HaulerAPIHandler: &api.HaulerHandler{Haulers: service.NewHaulers(rep)},
	}
}

// NewRouter - gin engine with the middleware chain and all routes
func (h *Handler) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics())
	h.SetupRoutes(router)
	return router
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// docks
	router.GET("/docks", h.DockAPIHandler.GetDocksAPI)
	router.GET("/docks/:id", h.DockAPIHandler.GetDockAPI)
	router.GET("/docks/:id/occupancy", h.DockAPIHandler.GetDockOccupancyAPI)
	router.POST("/docks", h.DockAPIHandler.CreateDockAPI)
	router.PUT("/docks/:id", h.DockAPIHandler.UpdateDockAPI)
	router.DELETE("/docks/:id", h.DockAPIHandler.DeleteDockAPI)

	// ships
	router.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
	router.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)
	router.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
	router.PUT("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
	router.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
	router.POST("/ships/:id/photo", h.ShipAPIHandler.AddShipPhotoAPI)
	router.GET("/ships/:id/photo", h.ShipAPIHandler.GetShipPhotoAPI)

	// haulers
	router.GET("/haulers", h.HaulerAPIHandler.GetHaulersAPI)
	router.GET("/haulers/:id", h.HaulerAPIHandler.GetHaulerAPI)
	router.POST("/haulers", h.HaulerAPIHandler.CreateHaulerAPI)
	router.PUT("/haulers/:id", h.HaulerAPIHandler.UpdateHaulerAPI)
	router.DELETE("/haulers/:id", h.HaulerAPIHandler.DeleteHaulerAPI)
}

// Health - GET /healthz, pings the database
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()
	if err := h.Repository.Ping(ctx); err != nil {
		api.RespondErrorStatus(c, http.StatusServiceUnavailable, apperr.Store("ping database", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
