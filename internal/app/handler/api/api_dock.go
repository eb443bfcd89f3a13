package api

import (
	"context"
	"net/http"
	"strconv"

	"harbormaster/internal/app/ds"

	"github.com/gin-gonic/gin"
)

type DockHandler struct {
	Fleet interface {
		ListDocks(ctx context.Context) ([]ds.Dock, error)
		GetDock(ctx context.Context, id int) (ds.Dock, error)
		DockOccupancy(ctx context.Context, id int) (ds.DockOccupancy, error)
		CreateDock(ctx context.Context, dock ds.Dock) (ds.Dock, error)
		UpdateDock(ctx context.Context, id int, dock ds.Dock) (ds.Dock, error)
		DeleteDock(ctx context.Context, id int) error
	}
}

// GetDocksAPI godoc
// @Summary  List docks
// @Tags     docks
// @Produce  json
// @Success  200 {array} ds.Dock
// @Router   /docks [get]
func (h *DockHandler) GetDocksAPI(c *gin.Context) {
	docks, err := h.Fleet.ListDocks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docks)
}

// GetDockAPI godoc
// @Summary  Get a dock
// @Tags     docks
// @Produce  json
// @Param    id path int true "Dock ID"
// @Success  200 {object} ds.Dock
// @Failure  404 {object} errorResponse
// @Router   /docks/{id} [get]
func (h *DockHandler) GetDockAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dock, err := h.Fleet.GetDock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dock)
}

// GetDockOccupancyAPI godoc
// @Summary  Capacity and current ship count of a dock
// @Tags     docks
// @Produce  json
// @Param    id path int true "Dock ID"
// @Success  200 {object} ds.DockOccupancy
// @Failure  404 {object} errorResponse
// @Router   /docks/{id}/occupancy [get]
func (h *DockHandler) GetDockOccupancyAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	occ, err := h.Fleet.DockOccupancy(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, occ)
}

// CreateDockAPI godoc
// @Summary  Create a dock
// @Tags     docks
// @Accept   json
// @Produce  json
// @Param    dock body ds.Dock true "Dock"
// @Success  201 {object} ds.Dock
// @Failure  400 {object} errorResponse
// @Router   /docks [post]
func (h *DockHandler) CreateDockAPI(c *gin.Context) {
	var dock ds.Dock
	if err := c.ShouldBindJSON(&dock); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Fleet.CreateDock(c.Request.Context(), dock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/docks/"+strconv.Itoa(created.ID))
	c.JSON(http.StatusCreated, created)
}

// UpdateDockAPI godoc
// @Summary  Update a dock
// @Description Capacity may not drop below the number of ships at the dock.
// @Tags     docks
// @Accept   json
// @Produce  json
// @Param    id   path int     true "Dock ID"
// @Param    dock body ds.Dock true "Dock"
// @Success  200 {object} ds.Dock
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /docks/{id} [put]
func (h *DockHandler) UpdateDockAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dock ds.Dock
	if err := c.ShouldBindJSON(&dock); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.Fleet.UpdateDock(c.Request.Context(), id, dock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDockAPI godoc
// @Summary  Delete an empty dock
// @Tags     docks
// @Param    id path int true "Dock ID"
// @Success  204
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /docks/{id} [delete]
func (h *DockHandler) DeleteDockAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Fleet.DeleteDock(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
