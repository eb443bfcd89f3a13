package api

import (
	"context"
	"net/http"
	"strconv"

	"harbormaster/internal/app/ds"

	"github.com/gin-gonic/gin"
)

type HaulerHandler struct {
	Haulers interface {
		List(ctx context.Context) ([]ds.Hauler, error)
		Get(ctx context.Context, id int) (ds.Hauler, error)
		Create(ctx context.Context, hauler ds.Hauler) (ds.Hauler, error)
		Update(ctx context.Context, id int, hauler ds.Hauler) (ds.Hauler, error)
		Delete(ctx context.Context, id int) error
	}
}

// GetHaulersAPI - GET /haulers
func (h *HaulerHandler) GetHaulersAPI(c *gin.Context) {
	haulers, err := h.Haulers.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, haulers)
}

// GetHaulerAPI - GET /haulers/:id
func (h *HaulerHandler) GetHaulerAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	hauler, err := h.Haulers.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hauler)
}

// CreateHaulerAPI - POST /haulers
func (h *HaulerHandler) CreateHaulerAPI(c *gin.Context) {
	var hauler ds.Hauler
	if err := c.ShouldBindJSON(&hauler); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Haulers.Create(c.Request.Context(), hauler)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/haulers/"+strconv.Itoa(created.ID))
	c.JSON(http.StatusCreated, created)
}

// UpdateHaulerAPI - PUT /haulers/:id
func (h *HaulerHandler) UpdateHaulerAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var hauler ds.Hauler
	if err := c.ShouldBindJSON(&hauler); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.Haulers.Update(c.Request.Context(), id, hauler)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHaulerAPI - DELETE /haulers/:id
func (h *HaulerHandler) DeleteHaulerAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Haulers.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
