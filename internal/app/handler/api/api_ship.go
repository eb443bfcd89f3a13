package api

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

const maxPhotoSize = 10 << 20 // 10 MB

type ShipHandler struct {
	Fleet interface {
		ListShips(ctx context.Context) ([]ds.Ship, error)
		GetShip(ctx context.Context, id int) (ds.Ship, error)
		CreateShip(ctx context.Context, ship ds.Ship) (ds.Ship, error)
		UpdateShip(ctx context.Context, id int, ship ds.Ship) (ds.Ship, error)
		DeleteShip(ctx context.Context, id int) error
	}
	// Photos is nil when object storage is not configured.
	Photos interface {
		Put(ctx context.Context, shipID int, r io.Reader, size int64, contentType string) error
		Get(ctx context.Context, shipID int) (io.ReadCloser, minio.ObjectInfo, error)
		Remove(ctx context.Context, shipID int) error
	}
}

// GetShipsAPI godoc
// @Summary  List ships
// @Tags     ships
// @Produce  json
// @Success  200 {array} ds.Ship
// @Router   /ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	ships, err := h.Fleet.ListShips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ships)
}

// GetShipAPI godoc
// @Summary  Get a ship
// @Tags     ships
// @Produce  json
// @Param    id path int true "Ship ID"
// @Success  200 {object} ds.Ship
// @Failure  404 {object} errorResponse
// @Router   /ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ship, err := h.Fleet.GetShip(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ship)
}

// CreateShipAPI godoc
// @Summary  Create a ship
// @Description A dockId, when given, must name an existing dock with a free berth.
// @Tags     ships
// @Accept   json
// @Produce  json
// @Param    ship body ds.Ship true "Ship"
// @Success  201 {object} ds.Ship
// @Failure  400 {object} errorResponse
// @Router   /ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var ship ds.Ship
	if err := c.ShouldBindJSON(&ship); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Fleet.CreateShip(c.Request.Context(), ship)
	if err != nil {
		// the dock is referenced from the body, not the URL
		if apperr.KindOf(err) == apperr.KindNotFound {
			RespondErrorStatus(c, http.StatusBadRequest, err)
			return
		}
		respondError(c, err)
		return
	}
	c.Header("Location", "/ships/"+strconv.Itoa(created.ID))
	c.JSON(http.StatusCreated, created)
}

// UpdateShipAPI godoc
// @Summary  Update a ship
// @Description Moving a ship to another dock is checked against that dock's capacity.
// @Tags     ships
// @Accept   json
// @Produce  json
// @Param    id   path int     true "Ship ID"
// @Param    ship body ds.Ship true "Ship"
// @Success  200 {object} ds.Ship
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /ships/{id} [put]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var ship ds.Ship
	if err := c.ShouldBindJSON(&ship); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.Fleet.UpdateShip(c.Request.Context(), id, ship)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteShipAPI godoc
// @Summary  Delete a ship
// @Tags     ships
// @Param    id path int true "Ship ID"
// @Success  204
// @Failure  404 {object} errorResponse
// @Router   /ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Fleet.DeleteShip(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	if h.Photos != nil {
		if err := h.Photos.Remove(c.Request.Context(), id); err != nil {
			logrus.Warnf("remove photo of ship %d: %v", id, err)
		}
	}
	c.Status(http.StatusNoContent)
}

// AddShipPhotoAPI godoc
// @Summary  Upload a ship photo
// @Tags     ships
// @Accept   multipart/form-data
// @Param    id   path     int  true "Ship ID"
// @Param    file formData file true "Photo"
// @Success  204
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Failure  503 {object} errorResponse
// @Router   /ships/{id}/photo [post]
func (h *ShipHandler) AddShipPhotoAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if h.Photos == nil {
		RespondErrorStatus(c, http.StatusServiceUnavailable, apperr.Store("upload photo", errNoPhotoStorage))
		return
	}
	if _, err := h.Fleet.GetShip(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoSize)
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperr.Validation("no photo file provided: %v", err))
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, apperr.Validation("read photo: %v", err))
		return
	}
	defer file.Close()

	if err := h.Photos.Put(c.Request.Context(), id, file, header.Size, header.Header.Get("Content-Type")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetShipPhotoAPI godoc
// @Summary  Download a ship photo
// @Tags     ships
// @Produce  octet-stream
// @Param    id path int true "Ship ID"
// @Success  200
// @Failure  404 {object} errorResponse
// @Failure  503 {object} errorResponse
// @Router   /ships/{id}/photo [get]
func (h *ShipHandler) GetShipPhotoAPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if h.Photos == nil {
		RespondErrorStatus(c, http.StatusServiceUnavailable, apperr.Store("get photo", errNoPhotoStorage))
		return
	}
	body, info, err := h.Photos.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, body, nil)
}
