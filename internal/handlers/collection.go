package handlers

import (
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/services"
)

// CollectionHandler is the generic CRUD surface: any collection name, JSON
// records in, JSON records out. The QC endpoints own the asset workflow;
// everything else the frontend stores flows through here.
type CollectionHandler struct {
  log               *logger.Logger
  collectionService services.CollectionService
}

func NewCollectionHandler(log *logger.Logger, collectionService services.CollectionService) *CollectionHandler {
  return &CollectionHandler{
    log:               log.With("handler", "CollectionHandler"),
    collectionService: collectionService,
  }
}

func (h *CollectionHandler) List(c *gin.Context) {
  records := h.collectionService.List(c.Request.Context(), c.Param("collection"))
  RespondOK(c, gin.H{"data": records})
}

func (h *CollectionHandler) Get(c *gin.Context) {
  id, err := strconv.Atoi(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  record, err := h.collectionService.Get(c.Request.Context(), c.Param("collection"), id)
  if err != nil {
    RespondAPIError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": record})
}

func (h *CollectionHandler) Create(c *gin.Context) {
  var record map[string]interface{}
  if err := c.ShouldBindJSON(&record); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  created := h.collectionService.Create(c.Request.Context(), c.Param("collection"), record)
  RespondCreated(c, gin.H{"data": created})
}

func (h *CollectionHandler) Update(c *gin.Context) {
  id, err := strconv.Atoi(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var fields map[string]interface{}
  if err := c.ShouldBindJSON(&fields); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  updated, err := h.collectionService.Update(c.Request.Context(), c.Param("collection"), id, fields)
  if err != nil {
    RespondAPIError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": updated})
}

func (h *CollectionHandler) Delete(c *gin.Context) {
  id, err := strconv.Atoi(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  h.collectionService.Delete(c.Request.Context(), c.Param("collection"), id)
  RespondOK(c, gin.H{"deleted": id})
}
