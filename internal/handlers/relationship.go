package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/services"
)

type RelationshipHandler struct {
	log                 *logger.Logger
	relationshipService services.RelationshipService
}

func NewRelationshipHandler(log *logger.Logger, relationshipService services.RelationshipService) *RelationshipHandler {
	handlerLog := log.With("handler", "RelationshipHandler")
	return &RelationshipHandler{log: handlerLog, relationshipService: relationshipService}
}

func (h *RelationshipHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	relationships, err := h.relationshipService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"relationships": relationships, "total": len(relationships)})
}

func (h *RelationshipHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var input services.EdgeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := h.relationshipService.Upsert(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *RelationshipHandler) Bulk(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var inputs []services.EdgeInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(inputs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty edge list"})
		return
	}
	records, err := h.relationshipService.BulkUpsert(c.Request.Context(), userID, inputs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"relationships": records, "total": len(records)})
}

func (h *RelationshipHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	relationshipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relationship id"})
		return
	}
	if err := h.relationshipService.Delete(c.Request.Context(), userID, relationshipID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
