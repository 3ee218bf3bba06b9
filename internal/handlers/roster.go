package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/services"
)

// 5 MiB is generous for rosters of a few hundred rows.
const maxUploadBytes = 5 << 20

type RosterHandler struct {
	log           *logger.Logger
	rosterService services.RosterService
}

func NewRosterHandler(log *logger.Logger, rosterService services.RosterService) *RosterHandler {
	handlerLog := log.With("handler", "RosterHandler")
	return &RosterHandler{log: handlerLog, rosterService: rosterService}
}

// Upload ingests one CSV roster. File presence and extension are checked
// before any decoding so the obvious client mistakes fail fast with a 400.
// The `format` query selects the response shape: `detail` for the id-keyed
// map, anything else for the promotion roster.
func (h *RosterHandler) Upload(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only CSV files are supported"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}

	mode := services.ModePromotion
	if c.Query("format") == string(services.ModeDetail) {
		mode = services.ModeDetail
	}

	result, err := h.rosterService.Ingest(c.Request.Context(), userID, data, mode)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Mode == services.ModeDetail {
		c.JSON(http.StatusOK, result.Detail)
		return
	}
	c.JSON(http.StatusOK, result.Promotion)
}
