package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/services"
)

type EmployeeHandler struct {
	log             *logger.Logger
	employeeService services.EmployeeService
	avatarService   services.AvatarService
}

func NewEmployeeHandler(log *logger.Logger, employeeService services.EmployeeService, avatarService services.AvatarService) *EmployeeHandler {
	handlerLog := log.With("handler", "EmployeeHandler")
	return &EmployeeHandler{
		log:             handlerLog,
		employeeService: employeeService,
		avatarService:   avatarService,
	}
}

func (h *EmployeeHandler) Dashboard(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	roster, err := h.employeeService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	opts := services.ListOptions{
		Search:      c.Query("search"),
		Department:  c.Query("department"),
		BurnoutRisk: c.Query("burnoutRisk"),
		SortBy:      c.Query("sortBy"),
		SortOrder:   c.Query("sortOrder"),
	}
	employees, err := h.employeeService.List(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees, "total": len(employees)})
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}
	insight, err := h.employeeService.Get(c.Request.Context(), userID, employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insight)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}
	if err := h.employeeService.Delete(c.Request.Context(), userID, employeeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Avatar renders the generated initials disc for one employee. Browsers
// cache it hard so the PNG is deterministic per employee code.
func (h *EmployeeHandler) Avatar(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}
	insight, err := h.employeeService.Get(c.Request.Context(), userID, employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	size := 256
	if raw := c.Query("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 16 && parsed <= 1024 {
			size = parsed
		}
	}

	png, err := h.avatarService.Render(insight.Name, insight.EmployeeCode, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}

func (h *EmployeeHandler) Graph(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	graph, err := h.employeeService.Graph(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, graph)
}
