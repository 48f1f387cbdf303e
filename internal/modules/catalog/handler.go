package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"campusspaces/internal/domain"
	"campusspaces/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/spaces", h.ListSpaces)
	rg.GET("/spaces/:id", h.GetSpace)
	rg.GET("/categories", h.ListCategories)
}

// RegisterAdminRoutes mounts catalog mutation endpoints; the group must
// carry auth + admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/spaces", h.CreateSpace)
	rg.PUT("/spaces/:id", h.UpdateSpace)
}

func (h *Handler) ListSpaces(c *gin.Context) {
	spaces, err := h.service.ListSpaces(c.Request.Context(), c.Query("category"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"spaces": spaces})
}

func (h *Handler) GetSpace(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid space ID")
		return
	}

	space, err := h.service.GetSpace(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !space.IsActive {
		response.Error(c, http.StatusNotFound, "INVALID_SPACE", "Space is unknown or inactive")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"space": space})
}

func (h *Handler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"categories": domain.SpaceCategories()})
}

func (h *Handler) CreateSpace(c *gin.Context) {
	var req CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	space, err := h.service.CreateSpace(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"space": space})
}

func (h *Handler) UpdateSpace(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid space ID")
		return
	}

	var req UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	space, err := h.service.UpdateSpace(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"space": space})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSpaceNotFound):
		response.Error(c, http.StatusNotFound, "INVALID_SPACE", "Space is unknown or inactive")
	case errors.Is(err, ErrInvalidCategory):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown space category")
	case errors.Is(err, ErrInvalidSpaceData):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid space data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
