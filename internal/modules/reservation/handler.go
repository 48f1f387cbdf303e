package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"campusspaces/internal/domain"
	"campusspaces/internal/middleware"
	"campusspaces/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the reservation endpoints. The group must already
// carry the auth middleware; reasons are public and registered separately.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.CreateReservation)
	rg.GET("/reservations", h.ListReservations)
	rg.PATCH("/reservations/:id/status", h.ChangeStatus)
	rg.GET("/spaces/:id/availability", h.Availability)
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations/reasons", h.ListReasons)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	actor := middleware.IdentityFromContext(c)
	r, err := h.service.CreateReservation(c.Request.Context(), actor, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": toView(r)})
}

func (h *Handler) ListReservations(c *gin.Context) {
	scope := Scope(c.DefaultQuery("scope", string(ScopeSelf)))

	actor := middleware.IdentityFromContext(c)
	rs, err := h.service.ListReservations(c.Request.Context(), actor, scope)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": toViews(rs)})
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation ID")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	actor := middleware.IdentityFromContext(c)
	r, err := h.service.ChangeStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": toView(r)})
}

// Availability serves two shapes from one route: with start_time and
// end_time it answers the window check, with only a date it returns the
// day's booked slots.
func (h *Handler) Availability(c *gin.Context) {
	spaceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid space ID")
		return
	}

	date := c.Query("date")
	start := c.Query("start_time")
	end := c.Query("end_time")

	if start != "" || end != "" {
		result, err := h.service.CheckAvailability(c.Request.Context(), spaceID, date, start, end)
		if err != nil {
			handleError(c, err)
			return
		}
		response.Success(c, http.StatusOK, result)
		return
	}

	day, err := h.service.DayAvailability(c.Request.Context(), spaceID, date)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, day)
}

func (h *Handler) ListReasons(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"reasons": domain.ReservationReasons()})
}

// handleError maps the error taxonomy onto HTTP verbatim, so callers can
// distinguish an occupied slot from a permissions failure.
func handleError(c *gin.Context, err error) {
	var conflict *ConflictError

	switch {
	case errors.Is(err, ErrInvalidWindow):
		response.Error(c, http.StatusBadRequest, "INVALID_WINDOW", "Start time must be before end time")
	case errors.Is(err, ErrPastDate):
		response.Error(c, http.StatusBadRequest, "PAST_DATE", "Date must not be in the past")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrInvalidSpace):
		response.Error(c, http.StatusNotFound, "INVALID_SPACE", "Space is unknown or inactive")
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusConflict, "CONFLICT",
			"Space is already reserved for the selected time",
			gin.H{"conflicting_reservation_id": conflict.ExistingID})
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Space is already reserved for the selected time")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	case errors.Is(err, ErrIllegalTransition):
		response.Error(c, http.StatusUnprocessableEntity, "ILLEGAL_TRANSITION", "Status transition is not allowed")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission for this operation")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
