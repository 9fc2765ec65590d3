package appointment

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mediflow/mediflow/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPatientRoutes mounts the patient-side appointment endpoints on a
// token-protected group.
func (h *Handler) RegisterPatientRoutes(g *echo.Group) {
	g.POST("/dashboard", h.PatientDashboard)
	g.GET("/appointments", h.PatientAppointments)
	g.POST("/appointment/book", h.Book)
	g.PUT("/appointment/:id/cancel", h.Cancel)
}

func (h *Handler) RegisterPhysicianRoutes(g *echo.Group) {
	g.GET("/appointments", h.PhysicianAppointments)
	g.PUT("/appointment/:id/status", h.SetStatus)
	g.GET("/dashboard-summary", h.DashboardSummary)
}

func (h *Handler) patientList(c echo.Context) error {
	patientID := auth.AccountIDFromContext(c.Request().Context())
	items, err := h.svc.ListForPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "appointments": items})
}

// PatientDashboard serves the dashboard's POST-shaped appointment fetch.
func (h *Handler) PatientDashboard(c echo.Context) error    { return h.patientList(c) }
func (h *Handler) PatientAppointments(c echo.Context) error { return h.patientList(c) }

func (h *Handler) Book(c echo.Context) error {
	var req BookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	patientID := auth.AccountIDFromContext(c.Request().Context())
	a, err := h.svc.Book(c.Request().Context(), patientID, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "Appointment booked successfully",
		"appointment": a,
	})
}

func (h *Handler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid appointment id"})
	}
	patientID := auth.AccountIDFromContext(c.Request().Context())
	if err := h.svc.Cancel(c.Request().Context(), patientID, id); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Appointment cancelled"})
}

func (h *Handler) PhysicianAppointments(c echo.Context) error {
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	items, err := h.svc.ListForPhysician(c.Request().Context(), physicianID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "appointments": items})
}

type statusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) SetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid appointment id"})
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	if err := h.svc.SetStatus(c.Request().Context(), physicianID, id, req.Status); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Appointment updated"})
}

func (h *Handler) DashboardSummary(c echo.Context) error {
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	counts, err := h.svc.DashboardSummary(c.Request().Context(), physicianID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"pending":   counts[StatusPending],
		"completed": counts[StatusCompleted],
		"cancelled": counts[StatusCancelled],
	})
}
