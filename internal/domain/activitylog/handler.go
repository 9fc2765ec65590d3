package activitylog

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

func (h *Handler) RegisterPatientRoutes(g *echo.Group) {
	g.GET("/activitylogs", h.ListFitness)
	g.GET("/activitylog/:id", h.GetFitness)
	g.POST("/activitylog/new", h.CreateFitness)
	g.PUT("/activitylog/:id/edit", h.UpdateFitness)
	g.DELETE("/activitylog/:id/delete", h.DeleteFitness)
}

func (h *Handler) RegisterPhysicianRoutes(g *echo.Group) {
	g.GET("/activity-log", h.ListClinical)
	g.GET("/activity-log/:id", h.GetClinical)
	g.POST("/activity-log/create", h.CreateClinical)
	g.PUT("/activity-log/update/:id", h.UpdateClinical)
	g.GET("/activity-log/patient/:id", h.PatientClinical)
}

func paramID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

// -- Fitness (patient) --

func (h *Handler) ListFitness(c echo.Context) error {
	patientID := auth.AccountIDFromContext(c.Request().Context())
	items, err := h.svc.ListFitness(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "activitylogs": items})
}

func (h *Handler) GetFitness(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid log id"})
	}
	patientID := auth.AccountIDFromContext(c.Request().Context())
	l, err := h.svc.GetFitness(c.Request().Context(), patientID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Log not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "activitylog": l})
}

func (h *Handler) CreateFitness(c echo.Context) error {
	var req FitnessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	patientID := auth.AccountIDFromContext(c.Request().Context())
	l, err := h.svc.CreateFitness(c.Request().Context(), patientID, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "Activity log created",
		"activitylog": l,
	})
}

func (h *Handler) UpdateFitness(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid log id"})
	}
	var req FitnessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	patientID := auth.AccountIDFromContext(c.Request().Context())
	l, err := h.svc.UpdateFitness(c.Request().Context(), patientID, id, &req)
	if err == ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Log not found"})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Activity log updated", "activitylog": l})
}

func (h *Handler) DeleteFitness(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid log id"})
	}
	patientID := auth.AccountIDFromContext(c.Request().Context())
	if err := h.svc.DeleteFitness(c.Request().Context(), patientID, id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Log not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Activity log deleted"})
}

// -- Clinical (physician) --

func (h *Handler) ListClinical(c echo.Context) error {
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	items, err := h.svc.ListClinical(c.Request().Context(), physicianID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "activities": items})
}

func (h *Handler) GetClinical(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid entry id"})
	}
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	e, err := h.svc.GetClinicalEntry(c.Request().Context(), physicianID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Entry not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "activity": e})
}

func (h *Handler) CreateClinical(c echo.Context) error {
	var req ClinicalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	e, err := h.svc.CreateClinical(c.Request().Context(), physicianID, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Activity recorded", "activity": e})
}

func (h *Handler) UpdateClinical(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid entry id"})
	}
	var req ClinicalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	e, err := h.svc.UpdateClinical(c.Request().Context(), physicianID, id, &req)
	if err == ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Entry not found"})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Activity updated", "activity": e})
}

func (h *Handler) PatientClinical(c echo.Context) error {
	patientID, ok := paramID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid patient id"})
	}
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	items, err := h.svc.ListClinicalForPatient(c.Request().Context(), physicianID, patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "activities": items})
}
