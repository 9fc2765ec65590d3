package healthrecord

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
	g.POST("/healthRecord", h.PatientRecords)
	g.GET("/healthRecord/record/:id", h.PatientRecordDetail)
}

func (h *Handler) RegisterPhysicianRoutes(g *echo.Group) {
	g.POST("/healthRecord/create", h.Create)
	g.GET("/healthRecord/record/:id", h.PhysicianRecordDetail)
	g.GET("/patient/:id/visits", h.PatientVisits)
}

// PatientRecords serves the patient's record list. The list screen posts
// with an empty body.
func (h *Handler) PatientRecords(c echo.Context) error {
	patientID := auth.AccountIDFromContext(c.Request().Context())
	items, err := h.svc.ListForPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "healthrecords": items})
}

func (h *Handler) detail(c echo.Context, fetch func(uuid.UUID, uuid.UUID) ([]*FlatRow, error)) error {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid record id"})
	}
	accountID := auth.AccountIDFromContext(c.Request().Context())
	rows, err := fetch(accountID, recordID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Record not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "healthrecord": rows})
}

func (h *Handler) PatientRecordDetail(c echo.Context) error {
	return h.detail(c, func(accountID, recordID uuid.UUID) ([]*FlatRow, error) {
		return h.svc.DetailForPatient(c.Request().Context(), accountID, recordID)
	})
}

func (h *Handler) PhysicianRecordDetail(c echo.Context) error {
	return h.detail(c, func(accountID, recordID uuid.UUID) ([]*FlatRow, error) {
		return h.svc.DetailForPhysician(c.Request().Context(), accountID, recordID)
	})
}

func (h *Handler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	rec, err := h.svc.Create(c.Request().Context(), physicianID, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"message":      "Health record created",
		"healthrecord": rec,
	})
}

func (h *Handler) PatientVisits(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid patient id"})
	}
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	items, err := h.svc.ListVisits(c.Request().Context(), physicianID, patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "visits": items})
}
