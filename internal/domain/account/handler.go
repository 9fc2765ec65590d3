package account

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediflow/mediflow/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPatientRoutes mounts signup/login on the public group and the
// profile plus booking catalogs on the token-protected group.
func (h *Handler) RegisterPatientRoutes(public, protected *echo.Group) {
	public.POST("/signup", h.PatientSignup)
	public.POST("/login", h.PatientLogin)

	protected.GET("/profile", h.GetPatientProfile)
	protected.PUT("/profile/update", h.UpdatePatientProfile)
	protected.GET("/insurances", h.ListInsurances)
	protected.GET("/pharmacies", h.ListPharmacies)
	protected.GET("/specializations", h.ListSpecializations)
	protected.GET("/physicians", h.ListPhysicians)
}

func (h *Handler) RegisterPhysicianRoutes(public, protected *echo.Group) {
	public.POST("/signup", h.PhysicianSignup)
	public.POST("/login", h.PhysicianLogin)

	protected.GET("/profile", h.GetPhysicianProfile)
	protected.GET("/patients", h.ListPatients)
	protected.GET("/medications", h.ListMedications)
}

type loginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

func (h *Handler) signup(c echo.Context, role string) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	_, token, err := h.svc.Signup(c.Request().Context(), role, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Account created successfully",
		"token":   token,
	})
}

func (h *Handler) login(c echo.Context, role string) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	acct, token, err := h.svc.Login(c.Request().Context(), role, req.UserName, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid credentials"})
	}

	resp := echo.Map{"success": true, "token": token}
	switch role {
	case auth.RolePatient:
		if p, err := h.svc.GetPatientProfile(c.Request().Context(), acct.ID); err == nil {
			resp["patient"] = p
		}
	case auth.RolePhysician:
		if p, err := h.svc.GetPhysicianProfile(c.Request().Context(), acct.ID); err == nil {
			resp["physician"] = p
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) PatientSignup(c echo.Context) error   { return h.signup(c, auth.RolePatient) }
func (h *Handler) PatientLogin(c echo.Context) error    { return h.login(c, auth.RolePatient) }
func (h *Handler) PhysicianSignup(c echo.Context) error { return h.signup(c, auth.RolePhysician) }
func (h *Handler) PhysicianLogin(c echo.Context) error  { return h.login(c, auth.RolePhysician) }

func (h *Handler) GetPatientProfile(c echo.Context) error {
	accountID := auth.AccountIDFromContext(c.Request().Context())
	p, err := h.svc.GetPatientProfile(c.Request().Context(), accountID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	acct, err := h.svc.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "account not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"patient": p,
		"account": acct,
	})
}

func (h *Handler) UpdatePatientProfile(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	p.AccountID = auth.AccountIDFromContext(c.Request().Context())
	if err := h.svc.UpdatePatientProfile(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Profile updated"})
}

func (h *Handler) GetPhysicianProfile(c echo.Context) error {
	accountID := auth.AccountIDFromContext(c.Request().Context())
	p, err := h.svc.GetPhysicianProfile(c.Request().Context(), accountID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "physician not found")
	}
	acct, err := h.svc.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "account not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"physician": p,
		"account":   acct,
	})
}

func (h *Handler) ListPhysicians(c echo.Context) error {
	items, err := h.svc.ListPhysicians(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "physicians": items})
}

func (h *Handler) ListPatients(c echo.Context) error {
	physicianID := auth.AccountIDFromContext(c.Request().Context())
	items, err := h.svc.ListPatientsOfPhysician(c.Request().Context(), physicianID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "patients": items})
}

func (h *Handler) ListInsurances(c echo.Context) error {
	items, err := h.svc.ListInsurances(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "insurances": items})
}

func (h *Handler) ListPharmacies(c echo.Context) error {
	items, err := h.svc.ListPharmacies(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "pharmacies": items})
}

func (h *Handler) ListSpecializations(c echo.Context) error {
	items, err := h.svc.ListSpecializations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "specializations": items})
}

func (h *Handler) ListMedications(c echo.Context) error {
	items, err := h.svc.ListMedications(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "medications": items})
}
