package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
)

// LeaveHandler solicitudes de ausencia de una empresa.
type LeaveHandler struct {
	uc *usecase.LeaveUseCase
}

// NewLeaveHandler construye el handler de ausencias.
func NewLeaveHandler(uc *usecase.LeaveUseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// Request godoc
// @Summary      Solicitar una ausencia
// @Tags         leaves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                  true  "ID de la empresa"
// @Param        body       body  dto.CreateLeaveRequest  true  "employee_id, kind, from_date, to_date, reason"
// @Success      201  {object}  dto.LeaveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/leaves [post]
func (h *LeaveHandler) Request(c *fiber.Ctx) error {
	var in dto.CreateLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EmployeeID == "" || in.Kind == "" || in.FromDate.IsZero() || in.ToDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_id, kind, from_date y to_date son requeridos"})
	}
	out, err := h.uc.Request(GetPrincipal(c), c.Params("companyID"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ausencias
// @Description  Opcionalmente filtradas por empleado con ?employee_id=.
// @Tags         leaves
// @Security     Bearer
// @Produce      json
// @Param        companyID    path   string  true   "ID de la empresa"
// @Param        employee_id  query  string  false  "filtrar por empleado"
// @Param        limit        query  int     false  "máximo de filas (default 20)"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {object}  dto.LeaveListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/leaves [get]
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(GetPrincipal(c), c.Params("companyID"), c.Query("employee_id"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Decide godoc
// @Summary      Aprobar o rechazar una ausencia pendiente
// @Description  Una solicitud ya decidida responde 409; la decisión no se pisa.
// @Tags         leaves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                  true  "ID de la empresa"
// @Param        id         path  string                  true  "ID de la solicitud"
// @Param        body       body  dto.DecideLeaveRequest  true  "status: approved | rejected"
// @Success      200  {object}  dto.LeaveResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/leaves/{id}/decision [put]
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	var in dto.DecideLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Decide(GetPrincipal(c), c.Params("companyID"), c.Params("id"), in.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
