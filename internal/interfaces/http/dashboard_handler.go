package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/analytics"
)

// DashboardHandler métricas agregadas de una empresa.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del tenant
// @Description  Headcount activo, número de departamentos y ausencias pendientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(GetPrincipal(c), c.Params("companyID"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
