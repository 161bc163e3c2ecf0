package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
)

// DesignationHandler CRUD de cargos de una empresa. Misma forma que
// DepartmentHandler; comparte DTOs.
type DesignationHandler struct {
	uc *usecase.DesignationUseCase
}

// NewDesignationHandler construye el handler de cargos.
func NewDesignationHandler(uc *usecase.DesignationUseCase) *DesignationHandler {
	return &DesignationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cargo
// @Tags         designations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                       true  "ID de la empresa"
// @Param        body       body  dto.CreateDepartmentRequest  true  "name"
// @Success      201  {object}  dto.DepartmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/designations [post]
func (h *DesignationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(GetPrincipal(c), c.Params("companyID"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cargos
// @Tags         designations
// @Security     Bearer
// @Produce      json
// @Param        companyID  path   string  true   "ID de la empresa"
// @Param        limit      query  int     false  "máximo de filas (default 20)"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {object}  dto.DepartmentListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/designations [get]
func (h *DesignationHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(GetPrincipal(c), c.Params("companyID"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar un cargo
// @Tags         designations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                       true  "ID de la empresa"
// @Param        id         path  string                       true  "ID del cargo"
// @Param        body       body  dto.CreateDepartmentRequest  true  "name"
// @Success      200  {object}  dto.DepartmentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/designations/{id} [put]
func (h *DesignationHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateDepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Update(GetPrincipal(c), c.Params("companyID"), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un cargo
// @Tags         designations
// @Security     Bearer
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del cargo"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/designations/{id} [delete]
func (h *DesignationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetPrincipal(c), c.Params("companyID"), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
