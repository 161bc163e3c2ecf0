package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
)

// DepartmentHandler CRUD de departamentos de una empresa.
type DepartmentHandler struct {
	uc *usecase.DepartmentUseCase
}

// NewDepartmentHandler construye el handler de departamentos.
func NewDepartmentHandler(uc *usecase.DepartmentUseCase) *DepartmentHandler {
	return &DepartmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear departamento
// @Tags         departments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                       true  "ID de la empresa"
// @Param        body       body  dto.CreateDepartmentRequest  true  "name"
// @Success      201  {object}  dto.DepartmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/departments [post]
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
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
// @Summary      Listar departamentos
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Param        companyID  path   string  true   "ID de la empresa"
// @Param        limit      query  int     false  "máximo de filas (default 20)"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {object}  dto.DepartmentListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(GetPrincipal(c), c.Params("companyID"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un departamento
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del departamento"
// @Success      200  {object}  dto.DepartmentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/departments/{id} [get]
func (h *DepartmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetPrincipal(c), c.Params("companyID"), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar un departamento
// @Tags         departments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                       true  "ID de la empresa"
// @Param        id         path  string                       true  "ID del departamento"
// @Param        body       body  dto.CreateDepartmentRequest  true  "name"
// @Success      200  {object}  dto.DepartmentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/departments/{id} [put]
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
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
// @Summary      Eliminar un departamento
// @Tags         departments
// @Security     Bearer
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del departamento"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetPrincipal(c), c.Params("companyID"), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
