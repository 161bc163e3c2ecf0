package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
)

// EmployeeHandler CRUD de empleados de una empresa.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Description  La ficha del empleado es independiente del usuario de acceso;
//               un empleado puede existir sin cuenta.
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                     true  "ID de la empresa"
// @Param        body       body  dto.CreateEmployeeRequest  true  "name, email, salary, ..."
// @Success      201  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
	}
	out, err := h.uc.Create(GetPrincipal(c), c.Params("companyID"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        companyID  path   string  true   "ID de la empresa"
// @Param        limit      query  int     false  "máximo de filas (default 20)"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(GetPrincipal(c), c.Params("companyID"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetPrincipal(c), c.Params("companyID"), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar un empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                     true  "ID de la empresa"
// @Param        id         path  string                     true  "ID del empleado"
// @Param        body       body  dto.UpdateEmployeeRequest  true  "campos opcionales"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetPrincipal(c), c.Params("companyID"), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un empleado
// @Tags         employees
// @Security     Bearer
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        id         path  string  true  "ID del empleado"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetPrincipal(c), c.Params("companyID"), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
