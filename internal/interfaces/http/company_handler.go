package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/invitation"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
)

// CompanyHandler maneja empresas: alta por invitación (superadmin), consulta y
// administración de estado.
type CompanyHandler struct {
	companyUC    *usecase.CompanyUseCase
	invitationUC *invitation.InvitationUseCase
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(companyUC *usecase.CompanyUseCase, invitationUC *invitation.InvitationUseCase) *CompanyHandler {
	return &CompanyHandler{companyUC: companyUC, invitationUC: invitationUC}
}

// Create godoc
// @Summary      Crear empresa e invitar a su admin
// @Description  Crea la empresa en estado pending y envía la invitación (24 h)
//               al email del futuro admin. Solo superadmin.
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "name, logo_url, admin_email"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.AdminEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y admin_email son requeridos"})
	}
	out, err := h.invitationUC.CreateCompany(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.CompanyListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.companyUC.List(GetPrincipal(c), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una empresa
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.companyUC.GetByID(GetPrincipal(c), c.Params("companyID"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar nombre o logo de una empresa
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                    true  "ID de la empresa"
// @Param        body       body  dto.UpdateCompanyRequest  true  "campos opcionales"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.companyUC.Update(GetPrincipal(c), c.Params("companyID"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Activar o desactivar una empresa
// @Description  Alterna active/inactive (solo superadmin). Una empresa pending
//               no puede alternarse y pending nunca es destino.
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyID  path  string                          true  "ID de la empresa"
// @Param        body       body  dto.UpdateCompanyStatusRequest  true  "status: active | inactive"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/status [patch]
func (h *CompanyHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateCompanyStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.companyUC.UpdateStatus(GetPrincipal(c), c.Params("companyID"), in.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// AcceptInvitation godoc
// @Summary      Redimir una invitación
// @Description  Activa la empresa y crea su primer companyadmin en una sola
//               transacción. El token se consume: a lo sumo una redención gana.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AcceptInvitationRequest  true  "token, name, email, password"
// @Success      201   {object}  dto.AcceptInvitationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invitations/accept [post]
func (h *CompanyHandler) AcceptInvitation(c *fiber.Ctx) error {
	var in dto.AcceptInvitationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" || in.Name == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token, name, email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.invitationUC.AcceptInvitation(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// parsePage lee limit/offset del query string con los defaults de paginación.
func parsePage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	return page
}
