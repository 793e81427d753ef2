package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/pos"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain"
)

// POSHandler maneja las ventas del punto de venta (protegido).
type POSHandler struct {
	uc *pos.UseCase
}

// NewPOSHandler construye el handler.
func NewPOSHandler(uc *pos.UseCase) *POSHandler {
	return &POSHandler{uc: uc}
}

// CreateSale godoc
// @Summary      Registrar venta
// @Description  Valida existencia, vencimiento, receta (RX), cantidad y stock
//
//	en ese orden; la primera falla rechaza la venta sin efectos.
//
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "medicine_id, quantity, has_prescription"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/sales [post]
func (h *POSHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MedicineID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "medicine_id es requerido"})
	}
	out, err := h.uc.ApplySale(c.UserContext(), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		}
		if err == domain.ErrExpiredMedicine {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EXPIRED", Message: "medicamento vencido"})
		}
		if err == domain.ErrPrescriptionRequired {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRESCRIPTION_REQUIRED", Message: "venta RX requiere receta"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
