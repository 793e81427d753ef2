package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/dto"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/reports"
)

// ReportHandler expone las vistas derivadas: stock, reposición, ingresos,
// historial de ventas y dashboard (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockList godoc
// @Summary      Proyección de stock actual con datos del catálogo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Filtro por nombre o barcode"
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockList(c *fiber.Ctx) error {
	items, err := h.uc.StockList(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// ReorderList godoc
// @Summary      Medicamentos en o bajo su umbral de reposición
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReorderItemResponse
// @Router       /api/reports/reorder [get]
func (h *ReportHandler) ReorderList(c *fiber.Ctx) error {
	items, err := h.uc.ReorderList()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// Revenue godoc
// @Summary      Ingresos de un día calendario o total histórico
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Día YYYY-MM-DD (default hoy); 'all' = total histórico"
// @Success      200   {object}  dto.RevenueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/revenue [get]
func (h *ReportHandler) Revenue(c *fiber.Ctx) error {
	dateParam := c.Query("date")
	if dateParam == "all" {
		out, err := h.uc.TotalRevenue()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	day := time.Now()
	if dateParam != "" {
		parsed, err := time.ParseInLocation(dto.DateLayout, dateParam, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
		day = parsed
	}
	out, err := h.uc.RevenueForDay(day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesHistory godoc
// @Summary      Historial de ventas (más reciente primero)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *ReportHandler) SalesHistory(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.SalesHistory(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      KPIs del tablero: medicamentos, stock total, bajo umbral, ingresos de hoy
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
