package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

// AlertHandler expone las alertas de stock bajo y el informe de reposición.
type AlertHandler struct {
	uc     *inventory.AlertUseCase
	report *inventory.ReportUseCase
	log    *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *inventory.AlertUseCase, report *inventory.ReportUseCase, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, report: report, log: log}
}

// List godoc
// @Summary      Alertas de stock
// @Description  Regenera las alertas desde productos y stock, las persiste y las devuelve por prioridad.
// @Tags         alerts
// @Produce      json
// @Success      200  {array}   entity.Alert
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	alerts, err := h.uc.RefreshAndPersist(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(alerts)
}

// Stats godoc
// @Summary      Resumen de alertas
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.AlertStatisticsResponse
// @Router       /api/alerts/stats [get]
func (h *AlertHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Statistics(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reconocer o resolver una alerta
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateAlertRequest  true  "alertId y action (acknowledge, unacknowledge, resolve)"
// @Success      200   {object}  entity.Alert
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alerts [patch]
func (h *AlertHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if id := c.Params("id"); id != "" {
		in.AlertID = id
	}
	alert, err := h.uc.UpdateAlert(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(alert)
}

// Report godoc
// @Summary      Informe de reposición en PDF
// @Tags         alerts
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/alerts/report.pdf [get]
func (h *AlertHandler) Report(c *fiber.Ctx) error {
	doc, err := h.report.GenerateReorderReport(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="informe-reposicion.pdf"`)
	return c.Send(doc)
}
