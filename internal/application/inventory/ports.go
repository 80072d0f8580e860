package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

// ReorderReport datos del informe de reposición.
type ReorderReport struct {
	Title       string
	GeneratedAt time.Time
	Alerts      []entity.Alert
	Stats       inventory.AlertStatistics
}

// ReorderReportGenerator genera la representación PDF del informe (puerto hacia infraestructura).
type ReorderReportGenerator interface {
	GenerateReorderReport(ctx context.Context, report ReorderReport) ([]byte, error)
}

// Clock fuente de la hora actual; en tests se fija.
type Clock func() time.Time
