package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// ReportUseCase genera el informe PDF de reposición a partir de alertas recién regeneradas.
type ReportUseCase struct {
	tx        repository.TxRunner
	generator ReorderReportGenerator
	now       Clock
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(tx repository.TxRunner, generator ReorderReportGenerator, now Clock) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{tx: tx, generator: generator, now: now}
}

// GenerateReorderReport regenera y persiste las alertas y devuelve el PDF.
func (uc *ReportUseCase) GenerateReorderReport(ctx context.Context) ([]byte, error) {
	now := uc.now().UTC()
	var report ReorderReport
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		alerts, err := refresh(ctx, c, now)
		if err != nil {
			return err
		}
		report = ReorderReport{
			Title:       "Informe de reposición",
			GeneratedAt: now,
			Alerts:      alerts,
			Stats:       inventory.Statistics(alerts),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	doc, err := uc.generator.GenerateReorderReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("generar informe de reposición: %w", err)
	}
	return doc, nil
}
