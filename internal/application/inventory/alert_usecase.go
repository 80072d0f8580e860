package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

// AlertUseCase regenera y persiste alertas y aplica acciones del usuario.
type AlertUseCase struct {
	tx  repository.TxRunner
	log *logger.Logger
	now Clock
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(tx repository.TxRunner, log *logger.Logger, now Clock) *AlertUseCase {
	if now == nil {
		now = time.Now
	}
	return &AlertUseCase{tx: tx, log: log.Component("alerts"), now: now}
}

// RefreshAndPersist recalcula las alertas desde productos y stock, reemplaza la colección
// persistida y devuelve la lista nueva. Una lectura de alertas siempre escribe.
func (uc *AlertUseCase) RefreshAndPersist(ctx context.Context) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		var err error
		alerts, err = refresh(ctx, c, uc.now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("alerts", len(alerts)).Msg("alertas regeneradas")
	return alerts, nil
}

// UpdateAlert aplica acknowledge, unacknowledge o resolve sobre la alerta persistida.
// No regenera: actúa sobre la última lista guardada.
func (uc *AlertUseCase) UpdateAlert(ctx context.Context, in dto.UpdateAlertRequest) (*entity.Alert, error) {
	alertID := strings.TrimSpace(in.AlertID)
	action := strings.TrimSpace(in.Action)
	if alertID == "" || action == "" {
		return nil, fmt.Errorf("%w: faltan alertId o action", domain.ErrInvalidInput)
	}

	var updated entity.Alert
	err := uc.tx.Run(ctx, func(c repository.Collections) error {
		alerts, err := c.Alerts.LoadAll(ctx)
		if err != nil {
			return err
		}
		i := -1
		for j := range alerts {
			if alerts[j].ID == alertID {
				i = j
				break
			}
		}
		if i < 0 {
			return fmt.Errorf("%w: alerta %s", domain.ErrNotFound, alertID)
		}
		if err := inventory.ApplyAlertAction(&alerts[i], action, uc.now().UTC()); err != nil {
			return err
		}
		if err := c.Alerts.SaveAll(ctx, alerts); err != nil {
			return err
		}
		updated = alerts[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("alert_id", alertID).Str("action", action).Msg("alerta actualizada")
	return &updated, nil
}

// Statistics regenera las alertas y devuelve su resumen.
func (uc *AlertUseCase) Statistics(ctx context.Context) (*dto.AlertStatisticsResponse, error) {
	alerts, err := uc.RefreshAndPersist(ctx)
	if err != nil {
		return nil, err
	}
	resp := toStatisticsResponse(inventory.Statistics(alerts))
	return &resp, nil
}

func refresh(ctx context.Context, c repository.Collections, now time.Time) ([]entity.Alert, error) {
	products, err := c.Products.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	levels, err := c.StockLevels.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := c.Alerts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	alerts := inventory.GenerateAlerts(products, levels, existing, now)
	if err := c.Alerts.SaveAll(ctx, alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func toStatisticsResponse(s inventory.AlertStatistics) dto.AlertStatisticsResponse {
	return dto.AlertStatisticsResponse{
		Total:            s.Total,
		Critical:         s.Critical,
		Low:              s.Low,
		Warning:          s.Warning,
		Acknowledged:     s.Acknowledged,
		Unacknowledged:   s.Unacknowledged,
		TotalReorderCost: s.TotalReorderCost,
	}
}
