package inventory

import "github.com/jhoicas/Inventario-stock/internal/domain/entity"

// StockStatus resultado de clasificar el stock total de un producto contra su punto de reorden.
// Priority es ascendente: 1 = más urgente.
type StockStatus struct {
	Status   string
	Level    string
	Priority int
	Message  string
}

// NeedsAttention indica si el estado genera alerta (critical, low, warning).
func (s StockStatus) NeedsAttention() bool {
	switch s.Status {
	case entity.StockStatusCritical, entity.StockStatusLow, entity.StockStatusWarning:
		return true
	}
	return false
}

var (
	statusOutOfStock = StockStatus{entity.StockStatusCritical, "Out of Stock", 1, "Immediate action required - product is out of stock"}
	statusCritical   = StockStatus{entity.StockStatusCritical, "Critical", 2, "Stock is critically low - reorder immediately"}
	statusLow        = StockStatus{entity.StockStatusLow, "Low Stock", 3, "Stock is below 50% of reorder point - plan to reorder soon"}
	statusWarning    = StockStatus{entity.StockStatusWarning, "Approaching Low", 4, "Stock approaching reorder point - monitor closely"}
	statusAdequate   = StockStatus{entity.StockStatusAdequate, "Adequate", 5, "Stock levels are adequate"}
	statusOverstock  = StockStatus{entity.StockStatusOverstocked, "Overstocked", 6, "Stock levels are high - consider adjusting orders"}
)

// ClassifyStock mapea (totalStock, reorderPoint) a un nivel. Gana la primera regla que aplica:
//
//	total == 0           → critical / Out of Stock (1)
//	total < 25% rp       → critical / Critical (2)
//	total < 50% rp       → low / Low Stock (3)
//	total < rp           → warning / Approaching Low (4)
//	rp <= total < 2·rp   → adequate (5)
//	resto                → overstocked (6)
//
// Los porcentajes se comparan en aritmética entera (total·4 < rp, total·2 < rp), así los
// límites exactos caen en el nivel de menor urgencia. Se evalúan con divisiones para no
// desbordar con cantidades grandes.
// Con reorderPoint <= 0 no hay umbral: sin stock sigue siendo Out of Stock y cualquier
// cantidad positiva es Overstocked.
func ClassifyStock(totalStock, reorderPoint int) StockStatus {
	if totalStock <= 0 {
		return statusOutOfStock
	}
	if reorderPoint <= 0 {
		return statusOverstock
	}
	switch {
	case belowFraction(totalStock, reorderPoint, 4):
		return statusCritical
	case belowFraction(totalStock, reorderPoint, 2):
		return statusLow
	case totalStock < reorderPoint:
		return statusWarning
	case totalStock-reorderPoint < reorderPoint:
		return statusAdequate
	default:
		return statusOverstock
	}
}

// belowFraction equivale a total·parts < rp: total < ⌈rp/parts⌉.
func belowFraction(total, rp, parts int) bool {
	limit := rp / parts
	if rp%parts != 0 {
		limit++
	}
	return total < limit
}
