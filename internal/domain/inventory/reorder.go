package inventory

import "math"

// ReorderQuantity devuelve la cantidad sugerida de pedido (nunca negativa).
//
// Con consumo mensual promedio (avgMonthlyUsage > 0) el objetivo es cubrir dos meses;
// sin él, llevar el stock a 2× el punto de reorden.
// Ningún caso de uso entrega hoy historial de consumo: la rama por consumo queda
// disponible pero sin llamadores.
func ReorderQuantity(totalStock, reorderPoint int, avgMonthlyUsage *float64) int {
	if avgMonthlyUsage != nil && *avgMonthlyUsage > 0 {
		target := *avgMonthlyUsage * 2
		return int(math.Max(0, math.Ceil(target-float64(totalStock))))
	}
	qty := reorderPoint*2 - totalStock
	if qty < 0 {
		return 0
	}
	return qty
}
