package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

func TestClassifyStock_SinStockSiempreOutOfStock(t *testing.T) {
	for _, rp := range []int{0, 1, 7, 100, 10_000} {
		s := inventory.ClassifyStock(0, rp)
		assert.Equal(t, entity.StockStatusCritical, s.Status, "rp=%d", rp)
		assert.Equal(t, "Out of Stock", s.Level, "rp=%d", rp)
		assert.Equal(t, 1, s.Priority, "rp=%d", rp)
	}
}

// Los límites exactos (25%, 50%, rp, 2·rp) caen en el nivel de menor urgencia.
func TestClassifyStock_Limites(t *testing.T) {
	cases := []struct {
		total    int
		status   string
		level    string
		priority int
	}{
		{1, entity.StockStatusCritical, "Critical", 2},
		{24, entity.StockStatusCritical, "Critical", 2},
		{25, entity.StockStatusLow, "Low Stock", 3},
		{49, entity.StockStatusLow, "Low Stock", 3},
		{50, entity.StockStatusWarning, "Approaching Low", 4},
		{99, entity.StockStatusWarning, "Approaching Low", 4},
		{100, entity.StockStatusAdequate, "Adequate", 5},
		{199, entity.StockStatusAdequate, "Adequate", 5},
		{200, entity.StockStatusOverstocked, "Overstocked", 6},
		{5000, entity.StockStatusOverstocked, "Overstocked", 6},
	}
	for _, tc := range cases {
		s := inventory.ClassifyStock(tc.total, 100)
		assert.Equal(t, tc.status, s.Status, "total=%d", tc.total)
		assert.Equal(t, tc.level, s.Level, "total=%d", tc.total)
		assert.Equal(t, tc.priority, s.Priority, "total=%d", tc.total)
		assert.NotEmpty(t, s.Message)
	}
}

// Con un punto de reorden que no es múltiplo de 4 el límite del 25% no es entero.
func TestClassifyStock_LimitesNoEnteros(t *testing.T) {
	// rp=10 → 25% = 2.5, 50% = 5
	assert.Equal(t, 2, inventory.ClassifyStock(2, 10).Priority)
	assert.Equal(t, 3, inventory.ClassifyStock(3, 10).Priority)
	assert.Equal(t, 3, inventory.ClassifyStock(4, 10).Priority)
	assert.Equal(t, 4, inventory.ClassifyStock(5, 10).Priority)
}

// Para cualquier rp > 0 la prioridad nunca aumenta cuando crece el stock.
func TestClassifyStock_ParticionMonotona(t *testing.T) {
	for _, rp := range []int{1, 3, 4, 10, 37, 100} {
		prev := 0
		for total := 0; total <= rp*3; total++ {
			p := inventory.ClassifyStock(total, rp).Priority
			assert.GreaterOrEqual(t, p, prev, "rp=%d total=%d", rp, total)
			assert.True(t, p >= 1 && p <= 6)
			prev = p
		}
	}
}

func TestClassifyStock_PuntoDeReordenCero(t *testing.T) {
	s := inventory.ClassifyStock(5, 0)
	assert.Equal(t, entity.StockStatusOverstocked, s.Status)
	assert.False(t, s.NeedsAttention())
}

func TestStockStatus_NeedsAttention(t *testing.T) {
	assert.True(t, inventory.ClassifyStock(0, 10).NeedsAttention())
	assert.True(t, inventory.ClassifyStock(4, 10).NeedsAttention())
	assert.True(t, inventory.ClassifyStock(9, 10).NeedsAttention())
	assert.False(t, inventory.ClassifyStock(10, 10).NeedsAttention())
	assert.False(t, inventory.ClassifyStock(20, 10).NeedsAttention())
}

func TestClassifyStock_CantidadesGrandesNoDesbordan(t *testing.T) {
	assert.Equal(t, entity.StockStatusOverstocked, inventory.ClassifyStock(1<<62, 100).Status)
	assert.Equal(t, entity.StockStatusOverstocked, inventory.ClassifyStock(math.MaxInt, 1).Status)
	assert.Equal(t, entity.StockStatusAdequate, inventory.ClassifyStock(math.MaxInt, math.MaxInt).Status)
	assert.Equal(t, entity.StockStatusAdequate, inventory.ClassifyStock(math.MaxInt-1, math.MaxInt/2+1).Status)
	assert.Equal(t, "Critical", inventory.ClassifyStock(1, math.MaxInt).Level)
	assert.Equal(t, entity.StockStatusWarning, inventory.ClassifyStock(math.MaxInt-1, math.MaxInt).Status)
}

func TestClassifyStock_LimitesImpares(t *testing.T) {
	// rp=101: 25% = 25.25 y 50% = 50.5
	assert.Equal(t, "Critical", inventory.ClassifyStock(25, 101).Level)
	assert.Equal(t, "Low Stock", inventory.ClassifyStock(26, 101).Level)
	assert.Equal(t, "Low Stock", inventory.ClassifyStock(50, 101).Level)
	assert.Equal(t, "Approaching Low", inventory.ClassifyStock(51, 101).Level)
	assert.Equal(t, "Adequate", inventory.ClassifyStock(201, 101).Level)
	assert.Equal(t, "Overstocked", inventory.ClassifyStock(202, 101).Level)
}
