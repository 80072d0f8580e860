package repository

import "context"

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando repositorios
// atados a esa transacción. Las implementaciones garantizan:
//   - serialización: dos Run nunca intercalan lecturas y escrituras;
//   - todo o nada: si fn retorna error no se persiste ninguna escritura.
type TxRunner interface {
	Run(ctx context.Context, fn func(c Collections) error) error
}
