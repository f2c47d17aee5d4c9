// Package ledger implementa la reconciliación del kardex de un artículo
// (servicio de dominio puro): reconstruye el saldo histórico a partir de la
// cantidad actual y el historial completo de movimientos, y calcula el delta
// neto de una edición de movimiento. Sin I/O ni estado oculto.
package ledger

import (
	"sort"
	"time"

	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

// DateRange ventana opcional [Start, End] para la vista del kardex.
// Ambos extremos son inclusivos; nil = sin límite.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Row es un movimiento histórico anotado con el saldo inmediatamente
// posterior a su aplicación.
type Row struct {
	MovementID   string
	Date         time.Time
	Direction    string
	Reference    string
	Notes        string
	SignedDelta  int64
	BalanceAfter int64
}

// StockCard resultado de la reconciliación: saldos de apertura/cierre de la
// ventana pedida, totales de entrada/salida visibles y las filas visibles.
type StockCard struct {
	OpeningBalance int64
	TotalIn        int64
	TotalOut       int64
	ClosingBalance int64
	Rows           []Row
}

// ReconstructLedger reconstruye el kardex de un artículo.
//
// El saldo se camina del presente hacia el pasado: partiendo de la cantidad
// actual, cada movimiento (ordenado del más nuevo al más viejo) registra el
// saldo posterior a su aplicación y el acumulador retrocede restando su delta.
// Lo que queda tras recorrer todo el historial es el saldo inicial de todos
// los tiempos. El filtro de fechas se aplica DESPUÉS de calcular saldos: los
// saldos reflejan siempre el historial completo, no la ventana visible.
//
// Invariante reconstruido: cantidad(T) = cantidad(hoy) − Σ deltas con fecha > T.
func ReconstructLedger(currentQuantity int64, movements []entity.MovementRecord, itemID string, rng DateRange) StockCard {
	// 1. Solo movimientos que incluyen el artículo, con su delta firmado.
	full := make([]Row, 0, len(movements))
	for i := range movements {
		m := &movements[i]
		delta := m.SignedDeltaFor(itemID)
		if delta == 0 && !containsItem(m, itemID) {
			continue
		}
		full = append(full, Row{
			MovementID:  m.ID,
			Date:        m.Date,
			Direction:   m.Direction,
			Reference:   m.ReferenceNumber,
			Notes:       m.Notes,
			SignedDelta: delta,
		})
	}

	// 2. Más nuevo primero. Orden estable: los saldos son sensibles al orden,
	// así que movimientos del mismo día conservan el orden de entrada.
	sort.SliceStable(full, func(a, b int) bool {
		return full[a].Date.After(full[b].Date)
	})

	// 3–4. Caminata presente -> pasado.
	running := currentQuantity
	for i := range full {
		full[i].BalanceAfter = running
		running -= full[i].SignedDelta
	}
	initialAllTime := running // saldo anterior al movimiento más antiguo registrado

	// 5. Filas visibles según la ventana.
	visible := make([]Row, 0, len(full))
	for _, r := range full {
		if rng.Start != nil && r.Date.Before(*rng.Start) {
			continue
		}
		if rng.End != nil && r.Date.After(*rng.End) {
			continue
		}
		visible = append(visible, r)
	}

	// 6. Totales del período visible.
	var totalIn, totalOut int64
	for _, r := range visible {
		if r.SignedDelta >= 0 {
			totalIn += r.SignedDelta
		} else {
			totalOut += -r.SignedDelta
		}
	}

	// 7. Apertura: saldo del movimiento más reciente estrictamente anterior a
	// Start; si no hay (o no hay Start), el saldo inicial de todos los tiempos.
	opening := initialAllTime
	if rng.Start != nil {
		for _, r := range full {
			if r.Date.Before(*rng.Start) {
				opening = r.BalanceAfter
				break
			}
		}
	}

	// 8. Cierre: con End, el saldo del primer movimiento con fecha <= End
	// (si todos son posteriores, el saldo inicial); sin End, la cantidad viva.
	closing := currentQuantity
	if rng.End != nil {
		closing = initialAllTime
		for _, r := range full {
			if !r.Date.After(*rng.End) {
				closing = r.BalanceAfter
				break
			}
		}
	}

	return StockCard{
		OpeningBalance: opening,
		TotalIn:        totalIn,
		TotalOut:       totalOut,
		ClosingBalance: closing,
		Rows:           visible,
	}
}

// containsItem indica si el movimiento tiene al menos una línea del artículo.
// Un delta 0 con línea presente (ratio o cantidad cero no deberían darse, pero
// el kardex debe listar la fila igualmente) sigue siendo una fila del historial.
func containsItem(m *entity.MovementRecord, itemID string) bool {
	for _, l := range m.Lines {
		if l.ItemID == itemID {
			return true
		}
	}
	return false
}
