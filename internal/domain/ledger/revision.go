package ledger

import "github.com/neonflow/neonflow-api/internal/domain/entity"

// RevisionDelta calcula el delta neto en unidades base que debe aplicarse a la
// cantidad viva de un artículo cuando un movimiento registrado se edita:
// revierte el efecto original y aplica el nuevo.
//
//	delta = signedDelta(revisado) − signedDelta(original)
//
// Si el artículo no aparece en uno de los dos lados, ese lado aporta 0.
// Aplicar RevisionDelta(a, b) seguido de RevisionDelta(b, a) devuelve la
// cantidad a su valor inicial.
func RevisionDelta(original, revised *entity.MovementRecord, itemID string) int64 {
	var before, after int64
	if original != nil {
		before = original.SignedDeltaFor(itemID)
	}
	if revised != nil {
		after = revised.SignedDeltaFor(itemID)
	}
	return after - before
}

// AffectedItemIDs devuelve la unión de artículos presentes en el movimiento
// original y el revisado, en orden de aparición (original primero). Es el
// conjunto de filas de catálogo que una edición debe bloquear y ajustar.
func AffectedItemIDs(original, revised *entity.MovementRecord) []string {
	seen := make(map[string]struct{})
	var ids []string
	collect := func(m *entity.MovementRecord) {
		if m == nil {
			return
		}
		for _, l := range m.Lines {
			if _, ok := seen[l.ItemID]; ok {
				continue
			}
			seen[l.ItemID] = struct{}{}
			ids = append(ids, l.ItemID)
		}
	}
	collect(original)
	collect(revised)
	return ids
}
