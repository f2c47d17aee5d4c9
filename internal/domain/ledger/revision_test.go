package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/ledger"
)

// Editar el movimiento A de +50 a +20 con cantidad actual 120 debe producir
// delta = 20 − 50 = −30 (nueva cantidad 90).
func TestRevisionDelta_ReduccionMismaDireccion(t *testing.T) {
	original := movement("mov-A", "2024-01-01", entity.DirectionIn, 50, 1)
	revised := movement("mov-A", "2024-01-01", entity.DirectionIn, 20, 1)

	delta := ledger.RevisionDelta(&original, &revised, itemID)
	assert.Equal(t, int64(-30), delta)
	assert.Equal(t, int64(90), 120+delta)
}

// Cambiar la dirección revierte el efecto completo y aplica el contrario:
// IN +50 editado a OUT 50 -> delta = −50 − (+50) = −100.
func TestRevisionDelta_CambioDeDireccion(t *testing.T) {
	original := movement("mov-A", "2024-01-01", entity.DirectionIn, 50, 1)
	revised := movement("mov-A", "2024-01-01", entity.DirectionOut, 50, 1)

	assert.Equal(t, int64(-100), ledger.RevisionDelta(&original, &revised, itemID))
}

// Artículo ausente en un lado: ese lado aporta 0.
func TestRevisionDelta_ArticuloAusente(t *testing.T) {
	original := movement("mov-A", "2024-01-01", entity.DirectionIn, 50, 1)
	revised := original
	revised.Lines = []entity.LineEntry{
		{ItemID: "itm-nuevo", SelectedUnit: entity.UnitDefinition{Name: "Unit", Ratio: 1}, OrderQuantity: 8},
	}

	// El artículo original desaparece: se revierte su entrada completa.
	assert.Equal(t, int64(-50), ledger.RevisionDelta(&original, &revised, itemID))
	// El artículo nuevo no estaba en el original: se aplica su efecto completo.
	assert.Equal(t, int64(8), ledger.RevisionDelta(&original, &revised, "itm-nuevo"))
	// Un artículo ajeno a ambos lados no se toca.
	assert.Zero(t, ledger.RevisionDelta(&original, &revised, "itm-ajeno"))
}

// Propiedad editar-y-revertir: aplicar delta(a,b) y luego delta(b,a) sobre la
// misma cantidad base la devuelve a su valor original.
func TestRevisionDelta_EditarYRevertir(t *testing.T) {
	a := movement("mov-A", "2024-01-01", entity.DirectionIn, 50, 1)
	b := movement("mov-A", "2024-01-01", entity.DirectionOut, 12, 24)

	const base = int64(300)
	edited := base + ledger.RevisionDelta(&a, &b, itemID)
	restored := edited + ledger.RevisionDelta(&b, &a, itemID)

	assert.Equal(t, base, restored)
}

// El cambio de unidad también reconcilia: 5 unidades sueltas -> 5 cajas de 24.
func TestRevisionDelta_CambioDeUnidad(t *testing.T) {
	original := movement("mov-A", "2024-01-01", entity.DirectionIn, 5, 1)
	revised := movement("mov-A", "2024-01-01", entity.DirectionIn, 5, 24)

	assert.Equal(t, int64(115), ledger.RevisionDelta(&original, &revised, itemID))
}

func TestAffectedItemIDs_UnionSinDuplicados(t *testing.T) {
	original := movement("mov-A", "2024-01-01", entity.DirectionIn, 5, 1)
	revised := original
	revised.Lines = append([]entity.LineEntry{}, original.Lines...)
	revised.Lines = append(revised.Lines, entity.LineEntry{
		ItemID: "itm-2", SelectedUnit: entity.UnitDefinition{Name: "Unit", Ratio: 1}, OrderQuantity: 1,
	})

	ids := ledger.AffectedItemIDs(&original, &revised)
	assert.Equal(t, []string{itemID, "itm-2"}, ids)
}
