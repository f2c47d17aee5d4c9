package http

import (
	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/inventory"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func toMovementDTO(m *entity.MovementRecord) dto.MovementDTO {
	out := dto.MovementDTO{
		ID:              m.ID,
		Date:            m.Date.Format(dateLayout),
		Direction:       m.Direction,
		TotalBaseUnits:  m.TotalBaseUnits,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		Attachments:     m.Attachments,
	}
	for _, l := range m.Lines {
		out.Lines = append(out.Lines, dto.MovementLineDTO{
			ItemID:        l.ItemID,
			Name:          l.Name,
			SKU:           l.SKU,
			SelectedUnit:  dto.UnitDTO{Name: l.SelectedUnit.Name, Ratio: l.SelectedUnit.Ratio},
			OrderQuantity: l.OrderQuantity,
		})
	}
	return out
}

func toStockCardDTO(view *inventory.StockCardView) dto.StockCardDTO {
	out := dto.StockCardDTO{
		Item:           inventory.ToStockItemDTO(&view.Item),
		OpeningBalance: view.Card.OpeningBalance,
		TotalIn:        view.Card.TotalIn,
		TotalOut:       view.Card.TotalOut,
		ClosingBalance: view.Card.ClosingBalance,
		Rows:           []dto.StockCardRowDTO{},
	}
	for _, r := range view.Card.Rows {
		out.Rows = append(out.Rows, dto.StockCardRowDTO{
			MovementID:   r.MovementID,
			Date:         r.Date.Format(dateLayout),
			Direction:    r.Direction,
			Reference:    r.Reference,
			Notes:        r.Notes,
			SignedDelta:  r.SignedDelta,
			BalanceAfter: r.BalanceAfter,
		})
	}
	return out
}
