package dto

// InsightDTO respuesta del análisis de salud del inventario.
// Analysis viene en Markdown listo para renderizar en el panel.
type InsightDTO struct {
	Analysis    string `json:"analysis"`
	Provider    string `json:"provider"`
	GeneratedAt string `json:"generated_at"`
}

// RestockSuggestionDTO sugerencia de reposición para un artículo crítico.
type RestockSuggestionDTO struct {
	Item       string `json:"item"`
	Suggestion string `json:"suggestion"`
}

// RestockPlanDTO plan de reposición para artículos con stock bajo.
type RestockPlanDTO struct {
	Suggestions []RestockSuggestionDTO `json:"suggestions"`
	Provider    string                 `json:"provider"`
}
