package ai

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

const (
	// healthSystemPrompt define el rol del modelo para el análisis de salud.
	// La respuesta es Markdown libre: el panel lo renderiza tal cual.
	healthSystemPrompt = `Eres un analista de inventarios para retail. Recibirás el catálogo actual
(nombre, categoría, cantidad, precio y estado por artículo). Devuelve un análisis breve en Markdown con:
- **Riesgos de quiebre**: artículos en Low Stock u Out of Stock que comprometen ventas.
- **Exceso de inventario**: artículos con cantidades desproporcionadas para su categoría.
- **Anomalías de precio**: precios fuera de rango respecto a su categoría.
- **Puntaje de salud**: un número de 0 a 100 para el catálogo completo, con una frase de justificación.
Responde en español, máximo 300 palabras, sin inventar artículos que no estén en los datos.`

	// restockSystemPrompt obliga salida JSON para parsearla sin limpieza.
	restockSystemPrompt = `Eres un analista de inventarios para retail. Recibirás artículos en Low Stock
u Out of Stock. Devuelve ÚNICAMENTE un array JSON (sin texto adicional, sin markdown) con esta estructura:
[{"item": "<nombre exacto del artículo>", "suggestion": "<sugerencia de reposición concisa en español, máximo 120 caracteres>"}]
Incluye exactamente un objeto por artículo recibido, con el nombre sin modificar.`
)

// llmRestockPayload es el JSON que esperamos recibir del modelo.
type llmRestockPayload []struct {
	Item       string `json:"item"`
	Suggestion string `json:"suggestion"`
}

// catalogSummary serializa el catálogo en líneas compactas para el prompt.
func catalogSummary(items []*entity.StockItem) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "- %s | categoría: %s | cantidad: %d | precio: %s | estado: %s\n",
			it.Name, it.Category, it.Quantity, it.Price.StringFixed(2), it.Status)
	}
	if b.Len() == 0 {
		return "(catálogo vacío)"
	}
	return b.String()
}

// jsonArrayRe captura el primer array JSON del texto aunque el modelo lo
// envuelva en markdown.
var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// extractJSONArray extrae el primer array JSON bien formado de un texto libre.
// Primero elimina bloques de código markdown, luego cae a regex.
func extractJSONArray(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "[") {
		return text
	}
	return strings.TrimSpace(jsonArrayRe.FindString(text))
}
