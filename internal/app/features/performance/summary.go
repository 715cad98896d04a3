// internal/app/features/performance/summary.go
package performance

import (
	"github.com/dalemusser/stratadash/internal/app/system/htmlsanitize"
)

// Summary returns the improvements summary. Its figures are reference
// text from the performance tests and are not derived from the datasets.
func Summary() SummaryVM {
	return SummaryVM{
		Title: "📋 Resumen de Mejoras de Rendimiento",
		Cards: []SummaryCardVM{
			{
				Title: "Procesamiento APS",
				Theme: "blue",
				Body: htmlsanitize.InlineLines(
					"<strong>45k casos:</strong> 1:30 hrs",
					"<strong>200k casos:</strong> 6:00 hrs",
					"Tiempo aumenta con volumen de casos",
				),
			},
			{
				Title: "No Considerados",
				Theme: "green",
				Body: htmlsanitize.InlineLines(
					"<strong>Mejora:</strong> 99.9% reducción",
					"<strong>Antes:</strong> 4 horas",
					"<strong>Después:</strong> 30 segundos",
				),
			},
			{
				Title: "Archivo PGU",
				Theme: "purple",
				Body: htmlsanitize.InlineLines(
					"<strong>Mejora:</strong> 85% reducción",
					"<strong>Antes:</strong> 1:10 hrs (140k)",
					"<strong>Después:</strong> 10 min (140k)",
				),
			},
		},
		Impact: CalloutVM{
			Title: "🎯 Impacto General de las Optimizaciones",
			Items: []string{
				"Reducción dramática en tiempos de espera para los usuarios",
				"Mejor utilización de recursos del servidor",
				"Capacidad mejorada para manejar volúmenes altos",
				"Experiencia de usuario significativamente mejorada",
			},
		},
		Pending: CalloutVM{
			Title: "⚠️ Etapas por Mejorar",
			Lead:  htmlsanitize.Inline("<strong>Cálculo APS:</strong> Actualmente tomando casi 2 horas"),
			Items: []string{
				"Requiere análisis y optimización",
				"Oportunidad de mejora significativa",
				"Prioridad alta para próximas iteraciones",
			},
		},
	}
}
