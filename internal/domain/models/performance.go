// internal/domain/models/performance.go
package models

// TooltipRecord carries the fields a chart tooltip reads from a data point.
// Zero values mean "absent": Cases 0 renders as N/A, empty strings fall
// through to the next display choice.
type TooltipRecord struct {
	Cases       int
	TimeDisplay string
	TimeHours   string
}

// Point is one bar in a performance chart.
type Point interface {
	// Category is the x-axis label.
	Category() string
	// Value is the bar height in minutes (the "tiempo" data key).
	Value() float64
	// Record exposes the fields used by the tooltip.
	Record() TooltipRecord
}

// APSPoint is a row of the APS processing dataset.
type APSPoint struct {
	Name      string  `json:"name"`
	Cases     int     `json:"casos"`
	Minutes   float64 `json:"tiempo"`
	TimeHours string  `json:"tiempoHoras"` // h:mm
}

func (p APSPoint) Category() string { return p.Name }
func (p APSPoint) Value() float64 { return p.Minutes }
func (p APSPoint) Record() TooltipRecord {
	return TooltipRecord{Cases: p.Cases, TimeHours: p.TimeHours}
}

// ComparisonPoint is a before/after row of the "No Considerados" stage.
type ComparisonPoint struct {
	Process     string  `json:"proceso"`
	Minutes     float64 `json:"tiempo"`
	TimeDisplay string  `json:"tiempoDisplay"`
	Cases       int     `json:"casos"`
}

func (p ComparisonPoint) Category() string { return p.Process }
func (p ComparisonPoint) Value() float64 { return p.Minutes }
func (p ComparisonPoint) Record() TooltipRecord {
	return TooltipRecord{Cases: p.Cases, TimeDisplay: p.TimeDisplay}
}

// FileExportKind tags a PGU row as the original or optimized run.
type FileExportKind string

const (
	FileExportOriginal  FileExportKind = "Original"
	FileExportOptimized FileExportKind = "Optimizado"
)

// FileExportPoint is a row of the PGU file processing dataset.
type FileExportPoint struct {
	Name        string         `json:"name"`
	Cases       int            `json:"casos"`
	Minutes     float64        `json:"tiempo"`
	TimeDisplay string         `json:"tiempoDisplay"`
	Kind        FileExportKind `json:"tipo"`
}

func (p FileExportPoint) Category() string { return p.Name }
func (p FileExportPoint) Value() float64 { return p.Minutes }
func (p FileExportPoint) Record() TooltipRecord {
	return TooltipRecord{Cases: p.Cases, TimeDisplay: p.TimeDisplay}
}

// APSData returns the APS processing time by case volume.
// Every call returns a fresh slice.
func APSData() []APSPoint {
	return []APSPoint{
		{Name: "45,000 casos", Cases: 45000, Minutes: 90, TimeHours: "1:30"},
		{Name: "200,000 casos", Cases: 200000, Minutes: 360, TimeHours: "6:00"},
	}
}

// NotConsideredData returns the "No Considerados" stage before and after optimization.
// Every call returns a fresh slice.
func NotConsideredData() []ComparisonPoint {
	return []ComparisonPoint{
		{Process: "Antes de optimización", Minutes: 240, TimeDisplay: "4:00 hrs", Cases: 200000},
		{Process: "Después de optimización", Minutes: 0.5, TimeDisplay: "0:30 min", Cases: 200000},
	}
}

// FileExportData returns the PGU file processing comparison.
// Every call returns a fresh slice.
func FileExportData() []FileExportPoint {
	return []FileExportPoint{
		{Name: "40k casos", Cases: 40000, Minutes: 45, TimeDisplay: "45 min", Kind: FileExportOriginal},
		{Name: "140k casos (original)", Cases: 140000, Minutes: 70, TimeDisplay: "1:10 hrs", Kind: FileExportOriginal},
		{Name: "140k casos (optimizado)", Cases: 140000, Minutes: 10, TimeDisplay: "10 min", Kind: FileExportOptimized},
	}
}

// Dataset is a chart-ready collection of points for one tab.
type Dataset struct {
	Tab        Tab     `json:"tab"`
	Title      string  `json:"title"`
	Icon       string  `json:"-"`
	XKey       string  `json:"xKey"`       // data key used for the x axis
	YKey       string  `json:"yKey"`       // data key used for the bar series
	YLabel     string  `json:"yLabel"`     // y axis caption
	SeriesName string  `json:"seriesName"` // legend entry
	Color      string  `json:"color"`      // series fill, #rrggbb
	Points     []Point `json:"points"`
}

// Heading returns the title prefixed with its icon, as shown above the chart.
func (d Dataset) Heading() string {
	if d.Icon == "" {
		return d.Title
	}
	return d.Icon + " " + d.Title
}

// MaxValue returns the largest bar value, or 0 for an empty dataset.
func (d Dataset) MaxValue() float64 {
	max := 0.0
	for _, p := range d.Points {
		if v := p.Value(); v > max {
			max = v
		}
	}
	return max
}

// BarColor returns the fill for a point. PGU rows are colored by run
// kind, the before/after stage by phase, everything else uses the series color.
func (d Dataset) BarColor(p Point) string {
	switch v := p.(type) {
	case FileExportPoint:
		if v.Kind == FileExportOptimized {
			return "#10b981"
		}
		return "#8b5cf6"
	case ComparisonPoint:
		if v.Minutes < 1 {
			return "#10b981"
		}
		return "#ef4444"
	default:
		return d.Color
	}
}

// DatasetFor builds the dataset for a tab. The second result is false
// for an unknown tab.
func DatasetFor(t Tab) (Dataset, bool) {
	switch t {
	case TabAPS:
		data := APSData()
		points := make([]Point, len(data))
		for i, p := range data {
			points[i] = p
		}
		return Dataset{
			Tab:        TabAPS,
			Title:      "Procesamiento APS - Tiempo por Volumen",
			Icon:       "🔄",
			XKey:       "name",
			YKey:       "tiempo",
			YLabel:     "Tiempo (minutos)",
			SeriesName: "Tiempo de procesamiento",
			Color:      "#3b82f6",
			Points:     points,
		}, true
	case TabNotConsidered:
		data := NotConsideredData()
		points := make([]Point, len(data))
		for i, p := range data {
			points[i] = p
		}
		return Dataset{
			Tab:        TabNotConsidered,
			Title:      "Etapa No Considerados - Antes vs Después",
			Icon:       "⚡",
			XKey:       "proceso",
			YKey:       "tiempo",
			YLabel:     "Tiempo (minutos)",
			SeriesName: "Tiempo de procesamiento",
			Color:      "#10b981",
			Points:     points,
		}, true
	case TabFileExport:
		data := FileExportData()
		points := make([]Point, len(data))
		for i, p := range data {
			points[i] = p
		}
		return Dataset{
			Tab:        TabFileExport,
			Title:      "Archivo PGU - Tiempo de Generación",
			Icon:       "📁",
			XKey:       "name",
			YKey:       "tiempo",
			YLabel:     "Tiempo (minutos)",
			SeriesName: "Tiempo de procesamiento",
			Color:      "#8b5cf6",
			Points:     points,
		}, true
	default:
		return Dataset{}, false
	}
}
