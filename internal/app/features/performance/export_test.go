package performance

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dalemusser/stratadash/internal/domain/models"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestRenderPNG(t *testing.T) {
	cfg := DefaultChartConfig()

	for _, tab := range models.AllTabs() {
		t.Run(string(tab), func(t *testing.T) {
			var buf bytes.Buffer
			if err := cfg.RenderPNG(&buf, mustDataset(t, tab)); err != nil {
				t.Fatalf("RenderPNG() error = %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
				t.Errorf("output is not a PNG (first bytes %x)", buf.Bytes()[:min(8, buf.Len())])
			}
		})
	}
}

func TestRenderPNG_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	err := DefaultChartConfig().RenderPNG(&buf, models.Dataset{})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("RenderPNG(empty) error = %v, want ErrEmptyDataset", err)
	}
}

func TestPNGBarWidth(t *testing.T) {
	cfg := DefaultChartConfig()

	if got := pngBarWidth(cfg, 2); got != maxBarWidth {
		t.Errorf("pngBarWidth(2 bars) = %d, want %d", got, maxBarWidth)
	}
	if got := pngBarWidth(ChartConfig{Width: 120, Height: 100}, 3); got < 1 {
		t.Errorf("pngBarWidth(narrow) = %d, want >= 1", got)
	}
}
