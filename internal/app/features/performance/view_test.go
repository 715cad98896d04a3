package performance

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	perfstore "github.com/dalemusser/stratadash/internal/app/store/performance"
	"github.com/dalemusser/stratadash/internal/app/system/viewdata"
	"github.com/dalemusser/stratadash/internal/domain/models"
)

func testBase() viewdata.BaseVM {
	return viewdata.NewBaseVM(httptest.NewRequest(http.MethodGet, "/", nil), PageTitle)
}

func TestBuildView_ActiveChart(t *testing.T) {
	store := perfstore.New()

	tests := []struct {
		tab         models.Tab
		wantHeading string
	}{
		{models.TabAPS, "🔄 Procesamiento APS - Tiempo por Volumen"},
		{models.TabNotConsidered, "⚡ Etapa No Considerados - Antes vs Después"},
		{models.TabFileExport, "📁 Archivo PGU - Tiempo de Generación"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			vm, err := BuildView(testBase(), NewTabState(tt.tab), store, DefaultChartConfig())
			if err != nil {
				t.Fatalf("BuildView() error = %v", err)
			}

			if vm.Chart.Tab != tt.tab {
				t.Errorf("Chart.Tab = %q, want %q", vm.Chart.Tab, tt.tab)
			}
			if vm.Chart.Heading != tt.wantHeading {
				t.Errorf("Chart.Heading = %q, want %q", vm.Chart.Heading, tt.wantHeading)
			}
			if !strings.Contains(string(vm.Chart.SVG), `data-tab="`+string(tt.tab)+`"`) {
				t.Error("inline SVG is not the active tab's chart")
			}
			if vm.Chart.PNGURL != "/performance/"+string(tt.tab)+"/chart.png" {
				t.Errorf("PNGURL = %q", vm.Chart.PNGURL)
			}
			if vm.Chart.JSONURL != "/api/performance/"+string(tt.tab) {
				t.Errorf("JSONURL = %q", vm.Chart.JSONURL)
			}
		})
	}
}

func TestBuildView_Tabs(t *testing.T) {
	vm, err := BuildView(testBase(), NewTabState(models.TabNotConsidered), perfstore.New(), DefaultChartConfig())
	if err != nil {
		t.Fatalf("BuildView() error = %v", err)
	}

	wantLabels := []string{"Procesamiento APS", "Etapa No Considerados", "Archivo PGU"}
	if len(vm.Tabs) != len(wantLabels) {
		t.Fatalf("got %d tabs, want %d", len(vm.Tabs), len(wantLabels))
	}

	active := 0
	for i, tab := range vm.Tabs {
		if tab.Label != wantLabels[i] {
			t.Errorf("tab %d label = %q, want %q", i, tab.Label, wantLabels[i])
		}
		if tab.URL != "?tab="+tab.Key {
			t.Errorf("tab %d URL = %q", i, tab.URL)
		}
		if tab.Active {
			active++
			if tab.Key != string(models.TabNotConsidered) {
				t.Errorf("active tab = %q, want noConsiderados", tab.Key)
			}
		}
	}
	if active != 1 {
		t.Errorf("%d active tabs, want 1", active)
	}
}

func TestBuildView_Heading(t *testing.T) {
	vm, err := BuildView(testBase(), NewTabState(models.TabAPS), perfstore.New(), DefaultChartConfig())
	if err != nil {
		t.Fatalf("BuildView() error = %v", err)
	}
	if vm.Heading != "📊 Comparativo de Rendimiento del Sistema" {
		t.Errorf("Heading = %q", vm.Heading)
	}
}

func TestBuildView_Idempotent(t *testing.T) {
	store := perfstore.New()
	for _, tab := range models.AllTabs() {
		a, err := BuildView(testBase(), NewTabState(tab), store, DefaultChartConfig())
		if err != nil {
			t.Fatal(err)
		}
		b, err := BuildView(testBase(), NewTabState(tab), store, DefaultChartConfig())
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: BuildView not idempotent", tab)
		}
	}
}

func TestBuildView_SummaryIsStatic(t *testing.T) {
	store := perfstore.New()
	var first SummaryVM
	for i, tab := range models.AllTabs() {
		vm, err := BuildView(testBase(), NewTabState(tab), store, DefaultChartConfig())
		if err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			first = vm.Summary
			continue
		}
		if !reflect.DeepEqual(first, vm.Summary) {
			t.Errorf("summary differs for tab %s", tab)
		}
	}
}

func TestSummary_Content(t *testing.T) {
	s := Summary()

	if s.Title != "📋 Resumen de Mejoras de Rendimiento" {
		t.Errorf("Title = %q", s.Title)
	}
	if len(s.Cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(s.Cards))
	}

	wantBodies := []string{
		"<strong>45k casos:</strong> 1:30 hrs",
		"99.9% reducción",
		"<strong>Antes:</strong> 1:10 hrs (140k)",
	}
	for i, want := range wantBodies {
		if !strings.Contains(string(s.Cards[i].Body), want) {
			t.Errorf("card %d body %q missing %q", i, s.Cards[i].Body, want)
		}
	}

	if len(s.Impact.Items) != 4 {
		t.Errorf("impact items = %d, want 4", len(s.Impact.Items))
	}
	if s.Pending.Title != "⚠️ Etapas por Mejorar" {
		t.Errorf("Pending.Title = %q", s.Pending.Title)
	}
	if !strings.Contains(string(s.Pending.Lead), "Cálculo APS:") {
		t.Errorf("Pending.Lead = %q", s.Pending.Lead)
	}
	if len(s.Pending.Items) != 3 {
		t.Errorf("pending items = %d, want 3", len(s.Pending.Items))
	}
}
