package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/stratadash/internal/domain/models"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		SiteName:       models.DefaultSiteName,
		DefaultTab:     "aps",
		ChartWidth:     900,
		ChartHeight:    400,
		RequestTimeout: 30 * time.Second,
		CacheMaxAge:    5 * time.Minute,
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(), zap.NewNop()); err != nil {
		t.Errorf("ValidateConfig() error = %v", err)
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"unknown tab", func(c *AppConfig) { c.DefaultTab = "home" }, "default_tab"},
		{"narrow chart", func(c *AppConfig) { c.ChartWidth = 100 }, "chart_width"},
		{"huge chart", func(c *AppConfig) { c.ChartHeight = 10000 }, "chart_height"},
		{"zero timeout", func(c *AppConfig) { c.RequestTimeout = 0 }, "request_timeout"},
		{"negative max age", func(c *AppConfig) { c.CacheMaxAge = -time.Second }, "cache_max_age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(nil, cfg, zap.NewNop())
			if err == nil {
				t.Fatal("ValidateConfig() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfig_ReportsAllProblems(t *testing.T) {
	cfg := validAppConfig()
	cfg.DefaultTab = ""
	cfg.ChartWidth = 0

	err := ValidateConfig(nil, cfg, zap.NewNop())
	if err == nil {
		t.Fatal("ValidateConfig() = nil, want error")
	}
	for _, want := range []string{"default_tab", "chart_width"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestAppConfig_SiteSettings(t *testing.T) {
	cfg := AppConfig{DefaultTab: "PGU"}
	s := cfg.siteSettings()

	if s.SiteName != models.DefaultSiteName {
		t.Errorf("SiteName = %q, want default", s.SiteName)
	}
	if s.DefaultTab != models.TabFileExport {
		t.Errorf("DefaultTab = %q, want %q", s.DefaultTab, models.TabFileExport)
	}
}

func TestAppConfig_PerformanceOptions(t *testing.T) {
	cfg := validAppConfig()
	cfg.DefaultTab = "noConsiderados"
	opts := cfg.performanceOptions()

	if opts.DefaultTab != models.TabNotConsidered {
		t.Errorf("DefaultTab = %q", opts.DefaultTab)
	}
	if opts.Charts.Width != 900 || opts.Charts.Height != 400 {
		t.Errorf("Charts = %+v", opts.Charts)
	}
	if opts.CacheMaxAge != 5*time.Minute {
		t.Errorf("CacheMaxAge = %s", opts.CacheMaxAge)
	}
}
