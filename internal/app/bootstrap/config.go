// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/stratadash/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "STRATADASH"

// Chart size limits accepted by ValidateConfig.
const (
	minChartWidth  = 320
	minChartHeight = 200
	maxChartSide   = 4096
)

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: site_name, default_tab, etc.
//   - Environment variables: STRATADASH_SITE_NAME, STRATADASH_DEFAULT_TAB, etc.
//   - Command-line flags: --site_name, --default_tab, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Dashboard heading and page title"},
	{Name: "footer_html", Default: models.DefaultFooterHTML, Desc: "Footer markup (sanitized)"},

	// Dashboard
	{Name: "default_tab", Default: string(models.DefaultTab), Desc: "Tab shown by default: aps, noConsiderados or pgu"},
	{Name: "chart_width", Default: 900, Desc: "Chart width in pixels"},
	{Name: "chart_height", Default: 400, Desc: "Chart height in pixels"},

	// HTTP
	{Name: "request_timeout", Default: "30s", Desc: "Per-request timeout (e.g., 30s, 1m)"},
	{Name: "cache_max_age", Default: "5m", Desc: "Cache-Control max-age for dashboard responses (0 disables caching)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STRATADASH_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName:   appValues.String("site_name"),
		FooterHTML: appValues.String("footer_html"),

		DefaultTab:  appValues.String("default_tab"),
		ChartWidth:  appValues.Int("chart_width"),
		ChartHeight: appValues.Int("chart_height"),

		RequestTimeout: appValues.Duration("request_timeout", 30*time.Second),
		CacheMaxAge:    appValues.Duration("cache_max_age", 5*time.Minute),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Every problem found is reported, not just the first.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	var errs []error

	if _, ok := models.ParseTab(appCfg.DefaultTab); !ok {
		errs = append(errs, fmt.Errorf("default_tab %q is not one of aps, noConsiderados, pgu", appCfg.DefaultTab))
	}
	if appCfg.ChartWidth < minChartWidth || appCfg.ChartWidth > maxChartSide {
		errs = append(errs, fmt.Errorf("chart_width %d out of range [%d, %d]", appCfg.ChartWidth, minChartWidth, maxChartSide))
	}
	if appCfg.ChartHeight < minChartHeight || appCfg.ChartHeight > maxChartSide {
		errs = append(errs, fmt.Errorf("chart_height %d out of range [%d, %d]", appCfg.ChartHeight, minChartHeight, maxChartSide))
	}
	if appCfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request_timeout must be positive, got %s", appCfg.RequestTimeout))
	}
	if appCfg.CacheMaxAge < 0 {
		errs = append(errs, fmt.Errorf("cache_max_age must not be negative, got %s", appCfg.CacheMaxAge))
	}

	if err := errors.Join(errs...); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	return nil
}
