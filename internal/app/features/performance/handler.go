// internal/app/features/performance/handler.go
package performance

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	errorsfeature "github.com/dalemusser/stratadash/internal/app/features/errors"
	perfstore "github.com/dalemusser/stratadash/internal/app/store/performance"
	"github.com/dalemusser/stratadash/internal/app/system/etag"
	"github.com/dalemusser/stratadash/internal/app/system/jsonutil"
	"github.com/dalemusser/stratadash/internal/app/system/viewdata"
	"github.com/dalemusser/stratadash/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Options configures a Handler.
type Options struct {
	DefaultTab  models.Tab
	Charts      ChartConfig
	CacheMaxAge time.Duration
}

// Handler serves the performance dashboard, its charts and the dataset API.
type Handler struct {
	store  *perfstore.Store
	opts   Options
	errLog *errorsfeature.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new performance Handler.
func NewHandler(store *perfstore.Store, opts Options, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	if !opts.DefaultTab.IsValid() {
		opts.DefaultTab = models.DefaultTab
	}
	if opts.Charts.Width <= 0 || opts.Charts.Height <= 0 {
		opts.Charts = DefaultChartConfig()
	}
	return &Handler{
		store:  store,
		opts:   opts,
		errLog: errLog,
		logger: logger,
	}
}

// ServeDashboard renders the dashboard page for the tab named by ?tab=.
// Unknown or missing values select the default tab.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	state := NewTabState(h.opts.DefaultTab)
	if raw := r.URL.Query().Get("tab"); raw != "" && !state.SetFromQuery(raw) {
		h.logger.Debug("ignoring unknown tab", zap.String("tab", raw))
	}

	vm, err := BuildView(viewdata.NewBaseVM(r, PageTitle), state, h.store, h.opts.Charts)
	if err != nil {
		h.errLog.LogWithFields(r, "failed to build dashboard", err, zap.String("tab", string(state.Current())))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page := newPageBuffer()
	templates.Render(page, r, "performance/index", vm)
	if page.status != http.StatusOK {
		h.errLog.LogWithFields(r, "failed to render dashboard", errRenderFailed, zap.Int("status", page.status))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setCacheControl(w)
	if etag.Check(w, r, etag.For(page.body.Bytes())) {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(page.body.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.body.Bytes())
}

var errRenderFailed = stderrors.New("template render failed")

// pageBuffer captures a rendered page so its ETag covers the exact bytes
// sent, templates and layout included.
type pageBuffer struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newPageBuffer() *pageBuffer {
	return &pageBuffer{header: http.Header{}, status: http.StatusOK}
}

func (p *pageBuffer) Header() http.Header { return p.header }

func (p *pageBuffer) WriteHeader(status int) { p.status = status }

func (p *pageBuffer) Write(b []byte) (int, error) { return p.body.Write(b) }

// ServeChartSVG returns the standalone SVG chart for a tab.
func (h *Handler) ServeChartSVG(w http.ResponseWriter, r *http.Request) {
	h.serveChart(w, r, "image/svg+xml", "svg", h.opts.Charts.RenderSVG)
}

// ServeChartPNG returns a PNG rendering of a tab's chart as a download.
func (h *Handler) ServeChartPNG(w http.ResponseWriter, r *http.Request) {
	h.serveChart(w, r, "image/png", "png", h.opts.Charts.RenderPNG)
}

type renderFunc func(w io.Writer, d models.Dataset) error

func (h *Handler) serveChart(w http.ResponseWriter, r *http.Request, contentType, ext string, render renderFunc) {
	ds, ok := h.datasetFromPath(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render(&buf, ds); err != nil {
		h.errLog.LogWithFields(r, "failed to render chart", err,
			zap.String("tab", string(ds.Tab)),
			zap.String("format", ext),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setCacheControl(w)
	if etag.Check(w, r, etag.For(buf.Bytes())) {
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if ext == "png" {
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="rendimiento-%s.png"`, ds.Tab))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// ServeDatasets returns every dataset as JSON, in tab order.
func (h *Handler) ServeDatasets(w http.ResponseWriter, r *http.Request) {
	h.setCacheControl(w)
	if err := jsonutil.Cached(w, r, h.store.All()); err != nil {
		h.errLog.Log(r, "failed to write datasets", err)
	}
}

// ServeDataset returns one tab's dataset as JSON.
func (h *Handler) ServeDataset(w http.ResponseWriter, r *http.Request) {
	t, ok := models.ParseTab(chi.URLParam(r, "tab"))
	if !ok {
		jsonutil.NotFound(w, "unknown tab")
		return
	}
	ds, err := h.store.Get(t)
	if err != nil {
		h.errLog.Log(r, "failed to load dataset", err)
		jsonutil.InternalError(w, "failed to load dataset")
		return
	}

	h.setCacheControl(w)
	if err := jsonutil.Cached(w, r, ds); err != nil {
		h.errLog.Log(r, "failed to write dataset", err)
	}
}

// datasetFromPath resolves the {tab} URL parameter. It writes a 404 and
// returns false when the tab is unknown.
func (h *Handler) datasetFromPath(w http.ResponseWriter, r *http.Request) (models.Dataset, bool) {
	raw := chi.URLParam(r, "tab")
	t, ok := models.ParseTab(raw)
	if !ok {
		http.NotFound(w, r)
		return models.Dataset{}, false
	}
	ds, err := h.store.Get(t)
	if err != nil {
		if stderrors.Is(err, perfstore.ErrUnknownTab) {
			http.NotFound(w, r)
			return models.Dataset{}, false
		}
		h.errLog.Log(r, "failed to load dataset", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return models.Dataset{}, false
	}
	return ds, true
}

func (h *Handler) setCacheControl(w http.ResponseWriter) {
	if h.opts.CacheMaxAge <= 0 {
		w.Header().Set("Cache-Control", "no-cache")
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.opts.CacheMaxAge.Seconds())))
}
