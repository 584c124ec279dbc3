package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"net/url"

	"github.com/dcmsstats/statsdash/pkg/domain/interfaces"
	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/dcmsstats/statsdash/pkg/utils/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// maxSelectionBody bounds the figure request body
const maxSelectionBody = 4 << 10

// DashboardHandler serves one dashboard under its prefix: the shell page,
// its assets and the JSON endpoints the page calls
type DashboardHandler struct {
	dashboard interfaces.Dashboard
	shell     http.Handler
}

// selection is the selector state posted by the shell page
type selection struct {
	Breakdown types.Breakdown `json:"breakdown"`
	Mode      types.Mode      `json:"mode"`
}

type pageData struct {
	Title       string
	Prefix      string
	HomeURL     string
	FeedbackURL string
	Preamble    template.HTML
	Footer      template.HTML
	Options     model.DashboardOptions
}

// NewDashboardHandler pre-renders the shell page of a dashboard
func NewDashboardHandler(dashboard interfaces.Dashboard, tmpl *template.Template, assets http.FileSystem, homeURL string) (*DashboardHandler, error) {
	cfg := dashboard.Config()

	preamble, err := renderMarkdown(cfg.Preamble)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid preamble", goerr.V("dashboard", cfg.ID))
	}
	footer, err := renderMarkdown(cfg.Footer)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid footer", goerr.V("dashboard", cfg.ID))
	}

	data := pageData{
		Title:       cfg.Title,
		Prefix:      cfg.Prefix,
		HomeURL:     homeURL,
		FeedbackURL: feedbackURL(cfg.FeedbackEmail, cfg.FeedbackSubject),
		Preamble:    preamble,
		Footer:      footer,
		Options:     dashboard.Options(),
	}
	if data.Title == "" {
		data.Title = cfg.ID.String()
	}

	var page bytes.Buffer
	if err := tmpl.Execute(&page, data); err != nil {
		return nil, goerr.Wrap(err, "failed to render shell page", goerr.V("dashboard", cfg.ID))
	}

	return &DashboardHandler{
		dashboard: dashboard,
		shell:     http.StripPrefix(cfg.Prefix, NewShellHandler(assets, page.Bytes())),
	}, nil
}

func feedbackURL(email, subject string) string {
	if email == "" {
		return ""
	}
	u := "mailto:" + email
	if subject != "" {
		u += "?subject=" + url.PathEscape(subject)
	}
	return u
}

// Routes returns the router to mount at the dashboard prefix
func (h *DashboardHandler) Routes(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Use(CORSMiddleware(allowedOrigins))
		r.Post("/figure", h.handleFigure)
		r.Get("/figure", h.handleFigure)
		r.Get("/table", h.handleTable)
		r.Get("/options", h.handleOptions)
	})

	r.Handle("/*", h.shell)
	return r
}

func (h *DashboardHandler) handleFigure(w http.ResponseWriter, r *http.Request) {
	sel, err := h.readSelection(r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	spec, err := h.dashboard.Figure(sel.Breakdown, sel.Mode)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ctxlog.From(r.Context()).Debug("figure computed",
		"dashboard", h.dashboard.ID(),
		"breakdown", sel.Breakdown,
		"mode", sel.Mode,
		"series", len(spec.Data),
	)
	writeJSON(w, r, spec)
}

func (h *DashboardHandler) handleTable(w http.ResponseWriter, r *http.Request) {
	sel := h.querySelection(r)

	table, err := h.dashboard.Table(sel.Breakdown, sel.Mode)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, r, table)
}

func (h *DashboardHandler) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.dashboard.Options())
}

// readSelection reads the selector state from a JSON body (POST) or query
// parameters (GET). Absent fields take the dashboard defaults.
func (h *DashboardHandler) readSelection(r *http.Request) (selection, error) {
	if r.Method != http.MethodPost {
		return h.querySelection(r), nil
	}

	var sel selection
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSelectionBody))
	if err != nil {
		return sel, goerr.Wrap(err, "failed to read request body")
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &sel); err != nil {
			return sel, goerr.Wrap(err, "invalid request body")
		}
	}
	return h.withDefaults(sel), nil
}

func (h *DashboardHandler) querySelection(r *http.Request) selection {
	q := r.URL.Query()
	return h.withDefaults(selection{
		Breakdown: types.Breakdown(q.Get("breakdown")),
		Mode:      types.Mode(q.Get("mode")),
	})
}

func (h *DashboardHandler) withDefaults(sel selection) selection {
	cfg := h.dashboard.Config()
	if sel.Breakdown == "" {
		sel.Breakdown = cfg.DefaultBreakdown
	}
	if sel.Mode == "" {
		sel.Mode = cfg.DefaultMode
	}
	return sel
}

func (h *DashboardHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrUnknownBreakdown) || errors.Is(err, model.ErrUnknownMode) {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	apperr.Handle(r.Context(), err)
	writeError(w, errors.New("internal server error"), http.StatusInternalServerError)
}
