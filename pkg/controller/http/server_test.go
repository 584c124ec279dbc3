package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dcmsstats/statsdash/pkg/cli/config"
	controller "github.com/dcmsstats/statsdash/pkg/controller/http"
	"github.com/dcmsstats/statsdash/pkg/domain/interfaces"
	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/repository"
	"github.com/dcmsstats/statsdash/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
)

const testHomeURL = "https://example.gov.uk/statistics"

func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.With(context.Background(), logger), &buf
}

// newTestDashboards builds the built-in dashboards over the fixture data
func newTestDashboards(t *testing.T) []interfaces.Dashboard {
	t.Helper()
	d := config.Dashboards{
		Data: []string{
			"gva=../../../testdata/gva_aggregate_sample.csv",
			"employment=../../../testdata/employment_aggregate_sample.csv",
		},
	}
	cfg, err := d.Configure()
	gt.NoError(t, err).Required()

	var dashboards []interfaces.Dashboard
	for i := range cfg.Dashboards {
		dash := &cfg.Dashboards[i]
		set, err := repository.Load(context.Background(), dash.Data.Path, repository.OptionsFromSource(dash.Data))
		gt.NoError(t, err).Required()
		dashboards = append(dashboards, usecase.NewDashboard(dash, set))
	}
	return dashboards
}

func newTestServer(t *testing.T, dashboards ...interfaces.Dashboard) http.Handler {
	t.Helper()
	if len(dashboards) == 0 {
		dashboards = newTestDashboards(t)
	}
	ctx, _ := testContext(t)
	server, err := controller.NewServer(ctx, controller.Options{
		Addr:           ":0",
		HomeURL:        testHomeURL,
		AllowedOrigins: []string{"*"},
	}, dashboards)
	gt.NoError(t, err).Required()
	return server.Handler
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServerHealthCheck(t *testing.T) {
	h := newTestServer(t)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	gt.Equal(t, http.StatusOK, w.Code)
	gt.Equal(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body)).Required()
	gt.Equal(t, body["status"], "healthy")
	gt.Equal(t, body["service"], "statsdash")
}

func TestServerRedirects(t *testing.T) {
	h := newTestServer(t)

	testCases := []struct {
		path     string
		location string
	}{
		{path: "/", location: testHomeURL},
		{path: "/hello", location: testHomeURL},
		{path: "/dashboard", location: "/dash1"},
		{path: "/reports", location: "/dash2"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := serve(h, httptest.NewRequest(http.MethodGet, tc.path, nil))
			gt.Equal(t, w.Code, http.StatusFound)
			gt.Equal(t, w.Header().Get("Location"), tc.location)
		})
	}
}

func TestServerUnknownTopLevelPath(t *testing.T) {
	h := newTestServer(t)
	w := serve(h, httptest.NewRequest(http.MethodGet, "/dash3", nil))
	gt.Equal(t, w.Code, http.StatusNotFound)
}

func TestServerAccessLog(t *testing.T) {
	ctx, buf := testContext(t)
	server, err := controller.NewServer(ctx, controller.Options{HomeURL: testHomeURL}, newTestDashboards(t))
	gt.NoError(t, err).Required()

	serve(server.Handler, httptest.NewRequest(http.MethodGet, "/health", nil))
	gt.S(t, buf.String()).Contains(`"msg":"HTTP request"`)
	gt.S(t, buf.String()).Contains(`"path":"/health"`)
	gt.S(t, buf.String()).Contains(`"status":200`)
	gt.True(t, strings.Contains(buf.String(), `"msg":"Dashboard mounted"`))
}

func TestServerSingleDashboard(t *testing.T) {
	dashboards := newTestDashboards(t)
	h := newTestServer(t, dashboards[1])

	w := serve(h, httptest.NewRequest(http.MethodGet, "/dash2/", nil))
	gt.Equal(t, w.Code, http.StatusOK)
	w = serve(h, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	gt.Equal(t, w.Code, http.StatusNotFound)
}

func TestServerMountsEveryDashboard(t *testing.T) {
	h := newTestServer(t)

	for _, prefix := range []string{"/dash1", "/dash2"} {
		w := serve(h, httptest.NewRequest(http.MethodGet, prefix+"/api/options", nil))
		gt.Equal(t, w.Code, http.StatusOK)

		var opts model.DashboardOptions
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts)).Required()
		gt.Equal(t, len(opts.Breakdowns), 4)
	}
}
