package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dcmsstats/statsdash/pkg/repository"
	"github.com/m-mizutani/gt"
)

const (
	gvaFixture        = "../../testdata/gva_aggregate_sample.csv"
	employmentFixture = "../../testdata/employment_aggregate_sample.csv"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(context.Background(), append([]string{"statsdash", "--log-level", "error"}, args...), &buf)
	return buf.String(), err
}

func TestTableCommand(t *testing.T) {
	out, err := runCLI(t, "table", "--data", "gva="+gvaFixture, "--breakdown", "All")
	gt.NoError(t, err).Required()

	gt.S(t, out).Contains("Civil Society (Non-market charities)")
	gt.S(t, out).Contains("All DCMS sectors")
	gt.S(t, out).Contains("2016 (p)")

	out, err = runCLI(t, "table", "--data", "gva="+gvaFixture, "--mode", "Indexed")
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("Publishing")
	gt.S(t, out).Contains("100")
}

func TestMissingDataFileNamesOverride(t *testing.T) {
	_, err := runCLI(t, "table", "--dashboard", "gva")
	gt.Error(t, err).Required()
	gt.S(t, err.Error()).Contains("--data gva=<path>")

	_, err = runCLI(t, "check", "--data", "gva="+gvaFixture)
	gt.Error(t, err).Required()
	gt.S(t, err.Error()).Contains("--data employment=<path>")
}

func TestTableCommandErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown dashboard", args: []string{"table", "--dashboard", "museums"}},
		{name: "unknown breakdown", args: []string{"table", "--data", "gva=" + gvaFixture, "--breakdown", "Gambling"}},
		{name: "unknown mode", args: []string{"table", "--data", "gva=" + gvaFixture, "--mode", "Percent"}},
		{name: "missing data", args: []string{"table", "--data", "gva=missing.csv"}},
		{name: "invalid locale", args: []string{"table", "--data", "gva=" + gvaFixture, "--locale", "!!"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCLI(t, tc.args...)
			gt.Error(t, err)
		})
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := runCLI(t, "check", "--strict",
		"--data", "gva="+gvaFixture,
		"--data", "employment="+employmentFixture,
	)
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("gva\t/dash2\t0 mismatched breakdown(s)")
	gt.S(t, out).Contains("employment\t/dash1\t0 mismatched breakdown(s)")
}

func TestCheckCommandStrictDrift(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboards.yaml")
	data, err := filepath.Abs(gvaFixture)
	gt.NoError(t, err).Required()
	gt.NoError(t, os.WriteFile(path, []byte(`
dashboards:
  - id: gva
    prefix: /gva
    data:
      path: `+data+`
    breakdowns:
      - value: Creative Industries
        row_order: [Publishing, Video games]
`), 0o644)).Required()

	out, err := runCLI(t, "check", "--config", path)
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("gva\t/gva\t1 mismatched breakdown(s)")

	_, err = runCLI(t, "check", "--config", path, "--strict")
	gt.Error(t, err)
}

func TestConvertCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "gva.parquet")

	_, err := runCLI(t, "convert", "--input", gvaFixture, "--output", output)
	gt.NoError(t, err).Required()

	converted, err := repository.Load(context.Background(), output, repository.Options{})
	gt.NoError(t, err).Required()
	original, err := repository.Load(context.Background(), gvaFixture, repository.Options{})
	gt.NoError(t, err).Required()

	gt.Equal(t, converted.Len(), original.Len())
	gt.Equal(t, converted.Years(), original.Years())
}

func TestConvertCommandRequiresFlags(t *testing.T) {
	_, err := runCLI(t, "convert", "--input", gvaFixture)
	gt.Error(t, err)
}
