package text

import (
	"io"
	"math"
	"strconv"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// missingCell is printed for cells without a value
const missingCell = "-"

// TableWriter prints reshaped tables for terminals
type TableWriter struct {
	printer *message.Printer
	digits  int
}

// NewTableWriter creates a writer that groups thousands the way the tag's
// locale does and prints at most digits fraction digits
func NewTableWriter(tag language.Tag, digits int) *TableWriter {
	return &TableWriter{
		printer: message.NewPrinter(tag),
		digits:  digits,
	}
}

// Write renders table to w. Year headers carry the provisional suffix the
// chart uses.
func (x *TableWriter) Write(w io.Writer, table *model.Table, cfg *model.DashboardConfig) error {
	out := tablewriter.NewWriter(w)

	headers := []string{table.Breakdown.String()}
	provisionalFrom := len(table.Years) - cfg.ProvisionalCount()
	for i, y := range table.Years {
		label := strconv.Itoa(y)
		if i >= provisionalFrom {
			label += cfg.ProvisionalSuffix()
		}
		headers = append(headers, label)
	}
	out.Configure(func(c *tablewriter.Config) {
		c.Header.Formatting.AutoFormat = tw.Off
		c.Row.Alignment.Global = tw.AlignRight
	})
	out.Header(headers)

	data := make([][]string, len(table.Rows))
	for i, label := range table.Rows {
		row := []string{label}
		for _, v := range table.Cells[i] {
			row = append(row, x.FormatValue(v))
		}
		data[i] = row
	}

	if err := out.Bulk(data); err != nil {
		return goerr.Wrap(err, "failed to add table rows")
	}
	if err := out.Render(); err != nil {
		return goerr.Wrap(err, "failed to render table")
	}
	return nil
}

// FormatValue formats one cell with grouped thousands
func (x *TableWriter) FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return missingCell
	}
	return x.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(x.digits)))
}
