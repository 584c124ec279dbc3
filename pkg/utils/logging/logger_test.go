package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/dcmsstats/statsdash/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: "", expected: slog.LevelInfo},
		{input: "warning", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := logging.ParseLevel(tc.input)
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, level, tc.expected)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatJSON)

	f, err = logging.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatAuto)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNew_AutoFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelInfo, &buf, logging.FormatAuto)

	logger.Debug("hidden")
	logger.Info("dashboard loaded", slog.String("id", "gva"))

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, entry["msg"], "dashboard loaded")
	gt.Equal(t, entry["id"], "gva")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelDebug, &buf, logging.FormatConsole)
	logger.Debug("reshaped table")
	gt.S(t, buf.String()).Contains("reshaped table")
}
