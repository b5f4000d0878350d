// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/audtrim/batch"
	"github.com/ik5/audtrim/trim"
	"github.com/ik5/audtrim/vad"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	if cfg.Trim != trim.DefaultConfig() {
		t.Errorf("Trim = %+v, want trim defaults", cfg.Trim)
	}
	if cfg.Detection != vad.DefaultConfig() {
		t.Errorf("Detection = %+v, want vad defaults", cfg.Detection)
	}
	if q := cfg.Quantize(); q.Exponent != 5.5 || q.MaxValue != 0 {
		t.Errorf("Quantize() = %+v", q)
	}
}

func TestLoad_Overlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "audtrim.yaml")
	data := `
trim:
  fade_duration: 0.05
  strict_fade: true
detection:
  speech_pad_ms: 30
batch:
  workers: 4
  on_unreadable: placeholder
logging:
  format: json
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Trim.FadeDurationSec != 0.05 || !cfg.Trim.StrictFade {
		t.Errorf("trim overrides lost: %+v", cfg.Trim)
	}
	if cfg.Trim.Exponent != 7.3 || cfg.Trim.FrontSilenceSec != 0.5 {
		t.Errorf("trim defaults lost: %+v", cfg.Trim)
	}
	if cfg.Detection.SpeechPadMs != 30 || cfg.Detection.MinSpeechDurationMs != 100 {
		t.Errorf("detection = %+v", cfg.Detection)
	}
	if cfg.Batch.Workers != 4 || cfg.Batch.OnUnreadable != batch.PolicyPlaceholder || cfg.Batch.BitDepth != 16 {
		t.Errorf("batch = %+v", cfg.Batch)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode(empty) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Decode(empty) = %+v, want defaults", cfg)
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown key":      "trim:\n  fade_durration: 0.1\n",
		"negative fade":    "trim:\n  fade_duration: -1\n",
		"negative pad":     "detection:\n  speech_pad_ms: -5\n",
		"bad policy":       "batch:\n  on_unreadable: retry\n",
		"bad bit depth":    "batch:\n  bit_depth: 8\n",
		"negative workers": "batch:\n  workers: -2\n",
		"bad level":        "logging:\n  level: loud\n",
		"bad format":       "logging:\n  format: xml\n",
		"negative max":     "quantization:\n  max_value: -1\n",
		"not yaml":         "trim: [1, 2\n",
		"huge exponent":    "quantization:\n  exponent: 5000\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := Decode(strings.NewReader(data)); err == nil {
				t.Error("Decode() returned no error")
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "file", "a.wav")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"file":"a.wav"`) {
		t.Errorf("unexpected JSON output: %s", out)
	}

	buf.Reset()
	logger, err = LoggingConfig{Level: "debug"}.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("details")
	if !strings.Contains(buf.String(), "msg=details") {
		t.Errorf("unexpected text output: %s", buf.String())
	}

	if _, err := (LoggingConfig{Level: "trace"}).NewLogger(&buf); !errors.Is(err, ErrInvalid) {
		t.Errorf("NewLogger(trace) error = %v, want ErrInvalid", err)
	}
}
