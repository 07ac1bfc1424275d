package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/lgbarn/ajedrez-go/internal/testutil"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	testutil.AssertTrue(t, cfg.Unicode)
	testutil.AssertTrue(t, cfg.Highlight)
	testutil.AssertEqual(t, cfg.Verbosity, 1)
	testutil.AssertTrue(t, cfg.Workers >= 1)
	testutil.AssertTrue(t, cfg.OutputFile == os.Stdout)
	testutil.AssertTrue(t, cfg.LogFile == os.Stderr)
}

func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer

	cfg := NewConfigBuilder().
		WithUnicode(false).
		WithHighlight(false).
		WithVerbosity(2).
		WithWorkers(4).
		WithOutput(&out).
		WithLog(&log).
		Build()

	testutil.AssertFalse(t, cfg.Unicode)
	testutil.AssertFalse(t, cfg.Highlight)
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertEqual(t, cfg.Workers, 4)
	testutil.AssertTrue(t, cfg.OutputFile == &out)
	testutil.AssertTrue(t, cfg.LogFile == &log)
}

func TestConfigBuilderIgnoresInvalidWorkers(t *testing.T) {
	cfg := NewConfigBuilder().WithWorkers(0).Build()
	testutil.AssertTrue(t, cfg.Workers >= 1)
}
