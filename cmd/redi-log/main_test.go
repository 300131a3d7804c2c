package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rediwo/redi-log/config"
	"github.com/rediwo/redi-log/logger"
)

func writeScript(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "app.js")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunScriptExportsOnExit(t *testing.T) {
	original := logger.Default()
	t.Cleanup(func() { logger.SetDefault(original) })

	dir := t.TempDir()
	script := writeScript(t, dir, `const log = require('redi/log');
log.file.trace('dropped');
log.file.error('kept');
`)

	cfg := config.Default()
	cfg.FileLevel = "info"
	cfg.ExportPath = filepath.Join(dir, "session.txt")

	assert.Equal(t, 0, runScript(script, cfg))

	data, err := os.ReadFile(cfg.ExportPath)
	require.NoError(t, err)
	assert.Equal(t, "[ERROR] app.js:3: kept\n", string(data))
}

func TestRunScriptFailsOnBadExportPath(t *testing.T) {
	original := logger.Default()
	t.Cleanup(func() { logger.SetDefault(original) })

	dir := t.TempDir()
	script := writeScript(t, dir, `require('redi/log').file.info('x');`)

	cfg := config.Default()
	cfg.ExportPath = filepath.Join(dir, "session.log")

	assert.Equal(t, 1, runScript(script, cfg))
	assert.Equal(t, 1, logger.Default().Buffer().Len())
}

func TestRunScriptKeepsScriptExport(t *testing.T) {
	original := logger.Default()
	t.Cleanup(func() { logger.SetDefault(original) })

	dir := t.TempDir()
	target := filepath.Join(dir, "session.txt")
	script := writeScript(t, dir, fmt.Sprintf(`const log = require('redi/log');
log.file.error('kept');
log.exportFile(%s);
`, strconv.Quote(target)))

	cfg := config.Default()
	cfg.ExportPath = target

	assert.Equal(t, 0, runScript(script, cfg))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "[ERROR] app.js:2: kept\n", string(data))
	assert.Equal(t, 1, logger.Default().Buffer().Exports())
}

func TestRunScriptExportsRecordsLoggedAfterScriptExport(t *testing.T) {
	original := logger.Default()
	t.Cleanup(func() { logger.SetDefault(original) })

	dir := t.TempDir()
	early := filepath.Join(dir, "early.txt")
	script := writeScript(t, dir, fmt.Sprintf(`const log = require('redi/log');
log.file.info('first');
log.exportFile(%s);
log.file.info('second');
`, strconv.Quote(early)))

	cfg := config.Default()
	cfg.ExportPath = filepath.Join(dir, "late.txt")

	assert.Equal(t, 0, runScript(script, cfg))

	data, err := os.ReadFile(early)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] app.js:2: first\n", string(data))

	data, err = os.ReadFile(cfg.ExportPath)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] app.js:4: second\n", string(data))
}

func TestReportTagsCallSite(t *testing.T) {
	var buf bytes.Buffer
	cli.SetConsoleOutput(&buf)
	t.Cleanup(func() { cli.SetConsoleOutput(os.Stderr) })

	_, _, line, _ := goruntime.Caller(0)
	report(1, "bad flag %q", "x")

	assert.Equal(t, fmt.Sprintf("[FATAL] main_test.go:%d: bad flag \"x\"\n", line+1), buf.String())
}
