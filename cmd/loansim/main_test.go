package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
loan:
  label: "Test Loan"
  term_years: 25
  payments_per_year: 12
  principal: 1000000
  initial_annual_rate: 0.05
scenarios:
  - name: baseline
  - name: offset
    offset_contributions:
      - month: 0
        amount: 200000
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", writeTestConfig(t))

	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "2 scenario(s)")
}

func TestValidateCommand_BadFile(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestCalculateCommand_Console(t *testing.T) {
	out, err := execute(t, "calculate", writeTestConfig(t))

	require.NoError(t, err)
	assert.Contains(t, out, "LOAN ANALYSIS: Test Loan")
	assert.Contains(t, out, "SCENARIO: offset")
}

func TestCalculateCommand_BadFormat(t *testing.T) {
	_, err := execute(t, "calculate", "--format", "html", writeTestConfig(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestScheduleCommand(t *testing.T) {
	out, err := execute(t, "schedule", "--scenario", "offset", writeTestConfig(t))

	require.NoError(t, err)
	assert.Contains(t, out, "Period,Month,Year")

	_, err = execute(t, "schedule", "--scenario", "nope", writeTestConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scenario")
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", writeTestConfig(t))

	require.NoError(t, err)
	assert.Contains(t, out, "LOAN SCENARIO COMPARISON")
	assert.Contains(t, out, "baseline (base)")
}
