package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestBPMCommand(t *testing.T) {
	out := execute(t, "bpm", "--co2", "209", "--fuel", "benzine", "--first-registration", "2014-04-01")

	assert.Contains(t, out, "Tarief 2020")
	assert.Contains(t, out, "Rest-BPM")
	assert.Contains(t, out, "€ 1684.64")
}

func TestBPMCommandUnknownFuel(t *testing.T) {
	rootCmd.SetArgs([]string{"bpm", "--co2", "120", "--fuel", "steam", "--first-registration", "2020-01-01"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fuel type")
}

func TestBPMCommandJSON(t *testing.T) {
	out := execute(t, "bpm", "--co2", "209", "--fuel", "benzine",
		"--first-registration", "2014-04-01", "--valuation-date", "2026-01-15", "--format", "json")

	assert.Contains(t, out, `"selectedRegimeYear": 2020`)
	assert.Contains(t, out, `"netTax": "1684.64"`)
	assert.Contains(t, out, `"vehicleAgeMonths": 141`)
}

func TestRegimesCommand(t *testing.T) {
	out := execute(t, "regimes")

	assert.Contains(t, out, "Tarief 2020")
	assert.Contains(t, out, "Tarief 2026")
	assert.Contains(t, out, "Dieseltoeslag")
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "importeer")
}
