// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonih.org/instant"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	instant.SetClock(instant.FixedClock(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)))
	t.Cleanup(func() {
		instant.SetClock(nil)
		instant.SetDefaultFormat(instant.DefaultLayout)
		instant.SetDefaultLocation(nil)
	})

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--tz", "UTC"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tcs := []struct {
		name string
		args []string
		want string
	}{
		{"now", []string{"now"}, "2024-01-10 12:00:00\n"},
		{"now micro", []string{"now", "--micro"}, "2024-01-10 12:00:00.000000\n"},
		{"show now", []string{"show"}, "2024-01-10 12:00:00\n"},
		{"show timestamp", []string{"show", "0", "--format", "d.m.Y"}, "01.01.1970\n"},
		{"show layout", []string{"show", "2024-03-05", "--layout", "l, j F"}, "Tuesday, 5 March\n"},
		{"show polish", []string{"show", "2024-03-05", "--layout", "l, j F", "--locale", "pl"}, "Wtorek, 5 Marzec\n"},
		{"show relative", []string{"show", "+1 day"}, "2024-01-11 12:00:00\n"},
		{"add clamped", []string{"add", "2024-03-31", "--months", "1"}, "2024-04-30 00:00:00\n"},
		{"add overflow", []string{"add", "2024-03-31", "--months", "1", "--no-clamp"}, "2024-05-01 00:00:00\n"},
		{"add negative", []string{"add", "2024-03-31", "--months=-1"}, "2024-02-29 00:00:00\n"},
		{"add clock", []string{"add", "2024-01-01", "--days", "1", "--hours", "2", "--minutes", "3", "--seconds", "4"}, "2024-01-02 02:03:04\n"},
		{"add raw", []string{"add", "2024-01-01", "--days", "1", "--raw"}, "1704153600\n"},
		{"diff", []string{"diff", "2024-01-10 12:00:00", "2032-06-12 12:07:35"}, "8y 5m 2d 0h 7i 35s\n"},
		{"diff reversed", []string{"diff", "2032-06-12 12:07:35", "2024-01-10 12:00:00"}, "8y 5m 2d 0h 7i 35s\n"},
		{"diff yaml", []string{"diff", "2024-01-10", "2024-01-11", "-o", "yaml"}, "years: 0\nmonths: 0\ndays: 1\nhours: 0\nminutes: 0\nseconds: 0\n"},
		{"months", []string{"months", "2020-01-01", "2020-03-01"}, "2\n"},
		{"months reversed", []string{"months", "2020-03-01", "2020-01-01"}, "-2\n"},
		{"since", []string{"since", "2024-01-10 11:00:00"}, "3600\n"},
		{"weekdays", []string{"weekdays", "2024-01-08", "2024-01-14"}, "5\n"},
		{"cal", []string{"cal", "2024-02"}, strings.Join([]string{
			"February 2024",
			"Mon Tue Wed Thu Fri Sat Sun",
			"              1   2   3   4",
			"  5   6   7   8   9  10  11",
			" 12  13  14  15  16  17  18",
			" 19  20  21  22  23  24  25",
			" 26  27  28  29",
			"",
		}, "\n")},
		{"cal polish", []string{"cal", "2024-09", "--locale", "pl"}, strings.Join([]string{
			"Wrzesień 2024",
			"Pon Wto Śro Czw Pią Sob Nie",
			"                          1",
			"  2   3   4   5   6   7   8",
			"  9  10  11  12  13  14  15",
			" 16  17  18  19  20  21  22",
			" 23  24  25  26  27  28  29",
			" 30",
			"",
		}, "\n")},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDiffJSON(t *testing.T) {
	got, err := run(t, "diff", "2024-01-10", "2025-03-11 01:02:03", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"years":1,"months":2,"days":1,"hours":1,"minutes":2,"seconds":3}`, got)
}

func TestEval(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "ok.star")
	require.NoError(t, os.WriteFile(script, []byte(`
d = instant.add("2024-03-31", months=1)
print(instant.format(d, "Y-m-d"))
print(instant.months_between("2020-01-01", d))
`), 0o644))
	got, err := run(t, "eval", script)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-30\n51\n", got)

	failing := filepath.Join(dir, "fail.star")
	require.NoError(t, os.WriteFile(failing, []byte(`fail("boom")`), 0o644))
	_, err = run(t, "eval", failing)
	assert.ErrorContains(t, err, "boom")

	_, err = run(t, "eval", filepath.Join(dir, "missing.star"))
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	var pe *instant.ParseError
	_, err := run(t, "show", "invalid-date")
	assert.ErrorAs(t, err, &pe)

	_, err = run(t, "months", "2020-01-01", "invalid-date")
	assert.ErrorAs(t, err, &pe)

	_, err = run(t, "diff", "2024-01-10", "2024-01-11", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "cal", "2024-13")
	assert.Error(t, err)

	_, err = run(t, "now", "--locale", "de")
	assert.ErrorContains(t, err, "unknown locale")

	_, err = run(t, "now", "--log-level", "loud")
	assert.Error(t, err)

	_, err = run(t, "add")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: Y/m/d\n"), 0o644))
	got, err := run(t, "--config", path, "show", "2024-03-05 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2024/03/05\n", got)

	got, err = run(t, "--config", path, "--format", "d.m.", "show", "2024-03-05 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, "05.03.\n", got, "flags override the config file")
}
