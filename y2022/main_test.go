package main

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2022"
)

func TestSamples(t *testing.T) {
	for _, day := range []int{7, 11, 12, 14, 15, 16, 17, 19, 23, 24} {
		t.Run(strconv.Itoa(day), func(t *testing.T) {
			if testing.Short() && day == 19 {
				t.Skip("slow")
			}
			var out bytes.Buffer
			cfg := aoc.DefaultConfig()
			cfg.Day = day
			cfg.OnlySample = true
			cfg.Out = &out
			cfg.Logger = aoc.NewLogger(&out, true)
			require.NoError(t, aoc.Run(cfg, sources, &solver{}), out.String())
			assert.Contains(t, out.String(), "part 2 sample")
		})
	}
}

func TestRootCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--day", "7", "--sample"})
	require.NoError(t, cmd.Execute(), out.String())
	assert.Contains(t, out.String(), "part 1 sample: 95437")

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--day", "8", "--sample"})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--sample", "--skip-sample"})
	assert.Error(t, cmd.Execute())
}
