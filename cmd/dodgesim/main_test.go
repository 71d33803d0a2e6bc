package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match:\n  durationSec: 5\n"), 0o644))

	var out bytes.Buffer
	ok, err := run(context.Background(), options{configPath: path, seeds: 3, firstSeed: 10, jobs: 2}, &out, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, ok)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6, "header, three seeds, mean, verdict")
	assert.True(t, strings.HasPrefix(lines[1], "10 "))
	assert.True(t, strings.HasPrefix(lines[3], "12 "))
	assert.Contains(t, lines[4], "over 3 seeds")
	assert.Equal(t, "all seeds reproducible", lines[5])
}

func TestRun_BadConfig(t *testing.T) {
	_, err := run(context.Background(), options{configPath: "missing.json", seeds: 1}, &bytes.Buffer{}, zap.NewNop())
	assert.Error(t, err)
}
