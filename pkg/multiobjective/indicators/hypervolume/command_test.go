package hypervolume

import (
	"context"
	"errors"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
)

// fakeHV writes a shell script standing in for the hypervolume executable.
func fakeHV(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake executable needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "hv")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestCommandCompute(t *testing.T) {
	record := t.TempDir()
	bin := fakeHV(t, `
printf '%s\n' "$1" > "`+record+`/flag"
printf '%s\n' "$2" > "`+record+`/ref"
cp "$3" "`+record+`/input"
echo " 0.4600 "`)

	tmp := t.TempDir()
	c := &Command{Path: bin, TempDir: tmp}
	X := framework.ObjectiveMatrix{{1, 0}, {0, 1}, {0.5, 0.5}}

	val, err := c.Compute(context.Background(), X, []float64{1.1, 1.1})
	require.NoError(t, err)
	assert.Equal(t, 0.46, val)

	flag, err := os.ReadFile(filepath.Join(record, "flag"))
	require.NoError(t, err)
	assert.Equal(t, "-r\n", string(flag))

	ref, err := os.ReadFile(filepath.Join(record, "ref"))
	require.NoError(t, err)
	assert.Equal(t, "1.100 1.100\n", string(ref))

	input, err := os.ReadFile(filepath.Join(record, "input"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(input)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1.000000000000000000e+00 0.000000000000000000e+00", lines[0])

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary files must be removed")
}

func TestCommandNonNumericOutput(t *testing.T) {
	bin := fakeHV(t, `echo "error: reference point is dominated"`)
	tmp := t.TempDir()

	val, err := (&Command{Path: bin, TempDir: tmp}).Compute(context.Background(), framework.ObjectiveMatrix{{2, 2}}, []float64{1, 1})
	assert.True(t, math.IsInf(val, -1))
	assert.ErrorIs(t, err, ErrInvalidOutput)

	var outErr *OutputError
	require.True(t, errors.As(err, &outErr))
	assert.Equal(t, "error: reference point is dominated", outErr.Output)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCommandFailingExecutableIsJudgedByOutput(t *testing.T) {
	bin := fakeHV(t, "echo 1.5\nexit 3")

	val, err := ComputeByCommand(context.Background(), bin, framework.ObjectiveMatrix{{0, 0}}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.5, val)
}

func TestCommandTimeout(t *testing.T) {
	bin := fakeHV(t, "exec sleep 5")
	tmp := t.TempDir()

	c := &Command{Path: bin, TempDir: tmp, Timeout: 100 * time.Millisecond}
	start := time.Now()
	val, err := c.Compute(context.Background(), framework.ObjectiveMatrix{{0, 0}}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrTimeout)
	assert.True(t, math.IsInf(val, -1))
	assert.Less(t, time.Since(start), 4*time.Second)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCommandCancelled(t *testing.T) {
	bin := fakeHV(t, "exec sleep 5")
	tmp := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(100*time.Millisecond, cancel)
	defer timer.Stop()

	c := &Command{Path: bin, TempDir: tmp}
	val, err := c.Compute(ctx, framework.ObjectiveMatrix{{0, 0}}, []float64{1, 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrInvalidOutput)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.True(t, math.IsInf(val, -1))

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCommandMissingExecutable(t *testing.T) {
	tmp := t.TempDir()
	c := &Command{Path: filepath.Join(tmp, "does-not-exist")}

	val, err := c.Compute(context.Background(), framework.ObjectiveMatrix{{0, 0}}, []float64{1, 1})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidOutput)
	assert.True(t, math.IsInf(val, -1))
}

func TestFormatRefPoint(t *testing.T) {
	assert.Equal(t, "1.100 0.000 12.346", formatRefPoint([]float64{1.1, 0, 12.3456}))
}
