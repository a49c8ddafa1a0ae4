package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/util"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parseResult(t *testing.T, out, path string) float64 {
	t.Helper()
	fields := strings.Split(strings.TrimSpace(out), "\t")
	require.Len(t, fields, 2)
	assert.Equal(t, path, fields[0])
	val, err := strconv.ParseFloat(fields[1], 64)
	require.NoError(t, err)
	return val
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage")

	stderr.Reset()
	assert.Equal(t, 2, run(context.Background(), []string{"igd"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "igd"`)

	assert.Equal(t, 0, run(context.Background(), []string{"help"}, &stdout, &stderr))
}

func TestRunHypervolume(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.dat", "1 0\n0 1\n0.5 0.5\n")
	plot := filepath.Join(dir, "front.html")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"hv", "--ref-point", "1.1,1.1", "--norm-ref-point=false", "--plot", plot, front}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.InDelta(t, 0.46, parseResult(t, stdout.String(), front), 1e-12)
	assert.FileExists(t, plot)
}

func TestRunHypervolumeWithConfig(t *testing.T) {
	dir := t.TempDir()
	pf := writeFile(t, dir, "pf.dat", "0 10\n2 0\n")
	config := writeFile(t, dir, "hv.yaml", "kind: HypervolumeArgs\nparetoFrontFile: "+pf+"\n")
	points := writeFile(t, dir, "points.dat", "1 5\n1.5 6\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"hv", "--config", config, points}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.InDelta(t, 0.25, parseResult(t, stdout.String(), points), 1e-12)
}

func TestRunHypervolumeErrors(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.dat", "1 0\n")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"hv", front}, &stdout, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"hv", "--ref-point", "1,1"}, &stdout, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"hv", "--ref-point", "1,x", front}, &stdout, &stderr))
}

func TestRunHypervolumeReportsFailedFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.dat", "0.5 0.5\n")
	mismatched := writeFile(t, dir, "mismatched.dat", "0.5 0.5 0.5\n")
	ragged := writeFile(t, dir, "ragged.dat", "0.5 0.5\n0.5\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"hv", "--ref-point", "1,1", good, mismatched, ragged}, &stdout, &stderr)
	assert.Equal(t, 1, code)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.InDelta(t, 0.25, parseResult(t, lines[0], good), 1e-12)
	assert.True(t, math.IsInf(parseResult(t, lines[1], mismatched), -1))
	assert.True(t, math.IsInf(parseResult(t, lines[2], ragged), -1))

	assert.Contains(t, stderr.String(), mismatched+":")
	assert.Contains(t, stderr.String(), ragged+":")
	assert.Contains(t, stderr.String(), "2 of 3 files failed")
}

func TestRunRefDirs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"refdirs", "--n-obj", "3", "--n-refs", "12", "--fill-up=false"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	dirs, err := util.ReadMatrix(strings.NewReader(stdout.String()))
	require.NoError(t, err)
	assert.Len(t, dirs, 10)
	assert.Equal(t, 3, dirs.NumObjectives())
}

func TestRunRefDirsWithConfig(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "refdirs.yaml", "numObjectives: 2\nnumDirections: 7\n")
	out := filepath.Join(dir, "dirs.dat")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"refdirs", "--config", config, "--output", out}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, stdout.String())

	dirs, err := util.ReadMatrixFile(out)
	require.NoError(t, err)
	assert.Len(t, dirs, 7)

	assert.Equal(t, 1, run(context.Background(), []string{"refdirs", "--n-obj", "1"}, &stdout, &stderr))
}
