package hypervolume

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
	"sigs.k8s.io/moo-indicators/pkg/multiobjective/util"
)

// DefaultCommandTimeout bounds a single run of the external executable.
const DefaultCommandTimeout = time.Minute

var (
	// ErrTimeout is returned when the external executable does not finish in time.
	ErrTimeout = errors.New("hypervolume command timed out")
	// ErrInvalidOutput is returned when the executable does not print a number.
	ErrInvalidOutput = errors.New("hypervolume command returned non-numeric output")
)

// OutputError carries the output that could not be parsed.
type OutputError struct {
	Output string
	Err    error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidOutput, e.Output)
}

func (e *OutputError) Unwrap() []error {
	return []error{ErrInvalidOutput, e.Err}
}

// Command computes the hypervolume with an external executable such as the
// one from http://lopez-ibanez.eu/hypervolume. The points are written to a
// temporary file and the executable is run as
//
//	<Path> -r "<ref point, 3 decimals, space separated>" <input file>
//
// with its standard output captured in a second temporary file, which must
// contain a single number. Both files are unique per call and are removed
// afterwards, so a Command can be used concurrently.
type Command struct {
	// Path is the executable.
	Path string
	// Timeout bounds a single run. Zero means DefaultCommandTimeout.
	Timeout time.Duration
	// TempDir holds the temporary files. Empty means os.TempDir().
	TempDir string
}

// Compute runs the executable for the points X and the reference point ref.
// On any failure it returns negative infinity together with the error, so
// callers running best-effort sweeps can keep the value and carry on, while
// others can tell the sentinel from a real result. Output that is not a
// number is additionally logged as a warning and reported as *OutputError.
func (c *Command) Compute(ctx context.Context, X framework.ObjectiveMatrix, ref []float64) (float64, error) {
	logger := klog.FromContext(ctx).WithValues("command", c.Path)

	input, err := os.CreateTemp(c.TempDir, "hv-in-*.dat")
	if err != nil {
		return math.Inf(-1), fmt.Errorf("creating input file: %w", err)
	}
	defer os.Remove(input.Name())

	err = util.WriteMatrix(input, X)
	if cerr := input.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return math.Inf(-1), fmt.Errorf("writing input file: %w", err)
	}

	output, err := os.CreateTemp(c.TempDir, "hv-out-*.dat")
	if err != nil {
		return math.Inf(-1), fmt.Errorf("creating output file: %w", err)
	}
	defer os.Remove(output.Name())
	defer output.Close()

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.Path, "-r", formatRefPoint(ref), input.Name())
	var stderr bytes.Buffer
	cmd.Stdout = output
	cmd.Stderr = &stderr

	logger.V(5).Info("running hypervolume command", "points", len(X), "input", input.Name())
	runErr := cmd.Run()
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return math.Inf(-1), fmt.Errorf("%w after %v", ErrTimeout, timeout)
	}
	if err := runCtx.Err(); err != nil {
		return math.Inf(-1), fmt.Errorf("running %s: %w", c.Path, err)
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return math.Inf(-1), fmt.Errorf("running %s: %w", c.Path, runErr)
		}
		// the output decides, as it does for a zero exit code
		logger.V(5).Info("hypervolume command exited with an error", "exitCode", exitErr.ExitCode(), "stderr", stderr.String())
	}

	raw, err := os.ReadFile(output.Name())
	if err != nil {
		return math.Inf(-1), fmt.Errorf("reading output file: %w", err)
	}

	val := strings.TrimSpace(string(raw))
	hv, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Info("Warning: hypervolume command returned non-numeric output", "output", val, "stderr", stderr.String())
		return math.Inf(-1), &OutputError{Output: val, Err: err}
	}

	return hv, nil
}

// ComputeByCommand runs the executable at path with the default settings.
func ComputeByCommand(ctx context.Context, path string, X framework.ObjectiveMatrix, ref []float64) (float64, error) {
	c := &Command{Path: path}
	return c.Compute(ctx, X, ref)
}

func formatRefPoint(ref []float64) string {
	parts := make([]string, len(ref))
	for i, v := range ref {
		parts[i] = strconv.FormatFloat(v, 'f', 3, 64)
	}
	return strings.Join(parts, " ")
}
