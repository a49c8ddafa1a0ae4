package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
)

// WriteMatrix writes one point per line, coordinates separated by a single
// space, in the "%.18e" format numpy's savetxt uses.
func WriteMatrix(w io.Writer, m framework.ObjectiveMatrix) error {
	bw := bufio.NewWriter(w)
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'e', 18, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadMatrix parses a whitespace separated matrix. Blank lines and lines
// starting with '#' are skipped.
func ReadMatrix(r io.Reader) (framework.ObjectiveMatrix, error) {
	var m framework.ObjectiveMatrix
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make(framework.ObjectiveSpacePoint, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row[j] = v
		}
		m = append(m, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadMatrixFile reads a matrix from the named file.
func ReadMatrixFile(path string) (framework.ObjectiveMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return m, nil
}

// ParseVector parses a point given as comma or space separated numbers,
// e.g. "1.1,1.1".
func ParseVector(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, nil
	}
	v := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", f, err)
		}
		v[i] = x
	}
	return v, nil
}
