package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/textab/textab"
)

// argOrDash returns the single positional argument, or "-" when none
// was given so commands default to stdin.
func argOrDash(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "-"
}

// openInput opens path for reading. "-" means stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// openOutput opens path for writing. "-" means stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// loadGridArg reads a JSON table document from the given path or
// stdin and rebuilds its grid.
func loadGridArg(path string) (*textab.Grid, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return textab.LoadGrid(in)
}

// writeOutput writes s to path or stdout, ending with a newline.
func writeOutput(path, s string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err = io.WriteString(out, s)
	return err
}

// parseDataPairs turns repeated key=value flags into a template data
// map. Values that read as numbers or booleans are converted so
// arithmetic expressions work on them.
func parseDataPairs(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	data := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("data %q is not key=value", pair)
		}
		data[key] = convertValue(value)
	}
	return data, nil
}

func convertValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
