// Package mazefile reads maze grids from text, JSON, YAML and TOML files.
//
// Every format yields the same [][]int shape used by the search engine:
// 0 is an open cell and any other value is a wall. Shape checks (ragged
// rows, blocked corners) are left to the engine.
package mazefile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned when no decoder matches the requested
	// format or the file extension.
	ErrUnknownFormat = errors.New("unknown maze format")
	// ErrEmptyMaze is returned when a file decodes to zero rows.
	ErrEmptyMaze = errors.New("maze file has no rows")
)

// Format names a maze file encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var extensions = map[string]Format{
	".txt":  FormatText,
	".maze": FormatText,
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// ParseFormat validates a user supplied format name. The empty string means
// "detect from the extension" and is returned unchanged.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: cannot detect format of %s", ErrUnknownFormat, path)
}

// Maze is a decoded maze file.
type Maze struct {
	Path   string
	Format Format
	Rows   [][]int
	Hash   string
}

// Load reads and decodes the maze at path. An empty format is detected from
// the extension.
func Load(path string, format Format) (*Maze, error) {
	if format == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read maze file: %w", err)
	}

	rows, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Maze{
		Path:   path,
		Format: format,
		Rows:   rows,
		Hash:   HashBytes(data),
	}, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) ([][]int, error) {
	var (
		rows [][]int
		err  error
	)
	switch format {
	case FormatText:
		rows, err = parseText(data)
	case FormatJSON:
		rows, err = parseDocument(data, json.Unmarshal)
	case FormatYAML:
		rows, err = parseDocument(data, yaml.Unmarshal)
	case FormatTOML:
		rows, err = parseDocument(data, toml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMaze
	}
	return rows, nil
}

// parseText reads one row per line. Empty lines and lines starting with ';'
// are skipped; a line of spaces is a row of open cells.
func parseText(data []byte) ([][]int, error) {
	var rows [][]int
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		row, err := textRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read maze text: %w", err)
	}
	return rows, nil
}

func textRow(line string) ([]int, error) {
	row := make([]int, 0, len(line))
	for i, r := range line {
		switch r {
		case '#', '1':
			row = append(row, 1)
		case '.', '0', ' ':
			row = append(row, 0)
		default:
			return nil, fmt.Errorf("unexpected character %q at column %d", r, i+1)
		}
	}
	return row, nil
}

// document is the keyed layout shared by the structured formats.
type document struct {
	Maze []any    `json:"maze" yaml:"maze" toml:"maze"`
	Rows []string `json:"rows" yaml:"rows" toml:"rows"`
}

// parseDocument accepts either a bare list of rows or a document with a
// "maze" or "rows" key.
func parseDocument(data []byte, unmarshal func([]byte, any) error) ([][]int, error) {
	var raw any
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode maze: %w", err)
	}
	if list, ok := raw.([]any); ok {
		return rowsFromList(list)
	}

	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode maze: %w", err)
	}
	if len(doc.Maze) > 0 {
		return rowsFromList(doc.Maze)
	}

	rows := make([][]int, 0, len(doc.Rows))
	for i, line := range doc.Rows {
		row, err := textRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rowsFromList converts decoded rows, each either a list of numbers or a
// text row.
func rowsFromList(list []any) ([][]int, error) {
	rows := make([][]int, 0, len(list))
	for i, item := range list {
		switch v := item.(type) {
		case string:
			row, err := textRow(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			rows = append(rows, row)
		case []any:
			row := make([]int, 0, len(v))
			for j, cell := range v {
				n, err := toInt(cell)
				if err != nil {
					return nil, fmt.Errorf("row %d, column %d: %w", i, j, err)
				}
				row = append(row, n)
			}
			rows = append(rows, row)
		default:
			return nil, fmt.Errorf("row %d: unsupported value of type %T", i, item)
		}
	}
	return rows, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("non-integer cell value %v", n)
		}
		return int(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported cell value of type %T", v)
	}
}
