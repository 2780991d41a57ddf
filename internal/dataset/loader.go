package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/agenthands/shortlist/internal/config"
)

var ErrUnknownColumn = errors.New("column not found in header")

// Table is a loaded customer list. Header holds the last header row, Rows the
// data rows that follow it.
type Table struct {
	Header []string
	Rows   [][]string
}

// Load reads a .csv/.txt or .xlsx file according to cfg.
func Load(path string, cfg config.DatasetConfig) (*Table, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = readSheet(path, cfg.Sheet)
	case ".csv", ".txt", "":
		records, err = readDelimited(path, cfg.Delimiter)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	return split(records, cfg.HeaderRows), nil
}

func readDelimited(path, delimiter string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parseDelimited(f, delimiter)
}

func parseDelimited(r io.Reader, delimiter string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	if delimiter != "" {
		reader.Comma = []rune(delimiter)[0]
	}
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return records, nil
}

func readSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func split(records [][]string, headerRows int) *Table {
	if headerRows < 0 {
		headerRows = 0
	}
	if headerRows > len(records) {
		headerRows = len(records)
	}

	t := &Table{Rows: records[headerRows:]}
	if headerRows > 0 {
		t.Header = records[headerRows-1]
	}
	return t
}

// Column returns the trimmed, non-blank values of the zero-based column,
// skipping rows too short to have it.
func (t *Table) Column(index int) []string {
	if index < 0 {
		return []string{}
	}
	return lo.FilterMap(t.Rows, func(row []string, _ int) (string, bool) {
		if index >= len(row) {
			return "", false
		}
		v := strings.TrimSpace(row[index])
		return v, v != ""
	})
}

// ColumnByHeader looks the column up by header text, ignoring case.
func (t *Table) ColumnByHeader(name string) ([]string, error) {
	_, index, ok := lo.FindIndexOf(t.Header, func(h string) bool {
		return strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name))
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	return t.Column(index), nil
}

// Names picks the customer-name column as configured.
func (t *Table) Names(cfg config.DatasetConfig) ([]string, error) {
	if cfg.NameHeader != "" {
		return t.ColumnByHeader(cfg.NameHeader)
	}
	return t.Column(cfg.NameColumn), nil
}

// Render lays the table out as delimited lines for use in a prompt.
func (t *Table) Render() string {
	var sb strings.Builder
	if len(t.Header) > 0 {
		sb.WriteString(strings.Join(t.Header, "; "))
		sb.WriteString("\n")
	}
	for _, row := range t.Rows {
		if len(lo.Compact(row)) == 0 {
			continue
		}
		sb.WriteString(strings.Join(row, "; "))
		sb.WriteString("\n")
	}
	return sb.String()
}
