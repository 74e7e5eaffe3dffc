package excel

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"sellerflow/internal/metrics"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidFile marks every problem with an uploaded spreadsheet: bad
// format, missing columns or unreadable cells.
var ErrInvalidFile = errors.New("invalid import file")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFile, fmt.Sprintf(format, args...))
}

// readTable loads the first sheet of an xlsx workbook or a csv file. The
// extension decides the format; unknown extensions try xlsx then csv.
func readTable(fileName string, reader io.Reader) ([][]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return nil, invalid("file is empty")
	}

	switch strings.ToLower(strings.TrimSpace(filepath.Ext(fileName))) {
	case ".csv":
		return parseCSVRows(data)
	case ".xlsx", ".xlsm":
		return parseExcelRows(data)
	default:
		if rows, err := parseExcelRows(data); err == nil {
			return rows, nil
		}
		if rows, err := parseCSVRows(data); err == nil {
			return rows, nil
		}
		return nil, invalid("unsupported file format %q", fileName)
	}
}

func parseCSVRows(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if semicolonSeparated(data) {
		reader.Comma = ';'
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, invalid("read csv: %v", err)
	}
	if len(rows) == 0 {
		return nil, invalid("file is empty")
	}
	return rows, nil
}

// semicolonSeparated detects the csv flavour spreadsheet tools export under
// a pt-BR locale, where the comma is the decimal separator.
func semicolonSeparated(data []byte) bool {
	header, _, _ := bytes.Cut(data, []byte("\n"))
	return bytes.Count(header, []byte(";")) > bytes.Count(header, []byte(","))
}

func parseExcelRows(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, invalid("open excel file: %v", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, invalid("excel file has no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, invalid("read sheet rows: %v", err)
	}
	if len(rows) == 0 {
		return nil, invalid("excel file is empty")
	}
	return rows, nil
}

func mapColumns(header []string, aliases map[string]string) map[string]int {
	mapped := make(map[string]int)
	for idx, col := range header {
		normalized := normalizeHeader(col)
		if normalized == "" {
			continue
		}
		canonical, ok := aliases[normalized]
		if !ok {
			continue
		}
		if _, exists := mapped[canonical]; !exists {
			mapped[canonical] = idx
		}
	}
	return mapped
}

func requireColumns(colMap map[string]int, names ...string) error {
	for _, name := range names {
		if _, ok := colMap[name]; !ok {
			return invalid("missing required column: %s", name)
		}
	}
	return nil
}

func normalizeHeader(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "\ufeff")
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, "_", " ")
	value = strings.Join(strings.Fields(value), " ")
	return value
}

func readCell(row []string, colMap map[string]int, name string) string {
	idx, ok := colMap[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseInt(raw string) (int, error) {
	value, err := metrics.ParseMoney(raw)
	if err != nil {
		return 0, err
	}
	if math.Mod(value, 1) != 0 {
		return 0, errors.New("must be an integer")
	}
	return int(value), nil
}

// optionalInt reads a cell that may be blank; blank yields zero.
func optionalInt(row []string, colMap map[string]int, name string) (int, error) {
	raw := readCell(row, colMap, name)
	if raw == "" {
		return 0, nil
	}
	return parseInt(raw)
}

func optionalFloat(row []string, colMap map[string]int, name string) (float64, error) {
	raw := readCell(row, colMap, name)
	if raw == "" {
		return 0, nil
	}
	return metrics.ParseMoney(raw)
}

func rowError(row int, column string, err error) error {
	return invalid("row %d invalid %s: %v", row, column, err)
}
