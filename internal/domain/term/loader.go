package term

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Jelly-ChinChan/Zoology-app/internal/worker"
)

var (
	ErrMissingColumns    = errors.New("required name/english columns not found")
	ErrUnsupportedFormat = errors.New("unsupported glossary format")
)

// Header candidates, matched after trimming and lowercasing.
// The first candidate present in the header wins.
var (
	nameColumns    = []string{"name", "中文", "名稱", "chinese", "cn"}
	englishColumns = []string{"english", "英文", "term", "英文名", "en", "english term"}
)

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func detectColumns(header []string) (nameCol, englishCol int, err error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}

	nameCol, englishCol = -1, -1
	for _, c := range nameColumns {
		if i, ok := index[c]; ok {
			nameCol = i
			break
		}
	}
	for _, c := range englishColumns {
		if i, ok := index[c]; ok {
			englishCol = i
			break
		}
	}
	if nameCol < 0 || englishCol < 0 {
		return -1, -1, fmt.Errorf("%w: found columns %q", ErrMissingColumns, header)
	}
	return nameCol, englishCol, nil
}

// FromRows reads a header row followed by data rows. Rows missing either
// field are skipped.
func FromRows(rows [][]string) ([]Term, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMissingColumns)
	}
	nameCol, englishCol, err := detectColumns(rows[0])
	if err != nil {
		return nil, err
	}

	terms := make([]Term, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, nameCol))
		english := strings.TrimSpace(cell(row, englishCol))
		if name == "" || english == "" {
			continue
		}
		terms = append(terms, Term{Name: name, English: english})
	}
	return terms, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func LoadCSV(r io.Reader) ([]Term, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return FromRows(rows)
}

// LoadJSON reads an array of {"name", "english"} objects.
func LoadJSON(r io.Reader) ([]Term, error) {
	var terms []Term
	if err := json.NewDecoder(r).Decode(&terms); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return terms, nil
}

// LoadXLSX reads the first sheet of a workbook.
func LoadXLSX(path string) ([]Term, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	return firstSheet(f)
}

// LoadXLSXReader is LoadXLSX for an uploaded workbook.
func LoadXLSXReader(r io.Reader) ([]Term, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return firstSheet(f)
}

func firstSheet(f *excelize.File) ([]Term, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMissingColumns)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return FromRows(rows)
}

// Load picks a loader from the extension of name and reads r.
func Load(name string, r io.Reader) ([]Term, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return LoadXLSXReader(r)
	case ".csv":
		return LoadCSV(r)
	case ".json":
		return LoadJSON(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// LoadFile opens path and loads it by extension.
func LoadFile(path string) ([]Term, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	case ".csv", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(path, f)
}

type loadResult struct {
	terms []Term
	err   error
}

// LoadFiles loads every path on a worker pool and concatenates the terms in
// the order the paths were given.
func LoadFiles(ctx context.Context, paths []string, workers int) ([]Term, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	pool := worker.NewPool[loadResult](ctx, workers, len(paths))
	for i, p := range paths {
		path := p
		err := pool.Submit(strconv.Itoa(i), func(ctx context.Context) loadResult {
			if err := ctx.Err(); err != nil {
				return loadResult{err: err}
			}
			terms, err := LoadFile(path)
			return loadResult{terms: terms, err: err}
		})
		if err != nil {
			pool.Close()
			return nil, err
		}
	}
	pool.Close()

	byIndex := make([]loadResult, len(paths))
	for res := range pool.Results() {
		i, _ := strconv.Atoi(res.JobID)
		byIndex[i] = res.Output
	}

	var all []Term
	for i, res := range byIndex {
		if res.err != nil {
			return nil, fmt.Errorf("load %s: %w", paths[i], res.err)
		}
		all = append(all, res.terms...)
	}
	return all, nil
}
