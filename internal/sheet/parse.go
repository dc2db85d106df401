package sheet

import (
	"fmt"
	"strconv"

	"github.com/fr4nk3nst1ner/jobads/internal/models"
	"github.com/tidwall/gjson"
)

const (
	// The gviz endpoint wraps its JSON as
	// "/*O_o*/\ngoogle.visualization.Query.setResponse(" ... ");".
	wrapperPrefixLen = 47
	wrapperSuffixLen = 2
)

// Column positions in the job sheet.
const (
	colTitle = iota
	colLocation
	colDeadline
	colLink
	colDescription
	colOriginalAd
)

// Unwrap strips the gviz response wrapper and returns the JSON payload.
func Unwrap(text string) (string, error) {
	if len(text) < wrapperPrefixLen+wrapperSuffixLen {
		return "", fmt.Errorf("%w: response too short (%d bytes)", ErrLoadFailure, len(text))
	}
	payload := text[wrapperPrefixLen : len(text)-wrapperSuffixLen]
	if !gjson.Valid(payload) {
		return "", fmt.Errorf("%w: payload is not valid JSON", ErrLoadFailure)
	}
	return payload, nil
}

// Parse maps a wrapped gviz response into job records. Cells are read by
// position; an absent cell takes the field default.
func Parse(text string) ([]models.JobRecord, error) {
	payload, err := Unwrap(text)
	if err != nil {
		return nil, err
	}

	rows := gjson.Get(payload, "table.rows")
	if !rows.IsArray() {
		return nil, fmt.Errorf("%w: payload has no table.rows", ErrLoadFailure)
	}

	var (
		records []models.JobRecord
		rowErr  error
	)
	rows.ForEach(func(i, row gjson.Result) bool {
		cells := row.Get("c")
		if !cells.IsArray() {
			rowErr = fmt.Errorf("%w: row %d has no cells", ErrLoadFailure, i.Int())
			return false
		}
		records = append(records, models.JobRecord{
			Title:       cellValue(cells, colTitle, ""),
			Location:    cellValue(cells, colLocation, ""),
			Deadline:    cellValue(cells, colDeadline, ""),
			Link:        cellValue(cells, colLink, models.PlaceholderLink),
			Description: cellValue(cells, colDescription, ""),
			OriginalAd:  cellValue(cells, colOriginalAd, ""),
		})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	if records == nil {
		records = []models.JobRecord{}
	}
	return records, nil
}

// cellValue reads c[idx].v as text. Null, missing, false, zero and empty
// values are all treated as absent and yield def.
func cellValue(cells gjson.Result, idx int, def string) string {
	v := cells.Get(strconv.Itoa(idx) + ".v")
	switch v.Type {
	case gjson.Null, gjson.False:
		return def
	case gjson.Number:
		if v.Num == 0 {
			return def
		}
		return v.Raw
	case gjson.String:
		if v.Str == "" {
			return def
		}
		return v.Str
	default:
		return v.String()
	}
}
