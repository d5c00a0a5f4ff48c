package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var cellPattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]*)$`)

// Range is a rectangular block of cells. Columns are zero-based, rows one-based.
// EndRow zero means the range runs to the last row of the sheet.
type Range struct {
	StartCol int
	EndCol   int
	StartRow int
	EndRow   int
}

// ParseRange parses an A1 range such as "A2:D10", "A2:A" or "B5".
func ParseRange(s string) (Range, error) {
	from, to, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		to = from
	}

	startCol, startRow, err := parseCell(from)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	endCol, endRow, err := parseCell(to)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	if startRow == 0 {
		startRow = 1
	}
	if endCol < startCol || (endRow != 0 && endRow < startRow) {
		return Range{}, fmt.Errorf("%w: %q ends before it starts", ErrInvalidRange, s)
	}

	return Range{StartCol: startCol, EndCol: endCol, StartRow: startRow, EndRow: endRow}, nil
}

// String formats the range in A1 notation.
func (r Range) String() string {
	from := ColumnLetter(r.StartCol) + strconv.Itoa(r.StartRow)
	to := ColumnLetter(r.EndCol)
	if r.EndRow > 0 {
		to += strconv.Itoa(r.EndRow)
	}
	return from + ":" + to
}

// Contains reports whether row number n is inside the range.
func (r Range) Contains(n int) bool {
	return n >= r.StartRow && (r.EndRow == 0 || n <= r.EndRow)
}

// ColumnIndex converts column letters to a zero-based index ("A" is 0, "AA" is 26).
func ColumnIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("%w: empty column", ErrInvalidRange)
	}
	idx := 0
	for _, ch := range strings.ToUpper(letters) {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: column %q", ErrInvalidRange, letters)
		}
		idx = idx*26 + int(ch-'A') + 1
	}
	return idx - 1, nil
}

// ColumnLetter converts a zero-based column index to letters.
func ColumnLetter(idx int) string {
	var b []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

func parseCell(s string) (col, row int, err error) {
	m := cellPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: cell %q", ErrInvalidRange, s)
	}
	col, err = ColumnIndex(m[1])
	if err != nil {
		return 0, 0, err
	}
	if m[2] != "" {
		row, err = strconv.Atoi(m[2])
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("%w: row %q", ErrInvalidRange, m[2])
		}
	}
	return col, row, nil
}

// window returns the cells of one row that fall inside the range columns,
// without trailing empty cells.
func window(cells []string, r Range) []string {
	out := []string{}
	for c := r.StartCol; c <= r.EndCol && c < len(cells); c++ {
		out = append(out, cells[c])
	}
	return trimTrailing(out)
}

func trimTrailing(cells []string) []string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}

// sliceGrid extracts a range from rows keyed by row number.
func sliceGrid(rows map[int][]string, r Range) [][]string {
	last := 0
	for n, cells := range rows {
		if r.Contains(n) && len(window(cells, r)) > 0 && n > last {
			last = n
		}
	}

	out := [][]string{}
	for n := r.StartRow; n <= last; n++ {
		out = append(out, window(rows[n], r))
	}
	return out
}

// lastRow returns the highest row number holding a non-empty cell.
func lastRow(rows map[int][]string) int {
	last := 0
	for n, cells := range rows {
		if len(trimTrailing(cells)) > 0 && n > last {
			last = n
		}
	}
	return last
}

// toRecords maps every row below the header to its header keys.
func toRecords(rows map[int][]string) ([]map[string]string, error) {
	last := lastRow(rows)
	if last == 0 {
		return []map[string]string{}, nil
	}

	header := trimTrailing(rows[1])
	if len(header) == 0 {
		return nil, ErrNoHeader
	}

	records := make([]map[string]string, 0, last-1)
	for n := 2; n <= last; n++ {
		cells := rows[n]
		record := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(cells) {
				record[key] = cells[i]
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// clearRange blanks the cells of r in place.
func clearRange(rows map[int][]string, r Range) {
	for n, cells := range rows {
		if !r.Contains(n) {
			continue
		}
		for c := r.StartCol; c <= r.EndCol && c < len(cells); c++ {
			cells[c] = ""
		}
	}
}
