package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected Range
	}{
		{"A2:A3", Range{StartCol: 0, EndCol: 0, StartRow: 2, EndRow: 3}},
		{"A2:D", Range{StartCol: 0, EndCol: 3, StartRow: 2, EndRow: 0}},
		{"b5", Range{StartCol: 1, EndCol: 1, StartRow: 5, EndRow: 5}},
		{"A:C", Range{StartCol: 0, EndCol: 2, StartRow: 1, EndRow: 0}},
		{"AA10:AB12", Range{StartCol: 26, EndCol: 27, StartRow: 10, EndRow: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, input := range []string{"", "2A", "A0", "D2:A2", "A5:A2", "A2:", "A-1"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRange(input)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "A2:D4", Range{StartCol: 0, EndCol: 3, StartRow: 2, EndRow: 4}.String())
	assert.Equal(t, "A2:A", Range{StartRow: 2}.String())
}

func TestColumns(t *testing.T) {
	for idx, letters := range map[int]string{0: "A", 3: "D", 25: "Z", 26: "AA", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, letters, ColumnLetter(idx))
		got, err := ColumnIndex(letters)
		require.NoError(t, err)
		assert.Equal(t, idx, got)
	}
}

func TestSliceGrid(t *testing.T) {
	rows := map[int][]string{
		1: {"barcode", "note"},
		2: {"0123450", ""},
		4: {"036000291452"},
		5: {"", "only note"},
	}

	r, _ := ParseRange("A2:A")
	assert.Equal(t, [][]string{{"0123450"}, {}, {"036000291452"}}, sliceGrid(rows, r))

	r, _ = ParseRange("A2:A2")
	assert.Equal(t, [][]string{{"0123450"}}, sliceGrid(rows, r))

	r, _ = ParseRange("A10:A")
	assert.Empty(t, sliceGrid(rows, r))
}

func TestToRecords(t *testing.T) {
	records, err := toRecords(map[int][]string{
		1: {"token", "timestamp"},
		2: {"abc", "01/02/2026 10:00:00"},
		3: {"def"},
	})
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{
		{"token": "abc", "timestamp": "01/02/2026 10:00:00"},
		{"token": "def", "timestamp": ""},
	}, records)

	_, err = toRecords(map[int][]string{2: {"abc"}})
	assert.ErrorIs(t, err, ErrNoHeader)

	records, err = toRecords(map[int][]string{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
