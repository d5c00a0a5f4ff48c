package sessions

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"product-builder/core/database"
	"product-builder/core/sheet"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const layout = "01/02/2006 15:04:05"

func testConfig() Config {
	return Config{
		Sheet:           "Session Tokens",
		TimestampField:  "timestamp",
		TimestampLayout: layout,
		TTL:             8 * time.Hour,
		StartColumn:     "a",
		EndColumn:       "d",
	}
}

// fakeStore serves fixed records and captures cleared ranges.
type fakeStore struct {
	records  []map[string]string
	readErr  error
	clearErr error
	cleared  []string
}

func (f *fakeStore) Prepare(context.Context) error { return nil }

func (f *fakeStore) Get(context.Context, string, string) ([][]string, error) { return nil, nil }

func (f *fakeStore) Records(context.Context, string) ([]map[string]string, error) {
	return f.records, f.readErr
}

func (f *fakeStore) AppendRows(context.Context, string, [][]string) error { return nil }

func (f *fakeStore) BatchClear(_ context.Context, _ string, ranges []string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = append(f.cleared, ranges...)
	return nil
}

func newTestSweeper(t *testing.T, store sheet.Store, now time.Time) *Sweeper {
	t.Helper()
	s, err := NewSweeper(testConfig(), store, zap.NewNop())
	require.NoError(t, err)
	s.now = func() time.Time { return now }
	return s
}

func stamp(now time.Time, age time.Duration) string {
	return now.Add(-age).Format(layout)
}

func TestSweep(t *testing.T) {
	now := time.Date(2024, 6, 12, 18, 0, 0, 0, time.Local)
	store := &fakeStore{records: []map[string]string{
		{"token": "a", "timestamp": stamp(now, 9*time.Hour)},  // row 2
		{"token": "b", "timestamp": stamp(now, 8*time.Hour)},  // row 3, exactly at TTL
		{"token": "c", "timestamp": stamp(now, time.Hour)},    // row 4
		{"token": "d", "timestamp": ""},                       // row 5
		{"token": "e", "timestamp": stamp(now, 24*time.Hour)}, // row 6
		{"token": "f", "timestamp": stamp(now, 10*time.Hour)}, // row 7
	}}

	result, err := newTestSweeper(t, store, now).Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Scanned)
	assert.Equal(t, []int{2, 3, 6, 7}, result.Expired)
	assert.Equal(t, []string{"A2:D3", "A6:D7"}, result.Ranges)
	assert.Equal(t, []string{"A2:D3", "A6:D7"}, store.cleared)
}

func TestSweep_NothingExpired(t *testing.T) {
	now := time.Date(2024, 6, 12, 18, 0, 0, 0, time.Local)
	store := &fakeStore{records: []map[string]string{
		{"timestamp": stamp(now, time.Hour)},
		{"timestamp": ""},
	}}

	_, err := newTestSweeper(t, store, now).Sweep(context.Background())
	assert.ErrorIs(t, err, ErrNothingExpired)
	assert.Empty(t, store.cleared)
}

func TestSweep_Errors(t *testing.T) {
	now := time.Now()

	t.Run("invalid timestamp", func(t *testing.T) {
		store := &fakeStore{records: []map[string]string{{"timestamp": "yesterday"}}}
		_, err := newTestSweeper(t, store, now).Sweep(context.Background())
		assert.ErrorContains(t, err, "row 2")
	})

	t.Run("read failure", func(t *testing.T) {
		store := &fakeStore{readErr: sheet.ErrNoHeader}
		_, err := newTestSweeper(t, store, now).Sweep(context.Background())
		assert.ErrorIs(t, err, sheet.ErrNoHeader)
	})

	t.Run("clear failure", func(t *testing.T) {
		store := &fakeStore{
			records:  []map[string]string{{"timestamp": stamp(now, 9*time.Hour)}},
			clearErr: errors.New("locked"),
		}
		_, err := newTestSweeper(t, store, now).Sweep(context.Background())
		assert.ErrorContains(t, err, "locked")
	})
}

func TestSweep_DatabaseStore(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store := sheet.NewDatabaseStore(db, "test")
	ctx := context.Background()
	require.NoError(t, store.Prepare(ctx))

	now := time.Date(2024, 6, 12, 18, 0, 0, 0, time.Local)
	require.NoError(t, store.AppendRows(ctx, "Session Tokens", [][]string{
		{"user", "token", "device", "timestamp"},
		{"ann", "t1", "pos-1", stamp(now, 9*time.Hour)},
		{"bob", "t2", "pos-2", stamp(now, time.Hour)},
	}))

	result, err := newTestSweeper(t, store, now).Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A2:D2"}, result.Ranges)

	grid, err := store.Get(ctx, "Session Tokens", "A2:D3")
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Empty(t, grid[0])
	assert.Equal(t, "bob", grid[1][0])
}

func TestGroupConsecutive(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want [][]int
	}{
		{name: "empty", in: nil, want: nil},
		{name: "single", in: []int{4}, want: [][]int{{4}}},
		{name: "one run", in: []int{2, 3, 4}, want: [][]int{{2, 3, 4}}},
		{name: "gaps", in: []int{2, 3, 5, 8, 9}, want: [][]int{{2, 3}, {5}, {8, 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupConsecutive(tt.in))
		})
	}
}

func TestRowRange(t *testing.T) {
	assert.Equal(t, "A2:D5", RowRange([]int{2, 3, 4, 5}, "a", "d"))
	assert.Equal(t, "B7:C7", RowRange([]int{7}, "B", "C"))
	assert.Equal(t, "", RowRange(nil, "A", "D"))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, testConfig().Validate())

	cfg := testConfig()
	cfg.EndColumn = "1"
	assert.ErrorIs(t, cfg.Validate(), sheet.ErrInvalidRange)

	cfg = testConfig()
	cfg.StartColumn, cfg.EndColumn = "D", "A"
	assert.Error(t, cfg.Validate())

	cfg = testConfig()
	cfg.TTL = 0
	assert.Error(t, cfg.Validate())
}

func TestHandleSweep(t *testing.T) {
	now := time.Date(2024, 6, 12, 18, 0, 0, 0, time.Local)

	t.Run("cleared", func(t *testing.T) {
		store := &fakeStore{records: []map[string]string{{"timestamp": stamp(now, 9*time.Hour)}}}
		feature := NewFeature(newTestSweeper(t, store, now))
		assert.Equal(t, "sessions", feature.Name())
		assert.True(t, feature.IsEnabled())

		app := fiber.New()
		require.NoError(t, feature.Load(app))

		resp, err := app.Test(httptest.NewRequest("POST", "/sessions/sweep", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("nothing expired", func(t *testing.T) {
		store := &fakeStore{records: []map[string]string{{"timestamp": stamp(now, time.Minute)}}}
		app := fiber.New()
		require.NoError(t, NewFeature(newTestSweeper(t, store, now)).Load(app))

		resp, err := app.Test(httptest.NewRequest("POST", "/sessions/sweep", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("failure", func(t *testing.T) {
		store := &fakeStore{readErr: errors.New("offline")}
		app := fiber.New()
		require.NoError(t, NewFeature(newTestSweeper(t, store, now)).Load(app))

		resp, err := app.Test(httptest.NewRequest("POST", "/sessions/sweep", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
