package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"sync"

	"product-builder/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps every sheet as one CSV object in a bucket.
// The first column of each CSV record is the sheet row number; all-blank rows are not written.
// Writes load, modify and put the whole object, so they are serialised per store.
type ObjectStore struct {
	mu       sync.Mutex
	client   storage.Client
	bucket   string
	prefix   string
	document string
}

// NewObjectStore creates a store for one document.
func NewObjectStore(client storage.Client, bucket, prefix, document string) *ObjectStore {
	return &ObjectStore{
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		document: document,
	}
}

// Prepare creates the bucket if it does not exist.
func (s *ObjectStore) Prepare(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
	}
	return nil
}

// Get returns the cells of rng in sheet.
func (s *ObjectStore) Get(ctx context.Context, sheet, rng string) ([][]string, error) {
	r, err := ParseRange(rng)
	if err != nil {
		return nil, err
	}
	rows, err := s.load(ctx, sheet)
	if err != nil {
		return nil, err
	}
	return sliceGrid(rows, r), nil
}

// Records returns every row below the header of sheet.
func (s *ObjectStore) Records(ctx context.Context, sheet string) ([]map[string]string, error) {
	rows, err := s.load(ctx, sheet)
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

// AppendRows writes rows after the last non-empty row of sheet.
func (s *ObjectStore) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load(ctx, sheet)
	if err != nil {
		return err
	}

	last := lastRow(existing)
	for i, cells := range rows {
		existing[last+i+1] = cells
	}
	return s.save(ctx, sheet, existing)
}

// BatchClear blanks every cell of ranges in sheet.
func (s *ObjectStore) BatchClear(ctx context.Context, sheet string, ranges []string) error {
	parsed := make([]Range, 0, len(ranges))
	for _, rng := range ranges {
		r, err := ParseRange(rng)
		if err != nil {
			return err
		}
		parsed = append(parsed, r)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, sheet)
	if err != nil {
		return err
	}
	for _, r := range parsed {
		clearRange(rows, r)
	}
	return s.save(ctx, sheet, rows)
}

func (s *ObjectStore) key(sheet string) string {
	return path.Join(s.prefix, s.document, sheet+".csv")
}

func (s *ObjectStore) load(ctx context.Context, sheet string) (map[int][]string, error) {
	rows := make(map[int][]string)

	obj, err := s.client.GetObject(ctx, s.bucket, s.key(sheet), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return rows, nil
		}
		return nil, fmt.Errorf("failed to get sheet %q: %w", sheet, err)
	}
	defer obj.Close()

	reader := csv.NewReader(obj)
	reader.FieldsPerRecord = -1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// minio reports a missing object on the first read.
			if storage.IsNotFound(err) {
				return make(map[int][]string), nil
			}
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		n, err := strconv.Atoi(record[0])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("sheet %q has invalid row number %q", sheet, record[0])
		}
		rows[n] = record[1:]
	}
	return rows, nil
}

func (s *ObjectStore) save(ctx context.Context, sheet string, rows map[int][]string) error {
	numbers := make([]int, 0, len(rows))
	for n, cells := range rows {
		if len(trimTrailing(cells)) > 0 {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, n := range numbers {
		record := append([]string{strconv.Itoa(n)}, trimTrailing(rows[n])...)
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to encode sheet %q: %w", sheet, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode sheet %q: %w", sheet, err)
	}

	_, err := s.client.PutObject(ctx, s.bucket, s.key(sheet), bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return fmt.Errorf("failed to put sheet %q: %w", sheet, err)
	}
	return nil
}
