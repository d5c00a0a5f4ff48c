package reconcile

import (
	"fmt"
	"strings"
)

// Merger reconciles backend candidates field by field using a fixed priority.
type Merger struct {
	priority []string
}

// NewMerger returns a merger that prefers backends in the given order.
// Backends missing from priority are never consulted.
func NewMerger(priority []string) *Merger {
	p := make([]string, len(priority))
	copy(p, priority)
	return &Merger{priority: p}
}

// Priority returns the backend order used for every merge.
func (m *Merger) Priority() []string {
	p := make([]string, len(m.priority))
	copy(p, m.priority)
	return p
}

// Merge builds the record for code. For each field the first backend in priority order
// that has the field wins, even when its value is empty. Fields no backend has are set to
// NotFound. Every field is uppercased.
func (m *Merger) Merge(code string, candidates map[string]Product) MergedRecord {
	return MergedRecord{
		Code:  code,
		Title: m.pick(candidates, func(p Product) *string { return p.Title }),
		Desc:  m.pick(candidates, func(p Product) *string { return p.Desc }),
		Brand: m.pick(candidates, func(p Product) *string { return p.Brand }),
	}
}

// MergeAll builds one record per resolved code, in input order. rowCodes supplies the code
// written on each record and must be aligned with res.Codes; nil reuses res.Codes.
// A resolution with any failed call is refused with ErrIncomplete.
func (m *Merger) MergeAll(res *Resolution, rowCodes []string) ([]MergedRecord, error) {
	if !res.AllSucceeded() {
		return nil, ErrIncomplete
	}
	if rowCodes == nil {
		rowCodes = res.Codes
	}
	if len(rowCodes) != len(res.Codes) {
		return nil, fmt.Errorf("got %d row codes for %d resolved codes", len(rowCodes), len(res.Codes))
	}

	records := make([]MergedRecord, 0, len(res.Codes))
	for i := range res.Codes {
		records = append(records, m.Merge(rowCodes[i], res.Candidates(i)))
	}
	return records, nil
}

func (m *Merger) pick(candidates map[string]Product, field func(Product) *string) string {
	for _, backend := range m.priority {
		product, ok := candidates[backend]
		if !ok {
			continue
		}
		if v := field(product); v != nil {
			return strings.ToUpper(*v)
		}
	}
	return NotFound
}
