package reconcile

// Status is the outcome of a single backend call.
type Status int

const (
	// StatusSuccess means the backend answered, with or without a match.
	StatusSuccess Status = iota
	// StatusFailure means the backend reported an error or could not be reached.
	StatusFailure
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failure"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StatusOf maps a backend call error to its status.
func StatusOf(err error) Status {
	if err != nil {
		return StatusFailure
	}
	return StatusSuccess
}

// NotFound is the sentinel written for fields no backend supplied.
const NotFound = "#NOT_FOUND"

// Product is one backend's view of a barcode.
// A nil field means the backend had no value; an empty string is a value.
type Product struct {
	// Code is the barcode the product was requested for.
	Code string `json:"code"`

	// Title is the product name.
	Title *string `json:"title,omitempty"`

	// Desc is the product description.
	Desc *string `json:"desc,omitempty"`

	// Brand is the manufacturer or brand name.
	Brand *string `json:"brand,omitempty"`
}

// IsEmpty reports whether the product carries no field at all.
func (p Product) IsEmpty() bool {
	return p.Title == nil && p.Desc == nil && p.Brand == nil
}

// MergedRecord is the reconciled row written to the product sheet.
// Every field is set and uppercased.
type MergedRecord struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Brand string `json:"brand"`
}

// Outcome collects every call made to one backend during a resolution.
//
// For a batch backend Statuses and Errors hold a single entry. For a single-item backend they
// hold one entry per requested code. Products is aligned with the requested codes whenever
// the backend succeeded and is nil when a batch call failed.
type Outcome struct {
	// Backend is the backend name.
	Backend string `json:"backend"`

	// Batch is true for batch-capable backends.
	Batch bool `json:"batch"`

	// Statuses holds the status of every call.
	Statuses []Status `json:"statuses"`

	// Products holds the products returned, one per requested code.
	Products []Product `json:"-"`

	// Errors holds the error of every call, nil on success.
	Errors []error `json:"-"`
}

// Succeeded reports whether every call to the backend succeeded.
func (o *Outcome) Succeeded() bool {
	for _, s := range o.Statuses {
		if s != StatusSuccess {
			return false
		}
	}
	return true
}

// Failure describes one failed backend call.
type Failure struct {
	// Backend is the backend name.
	Backend string `json:"backend"`

	// Code is the barcode of the failed call, empty for a batch call.
	Code string `json:"code,omitempty"`

	// Reason is the error message reported by the adapter.
	Reason string `json:"reason"`
}

// Resolution holds the results of every backend for one batch of codes.
type Resolution struct {
	// Codes are the requested codes, in input order.
	Codes []string

	// Outcomes holds one entry per backend, batch backend first.
	Outcomes []*Outcome
}

// Summary is an aggregate view of one backend outcome.
type Summary struct {
	Backend   string `json:"backend"`
	Calls     int    `json:"calls"`
	Failures  int    `json:"failures"`
	Matches   int    `json:"matches"`
	Succeeded bool   `json:"succeeded"`
}
