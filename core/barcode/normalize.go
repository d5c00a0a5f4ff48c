package barcode

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects how non-canonical barcodes are converted.
type Strategy string

const (
	// StrategyUPCE expands compressed UPC-E codes to UPC-A.
	StrategyUPCE Strategy = "upce"
	// StrategyEAN13Truncate reduces zero-led EAN-13 codes to UPC-A.
	StrategyEAN13Truncate Strategy = "ean13"
)

var (
	// ErrNormalization is wrapped by every error returned from ToCanonical.
	ErrNormalization = errors.New("barcode normalization failed")

	// ErrUnknownStrategy is returned by NewNormalizer for an unsupported strategy.
	ErrUnknownStrategy = errors.New("unknown normalization strategy")
)

// Normalizer converts raw barcodes using a single strategy.
type Normalizer struct {
	strategy Strategy
}

// NewNormalizer returns a normalizer bound to the given strategy.
func NewNormalizer(strategy Strategy) (*Normalizer, error) {
	switch strategy {
	case StrategyUPCE, StrategyEAN13Truncate:
		return &Normalizer{strategy: strategy}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// Strategy returns the strategy the normalizer applies.
func (n *Normalizer) Strategy() Strategy {
	return n.strategy
}

// ToCanonical returns the 12 or 13 digit form of raw.
// Already canonical input is returned unchanged.
func (n *Normalizer) ToCanonical(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if !isDigits(code) {
		return "", fmt.Errorf("%w: %q contains non-digit characters", ErrNormalization, raw)
	}

	if n.strategy == StrategyEAN13Truncate {
		return TruncateEAN13(code)
	}

	switch len(code) {
	case 12, 13:
		return code, nil
	case 6, 7, 8:
		return ExpandUPCE(code)
	default:
		return "", fmt.Errorf("%w: unsupported length %d for %q", ErrNormalization, len(code), raw)
	}
}

// ExpandUPCE expands a UPC-E code to a 12 digit UPC-A.
//
// Accepted forms are the six data digits alone (number system 0 implied), the number system
// followed by the six data digits, or the full eight digits including the check digit.
// When the check digit is missing it is computed from the expanded code.
func ExpandUPCE(upce string) (string, error) {
	if !isDigits(upce) {
		return "", fmt.Errorf("%w: %q contains non-digit characters", ErrNormalization, upce)
	}

	var full string
	switch len(upce) {
	case 6:
		full = "0" + upce
	case 7, 8:
		full = upce
	default:
		return "", fmt.Errorf("%w: UPC-E must have 6, 7 or 8 digits, got %d", ErrNormalization, len(upce))
	}

	if full[0] != '0' && full[0] != '1' {
		return "", fmt.Errorf("%w: invalid number system %q in %q", ErrNormalization, full[0], upce)
	}

	// full[0] number system, full[1:7] data digits, full[6] indicator.
	var body string
	switch indicator := full[6]; indicator {
	case '0', '1', '2':
		body = full[0:3] + string(indicator) + "0000" + full[3:6]
	case '3':
		body = full[0:4] + "00000" + full[4:6]
	case '4':
		body = full[0:5] + "00000" + full[5:6]
	default:
		body = full[0:6] + "0000" + string(indicator)
	}

	if len(full) == 8 {
		return body + full[7:8], nil
	}
	return body + string(CheckDigit(body)), nil
}

// TruncateEAN13 reduces a zero-led EAN-13 to its UPC-A form.
// A 12 digit input is returned unchanged.
func TruncateEAN13(code string) (string, error) {
	switch len(code) {
	case 12:
		return code, nil
	case 13:
		if code[0] != '0' {
			return "", fmt.Errorf("%w: EAN-13 %q does not start with 0", ErrNormalization, code)
		}
		return code[1:], nil
	default:
		return "", fmt.Errorf("%w: unsupported length %d for %q", ErrNormalization, len(code), code)
	}
}

// CheckDigit computes the UPC-A check digit for the first 11 digits of body.
func CheckDigit(body string) byte {
	sum := 0
	for i := 0; i < len(body) && i < 11; i++ {
		d := int(body[i] - '0')
		if i%2 == 0 {
			sum += 3 * d
		} else {
			sum += d
		}
	}
	return byte('0' + (10-sum%10)%10)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
