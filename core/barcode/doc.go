// Package barcode converts raw product barcodes into the canonical form lookup backends expect.
//
// Two strategies exist and a deployment picks exactly one of them:
//
//   - StrategyUPCE: 12 and 13 digit codes pass through, UPC-E codes (6, 7 or 8 digits) are
//     expanded to a 12 digit UPC-A using the indicator digit rules.
//   - StrategyEAN13Truncate: 12 digit codes pass through, 13 digit EAN-13 codes with a leading
//     zero lose that zero. Any other leading digit is rejected.
//
// Every rejection wraps ErrNormalization so callers can decide to skip the barcode or abort.
//
// # Usage
//
//	n, err := barcode.NewNormalizer(barcode.StrategyUPCE)
//	code, err := n.ToCanonical("0123450") // "012000003455"
package barcode
