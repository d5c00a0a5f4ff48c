// Package backends implements the product lookup backends queried during reconciliation.
//
// UPCItemDB answers a whole batch in one request; UPCDatabase and BarcodeMonster answer one
// code per request. Every backend reports "not found" as an absent product and any other
// problem as an error wrapping reconcile.ErrBackendFailure.
package backends
