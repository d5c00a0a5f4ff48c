package backends

import (
	"context"
	"net/url"
	"strings"

	"product-builder/core/reconcile"
	"product-builder/core/utils"
)

// NameBarcodeMonster identifies the community backend.
const NameBarcodeMonster = "barcodemonster"

const (
	barcodeMonsterActive   = "active"
	barcodeMonsterNotFound = "not found"
)

// BarcodeMonsterFields maps response keys onto product fields. The backend has a single
// description which serves as both title and description.
var BarcodeMonsterFields = FieldMap{Title: "description", Desc: "description", Brand: "company"}

// BarcodeMonster looks up one code per request.
type BarcodeMonster struct {
	client  *httpClient
	baseURL string
	fields  FieldMap
}

// NewBarcodeMonster creates the community backend.
func NewBarcodeMonster(cfg Config) *BarcodeMonster {
	return &BarcodeMonster{
		client:  newHTTPClient(NameBarcodeMonster, cfg.Timeout(), cfg.BarcodeMonster.RatePerSecond, cfg.BarcodeMonster.Burst, cfg.UserAgent),
		baseURL: strings.TrimRight(cfg.BarcodeMonster.BaseURL, "/"),
		fields:  BarcodeMonsterFields,
	}
}

// Name implements reconcile.Backend.
func (b *BarcodeMonster) Name() string { return NameBarcodeMonster }

// Identify looks up a single code.
func (b *BarcodeMonster) Identify(ctx context.Context, code string) (reconcile.Product, error) {
	data, status, err := b.client.getJSON(ctx, b.baseURL+"/api/"+url.PathEscape(code), nil)
	if err != nil {
		return reconcile.Product{}, err
	}

	var state string
	if s := utils.StringField(data, "status"); s != nil {
		state = strings.ToLower(strings.TrimSpace(*s))
	}

	switch state {
	case barcodeMonsterActive:
		return b.fields.Product(code, data), nil
	case barcodeMonsterNotFound:
		return reconcile.Product{Code: code}, nil
	default:
		return reconcile.Product{}, b.client.fail("unexpected status %q (http %d)", state, status)
	}
}
