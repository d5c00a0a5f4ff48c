package backends

import (
	"context"
	"net/url"
	"strings"

	"product-builder/core/reconcile"
	"product-builder/core/utils"
)

// NameUPCItemDB identifies the batch backend in outcomes and merge priority.
const NameUPCItemDB = "upcitemdb"

const upcItemDBOK = "OK"

// UPCItemDBFields maps item keys onto product fields.
var UPCItemDBFields = FieldMap{Title: "title", Desc: "description", Brand: "brand"}

// UPCItemDB looks up many codes with a single request.
type UPCItemDB struct {
	client  *httpClient
	baseURL string
	fields  FieldMap
}

// NewUPCItemDB creates the batch backend.
func NewUPCItemDB(cfg Config) *UPCItemDB {
	return &UPCItemDB{
		client:  newHTTPClient(NameUPCItemDB, cfg.Timeout(), cfg.UPCItemDB.RatePerSecond, cfg.UPCItemDB.Burst, cfg.UserAgent),
		baseURL: strings.TrimRight(cfg.UPCItemDB.BaseURL, "/"),
		fields:  UPCItemDBFields,
	}
}

// Name implements reconcile.Backend.
func (u *UPCItemDB) Name() string { return NameUPCItemDB }

// IdentifyBatch returns one product per code, aligned with codes.
func (u *UPCItemDB) IdentifyBatch(ctx context.Context, codes []string) ([]reconcile.Product, error) {
	if len(codes) == 0 {
		return []reconcile.Product{}, nil
	}

	query := url.Values{"upc": {strings.Join(codes, ",")}}
	data, status, err := u.client.getJSON(ctx, u.baseURL+"/prod/trial/lookup?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	if code := utils.StringField(data, "code"); code == nil || *code != upcItemDBOK {
		reason := "missing response code"
		if code != nil {
			reason = "response code " + *code
		}
		if msg := utils.StringField(data, "message"); msg != nil && *msg != "" {
			reason += ": " + *msg
		}
		return nil, u.client.fail("%s (status %d)", reason, status)
	}

	requested := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		requested[c] = struct{}{}
	}

	matched := make(map[string]reconcile.Product, len(codes))
	items, _ := data["items"].([]any)
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for _, key := range []string{"upc", "ean"} {
			id := utils.StringField(item, key)
			if id == nil {
				continue
			}
			if _, want := requested[*id]; !want {
				continue
			}
			if _, seen := matched[*id]; seen {
				continue
			}
			matched[*id] = u.fields.Product(*id, item)
		}
	}

	products := make([]reconcile.Product, len(codes))
	for i, c := range codes {
		if p, ok := matched[c]; ok {
			products[i] = p
			continue
		}
		products[i] = reconcile.Product{Code: c}
	}

	return products, nil
}
