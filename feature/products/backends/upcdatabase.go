package backends

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"product-builder/core/reconcile"
	"product-builder/core/utils"
)

// NameUPCDatabase identifies the keyed backend.
const NameUPCDatabase = "upcdatabase"

// UPCDatabaseFields maps response keys onto product fields.
var UPCDatabaseFields = FieldMap{Title: "title", Desc: "description", Brand: "brand"}

// UPCDatabase looks up one code per request with a bearer token.
type UPCDatabase struct {
	client   *httpClient
	baseURL  string
	apiKey   string
	notFound string
	fields   FieldMap
}

// NewUPCDatabase creates the keyed backend.
func NewUPCDatabase(cfg Config) *UPCDatabase {
	return &UPCDatabase{
		client:   newHTTPClient(NameUPCDatabase, cfg.Timeout(), cfg.UPCDatabase.RatePerSecond, cfg.UPCDatabase.Burst, cfg.UserAgent),
		baseURL:  strings.TrimRight(cfg.UPCDatabase.BaseURL, "/"),
		apiKey:   cfg.UPCDatabase.APIKey,
		notFound: strings.TrimSpace(cfg.UPCDatabase.NotFoundMessage),
		fields:   UPCDatabaseFields,
	}
}

// Name implements reconcile.Backend.
func (u *UPCDatabase) Name() string { return NameUPCDatabase }

// Identify looks up a single code.
func (u *UPCDatabase) Identify(ctx context.Context, code string) (reconcile.Product, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+u.apiKey)

	data, status, err := u.client.getJSON(ctx, u.baseURL+"/product/"+url.PathEscape(code), header)
	if err != nil {
		return reconcile.Product{}, err
	}

	success, hasSuccess := utils.BoolField(data, "success")
	if hasSuccess && !success {
		var message string
		if msg := utils.StringField(utils.ObjectField(data, "error"), "message"); msg != nil {
			message = strings.TrimSpace(*msg)
		}
		if u.notFound != "" && strings.EqualFold(message, u.notFound) {
			return reconcile.Product{Code: code}, nil
		}
		if message == "" {
			message = "request unsuccessful"
		}
		return reconcile.Product{}, u.client.fail("%s (status %d)", message, status)
	}

	return u.fields.Product(code, data), nil
}
