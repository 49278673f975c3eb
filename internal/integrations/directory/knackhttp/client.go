// Package knackhttp implements the directory client against a Knack-style
// records API: one object per collection, opaque field keys, credentials in
// two static headers.
package knackhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/grupo-main/mainsite/internal/integrations/directory"
	"github.com/grupo-main/mainsite/internal/models"
)

// Field keys of the shipment object ("Guías").
const (
	fieldTrackingCode = "field_98"  // Código de rastreo
	fieldStatus       = "field_101" // Estatus
	fieldGuideType    = "field_103" // Tipo guía (ECONOMY / EXPRESS)
	fieldSender       = "field_104" // Remitente
	fieldReceivedBy   = "field_15"  // Recibido por
	fieldOriginAddr   = "field_100" // Dirección remitente
	fieldDestAddr     = "field_99"  // Dirección consignatario
	fieldContent      = "field_97"  // Contenido
	fieldDate         = "field_43"  // Fecha
	fieldCarrier      = "field_94"  // Carrier
)

type Client struct {
	baseURL string
	appID   string
	apiKey  string
	object  string
	httpc   *http.Client
}

func New(baseURL, appID, apiKey, objectKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.knack.com/v1"
	}
	if objectKey == "" {
		objectKey = "object_2"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		appID:   appID,
		apiKey:  apiKey,
		object:  objectKey,
		httpc: &http.Client{
			Timeout: timeout,
		},
	}
}

type filterRule struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

type filters struct {
	Match string       `json:"match"`
	Rules []filterRule `json:"rules"`
}

type recordsResp struct {
	TotalRecords int              `json:"total_records"`
	Records      []map[string]any `json:"records"`
}

func (c *Client) SearchByTrackingCode(ctx context.Context, trackingCode string) (*models.Shipment, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	u.Path += fmt.Sprintf("/objects/%s/records", c.object)

	// Exact-match filter on the tracking-code field; the field is unique so
	// one row is enough.
	f, err := json.Marshal(filters{
		Match: "and",
		Rules: []filterRule{{Field: fieldTrackingCode, Operator: "is", Value: trackingCode}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal filters")
	}

	q := u.Query()
	q.Set("filters", string(f))
	q.Set("rows_per_page", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	req.Header.Set("X-Knack-Application-Id", c.appID)
	req.Header.Set("X-Knack-REST-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		// The body stays inside the error for server-side logging; handlers
		// never echo it to the browser.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("directory http %d: %s", resp.StatusCode, string(body))
	}

	var rr recordsResp
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	if len(rr.Records) == 0 {
		return nil, directory.ErrNotFound
	}

	return mapRecord(rr.Records[0]), nil
}

// mapRecord flattens one raw directory record into the Shipment DTO. A field
// with an unexpected shape degrades to "" instead of failing the lookup.
func mapRecord(rec map[string]any) *models.Shipment {
	return &models.Shipment{
		TrackingCode: decodeScalar(rec[fieldTrackingCode]),
		Status:       decodeScalar(rec[fieldStatus]),
		GuideType:    decodeScalar(rec[fieldGuideType]),
		Sender:       decodeScalar(rec[fieldSender]),
		ReceivedBy:   decodeScalar(rec[fieldReceivedBy]),
		OriginCity:   decodeAddress(rec[fieldOriginAddr+"_raw"]),
		DestCity:     decodeAddress(rec[fieldDestAddr+"_raw"]),
		Content:      decodeScalar(rec[fieldContent]),
		Date:         decodeDate(rec[fieldDate+"_raw"]),
		Carrier:      decodeScalar(rec[fieldCarrier]),
	}
}
