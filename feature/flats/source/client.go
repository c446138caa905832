package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"flat-monitor/core/utils"
	"flat-monitor/feature/flats/models"

	"go.uber.org/zap"
)

// ErrFetch marks any failure to obtain a usable snapshot from the listing API.
var ErrFetch = errors.New("failed to fetch listings")

// envelopeKeys are the object keys the API has been seen to wrap the flat list in.
var envelopeKeys = []string{"data", "result", "flats"}

// Client fetches flats from the listing API.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a client. The HTTP client carries the configured timeout.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout()},
		logger: logger,
	}
}

// FetchFlats returns the current listings in API order.
func (c *Client) FetchFlats(ctx context.Context) ([]models.Flat, error) {
	body, err := c.get(ctx)
	if err != nil {
		return nil, err
	}
	items, err := unwrap(body)
	if err != nil {
		return nil, err
	}

	flats := make([]models.Flat, 0, len(items))
	for i, raw := range items {
		flat, err := decodeFlat(raw)
		if err != nil {
			c.logger.Warn("Skipping listing item", zap.Int("index", i), zap.Error(err))
			continue
		}
		flats = append(flats, flat)
	}

	c.logger.Info("Fetched listings",
		zap.Int("received", len(items)),
		zap.Int("accepted", len(flats)),
	)
	return flats, nil
}

// get performs the request and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context) ([]byte, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Info("Requesting listings", zap.String("url", endpoint))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	c.logger.Info("Listing API responded", zap.String("url", endpoint), zap.Int("status", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	return body, nil
}

func (c *Client) endpoint() (string, error) {
	base, err := url.Parse(strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/flat")
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", c.cfg.BaseURL, err)
	}
	q := base.Query()
	q.Set("block_id", strconv.FormatInt(c.cfg.BlockID, 10))
	base.RawQuery = q.Encode()
	return base.String(), nil
}

// unwrap decodes the payload into raw items, looking inside known envelopes.
func unwrap(body []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %w", ErrFetch, err)
	}

	switch v := payload.(type) {
	case []any:
		return v, nil
	case map[string]any:
		for _, key := range envelopeKeys {
			if items, ok := v[key].([]any); ok {
				return items, nil
			}
		}
		return nil, fmt.Errorf("%w: object payload without a flat list", ErrFetch)
	default:
		return nil, fmt.Errorf("%w: unexpected payload type %T", ErrFetch, payload)
	}
}

// decodeFlat maps one loosely typed API item onto a Flat.
func decodeFlat(raw any) (models.Flat, error) {
	item, ok := raw.(map[string]any)
	if !ok {
		return models.Flat{}, fmt.Errorf("%w: unexpected item type %T", models.ErrValidation, raw)
	}

	id, ok := utils.ToInt64(item["id"])
	if !ok {
		return models.Flat{}, fmt.Errorf("%w: missing id", models.ErrValidation)
	}

	price, _ := utils.ToInt64(item["price"])
	status := utils.ToString(item["status"])
	if status == "" {
		status = "unknown"
	}

	flat := models.Flat{
		ID:     id,
		Rooms:  utils.ToString(item["rooms"]),
		Price:  price,
		Status: status,
		URL:    utils.ToString(item["url"]),
		Area:   utils.FloatPtr(item["area"]),
		Floor:  utils.IntPtr(item["floor"]),

		Location:            utils.StringPtr(item["location"]),
		TypeID:              utils.Int64Ptr(item["type_id"]),
		GUID:                utils.StringPtr(item["guid"]),
		BulkID:              utils.Int64Ptr(item["bulk_id"]),
		SectionID:           utils.Int64Ptr(item["section_id"]),
		SaleSchemeID:        utils.Int64Ptr(item["saleSchemeId"]),
		CeilingHeight:       utils.FloatPtr(item["ceilingHeight"]),
		IsPreSale:           utils.BoolPtr(item["isPreSale"]),
		RoomsFact:           utils.Int64Ptr(item["rooms_fact"]),
		Number:              utils.StringPtr(item["number"]),
		NumberBTI:           utils.StringPtr(item["number_bti"]),
		NumberStage:         utils.Int64Ptr(item["number_stage"]),
		MinMonthFee:         utils.Int64Ptr(item["minMonthFee"]),
		Discount:            utils.Int64Ptr(item["discount"]),
		HasAdvertisingPrice: utils.BoolPtr(item["has_advertising_price"]),
		HasNewPrice:         utils.BoolPtr(item["hasNewPrice"]),
		AreaBTI:             utils.FloatPtr(item["area_bti"]),
		AreaProject:         utils.FloatPtr(item["area_project"]),
		Callback:            utils.BoolPtr(item["callback"]),
		KitchenFurniture:    utils.BoolPtr(item["kitchenFurniture"]),
		BookingCost:         utils.Int64Ptr(item["bookingCost"]),
		CompassAngle:        utils.Int64Ptr(item["compass_angle"]),
		BookingStatus:       utils.StringPtr(item["bookingStatus"]),
		PDF:                 utils.StringPtr(item["pdf"]),
		IsResell:            utils.BoolPtr(item["isResell"]),
	}

	if err := flat.Validate(); err != nil {
		return models.Flat{}, err
	}
	return flat, nil
}
