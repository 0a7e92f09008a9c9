// Package ecotrack implements the carrier gateway against the Ecotrack HTTP
// API. The adapter owns the wire format and authentication; it surfaces
// transport failures and non-2xx responses as errs.ErrExternalService and
// never interprets per-order error payloads.
package ecotrack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const defaultTimeout = 30 * time.Second

// Client is the Ecotrack HTTP client. Safe for concurrent use.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates an Ecotrack client for the given API endpoint and token.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// shipmentPayload is the Ecotrack wire format for one shipment creation.
type shipmentPayload struct {
	Reference    string  `json:"reference"`
	Client       string  `json:"client"`
	PhoneNumber  string  `json:"tel"`
	Address      string  `json:"adresse"`
	Commune      string  `json:"commune"`
	WilayaZone   int     `json:"wilaya_id"`
	StopDesk     int     `json:"stop_desk"`
	Amount       float64 `json:"montant"`
	ProductList  string  `json:"produit"`
	TypeColis    int     `json:"type"`
	Confirmation int     `json:"confirmee"`
}

type shipmentResponse struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"order_id"`
	Tracking string `json:"tracking"`
	Message  string `json:"message"`
}

type batchResponse struct {
	Success bool `json:"success"`
	Results []struct {
		Reference string          `json:"reference"`
		OrderID   string          `json:"order_id"`
		Tracking  string          `json:"tracking"`
		Error     json.RawMessage `json:"error"`
	} `json:"results"`
}

type statusesResponse struct {
	Success  bool `json:"success"`
	Statuses []struct {
		OrderID string `json:"order_id"`
		Status  string `json:"etat"`
	} `json:"statuses"`
}

func toPayload(request ports.ShipmentRequest) shipmentPayload {
	stopDesk := 0
	if request.DeskDelivery {
		stopDesk = 1
	}

	return shipmentPayload{
		Reference:    request.Reference,
		Client:       request.CustomerName,
		PhoneNumber:  request.CustomerPhone,
		Address:      request.Address,
		Commune:      request.CommuneName,
		WilayaZone:   request.WilayaZone,
		StopDesk:     stopDesk,
		Amount:       request.Amount,
		ProductList:  request.ProductList,
		TypeColis:    1,
		Confirmation: 1,
	}
}

// SubmitShipment hands one order to Ecotrack and returns its tracking data.
func (c *Client) SubmitShipment(ctx context.Context, request ports.ShipmentRequest) (ports.TrackingResult, error) {
	var resp shipmentResponse
	if err := c.post(ctx, "/api/v1/create/order", toPayload(request), &resp); err != nil {
		return ports.TrackingResult{}, err
	}

	if !resp.Success || resp.Tracking == "" {
		return ports.TrackingResult{}, errs.NewExternalServiceError(
			"ecotrack", fmt.Errorf("shipment rejected: %s", resp.Message))
	}

	return ports.TrackingResult{
		CarrierOrderID: resp.OrderID,
		TrackingNumber: resp.Tracking,
	}, nil
}

// SubmitShipmentBatch hands several orders to Ecotrack in one call. Per-order
// failures come back inside the response and are mapped to BatchEntry error
// payloads verbatim; only a transport-level failure fails the whole call.
func (c *Client) SubmitShipmentBatch(ctx context.Context, requests []ports.ShipmentRequest) (map[string]ports.BatchEntry, error) {
	payloads := make([]shipmentPayload, 0, len(requests))
	for _, request := range requests {
		payloads = append(payloads, toPayload(request))
	}

	var resp batchResponse
	if err := c.post(ctx, "/api/v1/create/orders", map[string]any{"orders": payloads}, &resp); err != nil {
		return nil, err
	}

	entries := make(map[string]ports.BatchEntry, len(resp.Results))
	for _, result := range resp.Results {
		if result.Tracking != "" {
			entries[result.Reference] = ports.BatchEntry{
				Tracking: &ports.TrackingResult{
					CarrierOrderID: result.OrderID,
					TrackingNumber: result.Tracking,
				},
			}
			continue
		}
		entries[result.Reference] = ports.BatchEntry{
			ErrorPayload: string(result.Error),
		}
	}

	return entries, nil
}

// FetchStatuses returns Ecotrack's current status for each given carrier
// order id. Ids Ecotrack does not know are absent from the result.
func (c *Client) FetchStatuses(ctx context.Context, carrierOrderIDs []string) ([]ports.StatusReport, error) {
	var resp statusesResponse
	if err := c.post(ctx, "/api/v1/get/statuses", map[string]any{"order_ids": carrierOrderIDs}, &resp); err != nil {
		return nil, err
	}

	reports := make([]ports.StatusReport, 0, len(resp.Statuses))
	for _, status := range resp.Statuses {
		reports = append(reports, ports.StatusReport{
			CarrierOrderID: status.OrderID,
			RawStatus:      status.Status,
		})
	}

	return reports, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.NewExternalServiceError("ecotrack", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.NewExternalServiceError("ecotrack", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewExternalServiceError("ecotrack", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errs.NewExternalServiceError(
			"ecotrack", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewExternalServiceError("ecotrack", err)
	}

	return nil
}
