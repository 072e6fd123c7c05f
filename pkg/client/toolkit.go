package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"powervoting/pkg/model"
)

// ToolkitClient calls the toolkit HTTP service.
type ToolkitClient struct {
	httpClient *HttpClient
}

func NewToolkitClient(baseURL string) *ToolkitClient {
	return &ToolkitClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *ToolkitClient) WaitForHealthy(ctx context.Context, maxWait time.Duration) error {
	return c.httpClient.WaitForHealthy(ctx, maxWait)
}

func (c *ToolkitClient) MarkdownToText(ctx context.Context, markdown string) (string, error) {
	var out model.TextResponse
	err := c.post(ctx, "/api/v1/markdown/text", model.MarkdownRequest{Markdown: markdown}, &out)
	return out.Text, err
}

func (c *ToolkitClient) FormatBytes(ctx context.Context, bytes string) (string, error) {
	var out model.FormattedResponse
	err := c.post(ctx, "/api/v1/format/bytes", model.BytesRequest{Bytes: model.NumericString(bytes)}, &out)
	return out.Formatted, err
}

// FormatDecimal formats value with the given decimals. A nil decimals uses the
// server default of 18.
func (c *ToolkitClient) FormatDecimal(ctx context.Context, value string, decimals *int) (string, error) {
	var out model.FormattedResponse
	err := c.post(ctx, "/api/v1/format/decimal", model.DecimalRequest{Value: model.NumericString(value), Decimals: decimals}, &out)
	return out.Formatted, err
}

func (c *ToolkitClient) SimplifyFraction(ctx context.Context, numerator, denominator int64) (string, error) {
	var out model.FractionResponse
	err := c.post(ctx, "/api/v1/fractions/simplify", model.FractionRequest{Numerator: &numerator, Denominator: &denominator}, &out)
	return out.Fraction, err
}

func (c *ToolkitClient) DecodeHex(ctx context.Context, hex string) (string, error) {
	var out model.TextResponse
	err := c.post(ctx, "/api/v1/hex/decode", model.HexRequest{Hex: hex}, &out)
	return out.Text, err
}

func (c *ToolkitClient) EncodeBase64URL(ctx context.Context, text string) (string, error) {
	var out model.EncodedResponse
	err := c.post(ctx, "/api/v1/encode/base64url", model.Base64Request{Text: text}, &out)
	return out.Encoded, err
}

func (c *ToolkitClient) HasDuplicates(ctx context.Context, items []string) (bool, error) {
	var out model.DuplicatesResponse
	err := c.post(ctx, "/api/v1/duplicates", model.DuplicatesRequest{Items: items}, &out)
	return out.HasDuplicates, err
}

func (c *ToolkitClient) IsNonEmpty(ctx context.Context, value *string) (bool, error) {
	var out model.NonEmptyResponse
	err := c.post(ctx, "/api/v1/validate/non-empty", model.NonEmptyRequest{Value: value}, &out)
	return out.NonEmpty, err
}

// ResolveContract returns the address of kind on networkID. ok is false when the
// contract is not deployed there.
func (c *ToolkitClient) ResolveContract(ctx context.Context, kind string, networkID int64) (address string, ok bool, err error) {
	path := "/api/v1/contracts/" + url.PathEscape(kind) + "/networks/" + strconv.FormatInt(networkID, 10)

	var out model.ContractResponse
	if err := c.get(ctx, path, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	return out.Address, true, nil
}

func (c *ToolkitClient) ActorAddress(ctx context.Context, networkID int64, actorID uint64) (string, error) {
	path := fmt.Sprintf("/api/v1/networks/%d/actors/%d", networkID, actorID)

	var out model.ActorAddressResponse
	err := c.get(ctx, path, &out)
	return out.Address, err
}

func (c *ToolkitClient) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.httpClient.POST(ctx, path, body)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

func (c *ToolkitClient) get(ctx context.Context, path string, out any) error {
	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

func decodeResponse(resp *Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if err := resp.DecodeJSON(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
