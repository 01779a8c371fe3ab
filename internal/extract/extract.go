// Package extract turns price-list text into product records using a
// text-completion endpoint. The integration is best-effort and
// non-authoritative: empty or unparseable responses are reported as errors
// and the caller degrades to manual entry.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const promptTemplate = `Extract products from the following price list text.
Respond with ONLY a JSON array, no prose and no code fences. Each element:
{"name": string, "price": number, "description": string (optional), "sku": string (optional)}
If no products can be identified, respond with [].

Text:
%s`

// Product is one extracted catalog entry
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	SKU         string  `json:"sku,omitempty"`
}

// Client calls the text-completion endpoint
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates an extraction client. The API key is required.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("extraction API key is required (set GEMINI_API_KEY)")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create extraction client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// ExtractProducts asks the endpoint for a product array from the given text.
// An empty result is an error so callers fall back to manual entry.
func (c *Client) ExtractProducts(ctx context.Context, text string) ([]Product, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text to extract from")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(fmt.Sprintf(promptTemplate, text)), nil)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}

	products, err := ParseProducts(resp.Text())
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no products found in response")
	}
	return products, nil
}

// ParseProducts decodes a JSON product array from model output. Models
// sometimes wrap the array in fences or prose, so the first bracketed array
// in the text is salvaged before decoding. Entries without a name are dropped.
func ParseProducts(raw string) ([]Product, error) {
	payload := salvageArray(raw)
	if payload == "" {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var products []Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	kept := products[:0]
	for _, p := range products {
		if strings.TrimSpace(p.Name) != "" {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

// salvageArray returns the first top-level [...] span in s, or ""
func salvageArray(s string) string {
	start := strings.Index(s, "[")
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
