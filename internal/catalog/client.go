// Package catalog is the client for the upstream product API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-faster/errors"

	"github.com/fairyhunter13/product-list-ui/internal/model"
)

// ProductsPath is the collection endpoint relative to the API base URL.
const ProductsPath = "/api/products"

const maxBodyBytes = 8 << 20

// Kind classifies why a fetch failed.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindStatus
	KindDecode
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// FetchError is returned by List for every failure.
type FetchError struct {
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch products (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, or 0 if err is not a *FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// Client fetches products from a base URL such as http://localhost:8080.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient returns a client for baseURL. A nil httpClient means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: httpClient}
}

// Endpoint returns the absolute products URL.
func (c *Client) Endpoint() string { return c.baseURL + ProductsPath }

// List issues a single GET for the product collection and validates the payload before
// returning it. Order is preserved as received.
func (c *Client) List(ctx context.Context) (model.Collection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(), nil)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, Err: errors.Wrap(err, "build request")}
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, Err: errors.Wrap(err, "do request")}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &FetchError{Kind: KindStatus, Err: errors.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var products model.Collection
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := dec.Decode(&products); err != nil {
		var fe *model.FieldError
		if errors.As(err, &fe) {
			return nil, &FetchError{Kind: KindValidation, Err: err}
		}
		return nil, &FetchError{Kind: KindDecode, Err: errors.Wrap(err, "decode body")}
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, &FetchError{Kind: KindDecode, Err: errors.New("trailing data after JSON array")}
	}
	if products == nil {
		// JSON null is not an array.
		return nil, &FetchError{Kind: KindDecode, Err: errors.New("body is not a JSON array")}
	}
	if err := products.Validate(); err != nil {
		return nil, &FetchError{Kind: KindValidation, Err: err}
	}
	return products, nil
}
