// Package aur implements the MetadataService port against the AUR RPC interface.
package aur

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
)

const rpcVersion = "5"

// Client implements ports.MetadataService over the AUR RPC v5 endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the AUR instance at baseURL. Every request is
// bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return newClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(baseURL string, client *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

type rpcResponse struct {
	Type        string      `json:"type"`
	ResultCount int         `json:"resultcount"`
	Results     []rpcResult `json:"results"`
	Error       string      `json:"error"`
}

type rpcResult struct {
	Name        string   `json:"Name"`
	Version     string   `json:"Version"`
	Description *string  `json:"Description"`
	NumVotes    *int64   `json:"NumVotes"`
	Popularity  *float64 `json:"Popularity"`
}

func (r rpcResult) toDomain() domain.UpstreamPackage {
	pkg := domain.UpstreamPackage{Name: r.Name, Version: r.Version}
	if r.Description != nil {
		pkg.Description = *r.Description
	}
	if r.NumVotes != nil {
		pkg.Votes = *r.NumVotes
	}
	if r.Popularity != nil {
		pkg.Popularity = *r.Popularity
	}
	return pkg
}

// Info returns the upstream description of the package called name.
// A package the AUR does not know yields ErrMetadataNotFound, which callers can
// tell apart from request and parse failures.
func (c *Client) Info(ctx context.Context, name string) (*domain.UpstreamPackage, error) {
	resp, err := c.query(ctx, "info", name)
	if err != nil {
		return nil, zerr.With(err, "package", name)
	}

	if len(resp.Results) == 0 {
		return nil, zerr.With(domain.ErrMetadataNotFound, "package", name)
	}

	for _, r := range resp.Results {
		if r.Name == name {
			pkg := r.toDomain()
			return &pkg, nil
		}
	}

	mismatch := zerr.With(domain.ErrMetadataMismatch, "package", name)
	return nil, zerr.With(mismatch, "returned", resp.Results[0].Name)
}

// Search returns the AUR packages matching query, in the order the AUR reports them.
func (c *Client) Search(ctx context.Context, query string) ([]domain.UpstreamPackage, error) {
	resp, err := c.query(ctx, "search", query)
	if err != nil {
		return nil, zerr.With(err, "query", query)
	}

	pkgs := make([]domain.UpstreamPackage, 0, len(resp.Results))
	for _, r := range resp.Results {
		pkgs = append(pkgs, r.toDomain())
	}
	return pkgs, nil
}

func (c *Client) query(ctx context.Context, kind, arg string) (*rpcResponse, error) {
	params := url.Values{}
	params.Set("v", rpcVersion)
	params.Set("type", kind)
	params.Set("arg", arg)
	endpoint := c.baseURL + "/rpc/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataRequestFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(domain.ErrMetadataRequestFailed, "status_code", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataRequestFailed.Error())
	}

	var rpc rpcResponse
	if err := json.Unmarshal(body, &rpc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataParseFailed.Error())
	}

	if rpc.Type == "error" || rpc.Error != "" {
		return nil, zerr.With(domain.ErrMetadataRequestFailed, "reason", rpc.Error)
	}

	return &rpc, nil
}
