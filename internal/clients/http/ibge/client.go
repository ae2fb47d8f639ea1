// Package ibge talks to the IBGE localities API, the public registry of
// Brazilian municipalities.
package ibge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rotafacil/transit-api/internal/domains/cities/ports"
)

// DefaultBaseURL is the public IBGE localities endpoint.
const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1"

// Client queries the IBGE localities API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient instantiates the IBGE client with sane defaults.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// municipality mirrors the registry payload. Only the fields the service
// needs are decoded.
type municipality struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
	Micro struct {
		Meso struct {
			UF struct {
				Initials string `json:"sigla"`
			} `json:"UF"`
		} `json:"mesorregiao"`
	} `json:"microrregiao"`
}

// ValidCity reports whether the IBGE registry knows a municipality with this
// code whose name matches (accent-for-accent, case-insensitive).
func (c *Client) ValidCity(ctx context.Context, name string, ibgeCode int) (bool, error) {
	if c == nil || c.http == nil {
		return false, errors.New("ibge client not configured")
	}
	endpoint := fmt.Sprintf("%s/localidades/municipios/%d", c.baseURL, ibgeCode)
	var entry municipality
	found, err := c.getJSON(ctx, endpoint, &entry)
	if err != nil {
		return false, err
	}
	if !found || entry.ID == 0 {
		return false, nil
	}
	return strings.EqualFold(strings.TrimSpace(entry.Name), strings.TrimSpace(name)), nil
}

// StateMunicipalities lists every municipality of a federative unit.
func (c *Client) StateMunicipalities(ctx context.Context, state string) ([]ports.Municipality, error) {
	if c == nil || c.http == nil {
		return nil, errors.New("ibge client not configured")
	}
	state = strings.ToUpper(strings.TrimSpace(state))
	if len(state) != 2 {
		return nil, fmt.Errorf("ibge: %q is not a federative unit code", state)
	}
	endpoint := fmt.Sprintf("%s/localidades/estados/%s/municipios", c.baseURL, url.PathEscape(state))
	var entries []municipality
	found, err := c.getJSON(ctx, endpoint, &entries)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("ibge: state %s not found", state)
	}
	result := make([]ports.Municipality, 0, len(entries))
	for _, entry := range entries {
		uf := entry.Micro.Meso.UF.Initials
		if uf == "" {
			uf = state
		}
		result = append(result, ports.Municipality{
			IBGECode: entry.ID,
			Name:     entry.Name,
			State:    uf,
		})
	}
	return result, nil
}

// getJSON decodes the endpoint response into out. A 404 or an empty body is
// reported as not found rather than an error; the registry answers both ways
// for unknown codes.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build ibge request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("call ibge API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode != http.StatusOK:
		return false, fmt.Errorf("ibge API returned %s", strconv.Itoa(resp.StatusCode))
	}

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(out); err != nil {
		// The registry answers unknown codes with an empty 200 body.
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("decode ibge response: %w", err)
	}
	return true, nil
}

var _ ports.Registry = (*Client)(nil)
