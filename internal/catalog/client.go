package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/avaldez/nookstop-backend/pkg/config"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
)

// Client fetches villager and furniture data from the upstream catalog APIs.
type Client struct {
	cfg        config.CatalogConfig
	httpClient *http.Client
}

// NewClient builds a catalog client with the configured timeout.
func NewClient(cfg config.CatalogConfig) (*Client, error) {
	if cfg.VillagerBaseURL == "" {
		return nil, fmt.Errorf("villager base url is required")
	}
	if cfg.FurnitureURL == "" {
		return nil, fmt.Errorf("furniture url is required")
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}, nil
}

// FetchVillagers returns the full New Horizons villager roster.
func (c *Client) FetchVillagers(ctx context.Context) ([]Villager, error) {
	endpoint := c.cfg.VillagerBaseURL + "/villagers?game=nh"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build villager request")
	}
	req.Header.Set("X-API-KEY", c.cfg.VillagerAPIKey)
	req.Header.Set("Accept-Version", c.cfg.VillagerAPIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch villagers")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("villager api returned %d", resp.StatusCode))
	}

	var villagers []Villager
	if err := json.NewDecoder(resp.Body).Decode(&villagers); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode villagers")
	}
	return villagers, nil
}

// rawFurniture mirrors the houseware dataset entry shape. Each top-level key
// maps to an array of item variants.
type rawFurniture struct {
	Name struct {
		NameUSen string `json:"name-USen"`
	} `json:"name"`
	InternalID  int     `json:"internal-id"`
	SellPrice   int     `json:"sell-price"`
	FileName    string  `json:"file-name"`
	HHAConcept1 *string `json:"hha-concept-1"`
	HHASeries   *string `json:"hha-series"`
	HHASet      *string `json:"hha-set"`
}

// fetchHouseware downloads and flattens the houseware dataset.
func (c *Client) fetchHouseware(ctx context.Context) ([]rawFurniture, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.FurnitureURL, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build houseware request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch houseware")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("houseware source returned %d", resp.StatusCode))
	}

	var payload map[string][]rawFurniture
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode houseware")
	}

	var flat []rawFurniture
	for _, variants := range payload {
		flat = append(flat, variants...)
	}
	return flat, nil
}

func (c *Client) furnitureImageURL(fileName string) string {
	return c.cfg.FurnitureImageBase + "/" + url.PathEscape(fileName) + ".png"
}
