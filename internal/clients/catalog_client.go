package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// CatalogProduct is the catalog service's product representation. It carries no
// quantity; callers decide the cart amount when appending the product.
type CatalogProduct struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

type CatalogClient interface {
	GetProduct(ctx context.Context, productID int) (*CatalogProduct, error)
}

type catalogHTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewCatalogHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) CatalogClient {
	return &catalogHTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *catalogHTTPClient) GetProduct(ctx context.Context, productID int) (*CatalogProduct, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)
	c.log.Infof("CatalogClient: Requesting product info from URL: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Errorf("CatalogClient: Failed to create GetProduct request for ID %d: %v", productID, err)
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("CatalogClient: Failed to execute GetProduct request for ID %d: %v", productID, err)
		return nil, fmt.Errorf("failed to communicate with catalog service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.log.Warnf("CatalogClient: Product with ID %d not found (status %d)", productID, resp.StatusCode)
		return nil, fmt.Errorf("product with ID %d not found in catalog", productID)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Errorf("CatalogClient: GetProduct request for ID %d failed with status %d", productID, resp.StatusCode)
		return nil, fmt.Errorf("catalog service returned status %d for product %d", resp.StatusCode, productID)
	}

	var product CatalogProduct
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		c.log.Errorf("CatalogClient: Failed to decode GetProduct response for ID %d: %v", productID, err)
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	c.log.Infof("CatalogClient: Parsed product data for ID %d: Name='%s', Price=%.2f",
		productID, product.Name, product.Price)

	return &product, nil
}
