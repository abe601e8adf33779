package clients

import (
	"cart_service/internal/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type StockClient interface {
	GetStock(ctx context.Context, productID int) (*domain.Stock, error)
}

type stockHTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewStockHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) StockClient {
	return &stockHTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *stockHTTPClient) GetStock(ctx context.Context, productID int) (*domain.Stock, error) {
	url := fmt.Sprintf("%s/stock/%d", c.baseURL, productID)
	c.log.Infof("StockClient: Requesting stock info from URL: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Errorf("StockClient: Failed to create GetStock request for ID %d: %v", productID, err)
		return nil, fmt.Errorf("failed to create stock request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("StockClient: Failed to execute GetStock request for ID %d: %v", productID, err)
		return nil, fmt.Errorf("failed to communicate with stock service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.log.Warnf("StockClient: Stock for product ID %d not found (status %d)", productID, resp.StatusCode)
		return nil, fmt.Errorf("stock for product %d not found", productID)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Errorf("StockClient: GetStock request for ID %d failed with status %d", productID, resp.StatusCode)
		return nil, fmt.Errorf("stock service returned status %d for product %d", resp.StatusCode, productID)
	}

	var stock domain.Stock
	if err := json.NewDecoder(resp.Body).Decode(&stock); err != nil {
		c.log.Errorf("StockClient: Failed to decode GetStock response for ID %d: %v", productID, err)
		return nil, fmt.Errorf("failed to decode stock response: %w", err)
	}

	c.log.Infof("StockClient: Parsed stock data for ID %d: Amount=%d", productID, stock.Amount)

	if stock.ID != productID {
		c.log.Warnf("StockClient: Mismatched product ID in response. Requested %d, got %d", productID, stock.ID)
	}

	return &stock, nil
}
