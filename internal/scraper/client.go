package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultPageSize = 100

// Sneaker is one flattened catalog row as the scraper exports it.
// MarketValue is a pointer so an absent value exports as an empty CSV
// field rather than 0.
type Sneaker struct {
	Name           string
	Brand          string
	Colorway       string
	MarketValue    *float64
	Gender         string
	ImageOriginal  string
	ImageThumbnail string
	ReleaseDate    string
}

type apiResponse struct {
	Data []struct {
		ID         int64         `json:"id"`
		Attributes apiAttributes `json:"attributes"`
	} `json:"data"`
}

type apiAttributes struct {
	Name                 string   `json:"name"`
	Brand                string   `json:"brand"`
	Colorway             string   `json:"colorway"`
	EstimatedMarketValue *float64 `json:"estimatedMarketValue"`
	Gender               string   `json:"gender"`
	Image                struct {
		Original  string `json:"original"`
		Thumbnail string `json:"thumbnail"`
	} `json:"image"`
	ReleaseDate string `json:"releaseDate"`
}

// Client pages through a Strapi-style sneaker API.
type Client struct {
	baseURL  string
	pageSize int
	http     *http.Client
}

func NewClient(baseURL string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchAll walks pages until a short page or the first error. Errors
// end the crawl but do not surface: whatever was collected so far is
// returned so a partial export still gets written.
func (c *Client) FetchAll(ctx context.Context) []Sneaker {
	var all []Sneaker

	for page := 1; ; page++ {
		batch, err := c.fetchPage(ctx, page)
		if err != nil {
			log.Warn().Err(err).Int("page", page).Msg("crawl stopped early")
			return all
		}

		all = append(all, batch...)
		log.Info().Int("page", page).Int("total", len(all)).Msg("page fetched")

		if len(batch) < c.pageSize {
			return all
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]Sneaker, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse api url: %w", err)
	}
	q := u.Query()
	q.Set("pagination[page]", fmt.Sprintf("%d", page))
	q.Set("pagination[pageSize]", fmt.Sprintf("%d", c.pageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("page %d returned status %d", page, resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode page %d: %w", page, err)
	}

	batch := make([]Sneaker, 0, len(body.Data))
	for _, item := range body.Data {
		a := item.Attributes
		batch = append(batch, Sneaker{
			Name:           a.Name,
			Brand:          a.Brand,
			Colorway:       a.Colorway,
			MarketValue:    a.EstimatedMarketValue,
			Gender:         a.Gender,
			ImageOriginal:  a.Image.Original,
			ImageThumbnail: a.Image.Thumbnail,
			ReleaseDate:    a.ReleaseDate,
		})
	}
	return batch, nil
}
