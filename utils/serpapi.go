package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

const serpAPIBaseURL = "https://serpapi.com/search.json"

type serpAPIResult struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

// SerpAPIClient fetches search snippets for market research. It implements
// advisor.Searcher.
type SerpAPIClient struct {
	APIKey string
	Client *http.Client
}

// NewSerpAPIClientFromEnv builds a client from SERPAPI_KEY, or returns nil
// when the key is absent; market research is optional and skipped without it.
func NewSerpAPIClientFromEnv() *SerpAPIClient {
	apiKey := os.Getenv("SERPAPI_KEY")
	if apiKey == "" || apiKey == "your_serpapi_key_here" {
		return nil
	}
	return &SerpAPIClient{
		APIKey: apiKey,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Search returns "title: snippet" lines for the query's organic results.
func (c *SerpAPIClient) Search(query string) ([]string, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.APIKey)
	params.Set("num", "5")

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	resp, err := client.Get(serpAPIBaseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi error: status %d", resp.StatusCode)
	}

	var result serpAPIResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	snippets := make([]string, 0, len(result.OrganicResults))
	for _, r := range result.OrganicResults {
		snippets = append(snippets, fmt.Sprintf("- %s: %s", r.Title, r.Snippet))
	}
	return snippets, nil
}
