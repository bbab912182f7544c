// Package tools provides the external lookup functions exposed to the model
// and the registry that maps their names to callables.
package tools

import (
	"net/http"
	"time"
)

// Config holds the endpoints and credentials for the lookup functions.
type Config struct {
	WeatherBaseURL string        // Base URL of the weather text endpoint
	SearchBaseURL  string        // Base URL of the custom search API
	GoogleAPIKey   string        // Custom search API key
	GoogleCSEID    string        // Custom search engine id
	HTTPTimeout    time.Duration // HTTP client timeout
}

// Validate fills in defaults. Missing credentials are not an error, they
// surface as an authentication failure from the search provider.
func (c *Config) Validate() error {
	if c.WeatherBaseURL == "" {
		c.WeatherBaseURL = "https://wttr.in"
	}
	if c.SearchBaseURL == "" {
		c.SearchBaseURL = "https://www.googleapis.com/customsearch/v1"
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 30 * time.Second
	}
	return nil
}

// Client issues the outbound lookup calls. Both lookups are stateless, each
// call performs exactly one HTTP request.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a lookup client with the given configuration.
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.HTTPTimeout},
	}, nil
}
