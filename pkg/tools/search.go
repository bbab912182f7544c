package tools

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const maxSearchResults = 3

// GoogleSearch queries the custom search API and formats the top results as
// title/link blocks. A non-200 status yields a message embedding status code
// and raw body. The query is interpolated into the URL verbatim, callers
// must ensure it is URL-safe.
func (c *Client) GoogleSearch(query string) string {
	url := fmt.Sprintf("%s?q=%s&key=%s&cx=%s", c.config.SearchBaseURL, query, c.config.GoogleAPIKey, c.config.GoogleCSEID)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return fmt.Sprintf("❌ Search failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("❌ Search failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("❌ Search failed: %d - %s", resp.StatusCode, body)
	}

	var results []string
	for _, item := range gjson.GetBytes(body, "items").Array() {
		if len(results) == maxSearchResults {
			break
		}
		results = append(results, fmt.Sprintf("🔹 **%s**\n🔗 %s", item.Get("title").String(), item.Get("link").String()))
	}

	if len(results) == 0 {
		return "No results found."
	}
	return strings.Join(results, "\n\n")
}
