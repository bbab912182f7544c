package tools

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

const weatherUnavailable = "❌ Unable to fetch weather at the moment."

// GetWeather fetches the current weather for a city from the weather text
// endpoint and embeds it in a formatted sentence. Any failure, transport or
// non-200 status, collapses to a fixed message. The city is interpolated
// into the URL verbatim, no validation is applied.
func (c *Client) GetWeather(city string) string {
	url := fmt.Sprintf("%s/%s?format=%%C+%%t", c.config.WeatherBaseURL, city)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return weatherUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return weatherUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weatherUnavailable
	}

	return fmt.Sprintf("🌦️ The weather in **%s** is `%s`.", city, strings.TrimSpace(string(body)))
}
