package tools

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeather(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, "Sunny +25°C\n")
	}))
	defer server.Close()

	client, err := NewClient(Config{WeatherBaseURL: server.URL})
	require.NoError(t, err)

	result := client.GetWeather("Lahore")

	assert.Equal(t, "🌦️ The weather in **Lahore** is `Sunny +25°C`.", result)
	assert.Equal(t, "/Lahore", gotPath)
	assert.Equal(t, "format=%C+%t", gotQuery)
}

func TestGetWeatherNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(Config{WeatherBaseURL: server.URL})
	require.NoError(t, err)

	assert.Equal(t, "❌ Unable to fetch weather at the moment.", client.GetWeather("Atlantis"))
}

func TestGetWeatherTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(Config{WeatherBaseURL: server.URL})
	require.NoError(t, err)

	assert.Equal(t, "❌ Unable to fetch weather at the moment.", client.GetWeather("Lahore"))
}
