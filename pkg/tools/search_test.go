package tools

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		SearchBaseURL: server.URL,
		GoogleAPIKey:  "test-key",
		GoogleCSEID:   "test-cx",
	})
	require.NoError(t, err)
	return client
}

func TestGoogleSearchFormatsTopThree(t *testing.T) {
	var gotQuery string
	client := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"items":[
			{"title":"First", "link":"https://one.example"},
			{"title":"Second", "link":"https://two.example"},
			{"title":"Third", "link":"https://three.example"},
			{"title":"Fourth", "link":"https://four.example"}
		]}`)
	})

	result := client.GoogleSearch("golang")

	assert.Equal(t,
		"🔹 **First**\n🔗 https://one.example\n\n"+
			"🔹 **Second**\n🔗 https://two.example\n\n"+
			"🔹 **Third**\n🔗 https://three.example",
		result)
	assert.Equal(t, "q=golang&key=test-key&cx=test-cx", gotQuery)
}

func TestGoogleSearchNoResults(t *testing.T) {
	client := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	})

	assert.Equal(t, "No results found.", client.GoogleSearch("nothing"))
}

func TestGoogleSearchMissingItems(t *testing.T) {
	client := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	assert.Equal(t, "No results found.", client.GoogleSearch("nothing"))
}

func TestGoogleSearchFailureEmbedsStatusAndBody(t *testing.T) {
	client := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "quota exceeded")
	})

	assert.Equal(t, "❌ Search failed: 403 - quota exceeded", client.GoogleSearch("golang"))
}
