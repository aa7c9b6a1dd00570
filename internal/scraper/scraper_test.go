package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageBody(start, count int) string {
	type item struct {
		ID         int            `json:"id"`
		Attributes map[string]any `json:"attributes"`
	}
	items := make([]item, 0, count)
	for i := 0; i < count; i++ {
		n := start + i
		items = append(items, item{
			ID: n,
			Attributes: map[string]any{
				"name":                 fmt.Sprintf("Sneaker %d", n),
				"brand":                "Nike",
				"colorway":             "White/Black",
				"estimatedMarketValue": float64(100 + n),
				"gender":               "men",
				"image": map[string]string{
					"original":  fmt.Sprintf("https://img.example/%d.jpg", n),
					"thumbnail": fmt.Sprintf("https://img.example/%d_t.jpg", n),
				},
				"releaseDate": "2020-03-26",
			},
		})
	}
	b, _ := json.Marshal(map[string]any{"data": items})
	return string(b)
}

func TestFetchAllStopsOnShortPage(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("pagination[page]")
		pages = append(pages, page)
		assert.Equal(t, "3", r.URL.Query().Get("pagination[pageSize]"))

		switch page {
		case "1":
			fmt.Fprint(w, pageBody(1, 3))
		case "2":
			fmt.Fprint(w, pageBody(4, 2)) // short page, crawl ends here
		default:
			t.Errorf("unexpected page %s", page)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 3)
	got := c.FetchAll(context.Background())

	require.Len(t, got, 5)
	assert.Equal(t, []string{"1", "2"}, pages)
	assert.Equal(t, "Sneaker 1", got[0].Name)
	require.NotNil(t, got[0].MarketValue)
	assert.Equal(t, 101.0, *got[0].MarketValue)
	assert.Equal(t, "https://img.example/5_t.jpg", got[4].ImageThumbnail)
}

func TestFetchAllKeepsPartialResultOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pagination[page]") == "1" {
			fmt.Fprint(w, pageBody(1, 2))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2)
	got := c.FetchAll(context.Background())

	// Page 1 was full so page 2 was attempted; its 502 ends the crawl
	// without discarding what was already collected.
	assert.Len(t, got, 2)
}

func TestFetchAllUnreachableAPI(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 2)
	assert.Empty(t, c.FetchAll(context.Background()))
}

func TestWriteCSV(t *testing.T) {
	value := 1500.5
	zero := 0.0

	var buf bytes.Buffer
	err := WriteCSV(&buf, []Sneaker{
		{
			Name:           `Jordan 1 "Chicago"`,
			Brand:          "Jordan",
			Colorway:       "White/Black-Varsity Red",
			MarketValue:    &value,
			Gender:         "men",
			ImageOriginal:  "https://img.example/1.jpg",
			ImageThumbnail: "https://img.example/1_t.jpg",
			ReleaseDate:    "2015-10-03",
		},
		// No market value at all renders empty; an explicit zero stays 0.
		{Name: "No Data"},
		{Name: "Worthless", MarketValue: &zero},
	})
	require.NoError(t, err)

	want := "name,brand,colorway,marketValue,gender,imageOriginal,imageThumbnail,releaseDate\n" +
		"\"Jordan 1 \"\"Chicago\"\"\",Jordan,White/Black-Varsity Red,1500.5,men,https://img.example/1.jpg,https://img.example/1_t.jpg,2015-10-03\n" +
		"No Data,,,,,,,\n" +
		"Worthless,,,0,,,,\n"
	assert.Equal(t, want, buf.String())
}

func TestMissingAttributesExportEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":1,"attributes":{"name":"Mystery Shoe"}}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5)
	got := c.FetchAll(context.Background())
	require.Len(t, got, 1)
	assert.Nil(t, got[0].MarketValue)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, got))
	assert.Equal(t,
		"name,brand,colorway,marketValue,gender,imageOriginal,imageThumbnail,releaseDate\n"+
			"Mystery Shoe,,,,,,,\n",
		buf.String())
}

func TestWriteCSVHeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "name,brand,colorway,marketValue,gender,imageOriginal,imageThumbnail,releaseDate\n", buf.String())
}
