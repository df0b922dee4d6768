package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansuvidha/data"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path   string
		page   Page
		params map[string]string
	}{
		{"/", PageHome, nil},
		{"", PageHome, nil},
		{"/upload", PageUpload, nil},
		{"/rti/", PageRTI, nil},
		{"/compare?mode=years", PageCompare, nil},
		{"/category/health", PageCategory, map[string]string{"categoryId": "health"}},
		{"/category/Welfare", PageCategory, map[string]string{"categoryId": "welfare"}},
		{"/category/transport", PageNotFound, nil},
		{"/category/health/extra", PageNotFound, nil},
		{"/nowhere", PageNotFound, nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := Resolve(tt.path)
			assert.Equal(t, tt.page, r.Page)
			assert.Equal(t, tt.params, r.Params)
		})
	}
}

func TestMenu(t *testing.T) {
	items := Menu("hi")
	require.Len(t, items, 10)
	assert.Equal(t, "/", items[0].Path)
	assert.Equal(t, "होम", items[0].Label)
	assert.Equal(t, "/category/health", items[1].Path)
	assert.Equal(t, "स्वास्थ्य", items[1].Label)

	for _, item := range Menu("xx") {
		assert.NotEmpty(t, item.Label)
	}
}

func TestHome(t *testing.T) {
	tables := data.Load()

	h := Home(tables, "en")
	assert.Equal(t, "JanSuvidha Dashboard", h.Title)
	require.Len(t, h.Features, 4)
	assert.Equal(t, "Upload & Analyze", h.Features[0].Title)
	assert.Len(t, h.RecentUploads, 3)
	assert.Len(t, h.Trending, 3)

	// the table copy is not touched by translation
	assert.Equal(t, "appTitle", tables.Home().Title)
}
