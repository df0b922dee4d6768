package models

// Stat is a headline number on a category page.
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// CategoryInfo is the static header of a category page.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Stats       []Stat   `json:"stats"`
}

// Option is a value/label pair for a select box.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MapState is one state on the geographic tab.
type MapState struct {
	Name    string             `json:"name"`
	Metrics map[string]float64 `json:"metrics"`
	Color   string             `json:"color"`
}

// CategoryPage is the payload of /category/:categoryId.
type CategoryPage struct {
	Info    CategoryInfo `json:"info"`
	Tab     string       `json:"tab"`
	Tabs    []Option     `json:"tabs"`
	State   string       `json:"state"`
	States  []Option     `json:"states"`
	Year    string       `json:"year"`
	Years   []string     `json:"years"`
	Chart   *ChartSpec   `json:"chart,omitempty"`
	MapData []MapState   `json:"map_data,omitempty"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type RecentUpload struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

type TrendingDataset struct {
	Name     string `json:"name"`
	Views    string `json:"views"`
	Category string `json:"category"`
}

// HomePage is the payload of the landing page.
type HomePage struct {
	Title         string            `json:"title"`
	Subtitle      string            `json:"subtitle"`
	Description   string            `json:"description"`
	Features      []Feature         `json:"features"`
	RecentUploads []RecentUpload    `json:"recent_uploads"`
	Trending      []TrendingDataset `json:"trending"`
}

// MenuItem is one sidebar entry.
type MenuItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}
