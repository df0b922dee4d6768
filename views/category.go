package views

import (
	"jansuvidha/charts"
	"jansuvidha/data"
	"jansuvidha/models"
)

// Category page tabs.
const (
	TabOverview = "overview"
	TabCharts   = "charts"
	TabTrends   = "trends"
	TabMap      = "map"
)

var categoryTabs = []models.Option{
	{Value: TabOverview, Label: "Overview"},
	{Value: TabCharts, Label: "Charts"},
	{Value: TabTrends, Label: "Trends"},
	{Value: TabMap, Label: "Geographic"},
}

var categoryYears = []string{"2024", "2023", "2022", "2021", "2020"}

// CategoryView is the state of /category/:categoryId.
type CategoryView struct {
	Category models.Category
	Tab      string
	State    string
	Year     string
}

func NewCategoryView(c models.Category) CategoryView {
	return CategoryView{Category: c, Tab: TabOverview, State: "all", Year: "2024"}
}

func (v *CategoryView) SelectTab(tab string) error {
	for _, t := range categoryTabs {
		if t.Value == tab {
			v.Tab = tab
			return nil
		}
	}
	return invalid("unknown tab %q", tab)
}

func (v *CategoryView) SelectState(state string, options []models.Option) error {
	for _, o := range options {
		if o.Value == state {
			v.State = state
			return nil
		}
	}
	return invalid("unknown state %q", state)
}

func (v *CategoryView) SelectYear(year string) error {
	if !contains(categoryYears, year) {
		return invalid("unknown year %q", year)
	}
	v.Year = year
	return nil
}

// Page derives the category page for the current state. ok is false when
// the category has no page, which callers render as not found.
func (v CategoryView) Page(tables *data.Tables, selector *charts.Selector) (page models.CategoryPage, ok bool, err error) {
	info, ok := tables.CategoryInfo(v.Category)
	if !ok {
		return models.CategoryPage{}, false, nil
	}

	page = models.CategoryPage{
		Info:   info,
		Tab:    v.Tab,
		Tabs:   append([]models.Option(nil), categoryTabs...),
		State:  v.State,
		States: tables.StateFilters(),
		Year:   v.Year,
		Years:  append([]string(nil), categoryYears...),
	}

	if v.Tab == TabMap {
		states, found := tables.MapStates(v.Category)
		if !found {
			states, _ = tables.MapStates(models.CategoryHealth)
		}
		page.MapData = states
		return page, true, nil
	}

	spec, err := selector.Select(v.Category, models.ViewType(v.Tab), nil)
	if err != nil {
		return models.CategoryPage{}, true, err
	}
	page.Chart = &spec
	return page, true, nil
}
