package views

import (
	"jansuvidha/compare"
	"jansuvidha/data"
	"jansuvidha/models"
)

// ComparisonView is the state of the comparison tool.
type ComparisonView struct {
	Mode     models.ComparisonMode
	Category models.Category
	Region1  string
	Region2  string
	Year1    string
	Year2    string
}

func NewComparisonView() ComparisonView {
	return ComparisonView{
		Mode:     models.CompareRegions,
		Category: models.CategoryHealth,
		Region1:  "tamil-nadu",
		Region2:  "karnataka",
		Year1:    "2024",
		Year2:    "2023",
	}
}

func (v *ComparisonView) SetMode(mode models.ComparisonMode) error {
	if mode != models.CompareRegions && mode != models.CompareYears {
		return invalid("unknown comparison mode %q", mode)
	}
	v.Mode = mode
	return nil
}

func (v *ComparisonView) SelectCategory(c models.Category) error {
	if !c.Valid() {
		return invalid("unknown category %q", c)
	}
	v.Category = c
	return nil
}

// SelectRegions sets both regions. Ids outside the table are accepted and
// compare as all-zero records.
func (v *ComparisonView) SelectRegions(first, second string) error {
	if first == "" || second == "" {
		return invalid("two regions required")
	}
	v.Region1, v.Region2 = first, second
	return nil
}

// SelectYears sets both years. Like regions, a year the table does not
// cover is accepted and compares as an all-zero record.
func (v *ComparisonView) SelectYears(first, second string) error {
	if first == "" || second == "" {
		return invalid("two years required")
	}
	v.Year1, v.Year2 = first, second
	return nil
}

// Spec returns the pair the current mode compares.
func (v ComparisonView) Spec() models.ComparisonSpec {
	if v.Mode == models.CompareYears {
		return compare.Spec(models.CompareYears, v.Year1, v.Year2)
	}
	return compare.Spec(models.CompareRegions, v.Region1, v.Region2)
}

// Page derives the comparison page, listing the year options of tables.
func (v ComparisonView) Page(e *compare.Evaluator, tables *data.Tables) (models.ComparisonPage, error) {
	page, err := e.Page(v.Category, v.Spec())
	if err != nil {
		return page, err
	}
	page.Years = YearOptions(tables)
	return page, nil
}

// YearOptions is the list offered by the year selectors.
func YearOptions(tables *data.Tables) []string {
	return tables.CompareYears()
}
