package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansuvidha/models"
)

func TestEveryCategoryHasChartData(t *testing.T) {
	tables := Load()
	for _, c := range models.Categories {
		t.Run(string(c), func(t *testing.T) {
			o, ok := tables.Overview(c)
			require.True(t, ok)
			assert.Len(t, o.Values, len(o.Labels))
			assert.Len(t, o.Colors, len(o.Labels))

			bars, ok := tables.Bars(c)
			require.True(t, ok)
			assert.Len(t, bars.Labels, 5)
			assert.Len(t, bars.Datasets, 2)

			trends, ok := tables.Trends(c)
			require.True(t, ok)
			assert.Equal(t, []string{"2020", "2021", "2022", "2023", "2024"}, trends.Labels)
			for _, ds := range trends.Datasets {
				assert.Equal(t, 0.4, ds.Tension)
			}

			_, ok = tables.CategoryInfo(c)
			assert.True(t, ok)
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	tables := Load()

	bars, _ := tables.Bars(models.CategoryHealth)
	bars.Labels[0] = "changed"
	bars.Datasets[0].Data[0] = -1

	again, _ := tables.Bars(models.CategoryHealth)
	assert.NotEqual(t, "changed", again.Labels[0])
	assert.NotEqual(t, -1.0, again.Datasets[0].Data[0])

	rec, ok := tables.Metrics(models.CompareRegions, "tamil-nadu", models.CategoryHealth)
	require.True(t, ok)
	rec["hospitals"] = 0
	rec, _ = tables.Metrics(models.CompareRegions, "tamil-nadu", models.CategoryHealth)
	assert.Equal(t, 2456.0, rec["hospitals"])

	subs := tables.Submissions()
	subs[0].Title = "changed"
	assert.NotEqual(t, "changed", tables.Submissions()[0].Title)
}

func TestMissingLookups(t *testing.T) {
	tables := Load()

	_, ok := tables.Metrics(models.CompareRegions, "west-bengal", models.CategoryHealth)
	assert.False(t, ok)
	_, ok = tables.Metrics(models.CompareYears, "2022", models.CategoryHealth)
	assert.False(t, ok)
	_, ok = tables.Metrics("districts", "2024", models.CategoryHealth)
	assert.False(t, ok)

	_, ok = tables.MapStates(models.CategoryBudget)
	assert.False(t, ok)
	_, ok = tables.RegionName("atlantis")
	assert.False(t, ok)
	assert.Empty(t, tables.MetricDefinitions(models.CategoryWelfare))
}

func TestSeedData(t *testing.T) {
	tables := Load()

	assert.Len(t, tables.Submissions(), 4)
	assert.Equal(t, models.RTIStats{Total: 1247, Verified: 1089, Pending: 158, ThisMonth: 43}, tables.RTIStats())
	assert.Len(t, tables.Regions(), 6)

	uploads := tables.SeedUploads()
	require.Len(t, uploads, 2)
	for _, u := range uploads {
		assert.Equal(t, models.UploadCompleted, u.Status)
	}
}
