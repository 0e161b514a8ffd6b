package service

import (
	"testing"

	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbersOf(incidents []models.LiveIncident) []int64 {
	out := make([]int64, 0, len(incidents))
	for _, inc := range incidents {
		out = append(out, inc.Number)
	}
	return out
}

func unitNames(units []models.LiveUnit) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.ShortName)
	}
	return out
}

func TestDiff_ResolvedAndNew(t *testing.T) {
	cached := map[int64]models.LiveIncident{101: incidentWith(101, "A")}
	live := []models.LiveIncident{incidentWith(102, "B")}

	res := Diff(cached, live)

	assert.Equal(t, []int64{102}, numbersOf(res.New))
	assert.Empty(t, res.Known)
	assert.Equal(t, []int64{101}, numbersOf(res.Resolved))
	assert.Equal(t, []string{"B"}, unitNames(res.NewlyAssigned[102]))
	assert.Equal(t, []string{"A"}, unitNames(res.Unassigned[101]))
	assert.Empty(t, res.Persisted)
}

func TestDiff_UnitDeltasForKnownIncident(t *testing.T) {
	cached := map[int64]models.LiveIncident{101: incidentWith(101, "A", "B")}
	live := []models.LiveIncident{incidentWith(101, "B", "C")}

	res := Diff(cached, live)

	assert.Equal(t, []int64{101}, numbersOf(res.Known))
	assert.Empty(t, res.New)
	assert.Empty(t, res.Resolved)
	assert.Equal(t, []string{"C"}, unitNames(res.NewlyAssigned[101]))
	assert.Equal(t, []string{"A"}, unitNames(res.Unassigned[101]))
	assert.Equal(t, []string{"B"}, unitNames(res.Persisted[101]))
}

func TestDiff_FirstPollEverythingNew(t *testing.T) {
	live := []models.LiveIncident{incidentWith(1, "E1"), incidentWith(2), incidentWith(3, "M1", "M2")}

	res := Diff(map[int64]models.LiveIncident{}, live)

	assert.Equal(t, []int64{1, 2, 3}, numbersOf(res.New))
	assert.Empty(t, res.Known)
	assert.Empty(t, res.Resolved)
	assert.Len(t, res.NewlyAssigned, 2)
	assert.Empty(t, res.Unassigned)
}

func TestDiff_NilCache(t *testing.T) {
	res := Diff(nil, []models.LiveIncident{incidentWith(7)})
	assert.Equal(t, []int64{7}, numbersOf(res.New))
}

func TestDiff_EmptyLiveResolvesEverything(t *testing.T) {
	cached := map[int64]models.LiveIncident{
		30: incidentWith(30, "X"),
		10: incidentWith(10),
		20: incidentWith(20, "Y", "Z"),
	}

	res := Diff(cached, nil)

	assert.Empty(t, res.New)
	assert.Empty(t, res.Known)
	assert.Equal(t, []int64{10, 20, 30}, numbersOf(res.Resolved), "resolved set is sorted by number")
	assert.Equal(t, []string{"Y", "Z"}, unitNames(res.Unassigned[20]))
	assert.Empty(t, res.Snapshot())
}

func TestDiff_UnknownCategoryIsKept(t *testing.T) {
	odd := incidentWith(55, "U1")
	odd.Category = models.CategoryUnknown

	res := Diff(nil, []models.LiveIncident{odd})

	require.Len(t, res.New, 1)
	assert.Equal(t, models.CategoryUnknown, res.New[0].Category)
	assert.Contains(t, res.Snapshot(), int64(55))
}

func TestDiff_DuplicatesCollapse(t *testing.T) {
	first := incidentWith(9, "A", "A", "B")
	second := incidentWith(9, "C")
	second.Description = "DUPLICATE"

	res := Diff(nil, []models.LiveIncident{first, second})

	assert.Equal(t, 1, res.Duplicates)
	require.Len(t, res.Live, 1)
	assert.Equal(t, "STRUCTURE FIRE", res.Live[0].Description)
	assert.Equal(t, []string{"A", "B"}, unitNames(res.NewlyAssigned[9]))
}

func TestDiff_Idempotent(t *testing.T) {
	live := []models.LiveIncident{incidentWith(1, "A"), incidentWith(2, "B", "C")}

	first := Diff(nil, live)
	second := Diff(first.Snapshot(), live)

	assert.Empty(t, second.New)
	assert.Empty(t, second.Resolved)
	assert.Equal(t, []int64{1, 2}, numbersOf(second.Known))
	assert.Empty(t, second.NewlyAssigned)
	assert.Empty(t, second.Unassigned)
	assert.Equal(t, []string{"B", "C"}, unitNames(second.Persisted[2]))
}

func TestDiff_Deterministic(t *testing.T) {
	cached := map[int64]models.LiveIncident{
		1: incidentWith(1, "A"), 2: incidentWith(2), 3: incidentWith(3, "B"), 4: incidentWith(4),
	}
	live := []models.LiveIncident{incidentWith(5, "C"), incidentWith(3, "D")}

	want := Diff(cached, live)
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, Diff(cached, live))
	}
}

func TestDiff_DoesNotMutateInputs(t *testing.T) {
	cached := map[int64]models.LiveIncident{1: incidentWith(1, "A", "A")}
	live := []models.LiveIncident{incidentWith(1, "B", "B")}

	_ = Diff(cached, live)

	assert.Len(t, cached[1].Units, 2)
	assert.Len(t, live[0].Units, 2)
}

// Номера делятся на new/known/resolved без пересечений и полностью покрывают оба снимка
func TestDiff_PartitionProperty(t *testing.T) {
	tests := []struct {
		name   string
		cached []int64
		live   []int64
	}{
		{name: "disjoint", cached: []int64{1, 2}, live: []int64{3, 4}},
		{name: "overlap", cached: []int64{1, 2, 3}, live: []int64{2, 3, 4}},
		{name: "same", cached: []int64{1, 2}, live: []int64{2, 1}},
		{name: "empty cache", cached: nil, live: []int64{8}},
		{name: "empty live", cached: []int64{8}, live: nil},
		{name: "both empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cached := map[int64]models.LiveIncident{}
			for _, n := range tt.cached {
				cached[n] = incidentWith(n)
			}
			var live []models.LiveIncident
			for _, n := range tt.live {
				live = append(live, incidentWith(n))
			}

			res := Diff(cached, live)

			seen := map[int64]int{}
			for _, set := range [][]models.LiveIncident{res.New, res.Known, res.Resolved} {
				for _, inc := range set {
					seen[inc.Number]++
				}
			}
			for n, c := range seen {
				assert.Equal(t, 1, c, "number %d classified more than once", n)
			}

			liveSide := append(numbersOf(res.New), numbersOf(res.Known)...)
			assert.ElementsMatch(t, tt.live, liveSide)

			cachedSide := append(numbersOf(res.Resolved), numbersOf(res.Known)...)
			assert.ElementsMatch(t, tt.cached, cachedSide)
		})
	}
}
