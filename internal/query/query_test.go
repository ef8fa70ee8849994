package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/store"
)

func testSnapshot() store.Snapshot {
	return store.Snapshot{
		Reports: []domain.Report{
			{ID: "report-1", Type: domain.DisasterFlood, Description: "River overflow near market", LocationText: "Artibonite", Status: domain.StatusNew},
			{ID: "report-2", Type: domain.DisasterFire, Description: "Warehouse fire", LocationText: "Ouest", Status: domain.StatusVerified},
		},
		Resources: []domain.Resource{
			{ID: "res-1", Name: "Hopital Universitaire", Category: domain.CategoryMedical, Address: "Port-au-Prince"},
			{ID: "res-2", Name: "Carrefour Shelter", Category: domain.CategoryShelter, Address: "Carrefour"},
			{ID: "res-3", Name: "Delmas Water Point", Category: domain.CategoryWater, Address: "Delmas 33"},
		},
		Zones: []domain.HazardZone{
			{ID: "zone-1", Name: "Flood Zone Alpha", Type: domain.DisasterFlood, Severity: domain.SeverityHigh},
			{ID: "zone-2", Name: "Landslide Risk Area", Type: domain.DisasterLandslide, Severity: domain.SeverityLow},
		},
	}
}

func TestComputeVisible_AllPassesEverything(t *testing.T) {
	v := ComputeVisible(testSnapshot(), FilterAll, "")

	assert.Len(t, v.Reports, 2)
	assert.Len(t, v.Resources, 3)
	assert.Len(t, v.Zones, 2)
}

func TestComputeVisible_DisastersExcludesResources(t *testing.T) {
	v := ComputeVisible(testSnapshot(), FilterDisasters, "")

	assert.Len(t, v.Reports, 2)
	assert.Empty(t, v.Resources)
	assert.Len(t, v.Zones, 2)
}

func TestComputeVisible_CategoryExcludesReportsAndZones(t *testing.T) {
	v := ComputeVisible(testSnapshot(), Filter(domain.CategoryShelter), "")

	assert.Empty(t, v.Reports)
	assert.Empty(t, v.Zones)
	require.Len(t, v.Resources, 1)
	assert.Equal(t, "res-2", v.Resources[0].ID)
}

func TestComputeVisible_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	snap := testSnapshot()

	v := ComputeVisible(snap, FilterAll, "  FLOOD ")
	require.Len(t, v.Reports, 1)
	assert.Equal(t, "report-1", v.Reports[0].ID)
	require.Len(t, v.Zones, 1)
	assert.Equal(t, "zone-1", v.Zones[0].ID)
	assert.Empty(t, v.Resources)

	v = ComputeVisible(snap, FilterAll, "delmas")
	require.Len(t, v.Resources, 1)
	assert.Equal(t, "res-3", v.Resources[0].ID)
}

func TestComputeVisible_SearchMatchesLocationLabelAndCategory(t *testing.T) {
	snap := testSnapshot()

	v := ComputeVisible(snap, FilterAll, "artibonite")
	require.Len(t, v.Reports, 1)
	assert.Equal(t, "report-1", v.Reports[0].ID)

	v = ComputeVisible(snap, FilterAll, "medical")
	require.Len(t, v.Resources, 1)
	assert.Equal(t, "res-1", v.Resources[0].ID)
}

func TestComputeVisible_Pure(t *testing.T) {
	snap := testSnapshot()

	first := ComputeVisible(snap, FilterAll, "flood")
	second := ComputeVisible(snap, FilterAll, "flood")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical inputs produced different outputs (-first +second):\n%s", diff)
	}
}

func TestFilter_Valid(t *testing.T) {
	assert.True(t, FilterAll.Valid())
	assert.True(t, FilterDisasters.Valid())
	assert.True(t, Filter(domain.CategoryWater).Valid())
	assert.False(t, Filter("Helipads").Valid())
}
