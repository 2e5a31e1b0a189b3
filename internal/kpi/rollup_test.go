package kpi

import (
	"testing"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/domain"
)

func fleet() []*domain.Equipment {
	return []*domain.Equipment{
		{ID: "p1", Status: "operational", Condition: "excellent"},
		{ID: "p2", Status: "operational", Condition: "good"},
		{ID: "p3", Status: "maintenance", Condition: "fair"},
		{ID: "p4", Status: "fault", Condition: "critical",
			ConditionMonitoring: &domain.ConditionMonitoring{
				Alerts: []domain.ConditionAlert{{Severity: "critical"}, {Severity: "warning"}},
			}},
	}
}

func TestEmptyPopulation(t *testing.T) {
	if got := CalculateHierarchyKPIs(nil); got != (domain.HierarchyKPIs{}) {
		t.Errorf("expected zero result for empty population, got %+v", got)
	}
	if got := CalculateHierarchyKPIs([]*domain.Equipment{}); got != (domain.HierarchyKPIs{}) {
		t.Errorf("expected zero result for empty slice, got %+v", got)
	}
	if got := CalculateHierarchyKPIs([]*domain.Equipment{nil, nil}); got != (domain.HierarchyKPIs{}) {
		t.Errorf("expected zero result for all-nil slice, got %+v", got)
	}
}

func TestStatusCounts(t *testing.T) {
	got := CalculateHierarchyKPIs(fleet())
	if got.TotalEquipment != 4 {
		t.Errorf("expected 4 assets, got %d", got.TotalEquipment)
	}
	if got.OperationalCount != 2 || got.MaintenanceCount != 1 || got.FaultCount != 1 {
		t.Errorf("unexpected status counts: %+v", got)
	}
	if got.CriticalAlerts != 1 {
		t.Errorf("expected 1 critical alert, got %d", got.CriticalAlerts)
	}
}

func TestNilEntriesDoNotChangeAggregate(t *testing.T) {
	clean := CalculateHierarchyKPIs(fleet())

	withNils := append([]*domain.Equipment{nil}, fleet()...)
	withNils = append(withNils, nil)
	dirty := CalculateHierarchyKPIs(withNils)

	if clean != dirty {
		t.Errorf("nil entries changed the aggregate:\nclean %+v\ndirty %+v", clean, dirty)
	}
}

func TestEmptyRecordDilutesAverage(t *testing.T) {
	base := CalculateHierarchyKPIs(fleet())
	diluted := CalculateHierarchyKPIs(append(fleet(), &domain.Equipment{}))

	if diluted.TotalEquipment != base.TotalEquipment+1 {
		t.Fatalf("expected population to grow by one")
	}
	// An empty record computes default ("unknown") KPIs; it shifts the
	// average but cannot corrupt it.
	if diluted.AvgHealthScore >= 100 || diluted.AvgHealthScore < 0 {
		t.Errorf("diluted average out of bounds: %v", diluted.AvgHealthScore)
	}
	if diluted.AvgAvailability == base.AvgAvailability {
		t.Errorf("expected the default record to shift the availability average")
	}
}

func TestOEEBounds(t *testing.T) {
	populations := [][]*domain.Equipment{
		fleet(),
		{{Status: "operational", Condition: "excellent"}},
		{{Status: "fault", Condition: "critical"}},
		{{}, {}, {}},
	}
	for i, pop := range populations {
		got := CalculateHierarchyKPIs(pop)
		if got.OEE < 0 || got.OEE > 100 {
			t.Errorf("population %d: OEE out of bounds: %v", i, got.OEE)
		}
	}
}

func TestOEEQualityFloor(t *testing.T) {
	// Every asset carries multiple critical alerts; quality must still not
	// drop below 0.8.
	noisy := []*domain.Equipment{}
	for i := 0; i < 3; i++ {
		noisy = append(noisy, &domain.Equipment{
			Status:    "operational",
			Condition: "excellent",
			ConditionMonitoring: &domain.ConditionMonitoring{
				Alerts: []domain.ConditionAlert{
					{Severity: "critical"}, {Severity: "critical"}, {Severity: "critical"},
				},
			},
		})
	}
	quiet := []*domain.Equipment{}
	for i := 0; i < 3; i++ {
		quiet = append(quiet, &domain.Equipment{Status: "operational", Condition: "excellent"})
	}

	noisyKPIs := CalculateHierarchyKPIs(noisy)
	quietKPIs := CalculateHierarchyKPIs(quiet)

	if noisyKPIs.OEE > quietKPIs.OEE {
		t.Errorf("alert density should not raise OEE: noisy %v > quiet %v", noisyKPIs.OEE, quietKPIs.OEE)
	}

	// Quality in isolation: one alert per asset costs 10%, but any density
	// bottoms out at the 0.8 floor.
	if got := calculateOEE(100, 100, 1, 1); got != 90 {
		t.Errorf("expected OEE 90 at one alert per asset, got %v", got)
	}
	if got := calculateOEE(100, 100, 100, 1); got != 80 {
		t.Errorf("expected OEE floored at 80, got %v", got)
	}
}

func TestFlattenZone(t *testing.T) {
	zone := &domain.Zone{
		ID: "z1",
		Stations: []*domain.Station{
			nil,
			{
				ID:    "s1",
				Lines: []*domain.Line{nil, {ID: "l1", Equipment: []*domain.Equipment{{ID: "a"}, nil, {ID: "b"}}}},
				Systems: []*domain.System{
					{ID: "sys1", Equipment: []*domain.Equipment{{ID: "c"}}},
				},
			},
			{ID: "s2"}, // station with no children
		},
	}
	got := FlattenZone(zone)
	if len(got) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(got))
	}
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	want := []string{"a", "b", "c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("expected flattened order %v, got %v", want, ids)
			break
		}
	}

	if FlattenZone(nil) != nil {
		t.Errorf("expected nil for nil zone")
	}
}

func TestParseEquipmentListSkipsMalformedEntries(t *testing.T) {
	body := []byte(`[{"id":"a","status":"operational"}, 42, "junk", {"id":"b"}, null]`)
	got := ParseEquipmentList(body)
	// The number and the string are skipped; `null` survives as a nil
	// pointer for the rollup to filter.
	if len(got) != 3 {
		t.Fatalf("expected 3 surviving entries, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" || got[2] != nil {
		t.Errorf("unexpected surviving entries: %+v", got)
	}

	if got := ParseEquipmentList([]byte(`{"not":"an array"}`)); got != nil {
		t.Errorf("expected nil for non-array body, got %+v", got)
	}
}
