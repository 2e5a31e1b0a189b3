package kpi

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/numeric"
)

// CalculateHierarchyKPIs aggregates a population of assets. Nil entries are
// skipped; per-asset computation failures are isolated, so one bad record
// cannot corrupt the aggregate. An empty population yields the zero value.
func CalculateHierarchyKPIs(equipment []*domain.Equipment) domain.HierarchyKPIs {
	valid := equipment[:0:0]
	for _, eq := range equipment {
		if eq != nil {
			valid = append(valid, eq)
		}
	}
	if len(valid) == 0 {
		return domain.HierarchyKPIs{}
	}

	var out domain.HierarchyKPIs
	var sumHealth, sumAvailability, sumReliability, sumEfficiency float64

	for _, eq := range valid {
		k := CalculateEquipmentKPIs(eq)

		sumHealth += k.HealthScore
		sumAvailability += k.Availability
		sumReliability += k.Reliability
		sumEfficiency += k.Efficiency
		out.TotalMaintenanceCost += k.MaintenanceCost
		out.TotalDowntimeHours += k.DowntimeHours

		switch strings.ToLower(strings.TrimSpace(eq.Status)) {
		case domain.StatusOperational:
			out.OperationalCount++
		case domain.StatusMaintenance:
			out.MaintenanceCount++
		case domain.StatusFault:
			out.FaultCount++
		}

		if eq.ConditionMonitoring != nil {
			for _, a := range eq.ConditionMonitoring.Alerts {
				if strings.EqualFold(strings.TrimSpace(a.Severity), "critical") {
					out.CriticalAlerts++
				}
			}
		}
	}

	n := float64(len(valid))
	out.TotalEquipment = len(valid)
	out.AvgHealthScore = round2(numeric.SafeDivide(sumHealth, n, 0, "avgHealthScore"))
	out.AvgAvailability = round2(numeric.SafeDivide(sumAvailability, n, 0, "avgAvailability"))
	out.AvgReliability = round2(numeric.SafeDivide(sumReliability, n, 0, "avgReliability"))
	out.AvgEfficiency = round2(numeric.SafeDivide(sumEfficiency, n, 0, "avgEfficiency"))
	out.OEE = calculateOEE(out.AvgAvailability, out.AvgEfficiency, float64(out.CriticalAlerts), n)
	return out
}

// calculateOEE composes availability x performance x quality. Quality
// degrades with critical-alert density but never below the 0.8 floor.
func calculateOEE(avgAvailability, avgEfficiency, criticalAlerts, assetCount float64) float64 {
	availabilityFactor := numeric.Clamp(avgAvailability/100, 0, 1)
	performance := numeric.Clamp(avgEfficiency/100, 0, 1)
	alertDensity := numeric.SafeDivide(criticalAlerts, assetCount, 0, "oee.alertDensity")
	quality := numeric.Clamp(math.Max(MinOEEQuality, 1-AlertQualityWeight*alertDensity), 0, 1)
	return round2(availabilityFactor * performance * quality * 100)
}

// FlattenZone walks Zone -> Station -> {Line | System} -> Equipment,
// skipping nil nodes at every level.
func FlattenZone(z *domain.Zone) []*domain.Equipment {
	if z == nil {
		return nil
	}
	var out []*domain.Equipment
	for _, s := range z.Stations {
		out = append(out, FlattenStation(s)...)
	}
	return out
}

// FlattenStation concatenates the equipment of every line and system the
// station owns; a station may own either or both.
func FlattenStation(s *domain.Station) []*domain.Equipment {
	if s == nil {
		return nil
	}
	var out []*domain.Equipment
	for _, l := range s.Lines {
		out = append(out, FlattenLine(l)...)
	}
	for _, sys := range s.Systems {
		out = append(out, FlattenSystem(sys)...)
	}
	return out
}

func FlattenLine(l *domain.Line) []*domain.Equipment {
	if l == nil {
		return nil
	}
	return compactEquipment(l.Equipment)
}

func FlattenSystem(s *domain.System) []*domain.Equipment {
	if s == nil {
		return nil
	}
	return compactEquipment(s.Equipment)
}

func compactEquipment(in []*domain.Equipment) []*domain.Equipment {
	var out []*domain.Equipment
	for _, eq := range in {
		if eq != nil {
			out = append(out, eq)
		}
	}
	return out
}

// ParseEquipmentList decodes a JSON array element-wise so that one
// non-object or malformed entry is skipped (with a diagnostic) instead of
// failing the whole batch.
func ParseEquipmentList(body []byte) []*domain.Equipment {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Warn().Err(err).Msg("equipment list is not a JSON array")
		return nil
	}
	out := make([]*domain.Equipment, 0, len(raw))
	for i, r := range raw {
		var eq *domain.Equipment
		if err := json.Unmarshal(r, &eq); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping malformed equipment entry")
			continue
		}
		// JSON null decodes to a nil pointer; the rollup filters it.
		out = append(out, eq)
	}
	return out
}
