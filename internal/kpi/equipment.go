// Package kpi derives composite health and performance indicators from asset
// registry records, and rolls them up across the facility hierarchy. All
// entry points are total: malformed input yields a zeroed result, never an
// error or panic.
package kpi

import (
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/numeric"
)

// CalculateEquipmentKPIs computes the full indicator set for one asset. A
// nil record, or any panic during computation, yields the all-zero result.
func CalculateEquipmentKPIs(eq *domain.Equipment) (kpis domain.EquipmentKPIs) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("equipment kpi computation failed, returning zeroes")
			kpis = domain.EquipmentKPIs{}
		}
	}()

	if eq == nil {
		return domain.EquipmentKPIs{}
	}

	operatingHours := numeric.SafeParseNumber(eq.OperatingHours, 0, 0, 1e9, "operatingHours")
	failureCount := float64(len(eq.FailureHistory))
	maintenanceCount := float64(len(eq.MaintenanceHistory))
	days := daysSinceInstallation(eq.InstallationDate)

	// Health is a minimum-of-signals composite: it starts from the condition
	// grade and each monitoring signal can only lower it.
	condition := strings.ToLower(strings.TrimSpace(eq.Condition))
	health, ok := conditionScores[condition]
	if !ok {
		health = DefaultConditionScore
	}

	vibrationScore := 100.0
	temperatureScore := 100.0
	criticalAlerts, warningAlerts := 0.0, 0.0

	if cm := eq.ConditionMonitoring; cm != nil {
		if cm.Vibration != nil {
			zone := strings.ToLower(strings.TrimSpace(cm.Vibration.ISO10816Zone))
			vibrationScore, ok = iso10816Scores[zone]
			if !ok {
				vibrationScore = DefaultZoneScore
			}
			health = math.Min(health, vibrationScore)
		}
		if cm.Thermography != nil {
			deltaT := numeric.SafeParseNumber(cm.Thermography.DeltaT, 0, -50, 200, "thermography.deltaT")
			temperatureScore = thermalScore(deltaT)
			health = math.Min(health, temperatureScore)
		}
		for _, a := range cm.Alerts {
			switch strings.ToLower(strings.TrimSpace(a.Severity)) {
			case "critical":
				criticalAlerts++
			case "warning":
				warningAlerts++
			}
		}
	}

	penalty := math.Min(MaxAlertPenalty, criticalAlerts*CriticalAlertPenalty+warningAlerts*WarningAlertPenalty)
	health = math.Max(0, health-penalty)

	status := strings.ToLower(strings.TrimSpace(eq.Status))
	availability, ok := statusAvailability[status]
	if !ok {
		availability = DefaultAvailability
	}

	agePenalty := math.Min(MaxAgePenalty, days/365*AgePenaltyPerYear)
	reliability := numeric.Clamp(100-failureCount*FailureReliabilityPenalty-agePenalty, MinReliability, 100)

	ratedEfficiency := numeric.SafeParseNumber(spec(eq, "efficiency"), DefaultEfficiencyPct, 0, 100, "specifications.efficiency")
	efficiency := numeric.Clamp(ratedEfficiency*health/100, 0, 100)

	var mtbf float64
	if failureCount > 0 {
		mtbf = math.Max(1, numeric.SafeDivide(operatingHours, failureCount, 1, "mtbf"))
	} else {
		mtbf = math.Min(HoursPerYear, math.Max(1, operatingHours))
	}

	expectedHours := days * 24 * ExpectedDutyCycle
	utilization := numeric.Clamp(numeric.SafeDivide(operatingHours, expectedHours, 0, "utilization")*100, 0, 100)

	energyEfficiency := numeric.Clamp(efficiency*EnergyEfficiencyFactor, 0, 100)

	ratedPower := numeric.SafeParseNumber(spec(eq, "ratedPower"), DefaultRatedPowerKW, 0, 1e6, "specifications.ratedPower")
	maintenanceCost := ratedPower * MaintenanceCostPerKWYear * conditionCostFactor(condition)

	downtime := failureCount*DowntimePerFailure + maintenanceCount*DowntimePerMaintenance

	return domain.EquipmentKPIs{
		HealthScore:      math.Round(health),
		Availability:     round2(availability),
		Reliability:      round2(reliability),
		Efficiency:       round2(efficiency),
		MTBF:             math.Round(mtbf),
		MTTR:             DefaultMTTRHours,
		UtilizationRate:  round2(utilization),
		EnergyEfficiency: round2(energyEfficiency),
		MaintenanceCost:  math.Round(maintenanceCost),
		DowntimeHours:    math.Round(downtime),
		VibrationScore:   round2(vibrationScore),
		TemperatureScore: round2(temperatureScore),
	}
}

// thermalScore grades the thermographic temperature rise over ambient.
func thermalScore(deltaT float64) float64 {
	switch {
	case deltaT > 20:
		return 60
	case deltaT > 15:
		return 75
	case deltaT > 10:
		return 85
	default:
		return 95
	}
}

func conditionCostFactor(condition string) float64 {
	switch condition {
	case domain.ConditionPoor:
		return PoorConditionCostFactor
	case domain.ConditionCritical:
		return CriticalConditionFactor
	default:
		return 1
	}
}

// daysSinceInstallation defaults to "installed now" for missing dates and is
// floored at one day so age and utilization denominators stay positive.
func daysSinceInstallation(installed *time.Time) float64 {
	now := time.Now()
	d := now
	if installed != nil && !installed.IsZero() && installed.Before(now) {
		d = *installed
	}
	return math.Max(1, now.Sub(d).Hours()/24)
}

func spec(eq *domain.Equipment, key string) any {
	if eq.Specifications == nil {
		return nil
	}
	return eq.Specifications[key]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
