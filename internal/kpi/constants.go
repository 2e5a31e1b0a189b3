package kpi

// Tunable factors of the KPI model. Everything the formulas depend on lives
// here so plant engineering can review the figures in one place.
const (
	// DefaultConditionScore is used when the registry reports no condition.
	DefaultConditionScore = 50

	// DefaultZoneScore applies when vibration monitoring exists but the ISO
	// 10816 zone is unclassified.
	DefaultZoneScore = 70

	// DefaultAvailability applies to unrecognized status values.
	DefaultAvailability = 80

	// Alert penalty weights, capped so alert storms cannot zero out an
	// otherwise healthy asset on their own.
	CriticalAlertPenalty = 10
	WarningAlertPenalty  = 5
	MaxAlertPenalty      = 50

	// Reliability model: each recorded failure costs 5 points, ageing costs
	// 2 points per service year up to 20, and the score never drops below
	// the 60-point floor.
	FailureReliabilityPenalty = 5
	AgePenaltyPerYear         = 2
	MaxAgePenalty             = 20
	MinReliability            = 60

	// HoursPerYear caps MTBF for failure-free assets.
	HoursPerYear = 8760

	// DefaultMTTRHours is an explicit constant. The origin system computed
	// (maintenanceCount*4)/maintenanceCount, which always equals 4; flagged
	// to stakeholders as a probable leftover rather than silently reworked.
	DefaultMTTRHours = 4

	// ExpectedDutyCycle models the fraction of calendar time an asset is
	// expected to run; utilization is measured against it.
	ExpectedDutyCycle = 0.8

	// DefaultEfficiencyPct is assumed when specifications carry none.
	DefaultEfficiencyPct = 85

	// EnergyEfficiencyFactor derives energy efficiency from process
	// efficiency; it is a fixed correlation, not an independent measurement.
	EnergyEfficiencyFactor = 0.9

	// Maintenance cost model: currency per rated kW per year, scaled by
	// condition.
	DefaultRatedPowerKW      = 50
	MaintenanceCostPerKWYear = 20
	PoorConditionCostFactor  = 2
	CriticalConditionFactor  = 3

	// Downtime attribution per history entry, in hours.
	DowntimePerFailure     = 8
	DowntimePerMaintenance = 4

	// OEE quality floor: alert density degrades quality but never below 0.8.
	MinOEEQuality      = 0.8
	AlertQualityWeight = 0.1
)

// conditionScores maps the registry condition grade to the starting health
// score. Health is a minimum-of-signals composite: later signals can only
// lower it.
var conditionScores = map[string]float64{
	"excellent": 95,
	"good":      80,
	"fair":      65,
	"poor":      40,
	"critical":  20,
}

// iso10816Scores maps vibration severity zones (A best .. D worst).
var iso10816Scores = map[string]float64{
	"a": 95,
	"b": 80,
	"c": 60,
	"d": 30,
}

// statusAvailability: an asset in maintenance, fault or offline state is not
// producing value, so all three map to 0% availability by design.
var statusAvailability = map[string]float64{
	"operational": 98,
	"maintenance": 0,
	"fault":       0,
	"offline":     0,
	"testing":     50,
}
