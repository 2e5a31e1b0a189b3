package reliability

import (
	"math"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/numeric"
)

// Fallback approximation constants. These are assumptions, not fitted
// values; the remote service computes the real ones.
const (
	assumedRepairHours        = 24
	assumedWeibullBeta        = 2.0
	assumedRSquared           = 0.85
	confidenceBandHours       = 1000
	assumedPredictionAccuracy = 75
	optimalIntervalFactor     = 0.7
	assumedCostSavings        = 15000

	failureFreeMTBF = 8760 // one year of hours when no wear signal exists

	degradingVibrationLimit = 5
	stableVibrationLimit    = 3
)

// Fallback computes a schema-identical local approximation of the remote
// analysis from the same canonical request.
func Fallback(req AnalysisRequest) Analysis {
	avgVibration := averagePositive(req.velocityReadings())
	operatingHours := req.Operational.OperatingHours

	baseReliability := math.Max(0, 100-avgVibration*10)
	failureRate := avgVibration / 10000

	mtbf := float64(failureFreeMTBF)
	if failureRate > 0 {
		mtbf = numeric.SafeDivide(1, failureRate, failureFreeMTBF, "fallback.mtbf")
	}

	availability := numeric.SafeDivide(mtbf, mtbf+assumedRepairHours, 0, "fallback.availability") * 100
	reliabilityAtTime := math.Exp(-numeric.SafeDivide(operatingHours, mtbf, 0, "fallback.reliabilityAtTime"))

	rul := math.Max(0, mtbf-operatingHours)

	return Analysis{
		ReliabilityMetrics: ReliabilityMetrics{
			MTBF:              mtbf,
			MTTR:              assumedRepairHours,
			Availability:      availability,
			ReliabilityAtTime: reliabilityAtTime,
			FailureRate:       failureRate,
		},
		WeibullAnalysis: WeibullAnalysis{
			Beta:     assumedWeibullBeta,
			Eta:      mtbf * math.Sqrt(math.Ln2),
			Gamma:    0,
			RSquared: assumedRSquared,
		},
		RULPrediction: RULPrediction{
			RemainingUsefulLife: rul,
			ConfidenceInterval: ConfidenceInterval{
				Lower: math.Max(0, rul-confidenceBandHours),
				Upper: rul + confidenceBandHours,
			},
			PredictionAccuracy: assumedPredictionAccuracy,
		},
		FailureModes: cannedFailureModes(avgVibration),
		MaintenanceOptimization: MaintenanceOptimization{
			OptimalInterval: mtbf * optimalIntervalFactor,
			CostSavings:     assumedCostSavings,
			RecommendedActions: []string{
				"Schedule vibration trend measurement within 30 days",
				"Inspect and re-grease bearings at next planned stop",
				"Verify coupling alignment and foundation bolting",
			},
		},
		ConditionIndicators: ConditionIndicators{
			OverallHealth:   baseReliability,
			DegradationRate: avgVibration / 100,
			AnomalyScore:    math.Min(100, avgVibration*20),
			TrendDirection:  trendDirection(avgVibration),
		},
	}
}

func cannedFailureModes(avgVibration float64) []FailureMode {
	bearingProbability := 0.2
	if avgVibration > degradingVibrationLimit {
		bearingProbability = 0.7
	}
	unbalanceProbability := 0.2
	if avgVibration > stableVibrationLimit {
		unbalanceProbability = 0.6
	}
	return []FailureMode{
		failureMode("Bearing failure", bearingProbability, 0.8, 0.6),
		failureMode("Unbalance", unbalanceProbability, 0.6, 0.7),
	}
}

func failureMode(mode string, probability, severity, detectability float64) FailureMode {
	return FailureMode{
		Mode:          mode,
		Probability:   probability,
		Severity:      severity,
		Detectability: detectability,
		RPN:           probability * severity * detectability * 100,
	}
}

func trendDirection(avgVibration float64) string {
	switch {
	case avgVibration > degradingVibrationLimit:
		return "degrading"
	case avgVibration > stableVibrationLimit:
		return "stable"
	default:
		return "improving"
	}
}

// averagePositive means the positive readings only; zero and absent readings
// carry no information and are ignored.
func averagePositive(readings []float64) float64 {
	var sum float64
	var n float64
	for _, r := range readings {
		if r > 0 {
			sum += r
			n++
		}
	}
	return numeric.SafeDivide(sum, n, 0, "fallback.avgVibration")
}
