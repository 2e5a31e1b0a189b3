// Package reliability produces ReliabilityAnalysis results for vibration and
// operational telemetry. It prefers the remote analysis service but never
// blocks on its availability: any failure switches to a schema-identical
// local approximation.
package reliability

// Analysis is the six-section result. Remote and fallback paths fill the
// same structure; consumers must not care which path produced it.
type Analysis struct {
	ReliabilityMetrics      ReliabilityMetrics      `json:"reliability_metrics"`
	WeibullAnalysis         WeibullAnalysis         `json:"weibull_analysis"`
	RULPrediction           RULPrediction           `json:"rul_prediction"`
	FailureModes            []FailureMode           `json:"failure_modes"`
	MaintenanceOptimization MaintenanceOptimization `json:"maintenance_optimization"`
	ConditionIndicators     ConditionIndicators     `json:"condition_indicators"`
}

type ReliabilityMetrics struct {
	MTBF              float64 `json:"mtbf"`
	MTTR              float64 `json:"mttr"`
	Availability      float64 `json:"availability"`
	ReliabilityAtTime float64 `json:"reliability_at_time"`
	FailureRate       float64 `json:"failure_rate"`
}

// WeibullAnalysis carries the shape (beta), scale (eta) and location (gamma)
// parameters plus the goodness of fit.
type WeibullAnalysis struct {
	Beta     float64 `json:"beta"`
	Eta      float64 `json:"eta"`
	Gamma    float64 `json:"gamma"`
	RSquared float64 `json:"r_squared"`
}

type RULPrediction struct {
	RemainingUsefulLife float64            `json:"remaining_useful_life"`
	ConfidenceInterval  ConfidenceInterval `json:"confidence_interval"`
	PredictionAccuracy  float64            `json:"prediction_accuracy"`
}

type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// FailureMode follows the PFMEA convention: RPN is probability x severity x
// detectability x 100.
type FailureMode struct {
	Mode          string  `json:"mode"`
	Probability   float64 `json:"probability"`
	Severity      float64 `json:"severity"`
	Detectability float64 `json:"detectability"`
	RPN           float64 `json:"rpn"`
}

type MaintenanceOptimization struct {
	OptimalInterval    float64  `json:"optimal_interval"`
	CostSavings        float64  `json:"cost_savings"`
	RecommendedActions []string `json:"recommended_actions"`
}

// ConditionIndicators summarizes asset condition; TrendDirection is one of
// improving, stable, degrading.
type ConditionIndicators struct {
	OverallHealth   float64 `json:"overall_health"`
	DegradationRate float64 `json:"degradation_rate"`
	AnomalyScore    float64 `json:"anomaly_score"`
	TrendDirection  string  `json:"trend_direction"`
}
