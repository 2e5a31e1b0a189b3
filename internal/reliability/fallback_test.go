package reliability

import (
	"math"
	"testing"
)

func requestWithVelocity(v float64) AnalysisRequest {
	var req AnalysisRequest
	req.Vibration.Pump.DriveEnd.VelocityHorizontal = v
	req.Operational.OperatingHours = 4000
	return req
}

func TestFallbackWithNoVibrationSignal(t *testing.T) {
	got := Fallback(AnalysisRequest{})

	if got.ReliabilityMetrics.MTBF != failureFreeMTBF {
		t.Errorf("expected MTBF %v for silent asset, got %v", failureFreeMTBF, got.ReliabilityMetrics.MTBF)
	}
	if got.ReliabilityMetrics.MTBF <= 0 {
		t.Errorf("MTBF must stay positive with zero vibration")
	}
	if got.ReliabilityMetrics.FailureRate != 0 {
		t.Errorf("expected zero failure rate, got %v", got.ReliabilityMetrics.FailureRate)
	}
	if got.ConditionIndicators.TrendDirection != "improving" {
		t.Errorf("expected improving trend, got %q", got.ConditionIndicators.TrendDirection)
	}
	if got.ConditionIndicators.OverallHealth != 100 {
		t.Errorf("expected overall health 100, got %v", got.ConditionIndicators.OverallHealth)
	}
}

func TestFallbackSchemaIsComplete(t *testing.T) {
	got := Fallback(requestWithVelocity(4))

	if len(got.FailureModes) != 2 {
		t.Fatalf("expected 2 canned failure modes, got %d", len(got.FailureModes))
	}
	if len(got.MaintenanceOptimization.RecommendedActions) != 3 {
		t.Errorf("expected 3 recommended actions, got %d", len(got.MaintenanceOptimization.RecommendedActions))
	}
	if got.WeibullAnalysis.Beta != 2.0 || got.WeibullAnalysis.Gamma != 0 || got.WeibullAnalysis.RSquared != 0.85 {
		t.Errorf("unexpected assumed weibull parameters: %+v", got.WeibullAnalysis)
	}
	if got.RULPrediction.PredictionAccuracy != 75 {
		t.Errorf("expected 75%% prediction accuracy, got %v", got.RULPrediction.PredictionAccuracy)
	}
}

func TestFallbackVibrationMath(t *testing.T) {
	// One positive reading of 4 mm/s; zero readings are ignored, so the
	// average is 4 and not 4/12.
	got := Fallback(requestWithVelocity(4))

	if got.ConditionIndicators.OverallHealth != 60 { // 100 - 4*10
		t.Errorf("expected base reliability 60, got %v", got.ConditionIndicators.OverallHealth)
	}
	wantMTBF := 1 / (4.0 / 10000) // 2500
	if got.ReliabilityMetrics.MTBF != wantMTBF {
		t.Errorf("expected MTBF %v, got %v", wantMTBF, got.ReliabilityMetrics.MTBF)
	}
	wantAvailability := wantMTBF / (wantMTBF + 24) * 100
	if math.Abs(got.ReliabilityMetrics.Availability-wantAvailability) > 1e-9 {
		t.Errorf("expected availability %v, got %v", wantAvailability, got.ReliabilityMetrics.Availability)
	}
	wantReliability := math.Exp(-4000 / wantMTBF)
	if math.Abs(got.ReliabilityMetrics.ReliabilityAtTime-wantReliability) > 1e-9 {
		t.Errorf("expected reliability at time %v, got %v", wantReliability, got.ReliabilityMetrics.ReliabilityAtTime)
	}
	if got.WeibullAnalysis.Eta != wantMTBF*math.Sqrt(math.Ln2) {
		t.Errorf("unexpected eta %v", got.WeibullAnalysis.Eta)
	}
	if got.RULPrediction.RemainingUsefulLife != 0 { // mtbf 2500 < 4000 hours
		t.Errorf("expected RUL floored at 0, got %v", got.RULPrediction.RemainingUsefulLife)
	}
	if got.RULPrediction.ConfidenceInterval.Lower != 0 || got.RULPrediction.ConfidenceInterval.Upper != 1000 {
		t.Errorf("unexpected confidence interval %+v", got.RULPrediction.ConfidenceInterval)
	}
	if got.MaintenanceOptimization.OptimalInterval != wantMTBF*0.7 {
		t.Errorf("unexpected optimal interval %v", got.MaintenanceOptimization.OptimalInterval)
	}
	if got.ConditionIndicators.TrendDirection != "stable" { // 3 < 4 <= 5
		t.Errorf("expected stable trend, got %q", got.ConditionIndicators.TrendDirection)
	}
}

func TestFallbackHighVibration(t *testing.T) {
	got := Fallback(requestWithVelocity(7))

	if got.ConditionIndicators.TrendDirection != "degrading" {
		t.Errorf("expected degrading trend, got %q", got.ConditionIndicators.TrendDirection)
	}
	if got.ConditionIndicators.AnomalyScore != 100 { // min(100, 7*20)
		t.Errorf("expected anomaly score capped at 100, got %v", got.ConditionIndicators.AnomalyScore)
	}
	bearing := got.FailureModes[0]
	if bearing.Probability != 0.7 {
		t.Errorf("expected elevated bearing probability, got %v", bearing.Probability)
	}
	wantRPN := bearing.Probability * bearing.Severity * bearing.Detectability * 100
	if math.Abs(bearing.RPN-wantRPN) > 1e-9 {
		t.Errorf("RPN does not follow probability x severity x detectability x 100: %+v", bearing)
	}
}

func TestBuildAnalysisRequest(t *testing.T) {
	form := map[string]any{
		"equipment_id":         "pump-007",
		"pump_de_velocity_h":   "3.2",
		"pump_de_velocity_v":   2.1,
		"motor_nde_velocity_a": "garbage",
		"operating_hours":      "12000",
		"efficiency":           "250", // clamped to the percentage range
	}
	req := BuildAnalysisRequest(form)

	if req.Equipment.ID != "pump-007" {
		t.Errorf("expected equipment id to pass through, got %q", req.Equipment.ID)
	}
	if req.Vibration.Pump.DriveEnd.VelocityHorizontal != 3.2 {
		t.Errorf("expected 3.2, got %v", req.Vibration.Pump.DriveEnd.VelocityHorizontal)
	}
	if req.Vibration.Pump.DriveEnd.VelocityVertical != 2.1 {
		t.Errorf("expected 2.1, got %v", req.Vibration.Pump.DriveEnd.VelocityVertical)
	}
	if req.Vibration.Motor.NonDriveEnd.VelocityAxial != 0 {
		t.Errorf("garbled field should fall back to 0, got %v", req.Vibration.Motor.NonDriveEnd.VelocityAxial)
	}
	if req.Operational.OperatingHours != 12000 {
		t.Errorf("expected 12000, got %v", req.Operational.OperatingHours)
	}
	if req.Operational.Efficiency != 100 {
		t.Errorf("expected efficiency clamped to 100, got %v", req.Operational.Efficiency)
	}
}
