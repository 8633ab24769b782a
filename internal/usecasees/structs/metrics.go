package structs

type MetricConst int

const (
	MetricIssuesDetected MetricConst = iota
	MetricAutoFixSuccess
	MetricAutoFixFailed
	MetricEscalations
	MetricPassCompleted
)

func (m MetricConst) ToString() string {
	switch m {
	case MetricIssuesDetected:
		return "doctor_issues_detected_total"
	case MetricAutoFixSuccess:
		return "doctor_auto_fix_success_total"
	case MetricAutoFixFailed:
		return "doctor_auto_fix_failed_total"
	case MetricEscalations:
		return "doctor_escalations_total"
	case MetricPassCompleted:
		return "doctor_passes_completed_total"
	}

	return "unknown"
}
