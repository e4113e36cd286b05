package alert

// Severity orders alerts for display: critical first, info last.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

func (s Severity) String() string {
	return string(s)
}

// Rank returns the sort rank: critical=1, warning=2, info=3. Unknown
// severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 1
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 3
	default:
		return 4
	}
}
