package diag

// Severity ranks how serious a diagnostic is. Gate findings come out as
// SevWarning or SevError depending on the marker policy; SevInfo is kept
// for advisory notes.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
