package service

// NamingStatus classifies one auto-naming attempt.
type NamingStatus string

const (
	NamingProduced NamingStatus = "produced"
	NamingSkipped  NamingStatus = "skipped"
	NamingFailed   NamingStatus = "failed"
)

// NamingOutcome is the result of a best-effort naming attempt. A Failed
// outcome is logged and absorbed; it never aborts the turn that triggered
// it.
type NamingOutcome struct {
	Status NamingStatus
	Name   string
	Reason string
}

func producedName(name string) NamingOutcome {
	return NamingOutcome{Status: NamingProduced, Name: name}
}

func skippedNaming(reason string) NamingOutcome {
	return NamingOutcome{Status: NamingSkipped, Reason: reason}
}

func failedNaming(reason string) NamingOutcome {
	return NamingOutcome{Status: NamingFailed, Reason: reason}
}
