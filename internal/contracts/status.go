package contracts

// Status represents the lifecycle state of a contract
type Status string

const (
	StatusDraft      Status = "draft"
	StatusSent       Status = "sent"
	StatusSigned     Status = "signed"
	StatusSuperseded Status = "superseded"
)

// IsValid checks if the status is a valid contract status
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusSigned, StatusSuperseded:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsOpen reports whether the contract is still awaiting a signature.
// Signed and superseded contracts are immutable.
func (s Status) IsOpen() bool {
	return s == StatusDraft || s == StatusSent
}
