package types

// Status is the audit state of a planned path
type Status string

const (
	StatusPlanned  Status = "planned"  // no audit information
	StatusExisting Status = "existing" // on disk with the expected kind
	StatusMissing  Status = "missing"  // not on disk
	StatusConflict Status = "conflict" // on disk with the other kind
)

// StatusIndex is a side table of audit results keyed by normalized path.
// Projections look paths up here instead of carrying status on plan items.
type StatusIndex struct {
	Status map[string]Status
	Issues map[string][]string
	// Normalize maps a plan path to the key used in the tables
	Normalize func(string) string
}

// Lookup returns the status and issues recorded for path
func (s *StatusIndex) Lookup(path string) (Status, []string, bool) {
	if s == nil {
		return "", nil, false
	}
	key := path
	if s.Normalize != nil {
		key = s.Normalize(path)
	}
	status, ok := s.Status[key]
	if !ok {
		status = StatusPlanned
	}
	return status, s.Issues[key], ok
}
