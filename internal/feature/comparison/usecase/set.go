package usecase

// MaxCompanies is the hard capacity of a comparison set.
const MaxCompanies = 4

// ComparisonSet is an ordered selection of distinct company ids, capped at
// MaxCompanies. Mutations invalidate any metrics computed for the previous
// membership, so stale derived values cannot be served.
type ComparisonSet struct {
	ids     []uint
	metrics *Result
}

// Add appends id to the set. It returns ErrSetFull when the set already
// holds MaxCompanies members and ErrDuplicateCompany when id is already
// selected; in both cases the membership is unchanged.
func (s *ComparisonSet) Add(id uint) error {
	if len(s.ids) >= MaxCompanies {
		return ErrSetFull
	}
	for _, existing := range s.ids {
		if existing == id {
			return ErrDuplicateCompany
		}
	}
	s.ids = append(s.ids, id)
	s.metrics = nil
	return nil
}

// Remove drops id from the set, if present, and invalidates computed
// metrics.
func (s *ComparisonSet) Remove(id uint) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.metrics = nil
			return
		}
	}
}

// IDs returns the selection in insertion order.
func (s *ComparisonSet) IDs() []uint {
	out := make([]uint, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected companies.
func (s *ComparisonSet) Len() int { return len(s.ids) }

// SetMetrics caches the metrics computed for the current membership.
func (s *ComparisonSet) SetMetrics(r *Result) { s.metrics = r }

// Metrics returns the cached metrics for the current membership, if any.
func (s *ComparisonSet) Metrics() (*Result, bool) {
	return s.metrics, s.metrics != nil
}
