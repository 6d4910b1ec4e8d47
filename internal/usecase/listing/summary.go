package listing

import (
	"context"

	"github.com/payzee/dashboard/internal/domain/load"
)

// ListSummary is the dashboard card of one list.
type ListSummary struct {
	List  string
	Total int
	// Breakdown counts records per value of each filterable field.
	// Records with several values for a field count once per value.
	Breakdown map[string]map[string]int
	Load      load.State
}

// Summary is the dashboard overview.
type Summary struct {
	Lists []ListSummary
}

// Summary counts every list and breaks it down by its filter fields.
func (s *Service) Summary(_ context.Context) (Summary, error) {
	defs := s.catalog.Definitions()
	out := Summary{Lists: make([]ListSummary, 0, len(defs))}

	for _, def := range defs {
		snap, err := s.catalog.Snapshot(def.Name)
		if err != nil {
			return Summary{}, err
		}

		ls := ListSummary{
			List:      def.Name,
			Total:     len(snap.Records),
			Breakdown: make(map[string]map[string]int, len(def.FilterFields)),
			Load:      snap.Load,
		}
		for _, f := range def.FilterFields {
			counts := make(map[string]int)
			for _, r := range snap.Records {
				seen := make(map[string]bool)
				for _, el := range r.Field(f).Elements() {
					if el == "" || seen[el] {
						continue
					}
					seen[el] = true
					counts[el]++
				}
			}
			ls.Breakdown[f] = counts
		}
		out.Lists = append(out.Lists, ls)
	}
	return out, nil
}
