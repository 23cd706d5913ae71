package wire

import (
	"fmt"

	"github.com/KlemensE/roslyn/internal/nav"
)

// ItemError records one failed entry in a batch. Entries at failed indexes
// are left zero-valued in the output slice; siblings are unaffected.
type ItemError struct {
	Index int
	Err   error
}

// Error implements the error interface
func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error
func (e *ItemError) Unwrap() error {
	return e.Err
}

// DehydrateSearchResults converts a batch of independent search results.
// Each result dehydrates on its own; a failure is reported per item and
// never aborts the batch. The returned record slice has the same length
// as the input.
func DehydrateSearchResults(results []nav.SearchResult) ([]SearchResultRecord, []ItemError) {
	records := make([]SearchResultRecord, len(results))
	var failures []ItemError
	for i, result := range results {
		rec, err := DehydrateSearchResult(result)
		if err != nil {
			failures = append(failures, ItemError{Index: i, Err: err})
			continue
		}
		records[i] = rec
	}
	return records, failures
}

// RehydrateSearchResults restores a batch of search result records against
// the snapshot, reporting failures per item. The returned slice has the
// same length as the input; entries at failed indexes are zero-valued.
func RehydrateSearchResults(records []SearchResultRecord, snap nav.Snapshot) ([]nav.SearchResult, []ItemError) {
	results := make([]nav.SearchResult, len(records))
	var failures []ItemError
	for i, rec := range records {
		result, err := RehydrateSearchResult(rec, snap)
		if err != nil {
			failures = append(failures, ItemError{Index: i, Err: err})
			continue
		}
		results[i] = result
	}
	return results, failures
}
