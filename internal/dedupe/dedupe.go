// Package dedupe provides the shared singleflight group used to collapse
// concurrent simulations of the same seeded match into a single run.
package dedupe

import "golang.org/x/sync/singleflight"

// MatchGroup deduplicates simulations keyed by keys.MatchKey. Only requests
// carrying an explicit seed are deduplicated since only those are fully
// determined by their inputs.
var MatchGroup singleflight.Group
