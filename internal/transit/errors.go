package transit

import "errors"

// ErrAlreadyBuilt is returned by SetRoutingSettings once the
// TransitGraph has already been materialised by a prior BuildRoute
// call. See SPEC_FULL.md §4.5a: reconfiguration after the graph is
// built is rejected rather than silently ignored or silently
// triggering a rebuild.
var ErrAlreadyBuilt = errors.New("transit: routing settings already built, cannot reconfigure")
