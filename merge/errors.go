package merge

import "errors"

// ErrCoverageGap indicates cells left nodata after the merge because both
// sources are nodata there. It is a warning value, not a failure.
var ErrCoverageGap = errors.New("merge: residual nodata after merge")
