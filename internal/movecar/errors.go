package movecar

import "errors"

// ErrRateLimited is returned when a notify arrives within the session's
// cooldown window. Expected and recoverable; the router maps it to a
// business failure, not a server error.
var ErrRateLimited = errors.New("notify rate limited, try again in a minute")
