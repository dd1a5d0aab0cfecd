package article

import "time"

// nowFunc is swapped out in tests to pin updatedAt values.
var nowFunc = time.Now
