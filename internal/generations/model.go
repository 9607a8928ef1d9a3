package generations

import "time"

// Generation records one resume produced by the generate endpoint.
type Generation struct {
	ID        string
	Summary   string
	FullName  string
	Generator string
	Content   string
	CreatedAt time.Time
}
