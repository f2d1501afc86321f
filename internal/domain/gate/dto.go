package gate

// DefaultFaceThreshold is the embedding-distance cutoff used when the
// deployment does not configure one. Lower distance means more similar.
const DefaultFaceThreshold = 0.6

// CheckRequest carries the identity and location evidence for a gated
// check-in or check-out. Latitude/Longitude are pointers so a missing
// coordinate is distinguishable from 0,0.
type CheckRequest struct {
	Embedding []float64 `json:"embedding"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
}
