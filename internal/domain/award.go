package domain

// AwardKey is the composite primary key of the awards table.
// The two fields are kept separate so that (12, "3") and (1, "23") never collide.
type AwardKey struct {
	MovieID   int
	AwardBody string
}

// AwardRecord is a single award item for one movie and one awarding body.
type AwardRecord struct {
	MovieID   int
	AwardBody string
	NumAwards int

	// Attributes holds the full stored item, descriptive fields included.
	// It is what callers receive as the response body.
	Attributes map[string]any
}

// Key returns the composite key the record is stored under.
func (r AwardRecord) Key() AwardKey {
	return AwardKey{MovieID: r.MovieID, AwardBody: r.AwardBody}
}
