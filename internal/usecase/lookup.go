package usecase

import (
	"context"
	"errors"

	"movie-awards/internal/domain"
)

type AwardGetter interface {
	GetAward(ctx context.Context, key domain.AwardKey) (domain.AwardRecord, bool, error)
}

type AwardService struct {
	store AwardGetter
}

// LookupInput carries the raw request values. Parsing happens in Lookup so
// every entry point applies the same rules.
type LookupInput struct {
	MovieID   string
	AwardBody string
	MinAwards string
}

func NewAwardService(store AwardGetter) (*AwardService, error) {
	if store == nil {
		return nil, errors.New("usecase: award store must not be nil")
	}
	return &AwardService{store: store}, nil
}

// Lookup returns the award record for the requested (movie, award body) pair.
// When a minimum is supplied the record must have strictly more awards than it.
func (s *AwardService) Lookup(ctx context.Context, in LookupInput) (domain.AwardRecord, error) {
	movieID, ok := parseMovieID(in.MovieID)
	awardBody := in.AwardBody
	if !ok || awardBody == "" {
		return domain.AwardRecord{}, newError(ErrorInvalidInput, "missing_key", nil)
	}
	minAwards, hasMin := parseMinAwards(in.MinAwards)

	rec, found, err := s.store.GetAward(ctx, domain.AwardKey{MovieID: movieID, AwardBody: awardBody})
	if err != nil {
		return domain.AwardRecord{}, newError(ErrorInternal, "dynamodb_get_error", err)
	}
	if !found {
		return domain.AwardRecord{}, newError(ErrorNotFound, "award_not_found", nil)
	}

	if hasMin && rec.NumAwards <= minAwards {
		return domain.AwardRecord{}, newError(ErrorBelowThreshold, "below_min_awards", nil)
	}
	return rec, nil
}
