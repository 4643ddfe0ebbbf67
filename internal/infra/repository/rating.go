package repository

import (
	"context"

	"marketplace-api/internal/domain/rating"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/query"

	"github.com/google/uuid"
)

type RatingQueries interface {
	ListBusinessRatings(ctx context.Context, db query.DBTX, businessID uuid.UUID) ([]int32, error)
	UpdateBusinessRating(ctx context.Context, db query.DBTX, arg query.UpdateBusinessRatingParams) (int64, error)
}

type RatingRepository struct {
	queries RatingQueries
	db      query.DBTX
}

func NewRatingRepository(queries RatingQueries, db query.DBTX) *RatingRepository {
	return &RatingRepository{queries: queries, db: db}
}

// Recompute rescans every rated booking of the business and overwrites the
// stored aggregate. Run it inside the transaction that changed the rating.
func (r *RatingRepository) Recompute(ctx context.Context, businessID uuid.UUID) (rating.Summary, error) {
	raw, err := r.queries.ListBusinessRatings(ctx, r.db, businessID)
	if err != nil {
		return rating.Summary{}, infra.WrapRepoErr("failed to list business ratings", err)
	}

	values := make([]int, len(raw))
	for i, v := range raw {
		values[i] = int(v)
	}
	summary := rating.Aggregate(values)

	rows, err := r.queries.UpdateBusinessRating(ctx, r.db, query.UpdateBusinessRatingParams{
		ID:         businessID,
		Rating:     summary.Average,
		NumReviews: int32(summary.Count), // #nosec G115 -- review counts fit in int32
	})
	if err != nil {
		return rating.Summary{}, infra.WrapRepoErr("failed to store business rating", err)
	}
	if rows == 0 {
		return rating.Summary{}, infra.NotFound("business not found")
	}
	return summary, nil
}
