//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/infra/repository"
	repositorymock "marketplace-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Recompute Tests
// =============================================================================

func TestRatingRepository_Recompute(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	testCases := []struct {
		name          string
		ratings       []int32
		listErr       error
		updateRows    int64
		expectAverage float64
		expectCount   int
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:          "success: mean of all rated bookings",
			ratings:       []int32{5, 4},
			updateRows:    1,
			expectAverage: 4.5,
			expectCount:   2,
		},
		{
			name:          "success: unrounded mean",
			ratings:       []int32{5, 4, 4},
			updateRows:    1,
			expectAverage: 13.0 / 3.0,
			expectCount:   3,
		},
		{
			name:       "success: no reviews resets to zero",
			ratings:    nil,
			updateRows: 1,
		},
		{
			name:       "error: listing fails",
			listErr:    errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:          "error: business row missing",
			ratings:       []int32{3},
			updateRows:    0,
			expectAverage: 3,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().ListBusinessRatings(ctx, mockDB, businessID).Return(tc.ratings, tc.listErr)
			if tc.listErr == nil {
				mockQueries.EXPECT().UpdateBusinessRating(ctx, mockDB, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ query.DBTX, arg query.UpdateBusinessRatingParams) (int64, error) {
						assert.Equal(t, businessID, arg.ID)
						assert.InDelta(t, tc.expectAverage, arg.Rating, 1e-9)
						assert.Equal(t, int32(len(tc.ratings)), arg.NumReviews)
						return tc.updateRows, nil
					})
			}

			summary, err := repo.Recompute(ctx, businessID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expectAverage, summary.Average, 1e-9)
			assert.Equal(t, tc.expectCount, summary.Count)
		})
	}
}
