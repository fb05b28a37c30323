package gaps

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/gaps/mocks"
	"github.com/vfg2006/ads-insights-api/pkg/cache"
)

func newTestDetector(t *testing.T) (*Detector, *mocks.MockDatesProvider, *cache.MemoryCache) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDatesProvider(ctrl)
	memory := cache.NewMemoryCache()

	detector := NewDetector(provider, memory, time.Hour).WithClock(func() time.Time {
		return time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	})

	return detector, provider, memory
}

func TestDetector_Detect(t *testing.T) {
	ctx := context.Background()
	detector, provider, _ := newTestDetector(t)

	provider.EXPECT().
		ListDatesWithData(gomock.Any(), "acc-1",
			time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)).
		Return([]string{"2024-01-01", "2024-01-02", "2024-01-05"}, nil).
		Times(1)

	result := detector.Detect(ctx, "acc-1", "2024-01-01", "2024-01-05")
	assert.Equal(t, 60, result.CoveragePercent)
	assert.Equal(t, []domain.DataGap{{DateFrom: "2024-01-03", DateTo: "2024-01-04", Days: 2}}, result.Gaps)

	// segunda chamada vem do cache
	cached := detector.Detect(ctx, "acc-1", "2024-01-01", "2024-01-05")
	assert.Equal(t, result, cached)
}

func TestDetector_DetectLookupFailure(t *testing.T) {
	ctx := context.Background()
	detector, provider, memory := newTestDetector(t)

	provider.EXPECT().
		ListDatesWithData(gomock.Any(), "acc-1", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	result := detector.Detect(ctx, "acc-1", "2024-01-01", "2024-01-05")
	assert.Equal(t, domain.GapDetectionResult{Gaps: []domain.DataGap{}}, result)

	// falhas não são memorizadas
	_, ok, err := memory.Get(ctx, cacheKey("acc-1", "2024-01-01", "2024-01-05", detector.Today()))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDetector_DetectInvalidWindow(t *testing.T) {
	detector, _, _ := newTestDetector(t)

	result := detector.Detect(context.Background(), "acc-1", "2024-01-10", "2024-01-01")
	assert.Equal(t, domain.GapDetectionResult{Gaps: []domain.DataGap{}}, result)
}

func TestDetector_Invalidate(t *testing.T) {
	ctx := context.Background()
	detector, provider, _ := newTestDetector(t)

	provider.EXPECT().
		ListDatesWithData(gomock.Any(), "acc-1", gomock.Any(), gomock.Any()).
		Return([]string{"2024-01-01"}, nil).
		Times(1)
	provider.EXPECT().
		ListDatesWithData(gomock.Any(), "acc-1", gomock.Any(), gomock.Any()).
		Return([]string{"2024-01-01", "2024-01-02"}, nil).
		Times(1)

	first := detector.Detect(ctx, "acc-1", "2024-01-01", "2024-01-02")
	assert.Equal(t, 1, first.DaysMissing)

	require.NoError(t, detector.Invalidate(ctx, "acc-1"))

	second := detector.Detect(ctx, "acc-1", "2024-01-01", "2024-01-02")
	assert.Equal(t, 0, second.DaysMissing)
	assert.Equal(t, 100, second.CoveragePercent)
}
