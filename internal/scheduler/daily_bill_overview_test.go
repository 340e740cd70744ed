package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/apeiros/support-dashboard-api/internal/config"
	"github.com/apeiros/support-dashboard-api/internal/domain"
	"github.com/apeiros/support-dashboard-api/internal/usecases/billing/mocks"
)

func newTestOverviewService(aggregator *mocks.MockAggregator) *DailyBillOverviewService {
	return &DailyBillOverviewService{
		aggregator: aggregator,
		config: config.DailyOverview{
			CronSchedule: "0 7 * * *",
			Enabled:      true,
		},
	}
}

func TestRunOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := mocks.NewMockAggregator(ctrl)
	service := newTestOverviewService(aggregator)

	aggregator.EXPECT().
		CountBillsInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, start, end time.Time, _ *string) (*domain.BillCountReport, error) {
			// A janela cobre o dia anterior inteiro
			yesterday := time.Now().AddDate(0, 0, -1)
			assert.Equal(t, yesterday.Day(), start.Day())
			assert.Equal(t, 0, start.Hour())
			assert.Equal(t, 23, end.Hour())
			assert.Equal(t, 59, end.Minute())

			return &domain.BillCountReport{
				PerStore: []domain.StoreBillCount{
					{StoreName: "HP World Panvel", BillCount: 12},
				},
				TotalDistinctBills: 12,
			}, nil
		})

	err := service.RunOverview(context.Background())

	require.NoError(t, err)
	assert.False(t, service.runRunning)
	assert.False(t, service.lastRunStartedAt.IsZero())
	assert.False(t, service.lastRunEndedAt.IsZero())
}

func TestRunOverview_AggregationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := mocks.NewMockAggregator(ctrl)
	service := newTestOverviewService(aggregator)

	aggregator.EXPECT().
		CountBillsInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("no reachable servers"))

	err := service.RunOverview(context.Background())

	assert.Error(t, err)
	assert.False(t, service.runRunning)
}

func TestRunOverview_SkipsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := mocks.NewMockAggregator(ctrl)
	service := newTestOverviewService(aggregator)

	// Rodada já em andamento: nada é consultado
	service.runRunning = true

	err := service.RunOverview(context.Background())

	require.NoError(t, err)
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := mocks.NewMockAggregator(ctrl)
	service := newTestOverviewService(aggregator)

	status := service.GetStatus()

	assert.Equal(t, true, status["run_enabled"])
	assert.Equal(t, "0 7 * * *", status["run_cron"])
	assert.Equal(t, false, status["run_running"])
}
