package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"breachwatch/internal/monitor"
	mockmonitor "breachwatch/internal/monitor/mock"
	"breachwatch/internal/worker"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/logger"
	mockstorage "breachwatch/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64) *river.Job[monitor.RecheckArgs] {
	return &river.Job[monitor.RecheckArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   monitor.RecheckArgs{},
	}
}

func staleItem(value string) domain.MonitoredItem {
	return domain.MonitoredItem{
		ID:    domain.ItemID(uuid.New()),
		Kind:  domain.ItemKindEmail,
		Value: value,
	}
}

func TestRecheckWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	m := mockmonitor.NewMockMonitor(ctrl)
	w := worker.NewRecheckWorker(m, st, 24*time.Hour, 100)

	items := []domain.MonitoredItem{staleItem("a@example.com"), staleItem("b@example.com")}
	st.EXPECT().StaleItems(gomock.Any(), gomock.Any(), uint(100)).DoAndReturn(
		func(_ context.Context, cutoff time.Time, _ uint) ([]domain.MonitoredItem, error) {
			require.WithinDuration(t, time.Now().Add(-24*time.Hour), cutoff, time.Minute)

			return items, nil
		},
	)
	m.EXPECT().Scan(gomock.Any(), &items[0]).Return(1, nil)
	m.EXPECT().Scan(gomock.Any(), &items[1]).Return(0, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1)))
}

func TestRecheckWorker_Work_ItemFailureDoesNotAbort(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	m := mockmonitor.NewMockMonitor(ctrl)
	w := worker.NewRecheckWorker(m, st, time.Hour, 10)

	items := []domain.MonitoredItem{staleItem("a@example.com"), staleItem("b@example.com")}
	st.EXPECT().StaleItems(gomock.Any(), gomock.Any(), uint(10)).Return(items, nil)
	m.EXPECT().Scan(gomock.Any(), &items[0]).Return(0, errors.New("db down"))
	m.EXPECT().Scan(gomock.Any(), &items[1]).Return(2, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(2)))
}

func TestRecheckWorker_Work_StorageFailureFailsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	m := mockmonitor.NewMockMonitor(ctrl)
	w := worker.NewRecheckWorker(m, st, time.Hour, 10)

	st.EXPECT().StaleItems(gomock.Any(), gomock.Any(), uint(10)).Return(nil, errors.New("db down"))

	require.Error(t, w.Work(context.Background(), makeJob(3)))
}
