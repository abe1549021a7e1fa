package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"yatra/backend/internal/scheduler"
	"yatra/backend/internal/service/mock"
)

func TestScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaintenance := mock.NewMockMaintenanceService(ctrl)

	var sweeps atomic.Int32
	mockMaintenance.EXPECT().
		Sweep(gomock.Any()).
		Do(func(any) { sweeps.Add(1) }).
		AnyTimes()

	s := scheduler.New(mockMaintenance, 100*time.Millisecond)
	s.Start()

	// Let it run for a bit
	time.Sleep(250 * time.Millisecond)

	s.Stop()
	require.GreaterOrEqual(t, sweeps.Load(), int32(2), "one sweep on start plus at least one tick")
}

func TestScheduler_StopWithoutTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaintenance := mock.NewMockMaintenanceService(ctrl)
	mockMaintenance.EXPECT().Sweep(gomock.Any()).AnyTimes()

	s := scheduler.New(mockMaintenance, time.Hour)
	s.Start()
	s.Stop() // must not deadlock waiting for the first tick
}
