package services_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mark-25-git/business-documents-tool/models"
	"github.com/mark-25-git/business-documents-tool/services"
)

type fakeCounterStore struct {
	state    models.CounterState
	readErr  error
	writeErr error
	writes   int
}

func (s *fakeCounterStore) Read() (models.CounterState, error) {
	if s.readErr != nil {
		return models.CounterState{}, s.readErr
	}
	return s.state, nil
}

func (s *fakeCounterStore) Write(state models.CounterState) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.state = state
	s.writes++
	return nil
}

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 10, 30, 0, 0, time.UTC)
	}
}

func TestMonthKey(t *testing.T) {
	require.Equal(t, "2503", services.MonthKey(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "2512", services.MonthKey(time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)))
	require.Equal(t, "3001", services.MonthKey(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNextSameMonthIncrements(t *testing.T) {
	store := &fakeCounterStore{state: models.CounterState{LastDocMonth: "2503", DocCounter: 7}}
	gen := services.NumberGenerator{Store: store, Now: fixedClock(2025, time.March)}

	num, err := gen.Next()
	require.NoError(t, err)
	require.Equal(t, "2503-008", num)
	require.Equal(t, models.CounterState{LastDocMonth: "2503", DocCounter: 8}, store.state)
	require.Equal(t, 1, store.writes)
}

func TestNextMonthRolloverResets(t *testing.T) {
	store := &fakeCounterStore{state: models.CounterState{LastDocMonth: "2502", DocCounter: 41}}
	gen := services.NumberGenerator{Store: store, Now: fixedClock(2025, time.March)}

	num, err := gen.Next()
	require.NoError(t, err)
	require.Equal(t, "2503-001", num)
	require.Equal(t, models.CounterState{LastDocMonth: "2503", DocCounter: 1}, store.state)
}

func TestNextFreshStateStartsAtOne(t *testing.T) {
	store := &fakeCounterStore{}
	gen := services.NumberGenerator{Store: store, Now: fixedClock(2025, time.March)}

	num, err := gen.Next()
	require.NoError(t, err)
	require.Equal(t, "2503-001", num)
}

func TestNextSequenceIsStrictlyMonotonic(t *testing.T) {
	store := &fakeCounterStore{state: models.CounterState{LastDocMonth: "2503", DocCounter: 0}}
	gen := services.NumberGenerator{Store: store, Now: fixedClock(2025, time.March)}

	for i := 1; i <= 50; i++ {
		num, err := gen.Next()
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("2503-%03d", i), num)
	}
	require.Equal(t, 50, store.state.DocCounter)
}

func TestNextSuffixWidensPast999(t *testing.T) {
	store := &fakeCounterStore{state: models.CounterState{LastDocMonth: "2503", DocCounter: 999}}
	gen := services.NumberGenerator{Store: store, Now: fixedClock(2025, time.March)}

	num, err := gen.Next()
	require.NoError(t, err)
	// Past 999 the suffix grows; unique, no longer fixed-width.
	require.Equal(t, "2503-1000", num)
}

func TestNextReadFailureIssuesNoNumber(t *testing.T) {
	store := &fakeCounterStore{readErr: errors.New("connection reset")}
	gen := services.NumberGenerator{Store: store, Now: fixedClock(2025, time.March)}

	_, err := gen.Next()
	require.Error(t, err)
	require.Zero(t, store.writes)
}

func TestNextWriteFailureIssuesNoNumber(t *testing.T) {
	store := &fakeCounterStore{
		state:    models.CounterState{LastDocMonth: "2503", DocCounter: 7},
		writeErr: errors.New("disk full"),
	}
	gen := services.NumberGenerator{Store: store, Now: fixedClock(2025, time.March)}

	num, err := gen.Next()
	require.Error(t, err)
	require.Empty(t, num)
}

func TestFormatDocNumberPadding(t *testing.T) {
	require.Equal(t, "2503-001", services.FormatDocNumber("2503", 1))
	require.Equal(t, "2503-042", services.FormatDocNumber("2503", 42))
	require.Equal(t, "2503-999", services.FormatDocNumber("2503", 999))
}
