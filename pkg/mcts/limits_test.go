package mcts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimitsBuilders(t *testing.T) {
	l := DefaultLimits().SetBudget(2 * time.Second).SetMaxCycles(100)
	require.Equal(t, 2*time.Second, l.Budget)
	require.Equal(t, 100, l.MaxCycles)
}

func TestDefaultLimitsHasNoCycleCap(t *testing.T) {
	l := DefaultLimits()
	require.Equal(t, 0, l.MaxCycles)
	require.Equal(t, time.Second, l.Budget)
}
