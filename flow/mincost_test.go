package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/flow"
)

func TestMinCostFlow_SingleArc(t *testing.T) {
	r, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: 2,
		Demands:   []int64{5, -5},
		Arcs:      []flow.Arc{{From: 0, To: 1, Upper: 10, Cost: 2}},
	})
	require.NoError(t, err)
	require.True(t, r.Feasible)
	assert.Equal(t, []int64{5}, r.FlowByArc)
	assert.Equal(t, int64(10), r.TotalCost)
}

func TestMinCostFlow_LowerBound(t *testing.T) {
	r, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: 2,
		Demands:   []int64{3, -3},
		Arcs:      []flow.Arc{{From: 0, To: 1, Lower: 1, Upper: 10, Cost: 2}},
	})
	require.NoError(t, err)
	require.True(t, r.Feasible)
	assert.Equal(t, []int64{3}, r.FlowByArc)
	assert.Equal(t, int64(6), r.TotalCost)
}

func TestMinCostFlow_PrefersCheaperPath(t *testing.T) {
	// Two parallel routes 0->1: direct (cost 5) and via 2 (cost 1+1).
	r, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: 3,
		Demands:   []int64{4, -4, 0},
		Arcs: []flow.Arc{
			{From: 0, To: 1, Upper: 10, Cost: 5},
			{From: 0, To: 2, Upper: 3, Cost: 1},
			{From: 2, To: 1, Upper: 3, Cost: 1},
		},
	})
	require.NoError(t, err)
	require.True(t, r.Feasible)
	// 3 units squeeze through the cheap route, the 4th takes the direct arc.
	assert.Equal(t, []int64{1, 3, 3}, r.FlowByArc)
	assert.Equal(t, int64(5+3*2), r.TotalCost)
}

func TestMinCostFlow_UnbalancedDemands(t *testing.T) {
	r, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: 2,
		Demands:   []int64{5, -4},
		Arcs:      []flow.Arc{{From: 0, To: 1, Upper: 10, Cost: 1}},
	})
	require.NoError(t, err)
	assert.False(t, r.Feasible)
}

func TestMinCostFlow_InsufficientCapacity(t *testing.T) {
	r, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: 2,
		Demands:   []int64{5, -5},
		Arcs:      []flow.Arc{{From: 0, To: 1, Upper: 4, Cost: 1}},
	})
	require.NoError(t, err)
	assert.False(t, r.Feasible)
}

func TestMinCostFlow_UnreachableSink(t *testing.T) {
	r, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: 3,
		Demands:   []int64{2, 0, -2},
		Arcs:      []flow.Arc{{From: 0, To: 1, Upper: 5, Cost: 1}},
	})
	require.NoError(t, err)
	assert.False(t, r.Feasible)
}

func TestMinCostFlow_NegativeCost(t *testing.T) {
	// The negative-cost arc must be saturated even though routing through
	// it is longer hop-wise.
	r, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: 3,
		Demands:   []int64{2, 0, -2},
		Arcs: []flow.Arc{
			{From: 0, To: 2, Upper: 2, Cost: 3},
			{From: 0, To: 1, Upper: 2, Cost: 1},
			{From: 1, To: 2, Upper: 2, Cost: -2},
		},
	})
	require.NoError(t, err)
	require.True(t, r.Feasible)
	assert.Equal(t, []int64{0, 2, 2}, r.FlowByArc)
	assert.Equal(t, int64(-2), r.TotalCost)
}

func TestMinCostFlow_ValidationErrors(t *testing.T) {
	_, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: 2,
		Demands:   []int64{0},
		Arcs:      nil,
	})
	assert.ErrorIs(t, err, flow.ErrBadDemands)

	_, err = flow.MinCostFlow(&flow.Problem{
		NodeCount: 2,
		Demands:   []int64{0, 0},
		Arcs:      []flow.Arc{{From: 0, To: 5, Upper: 1}},
	})
	assert.ErrorIs(t, err, flow.ErrBadNode)

	_, err = flow.MinCostFlow(&flow.Problem{
		NodeCount: 2,
		Demands:   []int64{0, 0},
		Arcs:      []flow.Arc{{From: 0, To: 1, Lower: 3, Upper: 1}},
	})
	assert.ErrorIs(t, err, flow.ErrNegativeCapacity)
}

func TestMinCostFlow_Deterministic(t *testing.T) {
	p := &flow.Problem{
		NodeCount: 4,
		Demands:   []int64{3, 0, 0, -3},
		Arcs: []flow.Arc{
			{From: 0, To: 1, Upper: 2, Cost: 1},
			{From: 0, To: 2, Upper: 2, Cost: 1},
			{From: 1, To: 3, Upper: 2, Cost: 1},
			{From: 2, To: 3, Upper: 2, Cost: 1},
		},
	}
	first, err := flow.MinCostFlow(p)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := flow.MinCostFlow(p)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
