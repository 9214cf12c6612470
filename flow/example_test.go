package flow_test

import (
	"fmt"

	"github.com/khalidsaidi/topoloom/flow"
)

// ExampleMinCostFlow routes 5 units from node 0 to node 1 along a single
// arc of capacity 10 at cost 2 per unit.
func ExampleMinCostFlow() {
	r, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: 2,
		Demands:   []int64{5, -5},
		Arcs:      []flow.Arc{{From: 0, To: 1, Upper: 10, Cost: 2}},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Feasible, r.FlowByArc[0], r.TotalCost)
	// Output: true 5 10
}

// ExampleDinic computes the max flow of a diamond network.
func ExampleDinic() {
	nw := flow.NewNetwork(4)
	nw.AddArc(0, 1, 3, 0)
	nw.AddArc(0, 2, 2, 0)
	nw.AddArc(1, 3, 2, 0)
	nw.AddArc(2, 3, 3, 0)

	maxFlow, err := flow.Dinic(nw, 0, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(maxFlow)
	// Output: 4
}
