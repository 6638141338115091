package flowgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/energyflow/flowgraph"
)

// ExampleIndex_Descendants walks everything below a plant.
//
//	  P
//	 / \
//	W1  M3   (M3 is attached straight to the plant)
//	|
//	M1
func ExampleIndex_Descendants() {
	g := flowgraph.New(nil)
	g.Nodes = []flowgraph.Node{
		{ID: "plant_P"}, {ID: "workshop_W1"}, {ID: "machine_M1"}, {ID: "machine_M3"},
	}
	g.Links = []flowgraph.Link{
		{Source: "plant_P", Target: "workshop_W1"},
		{Source: "workshop_W1", Target: "machine_M1"},
		{Source: "plant_P", Target: "machine_M3"},
	}

	ids, err := g.Index().Descendants("plant_P")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(ids, " "))

	// Output:
	// workshop_W1 machine_M1 machine_M3
}
