package builder_test

import (
	"fmt"

	"github.com/katalvlaran/subway/builder"
	"github.com/katalvlaran/subway/domain"
)

func ExampleNetworkGraph() {
	stations := []domain.Station{{ID: 1, Name: "Gangnam"}, {ID: 2, Name: "Yeoksam"}, {ID: 3, Name: "Seolleung"}}
	sections := []domain.Section{
		{ID: 1, LineID: 2, SectionEdge: domain.SectionEdge{UpStationID: 1, DownStationID: 2, Distance: 5}},
		{ID: 2, LineID: 2, SectionEdge: domain.SectionEdge{UpStationID: 2, DownStationID: 3, Distance: 4}},
	}

	g, err := builder.NetworkGraph(stations, sections)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output: 3 2
}
