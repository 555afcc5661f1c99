package topology_loader

import (
	"fmt"
	"math"
)

// hexDirections are the six axial-coordinate neighbor offsets.
var hexDirections = [6][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, -1}, {-1, 1}}

type axial struct {
	q, r int
}

// GenerateHexagonal lays numNodes nodes (n1, n2, ...) on an axial hex grid,
// links every pair of adjacent cells in both directions and deals
// numResources resources (r1, r2, ...) out in order, the remainder going to
// the first nodes.
func GenerateHexagonal(numNodes, numResources int) *Schema {
	if numNodes < 0 {
		numNodes = 0
	}
	if numResources < 0 {
		numResources = 0
	}
	schema := &Schema{
		NumNodes:     numNodes,
		MinNeighbors: 0,
		MaxNeighbors: len(hexDirections),
		Resources:    make(map[string][]string, numNodes),
		Edges:        [][]string{},
		Undirected:   true,
	}
	if numNodes == 0 {
		return schema
	}

	gridSize := int(math.Ceil(math.Sqrt(float64(numNodes))))
	ids := make([]string, 0, numNodes)
	coords := make([]axial, 0, numNodes)
	byCoord := make(map[axial]string, numNodes)
	for q := -gridSize; q <= gridSize; q++ {
		for r := -gridSize; r <= gridSize; r++ {
			if len(ids) == numNodes || abs(q+r) > gridSize {
				continue
			}
			id := fmt.Sprintf("n%d", len(ids)+1)
			ids = append(ids, id)
			coords = append(coords, axial{q, r})
			byCoord[axial{q, r}] = id
		}
	}

	linked := make(map[[2]string]struct{})
	for i, id := range ids {
		for _, dir := range hexDirections {
			neighbor, exists := byCoord[axial{coords[i].q + dir[0], coords[i].r + dir[1]}]
			if !exists {
				continue
			}
			edge := [2]string{id, neighbor}
			if neighbor < id {
				edge = [2]string{neighbor, id}
			}
			if _, dup := linked[edge]; dup {
				continue
			}
			linked[edge] = struct{}{}
			schema.Edges = append(schema.Edges, []string{edge[0], edge[1]})
		}
	}

	perNode := numResources / numNodes
	extra := numResources % numNodes
	next := 1
	for i, id := range ids {
		count := perNode
		if i < extra {
			count++
		}
		resources := make([]string, 0, count)
		for j := 0; j < count; j++ {
			resources = append(resources, fmt.Sprintf("r%d", next))
			next++
		}
		schema.Resources[id] = resources
	}
	return schema
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
