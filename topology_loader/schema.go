package topology_loader

// Schema is the serialized overlay description:
//
//	{
//	  "num_nodes": 5,
//	  "min_neighbors": 0,
//	  "max_neighbors": 3,
//	  "resources": {"n2": ["r1"]},
//	  "edges": [["n1", "n2"]]
//	}
type Schema struct {
	NumNodes     int                 `json:"num_nodes" yaml:"num_nodes" toml:"num_nodes"`
	MinNeighbors int                 `json:"min_neighbors" yaml:"min_neighbors" toml:"min_neighbors"`
	MaxNeighbors int                 `json:"max_neighbors" yaml:"max_neighbors" toml:"max_neighbors"`
	Resources    map[string][]string `json:"resources" yaml:"resources" toml:"resources"`
	Edges        [][]string          `json:"edges" yaml:"edges" toml:"edges"`
	// Undirected also links the second endpoint of every edge back to the first.
	Undirected bool `json:"undirected,omitempty" yaml:"undirected,omitempty" toml:"undirected,omitempty"`
}
