package topology_loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"discovery/common"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadFile reads a schema from path, choosing the decoder by extension,
// and builds the validated Topology.
func LoadFile(path string) (*common.Topology, error) {
	schema, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	topology, err := Build(schema)
	if err != nil {
		return nil, fmt.Errorf("build topology from %s: %w", path, err)
	}
	log.Infof("LoadFile, file: %s, node num: %d, link num: %d", path, topology.NodeCount(), topology.LinkCount())
	return topology, nil
}

func DecodeFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topology file %s: %w", path, err)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses data according to ext (".json", ".yaml", ".yml" or ".toml").
func Decode(data []byte, ext string) (*Schema, error) {
	var schema Schema
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(data, &schema)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &schema)
	case ".toml":
		_, err = toml.Decode(string(data), &schema)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return &schema, nil
}

// Build constructs the Topology described by schema. Edges are applied in
// listed order, which fixes every node's neighbor order.
func Build(schema *Schema) (*common.Topology, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrInvalidSchema)
	}
	if schema.MinNeighbors < 0 || (schema.MaxNeighbors > 0 && schema.MinNeighbors > schema.MaxNeighbors) {
		return nil, fmt.Errorf("%w: min_neighbors=%d max_neighbors=%d",
			ErrInvalidSchema, schema.MinNeighbors, schema.MaxNeighbors)
	}

	topology := common.NewTopology()
	for i, edge := range schema.Edges {
		if len(edge) != 2 || edge[0] == "" || edge[1] == "" {
			return nil, fmt.Errorf("%w: edge %d %v must name two nodes", ErrInvalidSchema, i, edge)
		}
		if edge[0] == edge[1] {
			log.Warnf("Build: ignoring self loop on %s", edge[0])
			continue
		}
		topology.AddLink(edge[0], edge[1])
		if schema.Undirected {
			topology.AddLink(edge[1], edge[0])
		}
	}
	for nodeID, resources := range schema.Resources {
		topology.AddNode(nodeID, resources...)
	}

	if err := validateDegrees(topology, schema); err != nil {
		return nil, err
	}
	if schema.NumNodes > 0 && schema.NumNodes != topology.NodeCount() {
		log.Warnf("Build: num_nodes=%d but schema describes %d nodes", schema.NumNodes, topology.NodeCount())
	}
	return topology, nil
}

// validateDegrees checks every node that forwards to at least one neighbor
// against the schema's degree bounds. A zero max_neighbors means unbounded.
func validateDegrees(topology *common.Topology, schema *Schema) error {
	var violations []string
	for _, id := range topology.NodeIDs() {
		degree := len(topology.Neighbors(id))
		if degree == 0 {
			continue
		}
		if degree < schema.MinNeighbors {
			violations = append(violations, fmt.Sprintf("node %s has less than min_neighbors (%d)", id, schema.MinNeighbors))
		}
		if schema.MaxNeighbors > 0 && degree > schema.MaxNeighbors {
			violations = append(violations, fmt.Sprintf("node %s has more than max_neighbors (%d)", id, schema.MaxNeighbors))
		}
	}
	if len(violations) > 0 {
		sort.Strings(violations)
		return fmt.Errorf("%w: %s", ErrDegreeViolation, strings.Join(violations, "; "))
	}
	return nil
}
