package topology_loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileFormats(t *testing.T) {
	for _, file := range []string{
		"testdata/test_network.json",
		"testdata/test_network.yaml",
		"testdata/test_network.toml",
	} {
		t.Run(file, func(t *testing.T) {
			topo, err := LoadFile(file)
			require.NoError(t, err)

			assert.Equal(t, 5, topo.NodeCount())
			assert.Equal(t, 5, topo.LinkCount())
			assert.Equal(t, []string{"n2", "n3"}, topo.Neighbors("n1"))
			assert.Equal(t, []string{"n3", "n4"}, topo.Neighbors("n2"))
			assert.Equal(t, []string{"n5"}, topo.Neighbors("n3"))
			assert.True(t, topo.HasResource("n4", "r3"))
			assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, topo.Resources())
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile("testdata/missing.json")
	assert.Error(t, err)

	_, err = Decode([]byte("{}"), ".xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Decode([]byte("{not json"), ".json")
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestBuild(t *testing.T) {
	testCases := []struct {
		name    string
		schema  Schema
		wantErr error
	}{
		{
			name: "valid directed",
			schema: Schema{
				MinNeighbors: 1, MaxNeighbors: 2,
				Edges: [][]string{{"a", "b"}, {"b", "c"}},
			},
		},
		{
			name: "malformed edge",
			schema: Schema{
				MaxNeighbors: 2,
				Edges:        [][]string{{"a"}},
			},
			wantErr: ErrInvalidSchema,
		},
		{
			name: "too many neighbors",
			schema: Schema{
				MinNeighbors: 0, MaxNeighbors: 1,
				Edges: [][]string{{"a", "b"}, {"a", "c"}},
			},
			wantErr: ErrDegreeViolation,
		},
		{
			name: "too few neighbors",
			schema: Schema{
				MinNeighbors: 2, MaxNeighbors: 3,
				Edges: [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}},
			},
			wantErr: ErrDegreeViolation,
		},
		{
			name: "inverted bounds",
			schema: Schema{
				MinNeighbors: 3, MaxNeighbors: 1,
			},
			wantErr: ErrInvalidSchema,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schema := tc.schema
			topo, err := Build(&schema)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, topo)
		})
	}
}

func TestBuildUndirectedAndResourceOnlyNodes(t *testing.T) {
	schema := &Schema{
		MaxNeighbors: 3,
		Undirected:   true,
		Resources:    map[string][]string{"lonely": {"r9"}},
		Edges:        [][]string{{"a", "b"}, {"a", "c"}},
	}
	topo, err := Build(schema)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c"}, topo.Neighbors("a"))
	assert.Equal(t, []string{"a"}, topo.Neighbors("b"))
	assert.True(t, topo.HasResource("lonely", "r9"))
	assert.Empty(t, topo.Neighbors("lonely"))
}
