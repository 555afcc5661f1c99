package visualization

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSteps() []Step {
	return []Step{
		{RequesterID: "n1", CurrentNodeID: "n1", VisitedNodes: []string{"n1"}, Path: []string{"n1"}, TTL: 2},
		{RequesterID: "n1", CurrentNodeID: "n2", VisitedNodes: []string{"n1"}, Path: []string{"n1", "n2"}, Found: true, TTL: 1},
	}
}

func TestRecorderSaveLoad(t *testing.T) {
	rec := NewRecorder()
	for _, step := range sampleSteps() {
		rec.RecordStep(step)
	}
	require.Equal(t, 2, rec.Len())

	path := filepath.Join(t.TempDir(), "steps.json")
	require.NoError(t, rec.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Steps(), loaded.Steps())

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
}

func TestRecorderPlay(t *testing.T) {
	rec := NewRecorder()
	for _, step := range sampleSteps() {
		rec.RecordStep(step)
	}

	var buf bytes.Buffer
	require.NoError(t, rec.Play(&buf))

	out := buf.String()
	assert.Contains(t, out, "[000] requester=n1 current=n1 ttl=2 path=n1 visited=n1 searching")
	assert.Contains(t, out, "[001] requester=n1 current=n2 ttl=1 path=n1>n2 visited=n1 FOUND")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
