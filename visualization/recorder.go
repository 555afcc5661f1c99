package visualization

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Recorder keeps every step in memory for later export or playback.
type Recorder struct {
	steps []Step
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordStep(step Step) {
	r.steps = append(r.steps, step)
}

func (r *Recorder) Steps() []Step {
	result := make([]Step, len(r.steps))
	copy(result, r.steps)
	return result
}

func (r *Recorder) Len() int {
	return len(r.steps)
}

func (r *Recorder) Reset() {
	r.steps = nil
}

// Save writes the recorded steps as an indented JSON array.
func (r *Recorder) Save(path string) error {
	data, err := json.MarshalIndent(r.steps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal steps: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write steps file %s: %w", path, err)
	}
	log.Infof("recorded %d steps to %s", len(r.steps), path)
	return nil
}

// Load builds a Recorder from a file written by Save.
func Load(path string) (*Recorder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read steps file %s: %w", path, err)
	}
	var steps []Step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("unmarshal steps file %s: %w", path, err)
	}
	return &Recorder{steps: steps}, nil
}

// Play renders one line per step:
//
//	[003] requester=n1 current=n4 ttl=2 path=n1>n2>n4 visited=n1,n2 FOUND
func (r *Recorder) Play(w io.Writer) error {
	for i, step := range r.steps {
		status := "searching"
		if step.Found {
			status = "FOUND"
		}
		_, err := fmt.Fprintf(w, "[%03d] requester=%s current=%s ttl=%d path=%s visited=%s %s\n",
			i, step.RequesterID, step.CurrentNodeID, step.TTL,
			strings.Join(step.Path, ">"), strings.Join(step.VisitedNodes, ","), status)
		if err != nil {
			return err
		}
	}
	return nil
}
