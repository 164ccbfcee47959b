package pipeline

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ManifestFile is written to the sample directory after every run.
const ManifestFile string = "manifest.yaml"

// Stage records one step of a run.
type Stage struct {
	Name     string        `yaml:"name"`
	Commands []string      `yaml:"commands,omitempty"`
	Outputs  []string      `yaml:"outputs,omitempty"`
	Skipped  string        `yaml:"skipped,omitempty"` // reason the stage did not run
	Duration time.Duration `yaml:"duration"`
	Error    string        `yaml:"error,omitempty"`
}

// Manifest describes a pipeline run.
type Manifest struct {
	RunId     string  `yaml:"runId"`
	SampleDir string  `yaml:"sampleDir"`
	Started   string  `yaml:"started"`
	Stages    []Stage `yaml:"stages"`
}

func newManifest(sampleDir string) *Manifest {
	return &Manifest{
		RunId:     uuid.New().String(),
		SampleDir: sampleDir,
		Started:   time.Now().Format(time.RFC3339),
	}
}

// run executes fn as the stage called name and records it.
func (m *Manifest) run(name string, fn func(s *Stage) error) error {
	s := Stage{Name: name}
	log.Printf("stage %s: starting\n", name)
	start := time.Now()
	err := fn(&s)
	s.Duration = time.Since(start).Round(time.Millisecond)
	if err != nil {
		s.Error = err.Error()
	}
	m.Stages = append(m.Stages, s)
	switch {
	case err != nil:
		log.Printf("stage %s: failed after %s\n", name, s.Duration)
	case s.Skipped != "":
		log.Printf("stage %s: skipped (%s)\n", name, s.Skipped)
	default:
		log.Printf("stage %s: done in %s\n", name, s.Duration)
	}
	return errors.Wrapf(err, "stage %s", name)
}

// skip records a stage that does not run.
func (m *Manifest) skip(name, reason string) {
	_ = m.run(name, func(s *Stage) error {
		s.Skipped = reason
		return nil
	})
}

// Stage returns the named stage, or false when it is not part of the manifest.
func (m *Manifest) Stage(name string) (Stage, bool) {
	for i := range m.Stages {
		if m.Stages[i].Name == name {
			return m.Stages[i], true
		}
	}
	return Stage{}, false
}

// Write saves the manifest as yaml.
func (m *Manifest) Write(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "could not encode manifest")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "could not write manifest")
}

// ReadManifest reads a manifest written by Run.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read manifest")
	}
	m := new(Manifest)
	if err = yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, "could not parse manifest %s", path)
	}
	return m, nil
}
