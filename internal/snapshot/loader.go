package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned when the summary file does not exist.
	ErrNotFound = errors.New("results file not found")
	// ErrMalformed is returned when the summary file is not a valid k6 summary document.
	ErrMalformed = errors.New("could not parse results file")
)

const thresholdsKey = "thresholds"

// Loader loads k6 summary files
type Loader interface {
	Load(path string) (*Snapshot, error)
}

type loader struct {
	log logrus.FieldLogger
}

// NewLoader creates a new snapshot loader
func NewLoader(log logrus.FieldLogger) Loader {
	return &loader{
		log: log.WithField("component", "snapshot_loader"),
	}
}

// Load reads and decodes the summary file at path.
func (l *loader) Load(path string) (*Snapshot, error) {
	l.log.WithField("path", path).Debug("loading summary file")

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	snap, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	snap.Path = path

	l.log.WithFields(logrus.Fields{
		"metrics":    len(snap.metrics),
		"groups":     len(snap.groups),
		"thresholds": len(snap.thresholds),
	}).Debug("loaded summary file")

	return snap, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

type document struct {
	Metrics   map[string]map[string]json.RawMessage `json:"metrics"`
	RootGroup *struct {
		Groups json.RawMessage `json:"groups"`
	} `json:"root_group"`
}

type groupDoc struct {
	Name   string          `json:"name"`
	Checks json.RawMessage `json:"checks"`
}

type checkDoc struct {
	Name   string  `json:"name"`
	Passes float64 `json:"passes"`
	Fails  float64 `json:"fails"`
}

// Parse decodes a summary document. Any decoding failure wraps ErrMalformed.
func Parse(data []byte) (*Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	snap := &Snapshot{
		metrics: make(map[string]Metric, len(doc.Metrics)),
	}

	for name, raw := range doc.Metrics {
		snap.metrics[name] = decodeMetric(name, raw, snap)
	}

	sort.Slice(snap.thresholds, func(i, j int) bool {
		a, b := snap.thresholds[i], snap.thresholds[j]
		if a.Metric != b.Metric {
			return a.Metric < b.Metric
		}
		return a.Expression < b.Expression
	})

	if doc.RootGroup != nil {
		groups, err := decodeGroups(doc.RootGroup.Groups)
		if err != nil {
			return nil, fmt.Errorf("%w: root_group.groups: %w", ErrMalformed, err)
		}
		snap.groups = groups
	}

	return snap, nil
}

// decodeMetric keeps numeric statistics and collects thresholds; anything else is ignored.
func decodeMetric(name string, raw map[string]json.RawMessage, snap *Snapshot) Metric {
	metric := make(Metric, len(raw))

	for stat, value := range raw {
		if stat == thresholdsKey {
			var thresholds map[string]bool
			if err := json.Unmarshal(value, &thresholds); err == nil {
				for expr, breached := range thresholds {
					snap.thresholds = append(snap.thresholds, Threshold{
						Metric:     name,
						Expression: expr,
						Breached:   breached,
					})
				}
			}
			continue
		}

		var number float64
		if err := json.Unmarshal(value, &number); err == nil {
			metric[stat] = number
		}
	}

	return metric
}

// decodeGroups accepts both the summary-export mapping form and the
// handleSummary list form of groups.
func decodeGroups(raw json.RawMessage) ([]Group, error) {
	if isNull(raw) {
		return nil, nil
	}

	var byName map[string]groupDoc
	if err := json.Unmarshal(raw, &byName); err == nil {
		groups := make([]Group, 0, len(byName))
		for name, g := range byName {
			checks, err := decodeChecks(g.Checks)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", name, err)
			}
			groups = append(groups, Group{Name: name, Checks: checks})
		}
		sortGroups(groups)
		return groups, nil
	}

	var list []groupDoc
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}

	groups := make([]Group, 0, len(list))
	for _, g := range list {
		checks, err := decodeChecks(g.Checks)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		groups = append(groups, Group{Name: g.Name, Checks: checks})
	}
	sortGroups(groups)

	return groups, nil
}

func decodeChecks(raw json.RawMessage) ([]Check, error) {
	if isNull(raw) {
		return nil, nil
	}

	var byName map[string]checkDoc
	if err := json.Unmarshal(raw, &byName); err == nil {
		checks := make([]Check, 0, len(byName))
		for name, c := range byName {
			checks = append(checks, Check{Name: name, Passes: int64(c.Passes), Fails: int64(c.Fails)})
		}
		sortChecks(checks)
		return checks, nil
	}

	var list []checkDoc
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}

	checks := make([]Check, 0, len(list))
	for _, c := range list {
		checks = append(checks, Check{Name: c.Name, Passes: int64(c.Passes), Fails: int64(c.Fails)})
	}
	sortChecks(checks)

	return checks, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func sortGroups(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
}

func sortChecks(checks []Check) {
	sort.SliceStable(checks, func(i, j int) bool { return checks[i].Name < checks[j].Name })
}
