// Package registry maps day numbers to their puzzle solutions.
package registry

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Solver computes one part's answer from the whole input text.
type Solver func(input string) (string, error)

// Part is one labelled half of a day.
type Part struct {
	Label  string `json:"label"`
	Solver Solver `json:"-"`
}

// Solution is a day's input file and its two parts. Either part may be nil.
type Solution struct {
	Day   int    `json:"day"`
	Title string `json:"title,omitempty"`
	Input string `json:"input"`
	One   *Part  `json:"one,omitempty"`
	Two   *Part  `json:"two,omitempty"`
}

// Registry is an explicit day table.
type Registry struct {
	days map[int]*Solution
}

// New builds a registry from solutions. Days must be positive and unique.
func New(solutions ...*Solution) (*Registry, error) {
	r := &Registry{days: make(map[int]*Solution, len(solutions))}
	for _, s := range solutions {
		if s.Day < 1 {
			return nil, fmt.Errorf("invalid day %d", s.Day)
		}
		if _, dup := r.days[s.Day]; dup {
			return nil, fmt.Errorf("duplicate day %d", s.Day)
		}
		r.days[s.Day] = s
	}
	return r, nil
}

// Get returns the solution registered for day.
func (r *Registry) Get(day int) (*Solution, bool) {
	s, ok := r.days[day]
	return s, ok
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.days))
	for d := range r.days {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Solutions returns the registered solutions ordered by day.
func (r *Registry) Solutions() []*Solution {
	out := make([]*Solution, 0, len(r.days))
	for _, d := range r.Days() {
		out = append(out, r.days[d])
	}
	return out
}

var (
	// builtin holds the embedded registry loaded once per process
	builtin     *Registry
	builtinErr  error
	builtinOnce sync.Once
)

// Builtin returns the embedded day table (cached).
func Builtin() (*Registry, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = loadFS(builtinDaysFS)
	})
	return builtin, builtinErr
}

// Load parses a day table from YAML bytes.
func Load(data []byte) (*Registry, error) {
	var file yamlDaysFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Days) == 0 {
		return nil, fmt.Errorf("no days found in YAML")
	}
	solutions, err := convertYAMLDays(file.Days)
	if err != nil {
		return nil, err
	}
	return New(solutions...)
}

// LoadFile loads a day table from a YAML file path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Load(data)
}

func loadFS(fsys fs.FS) (*Registry, error) {
	var all []yamlDay

	err := fs.WalkDir(fsys, "days", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var file yamlDaysFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		all = append(all, file.Days...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	solutions, err := convertYAMLDays(all)
	if err != nil {
		return nil, err
	}
	return New(solutions...)
}

func convertYAMLDays(days []yamlDay) ([]*Solution, error) {
	out := make([]*Solution, 0, len(days))
	for _, yd := range days {
		if yd.Input == "" {
			return nil, fmt.Errorf("day %d: input is required", yd.Day)
		}
		one, err := convertYAMLPart(yd.One)
		if err != nil {
			return nil, fmt.Errorf("day %d part 1: %w", yd.Day, err)
		}
		two, err := convertYAMLPart(yd.Two)
		if err != nil {
			return nil, fmt.Errorf("day %d part 2: %w", yd.Day, err)
		}
		out = append(out, &Solution{
			Day:   yd.Day,
			Title: yd.Title,
			Input: yd.Input,
			One:   one,
			Two:   two,
		})
	}
	return out, nil
}

func convertYAMLPart(yp *yamlPart) (*Part, error) {
	if yp == nil {
		return nil, nil
	}
	solver, ok := LookupSolver(yp.Solver)
	if !ok {
		return nil, fmt.Errorf("unknown solver %q", yp.Solver)
	}
	return &Part{Label: yp.Label, Solver: solver}, nil
}
