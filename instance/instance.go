package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/spbench/core"
)

// Meta carries the endpoints and the declared sizes of an instance.
// TotalNodes and TotalEdges are informational; they are not checked against
// the graph.
type Meta struct {
	StartNode  string
	EndNode    string
	TotalNodes int
	TotalEdges int
}

// Instance is one benchmark input.
type Instance struct {
	// Name identifies the instance in reports: the file name when loaded
	// from disk, otherwise whatever the producer set.
	Name    string
	Project string
	GroupID string
	Meta    Meta
	Graph   *core.Graph
}

// Start returns the start node ID.
func (i *Instance) Start() string { return i.Meta.StartNode }

// End returns the end node ID.
func (i *Instance) End() string { return i.Meta.EndNode }

// Load reads and decodes the instance at path. The returned instance is named
// after the file.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	inst, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("instance: %s: %w", filepath.Base(path), err)
	}
	inst.Name = filepath.Base(path)

	return inst, nil
}

// Decode parses an instance document. Every structural problem is collected
// and returned at once, wrapped in ErrMalformed.
func Decode(data []byte) (*Instance, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformed)
	}

	var errs *multierror.Error
	inst := &Instance{
		Project: root.Get("project").String(),
		GroupID: root.Get("group_id").String(),
	}

	meta := root.Get("meta")
	if !meta.IsObject() {
		errs = multierror.Append(errs, fmt.Errorf("meta: missing or not an object"))
	} else {
		var err error
		if inst.Meta.StartNode, err = nodeID(meta.Get("start_node")); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("meta.start_node: %w", err))
		}
		if inst.Meta.EndNode, err = nodeID(meta.Get("end_node")); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("meta.end_node: %w", err))
		}
		inst.Meta.TotalNodes = int(meta.Get("total_nodes").Int())
		inst.Meta.TotalEdges = int(meta.Get("total_edges").Int())
	}

	adj := root.Get("graph")
	if !adj.IsObject() {
		errs = multierror.Append(errs, fmt.Errorf("graph: missing or not an object"))
	} else {
		g, gErrs := decodeGraph(adj)
		errs = multierror.Append(errs, gErrs...)
		inst.Graph = g
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return inst, nil
}

// decodeGraph walks the adjacency object in document order.
func decodeGraph(adj gjson.Result) (*core.Graph, []error) {
	g := core.NewGraph(core.WithLoops())
	var errs []error

	adj.ForEach(func(key, inner gjson.Result) bool {
		from := key.String()
		if err := g.AddNode(from); err != nil {
			errs = append(errs, fmt.Errorf("graph[%q]: %w", from, err))
			return true
		}
		if !inner.IsObject() {
			errs = append(errs, fmt.Errorf("graph[%q]: adjacency is not an object", from))
			return true
		}
		inner.ForEach(func(to, w gjson.Result) bool {
			if w.Type != gjson.Number {
				errs = append(errs, fmt.Errorf("graph[%q][%q]: weight %s is not a number", from, to.String(), w.Raw))
				return true
			}
			if err := g.AddArc(from, to.String(), w.Float()); err != nil {
				errs = append(errs, fmt.Errorf("graph[%q][%q]: %w", from, to.String(), err))
			}
			return true
		})
		return true
	})

	return g, errs
}

// nodeID normalizes a start/end identifier given as a JSON string or number.
func nodeID(r gjson.Result) (string, error) {
	switch r.Type {
	case gjson.String, gjson.Number:
		if id := r.String(); id != "" {
			return id, nil
		}
		return "", core.ErrEmptyNodeID
	case gjson.Null:
		if !r.Exists() {
			return "", fmt.Errorf("missing")
		}
		return "", fmt.Errorf("is null")
	default:
		return "", fmt.Errorf("must be a string or a number, got %s", r.Raw)
	}
}

// Dir lists the *.json files in dir, sorted by name.
func Dir(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("instance: list %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInstances, dir)
	}
	sort.Strings(paths)

	return paths, nil
}
