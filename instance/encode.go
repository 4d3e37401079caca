package instance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/spbench/core"
)

// Encode writes inst as an indented JSON document. Outer graph keys follow
// Graph.Sources() order and inner keys are sorted, so Decode(Encode(x))
// reproduces the same source order. Zero TotalNodes/TotalEdges are filled
// from the graph.
func Encode(w io.Writer, inst *Instance) error {
	if inst == nil || inst.Graph == nil {
		return fmt.Errorf("instance: encode: %w", ErrEmptyGraph)
	}
	meta := inst.Meta
	if meta.TotalNodes == 0 {
		meta.TotalNodes = inst.Graph.NodeCount()
	}
	if meta.TotalEdges == 0 {
		meta.TotalEdges = inst.Graph.ArcCount()
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	writeField(&buf, "project", inst.Project)
	buf.WriteByte(',')
	writeField(&buf, "group_id", inst.GroupID)
	buf.WriteString(`,"meta":{`)
	writeField(&buf, "start_node", meta.StartNode)
	buf.WriteByte(',')
	writeField(&buf, "end_node", meta.EndNode)
	buf.WriteByte(',')
	writeField(&buf, "total_nodes", meta.TotalNodes)
	buf.WriteByte(',')
	writeField(&buf, "total_edges", meta.TotalEdges)
	buf.WriteString(`},"graph":`)
	writeGraph(&buf, inst.Graph)
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("instance: encode: %w", err)
	}
	out.WriteByte('\n')
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("instance: encode: %w", err)
	}

	return nil
}

// Save encodes inst into the file at path, creating or truncating it.
func Save(path string, inst *Instance) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("instance: save %s: %w", path, cerr)
		}
	}()

	return Encode(f, inst)
}

func writeGraph(buf *bytes.Buffer, g *core.Graph) {
	buf.WriteByte('{')
	for i, from := range g.Sources() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeKey(buf, from)
		buf.WriteByte('{')
		for j, a := range g.Neighbors(from) {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeField(buf, a.To, a.Weight)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
}

// writeField emits "key":value. Values are strings, ints or finite floats,
// none of which json.Marshal can reject.
func writeField(buf *bytes.Buffer, key string, v any) {
	writeKey(buf, key)
	b, _ := json.Marshal(v)
	buf.Write(b)
}

func writeKey(buf *bytes.Buffer, key string) {
	b, _ := json.Marshal(key)
	buf.Write(b)
	buf.WriteByte(':')
}
