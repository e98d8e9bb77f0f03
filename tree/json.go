package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

var jsonNull = []byte("null")

// jsonFloat64 and jsonFloat32 write NaN and the infinities as null, which
// encoding/json refuses to encode. null decodes back to NaN.
type (
	jsonFloat64 float64
	jsonFloat32 float32
)

func (f jsonFloat64) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return jsonNull, nil
	}
	return json.Marshal(float64(f))
}

func (f *jsonFloat64) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*f = jsonFloat64(math.NaN())
		return nil
	}
	return json.Unmarshal(data, (*float64)(f))
}

func (f jsonFloat32) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return jsonNull, nil
	}
	return json.Marshal(float32(f))
}

func (f *jsonFloat32) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*f = jsonFloat32(math.NaN())
		return nil
	}
	return json.Unmarshal(data, (*float32)(f))
}

type rectJSON struct {
	X0 jsonFloat64 `json:"x0"`
	Y0 jsonFloat64 `json:"y0"`
	X1 jsonFloat64 `json:"x1"`
	Y1 jsonFloat64 `json:"y1"`
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectJSON{jsonFloat64(r.X0), jsonFloat64(r.Y0), jsonFloat64(r.X1), jsonFloat64(r.Y1)})
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	var v rectJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Rect{float64(v.X0), float64(v.Y0), float64(v.X1), float64(v.Y1)}
	return nil
}

func (a Affine) MarshalJSON() ([]byte, error) {
	var v [6]jsonFloat64
	for i, c := range a {
		v[i] = jsonFloat64(c)
	}
	return json.Marshal(v)
}

func (a *Affine) UnmarshalJSON(data []byte) error {
	var v [6]jsonFloat64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	for i, c := range v {
		a[i] = float64(c)
	}
	return nil
}

func float32sJSON(fs []float32) []jsonFloat32 {
	out := make([]jsonFloat32, len(fs))
	for i, f := range fs {
		out[i] = jsonFloat32(f)
	}
	return out
}

// MarshalJSON encodes the node as an object with a fixed key order: role,
// actions, childActions, flags, then properties in id order. Empty sets
// are omitted.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"role":`)
	role, err := json.Marshal(n.role)
	if err != nil {
		return nil, err
	}
	buf.Write(role)

	if n.actions != 0 {
		writeKey(&buf, "actions")
		if err := writeJSON(&buf, n.actions.Actions()); err != nil {
			return nil, err
		}
	}
	if n.childActions != 0 {
		writeKey(&buf, "childActions")
		if err := writeJSON(&buf, n.childActions.Actions()); err != nil {
			return nil, err
		}
	}
	if n.flags != 0 {
		writeKey(&buf, "flags")
		if err := writeJSON(&buf, n.flags.Flags()); err != nil {
			return nil, err
		}
	}
	for _, e := range n.props {
		writeKey(&buf, e.id.String())
		v := e.value
		switch x := v.(type) {
		case []uint8:
			// []uint8 would otherwise encode as base64.
			ints := make([]uint16, len(x))
			for i, b := range x {
				ints[i] = uint16(b)
			}
			v = ints
		case float64:
			v = jsonFloat64(x)
		case []float32:
			v = float32sJSON(x)
		}
		if err := writeJSON(&buf, v); err != nil {
			return nil, fmt.Errorf("property %s: %w", e.id, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) {
	buf.WriteString(`,"`)
	buf.WriteString(key)
	buf.WriteString(`":`)
}

func writeJSON(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// UnmarshalJSON decodes the object produced by MarshalJSON. Unknown keys
// are rejected.
func (n *Node) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*n = Node{}
	for key, raw := range fields {
		switch key {
		case "role":
			if err := json.Unmarshal(raw, &n.role); err != nil {
				return err
			}
		case "actions", "childActions":
			var actions []Action
			if err := json.Unmarshal(raw, &actions); err != nil {
				return err
			}
			set := &n.actions
			if key == "childActions" {
				set = &n.childActions
			}
			for _, a := range actions {
				set.Add(a)
			}
		case "flags":
			var flags []Flag
			if err := json.Unmarshal(raw, &flags); err != nil {
				return err
			}
			for _, f := range flags {
				n.flags.Add(f)
			}
		default:
			id, ok := PropertyByName(key)
			if !ok {
				return fmt.Errorf("unknown node property %q", key)
			}
			v, err := propertyInfos[id].decode(raw)
			if err != nil {
				return fmt.Errorf("property %s: %w", key, err)
			}
			n.set(id, v)
		}
	}
	return nil
}

// MarshalJSON encodes the entry as a two element array [id, node].
func (e NodeEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.ID, e.Node})
}

func (e *NodeEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("node entry: expected 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.ID); err != nil {
		return err
	}
	e.Node = new(Node)
	return json.Unmarshal(pair[1], e.Node)
}

type treeUpdateJSON struct {
	Nodes []NodeEntry `json:"nodes"`
	Tree  *Tree       `json:"tree,omitempty"`
	Focus NodeID      `json:"focus"`
}

// MarshalJSON encodes the update as {"nodes":[...],"tree":{...},"focus":id}.
func (u *TreeUpdate) MarshalJSON() ([]byte, error) {
	nodes := u.Nodes
	if nodes == nil {
		nodes = []NodeEntry{}
	}
	return json.Marshal(treeUpdateJSON{Nodes: nodes, Tree: u.Tree, Focus: u.Focus})
}

func (u *TreeUpdate) UnmarshalJSON(data []byte) error {
	var v treeUpdateJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*u = TreeUpdate(v)
	return nil
}
