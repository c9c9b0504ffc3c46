package fbx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

func Save(doc *Document, path string) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return Write(w, doc)
}

// Write writes doc as ascii FBX 7.4.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "; FBX 7.4.0 project file")
	fmt.Fprintln(bw, "; Generator: dtsconv")
	fmt.Fprintln(bw, "; ----------------------------------------------------")
	fmt.Fprintln(bw)

	header := NewNode("FBXHeaderExtension")
	header.AddChild(NewNode("FBXHeaderVersion", int32(1003)))
	header.AddChild(NewNode("FBXVersion", int32(7400)))
	header.AddChild(NewNode("Creator", doc.Creator))
	dumpNode(bw, header, 0)

	if doc.GlobalSettings != nil {
		dumpNode(bw, doc.GlobalSettings.Node, 0)
	}

	documents := NewNode("Documents")
	documents.AddChild(NewNode("Count", int32(1)))
	scene := documents.AddChild(NewNode("Document", int64(firstObjectID-1), "Scene", "Scene"))
	props := scene.AddChild(NewNode("Properties70"))
	props.AddChild(NewNode("P", "SourceObject", "object", "", ""))
	props.AddChild(NewNode("P", "ActiveAnimStackName", "KString", "", "", activeStackName(doc)))
	scene.AddChild(NewNode("RootNode", int64(0)))
	dumpNode(bw, documents, 0)
	dumpNode(bw, NewNode("References"), 0)

	dumpNode(bw, definitions(doc), 0)

	objects := NewNode("Objects")
	for _, o := range doc.Objects {
		objects.Children = append(objects.Children, o.GetNode())
	}
	dumpNode(bw, objects, 0)

	connections := NewNode("Connections")
	for _, c := range doc.Connections {
		if c.Type == "OP" {
			connections.AddChild(NewNode("C", c.Type, c.From, c.To, c.Prop))
		} else {
			connections.AddChild(NewNode("C", c.Type, c.From, c.To))
		}
	}
	dumpNode(bw, connections, 0)
	return bw.Flush()
}

func activeStackName(doc *Document) string {
	if stacks := doc.AnimStacks(); len(stacks) > 0 {
		return stacks[0].Name()
	}
	return ""
}

func definitions(doc *Document) *Node {
	counts := map[string]int{}
	for _, o := range doc.Objects {
		counts[o.NodeName()]++
	}
	var names []string
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := NewNode("Definitions")
	defs.AddChild(NewNode("Version", int32(100)))
	defs.AddChild(NewNode("Count", int32(len(doc.Objects)+1)))
	gs := defs.AddChild(NewNode("ObjectType", "GlobalSettings"))
	gs.AddChild(NewNode("Count", int32(1)))
	for _, name := range names {
		t := defs.AddChild(NewNode("ObjectType", name))
		t.AddChild(NewNode("Count", int32(counts[name])))
	}
	return defs
}

func dumpNode(w io.Writer, n *Node, d int) {
	indent := strings.Repeat("\t", d)
	fmt.Fprint(w, indent, n.Name, ": ")
	for i, a := range n.Attributes {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		if a.ArraySize > 0 || isArray(a.Value) {
			fmt.Fprintf(w, "*%d {\n%s\ta: %s\n%s}", arrayLen(a.Value), indent, formatArray(a.Value), indent)
		} else {
			fmt.Fprint(w, formatValue(a.Value))
		}
	}
	if len(n.Children) > 0 || len(n.Attributes) == 0 {
		fmt.Fprintln(w, " {")
		for _, c := range n.Children {
			dumpNode(w, c, d+1)
		}
		fmt.Fprintln(w, indent+"}")
	} else {
		fmt.Fprintln(w)
	}
}

func isArray(v interface{}) bool {
	switch v.(type) {
	case []int32, []int64, []float32, []float64, []bool:
		return true
	}
	return false
}

func arrayLen(v interface{}) int {
	switch a := v.(type) {
	case []int32:
		return len(a)
	case []int64:
		return len(a)
	case []float32:
		return len(a)
	case []float64:
		return len(a)
	case []bool:
		return len(a)
	}
	return 0
}

func formatArray(v interface{}) string {
	var s []string
	switch a := v.(type) {
	case []int32:
		for _, e := range a {
			s = append(s, strconv.FormatInt(int64(e), 10))
		}
	case []int64:
		for _, e := range a {
			s = append(s, strconv.FormatInt(e, 10))
		}
	case []float32:
		for _, e := range a {
			s = append(s, formatFloat(float64(e), 32))
		}
	case []float64:
		for _, e := range a {
			s = append(s, formatFloat(e, 64))
		}
	case []bool:
		for _, e := range a {
			if e {
				s = append(s, "1")
			} else {
				s = append(s, "0")
			}
		}
	}
	return strings.Join(s, ",")
}

// formatFloat always emits a decimal point so the value reads back as a float.
func formatFloat(v float64, bitSize int) string {
	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatValue(v interface{}) string {
	switch a := v.(type) {
	case string:
		return quote(a)
	case []byte:
		return quote(string(a))
	case float32:
		return formatFloat(float64(a), 32)
	case float64:
		return formatFloat(a, 64)
	case bool:
		if a {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(a)
	}
}

// quote converts "name\x00\x01Class" to "Class::name".
func quote(s string) string {
	if i := strings.Index(s, "\x00\x01"); i >= 0 {
		s = s[i+2:] + "::" + s[:i]
	}
	return "\"" + strings.ReplaceAll(s, "\"", "&quot;") + "\""
}
