package gexf

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/graphlens/graphlens/pkg/errors"
	"github.com/graphlens/graphlens/pkg/graph"
)

// Attribute value types declared in GEXF attribute definitions.
const (
	typeInteger = "integer"
	typeLong    = "long"
	typeFloat   = "float"
	typeDouble  = "double"
	typeBoolean = "boolean"
)

// document mirrors the GEXF XML structure. Namespaces vary across GEXF
// versions (1.1draft, 1.2draft, 1.3), so local element names are matched
// without a namespace qualifier.
type document struct {
	XMLName xml.Name `xml:"gexf"`
	Graph   struct {
		Attributes []struct {
			Class string `xml:"class,attr"`
			Attrs []struct {
				ID    string `xml:"id,attr"`
				Title string `xml:"title,attr"`
				Type  string `xml:"type,attr"`
			} `xml:"attribute"`
		} `xml:"attributes"`
		Nodes []node `xml:"nodes>node"`
		Edges []edge `xml:"edges>edge"`
	} `xml:"graph"`
}

type node struct {
	ID        string     `xml:"id,attr"`
	Label     string     `xml:"label,attr"`
	AttValues []attValue `xml:"attvalues>attvalue"`
}

type edge struct {
	ID        string     `xml:"id,attr"`
	Source    string     `xml:"source,attr"`
	Target    string     `xml:"target,attr"`
	Weight    string     `xml:"weight,attr"`
	AttValues []attValue `xml:"attvalues>attvalue"`
}

type attValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

// attrDecl resolves an attvalue reference to its declared title and type.
type attrDecl struct {
	title string
	typ   string
}

// ParseFile reads and decodes a GEXF file.
func ParseFile(path string) ([]graph.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "GEXF file %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a GEXF document from r into an element list.
// Nodes come first, then edges, each preserving document order.
func Parse(r io.Reader) ([]graph.Element, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecodeGEXF, err, "decode GEXF document")
	}

	nodeDecls := make(map[string]attrDecl)
	edgeDecls := make(map[string]attrDecl)
	for _, block := range doc.Graph.Attributes {
		decls := nodeDecls
		if block.Class == "edge" {
			decls = edgeDecls
		}
		for _, a := range block.Attrs {
			decls[a.ID] = attrDecl{title: a.Title, typ: a.Type}
		}
	}

	elements := make([]graph.Element, 0, len(doc.Graph.Nodes)+len(doc.Graph.Edges))

	for _, n := range doc.Graph.Nodes {
		data := map[string]any{graph.AttrID: n.ID}
		if n.Label != "" {
			data["label"] = n.Label
		}
		applyAttValues(data, n.AttValues, nodeDecls)
		elements = append(elements, graph.NewNode(data))
	}

	for i, e := range doc.Graph.Edges {
		if e.Source == "" || e.Target == "" {
			return nil, errors.New(errors.ErrCodeDecodeGEXF, "edge %d missing source or target", i)
		}
		id := e.ID
		if id == "" {
			id = fmt.Sprintf("e_%s_%s_%d", e.Source, e.Target, i)
		}
		data := map[string]any{
			graph.AttrID:     id,
			graph.AttrSource: e.Source,
			graph.AttrTarget: e.Target,
		}
		if e.Weight != "" {
			if w, err := strconv.ParseFloat(e.Weight, 64); err == nil {
				data["weight"] = w
			}
		}
		applyAttValues(data, e.AttValues, edgeDecls)
		elements = append(elements, graph.NewEdge(data))
	}

	return elements, nil
}

// applyAttValues resolves attvalue references and stores typed values in the
// data bag. Values referencing an undeclared attribute keep the reference id
// as key; values that fail their declared type stay strings.
func applyAttValues(data map[string]any, values []attValue, decls map[string]attrDecl) {
	for _, av := range values {
		decl, ok := decls[av.For]
		key := decl.title
		if !ok || key == "" {
			key = av.For
		}
		if _, taken := data[key]; taken {
			continue
		}
		data[key] = convertValue(av.Value, decl.typ)
	}
}

func convertValue(raw, typ string) any {
	switch typ {
	case typeInteger, typeLong, typeFloat, typeDouble:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case typeBoolean:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}
