// Package sink serializes rasterized models into the formats consumed by
// xLights: the custom-model XML document and the CSV wiring report. Sinks
// render to bytes; writing files is left to the caller so that a fatal
// configuration error can never leave a partial set of outputs behind.
package sink

import (
	"encoding/xml"
	"fmt"
)

// Fixed xmodel attributes. xLights requires StringType and SourceVersion to
// recognize the file; the rest are display defaults.
const (
	stringType    = "GRB Nodes"
	sourceVersion = "2023.20"
	pixelSize     = 2
)

// Model describes one custom model document.
type Model struct {
	Name   string
	Width  int
	Height int
	Depth  int // 1 for the flat matrix model
	Data   string // delimited CustomModel payload from the rasterizer
}

// custommodel mirrors the xLights custom model element. parm1/parm2 carry
// width and height; depth has its own capitalized attribute.
type custommodel struct {
	XMLName         xml.Name `xml:"custommodel"`
	Name            string   `xml:"name,attr"`
	Parm1           int      `xml:"parm1,attr"`
	Parm2           int      `xml:"parm2,attr"`
	Depth           int      `xml:"Depth,attr"`
	StringType      string   `xml:"StringType,attr"`
	Transparency    int      `xml:"Transparency,attr"`
	PixelSize       int      `xml:"PixelSize,attr"`
	ModelBrightness int      `xml:"ModelBrightness,attr"`
	Antialias       int      `xml:"Antialias,attr"`
	StrandNames     string   `xml:"StrandNames,attr"`
	NodeNames       string   `xml:"NodeNames,attr"`
	CustomModel     string   `xml:"CustomModel,attr"`
	SourceVersion   string   `xml:"SourceVersion,attr"`
}

// RenderXModel serializes a model into an xmodel XML document.
func RenderXModel(m Model) ([]byte, error) {
	doc := custommodel{
		Name:          m.Name,
		Parm1:         m.Width,
		Parm2:         m.Height,
		Depth:         m.Depth,
		StringType:    stringType,
		PixelSize:     pixelSize,
		Antialias:     1,
		CustomModel:   m.Data,
		SourceVersion: sourceVersion,
	}
	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal xmodel %q: %w", m.Name, err)
	}
	buf := make([]byte, 0, len(xml.Header)+len(out)+1)
	buf = append(buf, xml.Header...)
	buf = append(buf, out...)
	buf = append(buf, '\n')
	return buf, nil
}
