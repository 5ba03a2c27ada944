/*
Package domdbg implements helpers to debug flattened stylesheets.

Tree prints a sheet as an indented tree for the console, ToGraphViz writes
a diagram in GraphViz DOT format, with one node per selector, listing its
properties.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"text/template"

	"github.com/npillmayer/csskit/dom/style/cssom"
	tp "github.com/xlab/treeprint"
)

// Tree returns a printable tree of a flattened stylesheet: a branch per
// selector, a leaf per property.
func Tree(fs *cssom.FlatSheet) string {
	p := tp.New()
	sheet := p.AddBranch(sheetLabel(fs))
	for _, r := range fs.Rules() {
		if r.Len() == 0 {
			sheet.AddNode(r.Selector())
			continue
		}
		branch := sheet.AddBranch(r.Selector())
		for _, kv := range r.Properties() {
			branch.AddNode(kv.String())
		}
	}
	return p.String()
}

func sheetLabel(fs *cssom.FlatSheet) string {
	label := fs.Type()
	if label == "" {
		label = "stylesheet"
	}
	if fs.Href() != "" {
		label += " " + fs.Href()
	}
	return fmt.Sprintf("%s (%d selectors)", label, fs.Len())
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	Label    string
	RuleTmpl *template.Template
	EdgeTmpl *template.Template
}

type ruleNode struct {
	Name string
	Rule *cssom.FlatRule
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for a flattened stylesheet. The diagram is in
// GraphViz (DOT) format. Selectors are drawn as records holding their
// properties, chained in sheet order.
func ToGraphViz(fs *cssom.FlatSheet, w io.Writer) error {
	tmpl, err := template.New("sheet").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Label: sheetLabel(fs)}
	gparams.RuleTmpl = template.Must(template.New("rule").Parse(ruleNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(ruleEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	prev := ""
	for i, r := range fs.Rules() {
		name := fmt.Sprintf("rule%05d", i+1)
		if err = gparams.RuleTmpl.Execute(w, ruleNode{name, r}); err != nil {
			return err
		}
		if prev != "" {
			if err = gparams.EdgeTmpl.Execute(w, edge{prev, name}); err != nil {
				return err
			}
		}
		prev = name
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label={{ printf "%q" .Label }} splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const ruleNodeTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ html .Rule.Selector }}</font></td></tr>
      {{ range .Rule.Properties }}
      <tr><td align="right">{{ html .Key }}:</td><td>{{ html .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const ruleEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [dir=none weight=1 style="dashed"] ;
`
