package templates

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed readme.md.tmpl
var readmeTmpl string

// DefaultProjectName is used when the target directory has no usable name.
const DefaultProjectName = "Next.js Project"

var readme = template.Must(template.New("readme.md").Parse(readmeTmpl))

// ReadmeData holds the values available to the README template.
type ReadmeData struct {
	Name    string   // Project title, usually the target directory's base name
	Folders []string // Folder list the structure section is drawn from
}

// Readme renders the project README.
func Readme(data ReadmeData) (string, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" || name == "." || name == "/" {
		name = DefaultProjectName
	}

	view := struct {
		Name string
		Tree []string
	}{
		Name: name,
		Tree: Tree(data.Folders),
	}

	var buf bytes.Buffer
	if err := readme.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("executing README template: %w", err)
	}
	return buf.String(), nil
}

type node struct {
	name     string
	children []*node
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &node{name: name}
	n.children = append(n.children, c)
	return c
}

// Tree draws folders as box-drawing lines. Siblings keep the order in which
// they first appear; repeated paths are drawn once.
func Tree(folders []string) []string {
	root := &node{}
	for _, f := range folders {
		n := root
		for _, seg := range strings.Split(f, "/") {
			if seg == "" {
				continue
			}
			n = n.child(seg)
		}
	}

	var lines []string
	for _, top := range root.children {
		lines = append(lines, top.name+"/")
		lines = appendBranches(lines, top, "")
	}
	return lines
}

func appendBranches(lines []string, n *node, prefix string) []string {
	for i, c := range n.children {
		connector, indent := "├── ", "│   "
		if i == len(n.children)-1 {
			connector, indent = "└── ", "    "
		}
		lines = append(lines, prefix+connector+c.name+"/")
		lines = appendBranches(lines, c, prefix+indent)
	}
	return lines
}
