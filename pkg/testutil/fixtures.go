package testutil

import (
	"testing"
)

// ProjectTemplate is a small template touching every generator kind,
// a filter and a variable
const ProjectTemplate = `{
  "dirs": [
    {
      "name": "{project}",
      "files": ["README.md"],
      "dirs": [
        {"name": "src", "files": ["main.go"]},
        {"name": "part{{int:start=1;stop=2;pad=2}}", "files": ["notes-{{alpha:start=a;stop=b}}.txt"]},
        {"name": "{{enum:items=dev,prod}}", "files": ["{{date:start=2024-01-30;stop=2024-03-30;step=1m;fmt=%Y-%m}}.log"]},
        {"name": "{title|slug}"}
      ]
    }
  ]
}`

// ProjectVars satisfies ProjectTemplate
const ProjectVars = `{"project": "demo", "title": "Hello World"}`

// WriteInputs writes a template and its vars into dir and returns both paths
func WriteInputs(t *testing.T, dir, template, vars string) (string, string) {
	t.Helper()
	return CreateFile(t, dir, "template.json", template), CreateFile(t, dir, "vars.json", vars)
}
