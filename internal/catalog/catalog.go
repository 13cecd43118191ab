// Package catalog serves the renovation project templates and the per-type
// design idea lists. The shipped catalog is embedded; deployments can point
// TEMPLATE_CATALOG_PATH at a file to override it.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var embedded []byte

// Template is one predefined renovation project type.
type Template struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	DefaultBudget float64 `yaml:"defaultBudget" json:"defaultBudget"`
}

type Catalog struct {
	ProjectTemplates []Template          `yaml:"templates"`
	Ideas            map[string][]string `yaml:"ideas"`
}

// Load reads the catalog from path, or the embedded catalog when path is
// empty.
func Load(path string) (*Catalog, error) {
	data := embedded
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read template catalog: %w", err)
		}
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse template catalog: %w", err)
	}
	return &c, nil
}

// Templates returns all project templates.
func (c *Catalog) Templates() []Template {
	return c.ProjectTemplates
}

// IdeasFor returns the design ideas for a project type, with a generic
// suggestion for types the catalog does not know.
func (c *Catalog) IdeasFor(projectType string) []string {
	if ideas, ok := c.Ideas[projectType]; ok && len(ideas) > 0 {
		return ideas
	}
	return []string{"Browse local design boards for inspiration."}
}
