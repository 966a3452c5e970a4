package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// yamlFile is the on-disk catalog format.
//
//	stars:
//	  - name: Sirius
//	    hip: 32349
//	    ra: 101.287
//	    dec: -16.716
//	    mag: -1.46
//	    spectral: A1V
//	constellations:
//	  - name: Orion
//	    abbr: Ori
//	    lines:
//	      - [Betelgeuse, Bellatrix]
type yamlFile struct {
	Stars          []yamlStar          `yaml:"stars"`
	Constellations []yamlConstellation `yaml:"constellations"`
}

type yamlStar struct {
	Name     string  `yaml:"name"`
	Hip      int     `yaml:"hip"`
	RA       float64 `yaml:"ra"`
	Dec      float64 `yaml:"dec"`
	Mag      float64 `yaml:"mag"`
	Spectral string  `yaml:"spectral"`
}

type yamlConstellation struct {
	Name  string     `yaml:"name"`
	Abbr  string     `yaml:"abbr"`
	Lines [][]string `yaml:"lines"`
}

// LoadYAML reads a catalog file and returns it as an in-memory source named
// after the file.
func LoadYAML(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	m, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	m.name = filepath.Base(path)

	return m, nil
}

// ParseYAML decodes a YAML catalog document. Star order in the document is
// the catalog order. Entries with out-of-range coordinates are rejected:
// a catalog source is the party responsible for supplying valid rows.
func ParseYAML(data []byte) (*Memory, error) {
	var doc yamlFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	stars := make([]Star, 0, len(doc.Stars))
	for i, ys := range doc.Stars {
		star := Star{
			HipID:         ys.Hip,
			Name:          ys.Name,
			RADeg:         ys.RA,
			DecDeg:        ys.Dec,
			Mag:           ys.Mag,
			SpectralClass: ys.Spectral,
		}
		if err := star.Validate(); err != nil {
			return nil, fmt.Errorf("stars[%d]: %w", i, err)
		}
		stars = append(stars, star)
	}

	constellations := make([]Constellation, 0, len(doc.Constellations))
	for i, yc := range doc.Constellations {
		con := Constellation{Name: yc.Name, Abbr: yc.Abbr}
		for j, pair := range yc.Lines {
			if len(pair) != 2 {
				return nil, fmt.Errorf("constellations[%d].lines[%d]: want [from, to] pair, got %d elements", i, j, len(pair))
			}
			con.Lines = append(con.Lines, Line{From: pair[0], To: pair[1]})
		}
		constellations = append(constellations, con)
	}

	return NewMemory("yaml", stars, constellations), nil
}
