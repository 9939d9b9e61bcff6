package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kainino0x/exact-css-xyz-matrices/colour"
	"github.com/kainino0x/exact-css-xyz-matrices/rational"
)

var (
	ErrNoSpaces     = errors.New("config: no colour spaces defined")
	ErrMissingField = errors.New("config: missing field")
	ErrUnknownWhite = errors.New("config: unknown white point")
	ErrDuplicate    = errors.New("config: duplicate colour space name")
)

// Coordinate is an (x, y) pair written as two strings, each parsed exactly
// with rational.Parse, e.g. ["0.3127", "0.3290"] or ["3127/10000", "329/1000"].
type Coordinate []string

// SpaceDefinition is one colour space entry of a definitions file.
type SpaceDefinition struct {
	Name    string     `yaml:"name"`
	White   string     `yaml:"white,omitempty"`
	WhiteXY Coordinate `yaml:"white_xy,omitempty"`
	Red     Coordinate `yaml:"red"`
	Green   Coordinate `yaml:"green"`
	Blue    Coordinate `yaml:"blue"`
}

type File struct {
	Spaces []SpaceDefinition `yaml:"spaces"`
}

// LoadFile reads colour space definitions from a YAML file.
func LoadFile(path string) ([]colour.ColourSpace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load reads colour space definitions from YAML. The order of the file is kept.
func Load(r io.Reader) ([]colour.ColourSpace, error) {
	var file File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSpaces
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(file.Spaces) == 0 {
		return nil, ErrNoSpaces
	}

	seen := make(map[string]bool)
	spaces := make([]colour.ColourSpace, 0, len(file.Spaces))
	for idx, def := range file.Spaces {
		cs, err := def.ToColourSpace()
		if err != nil {
			name := def.Name
			if name == "" {
				name = fmt.Sprintf("#%d", idx)
			}
			return nil, fmt.Errorf("colour space %s: %w", name, err)
		}
		if seen[cs.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, cs.Name)
		}
		seen[cs.Name] = true
		log.Debugf("loaded colour space %s white %s", cs.Name, cs.WhitePoint.String())
		spaces = append(spaces, cs)
	}
	return spaces, nil
}

// Merge appends extra to base. An extra space named like one in base replaces
// it in place, so a definitions file can redefine a standard space.
func Merge(base []colour.ColourSpace, extra []colour.ColourSpace) []colour.ColourSpace {
	merged := append([]colour.ColourSpace(nil), base...)
	index := make(map[string]int, len(merged))
	for i, cs := range merged {
		index[cs.Name] = i
	}
	for _, cs := range extra {
		if i, found := index[cs.Name]; found {
			log.Debugf("colour space %s redefined", cs.Name)
			merged[i] = cs
			continue
		}
		index[cs.Name] = len(merged)
		merged = append(merged, cs)
	}
	return merged
}

func (def SpaceDefinition) ToColourSpace() (colour.ColourSpace, error) {
	if def.Name == "" {
		return colour.ColourSpace{}, fmt.Errorf("%w: name", ErrMissingField)
	}

	var white *colour.CIEXY
	var err error
	switch {
	case def.White != "" && len(def.WhiteXY) != 0:
		return colour.ColourSpace{}, fmt.Errorf("config: white and white_xy are exclusive")
	case def.White != "":
		white = colour.GetWhitePoint(strings.ToLower(def.White))
		if white == nil {
			return colour.ColourSpace{}, fmt.Errorf("%w: %s", ErrUnknownWhite, def.White)
		}
	case len(def.WhiteXY) != 0:
		if white, err = def.WhiteXY.toCIEXY("white_xy"); err != nil {
			return colour.ColourSpace{}, err
		}
	default:
		return colour.ColourSpace{}, fmt.Errorf("%w: white or white_xy", ErrMissingField)
	}

	red, err := def.Red.toCIEXY("red")
	if err != nil {
		return colour.ColourSpace{}, err
	}
	green, err := def.Green.toCIEXY("green")
	if err != nil {
		return colour.ColourSpace{}, err
	}
	blue, err := def.Blue.toCIEXY("blue")
	if err != nil {
		return colour.ColourSpace{}, err
	}
	return colour.NewColourSpace(def.Name, white, colour.NewCIEPrimaries(red, green, blue)), nil
}

func (c Coordinate) toCIEXY(field string) (*colour.CIEXY, error) {
	if len(c) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	if len(c) != 2 {
		return nil, fmt.Errorf("config: %s needs exactly 2 coordinates, got %d", field, len(c))
	}
	x, err := rational.Parse(c[0])
	if err != nil {
		return nil, fmt.Errorf("%s x: %w", field, err)
	}
	y, err := rational.Parse(c[1])
	if err != nil {
		return nil, fmt.Errorf("%s y: %w", field, err)
	}
	xy, err := colour.NewCIEXY(x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return xy, nil
}

// FromColourSpace renders a colour space back into a definition using exact
// fractions.
func FromColourSpace(cs colour.ColourSpace) SpaceDefinition {
	coord := func(xy *colour.CIEXY) Coordinate {
		return Coordinate{xy.X.String(), xy.Y.String()}
	}
	return SpaceDefinition{
		Name:    cs.Name,
		WhiteXY: coord(&cs.WhitePoint),
		Red:     coord(cs.Primaries.Red),
		Green:   coord(cs.Primaries.Green),
		Blue:    coord(cs.Primaries.Blue),
	}
}

// Save writes the spaces as a YAML definitions file that Load accepts.
func Save(w io.Writer, spaces []colour.ColourSpace) error {
	file := File{}
	for _, cs := range spaces {
		file.Spaces = append(file.Spaces, FromColourSpace(cs))
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&file); err != nil {
		return err
	}
	return encoder.Close()
}
