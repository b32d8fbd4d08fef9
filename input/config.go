package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/raybox/grid"
	"github.com/katalvlaran/raybox/mirror"
)

// Sentinel errors for input parsing.
var (
	// ErrEmptyConfig indicates a configuration without a size line.
	ErrEmptyConfig = errors.New("input: configuration has no size line")
	// ErrMalformedLine indicates a line that does not match its expected shape.
	ErrMalformedLine = errors.New("input: malformed line")
)

// Placement is one explicit mirror in external, 1-indexed coordinates.
type Placement struct {
	Row      int `json:"row"`
	Column   int `json:"column"`
	Strength int `json:"strength,omitempty"`

	// Line is the source line, 0 for JSON input.
	Line int `json:"-"`
}

// Config is a parsed raybox configuration.
type Config struct {
	Size       int         `json:"size"`
	Placements []Placement `json:"mirrors"`
}

// ReadConfig parses the text configuration format from r.
// name is used in error messages.
func ReadConfig(r io.Reader, name string) (Config, error) {
	lr := newLineReader(r, name)

	first, ok := lr.next()
	if !ok {
		if err := lr.err(); err != nil {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%s: %w", name, ErrEmptyConfig)
	}
	size, err := strconv.Atoi(first)
	if err != nil {
		return Config{}, lr.wrap(fmt.Errorf("%w: size %q", ErrMalformedLine, first))
	}
	if size < 1 {
		return Config{}, lr.wrap(fmt.Errorf("%w: got %d", grid.ErrInvalidSize, size))
	}

	cfg := Config{Size: size}
	for {
		text, ok := lr.next()
		if !ok {
			break
		}
		p, err := parsePlacement(text, size)
		if err != nil {
			return Config{}, lr.wrap(err)
		}
		p.Line = lr.line
		cfg.Placements = append(cfg.Placements, p)
	}
	if err := lr.err(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parsePlacement decodes "row col [strength]".
func parsePlacement(text string, size int) (Placement, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 || len(fields) > 3 {
		return Placement{}, fmt.Errorf("%w: want \"row col [strength]\", got %q", ErrMalformedLine, text)
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Placement{}, fmt.Errorf("%w: %q is not an integer", ErrMalformedLine, f)
		}
		nums[i] = v
	}
	p := Placement{Row: nums[0], Column: nums[1]}
	if len(nums) == 3 {
		p.Strength = nums[2]
	}

	return p, p.validate(size)
}

// validate checks p against a size×size board.
func (p Placement) validate(size int) error {
	if p.Row < 1 || p.Row > size || p.Column < 1 || p.Column > size {
		return fmt.Errorf("%w: (%d,%d) not in [1,%d]", grid.ErrInvalidCoordinate, p.Row, p.Column, size)
	}
	if p.Strength < 0 {
		return fmt.Errorf("%w: %d", grid.ErrInvalidStrength, p.Strength)
	}

	return nil
}

// LoadConfig reads a text configuration file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return ReadConfig(f, path)
}

// LoadJSONConfig reads a JSON configuration file.
func LoadJSONConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return DecodeJSONConfig(data, path)
}

// DecodeJSONConfig parses and validates a JSON configuration.
func DecodeJSONConfig(data []byte, name string) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w: %v", name, ErrMalformedLine, err)
	}
	if cfg.Size < 1 {
		return Config{}, fmt.Errorf("%s: %w: got %d", name, grid.ErrInvalidSize, cfg.Size)
	}
	for i, p := range cfg.Placements {
		if err := p.validate(cfg.Size); err != nil {
			return Config{}, fmt.Errorf("%s: mirrors[%d]: %w", name, i, err)
		}
	}

	return cfg, nil
}

// Build places every mirror on a new grid and builds its index.
// Placements are converted to 0-indexed coordinates.
func (c Config) Build(opts ...grid.Option) (*grid.Grid, error) {
	g, err := grid.New(c.Size, opts...)
	if err != nil {
		return nil, err
	}
	for i, p := range c.Placements {
		if err := g.Place(mirror.New(p.Row-1, p.Column-1, p.Strength)); err != nil {
			if p.Line > 0 {
				return nil, fmt.Errorf("line %d: %w", p.Line, err)
			}
			return nil, fmt.Errorf("mirrors[%d]: %w", i, err)
		}
	}
	g.BuildIndex()

	return g, nil
}
