package hclgrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/jkingslake/gridsweep/grid"
	"github.com/jkingslake/gridsweep/internal/ctxlog"
)

var (
	// ErrNoSweep indicates the file defines no sweep block.
	ErrNoSweep = errors.New("hclgrid: sweep file must define exactly one sweep block")

	// ErrNotIterable indicates a param's values expression did not evaluate
	// to a list or tuple.
	ErrNotIterable = errors.New("hclgrid: param values must be a list")
)

// Sweep is the agnostic model of a loaded sweep definition.
type Sweep struct {
	Name    string
	Command string
	Args    []string
	Workers int // 0 when the file does not set workers
	Set     *grid.Set
}

// Loader parses sweep files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader returns a ready Loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile parses and translates the sweep definition at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Sweep, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("parsing sweep file", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("hclgrid: parsing %s: %s", path, diags.Error())
	}

	var fs fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &fs); diags.HasErrors() {
		return nil, fmt.Errorf("hclgrid: decoding %s: %s", path, diags.Error())
	}
	if len(fs.Sweeps) != 1 {
		return nil, fmt.Errorf("%w: %s defines %d", ErrNoSweep, path, len(fs.Sweeps))
	}

	sw, err := l.translate(fs.Sweeps[0])
	if err != nil {
		return nil, err
	}
	logger.Debug("sweep file loaded",
		"sweep", sw.Name,
		"params", sw.Set.Names(),
		"combinations", sw.Set.Size(),
	)
	return sw, nil
}

// translate converts the HCL-specific schema into the agnostic model,
// evaluating every param's values expression.
func (l *Loader) translate(b *sweepBlock) (*Sweep, error) {
	set := grid.NewSet()
	for _, p := range b.Params {
		val, diags := p.Values.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("hclgrid: param %q values: %s", p.Name, diags.Error())
		}
		if !val.CanIterateElements() {
			return nil, fmt.Errorf("%w: param %q is %s", ErrNotIterable, p.Name, val.Type().FriendlyName())
		}
		if err := set.Add(p.Name, val.AsValueSlice()...); err != nil {
			return nil, fmt.Errorf("hclgrid: param %q: %w", p.Name, err)
		}
	}

	sw := &Sweep{
		Name:    b.Name,
		Command: b.Command,
		Args:    b.Args,
		Set:     set,
	}
	if b.Workers != nil {
		sw.Workers = *b.Workers
	}
	return sw, nil
}
