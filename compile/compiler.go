package compile

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"csb/css"
)

// Compiled is one successfully built selector.
type Compiled struct {
	Name string // name as given in the sheet
	Slug string // slugified name used as output key
	Text string // serialized selector
}

// Result holds compiled selectors in sheet order.
type Result struct {
	Selectors []Compiled
}

// Encode renders the result as a YAML mapping of slugified names to
// selector text, preserving sheet order.
func (r *Result) Encode() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range r.Selectors {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Slug},
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Text},
		)
	}
	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compiled selectors: %w", err)
	}
	return data, nil
}

// Compiler builds selectors from parsed sheets.
type Compiler struct {
	log *zap.Logger
}

// NewCompiler creates a new selector sheet compiler.
func NewCompiler(log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("compiler")}
}

// Compile builds every selector in the sheet. Failures are accumulated per
// selector and do not stop processing; the returned result holds whatever
// compiled cleanly alongside the combined error.
func (c *Compiler) Compile(sheet *Sheet) (*Result, error) {
	res := &Result{}
	seen := make(map[string]string)

	var errs error
	for i, def := range sheet.Selectors {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("selector-%d", i+1)
		}

		sel, err := c.buildNode(&def.Node)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %q: %w", name, err))
			c.log.Warn("Skipping selector", zap.String("name", name), zap.Error(err))
			continue
		}

		key := slug.Make(name)
		if prev, dup := seen[key]; dup {
			c.log.Warn("Duplicate selector name, later definition wins",
				zap.String("name", name), zap.String("previous", prev), zap.String("key", key))
			for j := range res.Selectors {
				if res.Selectors[j].Slug == key {
					res.Selectors = append(res.Selectors[:j], res.Selectors[j+1:]...)
					break
				}
			}
		}
		seen[key] = name

		text := sel.String()
		res.Selectors = append(res.Selectors, Compiled{Name: name, Slug: key, Text: text})
		c.log.Debug("Compiled selector", zap.String("name", name), zap.String("text", text))
	}
	return res, errs
}

// buildNode builds a selector from a node, recursing through combinations.
func (c *Compiler) buildNode(n *Node) (css.Selector, error) {
	switch {
	case n == nil:
		return nil, errors.New("missing selector node")
	case len(n.Parts) > 0 && n.Combine != nil:
		return nil, errors.New("a selector node cannot have both parts and combine")
	case n.Combine != nil:
		left, err := c.buildNode(n.Combine.Left)
		if err != nil {
			return nil, fmt.Errorf("left operand: %w", err)
		}
		right, err := c.buildNode(n.Combine.Right)
		if err != nil {
			return nil, fmt.Errorf("right operand: %w", err)
		}
		return css.Combine(left, n.Combine.Combinator, right), nil
	case len(n.Parts) > 0:
		s := &css.SimpleSelector{}
		for i := range n.Parts {
			if err := n.Parts[i].apply(s); err != nil {
				return nil, fmt.Errorf("part %d: %w", i+1, err)
			}
		}
		return s, nil
	default:
		return nil, errors.New("a selector node needs either parts or combine")
	}
}
