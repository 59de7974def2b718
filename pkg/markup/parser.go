// Package markup parses an inline bracket-tag format into styled text
// trees. It gives fixtures and the command line a human-writable input:
//
//	[size=24][color=#ff0000]Hello [b]bold[/b][/color] world[/size]
//
// parses to the node tree a host would otherwise assemble through
// property updates. Every tag pair and text run becomes a virtual node
// under a single non-virtual root.
package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/go-drift/styledtext/pkg/errors"
	"github.com/go-drift/styledtext/pkg/style"
	"github.com/go-drift/styledtext/pkg/text"
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "CloseTag", Pattern: `\[/[a-zA-Z]+\]`},
		{Name: "OpenTag", Pattern: `\[[a-zA-Z]+(?:=[^\]]*)?\]`},
		{Name: "Text", Pattern: `[^\[]+`},
	})

	markupParser = participle.MustBuild[document](
		participle.Lexer(markupLexer),
	)
)

type document struct {
	Items []*item `parser:"@@*"`
}

type item struct {
	Element *element `parser:"  @@"`
	Text    *string  `parser:"| @Text"`
}

type element struct {
	Open  openTag  `parser:"@OpenTag"`
	Items []*item  `parser:"@@*"`
	Close closeTag `parser:"@CloseTag"`
}

// openTag splits "[name=value]" into its parts on capture.
type openTag struct {
	Name     string
	Value    string
	HasValue bool
}

// Capture implements participle.Capture.
func (o *openTag) Capture(values []string) error {
	body := strings.TrimSuffix(strings.TrimPrefix(values[0], "["), "]")
	o.Name, o.Value, o.HasValue = strings.Cut(body, "=")
	return nil
}

// closeTag captures the name out of "[/name]".
type closeTag string

// Capture implements participle.Capture.
func (c *closeTag) Capture(values []string) error {
	*c = closeTag(strings.TrimSuffix(strings.TrimPrefix(values[0], "[/"), "]"))
	return nil
}

// Parse reads markup from r and builds a text tree.
func Parse(r io.Reader) (*text.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, parseError(err)
	}
	return ParseString(string(data))
}

// ParseString parses markup source into a text tree. The returned root
// is the non-virtual anchor with tag 1; parsed elements and text runs
// get sequential tags in document order.
func ParseString(input string) (*text.Node, error) {
	doc, err := markupParser.ParseString("", input)
	if err != nil {
		return nil, parseError(err)
	}
	tags := 1
	root := text.NewNode(tags)
	if err := buildChildren(root, doc.Items, &tags); err != nil {
		return nil, err
	}
	return root, nil
}

func buildChildren(parent *text.Node, items []*item, tags *int) error {
	for _, it := range items {
		switch {
		case it.Text != nil:
			*tags++
			leaf := text.NewVirtualNode(*tags)
			leaf.SetText(*it.Text)
			parent.AddChild(leaf)
		case it.Element != nil:
			open := it.Element.Open
			if string(it.Element.Close) != open.Name {
				return parseError(fmt.Errorf("closing tag [/%s] does not match [%s]", it.Element.Close, open.Name))
			}
			*tags++
			node := text.NewVirtualNode(*tags)
			if err := applyTag(node, open); err != nil {
				return err
			}
			if err := buildChildren(node, it.Element.Items, tags); err != nil {
				return err
			}
			parent.AddChild(node)
		}
	}
	return nil
}

func applyTag(node *text.Node, tag openTag) error {
	switch tag.Name {
	case "b":
		if err := bareTag(tag); err != nil {
			return err
		}
		node.SetFontWeight(style.FontWeightBold)
	case "i":
		if err := bareTag(tag); err != nil {
			return err
		}
		node.SetFontStyle(style.FontStyleItalic)
	case "color", "bg":
		v, err := tagValue(tag)
		if err != nil {
			return err
		}
		c, err := style.ParseColor(v)
		if err != nil {
			return parseError(err)
		}
		if tag.Name == "color" {
			node.SetColor(c)
		} else {
			node.SetBackgroundColor(c)
		}
	case "size":
		v, err := tagValue(tag)
		if err != nil {
			return err
		}
		sp, err := strconv.ParseFloat(v, 64)
		if err != nil || sp <= 0 {
			return parseError(fmt.Errorf("tag [size] needs a positive number, got %q", v))
		}
		node.SetFontSizeSP(sp)
	case "family":
		v, err := tagValue(tag)
		if err != nil {
			return err
		}
		node.SetFontFamily(v)
	case "weight":
		v, err := tagValue(tag)
		if err != nil {
			return err
		}
		// Unrecognized weights resolve to unset, same as the props path.
		node.SetFontWeight(style.ResolveFontWeight(v))
	default:
		return parseError(fmt.Errorf("unknown tag [%s]", tag.Name))
	}
	return nil
}

func bareTag(tag openTag) error {
	if tag.HasValue {
		return parseError(fmt.Errorf("tag [%s] takes no value", tag.Name))
	}
	return nil
}

func tagValue(tag openTag) (string, error) {
	if !tag.HasValue || tag.Value == "" {
		return "", parseError(fmt.Errorf("tag [%s] requires a value", tag.Name))
	}
	return tag.Value, nil
}

func parseError(err error) error {
	return &errors.TextError{Op: "markup.Parse", Kind: errors.KindParse, Err: err}
}
