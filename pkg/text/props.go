package text

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/go-drift/styledtext/pkg/errors"
	"github.com/go-drift/styledtext/pkg/style"
)

import stderrors "errors"

// Property keys recognized by UpdateProps.
const (
	PropText            = "text"
	PropNumberOfLines   = "numberOfLines"
	PropLineHeight      = "lineHeight"
	PropFontSize        = "fontSize"
	PropColor           = "color"
	PropBackgroundColor = "backgroundColor"
	PropFontFamily      = "fontFamily"
	PropFontWeight      = "fontWeight"
	PropFontStyle       = "fontStyle"
)

// Props is a sparse diff of changed property keys. A key present with a
// nil value is an explicit null and clears its attribute; an absent key
// leaves the attribute untouched.
type Props map[string]any

// Has reports whether key is present in the diff.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// IsNull reports whether key is present with an explicit null value.
func (p Props) IsNull(key string) bool {
	v, ok := p[key]
	return ok && v == nil
}

// GetString returns the string value for key, or "" when the value is
// null or not string-like.
func (p Props) GetString(key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// GetInt returns the int value for key, or fallback when the value is
// missing or not numeric.
func (p Props) GetInt(key string, fallback int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// GetFloat returns the float value for key, or fallback when the value
// is missing or not numeric.
func (p Props) GetFloat(key string, fallback float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return fallback
	}
}

// UpdateProps applies a sparse property diff to the node, marking it
// updated for every recognized key it touches. Unrecognized keys are
// ignored. Color values that fail to parse and negative line counts
// abort the update with a parse error; earlier keys in the diff stay
// applied.
func (n *Node) UpdateProps(p Props) error {
	if p.Has(PropText) {
		if p.IsNull(PropText) {
			n.ClearText()
		} else {
			n.SetText(p.GetString(PropText))
		}
	}
	if p.Has(PropNumberOfLines) {
		if p.IsNull(PropNumberOfLines) {
			n.ClearNumberOfLines()
		} else {
			lines := p.GetInt(PropNumberOfLines, 0)
			if lines < 0 {
				return propsError(n, &errors.ParseError{
					Source:   PropNumberOfLines,
					DataType: "line count",
					Got:      lines,
				})
			}
			n.SetNumberOfLines(lines)
		}
	}
	if p.Has(PropLineHeight) {
		if p.IsNull(PropLineHeight) {
			n.ClearLineHeight()
		} else {
			n.SetLineHeightSP(p.GetFloat(PropLineHeight, 0))
		}
	}
	if p.Has(PropFontSize) {
		if p.IsNull(PropFontSize) {
			n.ClearFontSize()
		} else {
			n.SetFontSizeSP(p.GetFloat(PropFontSize, style.DefaultFontSizeSP))
		}
	}
	if p.Has(PropColor) {
		if p.IsNull(PropColor) {
			n.ClearColor()
		} else {
			c, err := style.ParseColor(p.GetString(PropColor))
			if err != nil {
				return propsError(n, err)
			}
			n.SetColor(c)
		}
	}
	if p.Has(PropBackgroundColor) {
		if p.IsNull(PropBackgroundColor) {
			n.ClearBackgroundColor()
		} else {
			c, err := style.ParseColor(p.GetString(PropBackgroundColor))
			if err != nil {
				return propsError(n, err)
			}
			n.SetBackgroundColor(c)
		}
	}
	if p.Has(PropFontFamily) {
		n.SetFontFamily(p.GetString(PropFontFamily))
	}
	if p.Has(PropFontWeight) {
		n.SetFontWeight(style.ResolveFontWeight(p.GetString(PropFontWeight)))
	}
	if p.Has(PropFontStyle) {
		n.SetFontStyle(style.ResolveFontStyle(p.GetString(PropFontStyle)))
	}
	return nil
}

func propsError(n *Node, err error) error {
	return &errors.TextError{
		Op:   "text.UpdateProps",
		Kind: errors.KindParse,
		Tag:  n.tag,
		Err:  err,
	}
}

// PropsFromJSON decodes a JSON property diff, preserving the
// distinction between an explicit null and an absent key.
func PropsFromJSON(data []byte) (Props, error) {
	if !gjson.ValidBytes(data) {
		return nil, &errors.TextError{
			Op:   "text.PropsFromJSON",
			Kind: errors.KindParse,
			Err:  stderrors.New("invalid JSON"),
		}
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil, &errors.TextError{
			Op:   "text.PropsFromJSON",
			Kind: errors.KindParse,
			Err:  stderrors.New("props payload must be a JSON object"),
		}
	}
	props := make(Props)
	parsed.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.Null:
			props[key.String()] = nil
		case gjson.Number:
			props[key.String()] = value.Float()
		case gjson.True, gjson.False:
			props[key.String()] = value.Bool()
		default:
			props[key.String()] = value.String()
		}
		return true
	})
	return props, nil
}
