package csproj

import (
	"strings"

	"github.com/beevik/etree"
)

// SetResult describes what Set changed.
type SetResult struct {
	Previous string // Value found before the update
	Value    string // Value written, placeholder resolved
	Updated  int    // Existing elements rewritten
	Created  bool   // A new element was appended to the first group
}

// fieldIn returns the first direct child of group named key, or nil.
func fieldIn(group *etree.Element, key Field) *etree.Element {
	for _, child := range group.ChildElements() {
		if child.FullTag() == string(key) {
			return child
		}
	}
	return nil
}

// CurrentValue scans groups in order and returns the text of the key's
// element. Within a group the first matching child counts; across groups
// the last group holding the key wins. Missing keys yield "".
func CurrentValue(groups []*etree.Element, key Field) string {
	value := ""
	for _, group := range groups {
		if el := fieldIn(group, key); el != nil {
			// Later groups overwrite earlier ones
			value = innerText(el)
		}
	}
	return value
}

// Get returns the current value of key in doc.
func Get(doc *Document, key Field) (string, error) {
	groups := doc.Groups()
	if len(groups) == 0 {
		return "", ErrNoGroupsFound
	}
	return CurrentValue(groups, key), nil
}

// Set writes raw to key in every group that defines it, or creates the
// element in the first group when none does. Placeholder tokens in raw are
// replaced with the previous value. The document is modified in memory only;
// call Save to persist it.
func Set(doc *Document, key Field, raw string) (SetResult, error) {
	groups := doc.Groups()
	if len(groups) == 0 {
		return SetResult{}, ErrNoGroupsFound
	}

	res := SetResult{Previous: CurrentValue(groups, key)}
	res.Value = ResolvePlaceholder(raw, res.Previous)

	for _, group := range groups {
		if el := fieldIn(group, key); el != nil {
			setInnerText(el, res.Value)
			res.Updated++
		}
	}

	if res.Updated == 0 {
		el := etree.NewElement(string(key))
		el.SetText(res.Value)
		appendIndented(groups[0], el)
		res.Created = true
	}

	return res, nil
}

// innerText concatenates all character data below el.
func innerText(el *etree.Element) string {
	var sb strings.Builder
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				sb.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(el)
	return sb.String()
}

// setInnerText replaces all children of el with a single text node.
func setInnerText(el *etree.Element, value string) {
	for len(el.Child) > 0 {
		el.RemoveChildAt(0)
	}
	el.SetText(value)
}

// appendIndented adds el as the last child element of group. When the group
// is pretty-printed, the new element gets the same indentation as its
// siblings and the closing tag keeps its own.
func appendIndented(group *etree.Element, el *etree.Element) {
	n := len(group.Child)
	if n == 0 {
		group.AddChild(el)
		return
	}
	trailing, ok := group.Child[n-1].(*etree.CharData)
	if !ok || !trailing.IsWhitespace() {
		group.AddChild(el)
		return
	}

	indent := trailing.Data + "  "
	for i, tok := range group.Child {
		if _, isElem := tok.(*etree.Element); !isElem {
			continue
		}
		if i > 0 {
			if ws, ok := group.Child[i-1].(*etree.CharData); ok && ws.IsWhitespace() {
				indent = ws.Data
			}
		}
		break
	}

	group.InsertChildAt(n-1, el)
	group.InsertChildAt(n-1, etree.NewText(indent))
}
