package dom

// Resolve turns a selector string or an Element into an Element.
// Strings are resolved through the document; anything unresolvable
// (empty selector, no match, nil, unsupported type) yields nil.
func Resolve(doc Document, target any) Element {
	switch t := target.(type) {
	case nil:
		return nil
	case string:
		if t == "" || doc == nil {
			return nil
		}
		return doc.QuerySelector(t)
	case Element:
		if isNilElement(t) {
			return nil
		}
		return t
	default:
		return nil
	}
}

// SetAttributes sets every attribute in attrs on el.
func SetAttributes(el Element, attrs map[string]string) {
	if el == nil {
		return
	}
	for name, value := range attrs {
		el.SetAttribute(name, value)
	}
}

// isNilElement guards against typed-nil interface values, which compare
// unequal to nil but blow up on method calls.
func isNilElement(el Element) bool {
	if el == nil {
		return true
	}
	if m, ok := el.(*MemoryElement); ok {
		return m == nil
	}
	return false
}
