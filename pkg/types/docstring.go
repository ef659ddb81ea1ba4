package types

import "strings"

// ElementKind tags one entry in a docstring's document order.
type ElementKind string

const (
	ElemRaw        ElementKind = "raw"
	ElemStartQuote ElementKind = "start_quote"
	ElemEndQuote   ElementKind = "end_quote"

	// Section markers. They carry no data; the data lives in the
	// corresponding field table on the Docstring.
	ElemArgs       ElementKind = "args"
	ElemAttributes ElementKind = "attributes"
	ElemRaises     ElementKind = "raises"
	ElemReturn     ElementKind = "return"

	// Directives: free-form annotated blocks with body lines.
	ElemNote      ElementKind = "note"
	ElemWarning   ElementKind = "warning"
	ElemSeeAlso   ElementKind = "seealso"
	ElemReference ElementKind = "reference"
	ElemTodo      ElementKind = "todo"
	ElemExample   ElementKind = "example"
)

// IsDirective reports whether the kind is a free-form directive block.
func (k ElementKind) IsDirective() bool {
	switch k {
	case ElemNote, ElemWarning, ElemSeeAlso, ElemReference, ElemTodo, ElemExample:
		return true
	}
	return false
}

// IsSection reports whether the kind is a field-section placeholder.
func (k ElementKind) IsSection() bool {
	switch k {
	case ElemArgs, ElemAttributes, ElemRaises, ElemReturn:
		return true
	}
	return false
}

// Element is one entry in a docstring's document order. Quote elements hold
// the delimiter token in Body[0]; raw elements hold one or more verbatim
// lines; directives hold their collected body; section markers have no body.
type Element struct {
	Kind ElementKind
	Body []string
}

// RawElement wraps a single verbatim line.
func RawElement(line string) Element {
	return Element{Kind: ElemRaw, Body: []string{line}}
}

// Docstring stores docstring content in a style-independent way. Elements
// keep the document order; the tables keep merged per-name field data.
type Docstring struct {
	Elements   []Element
	Args       *FieldTable
	Attributes *FieldTable
	Raises     []*Field
	Return     *Field
}

// NewDocstring creates an empty Docstring.
func NewDocstring() *Docstring {
	return &Docstring{
		Args:       NewFieldTable(),
		Attributes: NewFieldTable(),
	}
}

// AddElement appends an element to the document order.
func (d *Docstring) AddElement(e Element) {
	d.Elements = append(d.Elements, e)
}

// AddArg records an argument field. The first argument added also places the
// args section marker. A repeated name merges into the existing field.
// Leading variadic markers are stripped from the name.
func (d *Docstring) AddArg(arg, kind string, desc []string, optional bool) {
	name := strings.TrimLeft(arg, "*")
	if d.Args.Len() == 0 {
		d.AddElement(Element{Kind: ElemArgs})
	}
	if f, ok := d.Args.Get(name); ok {
		f.merge(kind, desc, true, optional)
	} else {
		d.Args.Set(name, NewField(name, kind, desc, optional))
	}
}

// AddArgType records a type annotation for an argument, creating the field
// if the name has not been seen.
func (d *Docstring) AddArgType(arg, kind string) {
	name := strings.TrimLeft(arg, "*")
	if f, ok := d.Args.Get(name); ok {
		f.merge(kind, nil, false, false)
	} else {
		d.AddArg(name, kind, nil, false)
	}
}

// AddAttribute records an attribute field, placing the attributes section
// marker on first use.
func (d *Docstring) AddAttribute(name, kind string, desc []string) {
	if d.Attributes.Len() == 0 {
		d.AddElement(Element{Kind: ElemAttributes})
	}
	if f, ok := d.Attributes.Get(name); ok {
		f.merge(kind, desc, false, false)
	} else {
		d.Attributes.Set(name, NewField(name, kind, desc, false))
	}
}

// AddAttributeType records a type annotation for an attribute, creating the
// field if the name has not been seen.
func (d *Docstring) AddAttributeType(name, kind string) {
	if f, ok := d.Attributes.Get(name); ok {
		f.merge(kind, nil, false, false)
	} else {
		d.AddAttribute(name, kind, nil)
	}
}

// AddReturn records the return field, placing the return section marker the
// first time. Later additions merge.
func (d *Docstring) AddReturn(kind string, desc []string) {
	if d.Return == nil {
		d.AddElement(Element{Kind: ElemReturn})
		d.Return = NewField("", kind, desc, false)
	} else {
		d.Return.merge(kind, desc, false, false)
	}
}

// AddReturnType records a type annotation for the return field.
func (d *Docstring) AddReturnType(kind string) {
	if d.Return != nil {
		d.Return.merge(kind, nil, false, false)
	} else {
		d.AddReturn(kind, nil)
	}
}

// AddRaises appends a raised-error field, placing the raises section marker
// on first use. Raises fields are a list, not a table: the same error kind
// may legitimately appear more than once.
func (d *Docstring) AddRaises(kind string, desc []string) {
	if len(d.Raises) == 0 {
		d.AddElement(Element{Kind: ElemRaises})
	}
	d.Raises = append(d.Raises, NewField("", kind, desc, false))
}
