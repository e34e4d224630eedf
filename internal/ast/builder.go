package ast

// Builder accumulates Items in source order as the parser recognizes them,
// the way the teacher corpus's model builder accumulates categories and
// targets while walking directives — one append call per recognized
// construct, with the caller responsible for ordering.
type Builder struct {
	path  string
	items []Item
}

// NewBuilder creates a Builder for a file at path.
func NewBuilder(path string) *Builder {
	return &Builder{path: path}
}

// AddComment appends a Comment item.
func (b *Builder) AddComment(c Comment) {
	b.items = append(b.items, Item{Kind: ItemComment, Span: c.Span, Comment: &c})
}

// AddMacro appends a MacroDefinition item.
func (b *Builder) AddMacro(m MacroDefinition) {
	b.items = append(b.items, Item{Kind: ItemMacro, Span: m.Span, Macro: &m})
}

// AddInclude appends an Include item.
func (b *Builder) AddInclude(inc Include) {
	b.items = append(b.items, Item{Kind: ItemInclude, Span: inc.Span, Include: &inc})
}

// AddRule appends a Rule item.
func (b *Builder) AddRule(r Rule) {
	b.items = append(b.items, Item{Kind: ItemRule, Span: r.Span, Rule: &r})
}

// Build finalizes the File. hasFinalNewline is threaded through from the
// byte reader so lint inspections have it without re-touching the disk.
func (b *Builder) Build(hasFinalNewline bool) *File {
	return &File{
		Path:            b.path,
		Items:           b.items,
		HasFinalNewline: hasFinalNewline,
	}
}
