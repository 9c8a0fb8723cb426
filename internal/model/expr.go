package model

// Placeholder is the literal stored for empty expressions and rendered
// for every empty value.
const Placeholder = "-"

// Expr is a field holding either unresolved source text or a reference
// to a resolved object. After resolution exactly one of the two is set.
type Expr struct {
	Text string
	Ref  ObjectID
}

// Raw wraps unresolved expression text.
func Raw(text string) Expr { return Expr{Text: text} }

// IsResolved reports whether the expression is bound to an object.
func (e Expr) IsResolved() bool { return e.Ref.IsValid() }

// IsEmpty reports whether the expression carries neither a reference nor
// meaningful text.
func (e Expr) IsEmpty() bool {
	return !e.Ref.IsValid() && (e.Text == "" || e.Text == Placeholder)
}

// Bind sets the reference and clears the text.
func (e *Expr) Bind(id ObjectID) {
	e.Ref = id
	e.Text = ""
}

// IsLiteral reports whether text is a terminal that is never looked up:
// the placeholder or anything starting with a digit.
func IsLiteral(text string) bool {
	if text == Placeholder {
		return true
	}
	return text != "" && text[0] >= '0' && text[0] <= '9'
}
