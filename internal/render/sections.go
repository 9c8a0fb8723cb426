package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/jward/jassdoc/internal/model"
)

// Section is one heading+body block of a page. Key is the untranslated
// heading; Body is HTML and never empty.
type Section struct {
	Key  string
	Body string
}

// Anchor is the fragment id of the section.
func (s Section) Anchor() string {
	return strings.ToLower(strings.ReplaceAll(s.Key, " ", "-"))
}

// sections accumulates the sections of one page.
type sections struct {
	r   *Renderer
	out []Section
}

func (s *sections) add(key, body string) {
	if body == "" {
		body = model.Placeholder
	}
	s.out = append(s.out, Section{Key: key, Body: body})
}

func (s *sections) text(key, v string) {
	s.add(key, html.EscapeString(v))
}

func (s *sections) expr(key string, e model.Expr) {
	if e.Ref.IsValid() {
		s.add(key, s.r.link(e.Ref))
		return
	}
	s.text(key, e.Text)
}

func (s *sections) ref(key string, id model.ObjectID) {
	s.add(key, s.r.link(id))
}

func (s *sections) flag(key string, v bool) {
	if v {
		s.text(key, s.r.lookup.Lookup("Yes"))
		return
	}
	s.text(key, s.r.lookup.Lookup("No"))
}

func (s *sections) number(key string, n int) {
	s.add(key, strconv.Itoa(n))
}

func (s *sections) list(key string, ids []model.ObjectID) {
	items := make([]string, 0, len(ids))
	for _, id := range ids {
		items = append(items, s.r.link(id))
	}
	s.add(key, bulletList(items))
}

func (s *sections) values(key string, values []string) {
	items := make([]string, 0, len(values))
	for _, v := range values {
		items = append(items, html.EscapeString(v))
	}
	s.add(key, bulletList(items))
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, it := range items {
		b.WriteString("<li>")
		b.WriteString(it)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// Sections returns the sections of o in page order: the common head, the
// kind's own attributes, then derived listings.
func (r *Renderer) Sections(o model.Object) []Section {
	s := &sections{r: r}
	b := o.Common()
	s.text("Description", b.Doc.Description())
	s.text("Author", b.Doc.Tag("author"))
	s.text("Todo", b.Doc.Tag("todo"))
	s.text("Source File", r.locator.Anchor(o))

	switch v := o.(type) {
	case *model.Type:
		s.expr("Extends", v.Extends)
		s.expr("Size", v.Size)
	case *model.Member:
		s.ref("Container", v.Container)
		r.globalSections(s, &v.Global)
		s.flag("Static", v.IsStatic)
		s.flag("Delegate", v.IsDelegate)
	case *model.Global:
		r.globalSections(s, v)
	case *model.Local:
		s.ref("Owner", v.Owner)
		s.expr("Type", v.Type)
		s.expr("Value", v.Value)
		s.flag("Array", v.IsArray)
	case *model.Parameter:
		s.ref("Owner", v.Owner)
		s.expr("Type", v.Type)
		s.number("Ordinal", v.Ordinal)
	case *model.Method:
		s.ref("Container", v.Container)
		r.functionSections(s, &v.Function)
		s.expr("Default Return", v.DefaultReturn)
		s.flag("Static", v.IsStatic)
		s.flag("Stub", v.IsStub)
		s.flag("Operator", v.IsOperator)
		r.ownedListings(s, v.ID)
	case *model.Function:
		r.functionSections(s, v)
		r.ownedListings(s, v.ID)
	case *model.Struct:
		s.expr("Extends", v.Extends)
		s.expr("Size", v.Size)
		s.flag("Private", v.IsPrivate)
		r.containerListings(s, v.ID)
		s.list("Ancestors", r.index.Ancestors(v.ID))
		s.list("Child Structs", r.index.ChildStructs(v.ID))
	case *model.Module:
		s.flag("Private", v.IsPrivate)
		r.containerListings(s, v.ID)
	case *model.Interface:
		s.flag("Private", v.IsPrivate)
		r.containerListings(s, v.ID)
	case *model.Implementation:
		s.ref("Container", v.Container)
		s.expr("Module", v.Module)
		s.flag("Optional", v.IsOptional)
	case *model.Hook:
		s.expr("Function", v.Function)
		s.expr("Hook Function", v.HookFunction)
	case *model.Keyword:
		s.expr("Target", v.Target)
		s.flag("Private", v.IsPrivate)
	case *model.TextMacro:
		s.values("Parameters", v.Parameters)
		s.flag("Once", v.IsOnce)
	case *model.TextMacroInstance:
		s.expr("Text Macro", v.TextMacro)
		s.values("Arguments", v.Arguments)
		s.flag("Optional", v.IsOptional)
	case *model.ExternalCall:
		s.text("Arguments", v.Arguments)
	}
	return s.out
}

func (r *Renderer) globalSections(s *sections, g *model.Global) {
	s.expr("Type", g.Type)
	s.expr("Value", g.Value)
	s.expr("Size", g.Size)
	s.flag("Constant", g.IsConstant)
	s.flag("Array", g.IsArray)
	s.flag("Private", g.IsPrivate)
	s.flag("Public", g.IsPublic)
}

func (r *Renderer) functionSections(s *sections, f *model.Function) {
	s.expr("Return Type", f.ReturnType)
	s.flag("Native", f.IsNative)
	s.flag("Constant", f.IsConstant)
	s.flag("Private", f.IsPrivate)
	s.flag("Public", f.IsPublic)
}

func (r *Renderer) containerListings(s *sections, id model.ObjectID) {
	s.list("Members", r.index.Members(id))
	s.list("Methods", r.index.Methods(id))
	s.list("Implementations", r.index.Implementations(id))
}

func (r *Renderer) ownedListings(s *sections, id model.ObjectID) {
	s.list("Parameters", r.index.Parameters(id))
	s.list("Locals", r.index.Locals(id))
}
