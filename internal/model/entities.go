package model

// Type is a `type X extends Y` declaration, optionally a sized array type.
type Type struct {
	Base
	Extends Expr
	Size    Expr
}

func (*Type) Kind() Kind { return KindType }

// Global is a variable declared in a globals block.
type Global struct {
	Base
	Type       Expr
	Value      Expr
	Size       Expr
	IsConstant bool
	IsArray    bool
	IsPrivate  bool
	IsPublic   bool
}

func (*Global) Kind() Kind { return KindGlobal }

// Member is a variable declared inside a struct, interface or module.
type Member struct {
	Global
	Container  ObjectID
	IsStatic   bool
	IsDelegate bool
}

func (*Member) Kind() Kind { return KindMember }

// Local is a local variable of a function or method.
type Local struct {
	Base
	Owner   ObjectID
	Type    Expr
	Value   Expr
	IsArray bool
}

func (*Local) Kind() Kind { return KindLocal }

// Parameter is a formal parameter of a function or method.
type Parameter struct {
	Base
	Owner   ObjectID
	Type    Expr
	Ordinal int
}

func (*Parameter) Kind() Kind { return KindParameter }

// Function is a free function or native.
type Function struct {
	Base
	ReturnType Expr
	IsNative   bool
	IsConstant bool
	IsPrivate  bool
	IsPublic   bool
}

func (*Function) Kind() Kind { return KindFunction }

// Method is a function declared inside a struct, interface or module.
type Method struct {
	Function
	Container     ObjectID
	DefaultReturn Expr
	IsStatic      bool
	IsStub        bool
	IsOperator    bool
}

func (*Method) Kind() Kind { return KindMethod }

// Interface is the base shape shared by interfaces, structs and modules.
type Interface struct {
	Base
	IsPrivate bool
}

func (*Interface) Kind() Kind { return KindInterface }

// Struct is a struct declaration; Extends names its base type.
type Struct struct {
	Interface
	Extends Expr
	Size    Expr
}

func (*Struct) Kind() Kind { return KindStruct }

// Module is a module declaration.
type Module struct {
	Interface
}

func (*Module) Kind() Kind { return KindModule }

// Implementation is an `implement [optional] M` statement inside a container.
type Implementation struct {
	Base
	Container  ObjectID
	Module     Expr
	IsOptional bool
}

func (*Implementation) Kind() Kind { return KindImplementation }

// Hook is a `hook F H` statement: H runs before every call of F.
type Hook struct {
	Base
	Function     Expr
	HookFunction Expr
}

func (*Hook) Kind() Kind { return KindHook }

// Keyword is a forward declaration of a name defined later.
type Keyword struct {
	Base
	Target    Expr
	IsPrivate bool
}

func (*Keyword) Kind() Kind { return KindKeyword }

// TextMacro is a `//! textmacro` definition.
type TextMacro struct {
	Base
	Parameters []string
	IsOnce     bool
}

func (*TextMacro) Kind() Kind { return KindTextMacro }

// TextMacroInstance is a `//! runtextmacro` statement.
type TextMacroInstance struct {
	Base
	TextMacro  Expr
	Arguments  []string
	IsOptional bool
}

func (*TextMacroInstance) Kind() Kind { return KindTextMacroInstance }

// ExternalCall is a `//! external` tool invocation.
type ExternalCall struct {
	Base
	Arguments string
}

func (*ExternalCall) Kind() Kind { return KindExternalCall }

// ContainerOf returns the container key of members, methods and
// implementations.
func ContainerOf(o Object) (ObjectID, bool) {
	switch v := o.(type) {
	case *Member:
		return v.Container, true
	case *Method:
		return v.Container, true
	case *Implementation:
		return v.Container, true
	}
	return NoObject, false
}

// OwnerOf returns the function-like owner key of parameters and locals.
func OwnerOf(o Object) (ObjectID, bool) {
	switch v := o.(type) {
	case *Parameter:
		return v.Owner, true
	case *Local:
		return v.Owner, true
	}
	return NoObject, false
}
