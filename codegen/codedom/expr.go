package codedom

// ExprKind identifies the category of an expression or statement.
type ExprKind int

const (
	KindFieldRef  ExprKind = iota // this.<field>
	KindValueRef                  // the implicit setter argument
	KindPrimitive                 // literal value
	KindReturn                    // return <expr>
	KindAssign                    // <target> = <value>
)

// String returns the string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case KindFieldRef:
		return "FieldRef"
	case KindValueRef:
		return "ValueRef"
	case KindPrimitive:
		return "Primitive"
	case KindReturn:
		return "Return"
	case KindAssign:
		return "Assign"
	default:
		return "Unknown"
	}
}

// Expr is an expression in a member body.
type Expr interface {
	Kind() ExprKind
	expr()
}

// Statement is a statement in a member body.
type Statement interface {
	Kind() ExprKind
	stmt()
}

// FieldRef references a field of the enclosing instance.
type FieldRef struct {
	Name string
}

func (FieldRef) Kind() ExprKind { return KindFieldRef }
func (FieldRef) expr()          {}

// ValueRef references the value passed to a property setter.
type ValueRef struct{}

func (ValueRef) Kind() ExprKind { return KindValueRef }
func (ValueRef) expr()          {}

// Primitive is a literal: string, bool, int64, float64, or nil.
type Primitive struct {
	Value any
}

func (Primitive) Kind() ExprKind { return KindPrimitive }
func (Primitive) expr()          {}

// Return returns Value from the enclosing accessor.
type Return struct {
	Value Expr
}

func (Return) Kind() ExprKind { return KindReturn }
func (Return) stmt()          {}

// Assign stores Value into Target.
type Assign struct {
	Target Expr
	Value  Expr
}

func (Assign) Kind() ExprKind { return KindAssign }
func (Assign) stmt()          {}
