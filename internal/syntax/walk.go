package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	// Types
	case *PtrType:
		Walk(n.Elem, v)
	case *RefType:
		Walk(n.Elem, v)
	case *ObjectType:
		for _, g := range n.Generics {
			Walk(g, v)
		}
	case *ScopeType:
		Walk(n.Nested, v)
	case *FuncType:
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Ret != nil {
			Walk(n.Ret, v)
		}

	// Expressions
	case *ScopeExpr:
		Walk(n.Nested, v)
	case *MemberExpr:
		Walk(n.Nested, v)
	case *RefExpr:
		Walk(n.Inner, v)
	case *DerefExpr:
		Walk(n.Inner, v)
	case *IndexExpr:
		Walk(n.Nested, v)
		Walk(n.Index, v)
	case *BinaryExpr:
		Walk(n.LHS, v)
		Walk(n.RHS, v)
	case *UnaryExpr:
		Walk(n.Inner, v)
	case *CallExpr:
		Walk(n.Callee, v)
		for _, g := range n.Generics {
			Walk(g, v)
		}
		for _, a := range n.Args {
			Walk(a, v)
		}
	case *RangeExpr:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	// Statements
	case *NamespaceStmt:
		for _, s := range n.Body {
			Walk(s, v)
		}
	case *VariableStmt:
		if n.TypeAnn != nil {
			Walk(n.TypeAnn, v)
		}
		if n.Value != nil {
			Walk(n.Value, v)
		}
	case *GenericsStmt:
		if n.Bound != nil {
			Walk(n.Bound, v)
		}
	case *ParameterStmt:
		if n.TypeAnn != nil {
			Walk(n.TypeAnn, v)
		}
	case *FunctionStmt:
		for _, g := range n.Generics {
			Walk(g, v)
		}
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Ret != nil {
			Walk(n.Ret, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}
	case *AssignmentStmt:
		Walk(n.Target, v)
		Walk(n.Value, v)
	case *ExprStmt:
		Walk(n.X, v)
	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}
	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}
	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)
	case *ForStmt:
		Walk(n.Value, v)
		Walk(n.Body, v)
	case *TryCatchStmt:
		Walk(n.Try, v)
		if n.CatchType != nil {
			Walk(n.CatchType, v)
		}
		if n.Catch != nil {
			Walk(n.Catch, v)
		}
		if n.Finally != nil {
			Walk(n.Finally, v)
		}
	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, v)
		}
	case *ImportStmt:
		for _, f := range n.Qualified {
			Walk(f, v)
		}
		for _, i := range n.Items {
			Walk(i, v)
		}
	case *StructFieldStmt:
		if n.TypeAnn != nil {
			Walk(n.TypeAnn, v)
		}
	case *StructStmt:
		for _, g := range n.Generics {
			Walk(g, v)
		}
		for _, f := range n.Fields {
			Walk(f, v)
		}
	case *EnumVariantStmt:
		if n.Value != nil {
			Walk(n.Value, v)
		}
	case *EnumStmt:
		for _, g := range n.Generics {
			Walk(g, v)
		}
		for _, variant := range n.Variants {
			Walk(variant, v)
		}

		// Leaf nodes (LiteralType, VoidType, LiteralExpr, VariableExpr,
		// NoneExpr, DefaultStmt, BreakStmt, ContinueStmt, ImportFieldStmt,
		// ImportItemStmt): no children to visit.
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
