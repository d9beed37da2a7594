package ast

// MaxTraversalDepth caps the node-path descent as a guard against
// degenerate trees produced from pathological input.
const MaxTraversalDepth = 1000

// FindNodePath returns the chain of nodes from the root down to the most
// specific node whose span contains the given byte offset. The last
// element is the innermost node; reversing the slice walks the ancestor
// chain outward, which is how the call-site and generic-arg locators
// consume it.
func FindNodePath(root Node, offset int) []Node {
	if root == nil {
		return nil
	}
	path := []Node{root}
	node := root
	for depth := 0; depth < MaxTraversalDepth; depth++ {
		child := childAt(node, offset)
		if child == nil {
			break
		}
		path = append(path, child)
		node = child
	}
	return path
}

// childAt finds the immediate child node whose span contains the offset.
func childAt(node Node, offset int) Node {
	for _, child := range childrenOf(node) {
		if child == nil {
			continue
		}
		if child.Span().Contains(offset) {
			return child
		}
	}
	return nil
}

func childrenOf(node Node) []Node {
	switch n := node.(type) {
	case *Program:
		return statementNodes(n.Statements)
	case *ModDecl:
		return statementNodes(n.Items)
	case *LetStatement:
		out := []Node{}
		if n.Pattern != nil {
			out = append(out, n.Pattern)
		}
		if n.Type != nil {
			out = append(out, n.Type)
		}
		if n.Value != nil {
			out = append(out, n.Value)
		}
		return out
	case *ExpressionStatement:
		if n.Expression != nil {
			return []Node{n.Expression}
		}
	case *ReturnStatement:
		if n.Value != nil {
			return []Node{n.Value}
		}
	case *BlockStatement:
		return statementNodes(n.Statements)
	case *FnDecl:
		out := []Node{}
		if n.Name != nil {
			out = append(out, n.Name)
		}
		for _, p := range n.Params {
			if p.Pattern != nil {
				out = append(out, p.Pattern)
			}
			if p.Type != nil {
				out = append(out, p.Type)
			}
		}
		if n.ReturnType != nil {
			out = append(out, n.ReturnType)
		}
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *StructDecl:
		out := []Node{}
		if n.Name != nil {
			out = append(out, n.Name)
		}
		for _, f := range n.Fields {
			out = append(out, f.Name, f.Type)
		}
		return out
	case *EnumDecl:
		out := []Node{}
		if n.Name != nil {
			out = append(out, n.Name)
		}
		for _, v := range n.Variants {
			out = append(out, v.Name)
			for _, t := range v.Params {
				out = append(out, t)
			}
		}
		return out
	case *TraitDecl:
		out := []Node{}
		if n.Name != nil {
			out = append(out, n.Name)
		}
		for _, m := range n.Methods {
			out = append(out, m)
		}
		return out
	case *TypeAliasDecl:
		out := []Node{}
		if n.Name != nil {
			out = append(out, n.Name)
		}
		if n.Target != nil {
			out = append(out, n.Target)
		}
		return out
	case *ConstDecl:
		out := []Node{}
		if n.Name != nil {
			out = append(out, n.Name)
		}
		if n.Type != nil {
			out = append(out, n.Type)
		}
		if n.Value != nil {
			out = append(out, n.Value)
		}
		return out
	case *StaticDecl:
		out := []Node{}
		if n.Name != nil {
			out = append(out, n.Name)
		}
		if n.Type != nil {
			out = append(out, n.Type)
		}
		if n.Value != nil {
			out = append(out, n.Value)
		}
		return out
	case *ImplDecl:
		out := []Node{}
		if n.Trait != nil {
			out = append(out, n.Trait)
		}
		if n.SelfType != nil {
			out = append(out, n.SelfType)
		}
		return append(out, statementNodes(n.Items)...)
	case *CallExpression:
		out := []Node{}
		if n.Function != nil {
			out = append(out, n.Function)
		}
		if n.Args != nil {
			out = append(out, n.Args)
		}
		return out
	case *MethodCallExpression:
		out := []Node{}
		if n.Receiver != nil {
			out = append(out, n.Receiver)
		}
		if n.Name != nil {
			out = append(out, n.Name)
		}
		if n.Generics != nil {
			out = append(out, n.Generics)
		}
		if n.Args != nil {
			out = append(out, n.Args)
		}
		return out
	case *ArgList:
		out := make([]Node, 0, len(n.Args))
		for _, a := range n.Args {
			out = append(out, a)
		}
		return out
	case *GenericArgList:
		out := make([]Node, 0, len(n.Args))
		for _, a := range n.Args {
			out = append(out, a)
		}
		return out
	case *PathExpression:
		out := []Node{}
		for _, seg := range n.Segments {
			out = append(out, seg.Name)
			if seg.Generics != nil {
				out = append(out, seg.Generics)
			}
		}
		return out
	case *RefExpression:
		if n.Value != nil {
			return []Node{n.Value}
		}
	case *PrefixExpression:
		if n.Right != nil {
			return []Node{n.Right}
		}
	case *InfixExpression:
		out := []Node{}
		if n.Left != nil {
			out = append(out, n.Left)
		}
		if n.Right != nil {
			out = append(out, n.Right)
		}
		return out
	case *TupleLiteral:
		out := make([]Node, 0, len(n.Elements))
		for _, e := range n.Elements {
			out = append(out, e)
		}
		return out
	case *ParenExpression:
		if n.Inner != nil {
			return []Node{n.Inner}
		}
	case *NamedType:
		out := []Node{}
		for _, id := range n.Path {
			out = append(out, id)
		}
		if n.Generics != nil {
			out = append(out, n.Generics)
		}
		return out
	case *RefType:
		if n.Elem != nil {
			return []Node{n.Elem}
		}
	case *TupleType:
		out := make([]Node, 0, len(n.Elems))
		for _, e := range n.Elems {
			out = append(out, e)
		}
		return out
	case *TuplePattern:
		out := make([]Node, 0, len(n.Elements))
		for _, e := range n.Elements {
			out = append(out, e)
		}
		return out
	}
	return nil
}

func statementNodes(stmts []Statement) []Node {
	out := make([]Node, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, s)
	}
	return out
}
