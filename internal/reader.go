package internal

import (
	"fmt"
	"strconv"
)

//R generic type
type R interface{}

// PrintTree renders expr as an s-expression, e.g. (* (group (+ 1 2)) 3)
func PrintTree(expr Expr) string {
	if expr == nil {
		return ""
	}
	return expr.Accept(stringVisitor{}).(string)
}

type stringVisitor struct{}

func (v stringVisitor) VisitBinaryExpr(expr *Binary) R {
	return fmt.Sprintf("(%s %v %v)", expr.Operator.Lexeme, expr.Left.Accept(v), expr.Right.Accept(v))
}

func (v stringVisitor) VisitGroupingExpr(expr *Grouping) R {
	return fmt.Sprintf("(group %v)", expr.Expression.Accept(v))
}

func (v stringVisitor) VisitLiteralExpr(expr *Literal) R {
	switch value := expr.Value.(type) {
	case nil:
		return "nil"
	case string:
		return "\"" + value + "\""
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", expr.Value)
}

func (v stringVisitor) VisitUnaryExpr(expr *Unary) R {
	return fmt.Sprintf("(%s %v)", expr.Operator.Lexeme, expr.Right.Accept(v))
}
