package main

import (
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

// Usage: ast Expr [output.go]
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ast Expr [output.go]")
		return
	}

	var out string
	switch os.Args[1] {
	case "Expr":
		out = generateAst("Expr", []string{
			"Binary: Left Expr, Operator tokens.Token, Right Expr",
			"Grouping: Expression Expr",
			"Literal: Value interface{}",
			"Unary: Operator tokens.Token, Right Expr",
		})
	default:
		log.Fatalf("unknown base type %q", os.Args[1])
	}

	src, err := format.Source([]byte(out))
	if err != nil {
		log.Fatal(err)
	}

	if len(os.Args) < 3 {
		fmt.Print(string(src))
		return
	}
	if err := ioutil.WriteFile(os.Args[2], src, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"
	out += "import \"github.com/mliezun/lox/internal/tokens\"\n\n"

	// Start base interface
	out += fmt.Sprintf("// %s is a node of the syntax tree. The set of implementations is closed.\n", baseName)
	out += "type " + baseName + " interface {\n"
	out += "\tAccept(" + baseName + "Visitor) R\n"
	out += "\t" + strings.ToLower(baseName) + "()\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("// %sVisitor has one method per %s variant.\n", baseName, baseName)
	out += fmt.Sprintf("type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		out += "\tVisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + name + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	out := "type " + name + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + name + ") Accept(visitor " + baseName + "Visitor) R {\n"
	out += "\treturn visitor.Visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	out += "func (s *" + name + ") " + strings.ToLower(baseName) + "() {}\n\n"
	// End Method Definition

	return out
}
