/*
File : lox/parser/parser_declarations.go

declaration → classDecl | funDecl | varDecl | statement, plus panic-mode
recovery: a diagnostic raised while parsing a declaration synchronizes
to the next statement boundary rather than aborting the whole parse.
*/
package parser

import "lox/lexer"

const maxParams = 255

func (p *Parser) declaration() (stmt Stmt) {
	startErrors := p.hadError
	defer func() {
		if p.hadError && !startErrors {
			p.synchronize()
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// classDeclaration parses `class NAME ( "<" IDENT )* "{" member* "}"`.
// A member with no `(` after its name is a getter; a member beginning
// with the `class` keyword is a class (static) method.
func (p *Parser) classDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclasses []*VariableExpr
	for p.match(lexer.LESS) {
		superName := p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		if superName.Lexeme == name.Lexeme {
			p.errorAt(superName, "A class can't inherit from itself.")
		}
		superclasses = append(superclasses, &VariableExpr{Name: superName})
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods, classMethods []*FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.atEnd() {
		isClassMethod := p.match(lexer.CLASS)
		method := p.function("method")
		if isClassMethod {
			classMethods = append(classMethods, method)
		} else {
			methods = append(methods, method)
		}
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")
	return &ClassStmt{Name: name, Superclasses: superclasses, Methods: methods, ClassMethods: classMethods}
}

// function parses a name, an optional parameter list, and a body block.
// A name with no following "(" is a getter: zero arguments, no parens.
func (p *Parser) function(kind string) *FunctionStmt {
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")

	if kind == "method" && !p.check(lexer.LEFT_PAREN) {
		p.consume(lexer.LEFT_BRACE, "Expect '{' before getter body.")
		body := p.block()
		return &FunctionStmt{Name: name, Body: body, IsGetter: true}
	}

	params := p.paramList(kind)
	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) paramList(kind string) []lexer.Token {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxParams {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	return params
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	var init Expr
	if p.match(lexer.EQUAL) {
		init = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Init: init}
}
