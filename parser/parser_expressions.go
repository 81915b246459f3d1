/*
File : lox/parser/parser_expressions.go

Expression grammar, precedence low to high:
  expression → comma
  comma      → assignment ( "," assignment )*
  assignment → ( call "." IDENT | IDENT ) "=" assignment | logic_or
  logic_or   → logic_and ( "or" logic_and )*
  logic_and  → ternary   ( "and" ternary )*
  ternary    → equality ( "?" equality ":" ternary )?
  equality   → comparison ( ( "!=" | "==" ) comparison )*
  comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
  term       → factor ( ( "-" | "+" ) factor )*
  factor     → unary ( ( "/" | "*" ) unary )*
  unary      → ( "!" | "-" ) unary | call
  call       → primary ( "(" args? ")" | "." IDENT )*
  primary    → NUMBER | STRING | "true" | "false" | "nil"
             | "this" | "super" "." IDENT
             | IDENT | "(" expression ")"
             | "fun" "(" params? ")" block
*/
package parser

import "lox/lexer"

func (p *Parser) expression() Expr {
	return p.comma()
}

func (p *Parser) comma() Expr {
	expr := p.assignment()
	for p.match(lexer.COMMA) {
		expr = p.assignment()
	}
	return expr
}

func (p *Parser) assignment() Expr {
	expr := p.logicOr()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Name: target.Name, Value: value}
		case *GetExpr:
			return &SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
		}
	}
	return expr
}

func (p *Parser) logicOr() Expr {
	expr := p.logicAnd()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.logicAnd()
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() Expr {
	expr := p.ternary()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.ternary()
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) ternary() Expr {
	cond := p.equality()
	if p.match(lexer.QUESTION) {
		then := p.equality()
		p.consume(lexer.COLON, "Expect ':' after then-branch of ternary expression.")
		elseBranch := p.ternary()
		return &TernaryExpr{Cond: cond, Then: then, Else: elseBranch}
	}
	return cond
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// binaryMissingLeft are the operators that can only ever be valid as an
// infix operator. Seeing one where a unary-or-higher expression was
// expected means the left operand was dropped; recover by parsing the
// right side anyway and returning a placeholder the resolver can still
// walk. It is filled in init because unary itself reads it.
var binaryMissingLeft map[lexer.TokenKind]func(*Parser) Expr

func init() {
	binaryMissingLeft = map[lexer.TokenKind]func(*Parser) Expr{
		lexer.BANG_EQUAL:    (*Parser).comparison,
		lexer.EQUAL_EQUAL:   (*Parser).comparison,
		lexer.GREATER:       (*Parser).term,
		lexer.GREATER_EQUAL: (*Parser).term,
		lexer.LESS:          (*Parser).term,
		lexer.LESS_EQUAL:    (*Parser).term,
		lexer.PLUS:          (*Parser).factor,
		lexer.SLASH:         (*Parser).unary,
		lexer.STAR:          (*Parser).unary,
	}
}

func (p *Parser) unary() Expr {
	if rhs, ok := binaryMissingLeft[p.peek().Kind]; ok {
		op := p.advance()
		p.errorAt(op, "Binary operator needs left and right operand.")
		right := rhs(p)
		return &BinaryExpr{Left: nil, Op: op, Right: right}
	}

	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return &UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = &GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxParams {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.assignment())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return &LiteralExpr{Value: false}
	case p.match(lexer.TRUE):
		return &LiteralExpr{Value: true}
	case p.match(lexer.NIL):
		return &LiteralExpr{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &LiteralExpr{Value: p.previous().Literal}
	case p.match(lexer.THIS):
		return &ThisExpr{Keyword: p.previous()}
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return &SuperExpr{Keyword: keyword, Method: method}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Inner: expr}
	case p.match(lexer.FUN):
		return p.lambda()
	default:
		p.errorAt(p.peek(), "Expect expression.")
		p.advance()
		return &LiteralExpr{Value: nil}
	}
}

func (p *Parser) lambda() Expr {
	keyword := p.previous()
	params := p.paramList("lambda")
	p.consume(lexer.LEFT_BRACE, "Expect '{' before lambda body.")
	body := p.block()
	return &LambdaExpr{Keyword: keyword, Params: params, Body: body}
}
