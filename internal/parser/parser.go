package parser

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/RichardKnop/minidb/internal/minidb"
)

type step int

const (
	stepBeginning step = iota + 1
	stepInsertID
	stepInsertUsername
	stepInsertEmail
	stepEnd
)

type parser struct {
	minidb.Statement
	i      int // current token
	line   string
	tokens []Token
	step   step
	err    error
	logger *zap.Logger
}

func New(logger *zap.Logger) *parser {
	return &parser{logger: logger}
}

// Parse turns one command line into a statement. It returns
// minidb.ErrUnrecognizedStatement, minidb.ErrSyntax or minidb.ErrFieldTooLong.
func (p *parser) Parse(ctx context.Context, line string) (minidb.Statement, error) {
	p.reset()
	p.line = line
	p.tokens = Tokenize(line)

	stmt, err := p.doParse()
	p.err = err
	if p.err == nil {
		p.err = p.validate()
	}
	p.logError()
	if p.err != nil {
		return minidb.Statement{}, p.err
	}
	return stmt, nil
}

func (p *parser) reset() {
	p.Statement = minidb.Statement{}
	p.i = 0
	p.line = ""
	p.tokens = nil
	p.step = stepBeginning
	p.err = nil
}

func (p *parser) doParse() (minidb.Statement, error) {
	if len(p.tokens) == 0 {
		return minidb.Statement{}, fmt.Errorf("%w: empty line", minidb.ErrUnrecognizedStatement)
	}

	for p.i < len(p.tokens) {
		switch p.step {
		case stepBeginning:
			aToken := p.peek()
			if aToken.Kind != Keyword {
				return p.Statement, fmt.Errorf("%w: unrecognized keyword at start of '%s'", minidb.ErrUnrecognizedStatement, p.line)
			}
			switch aToken.Value {
			case "insert":
				p.Kind = minidb.Insert
				p.pop()
				p.step = stepInsertID
			case "select":
				p.Kind = minidb.Select
				p.pop()
				p.step = stepEnd
			}
		case stepInsertID, stepInsertUsername, stepInsertEmail:
			if err := p.doParseInsert(); err != nil {
				return p.Statement, err
			}
		case stepEnd:
			return p.Statement, p.unexpectedToken()
		}
	}

	return p.Statement, nil
}

func (p *parser) validate() error {
	switch p.Kind {
	case minidb.Insert:
		if p.step != stepEnd {
			return fmt.Errorf("%w: insert expects id, username and email", minidb.ErrSyntax)
		}
		return p.Row.Validate()
	case minidb.Select:
		return nil
	}
	return minidb.ErrUnrecognizedStatement
}

func (p *parser) unexpectedToken() error {
	aToken := p.peek()
	if p.Kind == minidb.Select {
		// select takes no arguments, anything else is not a statement we know
		return fmt.Errorf("%w: unexpected '%s' after select", minidb.ErrUnrecognizedStatement, aToken.Value)
	}
	return fmt.Errorf("%w: unexpected '%s' at position %d", minidb.ErrSyntax, aToken.Value, aToken.Pos)
}

func (p *parser) peek() Token {
	if p.i >= len(p.tokens) {
		return Token{}
	}
	return p.tokens[p.i]
}

func (p *parser) pop() Token {
	aToken := p.peek()
	p.i += 1
	return aToken
}

func (p *parser) logError() {
	if p.err == nil {
		return
	}
	pos := len(p.line)
	if p.i < len(p.tokens) {
		pos = p.tokens[p.i].Pos
	}
	p.logger.Sugar().With(
		"line", p.line,
		"marker", strings.Repeat(" ", pos)+"^",
		"error", p.err,
	).Debug("failed to parse statement")
}
