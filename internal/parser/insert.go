package parser

import (
	"fmt"
	"strconv"

	"github.com/RichardKnop/minidb/internal/minidb"
)

// insert <id> <username> <email>
func (p *parser) doParseInsert() error {
	switch p.step {
	case stepInsertID:
		aToken := p.pop()
		id, err := strconv.ParseUint(aToken.Value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: invalid id '%s'", minidb.ErrSyntax, aToken.Value)
		}
		p.Row.ID = uint32(id)
		p.step = stepInsertUsername
	case stepInsertUsername:
		p.Row.Username = p.pop().Value
		p.step = stepInsertEmail
	case stepInsertEmail:
		p.Row.Email = p.pop().Value
		p.step = stepEnd
	}
	return nil
}
