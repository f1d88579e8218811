package minidbtest

import (
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/RichardKnop/minidb/internal/minidb"
)

type DataGen struct {
	*gofakeit.Faker
}

func NewDataGen(seed int64) *DataGen {
	g := DataGen{
		Faker: gofakeit.New(seed),
	}

	return &g
}

func (g *DataGen) Rows(number int) []minidb.Row {
	rows := make([]minidb.Row, 0, number)
	for i := 0; i < number; i++ {
		rows = append(rows, g.Row())
	}
	return rows
}

// Row generates a row with text fields within their column widths
func (g *DataGen) Row() minidb.Row {
	return minidb.Row{
		ID:       g.Uint32(),
		Username: token(g.Username(), minidb.UsernameSize),
		Email:    token(g.Email(), minidb.EmailSize),
	}
}

// MaxWidthRow generates a row with text fields filling their full widths
func (g *DataGen) MaxWidthRow() minidb.Row {
	return minidb.Row{
		ID:       g.Uint32(),
		Username: g.Lexify(strings.Repeat("?", minidb.UsernameSize)),
		Email:    g.Lexify(strings.Repeat("?", minidb.EmailSize-len("@example.com"))) + "@example.com",
	}
}

// InsertLine renders a row as an insert command
func InsertLine(aRow minidb.Row) string {
	return strings.Join([]string{
		"insert",
		strconv.FormatUint(uint64(aRow.ID), 10),
		aRow.Username,
		aRow.Email,
	}, " ")
}

// token strips whitespace so the value survives tokenizing an insert line
func token(s string, n int) string {
	s = strings.Join(strings.Fields(s), "")
	if len(s) > n {
		return s[:n]
	}
	return s
}
