package e2etests

import (
	"strings"

	"github.com/RichardKnop/minidb"
)

func (s *TestSuite) TestStatementErrors() {
	testCases := []struct {
		Name  string
		Query string
		Err   error
	}{
		{
			"Unrecognized keyword",
			"update 1 foo bar",
			minidb.ErrUnrecognizedStatement,
		},
		{
			"Insert missing email",
			"insert 1 foo",
			minidb.ErrSyntax,
		},
		{
			"Insert with negative id",
			"insert -1 foo bar",
			minidb.ErrSyntax,
		},
		{
			"Insert with non numeric id",
			"insert abc foo bar",
			minidb.ErrSyntax,
		},
		{
			"Username too long",
			"insert 1 " + strings.Repeat("a", 33) + " foo@example.com",
			minidb.ErrFieldTooLong,
		},
		{
			"Email too long",
			"insert 1 foo " + strings.Repeat("a", 256),
			minidb.ErrFieldTooLong,
		},
	}

	for _, aTestCase := range testCases {
		s.Run(aTestCase.Name, func() {
			_, err := s.db.Exec(aTestCase.Query)
			s.Require().Error(err)
			s.ErrorIs(err, aTestCase.Err)
		})
	}

	// None of the failed statements stored anything
	s.Empty(s.collectUsers("select"))
}

func (s *TestSuite) TestUnsupportedFeatures() {
	s.Run("Transactions", func() {
		_, err := s.db.Begin()
		s.Require().Error(err)
	})

	s.Run("Placeholders", func() {
		_, err := s.db.Exec("insert 1 foo bar", "baz")
		s.Require().Error(err)
	})
}
