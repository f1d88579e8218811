package e2etests

import (
	"database/sql"

	"github.com/RichardKnop/minidb/internal/minidb"
	"github.com/RichardKnop/minidb/internal/minidb/minidbtest"
)

func (s *TestSuite) TestEmptyDatabase() {
	err := s.db.Ping()
	s.Require().NoError(err)

	users := s.collectUsers("select")
	s.Empty(users)
}

func (s *TestSuite) TestInsertAndSelect() {
	s.Run("Insert single user", func() {
		s.execQuery("insert 1 user1 person1@example.com", 1)

		users := s.collectUsers("select")
		s.Require().Len(users, 1)
		s.Equal(user{ID: 1, Username: "user1", Email: "person1@example.com"}, users[0])
	})

	s.Run("Rows are returned in insertion order", func() {
		rows := gen.Rows(20)
		for _, aRow := range rows {
			s.execQuery(minidbtest.InsertLine(aRow), 1)
		}

		users := s.collectUsers("select")
		s.Require().Len(users, 21)
		for i, aRow := range rows {
			s.Equal(int64(aRow.ID), users[i+1].ID)
			s.Equal(aRow.Username, users[i+1].Username)
			s.Equal(aRow.Email, users[i+1].Email)
		}
	})

	s.Run("Duplicate ids are stored as separate rows", func() {
		s.execQuery("insert 1 user1 person1@example.com", 1)

		users := s.collectUsers("select")
		s.Require().Len(users, 22)
		s.Equal(users[0], users[21])
	})
}

func (s *TestSuite) TestMaxWidthFields() {
	aRow := gen.MaxWidthRow()
	s.execQuery(minidbtest.InsertLine(aRow), 1)

	users := s.collectUsers("select")
	s.Require().Len(users, 1)
	s.Equal(aRow.Username, users[0].Username)
	s.Equal(aRow.Email, users[0].Email)
}

func (s *TestSuite) TestConnectionsShareTable() {
	s.execQuery("insert 7 shared shared@example.com", 1)

	other, err := sql.Open("minidb", s.dbName)
	s.Require().NoError(err)
	defer other.Close()

	var aUser user
	err = other.QueryRow("select").Scan(&aUser.ID, &aUser.Username, &aUser.Email)
	s.Require().NoError(err)
	s.Equal(user{ID: 7, Username: "shared", Email: "shared@example.com"}, aUser)

	s.Run("Different name means a different table", func() {
		another, err := sql.Open("minidb", s.dbName+"_other")
		s.Require().NoError(err)
		defer another.Close()

		err = another.QueryRow("select").Scan(&aUser.ID, &aUser.Username, &aUser.Email)
		s.ErrorIs(err, sql.ErrNoRows)
	})
}

func (s *TestSuite) TestTableFull() {
	rows := gen.Rows(minidb.MaxRows)
	for _, aRow := range rows {
		s.execQuery(minidbtest.InsertLine(aRow), 1)
	}

	_, err := s.db.Exec("insert 1 one one@example.com")
	s.Require().Error(err)
	s.ErrorIs(err, minidb.ErrTableFull)

	users := s.collectUsers("select")
	s.Require().Len(users, minidb.MaxRows)
	s.Equal(int64(rows[len(rows)-1].ID), users[len(users)-1].ID)
}
