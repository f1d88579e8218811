package e2etests

func (s *TestSuite) TestPreparedStmts() {
	s.Run("Insert user", func() {
		stmt, err := s.db.Prepare("insert 3 prepared prepared@example.com")
		s.Require().NoError(err)
		defer stmt.Close()

		for i := 0; i < 2; i++ {
			aResult, err := stmt.Exec()
			s.Require().NoError(err)

			rowsAffected, err := aResult.RowsAffected()
			s.Require().NoError(err)
			s.Require().Equal(int64(1), rowsAffected)
		}
	})

	s.Run("Select users", func() {
		stmt, err := s.db.Prepare("select")
		s.Require().NoError(err)
		defer stmt.Close()

		rows, err := stmt.Query()
		s.Require().NoError(err)
		defer rows.Close()

		var users []user
		for rows.Next() {
			var aUser user
			s.Require().NoError(rows.Scan(&aUser.ID, &aUser.Username, &aUser.Email))
			users = append(users, aUser)
		}
		s.Require().NoError(rows.Err())
		s.Require().Len(users, 2)
		s.Equal(user{ID: 3, Username: "prepared", Email: "prepared@example.com"}, users[1])
	})

	s.Run("Preparing an invalid statement fails", func() {
		_, err := s.db.Prepare("insert 3 prepared")
		s.Require().Error(err)
	})
}
