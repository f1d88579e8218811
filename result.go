package minidb

type Result struct {
	rowsAffected int64
}

// LastInsertId is not tracked, rows have no generated keys.
func (r Result) LastInsertId() (int64, error) {
	return 0, nil
}

// RowsAffected returns the number of rows affected by the
// query.
func (r Result) RowsAffected() (int64, error) {
	return r.rowsAffected, nil
}
