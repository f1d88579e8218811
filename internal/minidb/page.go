package minidb

import (
	"fmt"
)

type PageIndex uint32

// RowSlot maps a row index to its page and the byte offset within that page
func RowSlot(rowIdx uint32) (PageIndex, uint32, error) {
	pageIdx := rowIdx / RowsPerPage
	if pageIdx >= MaxPages {
		return 0, 0, fmt.Errorf("%w: row %d would be on page %d, max pages %d", ErrRowOutOfRange, rowIdx, pageIdx, MaxPages)
	}
	return PageIndex(pageIdx), (rowIdx % RowsPerPage) * RowSize, nil
}
