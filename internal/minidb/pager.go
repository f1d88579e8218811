package minidb

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/RichardKnop/minidb/pkg/bitwise"
)

// pagerImpl keeps all pages in one contiguous arena indexed by page number.
// A page slot counts as allocated once its bit is set, pages are never freed.
type pagerImpl struct {
	arena     []byte
	allocated *bitwise.Bitmap
	logger    *zap.Logger
}

func NewPager(logger *zap.Logger) *pagerImpl {
	return &pagerImpl{
		arena:     make([]byte, MaxPages*PageSize),
		allocated: bitwise.NewBitmap(MaxPages),
		logger:    logger,
	}
}

func (p *pagerImpl) TotalPages() uint32 {
	return uint32(p.allocated.Count())
}

func (p *pagerImpl) IsAllocated(pageIdx PageIndex) bool {
	return p.allocated.IsSet(int(pageIdx))
}

func (p *pagerImpl) WriteRow(ctx context.Context, rowIdx uint32, buf []byte) error {
	if len(buf) != RowSize {
		return fmt.Errorf("invalid row size %d, expected %d", len(buf), RowSize)
	}

	pageIdx, offset, err := RowSlot(rowIdx)
	if err != nil {
		return err
	}

	if !p.IsAllocated(pageIdx) {
		p.allocatePage(pageIdx)
	}

	copy(p.page(pageIdx)[offset:offset+RowSize], buf)

	return nil
}

func (p *pagerImpl) ReadRow(ctx context.Context, rowIdx uint32) ([]byte, error) {
	pageIdx, offset, err := RowSlot(rowIdx)
	if err != nil {
		return nil, err
	}

	if !p.IsAllocated(pageIdx) {
		return nil, fmt.Errorf("%w: reading row %d from page %d", ErrPageNotAllocated, rowIdx, pageIdx)
	}

	buf := make([]byte, RowSize)
	copy(buf, p.page(pageIdx)[offset:offset+RowSize])

	return buf, nil
}

func (p *pagerImpl) allocatePage(pageIdx PageIndex) {
	p.logger.Sugar().With(
		"page_index", pageIdx,
		"total_pages", p.TotalPages(),
		"max_pages", p.allocated.Len(),
	).Debug("allocating page")

	clear(p.page(pageIdx))
	p.allocated.Set(int(pageIdx))
}

func (p *pagerImpl) page(pageIdx PageIndex) []byte {
	start := int(pageIdx) * PageSize
	return p.arena[start : start+PageSize : start+PageSize]
}
