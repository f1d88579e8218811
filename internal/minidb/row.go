package minidb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Validate checks text fields fit their column widths. Over-width values
// are rejected rather than truncated so fixed offsets stay intact. NUL is
// the padding byte, so it cannot appear inside a value.
func (r Row) Validate() error {
	var err error
	if len(r.Username) > UsernameSize {
		err = multierr.Append(err, fmt.Errorf("%w: username is %d bytes, max %d", ErrFieldTooLong, len(r.Username), UsernameSize))
	}
	if i := strings.IndexByte(r.Username, 0); i >= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: username contains NUL byte at %d", ErrSyntax, i))
	}
	if len(r.Email) > EmailSize {
		err = multierr.Append(err, fmt.Errorf("%w: email is %d bytes, max %d", ErrFieldTooLong, len(r.Email), EmailSize))
	}
	if i := strings.IndexByte(r.Email, 0); i >= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: email contains NUL byte at %d", ErrSyntax, i))
	}
	return err
}

// Marshal writes the row into buf using the fixed layout:
//
//	[0:4]    id, little endian
//	[4:36]   username, zero padded
//	[36:291] email, zero padded
func (r Row) Marshal(buf []byte) error {
	if len(buf) < RowSize {
		return fmt.Errorf("row buffer too small: %d bytes, need %d", len(buf), RowSize)
	}
	if err := r.Validate(); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(buf[IDOffset:], r.ID)
	serializeString(r.Username, buf[UsernameOffset:UsernameOffset+UsernameSize])
	serializeString(r.Email, buf[EmailOffset:EmailOffset+EmailSize])

	return nil
}

func UnmarshalRow(buf []byte, aRow *Row) error {
	if len(buf) < RowSize {
		return fmt.Errorf("row buffer too small: %d bytes, need %d", len(buf), RowSize)
	}

	aRow.ID = binary.LittleEndian.Uint32(buf[IDOffset:])
	aRow.Username = deserializeToString(buf[UsernameOffset : UsernameOffset+UsernameSize])
	aRow.Email = deserializeToString(buf[EmailOffset : EmailOffset+EmailSize])

	return nil
}

func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}

// Values returns column values in RowColumns order
func (r Row) Values() []any {
	return []any{r.ID, r.Username, r.Email}
}

func serializeString(value string, dst []byte) {
	n := copy(dst, value)
	clear(dst[n:])
}

// deserializeToString cuts the value at the first padding byte,
// a field filled to its full width has no terminator.
func deserializeToString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return string(src)
}
