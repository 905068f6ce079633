package invert

import (
	"io"

	"github.com/CodisLabs/codis/pkg/utils/errors"
)

var ErrEmptyBuffer = errors.New("invert: empty buffer")

// OpError records which side of a Copy failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return e.Op + " failed: " + errors.Cause(e.Err).Error()
}

// Copy reads src in chunks of len(buf) bytes, inverts every byte of each
// chunk and writes it to dst, until src reports io.EOF.
//
// Every read fills buf unless the stream ends first, so only the final
// chunk may be short. Only the bytes actually read are written. If a read
// fails after returning some bytes, those bytes are still written before
// the read error is returned.
func Copy(dst io.Writer, src io.Reader, buf []byte) (written int64, err error) {
	if len(buf) == 0 {
		return 0, errors.Trace(ErrEmptyBuffer)
	}
	for {
		n, rerr := io.ReadFull(src, buf)
		if n != 0 {
			var p = buf[:n]
			Bytes(p)
			nw, werr := dst.Write(p)
			written += int64(nw)
			if werr == nil && nw != n {
				werr = io.ErrShortWrite
			}
			if werr != nil {
				return written, &OpError{"write", errors.Trace(werr)}
			}
		}
		switch rerr {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			return written, nil
		default:
			return written, &OpError{"read", errors.Trace(rerr)}
		}
	}
}
