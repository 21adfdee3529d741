package tapevm

import "io"

// ReaderDevice reads exactly one byte per call from R, without buffering ahead.
type ReaderDevice struct {
	R   io.Reader
	buf [1]byte
}

var _ io.ByteReader = new(ReaderDevice)

func (d *ReaderDevice) ReadByte() (byte, error) {
	if _, err := io.ReadFull(d.R, d.buf[:]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}
