package world

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
)

// The helpers below write and read fixed-size values in little endian. Errors
// are accumulated in the first return value so that long sequences of calls
// can be checked once at the end.

type serializer struct {
	w   io.Writer
	err error
}

func (s *serializer) write(data any) {
	if s.err != nil {
		return
	}
	s.err = binary.Write(s.w, binary.LittleEndian, data)
}

func (s *serializer) writeString(str string) {
	s.write(int64(len(str)))
	s.write([]byte(str))
}

func writeSlice[T any](s *serializer, data []T) {
	s.write(int64(len(data)))
	s.write(data)
}

type deserializer struct {
	r   io.Reader
	err error
}

func (d *deserializer) read(data any) {
	if d.err != nil {
		return
	}
	d.err = binary.Read(d.r, binary.LittleEndian, data)
}

// maxSliceLen guards against allocating absurd amounts of memory when reading
// a corrupt file.
const maxSliceLen = 1 << 26

func (d *deserializer) readLen() int64 {
	var n int64
	d.read(&n)
	if d.err == nil && (n < 0 || n > maxSliceLen) {
		d.err = fmt.Errorf("invalid length: %d", n)
	}
	if d.err != nil {
		return 0
	}
	return n
}

func (d *deserializer) readString() string {
	n := d.readLen()
	buf := make([]byte, n)
	d.read(buf)
	return string(buf)
}

func readSlice[T any](d *deserializer) []T {
	n := d.readLen()
	data := make([]T, n)
	d.read(data)
	return data
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	w := zlib.NewWriter(buf)
	// Writing to a bytes.Buffer does not fail.
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

func Unzip(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
