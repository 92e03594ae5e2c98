package store

import (
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/sbinet/npyio"
)

// snappySuffix marks a Snappy-compressed ".npy" stream.
const snappySuffix = ".sz"

//----------------------------------------------------------------------------//
// Flat Array I/O
//----------------------------------------------------------------------------//

// WriteInt32 persists data as a 1-D int32 ".npy" file at path and returns
// the file name actually written, which gains a ".sz" suffix under
// WithSnappy.
// Complexity: O(len(data)).
func WriteInt32(path string, data []int32, opts ...Option) (string, error) {
	return writeArray(path, data, gatherOptions(opts))
}

// WriteInt64 persists data as a 1-D int64 ".npy" file at path. Same
// contract as WriteInt32.
func WriteInt64(path string, data []int64, opts ...Option) (string, error) {
	return writeArray(path, data, gatherOptions(opts))
}

// ReadInt32 loads a 1-D int32 array written by WriteInt32. Compression is
// inferred from the ".sz" suffix.
// Complexity: O(len(data)).
func ReadInt32(path string) ([]int32, error) {
	var data []int32
	if err := readArray(path, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// ReadInt64 loads a 1-D int64 array written by WriteInt64.
func ReadInt64(path string) ([]int64, error) {
	var data []int64
	if err := readArray(path, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// writeArray streams one slice into a ".npy" file, optionally behind a
// Snappy writer.
func writeArray(path string, data interface{}, o options) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	if o.snappy {
		path += snappySuffix
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "store: create")
	}
	defer f.Close()

	var w io.Writer = f
	var sz *snappy.Writer
	if o.snappy {
		sz = snappy.NewBufferedWriter(f)
		w = sz
	}
	if err := npyio.Write(w, data); err != nil {
		return "", errors.Wrapf(err, "store: write %s", path)
	}
	if sz != nil {
		if err := sz.Close(); err != nil {
			return "", errors.Wrapf(err, "store: flush %s", path)
		}
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "store: close %s", path)
	}

	return path, nil
}

// readArray loads one ".npy" file into ptr, unwrapping Snappy when the
// file name says so.
func readArray(path string, ptr interface{}) error {
	if path == "" {
		return ErrEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "store: open")
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, snappySuffix) {
		r = snappy.NewReader(f)
	}
	if err := npyio.Read(r, ptr); err != nil {
		return errors.Wrapf(err, "store: read %s", path)
	}

	return nil
}
