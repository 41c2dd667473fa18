// File: filex.go
// Title: Durable Descriptor I/O
// Description: Implements WriteAll, ReadAll, WriteFile and ReadFile with
//              EINTR retry on top of golang.org/x/sys/unix.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: WriteAll and ReadAll
// - 2026-10-16 v0.2.0: File wrappers

//go:build unix

package filex

import (
	"io"

	"golang.org/x/sys/unix"

	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
)

// FileMode is the permission used when WriteFile creates a file
const FileMode = 0o644

// replaced in tests to inject interrupted calls
var (
	sysWrite = unix.Write
	sysRead  = unix.Read
)

// WriteAll writes all of p to fd and returns the number of bytes written.
// Interrupted writes are retried. On failure the count reached so far is
// returned along with an IO_ERROR.
func WriteAll(fd int, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := sysWrite(fd, p[total:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return total, mdwerrors.IOFailed(mdwerrors.ModuleFilex, "write_all", err)
		}
		if n == 0 {
			return total, mdwerrors.IOFailed(mdwerrors.ModuleFilex, "write_all", io.ErrShortWrite)
		}
		total += n
	}
	return total, nil
}

// ReadAll reads from fd until p is full or end of file and returns the
// number of bytes read. Interrupted reads are retried.
func ReadAll(fd int, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := sysRead(fd, p[total:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return total, mdwerrors.IOFailed(mdwerrors.ModuleFilex, "read_all", err)
		}
		if n == 0 {
			break
		}
		total += n
	}
	return total, nil
}

// WriteFile creates or truncates name and writes all of p to it.
func WriteFile(name string, p []byte) (int, error) {
	fd, err := openRetry(name, unix.O_CREAT|unix.O_WRONLY|unix.O_TRUNC|unix.O_CLOEXEC, FileMode)
	if err != nil {
		return 0, mdwerrors.IOFailed(mdwerrors.ModuleFilex, "write_file", err).WithDetail("path", name)
	}

	n, err := WriteAll(fd, p)
	if cerr := unix.Close(fd); err == nil && cerr != nil {
		err = mdwerrors.IOFailed(mdwerrors.ModuleFilex, "write_file", cerr).WithDetail("path", name)
	}
	return n, err
}

// ReadFile reads up to len(p) bytes from the start of name.
func ReadFile(name string, p []byte) (int, error) {
	fd, err := openRetry(name, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return 0, mdwerrors.IOFailed(mdwerrors.ModuleFilex, "read_file", err).WithDetail("path", name)
	}
	defer unix.Close(fd)

	return ReadAll(fd, p)
}

func openRetry(name string, flags int, mode uint32) (int, error) {
	for {
		fd, err := unix.Open(name, flags, mode)
		if err != unix.EINTR {
			return fd, err
		}
	}
}

// Writer adapts a descriptor to io.Writer using WriteAll.
type Writer struct {
	fd int
}

// NewWriter returns a Writer for fd. The caller keeps ownership of fd.
func NewWriter(fd int) *Writer {
	return &Writer{fd: fd}
}

func (w *Writer) Write(p []byte) (int, error) {
	return WriteAll(w.fd, p)
}

// Reader adapts a descriptor to io.Reader. Each Read retries interrupted
// calls and reports io.EOF once the descriptor is exhausted.
type Reader struct {
	fd int
}

// NewReader returns a Reader for fd. The caller keeps ownership of fd.
func NewReader(fd int) *Reader {
	return &Reader{fd: fd}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := sysRead(r.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, mdwerrors.IOFailed(mdwerrors.ModuleFilex, "read", err)
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}
