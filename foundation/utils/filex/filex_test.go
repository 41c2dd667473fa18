// File: filex_test.go
// Title: Durable Descriptor I/O Tests
// Description: Tests for WriteAll, ReadAll, the file wrappers and the io
//              adapters, including injected EINTR and short transfers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: File wrapper and adapter tests

//go:build unix

package filex

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
)

func pipe(t *testing.T) (r, w *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

func TestWriteAllReadAllPipe(t *testing.T) {
	r, w := pipe(t)

	n, err := WriteAll(int(w.Fd()), []byte("hello pipe"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	require.NoError(t, w.Close())

	buf := make([]byte, 64)
	n, err = ReadAll(int(r.Fd()), buf)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "hello pipe", string(buf[:n]))
}

func TestReadAllSmallBuffer(t *testing.T) {
	r, w := pipe(t)
	_, err := WriteAll(int(w.Fd()), []byte("0123456789"))
	require.NoError(t, err)

	buf := make([]byte, 4)
	n, err := ReadAll(int(r.Fd()), buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "0123", string(buf))
}

func TestRetryOnEINTR(t *testing.T) {
	origWrite, origRead := sysWrite, sysRead
	t.Cleanup(func() { sysWrite, sysRead = origWrite, origRead })

	var out strings.Builder
	writes := 0
	sysWrite = func(fd int, p []byte) (int, error) {
		writes++
		if writes%2 == 1 {
			return -1, unix.EINTR
		}
		// short write of at most 3 bytes
		n := min(3, len(p))
		out.Write(p[:n])
		return n, nil
	}

	n, err := WriteAll(1, []byte("interrupted"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "interrupted", out.String())

	src := strings.NewReader("retry me")
	reads := 0
	sysRead = func(fd int, p []byte) (int, error) {
		reads++
		if reads == 1 {
			return -1, unix.EINTR
		}
		n, err := src.Read(p[:min(2, len(p))])
		if err == io.EOF {
			return 0, nil
		}
		return n, err
	}

	buf := make([]byte, 32)
	n, err = ReadAll(0, buf)
	require.NoError(t, err)
	assert.Equal(t, "retry me", string(buf[:n]))
}

func TestWriteAllError(t *testing.T) {
	origWrite := sysWrite
	t.Cleanup(func() { sysWrite = origWrite })

	calls := 0
	sysWrite = func(fd int, p []byte) (int, error) {
		calls++
		if calls == 1 {
			return 2, nil
		}
		return -1, unix.EPIPE
	}

	n, err := WriteAll(1, []byte("abcdef"))
	assert.Equal(t, 2, n)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeIOError))
	assert.ErrorIs(t, err, unix.EPIPE)
}

func TestWriteAllZeroProgress(t *testing.T) {
	origWrite := sysWrite
	t.Cleanup(func() { sysWrite = origWrite })
	sysWrite = func(fd int, p []byte) (int, error) { return 0, nil }

	_, err := WriteAll(1, []byte("x"))
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestBadDescriptor(t *testing.T) {
	_, err := WriteAll(-1, []byte("x"))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeIOError))

	_, err = ReadAll(-1, make([]byte, 1))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeIOError))
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "io_write")

	n, err := WriteFile(path, []byte("a somewhat longer payload"))
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	buf := make([]byte, 64)
	n, err = ReadFile(path, buf)
	require.NoError(t, err)
	assert.Equal(t, "a somewhat longer payload", string(buf[:n]))

	little := make([]byte, 8)
	n, err = ReadFile(path, little)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "a somewh", string(little))

	// a shorter write replaces the old content entirely
	_, err = WriteFile(path, []byte("short"))
	require.NoError(t, err)
	n, err = ReadFile(path, buf)
	require.NoError(t, err)
	assert.Equal(t, "short", string(buf[:n]))

	var st unix.Stat_t
	require.NoError(t, unix.Stat(path, &st))
	assert.Zero(t, st.Mode&0o133, "created file must not be executable or group/other writable")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing"), make([]byte, 4))
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeIOError))
	assert.ErrorIs(t, err, unix.ENOENT)
}

func TestAdapters(t *testing.T) {
	r, w := pipe(t)

	_, err := io.WriteString(NewWriter(int(w.Fd())), "via io.Writer")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := io.ReadAll(NewReader(int(r.Fd())))
	require.NoError(t, err)
	assert.Equal(t, "via io.Writer", string(data))
}
