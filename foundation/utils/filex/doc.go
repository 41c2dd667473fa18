// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex provides durable reads and writes on file
//              descriptors that survive interrupted system calls.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: WriteAll and ReadAll on raw descriptors
// - 2026-10-16 v0.2.0: WriteFile, ReadFile and io adapters

// Package filex moves whole buffers to and from file descriptors.
//
// WriteAll keeps writing until every byte is out or the kernel reports an
// error other than EINTR. ReadAll keeps reading until the buffer is full, the
// descriptor reports end of file, or an error other than EINTR occurs.
//
//	n, err := filex.WriteFile("/tmp/out.txt", []byte("payload"))
//	buf := make([]byte, 64)
//	n, err = filex.ReadFile("/tmp/out.txt", buf)
//
// Errors carry the IO_ERROR code together with the byte count reached before
// the failure. The package builds on Unix-like systems only.
package filex
