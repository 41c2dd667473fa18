// File: module_integration_test.go
// Title: boundstr Foundation Module Integration Tests
// Description: Tests for cross-module interactions to ensure consistent
//              buffer conventions and error handling across packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration tests
// - 2026-10-16 v0.2.0: Bounded string module flows

//go:build unix

package integration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/boundstr/foundation/core/config"
	mdwerror "github.com/msto63/boundstr/foundation/core/error"
	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
	"github.com/msto63/boundstr/foundation/utils/bufx"
	"github.com/msto63/boundstr/foundation/utils/filex"
	"github.com/msto63/boundstr/foundation/utils/numx"
	"github.com/msto63/boundstr/foundation/utils/stringx"
	"github.com/msto63/boundstr/foundation/utils/strlist"
)

// TestErrorHandlingIntegration verifies that every package reports the
// module and operation its error came from
func TestErrorHandlingIntegration(t *testing.T) {
	_, copyErr := bufx.Copy(nil, "x")
	replaceErr := stringx.Replace([]byte{}, "x", "a", "b")
	_, splitErr := strlist.Split("a,b", "")
	_, _, scanErr := numx.Scan("", 10, 64)
	_, readErr := filex.ReadFile(filepath.Join(t.TempDir(), "missing"), make([]byte, 4))

	tests := []struct {
		name   string
		err    error
		module string
		code   mdwerror.Code
	}{
		{"bufx zero capacity", copyErr, mdwerrors.ModuleBufx, mdwerror.CodeInvalidCapacity},
		{"stringx zero capacity", replaceErr, mdwerrors.ModuleStringx, mdwerror.CodeInvalidCapacity},
		{"strlist empty delimiter", splitErr, mdwerrors.ModuleStrlist, mdwerror.CodeInvalidInput},
		{"numx no digits", scanErr, mdwerrors.ModuleNumx, mdwerror.CodeInvalidFormat},
		{"filex missing file", readErr, mdwerrors.ModuleFilex, mdwerror.CodeIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.module, mdwerrors.ExtractModule(tt.err))
			assert.True(t, mdwerrors.IsModuleError(tt.err, tt.module))
			assert.Equal(t, tt.code, mdwerror.GetCode(tt.err))
			assert.True(t, errors.Is(tt.err, mdwerror.New("").WithCode(tt.code)))
		})
	}
}

// TestTruncationAcrossModules checks that bufx and stringx describe a
// truncated result the same way
func TestTruncationAcrossModules(t *testing.T) {
	dst := make([]byte, 8)

	n, err := bufx.Copy(dst, "aaaaaaaa")
	require.NoError(t, err)
	assert.True(t, bufx.Truncated(n, len(dst)))

	err = stringx.Replace(dst, "aaaa", "a", "bb")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeTruncated))

	var e *mdwerror.Error
	require.ErrorAs(t, err, &e)
	needed, ok := e.Detail("needed")
	require.True(t, ok)
	assert.True(t, bufx.Truncated(needed.(int), len(dst)))
	assert.Equal(t, "bbbbbbb", bufx.String(dst))
}

// TestCrossModuleDataFlow runs a configured split, formats each entry into
// one buffer, writes it to a file and reads it back
func TestCrossModuleDataFlow(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "boundstr.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("buffer:\n  capacity: 24\nsplit:\n  delimiter: \";\"\n"), 0o644))

	settings, err := config.LoadWithOptions(cfgPath, config.LoadOptions{})
	require.NoError(t, err)

	list, err := strlist.Split(" 1; 0x2 ;x;4 ", settings.Split.Delimiter)
	require.NoError(t, err)
	require.Equal(t, 4, list.Len())

	buf := make([]byte, settings.Buffer.Capacity)
	b, err := bufx.NewBuilder(buf)
	require.NoError(t, err)

	for i, entry := range list.All() {
		field := make([]byte, len(entry)+1)
		_, err := bufx.Copy(field, entry)
		require.NoError(t, err)

		v := numx.Int64(bufx.String(stringx.Trim(field, stringx.DefaultCharset)), 0, -1)
		if i > 0 {
			b.WriteString(",")
		}
		b.Printf("%d", v)
	}
	require.False(t, b.Truncated())
	assert.Equal(t, "1,2,-1,4", b.String())

	out := filepath.Join(dir, "out.txt")
	written, err := filex.WriteFile(out, b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, b.Len(), written)

	back := make([]byte, settings.Buffer.Capacity)
	n, err := filex.ReadFile(out, back[:len(back)-1])
	require.NoError(t, err)
	assert.Equal(t, written, n)
	assert.True(t, stringx.Matches(back, "1,2,-1,4"))
}

// TestNullConventions checks that a nil buffer means the null string for the
// predicates and an empty one everywhere else
func TestNullConventions(t *testing.T) {
	assert.False(t, stringx.Matches(nil, ""))
	assert.True(t, stringx.IsEmpty(nil))
	assert.Nil(t, stringx.Trim(nil, stringx.DefaultCharset))
	assert.Equal(t, 0, bufx.Len(nil))
	assert.Equal(t, "", bufx.String(nil))
}
