// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashSecret_RoundTrip(t *testing.T) {
	hash, err := HashSecret("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CompareSecret(hash, "correct horse"))
	assert.False(t, CompareSecret(hash, "wrong horse"))
}

func TestHashSecret_Salted(t *testing.T) {
	h1, err := HashSecret("same", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashSecret("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "hashes of equal secrets must differ")
}

func TestHashSecret_InvalidCost(t *testing.T) {
	_, err := HashSecret("secret", bcrypt.MaxCost+1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt hash generation failed")
}

func TestHashSecret_TooLong(t *testing.T) {
	_, err := HashSecret(strings.Repeat("a", 73), bcrypt.MinCost)
	require.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)

	hash, err := HashSecret(strings.Repeat("a", 72), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CompareSecret(hash, strings.Repeat("a", 72)))
}

func TestCompareSecret_EmptyOrMalformedHash(t *testing.T) {
	assert.False(t, CompareSecret("", ""))
	assert.False(t, CompareSecret("", "anything"))
	assert.False(t, CompareSecret("not-a-bcrypt-hash", "anything"))
}

func TestRandomHex(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]+$`)

	tests := []struct {
		name string
		n    int
	}{
		{"temp password", 8},
		{"reset token", 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v1, err := RandomHex(tt.n)
			require.NoError(t, err)
			v2, err := RandomHex(tt.n)
			require.NoError(t, err)

			assert.Len(t, v1, 2*tt.n)
			assert.Regexp(t, hexPattern, v1)
			assert.NotEqual(t, v1, v2)
		})
	}
}
