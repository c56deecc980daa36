package verifier_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shepherdvovkes/AIVectorMP/x/zkverify/verifier"
)

func TestStructuralVerify(t *testing.T) {
	v := verifier.NewStructural(1024)
	key := []byte("structural-key-v1")

	valid, err := v.Verify([]byte("proof"), []byte("inputs"), key)
	require.NoError(t, err)
	require.True(t, valid)

	// empty proof is a definite rejection, not an error
	valid, err = v.Verify(nil, nil, key)
	require.NoError(t, err)
	require.False(t, valid)

	// oversized proof rejected
	valid, err = v.Verify(bytes.Repeat([]byte{0x01}, 1025), nil, key)
	require.NoError(t, err)
	require.False(t, valid)

	// empty key is malformed input
	_, err = v.Verify([]byte("proof"), nil, nil)
	require.Error(t, err)
}

func TestStructuralVerifyUnbounded(t *testing.T) {
	v := verifier.NewStructural(0)

	valid, err := v.Verify(bytes.Repeat([]byte{0x01}, 1<<16), nil, []byte("key"))
	require.NoError(t, err)
	require.True(t, valid)
}

func TestGroth16VerifyMalformedInputs(t *testing.T) {
	v := verifier.NewGroth16BN254()

	// garbage verifying key fails deserialization
	_, err := v.Verify([]byte("proof"), []byte("inputs"), []byte("not-a-key"))
	require.Error(t, err)
}
