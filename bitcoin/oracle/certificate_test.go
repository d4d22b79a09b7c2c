// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package oracle_test

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/stretchr/testify/require"

	"github.com/emersonliuuu/btcpp-tapheir/bitcoin/oracle"
)

func TestIssue(t *testing.T) {
	oraclePrivKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	issuedAt := time.Unix(1_750_000_000, 0)

	t.Run("fields", func(t *testing.T) {
		certificate, err := oracle.IssueAt(oraclePrivKey, "trust-42", "John Doe", issuedAt)
		require.NoError(t, err)

		require.Equal(t, "trust-42", certificate.TrustID)
		require.Equal(t, "John Doe", certificate.PersonName)
		require.Equal(t, uint32(1_750_000_000), certificate.Timestamp)
		require.Equal(t, "DEATH_CERT:trust-42:John Doe:1750000000", certificate.Message)

		expectedHash := sha256.Sum256([]byte(certificate.Message))
		require.Equal(t, hex.EncodeToString(expectedHash[:]), certificate.MessageHash)

		require.Equal(t,
			hex.EncodeToString(schnorr.SerializePubKey(oraclePrivKey.PubKey())),
			certificate.OraclePublicKey)

		// "trus" -> 74727573.
		require.Equal(t, fmt.Sprintf("CERT-74727573-%X", certificate.Timestamp), certificate.CertificateID)
	})

	t.Run("short trust id", func(t *testing.T) {
		certificate, err := oracle.IssueAt(oraclePrivKey, "ab", "Jane", issuedAt)
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("CERT-6162-%X", certificate.Timestamp), certificate.CertificateID)
	})

	t.Run("issued certificate verifies", func(t *testing.T) {
		certificate, err := oracle.Issue(oraclePrivKey, "trust-42", "John Doe")
		require.NoError(t, err)
		require.True(t, oracle.Verify(certificate))
	})

	t.Run("delimiter in fields", func(t *testing.T) {
		_, err := oracle.IssueAt(oraclePrivKey, "trust:42", "John Doe", issuedAt)
		require.Error(t, err)
		require.ErrorIs(t, err, oracle.ErrInvalidIdentifier)

		_, err = oracle.IssueAt(oraclePrivKey, "trust-42", "Doe:John", issuedAt)
		require.Error(t, err)
		require.ErrorIs(t, err, oracle.ErrInvalidIdentifier)
	})

	t.Run("json round trip", func(t *testing.T) {
		certificate, err := oracle.IssueAt(oraclePrivKey, "trust-42", "John Doe", issuedAt)
		require.NoError(t, err)

		data, err := json.Marshal(certificate)
		require.NoError(t, err)

		var restored oracle.Certificate
		require.NoError(t, json.Unmarshal(data, &restored))
		require.Equal(t, certificate, restored)
		require.True(t, oracle.Verify(restored))
	})
}

func TestVerify(t *testing.T) {
	oraclePrivKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	certificate, err := oracle.IssueAt(oraclePrivKey, "trust-42", "John Doe", time.Unix(1_750_000_000, 0))
	require.NoError(t, err)
	require.True(t, oracle.Verify(certificate))

	t.Run("mutated signature", func(t *testing.T) {
		mutated := certificate
		mutated.Signature = flipHexByte(t, mutated.Signature)
		require.False(t, oracle.Verify(mutated))
	})

	t.Run("mutated message hash", func(t *testing.T) {
		mutated := certificate
		mutated.MessageHash = flipHexByte(t, mutated.MessageHash)
		require.False(t, oracle.Verify(mutated))
	})

	t.Run("mutated message", func(t *testing.T) {
		mutated := certificate
		mutated.Message = "DEATH_CERT:trust-42:Jane Doe:1750000000"
		require.False(t, oracle.Verify(mutated))
	})

	t.Run("foreign oracle key", func(t *testing.T) {
		foreignPrivKey, err := btcec.NewPrivateKey()
		require.NoError(t, err)

		mutated := certificate
		mutated.OraclePublicKey = hex.EncodeToString(schnorr.SerializePubKey(foreignPrivKey.PubKey()))
		require.False(t, oracle.Verify(mutated))
	})

	t.Run("malformed inputs never panic", func(t *testing.T) {
		for _, mutate := range []func(*oracle.Certificate){
			func(c *oracle.Certificate) { c.Signature = "zz" },
			func(c *oracle.Certificate) { c.Signature = "" },
			func(c *oracle.Certificate) { c.MessageHash = "abcd" },
			func(c *oracle.Certificate) { c.MessageHash = "" },
			func(c *oracle.Certificate) { c.OraclePublicKey = "00" },
			func(c *oracle.Certificate) { *c = oracle.Certificate{} },
		} {
			mutated := certificate
			mutate(&mutated)
			require.False(t, oracle.Verify(mutated))
		}
	})
}

// flipHexByte decodes a hex string, flips the first byte and encodes it back.
func flipHexByte(t *testing.T, encoded string) string {
	raw, err := hex.DecodeString(encoded)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	raw[0] ^= 0xff

	return hex.EncodeToString(raw)
}
