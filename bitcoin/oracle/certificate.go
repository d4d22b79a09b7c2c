// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package oracle

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// messagePrefix defines the attestation message domain prefix.
const messagePrefix = "DEATH_CERT"

// fieldDelimiter separates attestation message fields; fields themselves
// must not contain it, otherwise the message would parse ambiguously.
const fieldDelimiter = ":"

// ErrInvalidIdentifier defines that a certificate field contains the reserved delimiter.
var ErrInvalidIdentifier = errors.New("identifier contains reserved delimiter")

// Certificate describes a signed oracle attestation tying a trust identifier
// to an authorization event. All fields are plain data suitable for JSON
// serialization; byte fields are hex-encoded. Independently verifiable given
// only the certificate itself.
type Certificate struct {
	TrustID         string `json:"trustId"`
	PersonName      string `json:"personName"`
	Timestamp       uint32 `json:"timestamp"` // unix seconds of issuance.
	Message         string `json:"message"`
	MessageHash     string `json:"messageHash"`     // hex sha256 of Message.
	Signature       string `json:"signature"`       // hex BIP340 schnorr signature over MessageHash.
	OraclePublicKey string `json:"oraclePublicKey"` // hex x-only oracle key.
	CertificateID   string `json:"certificateId"`
}

// Issue signs an attestation for the given trust with the oracle private key,
// capturing the current time. The key is used for the single signing
// operation only; each issuance is independent and holds no shared state.
func Issue(oraclePrivKey *btcec.PrivateKey, trustID, personName string) (Certificate, error) {
	return IssueAt(oraclePrivKey, trustID, personName, time.Now())
}

// IssueAt is Issue with an explicit issuance time.
func IssueAt(oraclePrivKey *btcec.PrivateKey, trustID, personName string, at time.Time) (Certificate, error) {
	if strings.Contains(trustID, fieldDelimiter) {
		return Certificate{}, fmt.Errorf("trust id: %w", ErrInvalidIdentifier)
	}
	if strings.Contains(personName, fieldDelimiter) {
		return Certificate{}, fmt.Errorf("person name: %w", ErrInvalidIdentifier)
	}

	timestamp := uint32(at.Unix())
	message := fmt.Sprintf("%s:%s:%s:%d", messagePrefix, trustID, personName, timestamp)
	messageHash := sha256.Sum256([]byte(message))

	signature, err := schnorr.Sign(oraclePrivKey, messageHash[:])
	if err != nil {
		return Certificate{}, err
	}

	return Certificate{
		TrustID:         trustID,
		PersonName:      personName,
		Timestamp:       timestamp,
		Message:         message,
		MessageHash:     hex.EncodeToString(messageHash[:]),
		Signature:       hex.EncodeToString(signature.Serialize()),
		OraclePublicKey: hex.EncodeToString(schnorr.SerializePubKey(oraclePrivKey.PubKey())),
		CertificateID:   certificateID(trustID, timestamp),
	}, nil
}

// Verify checks certificate consistency and its schnorr signature against
// the embedded oracle public key. Never fails: any malformed input is
// reported as not verified.
func Verify(certificate Certificate) bool {
	messageHash, err := hex.DecodeString(certificate.MessageHash)
	if err != nil || len(messageHash) != sha256.Size {
		return false
	}

	// the stored hash must be consistent with the stored message.
	recomputed := sha256.Sum256([]byte(certificate.Message))
	if hex.EncodeToString(recomputed[:]) != certificate.MessageHash {
		return false
	}

	pubKeyBytes, err := hex.DecodeString(certificate.OraclePublicKey)
	if err != nil {
		return false
	}

	pubKey, err := schnorr.ParsePubKey(pubKeyBytes)
	if err != nil {
		return false
	}

	signatureBytes, err := hex.DecodeString(certificate.Signature)
	if err != nil {
		return false
	}

	signature, err := schnorr.ParseSignature(signatureBytes)
	if err != nil {
		return false
	}

	return signature.Verify(messageHash, pubKey)
}

// certificateID derives a human-readable certificate id from the leading
// trust id bytes and the issuance time.
func certificateID(trustID string, timestamp uint32) string {
	leading := []byte(trustID)
	if len(leading) > 4 {
		leading = leading[:4]
	}

	return fmt.Sprintf("CERT-%s-%X", strings.ToUpper(hex.EncodeToString(leading)), timestamp)
}
