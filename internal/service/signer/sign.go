// Package signer signs legacy Ethereum transactions and raw 32-byte hashes,
// and recovers the signing public key from a raw transaction plus a detached
// signature.
//
// The package-level functions are stateless and safe for concurrent use.
// Service wraps them with configuration, logging and metrics.
package signer

import (
	"errors"

	ethcrypto "github.com/mrz1836/quill/internal/eth/crypto"
	ethtypes "github.com/mrz1836/quill/internal/eth/types"
	"github.com/mrz1836/quill/internal/quillcrypto"
	quillerr "github.com/mrz1836/quill/pkg/errors"
)

type options struct {
	memoryLock   bool
	strictFields bool
}

func defaultOptions() options {
	return options{memoryLock: true}
}

// Sign builds the unsigned transaction from record, signs its keccak-256
// hash with the private key and returns the nine-item signed transaction.
// Unknown record keys are ignored.
//
// The key is checked before the record is looked at.
func Sign(record ethtypes.Record, privateKeyHex string) (*ethtypes.SignedTx, error) {
	return sign(record, privateKeyHex, defaultOptions())
}

// SignHash signs a precomputed 32-byte hash. No prefix is applied.
func SignHash(hash []byte, privateKeyHex string) (*ethcrypto.Signature, error) {
	return signHash(hash, privateKeyHex, defaultOptions())
}

func sign(record ethtypes.Record, privateKeyHex string, opts options) (*ethtypes.SignedTx, error) {
	key, err := loadKey(privateKeyHex, opts.memoryLock)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	if opts.strictFields {
		if err := record.CheckUnknownFields(); err != nil {
			return nil, err
		}
	}

	tx, err := ethtypes.NewUnsignedTx(record)
	if err != nil {
		return nil, err
	}

	sig, err := signDigest(tx.SigningHash(), key)
	if err != nil {
		return nil, err
	}
	return tx.WithSignature(sig), nil
}

func signHash(hash []byte, privateKeyHex string, opts options) (*ethcrypto.Signature, error) {
	key, err := loadKey(privateKeyHex, opts.memoryLock)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	return signDigest(hash, key)
}

func signDigest(hash []byte, key *quillcrypto.SecureBytes) (*ethcrypto.Signature, error) {
	sig, err := ethcrypto.Sign(hash, key.Bytes())
	switch {
	case err == nil:
		return sig, nil
	case errors.Is(err, ethcrypto.ErrInvalidHashLength):
		return nil, quillerr.WithCause(quillerr.ErrInvalidInput, err)
	case errors.Is(err, ethcrypto.ErrInvalidPrivateKey):
		return nil, quillerr.WithCause(quillerr.ErrInvalidKeyFormat, err)
	default:
		return nil, quillerr.WithCause(quillerr.ErrGeneral, err)
	}
}
