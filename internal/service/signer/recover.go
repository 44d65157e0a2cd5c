package signer

import (
	"encoding/hex"
	"errors"
	"strings"

	ethcrypto "github.com/mrz1836/quill/internal/eth/crypto"
	"github.com/mrz1836/quill/internal/eth/rlp"
	ethtypes "github.com/mrz1836/quill/internal/eth/types"
	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// Recover returns the 64-byte uncompressed public key (X || Y, no 0x04
// prefix) that produced the signature (v, r, s) over the transaction in raw.
//
// raw must be an RLP list whose first six items are byte strings. Only those
// six are hashed; anything after them, a signed transaction's own v, r and s
// included, is dropped unread and the explicit arguments are used instead.
// r and s may carry leading zero bytes. High-s signatures are accepted.
func Recover(raw []byte, v int, r, s []byte) ([]byte, error) {
	r, s = rlp.StripLeadingZeros(r), rlp.StripLeadingZeros(s)
	if err := ethcrypto.ValidateSignature(v, r, s); err != nil {
		return nil, quillerr.WithCause(quillerr.ErrRecoveryFailed, err)
	}

	items, err := rlp.DecodeListHead(raw, ethtypes.UnsignedFieldCount)
	if err != nil {
		return nil, err
	}
	tx, err := ethtypes.UnsignedTxFromFields(items)
	if err != nil {
		return nil, err
	}

	sig := &ethcrypto.Signature{
		V: byte(v),
		R: r,
		S: s,
	}
	pub, err := ethcrypto.RecoverPublicKey(tx.SigningHash(), sig)
	if err != nil {
		return nil, quillerr.WithCause(quillerr.ErrRecoveryFailed, err)
	}
	return pub, nil
}

// RecoverHex is Recover with raw given as hex, with or without 0x.
func RecoverHex(rawHex string, v int, r, s []byte) ([]byte, error) {
	raw, err := decodeRawHex(rawHex)
	if err != nil {
		return nil, err
	}
	return Recover(raw, v, r, s)
}

var errRawHex = errors.New("raw transaction is not valid hex")

func decodeRawHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, quillerr.WithCause(quillerr.ErrMalformedEncoding, errors.Join(errRawHex, err))
	}
	return raw, nil
}
