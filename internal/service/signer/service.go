package signer

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/mrz1836/quill/internal/config"
	ethcrypto "github.com/mrz1836/quill/internal/eth/crypto"
	ethtypes "github.com/mrz1836/quill/internal/eth/types"
	"github.com/mrz1836/quill/internal/metrics"
)

// Service provides signing and recovery with configuration, logging and metrics.
type Service struct {
	config  ConfigProvider
	logger  LogWriter
	metrics *metrics.Metrics
}

// Config holds dependencies for the signer service.
type Config struct {
	Config  ConfigProvider
	Logger  LogWriter
	Metrics *metrics.Metrics
}

// NewService creates a new signer service. A nil logger discards output
// and nil metrics are replaced with a fresh set.
func NewService(cfg *Config) *Service {
	s := &Service{
		config:  cfg.Config,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
	if s.logger == nil {
		s.logger = config.NullLogger()
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	return s
}

// Metrics returns the service's counters.
func (s *Service) Metrics() *metrics.Metrics {
	return s.metrics
}

func (s *Service) options() options {
	opts := defaultOptions()
	if s.config != nil {
		opts.memoryLock = s.config.GetSecurity().MemoryLock
		opts.strictFields = s.config.IsStrictFields()
	}
	return opts
}

// Sign signs a transaction record. With strict fields enabled, unknown
// record keys are rejected.
func (s *Service) Sign(record ethtypes.Record, privateKeyHex string) (*ethtypes.SignedTx, error) {
	start := time.Now()
	tx, err := sign(record, privateKeyHex, s.options())
	took := time.Since(start)
	s.metrics.Record(metrics.OpSign, took, err)
	if err != nil {
		s.logger.Error("sign failed: %v", err)
		return nil, err
	}

	s.debug(took, fmt.Sprintf("signed transaction %s (%d bytes, v=%d)", tx.HashHex(), len(tx.Encoded()), tx.Signature().V),
		"signed transaction",
		slog.String("hash", tx.HashHex()),
		slog.Int("bytes", len(tx.Encoded())),
		slog.Int("v", int(tx.Signature().V)),
	)
	return tx, nil
}

// SignHash signs a precomputed 32-byte hash.
func (s *Service) SignHash(hash []byte, privateKeyHex string) (*ethcrypto.Signature, error) {
	start := time.Now()
	sig, err := signHash(hash, privateKeyHex, s.options())
	took := time.Since(start)
	s.metrics.Record(metrics.OpSignHash, took, err)
	if err != nil {
		s.logger.Error("sign hash failed: %v", err)
		return nil, err
	}

	hashHex := "0x" + hex.EncodeToString(hash)
	s.debug(took, fmt.Sprintf("signed hash %s (v=%d)", hashHex, sig.V),
		"signed hash",
		slog.String("hash", hashHex),
		slog.Int("v", int(sig.V)),
	)
	return sig, nil
}

// Recover recovers the public key that signed raw.
func (s *Service) Recover(raw []byte, v int, r, sv []byte) ([]byte, error) {
	start := time.Now()
	pub, err := Recover(raw, v, r, sv)
	took := time.Since(start)
	s.metrics.Record(metrics.OpRecover, took, err)
	if err != nil {
		s.logger.Error("recover failed: %v", err)
		return nil, err
	}

	s.debug(took, fmt.Sprintf("recovered public key from %d-byte transaction", len(raw)),
		"recovered public key",
		slog.Int("bytes", len(raw)),
	)
	return pub, nil
}

// RecoverHex is Recover with raw given as hex.
func (s *Service) RecoverHex(rawHex string, v int, r, sv []byte) ([]byte, error) {
	raw, err := decodeRawHex(rawHex)
	if err != nil {
		s.metrics.Record(metrics.OpRecover, 0, err)
		s.logger.Error("recover failed: %v", err)
		return nil, err
	}
	return s.Recover(raw, v, r, sv)
}

// debug logs a successful operation, with attributes when the logger takes them.
func (s *Service) debug(took time.Duration, text, msg string, attrs ...slog.Attr) {
	if al, ok := s.logger.(attrLogger); ok {
		al.DebugAttrs(msg, append(attrs, slog.Duration("took", took))...)
		return
	}
	s.logger.Debug("%s", text)
}
