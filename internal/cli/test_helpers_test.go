package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mrz1836/quill/internal/config"
	"github.com/mrz1836/quill/internal/output"
)

const (
	testKey    = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testPub    = "0x4e3b81af9c2234cad09d679ce6035ed1392347ce64ce405f5dcd36228a25de6e47fd35c4215d1edf53e6f83de344615ce719bdb0fd878f6ed76f06dd277956de"
	testR      = "0x0d9a87071b1d404da2b8dbdb5f8762b13a7810f9e09e697398a4640e0a89293c"
	testS      = "0x4c81c56f3ca363ed6e646a8c2492b5c1e30116aed67098598993f552e591c90f"
	testSigned = "0xf85f800182520894353535353535353535353535353535353535353580801ba00d9a87071b1d404da2b8dbdb5f8762b13a7810f9e09e697398a4640e0a89293ca04c81c56f3ca363ed6e646a8c2492b5c1e30116aed67098598993f552e591c90f"
	testTxJSON = `{"nonce":0,"gasPrice":1,"gasLimit":21000,"to":"0x3535353535353535353535353535353535353535","value":0,"data":"0x"}`

	// keccak256("hello")
	testHelloHash = "0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"
)

var errPromptClosed = errors.New("prompt closed")

// setupTestEnv creates a temporary environment for CLI testing.
// It saves and restores global state to avoid test pollution.
// Tests using this function should NOT use t.Parallel() as they
// modify package-level globals.
func setupTestEnv(t *testing.T) (string, func()) {
	t.Helper()

	origCfg := cfg
	origLogger := logger
	origFormatter := formatter
	origCmdCtx := cmdCtx

	tmpDir := t.TempDir()

	testCfg := config.Defaults()
	testCfg.Home = tmpDir
	testCfg.Logging.Level = config.LogLevelOff.String()
	testCfg.Logging.File = ""
	testCfg.Security.MemoryLock = false
	cfg = testCfg

	logger = config.NullLogger()
	formatter = output.NewFormatter(output.FormatText)
	cmdCtx = NewCommandContext(cfg, logger, formatter)

	cleanup := func() {
		cfg = origCfg
		logger = origLogger
		formatter = origFormatter
		cmdCtx = origCmdCtx
	}

	return tmpDir, cleanup
}

// useJSON switches the active formatter to JSON for the rest of the test.
func useJSON(t *testing.T) {
	t.Helper()
	formatter = output.NewFormatter(output.FormatJSON)
	cmdCtx.Formatter = formatter
}

// newTestCmd creates a cobra.Command with captured output and the given stdin.
func newTestCmd(stdin string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	return cmd, &buf
}

// withPrivateKey supplies the signing key through the environment.
func withPrivateKey(t *testing.T, key string) {
	t.Helper()
	t.Setenv(config.EnvPrivateKey, key)
}

// withMockPrompt replaces the hidden-input prompt and restores it on cleanup.
func withMockPrompt(t *testing.T, secret string, err error) *[]string {
	t.Helper()
	orig := promptSecretFn
	t.Cleanup(func() { promptSecretFn = orig })

	var prompts []string
	promptSecretFn = func(prompt string) ([]byte, error) {
		prompts = append(prompts, prompt)
		if err != nil {
			return nil, err
		}
		return []byte(secret), nil
	}
	return &prompts
}
