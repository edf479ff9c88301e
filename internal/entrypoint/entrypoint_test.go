package entrypoint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mrlokans/wordbook/internal/config"
)

func TestResolveCSRFSecret(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []byte
	}{
		{"hex decoded", "00ff10", []byte{0x00, 0xff, 0x10}},
		{"raw fallback", "not-hex-secret", []byte("not-hex-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := resolveCSRFSecret(tt.raw, zap.NewNop())

			require.NoError(t, err)
			assert.Equal(t, tt.expected, secret)
		})
	}
}

func TestResolveCSRFSecret_GeneratedWhenEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	first, err := resolveCSRFSecret("", log)
	require.NoError(t, err)
	second, err := resolveCSRFSecret("", log)
	require.NoError(t, err)

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, logs.FilterMessage("Generated session secret (set SESSION_SECRET to persist)").Len())
}

type fakeAccounts struct {
	total int64
	err   error
}

func (f fakeAccounts) CountUsers() (int64, error) { return f.total, f.err }

func TestLogAccounts(t *testing.T) {
	tests := []struct {
		name      string
		store     fakeAccounts
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{"some accounts", fakeAccounts{total: 2}, zapcore.InfoLevel, "Accounts available"},
		{"no accounts", fakeAccounts{}, zapcore.WarnLevel, "No accounts exist. Set SEED_USERS and SEED_PASSWORD to create one."},
		{"count fails", fakeAccounts{err: errors.New("db down")}, zapcore.WarnLevel, "Could not count accounts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)

			logAccounts(tt.store, zap.New(core))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantMsg, entry.Message)
		})
	}
}

func TestRun_RejectsMissingDatabaseURL(t *testing.T) {
	cfg := &config.Config{
		Auth: config.Auth{PasswordScheme: config.PasswordSchemePlain},
		Log:  config.Log{Level: "info"},
	}

	err := Run(cfg, "test")

	assert.ErrorIs(t, err, config.ErrDatabaseURLRequired)
}

func TestRun_RejectsBadLogLevel(t *testing.T) {
	cfg := &config.Config{
		Database: config.Database{URL: t.TempDir() + "/w.db"},
		Auth:     config.Auth{PasswordScheme: config.PasswordSchemePlain},
		Log:      config.Log{Level: "loud"},
	}

	err := Run(cfg, "test")

	assert.ErrorContains(t, err, "invalid log level")
}
