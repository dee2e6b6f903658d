package util

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	mgmtSecret     string
	mgmtSecretOnce sync.Once
)

func GetEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}

	return defaultVal
}

// GetEnvEnum returns the value of key if it is one of allowedValues, falling
// back to defaultVal otherwise.
func GetEnvEnum(key string, defaultVal string, allowedValues []string) string {
	if !slices.Contains(allowedValues, defaultVal) {
		log.Panic().Str("key", key).Str("value", defaultVal).Msg("Default value is not in the allowed values list.")
	}

	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}

	if !slices.Contains(allowedValues, val) {
		log.Error().Str("key", key).Str("value", val).Msg("Value is not allowed. Fallback to default value.")
		return defaultVal
	}

	return val
}

func GetEnvAsInt(key string, defaultVal int) int {
	strVal := GetEnv(key, "")

	if val, err := strconv.Atoi(strVal); err == nil {
		return val
	}

	return defaultVal
}

func GetEnvAsInt64(key string, defaultVal int64) int64 {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseInt(strVal, 10, 64); err == nil {
		return val
	}

	return defaultVal
}

func GetEnvAsUint32(key string, defaultVal uint32) uint32 {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseUint(strVal, 10, 32); err == nil {
		return uint32(val)
	}

	return defaultVal
}

func GetEnvAsUint64(key string, defaultVal uint64) uint64 {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseUint(strVal, 10, 64); err == nil {
		return val
	}

	return defaultVal
}

func GetEnvAsBool(key string, defaultVal bool) bool {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseBool(strVal); err == nil {
		return val
	}

	return defaultVal
}

// GetEnvAsBigInt parses a base 10 integer of arbitrary size, e.g. an amount
// in wei.
func GetEnvAsBigInt(key string, defaultVal *big.Int) *big.Int {
	strVal := GetEnv(key, "")

	if val, ok := new(big.Int).SetString(strVal, 10); ok {
		return val
	}

	return new(big.Int).Set(defaultVal)
}

// GetEnvAsDurationSec reads a number of seconds.
func GetEnvAsDurationSec(key string, defaultVal time.Duration) time.Duration {
	strVal := GetEnv(key, "")

	if val, err := strconv.Atoi(strVal); err == nil {
		return time.Duration(val) * time.Second
	}

	return defaultVal
}

// GetEnvAsStringArr reads a separated list, "," by default.
func GetEnvAsStringArr(key string, defaultVal []string, separator ...string) []string {
	strVal := GetEnv(key, "")

	if len(strVal) == 0 {
		return defaultVal
	}

	sep := ","
	if len(separator) >= 1 {
		sep = separator[0]
	}

	return strings.Split(strVal, sep)
}

// GetEnvAsStringArrTrimmed is GetEnvAsStringArr with every element trimmed
// and empty elements dropped.
func GetEnvAsStringArrTrimmed(key string, defaultVal []string, separator ...string) []string {
	arr := GetEnvAsStringArr(key, defaultVal, separator...)

	out := make([]string, 0, len(arr))
	for _, s := range arr {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// GetMgmtSecret returns the management secret from envKey, or a random one
// generated once per process.
func GetMgmtSecret(envKey string) string {
	val := GetEnv(envKey, "")

	if len(val) > 0 {
		return val
	}

	mgmtSecretOnce.Do(func() {
		b := make([]byte, 16)
		if _, err := rand.Read(b); err != nil {
			log.Panic().Err(err).Msg("Failed to generate random management secret")
		}

		mgmtSecret = hex.EncodeToString(b)
		log.Warn().Str("envKey", envKey).Msg("Could not retrieve management secret from env key, using randomly generated one")
	})

	return mgmtSecret
}
