package config

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

type envSetter func(key string, value string) error

// DotEnvTryLoad forcefully overrides ENV variables through **a maybe available** .env file.
//
// This function always excludes running within the test environment (bails out immediately).
// Use test.DotEnvLoadLocalOrSkipTest to explicitly apply ENV variables within a test.
//
// Can be used to set local environment variables within a developer machine.
func DotEnvTryLoad(absolutePathToEnvFile string, setEnvFn envSetter) {
	err := DotEnvLoad(absolutePathToEnvFile, setEnvFn)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Str("envFile", absolutePathToEnvFile).Msg(".env parse error!")
		}
	} else {
		log.Warn().Str("envFile", absolutePathToEnvFile).Msg(".env overrides ENV variables!")
	}
}

// DotEnvLoad forcefully overrides ENV variables through the supplied .env file.
func DotEnvLoad(absolutePathToEnvFile string, setEnvFn envSetter) error {
	file, err := os.Open(absolutePathToEnvFile)
	if err != nil {
		return err
	}

	defer file.Close()

	envs, err := gotenv.StrictParse(file)
	if err != nil {
		return err
	}

	for key, value := range envs {
		if err := setEnvFn(key, value); err != nil {
			return err
		}
	}

	return nil
}
