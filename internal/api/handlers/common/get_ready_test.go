package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/test"
	"github/chapool/go-transfer/internal/test/mocks"
)

func TestGetReadyReadiness(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		require.Equal(t, "Ready.", res.Body.String())
	})
}

func TestGetReadyReadinessBroken(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// forcefully remove an initialized component to check if ready state works
		s.Store = nil

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not ready.", res.Body.String())
	})
}

func TestGetReadyDBBrokenNotReady(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// forcefully remove pg
		err := s.DB.Close()
		require.NoError(t, err)

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not ready.", res.Body.String())
	})
}

func TestGetReadyWithoutDatabase(t *testing.T) {
	test.WithTestServerNoDB(t, config.DefaultServiceConfigFromEnv(), mocks.NewNetwork(), func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not ready.", res.Body.String())
	})
}
