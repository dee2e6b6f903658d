package common_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github/chapool/go-transfer/internal/api/handlers/common"
	"github/chapool/go-transfer/internal/test/mocks"
)

func TestProbesWithoutDatabase(t *testing.T) {
	errs := common.ProbeReadiness(t.Context(), nil, time.Second)
	assert.Equal(t, []string{"Database is not initialized."}, errs)

	network := mocks.NewNetwork()
	errs = common.ProbeLiveness(t.Context(), nil, network, time.Second)
	assert.Len(t, errs, 1)

	network.PingErr = errors.New("down")
	errs = common.ProbeLiveness(t.Context(), nil, network, time.Second)
	assert.Len(t, errs, 2)

	errs = common.ProbeLiveness(t.Context(), nil, nil, time.Second)
	assert.Contains(t, errs, "Network client is not initialized.")
}
