package pipeline_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/logger"
	"github.com/openrent/sui-rental-gateway/internal/mocks"
	"github.com/openrent/sui-rental-gateway/internal/pipeline"
	"github.com/openrent/sui-rental-gateway/internal/providers/sui"
)

const testRegistryID = "0x000000000000000000000000000000000000000000000000000000000000d00d"

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestEnumerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSuiClient(ctrl)
	client.EXPECT().GetDynamicFields(gomock.Any(), testRegistryID).Return([]sui.DynamicFieldInfo{
		{ObjectID: "0x10"},
		{ObjectID: "0x11"},
		{ObjectID: ""}, // malformed entry is skipped
		{ObjectID: "0x12"},
	}, nil)

	enumerator := pipeline.NewEnumerator(client, testRegistryID)
	ids, err := enumerator.Enumerate(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"0x10", "0x11", "0x12"}, ids)
}

func TestEnumerateRegistryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSuiClient(ctrl)
	client.EXPECT().GetDynamicFields(gomock.Any(), testRegistryID).
		Return(nil, domain.ErrObjectNotFound)

	enumerator := pipeline.NewEnumerator(client, testRegistryID)
	_, err := enumerator.Enumerate(context.Background())

	assert.ErrorIs(t, err, domain.ErrRegistryNotFound)
}

func TestEnumerateTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSuiClient(ctrl)
	client.EXPECT().GetDynamicFields(gomock.Any(), testRegistryID).
		Return(nil, errors.New("connection refused"))

	enumerator := pipeline.NewEnumerator(client, testRegistryID)
	_, err := enumerator.Enumerate(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRegistryNotFound)
}
