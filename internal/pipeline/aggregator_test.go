package pipeline_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/mocks"
	"github.com/openrent/sui-rental-gateway/internal/pipeline"
	"github.com/openrent/sui-rental-gateway/internal/providers/sui"
)

const testAssetType = "0xabc::gallery::Artwork"

func TestMarketplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enumerator := mocks.NewMockEnumerator(ctrl)
	resolver := mocks.NewMockResolver(ctrl)
	client := mocks.NewMockSuiClient(ctrl)

	ids := []string{"0x10", "0x11"}
	resolved := []*domain.ResolvedAsset{{AssetID: "0xa1"}, {AssetID: "0xa2"}}

	enumerator.EXPECT().Enumerate(gomock.Any()).Return(ids, nil)
	resolver.EXPECT().ResolveAll(gomock.Any(), ids).Return(resolved)

	service := pipeline.NewService(enumerator, resolver, client, testAssetType, nil)
	assets, err := service.Marketplace(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, resolved, assets)
}

func TestMarketplaceRegistryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enumerator := mocks.NewMockEnumerator(ctrl)
	resolver := mocks.NewMockResolver(ctrl)
	client := mocks.NewMockSuiClient(ctrl)

	enumerator.EXPECT().Enumerate(gomock.Any()).Return(nil, domain.ErrRegistryNotFound)

	service := pipeline.NewService(enumerator, resolver, client, testAssetType, nil)
	_, err := service.Marketplace(context.Background())

	assert.ErrorIs(t, err, domain.ErrRegistryNotFound)
}

func TestViewRequiresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := pipeline.NewService(
		mocks.NewMockEnumerator(ctrl),
		mocks.NewMockResolver(ctrl),
		mocks.NewMockSuiClient(ctrl),
		testAssetType,
		nil,
	)

	_, err := service.View(context.Background(), domain.ViewRoleOwned, "")
	assert.ErrorIs(t, err, domain.ErrNoIdentity)
}

func TestViewUnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := pipeline.NewService(
		mocks.NewMockEnumerator(ctrl),
		mocks.NewMockResolver(ctrl),
		mocks.NewMockSuiClient(ctrl),
		testAssetType,
		nil,
	)

	_, err := service.View(context.Background(), domain.ViewRole("borrowed"), testOwner)
	assert.ErrorContains(t, err, "unknown view role")
}

func TestViewOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enumerator := mocks.NewMockEnumerator(ctrl)
	resolver := mocks.NewMockResolver(ctrl)
	client := mocks.NewMockSuiClient(ctrl)

	// One listing owned by the identity, one direct holding
	ids := []string{"0x10"}
	resolved := []*domain.ResolvedAsset{resolvedListing("0xa1", testOwner, "", 0)}

	enumerator.EXPECT().Enumerate(gomock.Any()).Return(ids, nil)
	resolver.EXPECT().ResolveAll(gomock.Any(), ids).Return(resolved)
	client.EXPECT().GetOwnedObjects(gomock.Any(), testOwner, testAssetType).Return([]sui.ObjectResponse{
		{
			Data: &sui.ObjectData{
				ObjectID: "0xb1",
				Content: &sui.ObjectContent{
					DataType: "moveObject",
					Type:     testAssetType,
					Fields: map[string]interface{}{
						"name": "Held Directly",
					},
				},
			},
		},
	}, nil)

	service := pipeline.NewService(enumerator, resolver, client, testAssetType, nil)
	assets, err := service.View(context.Background(), domain.ViewRoleOwned, testOwner)

	assert.NoError(t, err)
	assert.Len(t, assets, 1)
	assert.Equal(t, "0xb1", assets[0].AssetID)
	assert.Equal(t, "Held Directly", assets[0].Name)
	assert.Equal(t, domain.ViewRoleOwned, assets[0].ViewRole)
	assert.NotEmpty(t, assets[0].ContentHash)
}

func TestViewListedSkipsOwnedEnumeration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enumerator := mocks.NewMockEnumerator(ctrl)
	resolver := mocks.NewMockResolver(ctrl)
	client := mocks.NewMockSuiClient(ctrl)

	ids := []string{"0x10", "0x11"}
	resolved := []*domain.ResolvedAsset{
		resolvedListing("0xa1", testOwner, "", 0),
		resolvedListing("0xa2", "0xcafe", "", 0),
	}

	enumerator.EXPECT().Enumerate(gomock.Any()).Return(ids, nil)
	resolver.EXPECT().ResolveAll(gomock.Any(), ids).Return(resolved)
	// No GetOwnedObjects expectation: listed/rented views never touch it

	service := pipeline.NewService(enumerator, resolver, client, testAssetType, nil)
	assets, err := service.View(context.Background(), domain.ViewRoleListed, testOwner)

	assert.NoError(t, err)
	assert.Len(t, assets, 1)
	assert.Equal(t, "0xa1", assets[0].AssetID)
}
