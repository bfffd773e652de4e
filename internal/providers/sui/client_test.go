package sui_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openrent/sui-rental-gateway/internal/adapter"
	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/mocks"
	"github.com/openrent/sui-rental-gateway/internal/providers/sui"
)

const testRPCURL = "https://fullnode.testnet.sui.io:443"

// rpcEnvelope decodes the request body a test captured
type rpcEnvelope struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

func newTestClient(t *testing.T) (sui.Client, *mocks.MockHTTPClient, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := sui.NewClient(testRPCURL, httpClient, adapter.NewJSON())
	return client, httpClient, ctrl
}

func TestGetObject(t *testing.T) {
	client, httpClient, ctrl := newTestClient(t)
	defer ctrl.Finish()

	var captured rpcEnvelope
	httpClient.EXPECT().
		Post(gomock.Any(), testRPCURL, "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body []byte) ([]byte, error) {
			assert.NoError(t, json.Unmarshal(body, &captured))
			return []byte(`{"jsonrpc":"2.0","id":1,"result":{"data":{"objectId":"0x2","content":{"dataType":"moveObject","type":"0xabc::marketplace::Listing","fields":{"owner":"0x3"}}}}}`), nil
		})

	resp, err := client.GetObject(context.Background(), "0x2", sui.ObjectOptions{ShowContent: true})

	assert.NoError(t, err)
	assert.Equal(t, "2.0", captured.JSONRPC)
	assert.Equal(t, "sui_getObject", captured.Method)
	assert.Equal(t, "0x2", captured.Params[0])
	assert.True(t, resp.Exists())
	assert.Equal(t, "0x3", resp.Fields()["owner"])
	assert.Equal(t, "0xabc::marketplace::Listing", resp.ObjectType())
}

func TestGetObjectNotFoundMapping(t *testing.T) {
	client, httpClient, ctrl := newTestClient(t)
	defer ctrl.Finish()

	httpClient.EXPECT().
		Post(gomock.Any(), testRPCURL, "application/json", gomock.Any()).
		Return([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"Error checking object: notExists"}}`), nil)

	_, err := client.GetObject(context.Background(), "0x2", sui.ObjectOptions{})

	assert.ErrorIs(t, err, domain.ErrObjectNotFound)
}

func TestGetObjectRPCError(t *testing.T) {
	client, httpClient, ctrl := newTestClient(t)
	defer ctrl.Finish()

	httpClient.EXPECT().
		Post(gomock.Any(), testRPCURL, "application/json", gomock.Any()).
		Return([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid params"}}`), nil)

	_, err := client.GetObject(context.Background(), "0x2", sui.ObjectOptions{})

	assert.ErrorContains(t, err, "rpc error -32602")
	assert.NotErrorIs(t, err, domain.ErrObjectNotFound)
}

func TestGetDynamicFieldsPagination(t *testing.T) {
	client, httpClient, ctrl := newTestClient(t)
	defer ctrl.Finish()

	pages := []string{
		`{"jsonrpc":"2.0","id":1,"result":{"data":[{"objectId":"0x10"},{"objectId":"0x11"}],"nextCursor":"cursor1","hasNextPage":true}}`,
		`{"jsonrpc":"2.0","id":1,"result":{"data":[{"objectId":"0x12"}],"nextCursor":null,"hasNextPage":false}}`,
	}
	call := 0
	httpClient.EXPECT().
		Post(gomock.Any(), testRPCURL, "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body []byte) ([]byte, error) {
			var env rpcEnvelope
			assert.NoError(t, json.Unmarshal(body, &env))
			assert.Equal(t, "suix_getDynamicFields", env.Method)
			if call == 1 {
				assert.Equal(t, "cursor1", env.Params[1])
			}
			resp := pages[call]
			call++
			return []byte(resp), nil
		}).Times(2)

	fields, err := client.GetDynamicFields(context.Background(), "0xd00d")

	assert.NoError(t, err)
	assert.Len(t, fields, 3)
	assert.Equal(t, "0x12", fields[2].ObjectID)
}

func TestMoveCallParams(t *testing.T) {
	client, httpClient, ctrl := newTestClient(t)
	defer ctrl.Finish()

	var captured rpcEnvelope
	httpClient.EXPECT().
		Post(gomock.Any(), testRPCURL, "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body []byte) ([]byte, error) {
			assert.NoError(t, json.Unmarshal(body, &captured))
			return []byte(`{"jsonrpc":"2.0","id":1,"result":{"txBytes":"dGVzdA=="}}`), nil
		})

	tx, err := client.MoveCall(context.Background(), "0x3", "0xabc0", "marketplace", "list_for_rent",
		[]string{"0xabc::gallery::Artwork"},
		[]interface{}{"0xd00d", "0xa55e", "100000000"},
		10_000_000)

	assert.NoError(t, err)
	assert.Equal(t, "dGVzdA==", tx.TxBytes)
	assert.Equal(t, "unsafe_moveCall", captured.Method)
	assert.Len(t, captured.Params, 8)
	assert.Equal(t, "0x3", captured.Params[0])
	// Gas object slot is nil so the node picks one; the budget travels as a
	// decimal string
	assert.Nil(t, captured.Params[6])
	assert.Equal(t, "10000000", captured.Params[7])
}

func TestExecuteTransactionParams(t *testing.T) {
	client, httpClient, ctrl := newTestClient(t)
	defer ctrl.Finish()

	var captured rpcEnvelope
	httpClient.EXPECT().
		Post(gomock.Any(), testRPCURL, "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body []byte) ([]byte, error) {
			assert.NoError(t, json.Unmarshal(body, &captured))
			return []byte(`{"jsonrpc":"2.0","id":1,"result":{"digest":"Dig1","effects":{"status":{"status":"success"}}}}`), nil
		})

	result, err := client.ExecuteTransaction(context.Background(), "dGVzdA==", []string{"sig1"})

	assert.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Equal(t, "sui_executeTransactionBlock", captured.Method)
	assert.Equal(t, "WaitForLocalExecution", captured.Params[3])
}

func TestMultiGetObjectsEmptyBatch(t *testing.T) {
	client, _, ctrl := newTestClient(t)
	defer ctrl.Finish()

	// No RPC round trip for an empty batch
	resp, err := client.MultiGetObjects(context.Background(), nil, sui.ObjectOptions{})

	assert.NoError(t, err)
	assert.Nil(t, resp)
}
