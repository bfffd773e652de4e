package sui

import (
	"context"
	"fmt"
	"strings"

	"github.com/openrent/sui-rental-gateway/internal/adapter"
	"github.com/openrent/sui-rental-gateway/internal/domain"
)

// Client defines the object-graph query and transaction operations the
// gateway consumes from a Sui full node. All reads are eventually consistent
// and may return absent data for a given identifier without that being fatal.
//
//go:generate mockgen -source=client.go -destination=../../mocks/sui_client.go -package=mocks -mock_names=Client=MockSuiClient
type Client interface {
	// GetDynamicFields lists all child records attached to a parent object,
	// following pagination. No ordering guarantee.
	GetDynamicFields(ctx context.Context, parentID string) ([]DynamicFieldInfo, error)

	// GetObject fetches a single object by id
	GetObject(ctx context.Context, objectID string, opts ObjectOptions) (*ObjectResponse, error)

	// MultiGetObjects fetches a batch of objects by id
	MultiGetObjects(ctx context.Context, objectIDs []string, opts ObjectOptions) ([]ObjectResponse, error)

	// GetDynamicFieldObject fetches a specific child record by typed key
	GetDynamicFieldObject(ctx context.Context, parentID string, key DynamicFieldKey) (*ObjectResponse, error)

	// GetOwnedObjects lists objects of the given Move struct type owned by an
	// address, following pagination
	GetOwnedObjects(ctx context.Context, owner string, structType string) ([]ObjectResponse, error)

	// MoveCall builds an unsigned move-call transaction for wallet co-signing
	MoveCall(ctx context.Context, signer, packageID, module, function string, typeArgs []string, args []interface{}, gasBudget uint64) (*TransactionBytes, error)

	// ExecuteTransaction submits wallet-signed transaction bytes
	ExecuteTransaction(ctx context.Context, txBytes string, signatures []string) (*ExecutionResult, error)
}

// client is the concrete JSON-RPC implementation of Client
type client struct {
	rpcURL     string
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

// NewClient creates a new Sui JSON-RPC client
func NewClient(rpcURL string, httpClient adapter.HTTPClient, json adapter.JSON) Client {
	return &client{
		rpcURL:     rpcURL,
		httpClient: httpClient,
		json:       json,
	}
}

// call performs one JSON-RPC request and unmarshals the result
func (c *client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	reqBody, err := c.json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	respBody, err := c.httpClient.Post(ctx, c.rpcURL, "application/json", reqBody)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}

	var resp rpcResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if resp.Error != nil {
		if isNotFoundRPCError(resp.Error) {
			return fmt.Errorf("%s: %s: %w", method, resp.Error.Message, domain.ErrObjectNotFound)
		}
		return fmt.Errorf("%s rpc error %d: %s", method, resp.Error.Code, resp.Error.Message)
	}

	if err := c.json.Unmarshal(resp.Result, result); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}
	return nil
}

// isNotFoundRPCError detects node-side "no such object" errors
func isNotFoundRPCError(e *rpcError) bool {
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "not found") || strings.Contains(msg, "does not exist") || strings.Contains(msg, "notexists")
}

func (c *client) GetDynamicFields(ctx context.Context, parentID string) ([]DynamicFieldInfo, error) {
	var fields []DynamicFieldInfo
	var cursor *string

	for {
		var page dynamicFieldPage
		params := []interface{}{parentID, cursor, nil}
		if err := c.call(ctx, "suix_getDynamicFields", params, &page); err != nil {
			return nil, fmt.Errorf("failed to list dynamic fields of %s: %w", parentID, err)
		}

		fields = append(fields, page.Data...)
		if !page.HasNextPage || page.NextCursor == nil {
			return fields, nil
		}
		cursor = page.NextCursor
	}
}

func (c *client) GetObject(ctx context.Context, objectID string, opts ObjectOptions) (*ObjectResponse, error) {
	var resp ObjectResponse
	if err := c.call(ctx, "sui_getObject", []interface{}{objectID, opts}, &resp); err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectID, err)
	}
	return &resp, nil
}

func (c *client) MultiGetObjects(ctx context.Context, objectIDs []string, opts ObjectOptions) ([]ObjectResponse, error) {
	if len(objectIDs) == 0 {
		return nil, nil
	}

	var resp []ObjectResponse
	if err := c.call(ctx, "sui_multiGetObjects", []interface{}{objectIDs, opts}, &resp); err != nil {
		return nil, fmt.Errorf("failed to multi-get %d objects: %w", len(objectIDs), err)
	}
	return resp, nil
}

func (c *client) GetDynamicFieldObject(ctx context.Context, parentID string, key DynamicFieldKey) (*ObjectResponse, error) {
	var resp ObjectResponse
	if err := c.call(ctx, "suix_getDynamicFieldObject", []interface{}{parentID, key}, &resp); err != nil {
		return nil, fmt.Errorf("failed to get dynamic field of %s: %w", parentID, err)
	}
	return &resp, nil
}

func (c *client) GetOwnedObjects(ctx context.Context, owner string, structType string) ([]ObjectResponse, error) {
	query := ownedObjectQuery{
		Options: ObjectOptions{ShowContent: true, ShowDisplay: true, ShowType: true},
	}
	if structType != "" {
		query.Filter = map[string]interface{}{"StructType": structType}
	}

	var objects []ObjectResponse
	var cursor *string

	for {
		var page ownedObjectPage
		params := []interface{}{owner, query, cursor, nil}
		if err := c.call(ctx, "suix_getOwnedObjects", params, &page); err != nil {
			return nil, fmt.Errorf("failed to list owned objects of %s: %w", owner, err)
		}

		objects = append(objects, page.Data...)
		if !page.HasNextPage || page.NextCursor == nil {
			return objects, nil
		}
		cursor = page.NextCursor
	}
}

func (c *client) MoveCall(ctx context.Context, signer, packageID, module, function string, typeArgs []string, args []interface{}, gasBudget uint64) (*TransactionBytes, error) {
	if typeArgs == nil {
		typeArgs = []string{}
	}
	if args == nil {
		args = []interface{}{}
	}

	params := []interface{}{
		signer,
		packageID,
		module,
		function,
		typeArgs,
		args,
		nil, // gas object: let the node pick
		fmt.Sprintf("%d", gasBudget),
	}

	var resp TransactionBytes
	if err := c.call(ctx, "unsafe_moveCall", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to build move call %s::%s: %w", module, function, err)
	}
	return &resp, nil
}

func (c *client) ExecuteTransaction(ctx context.Context, txBytes string, signatures []string) (*ExecutionResult, error) {
	params := []interface{}{
		txBytes,
		signatures,
		map[string]bool{"showEffects": true},
		"WaitForLocalExecution",
	}

	var resp ExecutionResult
	if err := c.call(ctx, "sui_executeTransactionBlock", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to execute transaction: %w", err)
	}
	return &resp, nil
}
