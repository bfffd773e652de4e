package sui

import "encoding/json"

// rpcRequest is a JSON-RPC 2.0 request envelope
type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// rpcResponse is a JSON-RPC 2.0 response envelope
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// rpcError is a JSON-RPC 2.0 error object
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ObjectOptions selects which parts of an object the node should return
type ObjectOptions struct {
	ShowContent bool `json:"showContent,omitempty"`
	ShowDisplay bool `json:"showDisplay,omitempty"`
	ShowType    bool `json:"showType,omitempty"`
}

// DynamicFieldKey identifies a dynamic-field child by typed key.
// The rental contract stores the wrapped asset either under a named
// vector<u8> key or under an address key equal to the asset id.
type DynamicFieldKey struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// NamedAssetKey is the vector<u8> "asset" child key
func NamedAssetKey() DynamicFieldKey {
	return DynamicFieldKey{Type: "vector<u8>", Value: "asset"}
}

// AssetIDKey is the address child key equal to the listing's asset id
func AssetIDKey(assetID string) DynamicFieldKey {
	return DynamicFieldKey{Type: "address", Value: assetID}
}

// DynamicFieldInfo describes one child record attached to a parent object
type DynamicFieldInfo struct {
	ObjectID   string          `json:"objectId"`
	ObjectType string          `json:"objectType"`
	Name       json.RawMessage `json:"name"`
}

// dynamicFieldPage is one page of suix_getDynamicFields results
type dynamicFieldPage struct {
	Data        []DynamicFieldInfo `json:"data"`
	NextCursor  *string            `json:"nextCursor"`
	HasNextPage bool               `json:"hasNextPage"`
}

// ObjectContent holds the parsed Move struct of an object
type ObjectContent struct {
	DataType string                 `json:"dataType"`
	Type     string                 `json:"type"`
	Fields   map[string]interface{} `json:"fields"`
}

// ObjectDisplay holds the Display standard metadata of an object
type ObjectDisplay struct {
	Data map[string]string `json:"data"`
}

// ObjectData is the payload of a successfully fetched object
type ObjectData struct {
	ObjectID string         `json:"objectId"`
	Version  string         `json:"version"`
	Type     string         `json:"type"`
	Content  *ObjectContent `json:"content"`
	Display  *ObjectDisplay `json:"display"`
}

// ObjectError describes a per-object failure (absent, deleted, ...)
type ObjectError struct {
	Code     string `json:"code"`
	ObjectID string `json:"object_id"`
}

// ObjectResponse is a single object read result; either Data or Error is set
type ObjectResponse struct {
	Data  *ObjectData  `json:"data"`
	Error *ObjectError `json:"error"`
}

// Exists reports whether the object was found with content available
func (r *ObjectResponse) Exists() bool {
	return r != nil && r.Data != nil && r.Error == nil
}

// Fields returns the Move struct fields, or nil when unavailable
func (r *ObjectResponse) Fields() map[string]interface{} {
	if !r.Exists() || r.Data.Content == nil || r.Data.Content.DataType != "moveObject" {
		return nil
	}
	return r.Data.Content.Fields
}

// DisplayData returns the Display metadata map, or nil when unavailable
func (r *ObjectResponse) DisplayData() map[string]string {
	if !r.Exists() || r.Data.Display == nil {
		return nil
	}
	return r.Data.Display.Data
}

// ObjectType returns the full Move type tag of the object, preferring the
// content type over the top-level one
func (r *ObjectResponse) ObjectType() string {
	if !r.Exists() {
		return ""
	}
	if r.Data.Content != nil && r.Data.Content.Type != "" {
		return r.Data.Content.Type
	}
	return r.Data.Type
}

// ownedObjectPage is one page of suix_getOwnedObjects results
type ownedObjectPage struct {
	Data        []ObjectResponse `json:"data"`
	NextCursor  *string          `json:"nextCursor"`
	HasNextPage bool             `json:"hasNextPage"`
}

// ownedObjectQuery is the filter/options envelope for suix_getOwnedObjects
type ownedObjectQuery struct {
	Filter  map[string]interface{} `json:"filter,omitempty"`
	Options ObjectOptions          `json:"options"`
}

// TransactionBytes is an unsigned transaction returned by the build endpoints
type TransactionBytes struct {
	TxBytes string `json:"txBytes"`
}

// ExecutionStatus is the outcome of an executed transaction
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// TransactionEffects carries the subset of effects the gateway inspects
type TransactionEffects struct {
	Status ExecutionStatus `json:"status"`
}

// ExecutionResult is the response of sui_executeTransactionBlock
type ExecutionResult struct {
	Digest  string              `json:"digest"`
	Effects *TransactionEffects `json:"effects"`
}

// Succeeded reports whether the transaction executed successfully on chain
func (r *ExecutionResult) Succeeded() bool {
	return r != nil && r.Effects != nil && r.Effects.Status.Status == "success"
}
