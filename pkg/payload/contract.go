package payload

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaName is the component schema payloads are checked against.
const SchemaName = "InstallationPayload"

// ErrContract marks a payload rejected by the contract.
var ErrContract = errors.New("payload: contract violation")

//go:embed openapi.yaml
var embeddedContract []byte

var (
	contractOnce sync.Once
	contractDoc  *openapi3.T
	contractErr  error
)

// Contract returns the parsed, validated OpenAPI document describing the save
// payload.
func Contract(ctx context.Context) (*openapi3.T, error) {
	contractOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(embeddedContract)
		if err != nil {
			contractErr = fmt.Errorf("payload: load contract: %w", err)
			return
		}
		if err := doc.Validate(ctx); err != nil {
			contractErr = fmt.Errorf("payload: invalid contract: %w", err)
			return
		}
		contractDoc = doc
	})
	return contractDoc, contractErr
}

// Check validates p against the contract schema.
func Check(ctx context.Context, p Payload) error {
	doc, err := Contract(ctx)
	if err != nil {
		return err
	}
	ref, ok := doc.Components.Schemas[SchemaName]
	if !ok || ref == nil || ref.Value == nil {
		return fmt.Errorf("payload: schema %q not found", SchemaName)
	}

	value, err := toJSONValue(p)
	if err != nil {
		return fmt.Errorf("payload: encode: %w", err)
	}
	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %v", ErrContract, err)
	}
	return nil
}

func toJSONValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
