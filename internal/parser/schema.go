package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// JSON-Schema shapes for the parsed_data audit blob. Persisting a malformed
// blob would poison every later reviewer fetch, so results are validated
// before they reach the database.

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func nullableNumber() map[string]any {
	return map[string]any{"type": []string{"number", "null"}}
}

func statusProp() map[string]any {
	return map[string]any{
		"type": "string",
		"enum": []string{"full", "partial", "failed", "unsupported"},
	}
}

// BuildContractResultSchema describes the contract-result audit shape.
func BuildContractResultSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"party_a":         nullableString(),
			"party_b":         nullableString(),
			"contract_number": nullableString(),
			"contract_name":   nullableString(),
			"sign_date":       nullableString(),
			"effective_date":  nullableString(),
			"expiry_date":     nullableString(),
			"amount":          nullableNumber(),
			"stamp_pages": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer", "minimum": 0},
			},
			"raw_text":      map[string]any{"type": "string"},
			"parse_status":  statusProp(),
			"parse_message": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"raw_text", "parse_status", "parse_message", "stamp_pages"},
	}
}

// BuildInvoiceResultSchema describes the invoice-result audit shape.
func BuildInvoiceResultSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"invoice_number": nullableString(),
			"invoice_code":   nullableString(),
			"amount":         nullableNumber(),
			"invoice_date":   nullableString(),
			"seller":         nullableString(),
			"buyer":          nullableString(),
			"tax_amount":     nullableNumber(),
			"raw_text":       map[string]any{"type": "string"},
			"parse_status":   statusProp(),
			"parse_message":  map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"raw_text", "parse_status", "parse_message"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
