package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// JSONSchema represents a JSON Schema document
type JSONSchema struct {
	Schema               string                 `json:"$schema,omitempty"`
	ID                   string                 `json:"$id,omitempty"`
	Title                string                 `json:"title,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Type                 string                 `json:"type,omitempty"`
	Required             []string               `json:"required,omitempty"`
	Properties           map[string]*JSONSchema `json:"properties,omitempty"`
	AdditionalProperties *JSONSchema            `json:"additionalProperties,omitempty"`
	Items                *JSONSchema            `json:"items,omitempty"`
	Enum                 []any                  `json:"enum,omitempty"`
	Default              any                    `json:"default,omitempty"`
	Pattern              string                 `json:"pattern,omitempty"`
	Minimum              *float64               `json:"minimum,omitempty"`
	Maximum              *float64               `json:"maximum,omitempty"`
	MinLength            *int                   `json:"minLength,omitempty"`
	MaxLength            *int                   `json:"maxLength,omitempty"`
	MinItems             *int                   `json:"minItems,omitempty"`
	MaxItems             *int                   `json:"maxItems,omitempty"`
}

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

// Generator generates JSON schemas from Go structs. Property names come from
// the struct tag named by TagName ("yaml" or "json").
type Generator struct {
	TagName string
	BaseID  string
}

// NewGenerator creates a generator reading the given struct tag.
func NewGenerator(tagName, baseID string) *Generator {
	return &Generator{TagName: tagName, BaseID: baseID}
}

// GenerateSchema generates a JSON schema from a Go type
func (g *Generator) GenerateSchema(t reflect.Type, title string) (*JSONSchema, error) {
	s, err := g.generateSchemaForType(t)
	if err != nil {
		return nil, err
	}
	s.Schema = schemaRef
	s.Title = title
	if g.BaseID != "" {
		s.ID = strings.TrimSuffix(g.BaseID, "/") + "/" + strings.ToLower(title)
	}
	return s, nil
}

func (g *Generator) generateSchemaForType(t reflect.Type) (*JSONSchema, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	schema := &JSONSchema{}

	switch t.Kind() {
	case reflect.Struct:
		return g.generateStructSchema(t)
	case reflect.Slice:
		return g.generateListSchema(t, -1)
	case reflect.Array:
		return g.generateListSchema(t, t.Len())
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type: %s", t.Key().Kind())
		}
		values, err := g.generateSchemaForType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for map values: %w", err)
		}
		schema.Type = "object"
		schema.AdditionalProperties = values
	case reflect.String:
		schema.Type = "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		schema.Type = "integer"
	case reflect.Float32, reflect.Float64:
		schema.Type = "number"
	case reflect.Bool:
		schema.Type = "boolean"
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}

	return schema, nil
}

func (g *Generator) generateStructSchema(t reflect.Type) (*JSONSchema, error) {
	schema := &JSONSchema{
		Type:       "object",
		Properties: make(map[string]*JSONSchema),
	}

	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if !field.IsExported() && !field.Anonymous {
			continue
		}

		fieldName, inline := g.getFieldName(field)
		if fieldName == "" && !inline {
			continue
		}

		fieldSchema, err := g.generateFieldSchema(field)
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for field %s: %w", field.Name, err)
		}

		if inline {
			for k, v := range fieldSchema.Properties {
				schema.Properties[k] = v
			}
			required = append(required, fieldSchema.Required...)
			continue
		}

		schema.Properties[fieldName] = fieldSchema

		if isFieldRequired(field) {
			required = append(required, fieldName)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}

	return schema, nil
}

func (g *Generator) generateListSchema(t reflect.Type, fixedLen int) (*JSONSchema, error) {
	schema := &JSONSchema{
		Type: "array",
	}

	itemSchema, err := g.generateSchemaForType(t.Elem())
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema for array items: %w", err)
	}
	schema.Items = itemSchema

	if fixedLen >= 0 {
		schema.MinItems = &fixedLen
		schema.MaxItems = &fixedLen
	}
	return schema, nil
}

func (g *Generator) generateFieldSchema(field reflect.StructField) (*JSONSchema, error) {
	fieldSchema, err := g.generateSchemaForType(field.Type)
	if err != nil {
		return nil, err
	}

	if desc := field.Tag.Get("description"); desc != "" {
		fieldSchema.Description = desc
	}

	if schemaTag := field.Tag.Get("schema"); schemaTag != "" {
		parseSchemaTag(schemaTag, fieldSchema)
	}

	return fieldSchema, nil
}

func parseSchemaTag(tag string, schema *JSONSchema) {
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		key, val, _ := strings.Cut(part, "=")

		switch key {
		case "enum":
			enums := strings.Split(val, "|")
			schema.Enum = make([]any, len(enums))
			for i, e := range enums {
				schema.Enum[i] = e
			}
		case "default":
			schema.Default = val
		case "pattern":
			schema.Pattern = val
		case "minimum":
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				schema.Minimum = &f
			}
		case "maximum":
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				schema.Maximum = &f
			}
		case "minLength":
			schema.MinLength = atoiPtr(val)
		case "maxLength":
			schema.MaxLength = atoiPtr(val)
		case "minItems":
			schema.MinItems = atoiPtr(val)
		case "maxItems":
			schema.MaxItems = atoiPtr(val)
		}
	}
}

func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// getFieldName returns the property name and whether the field is inlined
// into its parent.
func (g *Generator) getFieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get(g.TagName)
	if tag == "-" {
		return "", false
	}

	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "inline" {
			return "", true
		}
	}
	if field.Anonymous && parts[0] == "" {
		return "", true
	}
	if parts[0] == "" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:], false
	}
	return parts[0], false
}

func isFieldRequired(field reflect.StructField) bool {
	for _, part := range strings.Split(field.Tag.Get("schema"), ",") {
		if strings.TrimSpace(part) == "required" {
			return true
		}
	}
	return false
}

// GenerateJSONSchema generates a JSON schema for the type of v as indented JSON.
func (g *Generator) GenerateJSONSchema(v any, title string) (string, error) {
	schema, err := g.GenerateSchema(reflect.TypeOf(v), title)
	if err != nil {
		return "", err
	}

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}

	return string(jsonBytes), nil
}
