// Package docs registers the OpenAPI document of the scoring API.
// Regenerate with `swag init -g cmd/docseg_api/main.go -o internal/api/docs`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/match": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["score"],
                "summary": "Optimal span matching",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.SpansRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MatchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/v1/score": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["score"],
                "summary": "Global IoU score",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.SpansRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ScoreResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/v1/evaluate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["score"],
                "summary": "Full score set",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.EvaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EvaluateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.Span": {
            "type": "object",
            "properties": {
                "start_idx": {"type": "integer"},
                "end_idx": {"type": "integer"}
            }
        },
        "dto.SpansRequest": {
            "type": "object",
            "properties": {
                "true_spans": {"type": "array", "items": {"$ref": "#/definitions/dto.Span"}},
                "pred_spans": {"type": "array", "items": {"$ref": "#/definitions/dto.Span"}}
            }
        },
        "dto.EvaluateRequest": {
            "type": "object",
            "properties": {
                "true_spans": {"type": "array", "items": {"$ref": "#/definitions/dto.Span"}},
                "pred_spans": {"type": "array", "items": {"$ref": "#/definitions/dto.Span"}},
                "iou_threshold": {"type": "number"}
            }
        },
        "dto.Pair": {
            "type": "object",
            "properties": {
                "true": {"x-nullable": true, "$ref": "#/definitions/dto.Span"},
                "pred": {"x-nullable": true, "$ref": "#/definitions/dto.Span"},
                "similarity": {"type": "number"}
            }
        },
        "dto.MatchResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "n": {"type": "integer"},
                "pairs": {"type": "array", "items": {"$ref": "#/definitions/dto.Pair"}},
                "score": {"type": "number"}
            }
        },
        "dto.ScoreResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "n": {"type": "integer"},
                "score": {"type": "number"}
            }
        },
        "dto.EvaluateResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "n": {"type": "integer"},
                "iou_threshold": {"type": "number"},
                "global_iou": {"type": "number"},
                "mean_matched_iou": {"type": "number"},
                "exact_matches": {"type": "integer"},
                "true_positives": {"type": "integer"},
                "precision": {"type": "number"},
                "recall": {"type": "number"},
                "f1": {"type": "number"},
                "true_count": {"type": "integer"},
                "pred_count": {"type": "integer"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Document Segmentation Scoring API",
	Description:      "Scores predicted document boundaries against ground truth using optimal IoU matching",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
