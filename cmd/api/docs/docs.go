// Package docs registers the OpenAPI document served at /swagger. Keep it in
// step with the swag annotations on cmd/api and internal/handler.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Web Team"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog/status": {
            "get": {
                "description": "Reports whether the exercise document is still loading, loaded or failed",
                "produces": ["application/json"],
                "tags": ["exercises"],
                "summary": "Exercise catalog state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CatalogStatusResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Returns the category and difficulty filter options. They are returned even when the catalog failed to load.",
                "produces": ["application/json"],
                "tags": ["exercises"],
                "summary": "Filter options",
                "parameters": [
                    {"type": "string", "description": "Locale for labels", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FilterOptionsResponse"}}
                }
            }
        },
        "/exercises": {
            "get": {
                "description": "Filters the exercise library by category, difficulty and free text",
                "produces": ["application/json"],
                "tags": ["exercises"],
                "summary": "List exercises",
                "parameters": [
                    {"type": "string", "description": "Category id or all", "name": "category", "in": "query"},
                    {"type": "string", "description": "beginner, intermediate, advanced or all", "name": "difficulty", "in": "query"},
                    {"type": "string", "description": "Case-insensitive text matched against name and description", "name": "q", "in": "query"},
                    {"type": "string", "description": "Locale for messages", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExerciseListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "503": {"description": "Catalog failed to load", "schema": {"$ref": "#/definitions/dto.ExerciseListResponse"}}
                }
            }
        },
        "/exercises/{id}": {
            "get": {
                "description": "Returns the content of the detail overlay for one exercise",
                "produces": ["application/json"],
                "tags": ["exercises"],
                "summary": "Exercise detail",
                "parameters": [
                    {"type": "string", "description": "Exercise id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExerciseDetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/locations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "List clinic locations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LocationListResponse"}}
                }
            }
        },
        "/locations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Clinic location",
                "parameters": [
                    {"type": "string", "description": "Location id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LocationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/i18n/{locale}": {
            "get": {
                "description": "Every known key resolved for the locale. Unknown locales get the default locale and embedded defaults.",
                "produces": ["application/json"],
                "tags": ["i18n"],
                "summary": "Page copy for a locale",
                "parameters": [
                    {"type": "string", "description": "Locale, e.g. en or es", "name": "locale", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TranslationsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ValidationError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "field": {"type": "string"},
                "message": {"type": "string"},
                "value": {}
            }
        },
        "dto.AmenityResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "dto.CatalogStatusResponse": {
            "type": "object",
            "properties": {
                "category_count": {"type": "integer"},
                "exercise_count": {"type": "integer"},
                "loaded_at": {"type": "string"},
                "message": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "dto.CategoryOption": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "dto.DifficultyOption": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "dto.ExerciseDetailResponse": {
            "type": "object",
            "properties": {
                "category_id": {"type": "string"},
                "cautions": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "difficulty": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "instructions": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string"}
            }
        },
        "dto.ExerciseListResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "count": {"type": "integer"},
                "difficulty": {"type": "string"},
                "exercises": {"type": "array", "items": {"$ref": "#/definitions/dto.ExerciseSummary"}},
                "message": {"type": "string"},
                "query": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "dto.ExerciseSummary": {
            "type": "object",
            "properties": {
                "category_id": {"type": "string"},
                "description": {"type": "string"},
                "difficulty": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "dto.FilterOptionsResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryOption"}},
                "difficulties": {"type": "array", "items": {"$ref": "#/definitions/dto.DifficultyOption"}},
                "state": {"type": "string"}
            }
        },
        "dto.LocationListResponse": {
            "type": "object",
            "properties": {
                "locations": {"type": "array", "items": {"$ref": "#/definitions/dto.LocationResponse"}}
            }
        },
        "dto.LocationResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "amenities": {"type": "array", "items": {"$ref": "#/definitions/dto.AmenityResponse"}},
                "city": {"type": "string"},
                "hours": {"type": "array", "items": {"type": "string"}},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "map_url": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "dto.TranslationsResponse": {
            "type": "object",
            "properties": {
                "locale": {"type": "string"},
                "strings": {"type": "object", "additionalProperties": {"type": "string"}},
                "supported": {"type": "boolean"}
            }
        },
        "middleware.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "middleware.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/domain.ValidationError"}},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "status": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Neuro Site API",
	Description:      "Exercise library, clinic locations and page copy for the neurosurgery practice website.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
