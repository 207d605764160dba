// Package docs registers the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "data.status: ok",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    }
                }
            }
        },
        "/stages": {
            "get": {
                "description": "Returns the number of stages, the last page index, and a plain-text summary per stage.",
                "produces": ["application/json"],
                "tags": ["stages"],
                "summary": "List lesson stages",
                "responses": {
                    "200": {
                        "description": "data contains the lesson overview",
                        "schema": {"$ref": "#/definitions/controllers.ListStagesSuccessResponse"}
                    }
                }
            }
        },
        "/stages/{stage}": {
            "get": {
                "description": "Resolves a zero-based stage index and returns the slide with its navigation fields. The second-to-last stage also reports atEnd.",
                "produces": ["application/json"],
                "tags": ["stages"],
                "summary": "Get a lesson stage",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Stage index (base-10 integer)",
                        "name": "stage",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data contains the page view",
                        "schema": {"$ref": "#/definitions/controllers.GetStageSuccessResponse"}
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.GetStageSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.PageView"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListStagesSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.LessonOverview"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "domain.LessonOverview": {
            "type": "object",
            "properties": {
                "lastPage": {"type": "integer"},
                "stageCount": {"type": "integer"},
                "stages": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/domain.StageSummary"}
                }
            }
        },
        "domain.PageView": {
            "type": "object",
            "properties": {
                "atEnd": {"type": "boolean"},
                "atStart": {"type": "boolean"},
                "lastPage": {"type": "integer"},
                "pageCurrent": {"type": "integer"},
                "pageNext": {"type": "integer"},
                "pagePrev": {"type": "integer"},
                "stageData": {"$ref": "#/definitions/domain.Slide"}
            }
        },
        "domain.Slide": {
            "type": "object",
            "properties": {
                "description": {"type": "string"}
            }
        },
        "domain.StageSummary": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"},
                "summary": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
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
	Title:            "Reflection Lesson API",
	Description:      "Serves the stages of the law-of-reflection lesson with their navigation metadata.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
