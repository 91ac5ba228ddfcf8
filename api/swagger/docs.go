// Package swagger registers the generated API documentation.
// Regenerate with: swag init -g cmd/callout-server/main.go -o api/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{escape .Title}}",
        "contact": {
            "name": "Callout Support",
            "url": "https://github.com/callouthq/callout"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/links": {
            "post": {
                "description": "Encode a CTA configuration (or A/B pair) into a self-contained share link",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["links"],
                "summary": "Generate a share link",
                "parameters": [
                    {
                        "description": "Configuration to encode",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/links.GenerateLinkRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/links.GenerateLinkResponse"}
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/links/decode": {
            "post": {
                "description": "Decode a link fragment and resolve it to one concrete CTA for this viewer session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["links"],
                "summary": "Decode a share link",
                "parameters": [
                    {
                        "description": "Fragment to decode",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/links.DecodeLinkRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/links.DecodeLinkResponse"}
                    },
                    "422": {
                        "description": "Corrupt link",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/suggestions": {
            "post": {
                "description": "Ask the suggestion collaborator for message/button-text ideas. Failures yield an empty list, never an error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["suggestions"],
                "summary": "Suggest CTA copy",
                "parameters": [
                    {
                        "description": "Page being promoted",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/suggest.SuggestionsRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/suggest.SuggestionsResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "links.GenerateLinkRequest": {
            "type": "object",
            "properties": {
                "targetUrl": {"type": "string"},
                "data": {"type": "object"},
                "variants": {"type": "array", "items": {"type": "object"}}
            }
        },
        "links.GenerateLinkResponse": {
            "type": "object",
            "properties": {
                "fragment": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "links.DecodeLinkRequest": {
            "type": "object",
            "required": ["fragment"],
            "properties": {
                "fragment": {"type": "string"}
            }
        },
        "links.DecodeLinkResponse": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "targetUrl": {"type": "string"},
                "cta": {"type": "object"},
                "visual": {"type": "object"},
                "frameSandbox": {"type": "string"}
            }
        },
        "suggest.SuggestionsRequest": {
            "type": "object",
            "required": ["targetUrl"],
            "properties": {
                "targetUrl": {"type": "string"},
                "buttonUrl": {"type": "string"}
            }
        },
        "suggest.SuggestionsResponse": {
            "type": "object",
            "properties": {
                "suggestions": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "message": {"type": "string"},
                            "buttonText": {"type": "string"}
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Callout API",
	Description:      "Compose a CTA overlay, preview it over any page, and share it as a single self-contained link.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
