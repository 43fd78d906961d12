// Package docs registers the OpenAPI document served on /swagger.
// Regenerate with `swag init -g cmd/news_api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/channels": {
            "get": {"tags": ["channels"], "summary": "List channels", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/channels/{id}/articles": {
            "get": {
                "tags": ["articles"],
                "summary": "List articles of a channel",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Channel ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "name": "pageNum", "in": "query"},
                    {"type": "integer", "default": 10, "maximum": 100, "name": "pageSize", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/articles": {
            "get": {
                "tags": ["articles"],
                "summary": "Search articles",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "keyword", "in": "query", "required": true},
                    {"type": "integer", "default": 1, "name": "pageNum", "in": "query"},
                    {"type": "integer", "default": 10, "maximum": 100, "name": "pageSize", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/articles/{id}": {
            "get": {
                "tags": ["articles"],
                "summary": "Get article details",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/articles/{id}/likes": {
            "post": {"tags": ["articles"], "summary": "Like an article", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/articles/{id}/dislikes": {
            "post": {"tags": ["articles"], "summary": "Dislike an article", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/articles/{id}/comments": {
            "get": {
                "tags": ["comments"],
                "summary": "List comments of an article",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "name": "pageNum", "in": "query"},
                    {"type": "integer", "default": 10, "maximum": 100, "name": "pageSize", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["comments"],
                "summary": "Comment on an article",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "comment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AddCommentRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/comments/{id}/likes": {
            "post": {"tags": ["comments"], "summary": "Like a comment", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/comments/{id}/dislikes": {
            "post": {"tags": ["comments"], "summary": "Dislike a comment", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/v1/users/{id}/comments": {
            "get": {
                "tags": ["comments"],
                "summary": "List comments written by a user",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "name": "pageNum", "in": "query"},
                    {"type": "integer", "default": 10, "maximum": 100, "name": "pageSize", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/sections": {
            "get": {
                "tags": ["sections"],
                "summary": "List sections",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "default": 1, "name": "pageNum", "in": "query"},
                    {"type": "integer", "default": 10, "maximum": 100, "name": "pageSize", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/sections/search": {
            "get": {
                "tags": ["sections"],
                "summary": "Search sections",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "keyword", "in": "query", "required": true},
                    {"type": "integer", "default": 1, "name": "pageNum", "in": "query"},
                    {"type": "integer", "default": 10, "maximum": 100, "name": "pageSize", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/sections/prefix/{prefix}": {
            "get": {
                "tags": ["sections"],
                "summary": "List sections by alias initial",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "prefix", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "name": "pageNum", "in": "query"},
                    {"type": "integer", "default": 10, "maximum": 100, "name": "pageSize", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/sections/{id}": {
            "get": {
                "tags": ["sections"],
                "summary": "Get section details",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/sections/{id}/atlas": {
            "get": {
                "tags": ["sections"],
                "summary": "Get the relation graph of a section",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"enum": ["section", "article"], "type": "string", "name": "type", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/keywords/hot": {
            "get": {
                "tags": ["keywords"],
                "summary": "List the most searched keywords",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "default": 10, "maximum": 50, "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "dto.AddCommentRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "userId": {"type": "integer"}
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
	Title:            "News Portal API",
	Description:      "Articles, sections and their popularity counters",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
