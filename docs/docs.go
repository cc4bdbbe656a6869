// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/storefront/main.go
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
        "/api/authenticate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "Tab identity", "name": "X-Tab-ID", "in": "header"},
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/signout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.signOutResponse"}}}
            }
        },
        "/api/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}}
            }
        },
        "/api/home": {
            "get": {
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "Page view",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.pageResponse"}}}
            }
        },
        "/api/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "Page view",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.pageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/search": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "Search products by name",
                "parameters": [
                    {"description": "Search term", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.searchRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.pageResponse"}}}
            }
        },
        "/api/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.queryResponse"}}}
            }
        },
        "/api/categories/select": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "Select a category",
                "parameters": [
                    {"description": "Category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.selectCategoryRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.selectCategoryResponse"}}}
            }
        },
        "/api/categories/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "Category page",
                "parameters": [{"type": "string", "description": "Category name", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.pageResponse"}}}
            }
        },
        "/api/admin/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin product list",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.queryResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.navigation": {
            "type": "object",
            "properties": {"path": {"type": "string"}, "state": {"type": "object", "additionalProperties": {"type": "string"}}}
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string"}},
                "redirect": {"$ref": "#/definitions/handler.navigation"}
            }
        },
        "handler.signOutResponse": {"type": "object", "properties": {"redirect": {"$ref": "#/definitions/handler.navigation"}}},
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "loggedIn": {"type": "boolean"},
                "userId": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.searchRequest": {"type": "object", "properties": {"term": {"type": "string"}}},
        "handler.selectCategoryRequest": {"type": "object", "properties": {"categoryName": {"type": "string"}}},
        "handler.productResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "unitPrice": {"type": "string"},
                "quantityInStock": {"type": "integer"},
                "image": {"type": "string"}
            }
        },
        "handler.categoryResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "categoryName": {"type": "string"}}
        },
        "handler.pageResponse": {
            "type": "object",
            "properties": {
                "mode": {"type": "string"},
                "status": {"type": "string"},
                "primary": {"type": "array", "items": {"$ref": "#/definitions/handler.productResponse"}},
                "secondary": {"type": "array", "items": {"$ref": "#/definitions/handler.productResponse"}},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/handler.categoryResponse"}},
                "selectedCategory": {"type": "string"},
                "searchTerm": {"type": "string"},
                "notFound": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "handler.selectCategoryResponse": {
            "type": "object",
            "properties": {
                "navigation": {"$ref": "#/definitions/handler.navigation"},
                "view": {"$ref": "#/definitions/handler.pageResponse"}
            }
        },
        "handler.queryResponse": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "status": {"type": "string"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/handler.productResponse"}},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/handler.categoryResponse"}},
                "error": {"type": "string"}
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
	Title:            "Storefront Gateway API",
	Description:      "Per-tab session, catalog query and navigation gateway for the storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
