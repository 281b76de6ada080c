// Package docs registers the OpenAPI document served under /swagger/.
// Keep it in step with the swag annotations on the http handlers.
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
        "/token": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in and get a bearer token",
                "parameters": [
                    {"type": "string", "description": "Backend login", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Backend password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "Space separated scopes", "name": "scope", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/token"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/error"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/users/me/": {
            "get": {
                "security": [{"OAuth2Password": ["me_profile"]}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/profile"}},
                    "400": {"description": "Inactive user", "schema": {"$ref": "#/definitions/error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/users/stats/": {
            "get": {
                "security": [{"OAuth2Password": ["me_profile"]}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/stats"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/orders/": {
            "get": {
                "security": [{"OAuth2Password": ["orders:list"]}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders",
                "parameters": [
                    {
                        "type": "array",
                        "items": {"type": "string", "enum": ["assigned", "waiting", "confirmed", "done", "cancelled", "unassigned"]},
                        "collectionFormat": "multi",
                        "description": "Picking states",
                        "name": "state",
                        "in": "query"
                    },
                    {"type": "integer", "minimum": 1, "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "minimum": 1, "maximum": 100, "default": 50, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orderPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/orders/{id}/accept": {
            "post": {
                "security": [{"OAuth2Password": ["orders:post"]}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Accept an order",
                "parameters": [{"type": "integer", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/objectID"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "See the X-Error-Reason header", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/orders/{id}/drop-off": {
            "post": {
                "security": [{"OAuth2Password": ["orders:post"]}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Drop off an order",
                "parameters": [
                    {"type": "integer", "description": "Order id", "name": "id", "in": "path", "required": true},
                    {"description": "Delivery details", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/dropOff"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/objectID"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "See the X-Error-Reason header", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/orders/{id}/cancel-order": {
            "post": {
                "security": [{"OAuth2Password": ["orders:post"]}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Cancel an order",
                "parameters": [
                    {"type": "integer", "description": "Order id", "name": "id", "in": "path", "required": true},
                    {"description": "Cancellation reason", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cancel"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/objectID"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "See the X-Error-Reason header", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/orders/{id}/cancel-job": {
            "post": {
                "security": [{"OAuth2Password": ["orders:post"]}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Give up a delivery job",
                "parameters": [
                    {"type": "integer", "description": "Order id", "name": "id", "in": "path", "required": true},
                    {"description": "Cancellation reason", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cancel"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/objectID"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "See the X-Error-Reason header", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        }
    },
    "definitions": {
        "error": {"type": "object", "properties": {"detail": {"type": "string"}}},
        "token": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string", "example": "bearer"}}
        },
        "profile": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "disabled": {"type": "boolean"}
            }
        },
        "stats": {
            "type": "object",
            "properties": {
                "orders": {
                    "type": "object",
                    "properties": {
                        "assigned": {"type": "integer"},
                        "completed": {"type": "integer"},
                        "completed_in_month": {"type": "integer"},
                        "current_period": {"type": "string", "example": "October 2026"}
                    }
                }
            }
        },
        "orderLine": {
            "type": "object",
            "properties": {"product": {"type": "string"}, "quantity": {"type": "number"}, "price_unit": {"type": "number"}}
        },
        "address": {
            "type": "object",
            "properties": {
                "street": {"type": "string"},
                "street2": {"type": "string"},
                "zip": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "country": {"type": "string"}
            }
        },
        "order": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "display_name": {"type": "string"},
                "date_order": {"type": "string", "format": "date-time"},
                "state": {"type": "string"},
                "picking_state": {"type": "string"},
                "order_line": {"type": "array", "items": {"$ref": "#/definitions/orderLine"}},
                "delivery_address": {"$ref": "#/definitions/address"},
                "amount_total": {"type": "number"}
            }
        },
        "orderPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/order"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        },
        "objectID": {"type": "object", "properties": {"object_id": {"type": "integer"}}},
        "dropOff": {
            "type": "object",
            "properties": {
                "drop_off_at": {"type": "string", "format": "date-time"},
                "collected_at": {"type": "string", "format": "date-time"},
                "note": {"type": "string"}
            }
        },
        "cancel": {"type": "object", "properties": {"reason": {"type": "string"}}}
    },
    "securityDefinitions": {
        "OAuth2Password": {
            "type": "oauth2",
            "flow": "password",
            "tokenUrl": "/token",
            "scopes": {
                "me_profile": "Read information about the current user.",
                "orders:list": "Read orders.",
                "orders:post": "Accept, drop off and cancel orders."
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dispatch API",
	Description:      "Delivery drivers list, accept and close orders of the backend store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
