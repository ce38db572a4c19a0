// Package docs holds the OpenAPI description served at /swagger.
// It is maintained by hand in the layout swag generates; keep it in step
// with the handler annotations when routes change.
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
        "/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Current UI state of the calling client",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StateResponse"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Visible notifications of the calling client",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/controller.Notification"}}}
                }
            }
        },
        "/panels/{panel}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Switch the active panel",
                "parameters": [
                    {"type": "string", "description": "login, signup or forgot", "name": "panel", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StateResponse"}}
                }
            }
        },
        "/fields/{field}/visibility": {
            "post": {
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Toggle masking of a password field",
                "parameters": [
                    {"type": "string", "description": "Password field id, e.g. login-password", "name": "field", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StateResponse"}}
                }
            }
        },
        "/forms/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Submit the login form",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.StateResponse"}}
                }
            }
        },
        "/forms/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Submit the signup form",
                "parameters": [
                    {"description": "Registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.StateResponse"}}
                }
            }
        },
        "/forms/forgot": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Submit the forgot-password form",
                "parameters": [
                    {"description": "Email and new password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ResetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StateResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.StateResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Log out and reset all forms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StateResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controller.Notification": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "message": {"type": "string"},
                "severity": {"type": "string", "enum": ["info", "success", "error"]},
                "icon": {"type": "string"},
                "created_at": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        },
        "controller.FormMessages": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "success": {"type": "string"}
            }
        },
        "controller.FormValues": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "controller.FieldView": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "visible": {"type": "boolean"},
                "input_type": {"type": "string"},
                "icon": {"type": "string"}
            }
        },
        "controller.Welcome": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "subtext": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "controller.State": {
            "type": "object",
            "properties": {
                "panel": {"type": "string", "enum": ["login", "signup", "forgot"]},
                "authenticated": {"type": "boolean"},
                "welcome": {"$ref": "#/definitions/controller.Welcome"},
                "messages": {"type": "object", "additionalProperties": {"$ref": "#/definitions/controller.FormMessages"}},
                "values": {"type": "object", "additionalProperties": {"$ref": "#/definitions/controller.FormValues"}},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/controller.FieldView"}},
                "pending_panel": {"type": "string"},
                "notifications": {"type": "array", "items": {"$ref": "#/definitions/controller.Notification"}}
            }
        },
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "handler.StateResponse": {
            "type": "object",
            "properties": {
                "state": {"$ref": "#/definitions/controller.State"},
                "error": {"$ref": "#/definitions/errors.ErrorResponse"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.SignupRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "confirm_password": {"type": "string"}
            }
        },
        "handler.ResetRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "new_password": {"type": "string"},
                "confirm_password": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Auth Demo API",
	Description:      "Login, signup and password reset over a single key-value slot of plaintext users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
