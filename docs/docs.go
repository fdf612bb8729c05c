// Package docs registers the swagger document served at /swagger/*.
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
        "/countries": {
            "get": {
                "produces": ["application/json"],
                "summary": "List known countries",
                "operationId": "ListCountries",
                "responses": {
                    "200": {
                        "description": "Countries sorted by name",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Country"}}
                    },
                    "500": {"description": "Request failed", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/owners/{ownerId}/warehouses": {
            "get": {
                "produces": ["application/json"],
                "summary": "List an owner's warehouses",
                "operationId": "ListOwnerWarehouses",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "ownerId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Warehouses of the owner",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Warehouse"}}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "List a new warehouse",
                "operationId": "CreateWarehouse",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "ownerId", "in": "path", "required": true},
                    {"name": "form", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WarehouseForm"}}
                ],
                "responses": {
                    "201": {"description": "Created with status AVAILABLE", "schema": {"$ref": "#/definitions/Warehouse"}},
                    "404": {"description": "Owner not found", "schema": {"$ref": "#/definitions/Error"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/ValidationError"}}
                }
            }
        },
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Register a user",
                "operationId": "RegisterUser",
                "parameters": [
                    {"name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NewUser"}}
                ],
                "responses": {
                    "201": {"description": "Registered", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Invalid role", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/Error"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/ValidationError"}}
                }
            }
        },
        "/warehouses": {
            "get": {
                "produces": ["application/json"],
                "summary": "List warehouses available for rent",
                "operationId": "ListAvailableWarehouses",
                "parameters": [
                    {"type": "string", "name": "country", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Available warehouses",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/AvailableWarehouse"}}
                    }
                }
            }
        },
        "/warehouses/{warehouseId}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get a warehouse",
                "operationId": "GetWarehouse",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "warehouseId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "The warehouse", "schema": {"$ref": "#/definitions/Warehouse"}},
                    "404": {"description": "Warehouse not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Update a warehouse",
                "operationId": "UpdateWarehouse",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "warehouseId", "in": "path", "required": true},
                    {"name": "form", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WarehouseForm"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/Warehouse"}},
                    "404": {"description": "Warehouse not found", "schema": {"$ref": "#/definitions/Error"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/ValidationError"}}
                }
            },
            "delete": {
                "summary": "Delete a warehouse",
                "operationId": "DeleteWarehouse",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "warehouseId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Warehouse not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "ValidationError": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "NewUser": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"},
                "role": {"type": "string", "example": "OWNER"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "Country": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "cities": {"type": "integer", "format": "int64"}
            }
        },
        "WarehouseForm": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "street": {"type": "string"},
                "zipCode": {"type": "string"},
                "city": {"type": "string"},
                "country": {"type": "string"},
                "storageType": {"type": "string"},
                "storageTypeDescription": {"type": "string"},
                "size": {"type": "number"},
                "climateCondition": {"type": "string"}
            }
        },
        "Warehouse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "street": {"type": "string"},
                "zipCode": {"type": "string"},
                "city": {"type": "string"},
                "country": {"type": "string"},
                "storageType": {"type": "string"},
                "storageTypeDescription": {"type": "string"},
                "size": {"type": "number"},
                "status": {"type": "string", "enum": ["AVAILABLE", "RENTED", "UNAVAILABLE"]},
                "climateCondition": {"type": "string"},
                "ownerId": {"type": "string", "format": "uuid"}
            }
        },
        "AvailableWarehouse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "street": {"type": "string"},
                "zipCode": {"type": "string"},
                "city": {"type": "string"},
                "country": {"type": "string"},
                "storageType": {"type": "string"},
                "size": {"type": "number"},
                "climateCondition": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Warehouse Management Service",
	Description:      "Owners list warehouses for rent; users register as owners, agents or tenants.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
