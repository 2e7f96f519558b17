// Package docs holds the OpenAPI document served under /swagger.
// Regenerate it from the handler annotations with:
//
//	swag init -g cmd/server/main.go -o docs
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
                "tags": [
                    "health"
                ],
                "summary": "Liveness and database check",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Service Unavailable"
                    }
                }
            }
        },
        "/v1/menu": {
            "get": {
                "tags": [
                    "menu"
                ],
                "summary": "List the menu",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.MenuItemResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                }
            }
        },
        "/v1/menu/import": {
            "post": {
                "tags": [
                    "menu"
                ],
                "summary": "Replace the menu from CSV",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MenuImportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                },
                "consumes": [
                    "multipart/form-data",
                    "text/csv"
                ],
                "parameters": [
                    {
                        "type": "file",
                        "description": "Menu CSV",
                        "name": "file",
                        "in": "formData"
                    }
                ]
            }
        },
        "/v1/cart/add": {
            "post": {
                "tags": [
                    "cart"
                ],
                "summary": "Add a line to the cart",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CartResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Cart and the line to add",
                        "schema": {
                            "$ref": "#/definitions/dto.AddToCartRequest"
                        }
                    }
                ]
            }
        },
        "/v1/cart/clear": {
            "post": {
                "tags": [
                    "cart"
                ],
                "summary": "Empty the cart",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CartResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Current cart",
                        "schema": {
                            "$ref": "#/definitions/dto.CartRequest"
                        }
                    }
                ]
            }
        },
        "/v1/cart/remove-last": {
            "post": {
                "tags": [
                    "cart"
                ],
                "summary": "Remove the most recent line",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CartResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Current cart",
                        "schema": {
                            "$ref": "#/definitions/dto.CartRequest"
                        }
                    }
                ]
            }
        },
        "/v1/cart/price": {
            "post": {
                "tags": [
                    "cart"
                ],
                "summary": "Price the cart",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CartTotals"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Cart, flat tax and discount",
                        "schema": {
                            "$ref": "#/definitions/dto.PriceCartRequest"
                        }
                    }
                ]
            }
        },
        "/v1/orders": {
            "post": {
                "tags": [
                    "orders"
                ],
                "summary": "Place an order",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.PlaceOrderResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "description": "Cart, mode and payment",
                        "schema": {
                            "$ref": "#/definitions/dto.PlaceOrderRequest"
                        }
                    }
                ]
            }
        },
        "/v1/orders/{id}": {
            "get": {
                "tags": [
                    "orders"
                ],
                "summary": "Fetch an order",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OrderResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Order ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/orders/{id}/receipt.pdf": {
            "get": {
                "tags": [
                    "orders"
                ],
                "summary": "Download the receipt PDF",
                "produces": [
                    "application/pdf"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apierror.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Order ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/reports/summary": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Sales summary per period",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.PeriodSummary"
                            }
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "default": "daily",
                        "description": "daily, weekly or monthly",
                        "name": "period",
                        "in": "query"
                    }
                ]
            }
        },
        "/v1/reports/summary.csv": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Sales summary as CSV",
                "produces": [
                    "text/csv"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "default": "daily",
                        "description": "daily, weekly or monthly",
                        "name": "period",
                        "in": "query"
                    }
                ]
            }
        },
        "/v1/reports/top-items": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Best-selling items",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.ItemPopularity"
                            }
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "default": 10,
                        "description": "How many items",
                        "name": "n",
                        "in": "query"
                    }
                ]
            }
        },
        "/v1/reports/export": {
            "post": {
                "tags": [
                    "reports"
                ],
                "summary": "Write the sales summary to disk",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReportExportResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/apierror.ValidationError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "default": "daily",
                        "description": "daily, weekly or monthly",
                        "name": "period",
                        "in": "query"
                    }
                ]
            }
        }
    },
    "definitions": {
        "apierror.APIError": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                }
            }
        },
        "apierror.ValidationError": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.CartLine": {
            "type": "object",
            "properties": {
                "item_id": {
                    "type": "integer"
                },
                "item_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer",
                    "minimum": 1
                },
                "unit_price": {
                    "type": "string",
                    "example": "0.00"
                },
                "tax_percent": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.AddToCartRequest": {
            "type": "object",
            "properties": {
                "cart": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CartLine"
                    }
                },
                "item_id": {
                    "type": "integer"
                },
                "item_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer",
                    "minimum": 1
                },
                "unit_price": {
                    "type": "string",
                    "example": "0.00"
                },
                "tax_percent": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.CartRequest": {
            "type": "object",
            "properties": {
                "cart": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CartLine"
                    }
                }
            }
        },
        "dto.CartResponse": {
            "type": "object",
            "properties": {
                "cart": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CartLine"
                    }
                }
            }
        },
        "dto.PriceCartRequest": {
            "type": "object",
            "properties": {
                "cart": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CartLine"
                    }
                },
                "flat_tax_percent": {
                    "type": "string",
                    "example": "0.00"
                },
                "discount_percent": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.PricedLine": {
            "type": "object",
            "properties": {
                "item_id": {
                    "type": "integer"
                },
                "item_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_price": {
                    "type": "string",
                    "example": "0.00"
                },
                "tax_percent": {
                    "type": "string",
                    "example": "0.00"
                },
                "line_total": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.CartTotals": {
            "type": "object",
            "properties": {
                "subtotal": {
                    "type": "string",
                    "example": "0.00"
                },
                "tax_total": {
                    "type": "string",
                    "example": "0.00"
                },
                "discount_amount": {
                    "type": "string",
                    "example": "0.00"
                },
                "grand_total": {
                    "type": "string",
                    "example": "0.00"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PricedLine"
                    }
                }
            }
        },
        "dto.MenuItemResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "item_name": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "0.00"
                },
                "tax_percent": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.MenuImportResponse": {
            "type": "object",
            "properties": {
                "total_rows": {
                    "type": "integer"
                },
                "imported": {
                    "type": "integer"
                },
                "skipped": {
                    "type": "integer"
                }
            }
        },
        "dto.PlaceOrderRequest": {
            "type": "object",
            "required": [
                "mode",
                "payment_method",
                "cart"
            ],
            "properties": {
                "mode": {
                    "type": "string",
                    "enum": [
                        "Dine-In",
                        "Takeaway"
                    ]
                },
                "payment_method": {
                    "type": "string",
                    "enum": [
                        "Cash",
                        "Card",
                        "UPI"
                    ]
                },
                "cart": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CartLine"
                    }
                },
                "flat_tax_percent": {
                    "type": "string",
                    "example": "0.00"
                },
                "discount_percent": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.PlaceOrderResponse": {
            "type": "object",
            "properties": {
                "order_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "totals": {
                    "$ref": "#/definitions/dto.CartTotals"
                }
            }
        },
        "dto.OrderHeader": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "mode": {
                    "type": "string"
                },
                "payment_method": {
                    "type": "string"
                },
                "subtotal": {
                    "type": "string",
                    "example": "0.00"
                },
                "tax_total": {
                    "type": "string",
                    "example": "0.00"
                },
                "discount_amount": {
                    "type": "string",
                    "example": "0.00"
                },
                "grand_total": {
                    "type": "string",
                    "example": "0.00"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "dto.OrderLineResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "order_id": {
                    "type": "integer"
                },
                "item_id": {
                    "type": "integer"
                },
                "item_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_price": {
                    "type": "string",
                    "example": "0.00"
                },
                "tax_percent": {
                    "type": "string",
                    "example": "0.00"
                },
                "line_total": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.OrderResponse": {
            "type": "object",
            "properties": {
                "order": {
                    "$ref": "#/definitions/dto.OrderHeader"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.OrderLineResponse"
                    }
                }
            }
        },
        "dto.PeriodSummary": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "order_count": {
                    "type": "integer"
                },
                "subtotal_sum": {
                    "type": "string",
                    "example": "0.00"
                },
                "tax_sum": {
                    "type": "string",
                    "example": "0.00"
                },
                "discount_sum": {
                    "type": "string",
                    "example": "0.00"
                },
                "total_sum": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "dto.ItemPopularity": {
            "type": "object",
            "properties": {
                "item_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                }
            }
        },
        "dto.ReportExportResponse": {
            "type": "object",
            "properties": {
                "path": {
                    "type": "string"
                },
                "period": {
                    "type": "string"
                },
                "periods": {
                    "type": "integer"
                }
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
	Title:            "Restaurant Billing API",
	Description:      "Menu, cart pricing, order ledger and sales reports for a single restaurant counter.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
