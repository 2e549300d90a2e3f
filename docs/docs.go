// Package docs documento OpenAPI de la API registrado en swag.
// Se mantiene junto con las anotaciones de los handlers (ver docs_test.go).
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
        "/business/create": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Valida y guarda la fotografía desnormalizada de un pedido. Un pedido solo puede registrarse una vez.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "business"
                ],
                "summary": "Registrar pedido finalizado",
                "parameters": [
                    {
                        "description": "Registro candidato",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/business.Draft"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.BusinessResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/business/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "business"
                ],
                "summary": "Obtener registro por id",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del registro",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BusinessResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/business/order/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "business"
                ],
                "summary": "Obtener registro por id de pedido",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del pedido original",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BusinessResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/business/{field}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Rangos: startValue (obligatorio) y endValue (opcional, igual a startValue si falta), inclusivos. Enumerados e identidades: weekDay, paymentMethod, origin, waiterId, waiterName, transactionHandlerId, transactionHandlerName, neighborhood, reason. canceled no recibe parámetros.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "business"
                ],
                "summary": "Consulta por campo",
                "parameters": [
                    {
                        "type": "string",
                        "description": "date-range, hour-slot, discount, delivery-fee, customer-count, total-items, time-to-start, time-preparing, time-to-delivery, week-day, payment-method, origin, waiter-id, waiter-name, transaction-handler-id, transaction-handler-name, delivery-neighborhood, canceled, cancel-reason",
                        "name": "field",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Límite inferior del rango (YYYY-MM-DD o RFC3339)",
                        "name": "startValue",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Límite superior del rango",
                        "name": "endValue",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.BusinessResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/business/daily-summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Ingresos, pedidos, descuentos, domicilios y ticket promedio del día. Sin pedidos devuelve ceros.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Resumen del día",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Día (YYYY-MM-DD). Default: hoy.",
                        "name": "date",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DailySummaryDTO"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/business/average-ticket-by-waiter": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Ticket promedio por mesero",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.WaiterTicketDTO"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/business/total-sales-by-origin": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Ventas por canal de origen",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.OriginSalesDTO"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/business/top-selling-items": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Ítems más vendidos",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Cantidad de ítems (default 10, máximo 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.TopItemDTO"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/business/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Resumen de hoy, del mes en curso y Top-5 de ítems del mes.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Dashboard del restaurante",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DashboardDTO"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/business/daily-summary/pdf": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "PDF de cierre diario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Día (YYYY-MM-DD). Default: hoy.",
                        "name": "date",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "business.Draft": {
            "type": "object",
            "properties": {
                "originalOrderId": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "description": "YYYY-MM-DD (hora local del servidor) o RFC3339"
                },
                "weekDay": {
                    "type": "string",
                    "enum": [
                        "SUNDAY",
                        "MONDAY",
                        "TUESDAY",
                        "WEDNESDAY",
                        "THURSDAY",
                        "FRIDAY",
                        "SATURDAY"
                    ]
                },
                "hourSlot": {
                    "type": "string"
                },
                "subtotal": {
                    "type": "number"
                },
                "discount": {
                    "type": "number"
                },
                "deliveryFee": {
                    "type": "number"
                },
                "total": {
                    "type": "number"
                },
                "customerCount": {
                    "type": "integer"
                },
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "CASH",
                        "CREDIT_CARD",
                        "DEBIT_CARD",
                        "PIX",
                        "MEAL_VOUCHER"
                    ]
                },
                "origin": {
                    "type": "string",
                    "enum": [
                        "IN_HOUSE",
                        "DELIVERY_APP",
                        "PHONE",
                        "WHATSAPP",
                        "WEBSITE"
                    ]
                },
                "itemsDenormalized": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BusinessItemResponse"
                    }
                },
                "totalItemsCount": {
                    "type": "integer"
                },
                "timeToStartPreparing": {
                    "type": "integer"
                },
                "timePreparing": {
                    "type": "integer"
                },
                "orderType": {
                    "type": "string",
                    "enum": [
                        "TABLE",
                        "DELIVERY",
                        "TAKEOUT"
                    ]
                },
                "timeToDelivery": {
                    "type": "integer"
                },
                "waiterId": {
                    "type": "string"
                },
                "waiterName": {
                    "type": "string"
                },
                "transactionHandlerId": {
                    "type": "string"
                },
                "transactionHandlerName": {
                    "type": "string"
                },
                "deliveryNeighborhood": {
                    "type": "string"
                },
                "isCanceled": {
                    "type": "boolean"
                },
                "cancellationReason": {
                    "type": "string"
                }
            }
        },
        "dto.BusinessItemResponse": {
            "type": "object",
            "properties": {
                "itemId": {
                    "type": "string"
                },
                "itemName": {
                    "type": "string"
                },
                "category": {
                    "type": "string",
                    "enum": [
                        "APPETIZER",
                        "MAIN_COURSE",
                        "SIDE_DISH",
                        "DESSERT",
                        "DRINK",
                        "ALCOHOLIC_DRINK"
                    ]
                },
                "quantity": {
                    "type": "integer"
                },
                "unitPrice": {
                    "type": "number"
                },
                "totalPrice": {
                    "type": "number"
                }
            }
        },
        "dto.BusinessResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "restaurantId": {
                    "type": "string"
                },
                "originalOrderId": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "weekDay": {
                    "type": "string"
                },
                "hourSlot": {
                    "type": "string"
                },
                "subtotal": {
                    "type": "number"
                },
                "discount": {
                    "type": "number"
                },
                "deliveryFee": {
                    "type": "number"
                },
                "total": {
                    "type": "number"
                },
                "customerCount": {
                    "type": "integer"
                },
                "paymentMethod": {
                    "type": "string"
                },
                "origin": {
                    "type": "string"
                },
                "itemsDenormalized": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BusinessItemResponse"
                    }
                },
                "totalItemsCount": {
                    "type": "integer"
                },
                "timeToStartPreparing": {
                    "type": "integer"
                },
                "timePreparing": {
                    "type": "integer"
                },
                "orderType": {
                    "type": "string"
                },
                "timeToDelivery": {
                    "type": "integer"
                },
                "waiterId": {
                    "type": "string"
                },
                "waiterName": {
                    "type": "string"
                },
                "transactionHandlerId": {
                    "type": "string"
                },
                "transactionHandlerName": {
                    "type": "string"
                },
                "deliveryNeighborhood": {
                    "type": "string"
                },
                "isCanceled": {
                    "type": "boolean"
                },
                "cancellationReason": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "dto.DailySummaryDTO": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "totalRevenue": {
                    "type": "number"
                },
                "totalOrders": {
                    "type": "integer"
                },
                "totalDiscount": {
                    "type": "number"
                },
                "totalDeliveryFee": {
                    "type": "number"
                },
                "averageTicket": {
                    "type": "number"
                }
            }
        },
        "dto.WaiterTicketDTO": {
            "type": "object",
            "properties": {
                "waiterId": {
                    "type": "string"
                },
                "waiterName": {
                    "type": "string"
                },
                "totalRevenue": {
                    "type": "number"
                },
                "totalOrders": {
                    "type": "integer"
                },
                "averageTicket": {
                    "type": "number"
                }
            }
        },
        "dto.OriginSalesDTO": {
            "type": "object",
            "properties": {
                "origin": {
                    "type": "string"
                },
                "totalRevenue": {
                    "type": "number"
                },
                "totalOrders": {
                    "type": "integer"
                },
                "averageTicket": {
                    "type": "number"
                }
            }
        },
        "dto.TopItemDTO": {
            "type": "object",
            "properties": {
                "itemId": {
                    "type": "string"
                },
                "itemName": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "totalUnitsSold": {
                    "type": "integer"
                }
            }
        },
        "dto.DashboardDTO": {
            "type": "object",
            "properties": {
                "today": {
                    "$ref": "#/definitions/dto.DailySummaryDTO"
                },
                "month": {
                    "$ref": "#/definitions/dto.DailySummaryDTO"
                },
                "topItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TopItemDTO"
                    }
                },
                "dateLabel": {
                    "type": "string"
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo metadatos del documento (título, versión, basePath).
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BarApp API",
	Description:      "Registros de negocio y reportes de ventas del POS.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
