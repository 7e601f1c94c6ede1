// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/token": {
            "post": {
                "tags": ["auth"],
                "summary": "Issue an access token",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TokenRequest"}}],
                "responses": {
                    "200": {"description": "Token issued", "schema": {"$ref": "#/definitions/handlers.TokenResponse"}},
                    "401": {"description": "Invalid passphrase", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "List categories",
                "parameters": [
                    {"type": "boolean", "name": "is_expense", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "Categories"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Save a category",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SaveCategoryRequest"}}],
                "responses": {
                    "201": {"description": "Category created", "schema": {"$ref": "#/definitions/models.Category"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Get category by ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Category", "schema": {"$ref": "#/definitions/models.Category"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Replace a category",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SaveCategoryRequest"}}
                ],
                "responses": {"200": {"description": "Category replaced", "schema": {"$ref": "#/definitions/models.Category"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Category deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "409": {"description": "Category in use", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "integer", "name": "category_id", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "Transactions"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Save a transaction",
                "description": "Insert a transaction (id 0) or replace an existing one",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SaveTransactionRequest"}}],
                "responses": {
                    "201": {"description": "Transaction created", "schema": {"$ref": "#/definitions/models.TransactionDetail"}},
                    "200": {"description": "Transaction replaced", "schema": {"$ref": "#/definitions/models.TransactionDetail"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Get transaction by ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Transaction details", "schema": {"$ref": "#/definitions/models.TransactionDetail"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Update a transaction",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TransactionRequest"}}
                ],
                "responses": {"200": {"description": "Transaction updated", "schema": {"$ref": "#/definitions/models.TransactionDetail"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Delete a transaction",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Transaction deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Get balance",
                "responses": {"200": {"description": "Balance", "schema": {"$ref": "#/definitions/handlers.BalanceResponse"}}}
            }
        },
        "/analytics/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Per-category breakdown",
                "parameters": [
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "granularity", "in": "query"},
                    {"type": "string", "name": "start", "in": "query"},
                    {"type": "string", "name": "end", "in": "query"}
                ],
                "responses": {"200": {"description": "Breakdown", "schema": {"$ref": "#/definitions/handlers.SummaryResponse"}}}
            }
        },
        "/analytics/periods/current": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Current period",
                "parameters": [{"type": "string", "name": "granularity", "in": "query"}],
                "responses": {"200": {"description": "Period"}}
            }
        },
        "/analytics/periods/navigate": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Previous or next period",
                "parameters": [
                    {"type": "string", "name": "granularity", "in": "query", "required": true},
                    {"type": "string", "name": "start", "in": "query", "required": true},
                    {"type": "string", "name": "end", "in": "query", "required": true},
                    {"type": "integer", "name": "direction", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "Period"}}
            }
        },
        "/analytics/view": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Analysis view",
                "responses": {"200": {"description": "View", "schema": {"$ref": "#/definitions/services.AnalysisView"}}}
            }
        },
        "/analytics/view/type": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Select transaction type",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SetTypeRequest"}}],
                "responses": {"200": {"description": "View", "schema": {"$ref": "#/definitions/services.AnalysisView"}}}
            }
        },
        "/analytics/view/period": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Select granularity",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SetPeriodRequest"}}],
                "responses": {"200": {"description": "View", "schema": {"$ref": "#/definitions/services.AnalysisView"}}}
            }
        },
        "/analytics/view/range": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Select custom range",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SetRangeRequest"}}],
                "responses": {"200": {"description": "View", "schema": {"$ref": "#/definitions/services.AnalysisView"}}}
            }
        },
        "/analytics/view/navigate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Navigate period",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.NavigateRequest"}}],
                "responses": {"200": {"description": "View", "schema": {"$ref": "#/definitions/services.AnalysisView"}}}
            }
        },
        "/analytics/view/stream": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/event-stream"],
                "tags": ["analytics"],
                "summary": "Stream analysis view",
                "responses": {"200": {"description": "Stream of views"}}
            }
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.TokenRequest": {
            "type": "object",
            "required": ["passphrase"],
            "properties": {"passphrase": {"type": "string"}}
        },
        "handlers.TokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "expires_at": {"type": "string"}}
        },
        "handlers.SaveCategoryRequest": {
            "type": "object",
            "required": ["is_expense"],
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "is_expense": {"type": "boolean"},
                "color_hex": {"type": "string"}
            }
        },
        "handlers.TransactionRequest": {
            "type": "object",
            "required": ["type", "category_id"],
            "properties": {
                "amount": {"type": "number"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "category_id": {"type": "integer"}
            }
        },
        "handlers.SaveTransactionRequest": {
            "type": "object",
            "required": ["type", "category_id"],
            "properties": {
                "id": {"type": "integer"},
                "amount": {"type": "number"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "category_id": {"type": "integer"}
            }
        },
        "handlers.BalanceResponse": {
            "type": "object",
            "properties": {"balance": {"type": "number"}}
        },
        "handlers.SummaryResponse": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "period": {"$ref": "#/definitions/analytics.Period"},
                "slices": {"type": "array", "items": {"$ref": "#/definitions/analytics.ChartSlice"}},
                "total_amount": {"type": "number"}
            }
        },
        "handlers.SetTypeRequest": {
            "type": "object",
            "required": ["type"],
            "properties": {"type": {"type": "string", "enum": ["income", "expense"]}}
        },
        "handlers.SetPeriodRequest": {
            "type": "object",
            "required": ["granularity"],
            "properties": {"granularity": {"type": "string", "enum": ["DAY", "WEEK", "MONTH", "YEAR", "CUSTOM"]}}
        },
        "handlers.SetRangeRequest": {
            "type": "object",
            "required": ["start", "end"],
            "properties": {"start": {"type": "string"}, "end": {"type": "string"}}
        },
        "handlers.NavigateRequest": {
            "type": "object",
            "required": ["direction"],
            "properties": {"direction": {"type": "integer", "enum": [-1, 1]}}
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "is_expense": {"type": "boolean"},
                "color_hex": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.TransactionDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "amount": {"type": "number"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "type": {"type": "string"},
                "category_id": {"type": "integer"},
                "category": {"$ref": "#/definitions/models.Category"}
            }
        },
        "analytics.Period": {
            "type": "object",
            "properties": {
                "granularity": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"}
            }
        },
        "analytics.ChartSlice": {
            "type": "object",
            "properties": {
                "category": {"$ref": "#/definitions/models.Category"},
                "amount": {"type": "number"},
                "percentage": {"type": "number"},
                "color": {"type": "string"}
            }
        },
        "services.AnalysisView": {
            "type": "object",
            "properties": {
                "version": {"type": "integer"},
                "selected_type": {"type": "string"},
                "period": {"$ref": "#/definitions/analytics.Period"},
                "slices": {"type": "array", "items": {"$ref": "#/definitions/analytics.ChartSlice"}},
                "total_amount": {"type": "number"},
                "is_loading": {"type": "boolean"},
                "error": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Money Manager API",
	Description:      "Track income and expenses by category and break them down by period.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
