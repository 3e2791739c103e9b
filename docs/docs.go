// Package docs registers the admin API's Swagger document with swag so
// gin-swagger can serve it. The document is maintained by hand alongside
// internal/interfaces/http/router/routes.go.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "produces": ["application/json"],
    "consumes": ["application/json"],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "in": "header",
            "name": "Authorization",
            "description": "Session token issued by the identity provider, as 'Bearer <token>'. The __Secure-session_token and session_token cookies are accepted too."
        }
    },
    "security": [{"BearerAuth": []}],
    "parameters": {
        "page": {"name": "page", "in": "query", "type": "integer", "minimum": 1, "maximum": 100000, "default": 1},
        "page_size": {"name": "page_size", "in": "query", "type": "integer", "minimum": 1, "maximum": 100, "default": 20},
        "order": {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"], "default": "desc"},
        "search": {"name": "search", "in": "query", "type": "string", "maxLength": 100},
        "id": {"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}
    },
    "responses": {
        "List": {
            "description": "One page of results",
            "schema": {"type": "array", "items": {"type": "object"}},
            "headers": {
                "X-Total-Count": {"type": "integer", "description": "Rows matching the filter"},
                "X-Page": {"type": "integer"},
                "X-Page-Size": {"type": "integer"}
            }
        },
        "Object": {"description": "The resource", "schema": {"type": "object"}},
        "Totals": {"description": "Decimal totals as strings", "schema": {"type": "object"}},
        "BadRequest": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/ErrorResponse"}},
        "Unauthorized": {"description": "Missing, expired, invalid or revoked session", "schema": {"$ref": "#/definitions/ErrorResponse"}},
        "Forbidden": {"description": "Role lacks the capability", "schema": {"$ref": "#/definitions/ErrorResponse"}},
        "NotFound": {"description": "No such resource", "schema": {"$ref": "#/definitions/ErrorResponse"}}
    },
    "paths": {
        "/customers": {
            "get": {
                "tags": ["customers"], "summary": "List customers",
                "parameters": [
                    {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/page_size"}, {"$ref": "#/parameters/order"}, {"$ref": "#/parameters/search"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["active", "inactive"]},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["id", "created_at", "updated_at", "code", "name", "email", "status", "balance", "credit_limit"]}
                ],
                "responses": {"200": {"$ref": "#/responses/List"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/customers/{id}": {
            "get": {
                "tags": ["customers"], "summary": "Get a customer",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"$ref": "#/responses/Object"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}}
            }
        },
        "/customers/{id}/payment-methods": {
            "patch": {
                "tags": ["customers"], "summary": "Change a customer's allowed payment methods",
                "parameters": [{"$ref": "#/parameters/id"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PaymentMethodsRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Object"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}, "409": {"description": "Concurrent change", "schema": {"$ref": "#/definitions/ErrorResponse"}}}
            }
        },
        "/customers/{id}/balance-adjustments": {
            "post": {
                "tags": ["customers"], "summary": "Adjust a customer's balance",
                "parameters": [{"$ref": "#/parameters/id"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdjustBalanceRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Object"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}, "409": {"description": "Concurrent change", "schema": {"$ref": "#/definitions/ErrorResponse"}}}
            }
        },
        "/audit": {
            "get": {
                "tags": ["audit"], "summary": "List audit entries",
                "parameters": [
                    {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/page_size"},
                    {"name": "entity_type", "in": "query", "type": "string", "enum": ["customer"]},
                    {"name": "entity_id", "in": "query", "type": "string", "format": "uuid"},
                    {"name": "actor_id", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"$ref": "#/responses/List"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/products": {
            "get": {
                "tags": ["products"], "summary": "List products",
                "parameters": [
                    {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/page_size"}, {"$ref": "#/parameters/order"}, {"$ref": "#/parameters/search"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["id", "created_at", "updated_at", "sku", "name", "price", "stock_quantity"]}
                ],
                "responses": {"200": {"$ref": "#/responses/List"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/products/{id}": {
            "get": {
                "tags": ["products"], "summary": "Get a product",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"$ref": "#/responses/Object"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}}
            }
        },
        "/orders": {
            "get": {
                "tags": ["orders"], "summary": "List orders",
                "parameters": [
                    {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/page_size"}, {"$ref": "#/parameters/order"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["pending", "paid", "shipped", "completed", "cancelled", "refunded"]},
                    {"name": "customer_id", "in": "query", "type": "string", "format": "uuid"},
                    {"name": "payment_method", "in": "query", "type": "string", "enum": ["card", "cash_on_delivery", "store_credit", "bank_transfer"]},
                    {"name": "placed_from", "in": "query", "type": "string", "description": "RFC 3339 time or YYYY-MM-DD"},
                    {"name": "placed_to", "in": "query", "type": "string", "description": "RFC 3339 time or YYYY-MM-DD"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["id", "created_at", "number", "status", "total", "placed_at"]}
                ],
                "responses": {"200": {"$ref": "#/responses/List"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/orders/total": {
            "get": {
                "tags": ["orders"], "summary": "Order totals for the filter",
                "responses": {"200": {"$ref": "#/responses/Totals"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/orders/{id}": {
            "get": {
                "tags": ["orders"], "summary": "Get an order with its lines",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"$ref": "#/responses/Object"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}}
            }
        },
        "/employees": {
            "get": {
                "tags": ["employees"], "summary": "List employees",
                "parameters": [
                    {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/page_size"}, {"$ref": "#/parameters/order"}, {"$ref": "#/parameters/search"},
                    {"name": "department", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["active", "on_leave", "terminated"]},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["id", "created_at", "code", "full_name", "department", "status", "hired_at"]}
                ],
                "responses": {"200": {"$ref": "#/responses/List"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/employees/{id}": {
            "get": {
                "tags": ["employees"], "summary": "Get an employee",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"$ref": "#/responses/Object"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}}
            }
        },
        "/payroll/runs": {
            "get": {
                "tags": ["payroll"], "summary": "List payroll runs",
                "parameters": [
                    {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/page_size"}, {"$ref": "#/parameters/order"},
                    {"name": "period", "in": "query", "type": "string", "description": "YYYY-MM"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["draft", "approved", "paid"]}
                ],
                "responses": {"200": {"$ref": "#/responses/List"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/payroll/runs/{id}": {
            "get": {
                "tags": ["payroll"], "summary": "Get a payroll run",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"$ref": "#/responses/Object"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}}
            }
        },
        "/payroll/payslips": {
            "get": {
                "tags": ["payroll"], "summary": "List payslips; employees see only their own",
                "parameters": [
                    {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/page_size"}, {"$ref": "#/parameters/order"},
                    {"name": "payroll_run_id", "in": "query", "type": "string", "format": "uuid"},
                    {"name": "employee_id", "in": "query", "type": "string", "format": "uuid"}
                ],
                "responses": {"200": {"$ref": "#/responses/List"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/expenses": {
            "get": {
                "tags": ["expenses"], "summary": "List expenses; employees see only their own",
                "parameters": [
                    {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/page_size"}, {"$ref": "#/parameters/order"},
                    {"name": "category", "in": "query", "type": "string", "enum": ["rent", "utilities", "office", "travel", "marketing", "equipment", "maintenance", "tax", "other"]},
                    {"name": "status", "in": "query", "type": "string", "enum": ["submitted", "approved", "rejected", "reimbursed"]},
                    {"name": "submitted_by", "in": "query", "type": "string", "format": "uuid"},
                    {"name": "spent_from", "in": "query", "type": "string"},
                    {"name": "spent_to", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"$ref": "#/responses/List"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/expenses/total": {
            "get": {
                "tags": ["expenses"], "summary": "Expense totals for the filter",
                "responses": {"200": {"$ref": "#/responses/Totals"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/investments": {
            "get": {
                "tags": ["investments"], "summary": "List investments",
                "parameters": [
                    {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/page_size"}, {"$ref": "#/parameters/order"}, {"$ref": "#/parameters/search"},
                    {"name": "asset_class", "in": "query", "type": "string", "enum": ["equity", "bond", "fund", "cash", "alternative"]}
                ],
                "responses": {"200": {"$ref": "#/responses/List"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/investments/total": {
            "get": {
                "tags": ["investments"], "summary": "Portfolio totals",
                "responses": {"200": {"$ref": "#/responses/Totals"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        },
        "/investments/{id}": {
            "get": {
                "tags": ["investments"], "summary": "Get an investment",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"$ref": "#/responses/Object"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}}
            }
        },
        "/files": {
            "get": {
                "tags": ["files"], "summary": "Redirect to a fresh signed URL for a stored object",
                "parameters": [{"name": "key", "in": "query", "required": true, "type": "string"}],
                "responses": {"302": {"description": "Redirect to the signed URL", "headers": {"Location": {"type": "string"}}}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}}
            }
        },
        "/files/url": {
            "get": {
                "tags": ["files"], "summary": "Issue a signed URL for a stored object",
                "parameters": [{"name": "key", "in": "query", "required": true, "type": "string"}],
                "responses": {"200": {"$ref": "#/responses/Object"}, "400": {"$ref": "#/responses/BadRequest"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}, "404": {"$ref": "#/responses/NotFound"}}
            }
        },
        "/session": {
            "get": {
                "tags": ["session"], "summary": "Describe the caller's session",
                "responses": {"200": {"description": "The session", "schema": {"$ref": "#/definitions/SessionResponse"}}, "401": {"$ref": "#/responses/Unauthorized"}}
            }
        },
        "/session/sign-out": {
            "post": {
                "tags": ["session"], "summary": "Revoke the current session, or every session with all=true",
                "parameters": [{"name": "all", "in": "query", "type": "boolean"}],
                "responses": {"204": {"description": "Signed out"}, "401": {"$ref": "#/responses/Unauthorized"}, "403": {"$ref": "#/responses/Forbidden"}}
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "required": ["error", "code"],
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string", "example": "ERR_VALIDATION"},
                "request_id": {"type": "string"},
                "details": {"type": "array", "items": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}}}
            }
        },
        "AdjustBalanceRequest": {
            "type": "object",
            "required": ["amount", "reason"],
            "properties": {
                "amount": {"type": "string", "description": "Signed decimal, up to 4 places", "example": "-12.5000"},
                "reason": {"type": "string", "maxLength": 500}
            }
        },
        "PaymentMethodsRequest": {
            "type": "object",
            "required": ["reason"],
            "properties": {
                "allow_cash_on_delivery": {"type": "boolean"},
                "allow_store_credit": {"type": "boolean"},
                "reason": {"type": "string", "maxLength": 500}
            }
        },
        "SessionResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "manager", "accountant", "employee"]},
                "capabilities": {"type": "array", "items": {"type": "string"}},
                "expires_at": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds the exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Shop Admin API",
	Description:      "Back-office API for customers, catalogue, orders, staff, payroll, expenses, investments and stored files.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
