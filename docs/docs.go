// Package docs registers the OpenAPI document served under /swagger.
//
// Regenerate from the handler annotations with:
//
//	swag init -g cmd/api/main.go -o docs
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
        "/admin/signup": {"post": {"tags": ["admin"], "summary": "Admin signup", "responses": {"201": {"description": "Created"}, "400": {"description": "Email taken"}, "403": {"description": "Signup disabled"}}}},
        "/admin/signin": {"post": {"tags": ["admin"], "summary": "Admin signin", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}}},
        "/admin/signout": {"post": {"tags": ["admin"], "summary": "Admin signout", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/profile": {"get": {"tags": ["admin"], "summary": "Admin profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/users": {"get": {"tags": ["admin"], "summary": "List users", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/delete-user/{id}": {"delete": {"tags": ["admin"], "summary": "Delete user", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/admin/add-product": {"post": {"tags": ["admin"], "summary": "Add product", "consumes": ["multipart/form-data"], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid or duplicate"}}}},
        "/admin/import-products": {"post": {"tags": ["admin"], "summary": "Import products from xlsx", "consumes": ["multipart/form-data"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/all-products": {"get": {"tags": ["admin"], "summary": "List products", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/delete-product/{id}": {"delete": {"tags": ["admin"], "summary": "Delete product", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/admin/add-category": {"post": {"tags": ["admin"], "summary": "Add category", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid or duplicate"}}}},
        "/admin/all-categories": {"get": {"tags": ["admin"], "summary": "List categories", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/delete-category/{id}": {"delete": {"tags": ["admin"], "summary": "Delete category", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/admin/all-orders": {"get": {"tags": ["admin"], "summary": "List all orders", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/ai-image": {"post": {"tags": ["admin"], "summary": "Generate product image", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Missing name"}}}},
        "/admin/add-zone": {"post": {"tags": ["admin"], "summary": "Add zone", "consumes": ["multipart/form-data"], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid or duplicate"}}}},
        "/admin/all-zones": {"get": {"tags": ["admin"], "summary": "List zones", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/delete-zone/{id}": {"delete": {"tags": ["admin"], "summary": "Delete zone", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/admin/all-receipts": {"get": {"tags": ["admin"], "summary": "List all receipts", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/zone/signin": {"post": {"tags": ["zone"], "summary": "Zone signin", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}}},
        "/zone/signout": {"post": {"tags": ["zone"], "summary": "Zone signout", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/zone/profile": {"get": {"tags": ["zone"], "summary": "Zone profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/zone/all-receipts": {"get": {"tags": ["zone"], "summary": "List own receipts", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/zone/generate-receipt": {"post": {"tags": ["zone"], "summary": "Generate receipt", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid"}}}},
        "/zone/delete-receipt/{id}": {"delete": {"tags": ["zone"], "summary": "Delete receipt", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/signup": {"post": {"tags": ["user"], "summary": "User signup", "responses": {"201": {"description": "Created"}, "400": {"description": "Email taken"}}}},
        "/signin": {"post": {"tags": ["user"], "summary": "User signin", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}}},
        "/signout": {"post": {"tags": ["user"], "summary": "User signout", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/profile": {"get": {"tags": ["user"], "summary": "User profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/products": {"get": {"tags": ["catalog"], "summary": "List products", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/categories": {"get": {"tags": ["catalog"], "summary": "List categories", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/place-order": {"post": {"tags": ["user"], "summary": "Place order", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid items"}}}},
        "/my-orders": {"get": {"tags": ["user"], "summary": "List own orders", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Commerce API",
	Description:      "Admin, zone and user surfaces of the commerce backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
