// Package docs holds the generated swagger document.
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
        "/auth/login": {
            "post": {
                "description": "Authenticates a user by email and password and returns a JWT token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User login"
            }
        },
        "/auth/register": {
            "post": {
                "description": "Creates a new local user account.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register new user"
            }
        },
        "/auth/google": {
            "post": {
                "description": "Exchanges a Google OAuth authorization code for an application JWT.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Google sign-in"
            }
        },
        "/tax": {
            "get": {
                "description": "Returns the caller's full transaction ledger in insertion order.",
                "produces": ["application/json"],
                "tags": ["tax"],
                "summary": "List transactions"
            },
            "post": {
                "description": "Appends a new transaction to the caller's ledger.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tax"],
                "summary": "Create transaction"
            }
        },
        "/tax/summary": {
            "get": {
                "description": "Aggregates the caller's transaction amounts by type.",
                "produces": ["application/json"],
                "tags": ["tax"],
                "summary": "Ledger summary"
            }
        },
        "/tax/export": {
            "get": {
                "description": "Renders the caller's full ledger as a downloadable CSV file.",
                "produces": ["text/csv"],
                "tags": ["tax"],
                "summary": "Export ledger CSV"
            }
        },
        "/paye/estimate": {
            "post": {
                "description": "Runs the progressive PAYE assessment over an annual gross income and optional reliefs.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculators"],
                "summary": "Estimate PAYE"
            }
        },
        "/vat/estimate": {
            "post": {
                "description": "Computes the VAT owed on a base amount at the flat rate.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculators"],
                "summary": "Estimate VAT"
            }
        },
        "/receipts": {
            "post": {
                "description": "Runs recognition over uploaded receipt images and stages editable candidate lines.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["receipts"],
                "summary": "Extract receipt amounts"
            }
        },
        "/receipts/{runID}": {
            "get": {
                "description": "Returns the staged candidate preview for one extraction batch.",
                "produces": ["application/json"],
                "tags": ["receipts"],
                "summary": "Get extraction run"
            }
        },
        "/receipts/{runID}/lines/{lineID}": {
            "put": {
                "description": "Edits a staged candidate line before confirmation.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["receipts"],
                "summary": "Edit candidate line"
            }
        },
        "/receipts/{runID}/confirm": {
            "post": {
                "description": "Commits every still-selected candidate line to the ledger and drops the run.",
                "produces": ["application/json"],
                "tags": ["receipts"],
                "summary": "Confirm extraction run"
            }
        },
        "/imports/csv": {
            "post": {
                "description": "Parses an uploaded CSV file and commits each importable row as a VAT transaction.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["imports"],
                "summary": "Import CSV statement"
            }
        },
        "/users/me": {
            "delete": {
                "description": "Soft-deletes the authenticated user's account. The account stops resolving for login and lookups.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete own account"
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "TaxTrack NG Backend API",
	Description:      "Personal Nigerian tax tracking: PAYE and VAT calculators, receipt extraction and a transaction ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
