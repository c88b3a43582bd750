// Package docs holds the OpenAPI document served under /swagger. It is
// generated from the handler annotations with
// swag init -g cmd/server/main.go -o docs --parseInternal; do not edit by hand.
package docs

import "github.com/swaggo/swag/v2"

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
		"/addCWIPEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addContingentLiability": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addDeferredTaxEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addEmployeeBenefitEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addGrouping": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Creates a grouping under an existing minor head",
				"operationId": "addGrouping",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.GroupingInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addIntangibleEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addInvestmentEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addMajorHead": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Creates a major head",
				"operationId": "addMajorHead",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.MajorHeadInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addMinorHead": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Creates a minor head under an existing major head",
				"operationId": "addMinorHead",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.MinorHeadInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addNoteSelection": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Adds a user note",
				"operationId": "addNoteSelection",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/note.NoteInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addPPEEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addPayableLedgerEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addRatioAnalysis": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addReceivableLedgerEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addRelatedPartyTransaction": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addShareCapitalEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/addTaxEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an entry in one supporting schedule. Derived totals are computed server side.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Add a schedule entry",
				"parameters": [
					{
						"description": "Entry fields with companyId",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/archiveCompany": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Hides a company from the list without deleting its data",
				"operationId": "archiveCompany",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/company.CompanyIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/calculateTaxExpense": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Totals the tax note with its current and deferred split",
				"operationId": "calculateTaxExpense",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/changePassword": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Replaces the caller's password",
				"operationId": "changePassword",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/identity.ChangePasswordInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/checkTrialBalanceReconciliation": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trial-balance"
				],
				"summary": "Compares the trial balance with the party ledgers",
				"operationId": "checkTrialBalanceReconciliation",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.companyScope"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/createCompany": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Creates a company owned by the caller",
				"operationId": "createCompany",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/company.CreateCompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/debugCompliance": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"compliance"
				],
				"summary": "Runs the diagnostic battery for a company",
				"operationId": "debugCompliance",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/compliance.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteCWIPEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteCompany": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Removes a company and everything scoped to it",
				"operationId": "deleteCompany",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/company.CompanyIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteContingentLiability": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteDeferredTaxEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteEmployeeBenefitEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteGrouping": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Removes an unused grouping",
				"operationId": "deleteGrouping",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.IDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteIntangibleEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteInvestmentEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteMajorHead": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Removes an unused major head",
				"operationId": "deleteMajorHead",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.IDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteMinorHead": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Removes an unused minor head",
				"operationId": "deleteMinorHead",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.IDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteNoteSelection": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Removes a user note",
				"operationId": "deleteNoteSelection",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/note.NoteIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deletePPEEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deletePayableLedgerEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteRatioAnalysis": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteReceivableLedgerEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteRelatedPartyTransaction": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteShareCapitalEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteTaxEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Delete a schedule entry",
				"parameters": [
					{
						"description": "Entry and company",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/deleteTrialBalanceEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trial-balance"
				],
				"summary": "Removes one line",
				"operationId": "deleteTrialBalanceEntry",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ledger.EntryIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/exportFinancialStatements": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "Renders a statement and returns a download link",
				"operationId": "exportFinancialStatements",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/report.ExportInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/generateBalanceSheet": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "Builds the balance sheet from the trial balance",
				"operationId": "generateBalanceSheet",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/report.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/generateCashFlow": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "Builds the indirect method cash flow statement",
				"operationId": "generateCashFlow",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/report.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/generateProfitAndLoss": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "Builds the statement of profit and loss",
				"operationId": "generateProfitAndLoss",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/report.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/generateRatioAnalysis": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "Computes the key ratios, optionally saving them",
				"operationId": "generateRatioAnalysis",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/report.RatioInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getAccountingPolicies": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Returns the company's policies or the global defaults",
				"operationId": "getAccountingPolicies",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getAgingSchedules": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Summarises the receivable and payable ledgers by aging bucket",
				"operationId": "getAgingSchedules",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getCWIPEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getCommonControl": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Returns the entity settings, or defaults when unset",
				"operationId": "getCommonControl",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/company.CompanyIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getCompanies": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Lists the caller's active companies",
				"operationId": "getCompanies",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getCompany": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Returns one company of the caller",
				"operationId": "getCompany",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/company.CompanyIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getCompanyStats": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Counts the rows of every scoped table",
				"operationId": "getCompanyStats",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/company.CompanyIDInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getContingentLiabilities": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getCurrentUser": {
			"post": {
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Returns the user of a session token",
				"operationId": "getCurrentUser",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/identity.TokenInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getDeferredTaxEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getEmployeeBenefitEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getGroupings": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Lists groupings, optionally of one minor head",
				"operationId": "getGroupings",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.GroupingFilter"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getIntangibleEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getInvestmentEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getLicenseInfo": {
			"post": {
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"license"
				],
				"summary": "Describes a license",
				"operationId": "getLicenseInfo",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/license.KeyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getMajorHeads": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Lists major heads with their minor head and line counts",
				"operationId": "getMajorHeads",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getMinorHeads": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Lists minor heads, optionally of one major head",
				"operationId": "getMinorHeads",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.MinorHeadFilter"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getNoteSelections": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Lists the company's notes by reference",
				"operationId": "getNoteSelections",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/note.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getPPEEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getPayableLedgerEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getRatioAnalyses": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getReceivableLedgerEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getRelatedPartyTransactions": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getShareCapitalEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getTaxEntries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "List schedule entries",
				"parameters": [
					{
						"description": "Company and optional sort",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.ListInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getTrialBalance": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trial-balance"
				],
				"summary": "Lists the company's trial balance lines",
				"operationId": "getTrialBalance",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.companyScope"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/getTrialBalanceUploadUrl": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trial-balance"
				],
				"summary": "Presigns an upload of a trial balance file",
				"operationId": "getTrialBalanceUploadUrl",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ledger.UploadURLInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/importTrialBalanceCsv": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trial-balance"
				],
				"summary": "Imports CSV text sent with the call",
				"operationId": "importTrialBalanceCsv",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ledger.ImportCSVInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/initializeAccountingPolicies": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Copies the standard policies to the company",
				"operationId": "initializeAccountingPolicies",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/initializeNoteSelections": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Replaces the company's notes with the standard list",
				"operationId": "initializeNoteSelections",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/note.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Opens a new session",
				"operationId": "login",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/identity.LoginInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/logout": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Closes the session of the input token or, failing that, the bearer token",
				"operationId": "logout",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/identity.TokenInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/processTrialBalanceFile": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trial-balance"
				],
				"summary": "Imports a previously uploaded CSV file",
				"operationId": "processTrialBalanceFile",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ledger.ProcessFileInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/register": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Creates an account and signs it in",
				"operationId": "register",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/identity.RegisterInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/seedTaxonomy": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Loads the standard Schedule III heads; running it again adds nothing",
				"operationId": "seedTaxonomy",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/setUserActive": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Enables or disables an account; administrators only",
				"operationId": "setUserActive",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/identity.SetUserActiveInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateAccountingPolicy": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Rewrites one policy of the company",
				"operationId": "updateAccountingPolicy",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/schedule.UpdatePolicyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateCWIPEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateCommonControl": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Replaces the entity settings",
				"operationId": "updateCommonControl",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/company.CommonControlInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateCompany": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Merges the given fields into a company",
				"operationId": "updateCompany",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/company.UpdateCompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateContingentLiability": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateDeferredTaxEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateEmployeeBenefitEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateGrouping": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Renames or moves a grouping",
				"operationId": "updateGrouping",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.GroupingInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateIntangibleEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateInvestmentEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateLicenseUsage": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"license"
				],
				"summary": "Records the current user and company counts",
				"operationId": "updateLicenseUsage",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/license.UsageInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateMajorHead": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Renames or reclassifies a major head",
				"operationId": "updateMajorHead",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.MajorHeadInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateMinorHead": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"taxonomy"
				],
				"summary": "Renames or moves a minor head",
				"operationId": "updateMinorHead",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/taxonomy.MinorHeadInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateNoteNumbers": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Renumbers the finally selected notes",
				"operationId": "updateNoteNumbers",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/note.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateNoteSelection": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Revises one note",
				"operationId": "updateNoteSelection",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/note.UpdateNoteInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateNoteSelections": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Applies user selections by note reference",
				"operationId": "updateNoteSelections",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/note.BulkSelectionInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updatePPEEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updatePayableLedgerEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateRatioAnalysis": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateReceivableLedgerEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateRelatedPartyTransaction": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateShareCapitalEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateTaxEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Merges the given fields into an entry and recomputes its derived totals.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"schedules"
				],
				"summary": "Update a schedule entry",
				"parameters": [
					{
						"description": "id, companyId and the fields to change",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/updateTrialBalanceEntry": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trial-balance"
				],
				"summary": "Replaces one line",
				"operationId": "updateTrialBalanceEntry",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ledger.UpdateTrialBalanceEntryInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/uploadTrialBalance": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trial-balance"
				],
				"summary": "Replaces every line of the company's trial balance",
				"operationId": "uploadTrialBalance",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ledger.UploadTrialBalanceInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/validateFinancialStatementFormat": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"compliance"
				],
				"summary": "Checks the line items of one statement",
				"operationId": "validateFinancialStatementFormat",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/compliance.StatementFormatInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/validateLicense": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"license"
				],
				"summary": "Checks a key, taking the caller's address when none is given",
				"operationId": "validateLicense",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/license.ValidateInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/validateNoteCompliance": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"compliance"
				],
				"summary": "Checks the disclosures behind one note",
				"operationId": "validateNoteCompliance",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/compliance.NoteComplianceInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/validateScheduleIIICompliance": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Also callable with GET and a JSON encoded input query parameter.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"compliance"
				],
				"summary": "Scores the company's statements",
				"operationId": "validateScheduleIIICompliance",
				"parameters": [
					{
						"description": "Procedure input",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/compliance.CompanyInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"company.CommonControlInput": {
			"type": "object",
			"properties": {
				"address": {
					"type": "string",
					"maxLength": 500
				},
				"autoGenerateExplanations": {
					"type": "boolean"
				},
				"cinNumber": {
					"type": "string",
					"maxLength": 21
				},
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"comparisonLayout": {
					"type": "string",
					"maxLength": 50
				},
				"currency": {
					"type": "string"
				},
				"defaultFont": {
					"type": "string",
					"maxLength": 100
				},
				"defaultFontSize": {
					"type": "integer"
				},
				"entityName": {
					"type": "string",
					"maxLength": 200
				},
				"financialYearEnd": {
					"type": "string"
				},
				"financialYearStart": {
					"type": "string"
				},
				"includeComparativeAnalysis": {
					"type": "boolean"
				},
				"includeComplianceIndicators": {
					"type": "boolean"
				},
				"includeSignatureSection": {
					"type": "boolean"
				},
				"includeSummaryStats": {
					"type": "boolean"
				},
				"negativeColor": {
					"type": "string",
					"maxLength": 50
				},
				"numbersFormat": {
					"type": "string",
					"maxLength": 50
				},
				"pageOrientation": {
					"type": "string",
					"enum": [
						"Portrait",
						"Landscape"
					]
				},
				"reportHeaderStyle": {
					"type": "string",
					"maxLength": 50
				},
				"roundingPrecision": {
					"type": "integer"
				},
				"showGrowthRates": {
					"type": "boolean"
				},
				"showNoteNumbers": {
					"type": "boolean"
				},
				"showTrendIndicators": {
					"type": "boolean"
				},
				"showVarianceAnalysis": {
					"type": "boolean"
				},
				"units": {
					"type": "string",
					"enum": [
						"Actuals",
						"Thousands",
						"Lakhs",
						"Millions",
						"Crores"
					]
				},
				"varianceThreshold": {
					"type": "integer"
				},
				"zeroDisplayMode": {
					"type": "string",
					"enum": [
						"Dash",
						"Zero",
						"Blank"
					]
				}
			},
			"required": [
				"companyId",
				"financialYearEnd",
				"financialYearStart"
			]
		},
		"company.CompanyIDInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"companyId"
			]
		},
		"company.CreateCompanyInput": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"displayName": {
					"type": "string",
					"maxLength": 100
				},
				"name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 100
				}
			},
			"required": [
				"name"
			]
		},
		"company.UpdateCompanyInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"displayName": {
					"type": "string",
					"maxLength": 100
				},
				"isActive": {
					"type": "boolean"
				},
				"name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 100
				}
			},
			"required": [
				"companyId"
			]
		},
		"compliance.CompanyInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"companyId"
			]
		},
		"compliance.NoteComplianceInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"noteRef": {
					"type": "string",
					"maxLength": 20
				}
			},
			"required": [
				"companyId",
				"noteRef"
			]
		},
		"compliance.StatementFormatInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"statementType": {
					"type": "string",
					"enum": [
						"balance_sheet",
						"profit_loss",
						"cash_flow"
					]
				}
			},
			"required": [
				"companyId",
				"statementType"
			]
		},
		"dto.ErrorInfo": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"details": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ValidationDetail"
					}
				},
				"message": {
					"type": "string"
				},
				"requestId": {
					"type": "string"
				}
			}
		},
		"dto.Response": {
			"type": "object",
			"properties": {
				"data": {
					"type": "object"
				},
				"error": {
					"$ref": "#/definitions/dto.ErrorInfo"
				},
				"success": {
					"type": "boolean"
				}
			}
		},
		"dto.ValidationDetail": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.companyScope": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"companyId"
			]
		},
		"identity.ChangePasswordInput": {
			"type": "object",
			"properties": {
				"currentPassword": {
					"type": "string"
				},
				"newPassword": {
					"type": "string",
					"minLength": 8,
					"maxLength": 72
				}
			},
			"required": [
				"currentPassword",
				"newPassword"
			]
		},
		"identity.LoginInput": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"identity.RegisterInput": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"maxLength": 200
				},
				"firstName": {
					"type": "string",
					"maxLength": 100
				},
				"lastName": {
					"type": "string",
					"maxLength": 100
				},
				"password": {
					"type": "string",
					"minLength": 8,
					"maxLength": 72
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"identity.SetUserActiveInput": {
			"type": "object",
			"properties": {
				"isActive": {
					"type": "boolean"
				},
				"userId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"userId"
			]
		},
		"identity.TokenInput": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				}
			}
		},
		"ledger.EntryIDInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"id": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"companyId",
				"id"
			]
		},
		"ledger.ImportCSVInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"content": {
					"type": "string"
				},
				"delimiter": {
					"type": "string"
				}
			},
			"required": [
				"companyId",
				"content"
			]
		},
		"ledger.ProcessFileInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"objectName": {
					"type": "string"
				}
			},
			"required": [
				"companyId",
				"objectName"
			]
		},
		"ledger.TrialBalanceEntryInput": {
			"type": "object",
			"properties": {
				"closingBalanceCY": {
					"type": "number"
				},
				"closingBalancePY": {
					"type": "number"
				},
				"creditCY": {
					"type": "number"
				},
				"debitCY": {
					"type": "number"
				},
				"grouping": {
					"type": "string",
					"maxLength": 200
				},
				"ledgerName": {
					"type": "string",
					"minLength": 1,
					"maxLength": 300
				},
				"majorHead": {
					"type": "string",
					"maxLength": 200
				},
				"minorHead": {
					"type": "string",
					"maxLength": 200
				},
				"openingBalanceCY": {
					"type": "number"
				},
				"type": {
					"type": "string"
				}
			},
			"required": [
				"ledgerName",
				"type"
			]
		},
		"ledger.UpdateTrialBalanceEntryInput": {
			"type": "object",
			"properties": {
				"closingBalanceCY": {
					"type": "number"
				},
				"closingBalancePY": {
					"type": "number"
				},
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"creditCY": {
					"type": "number"
				},
				"debitCY": {
					"type": "number"
				},
				"grouping": {
					"type": "string",
					"maxLength": 200
				},
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"ledgerName": {
					"type": "string",
					"minLength": 1,
					"maxLength": 300
				},
				"majorHead": {
					"type": "string",
					"maxLength": 200
				},
				"minorHead": {
					"type": "string",
					"maxLength": 200
				},
				"openingBalanceCY": {
					"type": "number"
				},
				"type": {
					"type": "string"
				}
			},
			"required": [
				"companyId",
				"id",
				"ledgerName",
				"type"
			]
		},
		"ledger.UploadTrialBalanceInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"entries": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ledger.TrialBalanceEntryInput"
					}
				}
			},
			"required": [
				"companyId",
				"entries"
			]
		},
		"ledger.UploadURLInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"fileName": {
					"type": "string",
					"maxLength": 255
				},
				"fileType": {
					"type": "string",
					"maxLength": 100
				}
			},
			"required": [
				"companyId",
				"fileName"
			]
		},
		"license.KeyInput": {
			"type": "object",
			"properties": {
				"licenseKey": {
					"type": "string"
				}
			},
			"required": [
				"licenseKey"
			]
		},
		"license.UsageInput": {
			"type": "object",
			"properties": {
				"activeCompanies": {
					"type": "integer"
				},
				"activeUsers": {
					"type": "integer"
				},
				"licenseKey": {
					"type": "string"
				}
			},
			"required": [
				"licenseKey"
			]
		},
		"license.ValidateInput": {
			"type": "object",
			"properties": {
				"clientIp": {
					"type": "string",
					"maxLength": 64
				},
				"licenseKey": {
					"type": "string"
				}
			},
			"required": [
				"licenseKey"
			]
		},
		"note.BulkSelectionInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"selections": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/note.Selection"
					}
				}
			},
			"required": [
				"companyId",
				"selections"
			]
		},
		"note.CompanyInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"companyId"
			]
		},
		"note.NoteIDInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"id": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"companyId",
				"id"
			]
		},
		"note.NoteInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"linkedMajorHead": {
					"type": "string",
					"maxLength": 200
				},
				"noteRef": {
					"type": "string",
					"maxLength": 20
				}
			},
			"required": [
				"companyId",
				"description",
				"noteRef"
			]
		},
		"note.Selection": {
			"type": "object",
			"properties": {
				"noteRef": {
					"type": "string",
					"maxLength": 20
				},
				"userSelected": {
					"type": "boolean"
				}
			},
			"required": [
				"noteRef"
			]
		},
		"note.UpdateNoteInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"linkedMajorHead": {
					"type": "string",
					"maxLength": 200
				},
				"noteRef": {
					"type": "string",
					"maxLength": 20
				},
				"userSelected": {
					"type": "boolean"
				}
			},
			"required": [
				"companyId",
				"id"
			]
		},
		"report.CompanyInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"companyId"
			]
		},
		"report.ExportInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"format": {
					"type": "string",
					"enum": [
						"pdf",
						"csv"
					]
				},
				"statement": {
					"type": "string",
					"enum": [
						"balance_sheet",
						"profit_loss",
						"cash_flow",
						"ratio_analysis"
					]
				}
			},
			"required": [
				"companyId",
				"statement"
			]
		},
		"report.RatioInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"save": {
					"type": "boolean"
				}
			},
			"required": [
				"companyId"
			]
		},
		"schedule.CompanyInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"companyId"
			]
		},
		"schedule.EntryIDInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"id": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"companyId",
				"id"
			]
		},
		"schedule.ListInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"sortBy": {
					"type": "string",
					"maxLength": 64
				},
				"sortOrder": {
					"type": "string",
					"enum": [
						"asc",
						"desc",
						"ASC",
						"DESC"
					]
				}
			},
			"required": [
				"companyId"
			]
		},
		"schedule.UpdatePolicyInput": {
			"type": "object",
			"properties": {
				"companyId": {
					"type": "string",
					"format": "uuid"
				},
				"content": {
					"type": "string"
				},
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"title": {
					"type": "string",
					"maxLength": 300
				}
			},
			"required": [
				"companyId",
				"content",
				"id",
				"title"
			]
		},
		"taxonomy.GroupingFilter": {
			"type": "object",
			"properties": {
				"minorHeadId": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"taxonomy.GroupingInput": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"minorHeadId": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 200
				}
			},
			"required": [
				"minorHeadId",
				"name"
			]
		},
		"taxonomy.IDInput": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"id"
			]
		},
		"taxonomy.MajorHeadInput": {
			"type": "object",
			"properties": {
				"category": {
					"type": "string"
				},
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 200
				},
				"statementType": {
					"type": "string"
				}
			},
			"required": [
				"category",
				"name",
				"statementType"
			]
		},
		"taxonomy.MinorHeadFilter": {
			"type": "object",
			"properties": {
				"majorHeadId": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"taxonomy.MinorHeadInput": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"majorHeadId": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 200
				}
			},
			"required": [
				"majorHeadId",
				"name"
			]
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Session token. Format: \"Bearer {token}\"",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/trpc",
	Schemes:          []string{},
	Title:            "Financial Statements API",
	Description:      "Schedule III financial statement preparation. Every procedure is a POST to /trpc/<name> with a JSON input; queries also accept GET with an input query parameter.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
