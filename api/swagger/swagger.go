package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "HMJF CMS API",
        "description": "Content API for the student organization site",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Articles", "description": "Published articles and blog posts"},
        {"name": "Events", "description": "Organization events and agenda"},
        {"name": "Leadership", "description": "Board roster by period"},
        {"name": "Members", "description": "Member roster"},
        {"name": "Timeline", "description": "Organization history milestones"},
        {"name": "Exports", "description": "Roster downloads"}
    ],
    "paths": {
        "/articles": {
            "get": {
                "tags": ["Articles"],
                "summary": "List published articles",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Articles"],
                "summary": "Create an article",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateArticleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Slug already in use", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/articles/featured": {
            "get": {
                "tags": ["Articles"],
                "summary": "List featured articles",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/articles/recent": {
            "get": {
                "tags": ["Articles"],
                "summary": "List most recent articles",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/articles/search": {
            "get": {
                "tags": ["Articles"],
                "summary": "Search articles by title",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/articles/{slug}": {
            "get": {
                "tags": ["Articles"],
                "summary": "Get an article by slug",
                "parameters": [
                    {"name": "slug", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/articles/{id}": {
            "put": {
                "tags": ["Articles"],
                "summary": "Update an article",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateArticleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Articles"],
                "summary": "Delete an article",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create an event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/upcoming": {
            "get": {
                "tags": ["Events"],
                "summary": "List upcoming events",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/featured": {
            "get": {
                "tags": ["Events"],
                "summary": "List featured events",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/recent": {
            "get": {
                "tags": ["Events"],
                "summary": "List recently added events",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/calendar": {
            "get": {
                "tags": ["Events"],
                "summary": "List events within a date range",
                "parameters": [
                    {"name": "start", "in": "query", "type": "string", "required": true},
                    {"name": "end", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid range", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/{slug}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get an event by slug",
                "parameters": [
                    {"name": "slug", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/leadership": {
            "get": {
                "tags": ["Leadership"],
                "summary": "List board members",
                "parameters": [
                    {"name": "division", "in": "query", "type": "string"},
                    {"name": "position", "in": "query", "type": "string"},
                    {"name": "period", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/leadership/current": {
            "get": {
                "tags": ["Leadership"],
                "summary": "List the active-period board",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/leadership/core": {
            "get": {
                "tags": ["Leadership"],
                "summary": "List the executive board",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/members": {
            "get": {
                "tags": ["Members"],
                "summary": "List members",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "batch", "in": "query", "type": "string"},
                    {"name": "division", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Members"],
                "summary": "Register a member",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMemberRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "NIM already registered", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/members/search": {
            "get": {
                "tags": ["Members"],
                "summary": "Search members by name or NIM",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timeline": {
            "get": {
                "tags": ["Timeline"],
                "summary": "List history milestones",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timeline/{id}": {
            "get": {
                "tags": ["Timeline"],
                "summary": "Get a milestone by id",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/members": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export the member roster",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/exports/events": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export the event list",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "CreateArticleRequest": {
            "type": "object",
            "required": ["title", "slug", "excerpt", "content", "category", "coverImage", "authorName", "authorRole"],
            "properties": {
                "title": {"type": "string"},
                "slug": {"type": "string"},
                "excerpt": {"type": "string"},
                "content": {"type": "string"},
                "category": {"type": "string", "enum": ["post", "blog", "opinion", "publication", "info"]},
                "coverImage": {"type": "string"},
                "authorName": {"type": "string"},
                "authorRole": {"type": "string"},
                "authorAvatar": {"type": "string"},
                "publishedAt": {"type": "string", "format": "date-time"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "featured": {"type": "boolean"}
            }
        },
        "CreateEventRequest": {
            "type": "object",
            "required": ["title", "slug", "description", "category", "status", "startDate", "endDate", "locationName", "coverImage"],
            "properties": {
                "title": {"type": "string"},
                "slug": {"type": "string"},
                "description": {"type": "string"},
                "content": {"type": "string"},
                "category": {"type": "string", "enum": ["seminar", "workshop", "community-service", "competition", "training", "other"]},
                "status": {"type": "string", "enum": ["upcoming", "ongoing", "completed", "cancelled"]},
                "startDate": {"type": "string", "format": "date-time"},
                "endDate": {"type": "string", "format": "date-time"},
                "locationName": {"type": "string"},
                "locationAddress": {"type": "string"},
                "coverImage": {"type": "string"},
                "featured": {"type": "boolean"}
            }
        },
        "CreateMemberRequest": {
            "type": "object",
            "required": ["name", "nim", "batch", "status"],
            "properties": {
                "name": {"type": "string"},
                "nim": {"type": "string"},
                "batch": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "inactive", "alumni"]},
                "division": {"type": "string"},
                "position": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
