package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Rate My Teacher",
        "description": "Teacher ratings for an internal school community. Form posts answer 303 with a message or error query parameter.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {
            "name": "Authentication"
        },
        {
            "name": "Teachers"
        },
        {
            "name": "Reviews"
        },
        {
            "name": "Support"
        },
        {
            "name": "Admin",
            "description": "Requires the admin session cookie"
        },
        {
            "name": "Ops"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Liveness",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Readiness, pings Postgres and Redis",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "A dependency is down"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/login": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Sign in",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to redirectTo or /teachers; /login?error= on failure"
                    }
                },
                "parameters": [
                    {
                        "name": "email",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "password",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "redirectTo",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/signup": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Register",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to redirectTo or /teachers; /login?mode=signup&error= on failure"
                    }
                },
                "parameters": [
                    {
                        "name": "email",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "password",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "confirmPassword",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "redirectTo",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/logout": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Sign out",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /login"
                    }
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Browse teachers",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "subject",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ]
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Teacher profile with reviews",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/teachers/{id}/rate": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Teacher summary for the rating form",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/reviews": {
            "post": {
                "tags": [
                    "Reviews"
                ],
                "summary": "Submit a rating",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /teachers/{id}#ratings"
                    }
                },
                "parameters": [
                    {
                        "name": "teacherId",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "quality",
                        "in": "formData",
                        "type": "integer",
                        "required": true,
                        "description": "1-5"
                    },
                    {
                        "name": "difficulty",
                        "in": "formData",
                        "type": "integer",
                        "required": true,
                        "description": "1-5"
                    },
                    {
                        "name": "wouldTakeAgain",
                        "in": "formData",
                        "type": "string",
                        "required": false,
                        "description": "yes or no"
                    },
                    {
                        "name": "course",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "grade",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "isOnline",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "tags",
                        "in": "formData",
                        "type": "string",
                        "required": false,
                        "description": "Comma separated"
                    },
                    {
                        "name": "comment",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/reviews/vote": {
            "post": {
                "tags": [
                    "Reviews"
                ],
                "summary": "Vote on a review",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /teachers/{id}#ratings"
                    }
                },
                "parameters": [
                    {
                        "name": "teacherId",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "reviewId",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "op",
                        "in": "formData",
                        "type": "string",
                        "required": true,
                        "description": "up, down or remove"
                    }
                ]
            }
        },
        "/me/ratings": {
            "get": {
                "tags": [
                    "Reviews"
                ],
                "summary": "My ratings",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/me/ratings/{id}/edit": {
            "get": {
                "tags": [
                    "Reviews"
                ],
                "summary": "One of my ratings",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/me/ratings/update": {
            "post": {
                "tags": [
                    "Reviews"
                ],
                "summary": "Edit one of my ratings",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /teachers/{id}#ratings"
                    }
                },
                "parameters": [
                    {
                        "name": "reviewId",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "quality",
                        "in": "formData",
                        "type": "integer",
                        "required": true,
                        "description": "1-5"
                    },
                    {
                        "name": "difficulty",
                        "in": "formData",
                        "type": "integer",
                        "required": true,
                        "description": "1-5"
                    },
                    {
                        "name": "wouldTakeAgain",
                        "in": "formData",
                        "type": "string",
                        "required": false,
                        "description": "yes or no"
                    },
                    {
                        "name": "course",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "grade",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "isOnline",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "tags",
                        "in": "formData",
                        "type": "string",
                        "required": false,
                        "description": "Comma separated"
                    },
                    {
                        "name": "comment",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/me/ratings/delete": {
            "post": {
                "tags": [
                    "Reviews"
                ],
                "summary": "Delete one of my ratings",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /teachers/{id}#ratings"
                    }
                },
                "parameters": [
                    {
                        "name": "reviewId",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "teacherId",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/contact": {
            "get": {
                "tags": [
                    "Support"
                ],
                "summary": "Contact categories",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Support"
                ],
                "summary": "Submit a support ticket",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /contact?message= or /contact?error="
                    }
                },
                "parameters": [
                    {
                        "name": "category",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "category_other",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "title",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "description",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/admin/login": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Admin login",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to next or /admin/teachers"
                    }
                },
                "parameters": [
                    {
                        "name": "username",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "password",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "next",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/admin/logout": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Admin logout",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/login"
                    }
                }
            }
        },
        "/admin/teachers": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Teacher roster",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Add a teacher",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/teachers"
                    }
                },
                "parameters": [
                    {
                        "name": "full_name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "subjects",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/admin/teachers/{id}/edit": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Teacher for editing",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/admin/teachers/update": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Edit a teacher",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/teachers"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "full_name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "subjects",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/admin/teachers/delete": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Delete a teacher",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/teachers"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/admin/reviews": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Latest reviews",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "teacher_id",
                        "in": "query",
                        "type": "string"
                    }
                ]
            }
        },
        "/admin/reviews/{id}/edit": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Review for moderation",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/admin/reviews/update": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Moderate a review",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/reviews"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "teacher_id",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "quality",
                        "in": "formData",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "difficulty",
                        "in": "formData",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "would_take_again",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "course",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "grade",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "is_online",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "tags",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "comment",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/admin/reviews/delete": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Delete a review",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/reviews"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "teacher_id",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/admin/tickets": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Support ticket queue",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    }
                ]
            }
        },
        "/admin/tickets/export": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Download the ticket queue",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Attachment"
                    }
                }
            }
        },
        "/admin/tickets/{id}": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Ticket detail",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/admin/tickets/update": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Change a ticket's status",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /admin/tickets/{id}"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "status",
                        "in": "formData",
                        "type": "string",
                        "enum": [
                            "open",
                            "in_progress",
                            "resolved",
                            "closed"
                        ],
                        "required": true
                    },
                    {
                        "name": "admin_note",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "has_prev": {
                    "type": "boolean"
                },
                "has_next": {
                    "type": "boolean"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
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
