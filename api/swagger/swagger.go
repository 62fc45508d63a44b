// Package swagger registers the generated API documentation with swag, for
// gin-swagger to serve at /docs/*any. swag init is a build step this
// module does not run, so the document is hand-authored to match the
// handlers in internal/api.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "course-sched API",
        "description": "Weekly university course timetabling over a CP-SAT constraint model.",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/sched": {
            "post": {
                "summary": "Compute weekly course schedules",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "malformed request, schema violation, or id conflict"}
                }
            }
        },
        "/version": {
            "get": {
                "summary": "Service version",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
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
