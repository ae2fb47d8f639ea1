package errors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// Responder sends Problem Details responses.
type Responder struct {
	// BaseURI is prepended to relative problem type URIs.
	BaseURI string
}

// NewResponder creates a problem responder with an optional base URI.
func NewResponder(baseURI string) *Responder {
	return &Responder{BaseURI: baseURI}
}

// Respond sends a ProblemDetail response with the problem+json content type.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if r.BaseURI != "" && len(problem.Type) > 0 && problem.Type[0] == '/' {
		problem.Type = r.BaseURI + problem.Type
	}
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// RespondError converts an error to a ProblemDetail and responds. An error
// that is not already a ProblemDetail becomes a generic 500; its message is
// deliberately not echoed to the client.
func (r *Responder) RespondError(c *gin.Context, err error) {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		r.Respond(c, problem)
		return
	}
	r.Respond(c, ErrInternal)
}

// BadRequest sends a 400 problem response.
func (r *Responder) BadRequest(c *gin.Context, detail string) {
	r.Respond(c, ErrBadRequest.WithDetail(detail))
}

// NotFound sends a 404 problem response.
func (r *Responder) NotFound(c *gin.Context, resourceType string, identifier any) {
	r.Respond(c, NewNotFoundProblem(resourceType, identifier))
}

// ErrorMapper maps domain or application errors to a ProblemDetail.
type ErrorMapper func(err error) (ProblemDetail, bool)

// ChainedResponder runs errors through a mapper chain before the default
// handling; each bounded context contributes its own mapper.
type ChainedResponder struct {
	*Responder
	mappers []ErrorMapper
}

// NewChainedResponder creates a responder with custom error mappers.
func NewChainedResponder(baseURI string, mappers ...ErrorMapper) *ChainedResponder {
	return &ChainedResponder{
		Responder: NewResponder(baseURI),
		mappers:   mappers,
	}
}

// AddMapper appends an error mapper to the chain.
func (r *ChainedResponder) AddMapper(mapper ErrorMapper) {
	r.mappers = append(r.mappers, mapper)
}

// RespondError tries each mapper in order before falling back.
func (r *ChainedResponder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			r.Respond(c, problem)
			return
		}
	}
	r.Responder.RespondError(c, err)
}
