package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/dayflow-go-api/internal/middleware"
	"github.com/noah-isme/dayflow-go-api/internal/query"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
	"github.com/noah-isme/dayflow-go-api/pkg/response"
)

// actorFrom extracts the authenticated actor or writes a 401 and
// reports false.
func actorFrom(c *gin.Context) (query.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
	}
	return actor, ok
}

// dateQuery parses an optional YYYY-MM-DD query parameter. A malformed
// value is a validation error; absence returns nil.
func dateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+name+", expected YYYY-MM-DD")
	}
	return &day, nil
}
