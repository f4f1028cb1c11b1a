package gforms

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestIsNotFound(t *testing.T) {
	notFound := &googleapi.Error{Code: 404, Message: "Requested entity was not found."}

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("get form %q: %w", "abc", notFound)))

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("connection refused")))
	assert.False(t, IsNotFound(&googleapi.Error{Code: 403}))
}
