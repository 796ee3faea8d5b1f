package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethod(t *testing.T) {
	for _, m := range List {
		assert.Equal(t, m, Parse(m.String()))
		assert.NotEmpty(t, m.String())
	}
}

func TestUnknownMethod(t *testing.T) {
	for _, token := range []string{"", "get", "FETCH", "GETT", "PATCH", " GET"} {
		assert.Equal(t, Unknown, Parse(token), token)
	}
}
