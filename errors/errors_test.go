package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	e := New(CodeFrameNotFound, "frame with name [arm] not found")
	assert.Equal(t, "[frame-not-found] frame with name [arm] not found", e.Error())

	var nilErr *Error
	assert.Equal(t, "error <nil>", nilErr.Error())
}

func TestListError(t *testing.T) {
	assert.Equal(t, "no errors", List{}.Error())

	one := List{New(CodeDuplicateName, "duplicate")}
	assert.Equal(t, "[duplicate-name] duplicate", one.Error())

	many := List{
		New(CodeDuplicateName, "duplicate"),
		New(CodeFrameNotFound, "missing"),
		New(CodeFrameGraphCycle, "cycle"),
	}
	assert.Equal(t, "[duplicate-name] duplicate (and 2 more)", many.Error())
}

func TestListCodes(t *testing.T) {
	list := List{
		New(CodeAttributeMissing, "no name"),
		New(CodeLinkInertiaInvalid, "bad inertia"),
	}
	assert.Equal(t, []Code{CodeAttributeMissing, CodeLinkInertiaInvalid}, list.Codes())
}

func TestAsList(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		_, ok := AsList(nil)
		assert.False(t, ok)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := AsList(fmt.Errorf("plain"))
		assert.False(t, ok)
	})

	t.Run("list", func(t *testing.T) {
		list, ok := AsList(List{New(CodeFileRead, "boom")})
		require.True(t, ok)
		require.Len(t, list, 1)
		assert.Equal(t, CodeFileRead, list[0].Code)
	})

	t.Run("single error pointer", func(t *testing.T) {
		err := &Error{Code: CodeNoPathBetweenFrames, Message: "disconnected"}
		list, ok := AsList(err)
		require.True(t, ok)
		require.Len(t, list, 1)
		assert.Equal(t, CodeNoPathBetweenFrames, list[0].Code)
	})

	t.Run("wrapped list", func(t *testing.T) {
		wrapped := fmt.Errorf("load failed: %w", List{New(CodeStringRead, "bad text")})
		list, ok := AsList(wrapped)
		require.True(t, ok)
		assert.Equal(t, CodeStringRead, list[0].Code)
	})
}
