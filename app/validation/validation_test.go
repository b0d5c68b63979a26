package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSignupInput(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		fields := Check(SignupInput{Email: "a@b.com", Password: "abcde", Name: "A"})
		assert.Empty(t, fields)
	})

	t.Run("collects every violation", func(t *testing.T) {
		fields := Check(SignupInput{Email: "not-an-email", Password: "ab", Name: ""})
		assert.Len(t, fields, 3)

		messages := make(map[string]string)
		for _, fe := range fields {
			messages[fe.Field] = fe.Message
		}
		assert.Equal(t, "Invalid E-Mail", messages["email"])
		assert.Equal(t, "Password too short", messages["password"])
		assert.Equal(t, "Name is required", messages["name"])
	})

	t.Run("invalid email and short password together", func(t *testing.T) {
		fields := Check(SignupInput{Email: "bad", Password: "abc", Name: "A"})
		assert.Len(t, fields, 2)
	})
}

func TestCheckPostInput(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		fields := Check(PostInput{Title: "Hello there", Content: "Some content"})
		assert.Empty(t, fields)
	})

	t.Run("short title and content", func(t *testing.T) {
		fields := Check(PostInput{Title: "Hi", Content: "Ok"})
		assert.Len(t, fields, 2)
		assert.Equal(t, "title", fields[0].Field)
		assert.Equal(t, "Invalid Title", fields[0].Message)
		assert.Equal(t, "content", fields[1].Field)
		assert.Equal(t, "Invalid Content", fields[1].Message)
	})

	t.Run("image reference is never validated here", func(t *testing.T) {
		fields := Check(PostInput{Title: "Hello there", ImageURL: "", Content: "Some content"})
		assert.Empty(t, fields)
	})
}
