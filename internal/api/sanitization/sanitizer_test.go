package sanitization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;Dr. O&#39;Neil&lt;/b&gt;\nline two", EscapeHTML("<b>Dr. O'Neil</b>\nline two"))
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "Jane Doe &amp; Co", SingleLine("  Jane\n\tDoe  & Co "))
	assert.Empty(t, SingleLine(" \n "))
}
