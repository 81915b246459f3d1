package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareLine_StatementPassesThroughUnchanged(t *testing.T) {
	assert.Equal(t, `var a = 1;`, prepareLine(`var a = 1;`))
}

func TestPrepareLine_BareExpressionIsWrappedInPrint(t *testing.T) {
	assert.Equal(t, `print (1 + 2);`, prepareLine(`1 + 2`))
}

func TestPrepareLine_TrailingCommentIsStillAnExpression(t *testing.T) {
	assert.Equal(t, `print (1 + 2);`, prepareLine(`1 + 2 // three`))
}

func TestPrepareLine_EmptyLineIsLeftAlone(t *testing.T) {
	assert.Equal(t, ``, prepareLine(``))
}
