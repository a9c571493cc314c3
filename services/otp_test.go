package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialEntryFiresOnce(t *testing.T) {
	var codes []string
	input := NewOTPInput(4, func(code string) { codes = append(codes, code) })

	for _, ch := range "1234" {
		input.Type(ch)
	}

	require.Len(t, codes, 1, "completion fires exactly once")
	assert.Equal(t, "1234", codes[0])
	assert.Equal(t, "1234", input.Value())
}

func TestNonDigitIgnored(t *testing.T) {
	fired := false
	input := NewOTPInput(4, func(string) { fired = true })

	input.Type('a')
	input.Type('!')
	assert.Equal(t, "", input.Value())
	assert.Equal(t, 0, input.Focus())
	assert.False(t, fired)
}

func TestFocusAdvancesOnType(t *testing.T) {
	input := NewOTPInput(4, nil)
	input.Type('5')
	assert.Equal(t, 1, input.Focus())
	input.Type('6')
	assert.Equal(t, 2, input.Focus())
}

func TestBackspaceOnEmptyMovesBack(t *testing.T) {
	input := NewOTPInput(4, nil)
	input.Type('1')
	// Фокус на пустой второй ячейке
	input.Backspace()
	assert.Equal(t, 0, input.Focus())
	assert.Equal(t, "1", input.Value(), "backspace on empty field does not delete")
}

func TestBackspaceOnFilledClearsInPlace(t *testing.T) {
	input := NewOTPInput(4, nil)
	input.Type('1')
	input.ArrowLeft()
	require.Equal(t, 0, input.Focus())

	input.Backspace()
	assert.Equal(t, 0, input.Focus(), "clearing does not move focus")
	assert.Equal(t, "", input.Value())
}

func TestPasteFullCodeCompletes(t *testing.T) {
	var codes []string
	input := NewOTPInput(4, func(code string) { codes = append(codes, code) })

	input.Paste("5678")
	require.Len(t, codes, 1)
	assert.Equal(t, "5678", codes[0])
	assert.Equal(t, 3, input.Focus(), "focus on the last filled field")
}

func TestPastePartialDoesNotComplete(t *testing.T) {
	var codes []string
	input := NewOTPInput(4, func(code string) { codes = append(codes, code) })

	input.Paste("56")
	assert.Empty(t, codes)
	assert.Equal(t, []string{"5", "6", "", ""}, input.Digits())
	assert.Equal(t, 1, input.Focus())
}

func TestPasteRejectsOversizedOrNonDigit(t *testing.T) {
	input := NewOTPInput(4, nil)
	input.Paste("123456")
	assert.Equal(t, "", input.Value())
	input.Paste("12a4")
	assert.Equal(t, "", input.Value())
}

func TestOverwriteAfterCompletionDoesNotRefire(t *testing.T) {
	var codes []string
	input := NewOTPInput(4, func(code string) { codes = append(codes, code) })

	input.Paste("1234")
	require.Len(t, codes, 1)

	// Перезапись последней цифры без очистки - повторного вызова нет
	input.Type('9')
	assert.Len(t, codes, 1)
	assert.Equal(t, "1239", input.Value())
}

func TestClearAndRefillRefires(t *testing.T) {
	var codes []string
	input := NewOTPInput(4, func(code string) { codes = append(codes, code) })

	input.Paste("1234")
	require.Len(t, codes, 1)

	input.Backspace()
	require.Equal(t, "123", input.Value())
	input.Type('7')

	require.Len(t, codes, 2, "re-entering the completed state fires again")
	assert.Equal(t, "1237", codes[1])
}

func TestArrowNavigation(t *testing.T) {
	input := NewOTPInput(4, nil)
	input.ArrowRight()
	input.ArrowRight()
	assert.Equal(t, 2, input.Focus())
	input.ArrowLeft()
	assert.Equal(t, 1, input.Focus())
	// За границы не выходит
	input.ArrowLeft()
	input.ArrowLeft()
	assert.Equal(t, 0, input.Focus())
}
