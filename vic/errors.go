package vic

import (
	"errors"
	"fmt"
)

var errBitmapLength = errors.New("not 8 bytes")

// OutOfRangeError reports a crop bound that falls outside the source
// image. Field names the offending bound: "top", "height", "left" or
// "width".
type OutOfRangeError struct {
	Field string
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vic: %q out of range: %d", e.Field, e.Value)
}

// DecodeError reports a character bitmap that is not a valid
// 8-byte hexadecimal string. Char is the character number.
type DecodeError struct {
	Char int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("vic: character %d: invalid bitmap: %v", e.Char, e.Err)
}

// InvalidSectionError reports a section letter outside {V, C, B}.
type InvalidSectionError struct {
	Char byte
}

func (e *InvalidSectionError) Error() string {
	return fmt.Sprintf("vic: invalid section %q", string(e.Char))
}

// UnknownStrategyError reports an unrecognized bitmap order name.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("vic: unknown bitmap order %q", e.Name)
}

// TooManyCharactersError reports a character set too large to index
// with one-byte video matrix entries.
type TooManyCharactersError struct {
	NumChars int
}

func (e *TooManyCharactersError) Error() string {
	return fmt.Sprintf("vic: %d characters, at most %d can be used with a video section", e.NumChars, MaxChars)
}
