package bintext

import (
	"errors"
	"fmt"
)

var (
	ErrInvArg     = errors.New("invalid argument")
	ErrDepth      = errors.New("depth must be a multiple of 8")
	ErrChunk      = errors.New("chunk exceeds word size")
	ErrWords      = errors.New("invalid word count (minimum 0)")
	ErrFormat     = fmt.Errorf("invalid output format (%s)", FormatString)
	ErrEndian     = fmt.Errorf("invalid endian (%s)", EndianString)
	ErrFill       = fmt.Errorf("invalid fill (%s)", FillString)
	ErrLineEnding = fmt.Errorf("invalid line ending (%s)", LineEndingString)
	ErrHash       = fmt.Errorf("invalid hash (%s)", HashString)
)
