package widget

import "errors"

var (
	// ErrDataMismatch indicates chart values and legend labels of different lengths.
	ErrDataMismatch = errors.New("widget: values and labels differ in length")

	// ErrNegativeValue indicates a chart value below zero.
	ErrNegativeValue = errors.New("widget: negative chart value")

	// ErrIndexOutOfRange indicates a chooser item index with no item behind it.
	ErrIndexOutOfRange = errors.New("widget: item index out of range")
)
