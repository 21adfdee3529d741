package configs

import (
	"errors"
	"fmt"
	"iter"
)

// First decodes the value at path from the most specific file defining it.
// Missing paths give the zero value; malformed config panics.
func First[T any](loader Loader, path string) (value T) {
	err := loader.AssignFirst(path, &value)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return
}

// All decodes the value at path from every file defining it, most specific first.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Configurable values know the config path they are read from.
type Configurable interface {
	ConfigExpr() string
}

// Lookup reads the value at the path named by T's ConfigExpr, zero if absent.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
