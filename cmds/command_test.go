package cmds

import "testing"

func TestFuncValidation(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 0 },
		func() (error, error) { return nil, nil },
		func([]string) {},
		func(*struct{}) {},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("should panic: %T", fn)
				}
			}()
			Func(fn)
		}()
	}

	Func(func(int, *string, bool, float64) error { return nil })
}
