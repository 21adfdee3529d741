package tapevm

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name     string      `yaml:"name"`
	Program  string      `yaml:"program"`
	Input    string      `yaml:"input"`
	Output   *string     `yaml:"output"`
	Cells    map[int]int `yaml:"cells"`
	Error    string      `yaml:"error"`
	Position int         `yaml:"position"`
}

func loadScenarios(t *testing.T) []scenario {
	content, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var ret []scenario
	if err := yaml.Unmarshal(content, &ret); err != nil {
		t.Fatal(err)
	}
	if len(ret) == 0 {
		t.Fatal("no scenarios")
	}
	return ret
}

func expectedError(s scenario) error {
	switch s.Error {
	case "":
		return nil
	case "cell-overflow":
		return CellOverflow{Position: s.Position}
	case "cell-underflow":
		return CellUnderflow{Position: s.Position}
	case "pointer-out-of-left-bound":
		return PointerOutOfLeftBound{}
	case "pointer-out-of-right-bound":
		return PointerOutOfRightBound{}
	case "unclosed-open-marker":
		return UnclosedOpenMarker{Position: s.Position}
	case "stray-close-marker":
		return StrayCloseMarker{Position: s.Position}
	}
	return nil
}

func TestScenarios(t *testing.T) {
	for _, s := range loadScenarios(t) {
		t.Run(s.Name, func(t *testing.T) {
			tape := NewTape()
			out := new(bytes.Buffer)
			vm := NewVM(s.Program, tape)
			vm.Input = strings.NewReader(s.Input)
			vm.Output = out

			err := vm.Execute()
			switch s.Error {
			case "":
				if err != nil {
					t.Fatal(err)
				}
			case "io":
				var ioErr IOError
				if !errors.As(err, &ioErr) {
					t.Fatalf("got %v", err)
				}
			default:
				if want := expectedError(s); !errors.Is(err, want) {
					t.Fatalf("got %v, want %v", err, want)
				}
			}

			for pos, value := range s.Cells {
				if int(tape[pos]) != value {
					t.Fatalf("cell %d: got %d, want %d", pos, tape[pos], value)
				}
			}

			if s.Output != nil && out.String() != *s.Output {
				t.Fatalf("got %q", out.String())
			}
		})
	}
}
