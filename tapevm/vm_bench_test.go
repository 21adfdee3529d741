package tapevm

import (
	"io"
	"strings"
	"testing"
)

func BenchmarkVM_Loop(b *testing.B) {
	// 255 * 255 inner iterations
	program := strings.Repeat("+", 255) + "[>" + strings.Repeat("+", 255) + "[-]<-]"
	tape := NewTape()
	for b.Loop() {
		vm := NewVM(program, tape)
		vm.Output = io.Discard
		if err := vm.Execute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolveBrackets(b *testing.B) {
	program := strings.Repeat("[+[-]>]", 1000)
	for b.Loop() {
		if _, err := ResolveBrackets(program); err != nil {
			b.Fatal(err)
		}
	}
}
