package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.FprintUsage(os.Stdout)
}

func (p *Executor) FprintUsage(w io.Writer) {
	fprintCommands(w, p.commands, 0)
}

func fprintCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases are registered under their own names, group them by command
	names := make(map[*Command][]string)
	var order []*Command
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil {
			continue
		}
		if _, ok := names[command]; !ok {
			order = append(order, command)
		}
		names[command] = append(names[command], name)
	}

	indent := strings.Repeat("  ", depth)
	for _, command := range order {
		line := indent + strings.Join(names[command], ", ")
		if command.Func.IsValid() {
			fnType := command.Func.Type()
			for i := 0; i < fnType.NumIn(); i++ {
				t := fnType.In(i)
				if t.Kind() == reflect.Pointer {
					line += fmt.Sprintf(" [%s]", t.Elem().Kind())
				} else {
					line += fmt.Sprintf(" <%s>", t.Kind())
				}
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			fprintCommands(w, command.Subs, depth+1)
		}
	}
}
