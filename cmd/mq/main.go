// Command mq is a minimal interactive host for the Moonquakes embedding
// boundary. It owns one interpreter state and maps shell commands onto
// the boundary operations, which makes it a convenient way to poke at
// stack and collector behavior from a terminal.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/keix/moonquakes"
)

const historyFile = ".mq_history"

const usage = `commands:
  push nil|true|false|<number>|<string>   push a value
  settop <n>                              set the stack top (negative is relative)
  pop <n>                                 remove the top n entries
  top                                     print the occupied slot count
  stack                                   print every slot, bottom to top
  type <idx>                              print the kind of the slot at idx
  gc                                      run a full collection cycle
  stats                                   print collector counters
  version                                 print the runtime version
  reset                                   close the state and start a fresh one
  help                                    print this text
  quit                                    exit
`

func main() {
	fmt.Println(moonquakes.Version())

	L := moonquakes.New()
	if L == nil {
		fmt.Fprintln(os.Stderr, "mq: cannot create interpreter state")
		os.Exit(1)
	}
	defer L.Close()

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt("mq> ")
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		cmd, arg := line, ""
		if i := strings.IndexByte(line, ' '); i >= 0 {
			cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
		}

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			fmt.Print(usage)
		case "version":
			fmt.Println(moonquakes.Version())
		case "top":
			fmt.Println(L.Top())
		case "stack":
			dumpStack(L)
		case "type":
			idx, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "type wants an index")
				continue
			}
			fmt.Println(L.Type(idx))
		case "settop":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "settop wants an integer")
				continue
			}
			report(L.SetTop(n))
		case "pop":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "pop wants an integer")
				continue
			}
			report(L.Pop(n))
		case "push":
			push(L, arg)
		case "gc":
			L.Collect()
			fmt.Println("collected")
		case "stats":
			st := L.Stats()
			fmt.Printf("cycles %d, swept %d, live %d\n", st.Cycles, st.Swept, st.Live)
		case "reset":
			L.Close()
			L = moonquakes.New()
			if L == nil {
				fmt.Fprintln(os.Stderr, "mq: cannot create interpreter state")
				os.Exit(1)
			}
			fmt.Println("fresh state")
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q; try help\n", cmd)
		}
	}
}

func push(L *moonquakes.State, arg string) {
	switch arg {
	case "":
		fmt.Fprintln(os.Stderr, "push wants a value")
		return
	case "nil":
		L.PushNil()
	case "true", "false":
		L.PushBoolean(arg == "true")
	default:
		if n, err := strconv.ParseFloat(arg, 64); err == nil {
			L.PushNumber(n)
		} else {
			report(L.PushString(strings.Trim(arg, `"`)))
		}
	}
}

func dumpStack(L *moonquakes.State) {
	top := L.Top()
	if top == 0 {
		fmt.Println("(empty)")
		return
	}
	for i := top; i >= 1; i-- {
		fmt.Printf("%3d / %3d  %s", i, i-top-1, L.Type(i))
		if n, ok := L.ToNumber(i); ok {
			fmt.Printf("  %g", n)
		} else if s, ok := L.ToString(i); ok {
			fmt.Printf("  %q", s)
		} else if L.Type(i) == moonquakes.KindBoolean {
			fmt.Printf("  %v", L.ToBoolean(i))
		}
		fmt.Println()
	}
}

func report(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", moonquakes.StatusOf(err), err)
	}
}
