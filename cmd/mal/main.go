// Command mal is the REPL/file-runner front end for the interpreter in
// github.com/reniowood/mal: it builds the root environment, then either
// runs a file or drops into an interactive prompt.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/reniowood/mal"
)

const prompt = "user> "

func main() {
	opts := mal.NewOptions()
	if len(os.Args) > 2 {
		opts.Argv = os.Args[2:]
	}

	env, err := mal.NewRootEnv(opts)
	if err != nil {
		log.Fatalf("mal: failed to build root environment: %s", err)
	}

	if len(os.Args) > 1 {
		os.Exit(runFile(env, os.Args[1]))
	}
	repl(env)
}

// runFile evaluates (load-file "path") and returns the process exit
// status: 0 on success, 1 if evaluation raised an uncaught error.
func runFile(env *mal.Env, path string) int {
	form := fmt.Sprintf("(load-file %q)", path)
	if _, err := mal.Rep(form, env); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// repl prints the banner, then reads one line at a time from stdin
// until EOF, evaluating and printing each one. It intentionally does
// not reach for a third-party line-editing library, driving its
// interactive shell with a plain bufio.Reader instead.
func repl(env *mal.Env) {
	hostLang, err := env.Get("*host-language*")
	if err != nil {
		hostLang = mal.Str{Value: "go"}
	}
	fmt.Printf("Mal [%s]\n", mal.PrStr(hostLang, false))

	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(prompt)
		line, err := in.ReadString('\n')
		if line != "" {
			out, evalErr := mal.Rep(line, env)
			switch {
			case evalErr != nil && mal.IsReadNothing(evalErr):
				// silent no-op: empty/comment-only input
			case evalErr != nil:
				fmt.Fprintf(os.Stderr, "Error: %s\n", evalErr)
			default:
				fmt.Println(out)
			}
		}
		if err != nil {
			return
		}
	}
}
