package todoctl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/view"
)

// Options carry what the root flags resolved to.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no subcommand it opens the interactive list.
func Run(ctx context.Context, api view.API, args []string, opt Options) int {
	if len(args) == 0 {
		if err := runInteractive(ctx, view.New(api)); err != nil {
			fail(opt.Stderr, err.Error())
			return 1
		}
		return 0
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ls", "list":
		return doList(ctx, view.New(api), opt)

	case "add":
		if len(a) == 0 {
			fail(opt.Stderr, "usage: todoctl add <task...>")
			return 2
		}
		return doAdd(ctx, view.New(api), strings.Join(a, " "), opt)

	case "rm":
		if len(a) != 1 {
			fail(opt.Stderr, "usage: todoctl rm <id>")
			return 2
		}
		return doRemove(ctx, view.New(api), a[0], opt)
	}

	fail(opt.Stderr, "unknown subcommand: "+cmd)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todoctl - terminal client for the todo API

Usage:
  todoctl [-server URL] [-config FILE] [subcommand] [args]

Subcommands:
  (none)           Open the interactive list
  ls               Print all todos, newest first
  add <task...>    Add a todo (task can be multiple words)
  rm <id>          Delete a todo by id
`)
}

func doList(ctx context.Context, v *view.View, opt Options) int {
	v.Load(ctx)
	if msg := v.Err(); msg != "" {
		fail(opt.Stderr, msg)
		return 1
	}

	todos := v.Todos()
	if len(todos) == 0 {
		fmt.Fprintln(opt.Stdout, mutedStyle.Render("no todos"))
		return 0
	}
	for _, t := range todos {
		fmt.Fprintf(opt.Stdout, "%s  %s  %s\n",
			accentStyle.Render(t.ID),
			mutedStyle.Render(t.CreatedAt.Format("2006-01-02 15:04")),
			t.Task,
		)
	}
	return 0
}

func doAdd(ctx context.Context, v *view.View, task string, opt Options) int {
	if !v.Submit(ctx, task) {
		msg := v.Err()
		if msg == "" {
			msg = "task cannot be empty"
		}
		fail(opt.Stderr, msg)
		return 1
	}
	ok(opt.Stdout, "added "+v.Todos()[0].ID)
	return 0
}

func doRemove(ctx context.Context, v *view.View, id string, opt Options) int {
	if !v.Delete(ctx, id) {
		fail(opt.Stderr, v.Err())
		return 1
	}
	ok(opt.Stdout, "deleted "+id)
	return 0
}
