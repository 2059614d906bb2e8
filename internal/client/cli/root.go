package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.DisplayName())
	}
	return "(authenticated)"
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the notes CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "notes %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: list, next, prev, search <q>, filter <title>, show <id>, add, edit <id>, delete <id>, bulk, profile, passwd, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "list":
			a.list(ctx)
		case "next":
			a.nextPage(ctx)
		case "prev":
			a.prevPage(ctx)
		case "search":
			a.search(ctx, strings.Join(args, " "))
		case "filter":
			a.filter(ctx, strings.Join(args, " "))
		case "show":
			id, ok := parseID(a.out, args, "show")
			if !ok {
				continue
			}
			a.show(ctx, id)
		case "add":
			a.add(ctx)
		case "edit":
			id, ok := parseID(a.out, args, "edit")
			if !ok {
				continue
			}
			a.edit(ctx, id)
		case "delete":
			id, ok := parseID(a.out, args, "delete")
			if !ok {
				continue
			}
			a.delete(ctx, id)
		case "bulk":
			a.bulk(ctx)
		case "profile":
			a.profile(ctx)
		case "passwd":
			a.changePassword(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func parseID(out io.Writer, args []string, cmd string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintf(out, "Usage: %s <id>\n", cmd)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(out, "Usage: %s <id>\n", cmd)
		return 0, false
	}
	return id, true
}
