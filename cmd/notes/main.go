package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/notetool"
	"github.com/akeil/notetool/internal/logging"
	"github.com/akeil/notetool/pkg/api"
	"github.com/akeil/notetool/pkg/server"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	url      string
	timeout  time.Duration
	logLevel string
}

func main() {
	// values from the environment take precedence over .env
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		fmt.Printf("Warning: could not read .env file: %v\n", err)
	}

	app := kingpin.New("notes", "Manage notes in a remote note collection")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("url", "URL of the note collection").Short('u').Envar("NOTES_URL").Default(api.DefaultURL).StringVar(&s.url)
	app.Flag("timeout", "Request timeout, zero for none").Envar("NOTES_TIMEOUT").Default("0s").DurationVar(&s.timeout)
	app.Flag("log-level", "Log level").Envar("NOTES_LOG_LEVEL").Default("warning").EnumVar(&s.logLevel,
		"debug", "info", "warning", "error", "none")

	ls := app.Command("ls", "List notes").Default()
	var (
		format = ls.Flag("format", "Output format").Short('f').Default("list").Enum("list", "json", "yaml")
		sortBy = ls.Flag("sort", "Sort order").Short('s').Default("id").Enum("id", "title")
		match  = ls.Arg("match", "Title or text must contain this").String()
	)

	add := app.Command("add", "Create a note")
	var (
		addTitle = add.Flag("title", "Title for the new note").Short('t').String()
		addText  = add.Flag("text", "Text for the new note").Short('x').String()
	)

	edit := app.Command("edit", "Change title and/or text of a note")
	var (
		editID    = edit.Arg("id", "ID of the note").Required().Int64()
		editTitle = edit.Flag("title", "New title").Short('t').String()
		editText  = edit.Flag("text", "New text").Short('x').String()
	)

	rm := app.Command("rm", "Delete a note")
	var (
		rmID  = rm.Arg("id", "ID of the note").Required().Int64()
		rmYes = rm.Flag("yes", "Do not ask for confirmation").Short('y').Bool()
	)

	app.Command("shell", "Interactive session")

	serve := app.Command("serve", "Run an in-memory note collection for development")
	var (
		listen = serve.Flag("listen", "Address to listen on").Short('l').Envar("NOTES_LISTEN").Default(":8080").String()
		path   = serve.Flag("path", "Path of the note collection").Default(server.DefaultPath).String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logging.SetLevel(logging.ParseLevel(s.logLevel))
	defer logging.Sync()

	switch command {
	case "ls":
		err = doLs(s, *format, *sortBy, *match)
	case "add":
		err = doAdd(s, *addTitle, *addText)
	case "edit":
		err = doEdit(s, *editID, *editTitle, *editText)
	case "rm":
		err = doRm(s, *rmID, *rmYes)
	case "shell":
		err = doShell(s)
	case "serve":
		err = doServe(*listen, *path)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		if !reported(err) {
			fmt.Printf("Error: %v\n", err)
		}
		logging.Sync()
		os.Exit(1)
	}
}

// common ---------------------------------------------------------------------

func setupRepo(s settings) notetool.Repository {
	client := api.NewClient(s.url, s.timeout)
	logging.Info("Using note collection at %q", s.url)
	return api.NewRepository(client)
}

func setupController(s settings, c notetool.Confirmer) *notetool.Controller {
	return notetool.NewController(setupRepo(s), consoleNotifier(os.Stdout), c)
}

// reported tells if the user was already notified about the given error.
func reported(err error) bool {
	return notetool.IsValidationError(err) || notetool.IsRequestFailure(err)
}

// consoleNotifier prints notifications as a single line.
func consoleNotifier(w io.Writer) notetool.Notifier {
	return notetool.NotifierFunc(func(n notetool.Notification) {
		switch n.Kind {
		case notetool.Success:
			fmt.Fprintf(w, "%v %v\n", checkmark, n.Message)
		default:
			fmt.Fprintf(w, "%v %v: %v\n", crossmark, n.Title, n.Message)
		}
	})
}
