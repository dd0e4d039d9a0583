package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/siddhityagi17/event-manager/pkg/client"
	"github.com/siddhityagi17/event-manager/pkg/view"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "eventctl",
		Usage: "Manage events from the terminal.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Value:   "http://localhost:8080",
				Usage:   "Base URL of the event manager API.",
				EnvVars: []string{"EVENT_API_BASE"},
			},
		},
		Commands: []*cli.Command{
			listCommand(),
			addCommand(),
			updateCommand(),
			rmCommand(),
			rsvpCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func apiClient(c *cli.Context) *client.Client {
	return client.New(c.String("api"))
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List events, optionally filtered and searched.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "filter", Value: "all", Usage: "all, upcoming or past."},
			&cli.StringFlag{Name: "search", Usage: "Case-insensitive title search."},
		},
		Action: func(c *cli.Context) error {
			filter, ok := view.ParseFilter(c.String("filter"))
			if !ok {
				return fmt.Errorf("unknown filter %q (want all, upcoming or past)", c.String("filter"))
			}

			events, err := apiClient(c).GetEvents(c.Context)
			if err != nil {
				return err
			}

			visible := view.Apply(events, filter, c.String("search"), time.Now())
			if len(visible) == 0 {
				fmt.Println("No events found for this filter.")
				return nil
			}
			for _, e := range visible {
				line := fmt.Sprintf("%s  %s  %s", e.ID, e.Date, e.Title)
				if e.Location != "" {
					line += "  @ " + e.Location
				}
				if len(e.Attendees) > 0 {
					line += fmt.Sprintf("  (%d attending)", len(e.Attendees))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Create an event.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Required: true},
			&cli.StringFlag{Name: "date", Required: true, Usage: "YYYY-MM-DD or RFC 3339."},
			&cli.StringFlag{Name: "description"},
			&cli.StringFlag{Name: "location"},
		},
		Action: func(c *cli.Context) error {
			params := client.CreateEventParams{
				Title: c.String("title"),
				Date:  c.String("date"),
			}
			if v := c.String("description"); v != "" {
				params.Description = &v
			}
			if v := c.String("location"); v != "" {
				params.Location = &v
			}

			created, err := apiClient(c).CreateEvent(c.Context, params)
			if err != nil {
				return err
			}
			fmt.Printf("Created event %s\n", created.ID)
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update an event's title and/or date.",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title"},
			&cli.StringFlag{Name: "date"},
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return fmt.Errorf("missing event id")
			}

			params := client.UpdateEventParams{}
			if c.IsSet("title") {
				v := c.String("title")
				params.Title = &v
			}
			if c.IsSet("date") {
				v := c.String("date")
				params.Date = &v
			}

			updated, err := apiClient(c).UpdateEvent(c.Context, id, params)
			if err != nil {
				return err
			}
			fmt.Printf("Updated event %s: %s on %s\n", updated.ID, updated.Title, updated.Date)
			return nil
		},
	}
}

func rmCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete an event.",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return fmt.Errorf("missing event id")
			}

			result, err := apiClient(c).DeleteEvent(c.Context, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", result.Message, result.ID)
			return nil
		},
	}
}

func rsvpCommand() *cli.Command {
	return &cli.Command{
		Name:      "rsvp",
		Usage:     "RSVP to an event.",
		ArgsUsage: "<id> <name>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 2 {
				return fmt.Errorf("usage: eventctl rsvp <id> <name>")
			}
			id := c.Args().Get(0)
			name := strings.Join(c.Args().Slice()[1:], " ")

			updated, err := apiClient(c).RSVP(c.Context, id, name)
			if err != nil {
				return err
			}
			fmt.Printf("RSVP recorded, %d attending %s\n", len(updated.Attendees), updated.Title)
			return nil
		},
	}
}
