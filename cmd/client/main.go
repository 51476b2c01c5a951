// Package main is nexusctl, a small admin CLI for a running Nexus server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/atinyakov/nexus/internal/client"
	"github.com/urfave/cli/v3"
)

var (
	version   string
	buildDate string
)

func main() {
	root := &cli.Command{
		Name:    "nexusctl",
		Usage:   "Admin client for the Nexus city backend",
		Version: fmt.Sprintf("%s (built %s)", orNA(version), orNA(buildDate)),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:3000", Usage: "server base URL", Sources: cli.EnvVars("NEXUS_URL")},
			&cli.StringFlag{Name: "ca", Usage: "CA certificate to trust for https servers"},
			&cli.StringFlag{Name: "session", Value: client.DefaultSessionFile, Usage: "where the login token is kept"},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		},
		Commands: []*cli.Command{
			pingCommand(),
			loginCommand(),
			submitCommand(),
			contactsCommand(),
			statusCommand(),
			statsCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// newClient builds a client from the global flags.
func newClient(cmd *cli.Command) (*client.Client, error) {
	hc, err := client.NewHTTPClient(cmd.String("ca"))
	if err != nil {
		return nil, err
	}
	return client.New(cmd.String("url"), hc), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func pingCommand() *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "Check that the server is alive",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			msg, err := c.Ping(ctx)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in as admin and store the token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, Sources: cli.EnvVars("NEXUS_PASSWORD")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			token, err := c.Login(ctx, cmd.String("email"), cmd.String("password"))
			if err != nil {
				return err
			}
			s := &client.Session{URL: cmd.String("url"), Token: token}
			if err := s.Save(cmd.String("session")); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Println("Logged in.")
			return nil
		},
	}
}

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "Send a contact-form submission",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "message", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			id, err := c.Submit(ctx, cmd.String("name"), cmd.String("email"), cmd.String("message"))
			if err != nil {
				return err
			}
			fmt.Printf("Saved contact #%d\n", id)
			return nil
		},
	}
}

func contactsCommand() *cli.Command {
	return &cli.Command{
		Name:  "contacts",
		Usage: "List stored submissions, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 100},
			&cli.StringFlag{Name: "token", Usage: "bearer token; defaults to the stored session"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			c.Token = cmd.String("token")
			if c.Token == "" {
				s, err := client.LoadSession(cmd.String("session"))
				if err != nil {
					return fmt.Errorf("load session: %w", err)
				}
				c.Token = s.Token
			}

			contacts, err := c.Contacts(ctx, int(cmd.Int("limit")))
			if err != nil {
				return err
			}
			if cmd.Bool("json") {
				return printJSON(contacts)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tNAME\tEMAIL\tMESSAGE")
			for _, ct := range contacts {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", ct.ID, ct.CreatedAt.Format("2006-01-02 15:04"), ct.Name, ct.Email, ct.Message)
			}
			return tw.Flush()
		},
	}
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the live transit board",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			lines, err := c.Status(ctx)
			if err != nil {
				return err
			}
			if cmd.Bool("json") {
				return printJSON(lines)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LINE\tTYPE\tDESTINATION\tSTATUS\tCROWD\tARRIVAL")
			for _, l := range lines {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", l.Name, l.Type, l.Destination, l.Status, l.Crowd, l.Arrival)
			}
			return tw.Flush()
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show city counters (each call advances them)",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			stats, err := c.Stats(ctx)
			if err != nil {
				return err
			}
			if cmd.Bool("json") {
				return printJSON(stats)
			}
			fmt.Printf("Daily commuters: %d\nActive vehicles: %d\n", stats.DailyCommuters, stats.ActiveVehicles)
			return nil
		},
	}
}
