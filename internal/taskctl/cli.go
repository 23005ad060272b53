package taskctl

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

const (
	defaultServer = "http://localhost:8080"
	usage         = `usage: taskctl [-server URL] [-session FILE] <command> [args]

commands:
  register <username> <email>       create an account
  login [-otp CODE] <username>      log in and save the session
  whoami                            show the logged in user
  logout                            end every session of the user
  tasks ls                          list tasks
  tasks add -due DATE [-content TEXT] <title>
  tasks done <id>                   mark a task done
  tasks rm <id>                     delete a task
  mfa enroll                        start TOTP enrollment
  mfa verify <code>                 enable TOTP, prints backup codes
  mfa disable <code>                disable TOTP
`
)

// ErrUsage is returned for malformed command lines. The usage text has
// already been printed.
var ErrUsage = errors.New("invalid usage")

// App is one invocation of the CLI.
type App struct {
	server      string
	serverSet   bool
	sessionFile string

	in  *bufio.Reader
	out io.Writer
}

// Main parses global flags from args and runs the selected command.
func Main(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("taskctl", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { fmt.Fprint(out, usage) }

	server := fs.String("server", envOrDefault("TASKCTL_SERVER", defaultServer), "taskboard base URL")
	sessionFile := fs.String("session", envOrDefault("TASKCTL_SESSION", defaultSessionPath()), "session file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return ErrUsage
	}

	app := &App{
		server:      *server,
		sessionFile: *sessionFile,
		in:          bufio.NewReader(in),
		out:         out,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "server" {
			app.serverSet = true
		}
	})
	if _, ok := os.LookupEnv("TASKCTL_SERVER"); ok {
		app.serverSet = true
	}

	return app.run(ctx, fs.Args())
}

func (a *App) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage()
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "whoami":
		return a.whoami(ctx)
	case "logout":
		return a.logout(ctx)
	case "tasks":
		return a.tasks(ctx, rest)
	case "mfa":
		return a.mfa(ctx, rest)
	case "help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprintf(a.out, "unknown command: %s\n", cmd)
		return a.usage()
	}
}

func (a *App) usage() error {
	fmt.Fprint(a.out, usage)
	return ErrUsage
}

func (a *App) client(saved *savedSession) *tasksdk.Client {
	server := a.server
	if saved != nil && saved.Server != "" && !a.serverSet {
		server = saved.Server
	}
	return tasksdk.NewClient(server)
}

// withSession resumes the saved session, runs fn and writes the possibly
// rotated tokens back.
func (a *App) withSession(ctx context.Context, fn func(*tasksdk.Session) error) error {
	saved, err := loadSession(a.sessionFile)
	if err != nil {
		return err
	}

	session := a.client(&saved).NewSessionFromTokens(saved.AccessToken, saved.RefreshToken)
	runErr := fn(session)

	if session.RefreshToken() != saved.RefreshToken || session.AccessToken() != saved.AccessToken {
		saved.AccessToken = session.AccessToken()
		saved.RefreshToken = session.RefreshToken()
		if err := saveSession(a.sessionFile, saved); err != nil {
			return errors.Join(runErr, err)
		}
	}
	return runErr
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return a.usage()
	}

	password, err := promptPassword(a.out, "Password: ")
	if err != nil {
		return err
	}

	resp, err := a.client(nil).Register(ctx, tasksdk.RegisterRequest{
		Username: args[0],
		Email:    args[1],
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered %s (id %d)\n", args[0], resp.ID)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	otp := fs.String("otp", "", "TOTP or backup code")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return a.usage()
	}
	username := fs.Arg(0)

	password, err := promptPassword(a.out, "Password: ")
	if err != nil {
		return err
	}

	client := a.client(nil)
	tokens, err := client.Login(ctx, username, password, *otp)
	if tasksdk.IsOTPRequired(err) && *otp == "" {
		code, perr := promptLine(a.in, a.out, "Authentication code (blank to give up): ")
		if perr != nil || code == "" {
			return err
		}
		tokens, err = client.Login(ctx, username, password, code)
	}
	if err != nil {
		return err
	}

	if err := saveSession(a.sessionFile, savedSession{
		Server:       client.BaseURL,
		Username:     username,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s\n", username)
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	return a.withSession(ctx, func(s *tasksdk.Session) error {
		me, err := s.Me(ctx)
		if err != nil {
			return err
		}

		mfa := "off"
		if me.MFAEnabled {
			mfa = "on"
		}
		fmt.Fprintf(a.out, "%s <%s> id=%d mfa=%s\n", me.Username, me.Email, me.ID, mfa)
		return nil
	})
}

func (a *App) logout(ctx context.Context) error {
	saved, err := loadSession(a.sessionFile)
	if err != nil {
		return err
	}

	session := a.client(&saved).NewSessionFromTokens(saved.AccessToken, saved.RefreshToken)
	logoutErr := session.Logout(ctx)

	// the local copy is useless either way
	if err := removeSession(a.sessionFile); err != nil {
		return errors.Join(logoutErr, err)
	}
	if logoutErr != nil {
		return logoutErr
	}

	fmt.Fprintln(a.out, "logged out")
	return nil
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".taskctl-session.json"
	}
	return filepath.Join(dir, "taskctl", "session.json")
}
