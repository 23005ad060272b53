package taskctl

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// deadlineLayouts are tried in order. Zone-less values are local time.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDeadline(s string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q, use YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC3339", s)
}

func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

func (a *App) tasks(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage()
	}

	switch args[0] {
	case "ls", "list":
		return a.withSession(ctx, func(s *tasksdk.Session) error {
			tasks, err := s.ListTasks(ctx)
			if err != nil {
				return err
			}
			a.printTasks(tasks)
			return nil
		})

	case "add":
		fs := flag.NewFlagSet("tasks add", flag.ContinueOnError)
		fs.SetOutput(a.out)
		due := fs.String("due", "", "deadline")
		content := fs.String("content", "", "task body")
		if err := fs.Parse(args[1:]); err != nil || *due == "" {
			return a.usage()
		}
		deadline, err := parseDeadline(*due)
		if err != nil {
			return err
		}

		return a.withSession(ctx, func(s *tasksdk.Session) error {
			task, err := s.CreateTask(ctx, tasksdk.CreateTaskRequest{
				Title:    strings.Join(fs.Args(), " "),
				Content:  *content,
				Deadline: deadline,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created task %d: %s\n", task.ID, task.Title)
			return nil
		})

	case "done", "rm":
		if len(args) != 2 {
			return a.usage()
		}
		id, err := parseTaskID(args[1])
		if err != nil {
			return err
		}

		return a.withSession(ctx, func(s *tasksdk.Session) error {
			var (
				msg *tasksdk.TaskMessage
				err error
			)
			if args[0] == "done" {
				done := true
				msg, err = s.UpdateTask(ctx, id, tasksdk.UpdateTaskRequest{IsDone: &done})
			} else {
				msg, err = s.DeleteTask(ctx, id)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg.Message)
			return nil
		})

	default:
		fmt.Fprintf(a.out, "unknown tasks command: %s\n", args[0])
		return a.usage()
	}
}

func (a *App) printTasks(tasks []tasksdk.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "no tasks")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tDEADLINE\tTITLE")
	for _, t := range tasks {
		done := ""
		if t.IsDone {
			done = "x"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID, done, t.Deadline.Local().Format("2006-01-02 15:04"), t.Title)
	}
	_ = tw.Flush()
}
