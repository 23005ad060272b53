package taskctl

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

func (a *App) mfa(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usage()
	}

	switch {
	case args[0] == "enroll" && len(args) == 1:
		return a.withSession(ctx, func(s *tasksdk.Session) error {
			enroll, err := s.EnrollTOTP(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "secret: %s\nurl:    %s\n", enroll.Secret, enroll.OTPAuthURL)
			fmt.Fprintln(a.out, "add it to an authenticator app, then run: taskctl mfa verify <code>")
			return nil
		})

	case args[0] == "verify" && len(args) == 2:
		return a.withSession(ctx, func(s *tasksdk.Session) error {
			resp, err := s.VerifyTOTP(ctx, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, resp.Message)
			fmt.Fprintln(a.out, "backup codes (shown once):")
			for _, code := range resp.BackupCodes {
				fmt.Fprintf(a.out, "  %s\n", code)
			}
			return nil
		})

	case args[0] == "disable" && len(args) == 2:
		return a.withSession(ctx, func(s *tasksdk.Session) error {
			if err := s.DisableTOTP(ctx, args[1]); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "MFA disabled")
			return nil
		})

	default:
		return a.usage()
	}
}
