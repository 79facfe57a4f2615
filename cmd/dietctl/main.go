// cmd/dietctl/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"diet-client/config"
	"diet-client/internal/api"
	"diet-client/internal/meal"
	"diet-client/internal/member"
	"diet-client/internal/notify"
	"diet-client/internal/server"
	"diet-client/internal/session"
	"diet-client/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dietctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	op := fs.String("op", "meals", "Operation: login | me | meals | search | logout")
	nickname := fs.String("nickname", "", "Nickname (required for login)")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	memberFlag := fs.Int64("member", 0, "Member ID (default from config)")
	dateFlag := fs.String("date", time.Now().Format(meal.DateFormat), "Calendar date, YYYY-MM-DD")
	shift := fs.Int("shift", 0, "Shift the selected date by this many days before loading")
	query := fs.String("query", "", "Search query (required for search)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l := logger.New()
	defer l.Sync()

	apiClient, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, l)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	notifier := notify.NewConsole(stderr)
	retry := api.RetryPolicy{
		MaxRetries: cfg.Retry.MaxRetries,
		BaseDelay:  cfg.Retry.BaseDelay,
	}
	memberClient := member.NewClient(apiClient, retry, notifier, l)
	mealClient := meal.NewClient(apiClient, l)
	sessions := session.NewStore()

	ctx := context.Background()

	// Serve /health and /metrics while the command runs, when configured.
	if cfg.Server.Port != "" {
		ops := server.NewServer(cfg.Server.Port, l)
		go func() {
			if err := ops.Start(); err != nil {
				l.Warn("Ops server stopped", "error", err)
			}
		}()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = ops.Stop(stopCtx)
		}()
	}

	switch *op {
	case "login":
		if *nickname == "" {
			fs.PrintDefaults()
			return fmt.Errorf("missing required flags: nickname")
		}
		password := *passwordFlag
		if password == "" {
			fmt.Fprint(stdout, "Password: ")
			password, err = readPassword(stdin)
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			fmt.Fprintln(stdout)
		}

		m, err := memberClient.Login(ctx, *nickname, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		sessions.Set(m)
		fmt.Fprintf(stdout, "Logged in as %s (%s)\n", m.Nickname, m.Email)
		return nil

	case "me":
		m, err := memberClient.CurrentMember(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch current member: %w", err)
		}
		sessions.Set(m)
		fmt.Fprintf(stdout, "%s <%s>\n", m.Nickname, m.Email)
		fmt.Fprintf(stdout, "키 %.1fcm / 몸무게 %.1fkg / 목표 %.0fkcal\n", m.Height, m.Weight, m.TargetCalories)
		return nil

	case "meals":
		date, err := time.Parse(meal.DateFormat, *dateFlag)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", *dateFlag, err)
		}
		memberID := *memberFlag
		if memberID == 0 {
			memberID = cfg.Member.DefaultID
		}

		vm := meal.NewViewModel(mealClient, memberID, date, l)
		vm.SetOnDateChange(func(time.Time) {
			_ = vm.Load(ctx)
		})

		if *shift != 0 {
			vm.ChangeDate(*shift)
		} else {
			_ = vm.Load(ctx)
		}

		if msg := vm.Err(); msg != "" {
			return fmt.Errorf("%s", msg)
		}

		records := vm.Records()
		fmt.Fprintf(stdout, "%s 식사기록 (%d건)\n", vm.SelectedDate().Format(meal.DateFormat), len(records))
		for _, r := range records {
			fmt.Fprintf(stdout, "  [%s] %.0fkcal  탄 %.0fg  단 %.0fg  지 %.0fg\n",
				r.Type, r.TotalKcal, r.TotalCarbs, r.TotalProtein, r.TotalFat)
		}
		t := vm.Totals()
		fmt.Fprintf(stdout, "총 섭취량: %.0fkcal  탄 %.0fg  단 %.0fg  지 %.0fg\n",
			t.Kcal, t.Carbs, t.Protein, t.Fat)
		return nil

	case "search":
		if *query == "" {
			fs.PrintDefaults()
			return fmt.Errorf("missing required flags: query")
		}
		members, err := memberClient.SearchProfiles(ctx, *query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		for _, m := range members {
			fmt.Fprintf(stdout, "%d\t%s\t%s\n", m.ID, m.Nickname, m.Email)
		}
		return nil

	case "logout":
		_ = memberClient.Logout(ctx)
		sessions.Clear()
		fmt.Fprintln(stdout, "Logged out")
		return nil

	default:
		fs.PrintDefaults()
		return fmt.Errorf("unknown operation %q", *op)
	}
}

func readPassword(stdin io.Reader) (string, error) {
	// Check if stdin is a terminal
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for non-terminal (e.g. tests, pipes)
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
