package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/okoshkina/fittrack/internal/client/storage"
	"github.com/okoshkina/fittrack/internal/tracker"
)

const (
	apiRegister = "/api/register"
	apiLogin    = "/api/login"
)

var (
	version   string
	buildDate string
)

// repl runs the interactive shell loop, accepting commands to track weight,
// meals, and water. Every mutation is saved to the local file; sync with the
// backend runs in the background when a token is available.
func repl(client *http.Client, baseURL, token string, st *tracker.Store, fs *storage.FileStore, zapLogger *zap.Logger) {
	if token != "" {
		storage.StartAutoSync(client, baseURL, token, st, fs, 10*time.Second, zapLogger)
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("fittrack> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, weight <kg>, progress, weekly, meals, select <meal> <category> <option>, complete <meal>, uncomplete <meal>, water [cups], undo, goal <cups>, resetmeals, sync, exit")
		case "weight":
			if len(args) < 2 {
				fmt.Println("Usage: weight <kg>")
				continue
			}
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				fmt.Println("Invalid weight")
				continue
			}
			// The form clamps input before dispatching; the store does not.
			if v < 30 {
				v = 30
			}
			if v > 200 {
				v = 200
			}
			st.AddWeightEntry(v)
			fmt.Println("Weight logged")
		case "progress":
			st.CheckAndResetDailyWater()
			snap := st.Snapshot()
			fmt.Printf("Current: %.1f kg\n", tracker.CurrentWeight(snap))
			fmt.Printf("Change:  %.1f kg\n", tracker.WeightChange(snap))
			fmt.Printf("Goal progress: %.0f%%\n", tracker.ProgressPercent(snap))
			fmt.Printf("Water: %d/%d cups (%.0f%%)\n", snap.Water.Intake, snap.Water.Goal, tracker.WaterPercentage(snap))
		case "weekly":
			for i, v := range tracker.WeeklyData(st.Snapshot()) {
				fmt.Printf("%d: %.1f\n", i+1, v)
			}
		case "meals":
			st.CheckAndResetDailyMeals()
			printMeals(st)
		case "select":
			if len(args) < 4 {
				fmt.Println("Usage: select <meal> <category> <option>")
				continue
			}
			st.SelectOption(args[1], args[2], args[3])
		case "complete":
			if len(args) < 2 {
				fmt.Println("Usage: complete <meal>")
				continue
			}
			if !mealReady(st, args[1]) {
				fmt.Println("Pick an option in every category first")
				continue
			}
			st.CompleteMeal(args[1])
		case "uncomplete":
			if len(args) < 2 {
				fmt.Println("Usage: uncomplete <meal>")
				continue
			}
			st.UncompleteMeal(args[1])
		case "water":
			amount := 1
			if len(args) >= 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n <= 0 {
					fmt.Println("Invalid amount")
					continue
				}
				amount = n
			}
			st.AddWater(amount)
			snap := st.Snapshot()
			fmt.Printf("%d/%d cups (%.0f%%)\n", snap.Water.Intake, snap.Water.Goal, tracker.WaterPercentage(snap))
		case "undo":
			st.UndoLast()
		case "goal":
			if len(args) < 2 {
				fmt.Println("Usage: goal <cups>")
				continue
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("Invalid goal")
				continue
			}
			st.SetWaterGoal(n)
		case "resetmeals":
			st.ResetMeals()
		case "sync":
			if token == "" {
				fmt.Println("No token; run with -token")
				continue
			}
			if err := storage.SyncWithServer(client, baseURL, token, st, fs); err != nil {
				fmt.Println("sync error:", err)
			} else {
				fmt.Println("Sync successful")
			}
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func printMeals(st *tracker.Store) {
	snap := st.Snapshot()
	for _, meal := range snap.Meals.Meals {
		status := ""
		if meal.Completed {
			status = " [done]"
		} else if tracker.MealReady(meal) {
			status = " [ready]"
		}
		fmt.Printf("%s (%s)%s\n", meal.Name, meal.ID, status)
		for _, cat := range meal.Categories {
			fmt.Printf("  %s (%s):\n", cat.Name, cat.ID)
			for _, opt := range cat.Options {
				mark := " "
				if opt.Selected {
					mark = "x"
				}
				fmt.Printf("    [%s] %s (%s)\n", mark, opt.Name, opt.ID)
			}
		}
	}
}

func mealReady(st *tracker.Store, mealID string) bool {
	for _, meal := range st.Snapshot().Meals.Meals {
		if meal.ID == mealID {
			return tracker.MealReady(meal)
		}
	}
	return false
}

// requestToken calls the register or login endpoint and returns the token.
func requestToken(client *http.Client, baseURL, path, login string) (string, error) {
	b, _ := json.Marshal(map[string]string{"login": login})
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %s", resp.Status)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// main parses command-line flags and dispatches to the register, login, or
// shell commands.
func main() {
	var (
		cmd       string
		baseURL   string
		stateFile string
		loginStr  string
		token     string
		showVer   bool
	)

	flag.StringVar(&cmd, "cmd", "shell", "command: register | login | shell")
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&stateFile, "file", "fittrack.json", "path to local state file")
	flag.StringVar(&loginStr, "login", "", "username for registration or login")
	flag.StringVar(&token, "token", "", "bearer token for sync")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("FitTrack Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}

	switch cmd {
	case "register", "login":
		if loginStr == "" {
			log.Fatal("-login is required")
		}
		path := apiRegister
		if cmd == "login" {
			path = apiLogin
		}
		tok, err := requestToken(client, baseURL, path, loginStr)
		if err != nil {
			log.Fatalf("%s failed: %v", cmd, err)
		}
		fmt.Println("Token:", tok)
	case "shell":
		zapLogger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("failed to init logger: %v", err)
		}
		defer func() { _ = zapLogger.Sync() }()

		fs := storage.NewFileStore(stateFile)
		snap, err := fs.Load()
		if err != nil {
			log.Fatalf("failed to load local state: %v", err)
		}

		st := tracker.New(tracker.DefaultMealPlan(),
			tracker.WithState(snap),
			tracker.WithSaver(fs),
			tracker.WithLogger(zapLogger),
		)

		if !st.Snapshot().Profile.Onboarded {
			data, err := storage.PromptHealthData(os.Stdin, os.Stdout)
			if err != nil {
				log.Fatalf("onboarding failed: %v", err)
			}
			st.SetHealthData(data)
		}

		repl(client, baseURL, token, st, fs, zapLogger)
	default:
		log.Fatalf("unknown command %q", cmd)
	}
}
