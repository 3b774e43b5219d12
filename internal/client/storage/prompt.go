package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okoshkina/fittrack/internal/models"
	"github.com/okoshkina/fittrack/internal/tracker"
)

// Weight input bounds enforced at the prompt, mirroring what the form UI
// clamps before dispatching. The store itself does no range validation.
const (
	minWeightInput = 30
	maxWeightInput = 200
)

// PromptHealthData runs the interactive onboarding flow, reading current
// weight, target weight, and goal from in.
func PromptHealthData(in io.Reader, out io.Writer) (tracker.HealthData, error) {
	scanner := bufio.NewScanner(in)

	current, err := promptWeight(scanner, out, "Enter current weight (kg): ")
	if err != nil {
		return tracker.HealthData{}, err
	}
	target, err := promptWeight(scanner, out, "Enter target weight (kg): ")
	if err != nil {
		return tracker.HealthData{}, err
	}

	fmt.Fprint(out, "Enter goal (loss/maintain/gain): ")
	if !scanner.Scan() {
		return tracker.HealthData{}, fmt.Errorf("input closed")
	}
	goal, err := parseGoal(scanner.Text())
	if err != nil {
		return tracker.HealthData{}, err
	}

	return tracker.HealthData{CurrentWeight: current, TargetWeight: target, Goal: goal}, nil
}

func promptWeight(scanner *bufio.Scanner, out io.Writer, label string) (float64, error) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		return 0, fmt.Errorf("input closed")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q", scanner.Text())
	}
	if v < minWeightInput {
		v = minWeightInput
	}
	if v > maxWeightInput {
		v = maxWeightInput
	}
	return v, nil
}

func parseGoal(s string) (models.Goal, error) {
	switch models.Goal(strings.ToLower(strings.TrimSpace(s))) {
	case models.GoalLoss:
		return models.GoalLoss, nil
	case models.GoalMaintain:
		return models.GoalMaintain, nil
	case models.GoalGain:
		return models.GoalGain, nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}
