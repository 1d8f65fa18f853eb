package config

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// PromptString prompts for a string value with a default
func PromptString(prompt, defaultValue string) string {
	reader := bufio.NewReader(os.Stdin)

	if defaultValue != "" {
		fmt.Printf("%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Printf("%s: ", prompt)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		return defaultValue
	}

	// Trim whitespace to handle copy-paste issues
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultValue
	}

	return input
}

// PromptPassword prompts for a password/token without showing a default
func PromptPassword(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s: ", prompt)

	input, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}

	// Trim whitespace to handle copy-paste issues
	return strings.TrimSpace(input)
}

// PromptInt prompts for an integer value with a default
func PromptInt(prompt string, defaultValue int) int {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Printf("%s [%d]: ", prompt, defaultValue)

		input, err := reader.ReadString('\n')
		if err != nil {
			return defaultValue
		}

		input = strings.TrimSpace(input)

		if input == "" {
			return defaultValue
		}

		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Printf("Invalid number. Please try again.\n")
			continue
		}

		if value <= 0 {
			fmt.Printf("Please enter a positive number.\n")
			continue
		}

		return value
	}
}

// PromptDuration prompts for a duration value with a default
func PromptDuration(prompt string, defaultValue time.Duration) time.Duration {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Printf("%s [%s]: ", prompt, defaultValue)

		input, err := reader.ReadString('\n')
		if err != nil {
			return defaultValue
		}

		input = strings.TrimSpace(input)

		if input == "" {
			return defaultValue
		}

		duration, err := time.ParseDuration(input)
		if err != nil {
			fmt.Printf("Invalid duration. Use format like '500ms', '2s', '1m'. Please try again.\n")
			continue
		}

		return duration
	}
}

// PromptBool prompts for a boolean value with a default
func PromptBool(prompt string, defaultValue bool) bool {
	reader := bufio.NewReader(os.Stdin)

	for {
		if defaultValue {
			fmt.Printf("%s [Y/n]: ", prompt)
		} else {
			fmt.Printf("%s [y/N]: ", prompt)
		}

		input, err := reader.ReadString('\n')
		if err != nil {
			return defaultValue
		}

		input = strings.TrimSpace(strings.ToLower(input))

		if input == "" {
			return defaultValue
		}

		switch input {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Printf("Please enter 'y' or 'n'.\n")
		}
	}
}

// StdinPrompter collects the out-of-band second-factor code from the
// operator's terminal. It satisfies bluesky.SecondFactorPrompter.
type StdinPrompter struct{}

func (StdinPrompter) SecondFactorCode(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	code := PromptPassword("Enter the sign-in code sent to your email")
	if code == "" {
		return "", fmt.Errorf("empty sign-in code")
	}
	return code, nil
}

// InteractiveConfig creates a new config by prompting the user
func InteractiveConfig() *Config {
	fmt.Println("=== Twitter Archive to Bluesky Migration Tool ===")
	fmt.Println()

	cfg := New()

	fmt.Println("Bluesky Configuration:")
	cfg.Bluesky.Host = PromptString("PDS Host", cfg.Bluesky.Host)
	cfg.Bluesky.Identifier = PromptString("Handle or email", getEnvOrDefault("BSKY_IDENTIFIER", ""))

	// For the app password, check if environment variable exists
	passwordEnv := os.Getenv("BSKY_PASSWORD")
	if passwordEnv != "" {
		cfg.Bluesky.Password = passwordEnv
		fmt.Printf("App Password: ********** (from environment)\n")
	} else {
		cfg.Bluesky.Password = PromptPassword("App Password")
	}

	fmt.Println("\nArchive Configuration:")
	cfg.Archive.TweetsFile = PromptString("Tweets file (tweets.js)", cfg.Archive.TweetsFile)
	cfg.Archive.MediaDir = PromptString("Media directory", cfg.Archive.MediaDir)

	fmt.Println("\nMigration Settings:")
	cfg.Migration.MaxRetries = PromptInt("Max Retries", cfg.Migration.MaxRetries)
	cfg.Migration.PostDelay = PromptDuration("Delay between posts", cfg.Migration.PostDelay)

	return cfg
}
