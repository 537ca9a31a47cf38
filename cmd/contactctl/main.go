package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/anamtn/portfolio-api/internal/api/dto/v1/contact"
	"github.com/anamtn/portfolio-api/internal/client"
	"github.com/anamtn/portfolio-api/internal/logging"
	"github.com/anamtn/portfolio-api/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var logger *logging.Logger

var serverURL string

func initLogger() {
	logConfig := &logging.LogConfig{
		File:       "~/.contactctl/client.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger = logging.GetGlobalLogger()
}

var rootCmd = &cobra.Command{
	Use:   "contactctl",
	Short: "contactctl - portfolio contact form client",
	Long: `contactctl submits messages to the portfolio contact API from the
command line, applying the same field validation the server enforces.`,
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a contact message",
	Long: `Submit a contact message to the portfolio API.

Example:
  contactctl submit --name "Ana" --email ana@example.com \
    --subject "Hello there" --message "This is a test message."`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		subject, _ := cmd.Flags().GetString("subject")
		message, _ := cmd.Flags().GetString("message")

		submitter := client.NewSubmitter(serverURL)
		submitter.SetForm(contact.SubmissionRequest{
			Name:    name,
			Email:   email,
			Subject: subject,
			Message: message,
		})

		// Spinner while the submission is in flight
		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending message..."
		s.Start()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		state, err := submitter.Submit(ctx)
		s.Stop()

		if err != nil {
			logger.Error("Submit failed: %v", err)
			os.Exit(1)
		}

		switch state {
		case client.StateSuccess:
			fmt.Println("Message sent. Thank you!")
		case client.StateError:
			reason, msg := submitter.Error()
			logger.Error("Submission failed (%s): %s", reason, msg)
			fmt.Printf("Could not send message: %s\n", msg)
			os.Exit(1)
		}
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the API server health",
	Run: func(cmd *cobra.Command, args []string) {
		httpClient := &http.Client{Timeout: 10 * time.Second}
		resp, err := httpClient.Get(serverURL + "/health")
		if err != nil {
			logger.Error("Health check failed: %v", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		var health struct {
			Status        string `json:"status"`
			Version       string `json:"version"`
			RateLimitMode string `json:"rate_limit_mode"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
			logger.Error("Failed to decode health response: %v", err)
			os.Exit(1)
		}

		fmt.Printf("Status:          %s\n", health.Status)
		fmt.Printf("Server version:  %s\n", health.Version)
		fmt.Printf("Rate limit mode: %s\n", health.RateLimitMode)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "API server base URL")

	submitCmd.Flags().String("name", "", "Your name")
	submitCmd.Flags().String("email", "", "Your email address")
	submitCmd.Flags().String("subject", "", "Message subject")
	submitCmd.Flags().String("message", "", "Message body")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	initLogger()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed: %v", err)
		os.Exit(1)
	}
}
