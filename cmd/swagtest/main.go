package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
	"github.com/urfave/cli/v2"

	internalcli "github.com/sauceqa/swagtest/internal/cli"
	"github.com/sauceqa/swagtest/internal/config"
)

var version = "0.1.0"

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the Playwright driver and the Chromium browser",
		Action: func(c *cli.Context) error {
			if err := playwright.Install(&playwright.RunOptions{
				Browsers: []string{"chromium"},
			}); err != nil {
				return fmt.Errorf("failed to install playwright: %w", err)
			}
			log.Println("Playwright driver and Chromium installed")
			return nil
		},
	}
}

// SmokeCommand returns the smoke command
func SmokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "smoke",
		Usage: "Run a login/cart smoke flow against the target application",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "product",
				Usage: "Display name of the product to exercise",
			},
			&cli.BoolFlag{
				Name:  "video",
				Usage: "Record a video of the browser session",
			},
		},
		Action: func(c *cli.Context) error {
			deps := internalcli.SmokeDependencies{
				App:     config.LoadAppConfig(os.Getenv),
				Users:   config.LoadUserConfig(os.Getenv),
				Product: c.String("product"),
				Video:   c.Bool("video"),
			}
			return internalcli.RunSmoke(deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "swagtest",
		Usage:   "Swag Labs browser test suite management tool",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			SmokeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
