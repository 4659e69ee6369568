// cmd/hashpass/main.go
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/your-org/shopfront/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	app := &cli.App{
		Name:      "hashpass",
		Usage:     "print a bcrypt hash for ADMIN_PASSWORD_HASH",
		ArgsUsage: "<password>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "cost", Value: 12, Usage: "bcrypt cost", EnvVars: []string{"BCRYPT_COST"}},
			&cli.BoolFlag{Name: "skip-policy", Usage: "hash without checking password strength"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("hashpass failed")
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one password argument", 2)
	}
	password := c.Args().First()
	cost := c.Int("cost")
	passwords := auth.NewPasswordManager(cost)

	var hash string
	if c.Bool("skip-policy") {
		raw, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		hash = string(raw)
	} else {
		var err error
		if hash, err = passwords.HashPassword(password); err != nil {
			return err
		}
	}

	if err := passwords.VerifyPassword(password, hash); err != nil {
		return fmt.Errorf("hash verification failed: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "ADMIN_PASSWORD_HASH=%s\n", hash)
	return nil
}
