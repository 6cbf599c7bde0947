package cli

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mrlokans/berean/internal/auth"
	"github.com/mrlokans/berean/internal/config"
	"github.com/mrlokans/berean/internal/database"
	"github.com/mrlokans/berean/internal/entities"
)

// CreateUserCommand creates a local user account for instances running with
// AUTH_MODE=local.
type CreateUserCommand struct {
	DatabasePath string
	Username     string
	Email        string
	Password     string
	Role         string
}

func NewCreateUserCommand() *CreateUserCommand {
	return &CreateUserCommand{}
}

func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Username, "username", "", "Username (required)")
	fs.StringVar(&cmd.Email, "email", "", "Email address (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password (read from stdin when omitted)")
	fs.StringVar(&cmd.Role, "role", string(entities.RoleMember), "Role: admin or member")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a local user account for AUTH_MODE=local deployments.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s create-user -username alice -email alice@example.com -role admin\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" || cmd.Email == "" {
		fs.Usage()
		return fmt.Errorf("username and email are required")
	}

	return nil
}

func (cmd *CreateUserCommand) Run() error {
	if cmd.Password == "" {
		fmt.Print("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		cmd.Password = strings.TrimRight(line, "\r\n")
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	service := auth.NewService(db.DB, config.Auth{Mode: config.AuthModeLocal, BcryptCost: 12})
	user, err := service.CreateUser(cmd.Username, cmd.Email, cmd.Password, entities.UserRole(cmd.Role))
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("Created %s user %s (id %d)\n", user.Role, user.Username, user.ID)
	return nil
}
