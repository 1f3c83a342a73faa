package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"casedesk/internal/domain/user"
	"casedesk/internal/infrastructure/auth"
	"casedesk/internal/infrastructure/config"
	"casedesk/internal/infrastructure/database"
	"casedesk/internal/infrastructure/repository"
	"casedesk/internal/shared/authorization"
	sharederrors "casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
)

var (
	env      string
	name     string
	email    string
	password string
	role     string
)

// NewCommand returns the seed command. It upserts an agent account by
// email so re-running it is safe.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed an agent account",
		Long:  `Create or update an agent account by email. Existing accounts are updated in place and reactivated.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&name, "name", "", "Display name of the agent (required)")
	cmd.Flags().StringVar(&email, "email", "", "Login email of the agent (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&role, "role", "agent", "Role (agent or admin)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	userRole := authorization.ParseUserRole(role)

	userRepo := repository.NewUserRepository(database.Get())
	ctx := context.Background()

	existing, err := userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		updated, err := user.ReconstructUser(
			existing.ID(), name, email, hash, userRole,
			true, existing.CreatedAt(), existing.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("failed to build updated account: %w", err)
		}
		if err := userRepo.Update(ctx, updated); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}
		log.Infow("agent account updated", "name", name, "email", email, "role", userRole)

	case sharederrors.IsNotFoundError(err):
		account, err := user.NewUser(name, email, hash, userRole)
		if err != nil {
			return fmt.Errorf("invalid account details: %w", err)
		}
		if err := userRepo.Create(ctx, account); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		log.Infow("agent account created", "name", name, "email", email, "role", userRole)

	default:
		return fmt.Errorf("failed to look up account: %w", err)
	}

	return nil
}

func promptPassword() (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", email)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
