// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/noteplane/internal/config"
	"github.com/carterperez-dev/noteplane/internal/core"
	"github.com/carterperez-dev/noteplane/internal/tenant"
	"github.com/carterperez-dev/noteplane/internal/user"
)

// seedPassword is shared by every demo account.
const seedPassword = "password"

type seedTenant struct {
	slug  string
	name  string
	plan  string
	users []seedUser
}

type seedUser struct {
	email string
	role  string
	plan  string
}

var demoTenants = []seedTenant{
	{
		slug: "acme",
		name: "Acme Corp",
		plan: tenant.PlanFree,
		users: []seedUser{
			{email: "admin@acme.test", role: user.RoleAdmin, plan: user.PlanPro},
			{email: "user@acme.test", role: user.RoleMember, plan: user.PlanFree},
		},
	},
	{
		slug: "globex",
		name: "Globex Inc",
		plan: tenant.PlanFree,
		users: []seedUser{
			{email: "admin@globex.test", role: user.RoleAdmin, plan: user.PlanPro},
			{email: "user@globex.test", role: user.RoleMember, plan: user.PlanFree},
		},
	},
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("seed error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	passwordHash, err := core.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	return core.InTx(ctx, db.DB, func(tx *sqlx.Tx) error {
		if err := wipe(ctx, tx); err != nil {
			return err
		}

		tenantRepo := tenant.NewRepository(tx)
		userRepo := user.NewRepository(tx)

		for _, st := range demoTenants {
			t := &tenant.Tenant{
				ID:   uuid.New().String(),
				Slug: st.slug,
				Name: st.name,
				Plan: st.plan,
			}
			if err := tenantRepo.Create(ctx, t); err != nil {
				return err
			}

			for _, su := range st.users {
				u := &user.User{
					ID:           uuid.New().String(),
					Email:        su.email,
					PasswordHash: passwordHash,
					Role:         su.role,
					Plan:         su.plan,
					TenantID:     t.ID,
				}
				if err := userRepo.Create(ctx, u); err != nil {
					return err
				}

				slog.Info("seeded user",
					"tenant", st.slug,
					"email", su.email,
					"role", su.role,
				)
			}
		}

		return nil
	})
}

// wipe clears demo data in dependency order so the seed is repeatable.
func wipe(ctx context.Context, tx *sqlx.Tx) error {
	for _, table := range []string{"notes", "users", "tenants"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}
	return nil
}
