package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	authdomain "github.com/polenmarket/polen/internal/auth/domain"
	"github.com/polenmarket/polen/internal/auth/password"
	catalogdomain "github.com/polenmarket/polen/internal/catalog/domain"
	"github.com/polenmarket/polen/pkg/db"
)

// EnsureDefaultAdmin creates the bootstrap administrator when the
// usuarios_admin table is empty. Re-running it is a no-op.
func EnsureDefaultAdmin(ctx context.Context, users authdomain.Repository, node *snowflake.Node, username, rawPassword string) error {
	if username == "" || rawPassword == "" {
		return errors.New("bootstrap admin requires a username and password")
	}

	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash(rawPassword)
	if err != nil {
		return err
	}

	user := authdomain.AdminUser{
		ID:           node.Generate().Int64(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	// Two replicas racing past the empty-table check both reach the insert;
	// the username unique constraint settles who wins.
	if err := users.Create(ctx, &user); err != nil && !db.IsDuplicateKeyErr(err) {
		return err
	}
	return nil
}

var starterCategories = []string{
	"Miel",
	"Propóleo",
	"Cosmética natural",
	"Regalos",
}

// EnsureStarterCategories seeds a minimal set of categories so a fresh
// install has something to hang products on.
func EnsureStarterCategories(conn *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := conn.Model(&catalogdomain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, name := range starterCategories {
		cat := catalogdomain.Category{
			ID:     node.Generate().Int64(),
			Name:   name,
			Slug:   slug.Make(name),
			Order:  i,
			Active: true,
		}
		if err := conn.Create(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}
