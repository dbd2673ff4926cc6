package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/internal/model"
)

func newSeedAllCmd(a *app) *cobra.Command {
	var childCount int
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Seed departments, children and gift ideas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := seedDepartments(ctx, a); err != nil {
				return err
			}
			if err := seedChildren(ctx, a, childCount, false); err != nil {
				return err
			}
			return seedGiftIdeas(ctx, a)
		},
	}
	cmd.Flags().IntVar(&childCount, "children", 120, "number of children to create")
	return cmd
}

func newSeedDepartmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "Seed the department list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedDepartments(cmd.Context(), a)
		},
	}
}

func newSeedChildrenCmd(a *app) *cobra.Command {
	var count int
	var priority bool
	cmd := &cobra.Command{
		Use:   "children",
		Short: "Seed beneficiary records with generated names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedChildren(cmd.Context(), a, count, priority)
		},
	}
	cmd.Flags().IntVar(&count, "count", 120, "number of children to create")
	cmd.Flags().BoolVar(&priority, "priority", false, "mark generated children as priority")
	return cmd
}

func newSeedGiftIdeasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gift-ideas",
		Short: "Seed gift suggestion templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedGiftIdeas(cmd.Context(), a)
		},
	}
}

func newSeedAdminCmd(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedAdmin(cmd.Context(), a, username, password)
		},
	}
	cmd.Flags().StringVar(&username, "username", "admin", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password (required)")
	cmd.MarkFlagRequired("password")
	return cmd
}

// ── seeding ──

func seedDepartments(ctx context.Context, a *app) error {
	created := 0
	for _, name := range departmentNames {
		_, err := a.repo.Department.GetByName(ctx, name)
		if err == nil {
			continue // already present
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := a.repo.Department.Create(ctx, &model.Department{Name: name, Active: true}); err != nil {
			return fmt.Errorf("create department %q: %w", name, err)
		}
		created++
	}
	a.logger.Info("departments seeded", zap.Int("created", created), zap.Int("total", len(departmentNames)))
	return nil
}

func seedChildren(ctx context.Context, a *app, count int, priority bool) error {
	for i := 0; i < count; i++ {
		gender := model.GenderMale
		firstNames := maleFirstNames
		if rand.IntN(2) == 0 {
			gender = model.GenderFemale
			firstNames = femaleFirstNames
		}

		age := model.MinChildAge + rand.IntN(model.MaxChildAge-model.MinChildAge+1)
		child := &model.Child{
			Recipient: firstNames[rand.IntN(len(firstNames))] + " " + lastNames[rand.IntN(len(lastNames))],
			Age:       age,
			Gender:    gender,
			GiftIdeas: randomGiftIdeas(age, gender),
			Priority:  priority,
		}
		if err := a.repo.Child.Create(ctx, child); err != nil {
			return fmt.Errorf("create child: %w", err)
		}
	}
	a.logger.Info("children seeded", zap.Int("count", count), zap.Bool("priority", priority))
	return nil
}

func seedGiftIdeas(ctx context.Context, a *app) error {
	created := 0
	for _, band := range giftIdeaBands {
		for age := band.minAge; age <= band.maxAge; age++ {
			_, err := a.repo.GiftIdea.FindUncategorized(ctx, age, band.gender)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			idea := &model.GiftIdea{
				Age:    age,
				Gender: band.gender,
				Ideas:  append(model.StringArray{}, band.ideas...),
			}
			if err := a.repo.GiftIdea.Create(ctx, idea); err != nil {
				return fmt.Errorf("create gift ideas for age %d %s: %w", age, band.gender, err)
			}
			created++
		}
	}
	a.logger.Info("gift ideas seeded", zap.Int("created", created))
	return nil
}

func seedAdmin(ctx context.Context, a *app, username, password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	if _, err := a.repo.User.GetByUsername(ctx, username); err == nil {
		return fmt.Errorf("user %q already exists", username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := a.repo.User.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	a.logger.Info("admin user created", zap.String("username", username))
	return nil
}

// randomGiftIdeas picks a short free-text suggestion list for a child
// from the matching band.
func randomGiftIdeas(age int, gender string) string {
	var pool []string
	for _, band := range giftIdeaBands {
		if age < band.minAge || age > band.maxAge {
			continue
		}
		if band.gender == gender || band.gender == model.GenderAny {
			pool = append(pool, band.ideas...)
		}
	}
	if len(pool) == 0 {
		return ""
	}

	n := 2 + rand.IntN(2)
	if n > len(pool) {
		n = len(pool)
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return strings.Join(pool[:n], ", ")
}
