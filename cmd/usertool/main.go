// usertool is the offline administration tool for user accounts. Accounts are
// never created through the web surface; run this next to the server instead.
package main

import (
	"errors"
	"fmt"
	"os"

	"tracker/backend/config"
	"tracker/backend/models"
	"tracker/backend/utils"

	"github.com/alecthomas/kong"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
	"gorm.io/gorm"
)

type Context struct {
	DB *gorm.DB
}

type CreateAdminCmd struct {
	Username string `help:"Username for the admin account." default:"admin"`
	Password string `help:"Password for the admin account. Prompted when omitted."`
}

type ResetPasswordCmd struct {
	Username string `arg:"" help:"Account to reset."`
}

type ListCmd struct{}

var cli struct {
	CreateAdmin   CreateAdminCmd   `cmd:"" help:"Create an admin account."`
	ResetPassword ResetPasswordCmd `cmd:"" help:"Reset a user's password."`
	List          ListCmd          `cmd:"" help:"List all user accounts."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("usertool"),
		kong.Description("Offline user administration for the training tracker."),
		kong.UsageOnError(),
	)

	cfg, err := config.LoadConfig()
	ctx.FatalIfErrorf(err)

	db, err := utils.InitDB(cfg)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(&Context{DB: db}))
}

func (cmd *CreateAdminCmd) Run(ctx *Context) error {
	var existing models.User
	err := ctx.DB.Where("username = ?", cmd.Username).First(&existing).Error
	if err == nil {
		return fmt.Errorf("user %q already exists; use reset-password to change its password", cmd.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := cmd.Password
	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     cmd.Username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := ctx.DB.Create(&user).Error; err != nil {
		return err
	}

	fmt.Printf("Admin user %q created\n", user.Username)
	return nil
}

func (cmd *ResetPasswordCmd) Run(ctx *Context) error {
	var user models.User
	if err := ctx.DB.Where("username = ?", cmd.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %q not found", cmd.Username)
		}
		return err
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := ctx.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		return err
	}

	fmt.Printf("Password for %q updated\n", user.Username)
	return nil
}

func (cmd *ListCmd) Run(ctx *Context) error {
	var users []models.User
	if err := ctx.DB.Order("created_at").Find(&users).Error; err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found. Run 'usertool create-admin' first.")
		return nil
	}

	for _, u := range users {
		role := "user"
		if u.IsAdmin {
			role = "admin"
		}
		fmt.Printf("%-20s %-6s created %s\n", u.Username, role, u.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// promptPassword reads a password twice without echo and requires a minimum
// length of 6 characters.
func promptPassword() (string, error) {
	fmt.Print("New password: ")
	first, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(first) < 6 {
		return "", errors.New("password too short, use at least 6 characters")
	}

	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", errors.New("passwords don't match")
	}
	return string(first), nil
}
