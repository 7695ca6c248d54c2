// Package commands implements the yougile CLI commands.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"github.com/yougile/go-yougile/internal/constants"
	"github.com/yougile/go-yougile/pkg/ygclient"
	"github.com/yougile/go-yougile/pkg/yougile"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	// Output formats.
	OutputFormatTable = constants.FormatTable
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML

	// YAML formatting.
	defaultYAMLIndent = 2
)

// Command-level errors.
var (
	ErrNotLoggedIn         = errors.New("not logged in, run 'yougile login' first")
	ErrLoginRequired       = errors.New("login is required")
	ErrCompanyRequired     = errors.New("company ID is required")
	ErrTitleRequired       = errors.New("title is required")
	ErrColumnRequired      = errors.New("column ID is required")
	ErrProjectRequired     = errors.New("project ID is required")
	ErrBoardRequired       = errors.New("board ID is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrURLRequired         = errors.New("url is required")
	ErrCompanyOutOfRange   = errors.New("company number out of range")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)

// Config is the persisted CLI configuration in ~/.yougile/config.yml.
type Config struct {
	Login       string `yaml:"login,omitempty"`
	CompanyID   string `yaml:"company_id,omitempty"`
	CompanyName string `yaml:"company_name,omitempty"`
	Key         string `yaml:"key,omitempty"`
	Output      string `yaml:"output,omitempty"`
}

func loadConfig() *Config {
	companyID := viper.GetString("company")
	if companyID == "" {
		companyID = viper.GetString("company_id")
	}

	return &Config{
		Login:       viper.GetString("login"),
		CompanyID:   companyID,
		CompanyName: viper.GetString("company_name"),
		Key:         viper.GetString("key"),
		Output:      viper.GetString("output"),
	}
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".yougile")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateClient builds an API client from the stored configuration and any
// overriding flags. The --key and --company flags override the config file.
func CreateClient() (yougile.Client, error) {
	config := loadConfig()

	if config.Key == "" {
		return nil, ErrNotLoggedIn
	}

	clientConfig := &yougile.Config{
		APIKey:    config.Key,
		CompanyID: config.CompanyID,
	}

	client, err := ygclient.New(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// promptCredentials fills in the login and password interactively when they
// were not passed as flags. The company listing and key endpoints
// authenticate with the account password, not the stored API key.
func promptCredentials(login, password string) (string, string, error) {
	if login == "" {
		login = loadConfig().Login
	}

	if login == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Login (email): ")
		login, _ = reader.ReadString('\n')
		login = strings.TrimSpace(login)
	}

	if login == "" {
		return "", "", ErrLoginRequired
	}

	if password == "" {
		fmt.Print("Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", "", fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Println()
	}

	return login, password, nil
}

// createPasswordClient builds a client authenticated with the account
// password rather than an API key.
func createPasswordClient(ctx context.Context, login, password string) (yougile.Client, error) {
	login, password, err := promptCredentials(login, password)
	if err != nil {
		return nil, err
	}

	client, err := ygclient.New(ctx, &yougile.Config{
		Login:    login,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// renderWithFormat dispatches on the configured output format, falling back
// to the provided table renderer.
func renderWithFormat[T any](data T, tableRenderer func(T) error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(data)
	case OutputFormatTable, "":
		return tableRenderer(data)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOutputFormat, viper.GetString("output"))
	}
}

// renderPageFooter prints a paging hint after a table listing.
func renderPageFooter(paging yougile.Paging) {
	if paging.Next {
		_, _ = fmt.Fprintf(os.Stdout, "\nMore results available. Use --offset %d to fetch the next page.\n",
			paging.Offset+paging.Count)
	}
}

// formatMillis renders a UnixMilli timestamp, or N/A when unset.
func formatMillis(millis int64) string {
	if millis == 0 {
		return constants.NotAvailable
	}

	return time.UnixMilli(millis).Format("2006-01-02 15:04")
}

// formatBool renders a boolean as a check mark column value.
func formatBool(value bool) string {
	if value {
		return constants.CheckMarkSymbol
	}

	return ""
}

// listOptions builds the common paging options from flags.
func listOptions(limit, offset int) *yougile.ListOptions {
	return &yougile.ListOptions{Limit: limit, Offset: offset}
}
