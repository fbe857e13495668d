package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
)

const rootDir = ".wbmenu"
const configFileName = "config.toml"

const (
	CopyCurrentPageURLKey       = "copy_current_page_url_option"
	OpenCurrentPageInBrowserKey = "open_current_page_in_browser_option"
	SpellcheckPrimaryKey        = "spellcheck.primary"
	SpellcheckSecondaryKey      = "spellcheck.secondary"
	DictionariesKey             = "spellcheck.dictionaries"
	LocaleKey                   = "locale"
	LocalesDirKey               = "locales_dir"
	StorageKey                  = "storage"
	EditorKey                   = "editor"
	DebugKey                    = "debug"
	LogFileKey                  = "log_file"
	MaxLogFilesKey              = "max_log_files"
)

const DefaultMaxLogFiles = 10

func getDefaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if os.Getenv("WINDIR") != "" {
		return "notepad"
	}

	return "vim"
}

func GetEditor() string {
	editor := viper.GetString(EditorKey)

	if editor == "" {
		return getDefaultEditor()
	}

	return editor
}

func SetEditor(editor string) error {
	if _, err := InitialiseConfigFile(); err != nil {
		return err
	}

	if editor == GetEditor() {
		return nil
	}

	viper.Set(EditorKey, editor)

	return viper.WriteConfig()
}

// Features returns the current-page toggles. Unset keys are false.
func Features() contextmenu.FeatureConfig {
	return contextmenu.FeatureConfig{
		CopyCurrentPageURLOption:       viper.GetBool(CopyCurrentPageURLKey),
		OpenCurrentPageInBrowserOption: viper.GetBool(OpenCurrentPageInBrowserKey),
	}
}

// SpellcheckLanguages returns the primary and secondary dictionary languages
func SpellcheckLanguages() (primary, secondary string) {
	return viper.GetString(SpellcheckPrimaryKey), viper.GetString(SpellcheckSecondaryKey)
}

// DictionariesDir defaults to <storage>/dictionaries
func DictionariesDir() (string, error) {
	if dir := viper.GetString(DictionariesKey); dir != "" {
		return dir, nil
	}

	storage, err := GetStorage()
	if err != nil {
		return "", err
	}

	return filepath.Join(storage, "dictionaries"), nil
}

func Locale() string {
	return viper.GetString(LocaleKey)
}

// LocalesDir defaults to <storage>/locales
func LocalesDir() (string, error) {
	if dir := viper.GetString(LocalesDirKey); dir != "" {
		return dir, nil
	}

	storage, err := GetStorage()
	if err != nil {
		return "", err
	}

	return filepath.Join(storage, "locales"), nil
}

func Debug() bool {
	return viper.GetBool(DebugKey)
}

func LogFile() string {
	return viper.GetString(LogFileKey)
}

func MaxLogFiles() int {
	if !viper.IsSet(MaxLogFilesKey) {
		return DefaultMaxLogFiles
	}

	return viper.GetInt(MaxLogFilesKey)
}

func InitialiseConfigFile() (string, error) {
	configPath := viper.ConfigFileUsed()

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		dir := filepath.Join(home, rootDir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}

		configPath = filepath.Join(dir, configFileName)
		viper.SetConfigFile(configPath)

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			viper.SetDefault(EditorKey, GetEditor())
			viper.SetDefault(CopyCurrentPageURLKey, false)
			viper.SetDefault(OpenCurrentPageInBrowserKey, false)

			if err := viper.WriteConfig(); err != nil {
				return "", err
			}

			fmt.Fprintln(os.Stderr, "Created config at", configPath)
		} else if err := viper.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config: %w", err)
		}
	}

	return configPath, nil
}

func GetConfigFilePath() string {
	return viper.ConfigFileUsed()
}

func GetStorage() (string, error) {
	storage := viper.GetString(StorageKey)

	if storage != "" {
		return storage, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, rootDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}
