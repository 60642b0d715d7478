package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig `yaml:"logging"`
	Categories []string      `yaml:"categories"`
	Storage    StorageConfig `yaml:"storage"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// StorageConfig points at the GCS bucket used for uploaded media.
// CredentialsFile may be empty, in which case ADC is used.
type StorageConfig struct {
	Bucket          string `yaml:"bucket"`
	CredentialsFile string `yaml:"credentials_file"`
}

// DefaultCategories is the fallback seed set used when config.yaml
// does not provide one.
var DefaultCategories = []string{
	"Technology", "Health", "Business", "Education", "Society",
	"Lifestyle", "Sports", "Culture", "Work",
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// MongoURI returns the Mongo connection string from the environment.
func MongoURI() string {
	return os.Getenv("MONGO_URI")
}

// MongoDBName returns the database name from the environment.
func MongoDBName() string {
	return os.Getenv("MONGO_DB_NAME")
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
