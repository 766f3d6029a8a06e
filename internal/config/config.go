// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables and
// an optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// MongoURI holds the document store connection string.
	MongoURI string

	// DatabaseName is the logical database holding all collections.
	DatabaseName string

	// BcryptCost is the password hashing cost factor. A deployment-time
	// setting; request handlers never choose it.
	BcryptCost int

	// CORSOrigins is a comma-separated allow-list of origins ("*" allows any).
	CORSOrigins string

	// Config is the path to the config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.MongoURI, "m", "mongodb://localhost:27017", "document store URI")
	flag.StringVar(&options.DatabaseName, "db", "familygrill", "database name")
	flag.IntVar(&options.BcryptCost, "cost", bcrypt.DefaultCost, "password hashing cost factor")
	flag.StringVar(&options.CORSOrigins, "origins", "*", "comma-separated CORS origin allow-list")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the config file and environment
// variables to set configuration values. Environment variables win over
// the file, the file wins over flag defaults. It returns a pointer to the
// Options struct containing the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		options.MongoURI = mongoURI
	}
	if dbName := os.Getenv("DATABASE_NAME"); dbName != "" {
		options.DatabaseName = dbName
	}
	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		n, err := strconv.Atoi(cost)
		if err != nil {
			log.Fatalf("invalid BCRYPT_COST: %v", err)
		}
		options.BcryptCost = n
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		options.CORSOrigins = origins
	}

	return options
}
